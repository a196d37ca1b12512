package usecases

import (
	"context"
	"fmt"

	"lumen/internal/domain/user"
	"lumen/internal/infrastructure/auth"
	"lumen/internal/shared/errors"
	"lumen/internal/shared/logger"
)

// OAuthCallbackClient finishes the handshake against the provider.
type OAuthCallbackClient interface {
	ExchangeCode(ctx context.Context, code string, codeVerifier string) (accessToken string, err error)
	GetUserInfo(ctx context.Context, accessToken string) (*auth.UserInfo, error)
}

// TokenIssuer signs session tokens for an authenticated subject.
type TokenIssuer interface {
	Issue(subject, email, name string) (string, error)
}

type HandleOAuthCallbackCommand struct {
	Code         string
	CodeVerifier string
}

type HandleOAuthCallbackResult struct {
	Token   string
	Profile *user.Profile
}

type HandleOAuthCallbackUseCase struct {
	userRepo user.Repository
	client   OAuthCallbackClient
	tokens   TokenIssuer
	logger   logger.Interface
}

func NewHandleOAuthCallbackUseCase(
	userRepo user.Repository,
	client OAuthCallbackClient,
	tokens TokenIssuer,
	logger logger.Interface,
) *HandleOAuthCallbackUseCase {
	return &HandleOAuthCallbackUseCase{
		userRepo: userRepo,
		client:   client,
		tokens:   tokens,
		logger:   logger,
	}
}

func (uc *HandleOAuthCallbackUseCase) Execute(ctx context.Context, cmd HandleOAuthCallbackCommand) (*HandleOAuthCallbackResult, error) {
	accessToken, err := uc.client.ExchangeCode(ctx, cmd.Code, cmd.CodeVerifier)
	if err != nil {
		uc.logger.Errorw("failed to exchange code", "error", err)
		return nil, errors.NewOAuthError("code exchange", err.Error())
	}

	userInfo, err := uc.client.GetUserInfo(ctx, accessToken)
	if err != nil {
		uc.logger.Errorw("failed to get user info", "error", err)
		return nil, errors.NewOAuthError("user info", err.Error())
	}

	if userInfo.Subject == "" || userInfo.Email == "" || userInfo.Name == "" {
		uc.logger.Warnw("provider returned incomplete profile",
			"has_subject", userInfo.Subject != "",
			"has_email", userInfo.Email != "")
		return nil, errors.NewOAuthError("user info", "failed to get user info from Google")
	}

	// Full-document upsert keyed by the subject id: first login inserts,
	// later logins replace the record with fresh identity fields.
	profile := user.NewProfile(userInfo.Subject, userInfo.Email, userInfo.Name, userInfo.Picture)
	if err := uc.userRepo.UpsertByGoogleID(ctx, profile); err != nil {
		uc.logger.Errorw("failed to upsert user", "error", err, "google_id", userInfo.Subject)
		return nil, fmt.Errorf("failed to upsert user: %w", err)
	}

	token, err := uc.tokens.Issue(profile.GoogleID, profile.Email, profile.Name)
	if err != nil {
		uc.logger.Errorw("failed to issue session token", "error", err)
		return nil, fmt.Errorf("failed to issue session token: %w", err)
	}

	uc.logger.Infow("OAuth login successful", "google_id", profile.GoogleID)

	return &HandleOAuthCallbackResult{
		Token:   token,
		Profile: profile,
	}, nil
}
