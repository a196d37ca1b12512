package usecases

import (
	"crypto/rand"
	"encoding/base64"
	"fmt"

	"lumen/internal/shared/logger"
)

// OAuthClient builds a consent URL for a handshake state nonce.
type OAuthClient interface {
	GetAuthURL(state string) (authURL string, codeVerifier string, err error)
}

type InitiateOAuthLoginResult struct {
	AuthURL      string
	State        string
	CodeVerifier string
}

type InitiateOAuthLoginUseCase struct {
	client OAuthClient
	logger logger.Interface
}

func NewInitiateOAuthLoginUseCase(client OAuthClient, logger logger.Interface) *InitiateOAuthLoginUseCase {
	return &InitiateOAuthLoginUseCase{
		client: client,
		logger: logger,
	}
}

func (uc *InitiateOAuthLoginUseCase) Execute() (*InitiateOAuthLoginResult, error) {
	state, err := generateState()
	if err != nil {
		uc.logger.Errorw("failed to generate state", "error", err)
		return nil, fmt.Errorf("failed to generate state: %w", err)
	}

	authURL, codeVerifier, err := uc.client.GetAuthURL(state)
	if err != nil {
		uc.logger.Errorw("failed to get auth URL", "error", err)
		return nil, fmt.Errorf("failed to get auth URL: %w", err)
	}

	uc.logger.Infow("OAuth login initiated", "state", state)

	return &InitiateOAuthLoginResult{
		AuthURL:      authURL,
		State:        state,
		CodeVerifier: codeVerifier,
	}, nil
}

func generateState() (string, error) {
	b := make([]byte, 32)
	if _, err := rand.Read(b); err != nil {
		return "", err
	}
	return base64.URLEncoding.EncodeToString(b), nil
}
