package handlers

import (
	"context"

	"lumen/internal/application/user/usecases"
	"lumen/internal/domain/user"
)

// Use case interfaces consumed by AuthHandler. Kept narrow so tests can
// substitute mocks.

type initiateOAuthLoginUseCase interface {
	Execute() (*usecases.InitiateOAuthLoginResult, error)
}

type handleOAuthCallbackUseCase interface {
	Execute(ctx context.Context, cmd usecases.HandleOAuthCallbackCommand) (*usecases.HandleOAuthCallbackResult, error)
}

type getCurrentUserUseCase interface {
	Execute(ctx context.Context, googleID string) (*user.Profile, error)
}

type updateProfileUseCase interface {
	Execute(ctx context.Context, googleID string, cmd usecases.UpdateProfileCommand) (*user.Profile, error)
}
