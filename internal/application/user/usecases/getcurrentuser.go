package usecases

import (
	"context"

	"lumen/internal/domain/user"
)

type GetCurrentUserUseCase struct {
	userRepo user.Repository
}

func NewGetCurrentUserUseCase(userRepo user.Repository) *GetCurrentUserUseCase {
	return &GetCurrentUserUseCase{userRepo: userRepo}
}

// Execute resolves a verified token subject to its stored profile. Returns
// a not-found error when the token is valid but the user no longer exists.
func (uc *GetCurrentUserUseCase) Execute(ctx context.Context, googleID string) (*user.Profile, error) {
	return uc.userRepo.FindByGoogleID(ctx, googleID)
}
