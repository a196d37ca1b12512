package usecases

import (
	"context"

	"lumen/internal/domain/user"
	"lumen/internal/shared/logger"
)

type UpdateProfileCommand struct {
	Name    *string
	AboutMe *string
	Age     *int
}

type UpdateProfileUseCase struct {
	userRepo user.Repository
	logger   logger.Interface
}

func NewUpdateProfileUseCase(userRepo user.Repository, logger logger.Interface) *UpdateProfileUseCase {
	return &UpdateProfileUseCase{
		userRepo: userRepo,
		logger:   logger,
	}
}

// Execute merges the supplied fields into the caller's profile. An empty
// command returns the profile unchanged.
func (uc *UpdateProfileUseCase) Execute(ctx context.Context, googleID string, cmd UpdateProfileCommand) (*user.Profile, error) {
	update := user.Update{
		Name:    cmd.Name,
		AboutMe: cmd.AboutMe,
		Age:     cmd.Age,
	}

	if update.IsEmpty() {
		return uc.userRepo.FindByGoogleID(ctx, googleID)
	}

	profile, err := uc.userRepo.UpdateFields(ctx, googleID, update)
	if err != nil {
		return nil, err
	}

	uc.logger.Debugw("profile updated", "google_id", googleID)
	return profile, nil
}
