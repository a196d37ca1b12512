package usecases

import (
	"context"
	"fmt"

	"lumen/internal/domain/status"
	"lumen/internal/shared/logger"
)

type CreateStatusCheckCommand struct {
	ClientName string
}

type CreateStatusCheckUseCase struct {
	statusRepo status.Repository
	logger     logger.Interface
}

func NewCreateStatusCheckUseCase(statusRepo status.Repository, logger logger.Interface) *CreateStatusCheckUseCase {
	return &CreateStatusCheckUseCase{
		statusRepo: statusRepo,
		logger:     logger,
	}
}

func (uc *CreateStatusCheckUseCase) Execute(ctx context.Context, cmd CreateStatusCheckCommand) (*status.Check, error) {
	check := status.NewCheck(cmd.ClientName)

	if err := uc.statusRepo.Insert(ctx, check); err != nil {
		uc.logger.Errorw("failed to insert status check", "error", err)
		return nil, fmt.Errorf("failed to insert status check: %w", err)
	}

	return check, nil
}
