package usecases

import (
	"context"
	"fmt"

	"lumen/internal/domain/status"
)

// listLimit caps how many status checks a single request returns. There is
// no pagination beyond this cap.
const listLimit = 1000

type ListStatusChecksUseCase struct {
	statusRepo status.Repository
}

func NewListStatusChecksUseCase(statusRepo status.Repository) *ListStatusChecksUseCase {
	return &ListStatusChecksUseCase{statusRepo: statusRepo}
}

func (uc *ListStatusChecksUseCase) Execute(ctx context.Context) ([]*status.Check, error) {
	checks, err := uc.statusRepo.List(ctx, listLimit)
	if err != nil {
		return nil, fmt.Errorf("failed to list status checks: %w", err)
	}
	return checks, nil
}
