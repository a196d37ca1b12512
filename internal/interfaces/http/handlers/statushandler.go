package handlers

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"lumen/internal/application/status/usecases"
	"lumen/internal/domain/status"
	"lumen/internal/shared/errors"
	"lumen/internal/shared/logger"
	"lumen/internal/shared/utils"
)

type createStatusCheckUseCase interface {
	Execute(ctx context.Context, cmd usecases.CreateStatusCheckCommand) (*status.Check, error)
}

type listStatusChecksUseCase interface {
	Execute(ctx context.Context) ([]*status.Check, error)
}

type StatusHandler struct {
	createUseCase createStatusCheckUseCase
	listUseCase   listStatusChecksUseCase
	logger        logger.Interface
}

func NewStatusHandler(createUC createStatusCheckUseCase, listUC listStatusChecksUseCase, logger logger.Interface) *StatusHandler {
	return &StatusHandler{
		createUseCase: createUC,
		listUseCase:   listUC,
		logger:        logger,
	}
}

type CreateStatusCheckRequest struct {
	ClientName string `json:"client_name" validate:"required,min=1,max=200"`
}

// Create records a status check for the named client.
func (h *StatusHandler) Create(c *gin.Context) {
	var req CreateStatusCheckRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponseWithError(c, errors.NewValidationError("Invalid request body", err.Error()))
		return
	}

	if err := utils.ValidateStruct(&req); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	check, err := h.createUseCase.Execute(c.Request.Context(), usecases.CreateStatusCheckCommand{
		ClientName: req.ClientName,
	})
	if err != nil {
		h.logger.Errorw("failed to create status check", "error", err)
		utils.ErrorResponseWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, check)
}

// List returns recent status checks, newest insertion order first is not
// guaranteed; the store returns them in natural order capped at the
// server-side limit.
func (h *StatusHandler) List(c *gin.Context) {
	checks, err := h.listUseCase.Execute(c.Request.Context())
	if err != nil {
		h.logger.Errorw("failed to list status checks", "error", err)
		utils.ErrorResponseWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, checks)
}
