package handler

import (
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"github.com/vessel-monitor/internal/pkg/utils"
	"github.com/vessel-monitor/internal/pkg/validator"
	"github.com/vessel-monitor/internal/usecase"
	"github.com/vessel-monitor/internal/usecase/dto"
)

// PositionHandler accepts pushed position fixes.
type PositionHandler struct {
	positionUC *usecase.PositionUseCase
	logger     *zap.Logger
}

// NewPositionHandler creates a new PositionHandler.
func NewPositionHandler(positionUC *usecase.PositionUseCase, logger *zap.Logger) *PositionHandler {
	return &PositionHandler{
		positionUC: positionUC,
		logger:     logger,
	}
}

// SubmitPosition godoc
// @Summary Submit a position fix
// @Description Accepts one GPS fix for a vessel and feeds it into boundary monitoring. A session is started on first contact. With async=true the fix is published to the ingest stream for the worker fleet instead.
// @Tags Positions
// @Accept json
// @Produce json
// @Param request body dto.SubmitPositionRequest true "Position fix"
// @Success 200 {object} utils.SuccessResponse{data=dto.SubmitPositionResponse}
// @Failure 400 {object} utils.ErrorResponse
// @Failure 429 {object} utils.ErrorResponse
// @Failure 500 {object} utils.ErrorResponse
// @Router /api/v1/positions [post]
func (h *PositionHandler) SubmitPosition(c *fiber.Ctx) error {
	var req dto.SubmitPositionRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid request body"})
	}

	if err := validator.Validate(&req); err != nil {
		return utils.SendError(c, err)
	}

	result, err := h.positionUC.SubmitPosition(c.Context(), req)
	if err != nil {
		return utils.SendError(c, err)
	}

	return utils.SendSuccess(c, result, nil)
}

// SubmitBatch godoc
// @Summary Submit a batch of position fixes
// @Description Accepts up to 500 fixes in one call, e.g. a gateway flushing a backlog after a connectivity gap. Items are independent; per-item failures are reported in the result list.
// @Tags Positions
// @Accept json
// @Produce json
// @Param request body dto.BatchPositionsRequest true "Position fixes"
// @Success 200 {object} utils.SuccessResponse{data=dto.BatchPositionsResponse}
// @Failure 400 {object} utils.ErrorResponse
// @Failure 500 {object} utils.ErrorResponse
// @Router /api/v1/positions/batch [post]
func (h *PositionHandler) SubmitBatch(c *fiber.Ctx) error {
	var req dto.BatchPositionsRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid request body"})
	}

	if err := validator.Validate(&req); err != nil {
		return utils.SendError(c, err)
	}

	result, err := h.positionUC.SubmitBatch(c.Context(), req)
	if err != nil {
		return utils.SendError(c, err)
	}

	return utils.SendSuccess(c, result, &utils.Meta{
		Total: result.Meta.Total,
	})
}
