package handler

import (
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"github.com/vessel-monitor/internal/pkg/utils"
	"github.com/vessel-monitor/internal/pkg/validator"
	"github.com/vessel-monitor/internal/usecase"
	"github.com/vessel-monitor/internal/usecase/dto"
)

// SessionHandler manages monitoring sessions.
type SessionHandler struct {
	sessionUC *usecase.SessionUseCase
	logger    *zap.Logger
}

// NewSessionHandler creates a new SessionHandler.
func NewSessionHandler(sessionUC *usecase.SessionUseCase, logger *zap.Logger) *SessionHandler {
	return &SessionHandler{
		sessionUC: sessionUC,
		logger:    logger,
	}
}

// StartSession godoc
// @Summary Start a monitoring session
// @Description Opens a boundary monitoring session for a vessel. With polling=true the service acquires fixes from the position store on a timer; otherwise fixes arrive by push.
// @Tags Sessions
// @Accept json
// @Produce json
// @Param request body dto.StartSessionRequest true "Vessel metadata"
// @Success 201 {object} utils.SuccessResponse{data=dto.SessionResponse}
// @Failure 400 {object} utils.ErrorResponse
// @Failure 403 {object} utils.ErrorResponse
// @Failure 409 {object} utils.ErrorResponse
// @Failure 429 {object} utils.ErrorResponse
// @Router /api/v1/sessions [post]
func (h *SessionHandler) StartSession(c *fiber.Ctx) error {
	var req dto.StartSessionRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid request body"})
	}

	if err := validator.Validate(&req); err != nil {
		return utils.SendError(c, err)
	}

	result, err := h.sessionUC.StartSession(c.Context(), req)
	if err != nil {
		return utils.SendError(c, err)
	}

	return utils.SendCreated(c, result)
}

// StopSession godoc
// @Summary Stop a monitoring session
// @Description Closes the vessel's session, silencing alarms and flushing pending ledger writes. A worker-owned session is stopped through the control stream.
// @Tags Sessions
// @Produce json
// @Param boat_id path string true "Boat registration number"
// @Success 200 {object} utils.SuccessResponse
// @Failure 404 {object} utils.ErrorResponse
// @Failure 500 {object} utils.ErrorResponse
// @Router /api/v1/sessions/{boat_id} [delete]
func (h *SessionHandler) StopSession(c *fiber.Ctx) error {
	boatID := c.Params("boat_id")

	if err := h.sessionUC.StopSession(c.Context(), boatID); err != nil {
		return utils.SendError(c, err)
	}

	return utils.SendSuccess(c, fiber.Map{
		"boat_id": boatID,
		"stopped": true,
	}, nil)
}

// ListSessions godoc
// @Summary List active monitoring sessions
// @Description Returns a snapshot of every session this instance owns.
// @Tags Sessions
// @Produce json
// @Success 200 {object} utils.SuccessResponse{data=dto.SessionListResponse}
// @Failure 500 {object} utils.ErrorResponse
// @Router /api/v1/sessions [get]
func (h *SessionHandler) ListSessions(c *fiber.Ctx) error {
	result, err := h.sessionUC.ListSessions(c.Context())
	if err != nil {
		return utils.SendError(c, err)
	}

	return utils.SendSuccess(c, result, &utils.Meta{
		Total: result.Total,
	})
}
