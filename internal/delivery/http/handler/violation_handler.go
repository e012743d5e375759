package handler

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"github.com/vessel-monitor/internal/pkg/errors"
	"github.com/vessel-monitor/internal/pkg/utils"
	"github.com/vessel-monitor/internal/pkg/validator"
	"github.com/vessel-monitor/internal/usecase"
	"github.com/vessel-monitor/internal/usecase/dto"
)

// ViolationHandler serves the violation ledger.
type ViolationHandler struct {
	violationUC *usecase.ViolationUseCase
	logger      *zap.Logger
}

// NewViolationHandler creates a new ViolationHandler.
func NewViolationHandler(violationUC *usecase.ViolationUseCase, logger *zap.Logger) *ViolationHandler {
	return &ViolationHandler{
		violationUC: violationUC,
		logger:      logger,
	}
}

// Query godoc
// @Summary Query violation records
// @Description Returns ledger records matching the filters, newest first.
// @Tags Violations
// @Produce json
// @Param boat_id query string false "Boat registration number"
// @Param zone_id query string false "Zone ID"
// @Param severity query string false "Severity (warning, critical, emergency)"
// @Param type query string false "Event type (approaching, entered_buffer, violation)"
// @Param from query string false "Occurred-at lower bound (RFC3339)"
// @Param to query string false "Occurred-at upper bound (RFC3339)"
// @Param acknowledged query bool false "Acknowledged flag"
// @Param resolved query bool false "Resolved flag"
// @Param limit query int false "Maximum records to return" default(100)
// @Success 200 {object} utils.SuccessResponse{data=dto.ViolationListResponse}
// @Failure 400 {object} utils.ErrorResponse
// @Failure 500 {object} utils.ErrorResponse
// @Router /api/v1/violations [get]
func (h *ViolationHandler) Query(c *fiber.Ctx) error {
	req, err := parseViolationQuery(c)
	if err != nil {
		return utils.SendError(c, err)
	}

	if err := validator.Validate(&req); err != nil {
		return utils.SendError(c, err)
	}

	result, err := h.violationUC.Query(c.Context(), req)
	if err != nil {
		return utils.SendError(c, err)
	}

	return utils.SendSuccess(c, result, &utils.Meta{
		Total: result.Total,
		Limit: req.Limit,
	})
}

// GetByID godoc
// @Summary Get one violation record
// @Description Returns a single ledger record by its UUID.
// @Tags Violations
// @Produce json
// @Param id path string true "Record UUID"
// @Success 200 {object} utils.SuccessResponse{data=dto.ViolationResponse}
// @Failure 400 {object} utils.ErrorResponse
// @Failure 404 {object} utils.ErrorResponse
// @Failure 500 {object} utils.ErrorResponse
// @Router /api/v1/violations/{id} [get]
func (h *ViolationHandler) GetByID(c *fiber.Ctx) error {
	result, err := h.violationUC.GetByID(c.Context(), c.Params("id"))
	if err != nil {
		return utils.SendError(c, err)
	}

	return utils.SendSuccess(c, result, nil)
}

// Acknowledge godoc
// @Summary Acknowledge a violation
// @Description Marks the record acknowledged and silences the vessel's active alarms, locally or through the control stream when the session is worker-owned.
// @Tags Violations
// @Produce json
// @Param id path string true "Record UUID"
// @Success 200 {object} utils.SuccessResponse{data=dto.ViolationResponse}
// @Failure 400 {object} utils.ErrorResponse
// @Failure 404 {object} utils.ErrorResponse
// @Failure 500 {object} utils.ErrorResponse
// @Router /api/v1/violations/{id}/acknowledge [post]
func (h *ViolationHandler) Acknowledge(c *fiber.Ctx) error {
	result, err := h.violationUC.Acknowledge(c.Context(), c.Params("id"))
	if err != nil {
		return utils.SendError(c, err)
	}

	return utils.SendSuccess(c, result, nil)
}

// Resolve godoc
// @Summary Resolve a violation
// @Description Stamps the record resolved. The first resolution timestamp wins; repeated calls are no-ops.
// @Tags Violations
// @Produce json
// @Param id path string true "Record UUID"
// @Success 200 {object} utils.SuccessResponse{data=dto.ViolationResponse}
// @Failure 400 {object} utils.ErrorResponse
// @Failure 404 {object} utils.ErrorResponse
// @Failure 500 {object} utils.ErrorResponse
// @Router /api/v1/violations/{id}/resolve [post]
func (h *ViolationHandler) Resolve(c *fiber.Ctx) error {
	result, err := h.violationUC.Resolve(c.Context(), c.Params("id"))
	if err != nil {
		return utils.SendError(c, err)
	}

	return utils.SendSuccess(c, result, nil)
}

func parseViolationQuery(c *fiber.Ctx) (dto.ViolationQueryRequest, error) {
	req := dto.ViolationQueryRequest{
		BoatID:   c.Query("boat_id"),
		ZoneID:   c.Query("zone_id"),
		Severity: c.Query("severity"),
		Type:     c.Query("type"),
		Limit:    c.QueryInt("limit", 0),
	}

	if raw := c.Query("from"); raw != "" {
		ts, err := time.Parse(time.RFC3339, raw)
		if err != nil {
			return req, errors.ErrInvalidRequest.WithDetails(map[string]interface{}{
				"field": "from",
				"value": raw,
			})
		}
		req.From = &ts
	}
	if raw := c.Query("to"); raw != "" {
		ts, err := time.Parse(time.RFC3339, raw)
		if err != nil {
			return req, errors.ErrInvalidRequest.WithDetails(map[string]interface{}{
				"field": "to",
				"value": raw,
			})
		}
		req.To = &ts
	}
	if raw := c.Query("acknowledged"); raw != "" {
		v := raw == "true" || raw == "1"
		req.Acknowledged = &v
	}
	if raw := c.Query("resolved"); raw != "" {
		v := raw == "true" || raw == "1"
		req.Resolved = &v
	}

	return req, nil
}
