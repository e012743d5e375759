package handler

import (
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"github.com/vessel-monitor/internal/pkg/utils"
	"github.com/vessel-monitor/internal/pkg/validator"
	"github.com/vessel-monitor/internal/usecase"
	"github.com/vessel-monitor/internal/usecase/dto"
)

// ZoneHandler serves the zone registry and ad-hoc point checks.
type ZoneHandler struct {
	zoneUC *usecase.ZoneUseCase
	logger *zap.Logger
}

// NewZoneHandler creates a new ZoneHandler.
func NewZoneHandler(zoneUC *usecase.ZoneUseCase, logger *zap.Logger) *ZoneHandler {
	return &ZoneHandler{
		zoneUC: zoneUC,
		logger: logger,
	}
}

// ListZones godoc
// @Summary List boundary zones
// @Description Returns every configured maritime boundary zone with its polygon, alert thresholds and current fishing legality.
// @Tags Zones
// @Produce json
// @Success 200 {object} utils.SuccessResponse{data=dto.ZoneListResponse}
// @Failure 500 {object} utils.ErrorResponse
// @Router /api/v1/zones [get]
func (h *ZoneHandler) ListZones(c *fiber.Ctx) error {
	result, err := h.zoneUC.ListZones(c.Context())
	if err != nil {
		return utils.SendError(c, err)
	}

	return utils.SendSuccess(c, result, &utils.Meta{
		Total: result.Total,
	})
}

// GetZone godoc
// @Summary Get one boundary zone
// @Description Returns a single zone by its identifier.
// @Tags Zones
// @Produce json
// @Param id path string true "Zone ID"
// @Success 200 {object} utils.SuccessResponse{data=dto.ZoneResponse}
// @Failure 404 {object} utils.ErrorResponse
// @Failure 500 {object} utils.ErrorResponse
// @Router /api/v1/zones/{id} [get]
func (h *ZoneHandler) GetZone(c *fiber.Ctx) error {
	result, err := h.zoneUC.GetZone(c.Context(), c.Params("id"))
	if err != nil {
		return utils.SendError(c, err)
	}

	return utils.SendSuccess(c, result, nil)
}

// CheckPoint godoc
// @Summary Check a point against every zone
// @Description Evaluates a coordinate against all boundary zones without touching session state. Useful for route preview and debugging. Events come back worst first.
// @Tags Zones
// @Accept json
// @Produce json
// @Param request body dto.CheckPointRequest true "Point with optional speed and heading"
// @Success 200 {object} utils.SuccessResponse{data=dto.CheckPointResponse}
// @Failure 400 {object} utils.ErrorResponse
// @Failure 500 {object} utils.ErrorResponse
// @Router /api/v1/zones/check [post]
func (h *ZoneHandler) CheckPoint(c *fiber.Ctx) error {
	var req dto.CheckPointRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid request body"})
	}

	if err := validator.Validate(&req); err != nil {
		return utils.SendError(c, err)
	}

	result, err := h.zoneUC.CheckPoint(c.Context(), req)
	if err != nil {
		return utils.SendError(c, err)
	}

	return utils.SendSuccess(c, result, &utils.Meta{
		Total: result.Total,
	})
}
