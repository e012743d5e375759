package usecase

import (
	"context"
	"sort"
	"time"

	"go.uber.org/zap"

	"github.com/vessel-monitor/internal/detector"
	"github.com/vessel-monitor/internal/domain"
	"github.com/vessel-monitor/internal/pkg/errors"
	"github.com/vessel-monitor/internal/pkg/geo"
	"github.com/vessel-monitor/internal/registry"
	"github.com/vessel-monitor/internal/usecase/dto"
)

// ZoneUseCase serves the zone registry and ad-hoc point checks.
type ZoneUseCase struct {
	zones    *registry.Handle
	detector *detector.Detector
	logger   *zap.Logger
}

// NewZoneUseCase creates a new ZoneUseCase.
func NewZoneUseCase(zones *registry.Handle, det *detector.Detector, logger *zap.Logger) *ZoneUseCase {
	return &ZoneUseCase{
		zones:    zones,
		detector: det,
		logger:   logger,
	}
}

// ListZones returns the current registry snapshot with fishing legality
// resolved for the moment of the call.
func (uc *ZoneUseCase) ListZones(ctx context.Context) (*dto.ZoneListResponse, error) {
	reg := uc.zones.Current()
	now := time.Now()

	zones := make([]dto.ZoneResponse, 0, reg.Len())
	for _, z := range reg.AllZones() {
		zones = append(zones, dto.ConvertZone(z, reg.IsFishingAllowedNow(z, now)))
	}

	return &dto.ZoneListResponse{
		Zones:    zones,
		Total:    len(zones),
		LoadedAt: reg.LoadedAt(),
	}, nil
}

// GetZone returns one zone by ID.
func (uc *ZoneUseCase) GetZone(ctx context.Context, id string) (*dto.ZoneResponse, error) {
	reg := uc.zones.Current()
	zone, ok := reg.Zone(id)
	if !ok {
		return nil, errors.ErrZoneNotFound.WithDetails(map[string]interface{}{
			"zone_id": id,
		})
	}

	resp := dto.ConvertZone(zone, reg.IsFishingAllowedNow(zone, time.Now()))
	return &resp, nil
}

// CheckPoint evaluates a point against every zone without touching session
// state. Events come back worst first.
func (uc *ZoneUseCase) CheckPoint(ctx context.Context, req dto.CheckPointRequest) (*dto.CheckPointResponse, error) {
	if !geo.ValidCoordinates(req.Lat, req.Lon) {
		return nil, errors.ErrInvalidCoordinates
	}

	now := time.Now().UTC()
	sample := domain.TrackingSample{
		Timestamp:  now,
		Location:   domain.GeoPoint{Lat: req.Lat, Lon: req.Lon},
		SpeedKnots: req.SpeedKnots,
		HeadingDeg: req.HeadingDeg,
		HasDerived: req.SpeedKnots > 0,
	}

	events := uc.detector.Evaluate(uc.zones.Current(), sample, now)
	sort.Slice(events, func(i, j int) bool {
		if events[i].Severity.Rank() != events[j].Severity.Rank() {
			return events[i].Severity.Rank() > events[j].Severity.Rank()
		}
		return events[i].DistanceM < events[j].DistanceM
	})

	results := make([]dto.BoundaryEventDTO, 0, len(events))
	for _, e := range events {
		results = append(results, dto.ConvertEvent(e))
	}

	return &dto.CheckPointResponse{
		Events: results,
		Total:  len(results),
	}, nil
}
