package usecase

import (
	"context"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/vessel-monitor/internal/domain"
	"github.com/vessel-monitor/internal/domain/repository"
	"github.com/vessel-monitor/internal/monitor"
	"github.com/vessel-monitor/internal/pkg/errors"
	"github.com/vessel-monitor/internal/pkg/geo"
	"github.com/vessel-monitor/internal/pkg/metrics"
	"github.com/vessel-monitor/internal/usecase/dto"
)

// batchWorkers bounds the fan-out of a batch submission.
const batchWorkers = 8

// PositionUseCase ingests position fixes: validates them, records the last
// known position, and routes each fix either into the vessel's in-process
// session or onto the ingest stream for a worker.
type PositionUseCase struct {
	manager   *monitor.Manager
	locations repository.LocationStore
	streams   repository.StreamRepository
	logger    *zap.Logger
	metrics   *metrics.Metrics
}

// NewPositionUseCase creates a new PositionUseCase. locations and streams
// may be nil when the deployment has no Redis.
func NewPositionUseCase(
	manager *monitor.Manager,
	locations repository.LocationStore,
	streams repository.StreamRepository,
	logger *zap.Logger,
	m *metrics.Metrics,
) *PositionUseCase {
	return &PositionUseCase{
		manager:   manager,
		locations: locations,
		streams:   streams,
		logger:    logger,
		metrics:   m,
	}
}

// SubmitPosition handles one pushed fix.
func (uc *PositionUseCase) SubmitPosition(ctx context.Context, req dto.SubmitPositionRequest) (*dto.SubmitPositionResponse, error) {
	if req.BoatID == "" {
		uc.metrics.IncFixRejected("missing_boat_id")
		return nil, errors.ErrInvalidRequest.WithDetails(map[string]interface{}{
			"field": "boat_id",
		})
	}
	if !geo.ValidCoordinates(req.Lat, req.Lon) {
		uc.metrics.IncFixRejected("invalid_coordinates")
		return nil, errors.ErrInvalidCoordinates
	}
	if req.Timestamp.IsZero() {
		req.Timestamp = time.Now().UTC()
	}

	fix := domain.PositionFix{
		Location:  domain.GeoPoint{Lat: req.Lat, Lon: req.Lon},
		AccuracyM: req.AccuracyM,
		Timestamp: req.Timestamp,
	}
	vessel := domain.VesselMeta{
		BoatID:        req.BoatID,
		LicenseNumber: req.LicenseNumber,
		ContactNumber: req.ContactNumber,
	}

	// Last known position feeds polling sessions and other processes; a
	// write failure must not reject the fix itself.
	if uc.locations != nil {
		if err := uc.locations.StorePosition(ctx, req.BoatID, fix); err != nil {
			uc.logger.Warn("Failed to store last position",
				zap.String("boat_id", req.BoatID),
				zap.Error(err))
		}
	}

	routed, err := uc.route(ctx, vessel, fix, req.Async)
	if err != nil {
		uc.metrics.IncFixRejected("routing_failed")
		uc.logger.Error("Failed to route position fix",
			zap.String("boat_id", req.BoatID),
			zap.Error(err))
		return nil, err
	}

	uc.metrics.IncFixIngested("api")
	return &dto.SubmitPositionResponse{
		BoatID:   req.BoatID,
		Accepted: true,
		Routed:   routed,
	}, nil
}

func (uc *PositionUseCase) route(ctx context.Context, vessel domain.VesselMeta, fix domain.PositionFix, async bool) (string, error) {
	if async && uc.streams != nil {
		event := domain.PositionFixEvent{
			BoatID:    vessel.BoatID,
			Lat:       fix.Location.Lat,
			Lon:       fix.Location.Lon,
			AccuracyM: fix.AccuracyM,
			Timestamp: fix.Timestamp,
			Vessel:    &vessel,
		}
		if err := uc.streams.PublishToStream(ctx, domain.StreamPositionIngest, &event); err != nil {
			return "", err
		}
		return "stream", nil
	}

	session, err := uc.manager.EnsureSession(ctx, vessel)
	if err != nil {
		return "", err
	}
	session.Push(fix)
	return "session", nil
}

// SubmitBatch handles a backlog of fixes, e.g. a gateway flushing after a
// connectivity gap. Items are independent: one rejected fix never fails the
// batch.
func (uc *PositionUseCase) SubmitBatch(ctx context.Context, req dto.BatchPositionsRequest) (*dto.BatchPositionsResponse, error) {
	if len(req.Positions) == 0 {
		return nil, errors.ErrInvalidRequest.WithDetails(map[string]interface{}{
			"field": "positions",
		})
	}

	results := make([]dto.BatchPositionResult, len(req.Positions))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(batchWorkers)
	for i, pos := range req.Positions {
		g.Go(func() error {
			resp, err := uc.SubmitPosition(gctx, pos)
			if err != nil {
				results[i] = dto.BatchPositionResult{
					Index:  i,
					BoatID: pos.BoatID,
					Error:  err.Error(),
				}
				return nil
			}
			results[i] = dto.BatchPositionResult{
				Index:    i,
				BoatID:   resp.BoatID,
				Accepted: true,
			}
			return nil
		})
	}
	// Item errors are reported per slot, so Wait only observes ctx cancellation.
	if err := g.Wait(); err != nil {
		return nil, err
	}

	accepted := 0
	for _, r := range results {
		if r.Accepted {
			accepted++
		}
	}

	uc.logger.Info("Processed position batch",
		zap.Int("total", len(results)),
		zap.Int("accepted", accepted))

	return &dto.BatchPositionsResponse{
		Results: results,
		Meta: dto.BatchPositionsMeta{
			Total:         len(results),
			AcceptedCount: accepted,
			RejectedCount: len(results) - accepted,
		},
	}, nil
}
