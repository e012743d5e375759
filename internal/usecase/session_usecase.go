package usecase

import (
	"context"
	stderrors "errors"
	"time"

	"go.uber.org/zap"

	"github.com/vessel-monitor/internal/domain"
	"github.com/vessel-monitor/internal/domain/repository"
	"github.com/vessel-monitor/internal/monitor"
	"github.com/vessel-monitor/internal/pkg/errors"
	"github.com/vessel-monitor/internal/usecase/dto"
)

// SessionUseCase manages monitoring sessions over the Manager.
type SessionUseCase struct {
	manager *monitor.Manager
	streams repository.StreamRepository
	logger  *zap.Logger
}

// NewSessionUseCase creates a new SessionUseCase. streams may be nil when
// no worker process shares the fleet.
func NewSessionUseCase(manager *monitor.Manager, streams repository.StreamRepository, logger *zap.Logger) *SessionUseCase {
	return &SessionUseCase{
		manager: manager,
		streams: streams,
		logger:  logger,
	}
}

// StartSession opens a monitoring session for a vessel.
func (uc *SessionUseCase) StartSession(ctx context.Context, req dto.StartSessionRequest) (*dto.SessionResponse, error) {
	if req.BoatID == "" {
		return nil, errors.ErrInvalidRequest.WithDetails(map[string]interface{}{
			"field": "boat_id",
		})
	}

	vessel := domain.VesselMeta{
		BoatID:        req.BoatID,
		LicenseNumber: req.LicenseNumber,
		ContactNumber: req.ContactNumber,
	}

	session, err := uc.manager.StartSession(ctx, vessel, req.Polling)
	if err != nil {
		return nil, err
	}

	uc.logger.Info("Monitoring session started",
		zap.String("boat_id", req.BoatID),
		zap.Bool("polling", req.Polling))

	resp := dto.ConvertSession(monitor.SessionInfo{
		Vessel:       session.Vessel(),
		StartedAt:    session.StartedAt(),
		LastActivity: session.LastActivity(),
		Samples:      len(session.History()),
		Polling:      session.Polling(),
	})
	return &resp, nil
}

// StopSession closes the vessel's session. A session owned by a worker
// process is stopped through the control stream.
func (uc *SessionUseCase) StopSession(ctx context.Context, boatID string) error {
	if boatID == "" {
		return errors.ErrInvalidRequest.WithDetails(map[string]interface{}{
			"field": "boat_id",
		})
	}

	err := uc.manager.StopSession(ctx, boatID)
	if err == nil {
		uc.logger.Info("Monitoring session stopped", zap.String("boat_id", boatID))
		return nil
	}
	if !stderrors.Is(err, errors.ErrSessionNotFound) || uc.streams == nil {
		return err
	}

	event := domain.ControlEvent{
		Action:    domain.ControlStop,
		BoatID:    boatID,
		Timestamp: time.Now().UTC(),
	}
	if pubErr := uc.streams.PublishToStream(ctx, domain.StreamMonitorControl, &event); pubErr != nil {
		uc.logger.Error("Failed to publish stop command",
			zap.String("boat_id", boatID),
			zap.Error(pubErr))
		return err
	}

	uc.logger.Info("Stop command forwarded to worker", zap.String("boat_id", boatID))
	return nil
}

// ListSessions returns a snapshot of every active session.
func (uc *SessionUseCase) ListSessions(ctx context.Context) (*dto.SessionListResponse, error) {
	infos := uc.manager.ActiveSessions()

	sessions := make([]dto.SessionResponse, 0, len(infos))
	for _, info := range infos {
		sessions = append(sessions, dto.ConvertSession(info))
	}

	return &dto.SessionListResponse{
		Sessions: sessions,
		Total:    len(sessions),
	}, nil
}
