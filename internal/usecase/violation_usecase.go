package usecase

import (
	"context"
	stderrors "errors"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/vessel-monitor/internal/domain"
	"github.com/vessel-monitor/internal/domain/repository"
	"github.com/vessel-monitor/internal/ledger"
	"github.com/vessel-monitor/internal/monitor"
	"github.com/vessel-monitor/internal/pkg/errors"
	"github.com/vessel-monitor/internal/usecase/dto"
)

// defaultViolationLimit caps unfiltered ledger queries.
const defaultViolationLimit = 100

// ViolationUseCase serves the violation ledger and routes acknowledgements
// to the session holding the alarm, locally or through the control stream
// when the session lives in a worker process.
type ViolationUseCase struct {
	ledger  *ledger.Service
	manager *monitor.Manager
	streams repository.StreamRepository
	logger  *zap.Logger
}

// NewViolationUseCase creates a new ViolationUseCase. manager and streams
// may be nil, e.g. in the worker process or without Redis.
func NewViolationUseCase(
	svc *ledger.Service,
	manager *monitor.Manager,
	streams repository.StreamRepository,
	logger *zap.Logger,
) *ViolationUseCase {
	return &ViolationUseCase{
		ledger:  svc,
		manager: manager,
		streams: streams,
		logger:  logger,
	}
}

// Query returns ledger records matching the filter, newest first.
func (uc *ViolationUseCase) Query(ctx context.Context, req dto.ViolationQueryRequest) (*dto.ViolationListResponse, error) {
	if req.Limit == 0 {
		req.Limit = defaultViolationLimit
	}
	if req.From != nil && req.To != nil && req.To.Before(*req.From) {
		return nil, errors.ErrInvalidRequest.WithDetails(map[string]interface{}{
			"reason": "to precedes from",
		})
	}

	filter := domain.ViolationFilter{
		BoatID:       req.BoatID,
		ZoneID:       req.ZoneID,
		Severity:     domain.Severity(req.Severity),
		Type:         domain.EventType(req.Type),
		From:         req.From,
		To:           req.To,
		Acknowledged: req.Acknowledged,
		Resolved:     req.Resolved,
		Limit:        req.Limit,
	}

	records, err := uc.ledger.Query(ctx, filter)
	if err != nil {
		uc.logger.Error("Failed to query violations", zap.Error(err))
		return nil, err
	}

	violations := make([]dto.ViolationResponse, 0, len(records))
	for _, r := range records {
		violations = append(violations, dto.ConvertViolation(r))
	}

	return &dto.ViolationListResponse{
		Violations: violations,
		Total:      len(violations),
	}, nil
}

// GetByID returns one ledger record.
func (uc *ViolationUseCase) GetByID(ctx context.Context, id string) (*dto.ViolationResponse, error) {
	recordID, err := parseRecordID(id)
	if err != nil {
		return nil, err
	}

	record, err := uc.ledger.GetByID(ctx, recordID)
	if err != nil {
		return nil, err
	}

	resp := dto.ConvertViolation(record)
	return &resp, nil
}

// Acknowledge marks the record acknowledged and silences the vessel's
// alarms.
func (uc *ViolationUseCase) Acknowledge(ctx context.Context, id string) (*dto.ViolationResponse, error) {
	recordID, err := parseRecordID(id)
	if err != nil {
		return nil, err
	}

	record, err := uc.ledger.Acknowledge(ctx, recordID)
	if err != nil {
		return nil, err
	}

	uc.silenceAlarms(ctx, record.Vessel.BoatID, domain.ControlAcknowledge, record.ID.String())

	resp := dto.ConvertViolation(record)
	return &resp, nil
}

// Resolve stamps the record resolved. The first resolution wins; repeated
// calls return the record unchanged.
func (uc *ViolationUseCase) Resolve(ctx context.Context, id string) (*dto.ViolationResponse, error) {
	recordID, err := parseRecordID(id)
	if err != nil {
		return nil, err
	}

	record, err := uc.ledger.Resolve(ctx, recordID)
	if err != nil {
		return nil, err
	}

	uc.silenceAlarms(ctx, record.Vessel.BoatID, domain.ControlResolve, record.ID.String())

	resp := dto.ConvertViolation(record)
	return &resp, nil
}

// silenceAlarms quiets the session owning the alarm. The session may live in
// this process or in a worker, so an unknown local session is forwarded to
// the control stream instead of failing the acknowledgement.
func (uc *ViolationUseCase) silenceAlarms(ctx context.Context, boatID string, action domain.ControlAction, recordID string) {
	if uc.manager != nil {
		err := uc.manager.Acknowledge(ctx, boatID)
		if err == nil {
			return
		}
		if !stderrors.Is(err, errors.ErrSessionNotFound) {
			uc.logger.Warn("Failed to silence alarms",
				zap.String("boat_id", boatID),
				zap.Error(err))
			return
		}
	}

	if uc.streams == nil {
		return
	}
	event := domain.ControlEvent{
		Action:    action,
		BoatID:    boatID,
		RecordID:  recordID,
		Timestamp: time.Now().UTC(),
	}
	if err := uc.streams.PublishToStream(ctx, domain.StreamMonitorControl, &event); err != nil {
		uc.logger.Warn("Failed to publish control event",
			zap.String("boat_id", boatID),
			zap.String("action", string(action)),
			zap.Error(err))
	}
}

func parseRecordID(id string) (uuid.UUID, error) {
	recordID, err := uuid.Parse(id)
	if err != nil {
		return uuid.Nil, errors.ErrInvalidRequest.WithDetails(map[string]interface{}{
			"field": "id",
			"value": id,
		})
	}
	return recordID, nil
}
