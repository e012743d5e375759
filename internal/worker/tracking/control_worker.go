package tracking

import (
	"context"
	"encoding/json"
	stderrors "errors"
	"fmt"
	"os"
	"time"

	"go.uber.org/zap"

	"github.com/vessel-monitor/internal/domain"
	"github.com/vessel-monitor/internal/domain/repository"
	"github.com/vessel-monitor/internal/monitor"
	"github.com/vessel-monitor/internal/pkg/errors"
	"github.com/vessel-monitor/internal/worker"
)

// controlBatchSize bounds one control read; command volume is tiny.
const controlBatchSize = 10

// ControlWorker consumes acknowledge/resolve/stop commands for sessions this
// instance owns. The consumer group must be instance-scoped: every instance
// has to see every command, because only the session owner can act on it.
type ControlWorker struct {
	*worker.BaseWorker
	streamRepo   repository.StreamRepository
	sessions     *monitor.Manager
	consumerName string
}

// NewControlWorker creates a new ControlWorker.
func NewControlWorker(
	streamRepo repository.StreamRepository,
	sessions *monitor.Manager,
	consumerGroup string,
	logger *zap.Logger,
) *ControlWorker {
	hostname, _ := os.Hostname()
	consumerName := fmt.Sprintf("%s-%d", hostname, os.Getpid())

	return &ControlWorker{
		BaseWorker:   worker.NewBaseWorker("monitor-control", consumerGroup, logger),
		streamRepo:   streamRepo,
		sessions:     sessions,
		consumerName: consumerName,
	}
}

// Start runs the consume loop until Stop or context cancellation.
func (w *ControlWorker) Start(ctx context.Context) error {
	logger := w.Logger()
	logger.Info("Starting control worker",
		zap.String("consumer_group", w.ConsumerGroup()),
		zap.String("consumer_name", w.consumerName))

	if err := w.streamRepo.CreateConsumerGroup(ctx, domain.StreamMonitorControl, w.ConsumerGroup()); err != nil {
		logger.Error("Failed to create consumer group", zap.Error(err))
		return fmt.Errorf("failed to create consumer group: %w", err)
	}

	for {
		select {
		case <-w.StopChan():
			logger.Info("Worker stopped")
			return nil

		case <-ctx.Done():
			logger.Info("Context cancelled")
			return ctx.Err()

		default:
			processed, err := w.processBatch(ctx)
			if err != nil {
				logger.Error("Failed to process batch", zap.Error(err))
				time.Sleep(errorSleep)
				continue
			}

			if processed == 0 {
				time.Sleep(emptyQueueSleep)
			}
		}
	}
}

// processBatch reads one batch of commands. Every message is acked whether
// or not this instance owned the session; commands are fanned out and must
// not wedge in the group.
func (w *ControlWorker) processBatch(ctx context.Context) (int, error) {
	logger := w.Logger()

	messages, err := w.streamRepo.ConsumeBatch(
		ctx,
		domain.StreamMonitorControl,
		w.ConsumerGroup(),
		w.consumerName,
		controlBatchSize,
	)
	if err != nil {
		return 0, fmt.Errorf("failed to consume batch: %w", err)
	}

	if len(messages) == 0 {
		return 0, nil
	}

	ackIDs := make([]string, 0, len(messages))

	for _, msg := range messages {
		ackIDs = append(ackIDs, msg.ID)

		var event domain.ControlEvent
		if err := json.Unmarshal([]byte(msg.Data), &event); err != nil {
			logger.Warn("Failed to parse control message, skipping",
				zap.String("message_id", msg.ID),
				zap.Error(err))
			continue
		}

		w.handle(ctx, event)
	}

	if err := w.streamRepo.AckMessages(ctx, domain.StreamMonitorControl, w.ConsumerGroup(), ackIDs); err != nil {
		logger.Error("Failed to ack messages", zap.Error(err))
	}

	return len(messages), nil
}

func (w *ControlWorker) handle(ctx context.Context, event domain.ControlEvent) {
	logger := w.Logger()

	var err error
	switch event.Action {
	case domain.ControlAcknowledge, domain.ControlResolve:
		err = w.sessions.Acknowledge(ctx, event.BoatID)
	case domain.ControlStop:
		err = w.sessions.StopSession(ctx, event.BoatID)
	default:
		logger.Warn("Unknown control action",
			zap.String("action", string(event.Action)),
			zap.String("boat_id", event.BoatID))
		return
	}

	if err != nil {
		if stderrors.Is(err, errors.ErrSessionNotFound) {
			logger.Debug("Session not owned by this instance",
				zap.String("boat_id", event.BoatID),
				zap.String("action", string(event.Action)))
			return
		}
		logger.Error("Failed to apply control command",
			zap.String("boat_id", event.BoatID),
			zap.String("action", string(event.Action)),
			zap.Error(err))
		return
	}

	logger.Info("Control command applied",
		zap.String("boat_id", event.BoatID),
		zap.String("action", string(event.Action)),
		zap.String("record_id", event.RecordID))
}
