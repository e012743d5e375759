// Package tracking holds the stream consumers that feed the monitoring
// engine: position fixes in, control commands for running sessions.
package tracking

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"time"

	"go.uber.org/zap"

	"github.com/vessel-monitor/internal/domain"
	"github.com/vessel-monitor/internal/domain/repository"
	"github.com/vessel-monitor/internal/monitor"
	"github.com/vessel-monitor/internal/pkg/geo"
	"github.com/vessel-monitor/internal/pkg/metrics"
	"github.com/vessel-monitor/internal/worker"
)

const (
	emptyQueueSleep = 100 * time.Millisecond
	errorSleep      = time.Second
)

// PositionWorker consumes position fixes from the ingest stream and routes
// them into per-vessel monitoring sessions.
type PositionWorker struct {
	*worker.BaseWorker
	streamRepo   repository.StreamRepository
	sessions     *monitor.Manager
	consumerName string
	batchSize    int64
	metrics      *metrics.Metrics
}

// NewPositionWorker creates a new PositionWorker.
func NewPositionWorker(
	streamRepo repository.StreamRepository,
	sessions *monitor.Manager,
	consumerGroup string,
	batchSize int64,
	logger *zap.Logger,
	m *metrics.Metrics,
) *PositionWorker {
	hostname, _ := os.Hostname()
	consumerName := fmt.Sprintf("%s-%d", hostname, os.Getpid())

	return &PositionWorker{
		BaseWorker:   worker.NewBaseWorker("position-ingest", consumerGroup, logger),
		streamRepo:   streamRepo,
		sessions:     sessions,
		consumerName: consumerName,
		batchSize:    batchSize,
		metrics:      m,
	}
}

// Start runs the consume loop until Stop or context cancellation.
func (w *PositionWorker) Start(ctx context.Context) error {
	logger := w.Logger()
	logger.Info("Starting position worker",
		zap.String("consumer_group", w.ConsumerGroup()),
		zap.String("consumer_name", w.consumerName),
		zap.Int64("batch_size", w.batchSize))

	if err := w.streamRepo.CreateConsumerGroup(ctx, domain.StreamPositionIngest, w.ConsumerGroup()); err != nil {
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

// processBatch reads one batch and feeds each fix to its vessel's session.
// Returns how many messages were read.
func (w *PositionWorker) processBatch(ctx context.Context) (int, error) {
	logger := w.Logger()

	messages, err := w.streamRepo.ConsumeBatch(
		ctx,
		domain.StreamPositionIngest,
		w.ConsumerGroup(),
		w.consumerName,
		w.batchSize,
	)
	if err != nil {
		return 0, fmt.Errorf("failed to consume batch: %w", err)
	}

	if len(messages) == 0 {
		return 0, nil
	}

	ackIDs := make([]string, 0, len(messages))

	for _, msg := range messages {
		event, err := w.parseMessage(msg)
		if err != nil {
			logger.Warn("Failed to parse message, skipping",
				zap.String("message_id", msg.ID),
				zap.Error(err))
			w.metrics.IncFixRejected("invalid_payload")
			// Ack the broken message so it does not wedge the group.
			_ = w.streamRepo.AckMessage(ctx, domain.StreamPositionIngest, w.ConsumerGroup(), msg.ID)
			continue
		}

		vessel := domain.VesselMeta{BoatID: event.BoatID}
		if event.Vessel != nil {
			vessel = *event.Vessel
		}

		session, err := w.sessions.EnsureSession(ctx, vessel)
		if err != nil {
			// Capacity or permission trouble. Leave the message pending so
			// a later read retries it.
			logger.Error("Failed to obtain session",
				zap.String("boat_id", event.BoatID),
				zap.Error(err))
			continue
		}

		session.Push(event.Fix())
		w.metrics.IncFixIngested("stream")
		ackIDs = append(ackIDs, msg.ID)
	}

	if len(ackIDs) > 0 {
		if err := w.streamRepo.AckMessages(ctx, domain.StreamPositionIngest, w.ConsumerGroup(), ackIDs); err != nil {
			// Not fatal, the messages will be redelivered and re-pushed.
			logger.Error("Failed to ack messages", zap.Error(err))
		}
	}

	return len(messages), nil
}

func (w *PositionWorker) parseMessage(msg domain.StreamMessage) (*domain.PositionFixEvent, error) {
	var event domain.PositionFixEvent
	if err := json.Unmarshal([]byte(msg.Data), &event); err != nil {
		return nil, fmt.Errorf("failed to unmarshal event: %w", err)
	}

	if event.BoatID == "" {
		return nil, fmt.Errorf("missing boat_id")
	}
	if !geo.ValidCoordinates(event.Lat, event.Lon) {
		return nil, fmt.Errorf("invalid coordinates: %f, %f", event.Lat, event.Lon)
	}
	if event.Timestamp.IsZero() {
		event.Timestamp = time.Now().UTC()
	}

	return &event, nil
}
