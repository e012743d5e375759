package repository

import (
	"context"

	"github.com/vessel-monitor/internal/domain"
)

// StreamRepository works with Redis Streams consumer groups.
type StreamRepository interface {
	// CreateConsumerGroup creates a consumer group, ignoring the error
	// when the group already exists.
	CreateConsumerGroup(ctx context.Context, stream, group string) error

	// ConsumeBatch blocks until messages are available and returns up to
	// count of them.
	ConsumeBatch(ctx context.Context, stream, group, consumer string, count int64) ([]domain.StreamMessage, error)

	// AckMessage confirms processing of a single message.
	AckMessage(ctx context.Context, stream, group, messageID string) error

	// AckMessages confirms processing of a batch.
	AckMessages(ctx context.Context, stream, group string, messageIDs []string) error

	// PublishToStream appends a message to a stream.
	PublishToStream(ctx context.Context, stream string, data interface{}) error
}
