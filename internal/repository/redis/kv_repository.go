package redis

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/vessel-monitor/internal/domain/repository"
)

type kvRepository struct {
	client *redis.Client
	logger *zap.Logger
}

// NewKVRepository creates the Redis-backed key-value store used for
// debounce checkpoints and last-known positions.
func NewKVRepository(r *Redis) repository.KVRepository {
	return &kvRepository{
		client: r.Client(),
		logger: r.logger,
	}
}

func (r *kvRepository) Get(ctx context.Context, key string) ([]byte, error) {
	val, err := r.client.Get(ctx, key).Bytes()
	if err == redis.Nil {
		return nil, nil // miss
	}
	if err != nil {
		r.logger.Error("Failed to get key", zap.String("key", key), zap.Error(err))
		return nil, fmt.Errorf("kv get error: %w", err)
	}
	return val, nil
}

func (r *kvRepository) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	err := r.client.Set(ctx, key, value, ttl).Err()
	if err != nil {
		r.logger.Error("Failed to set key", zap.String("key", key), zap.Error(err))
		return fmt.Errorf("kv set error: %w", err)
	}
	return nil
}

func (r *kvRepository) Delete(ctx context.Context, key string) error {
	err := r.client.Del(ctx, key).Err()
	if err != nil {
		r.logger.Error("Failed to delete key", zap.String("key", key), zap.Error(err))
		return fmt.Errorf("kv delete error: %w", err)
	}
	return nil
}

func (r *kvRepository) Exists(ctx context.Context, key string) (bool, error) {
	val, err := r.client.Exists(ctx, key).Result()
	if err != nil {
		r.logger.Error("Failed to check key existence", zap.String("key", key), zap.Error(err))
		return false, fmt.Errorf("kv exists error: %w", err)
	}
	return val > 0, nil
}
