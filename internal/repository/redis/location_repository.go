package redis

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/vessel-monitor/internal/domain"
	"github.com/vessel-monitor/internal/domain/repository"
	"github.com/vessel-monitor/internal/pkg/errors"
)

const (
	lastFixKeyPrefix = "monitor:lastfix:"
	optOutKeyPrefix  = "monitor:optout:"

	// lastFixTTL expires stale positions so a polling session never
	// acts on a fix from a previous trip.
	lastFixTTL = time.Hour
)

type locationRepository struct {
	client *redis.Client
	logger *zap.Logger
}

// NewLocationRepository creates the Redis-backed location provider. The
// ingest pipeline stores each accepted fix; polling sessions read it back.
func NewLocationRepository(r *Redis) repository.LocationRepository {
	return &locationRepository{
		client: r.Client(),
		logger: r.logger,
	}
}

// RequestPermission honors vessel owner opt-outs.
func (r *locationRepository) RequestPermission(ctx context.Context, boatID string) (bool, error) {
	optedOut, err := r.client.Exists(ctx, optOutKeyPrefix+boatID).Result()
	if err != nil {
		r.logger.Error("Failed to check tracking opt-out",
			zap.String("boat_id", boatID), zap.Error(err))
		return false, fmt.Errorf("opt-out check error: %w", err)
	}
	return optedOut == 0, nil
}

func (r *locationRepository) CurrentPosition(ctx context.Context, boatID string) (*domain.PositionFix, error) {
	data, err := r.client.Get(ctx, lastFixKeyPrefix+boatID).Bytes()
	if err == redis.Nil {
		return nil, errors.ErrPositionUnavailable
	}
	if err != nil {
		r.logger.Error("Failed to read last fix",
			zap.String("boat_id", boatID), zap.Error(err))
		return nil, fmt.Errorf("last fix read error: %w", err)
	}

	var fix domain.PositionFix
	if err := json.Unmarshal(data, &fix); err != nil {
		r.logger.Error("Corrupt last fix payload",
			zap.String("boat_id", boatID), zap.Error(err))
		return nil, fmt.Errorf("last fix decode error: %w", err)
	}
	return &fix, nil
}

// StorePosition records the freshest fix for a vessel.
func (r *locationRepository) StorePosition(ctx context.Context, boatID string, fix domain.PositionFix) error {
	data, err := json.Marshal(fix)
	if err != nil {
		return fmt.Errorf("last fix encode error: %w", err)
	}
	if err := r.client.Set(ctx, lastFixKeyPrefix+boatID, data, lastFixTTL).Err(); err != nil {
		r.logger.Error("Failed to store last fix",
			zap.String("boat_id", boatID), zap.Error(err))
		return fmt.Errorf("last fix write error: %w", err)
	}
	return nil
}
