package redis_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	redisRepo "github.com/vessel-monitor/internal/repository/redis"
)

// TestKVRepository_SetGetDelete tests the basic key lifecycle
func TestKVRepository_SetGetDelete(t *testing.T) {
	client := getTestRedisClient(t)
	defer client.Close()

	repo := redisRepo.NewKVRepository(redisRepo.NewRedisForTest(client, zap.NewNop()))
	ctx := context.Background()

	key := "test:kv:lifecycle"
	defer client.Del(ctx, key)

	// Set with a TTL
	err := repo.Set(ctx, key, []byte(`{"zone_id":"mumbai_naval_zone"}`), time.Minute)
	require.NoError(t, err)

	// Get returns the stored bytes
	value, err := repo.Get(ctx, key)
	require.NoError(t, err)
	assert.Equal(t, []byte(`{"zone_id":"mumbai_naval_zone"}`), value)

	// Exists
	exists, err := repo.Exists(ctx, key)
	require.NoError(t, err)
	assert.True(t, exists)

	// Delete
	err = repo.Delete(ctx, key)
	require.NoError(t, err)

	exists, err = repo.Exists(ctx, key)
	require.NoError(t, err)
	assert.False(t, exists)
}

// TestKVRepository_GetMissingKey tests that a missing key is not an error
func TestKVRepository_GetMissingKey(t *testing.T) {
	client := getTestRedisClient(t)
	defer client.Close()

	repo := redisRepo.NewKVRepository(redisRepo.NewRedisForTest(client, zap.NewNop()))
	ctx := context.Background()

	value, err := repo.Get(ctx, "test:kv:does-not-exist")
	assert.NoError(t, err)
	assert.Nil(t, value)
}

// TestKVRepository_SetWithoutTTL tests that zero TTL means no expiry
func TestKVRepository_SetWithoutTTL(t *testing.T) {
	client := getTestRedisClient(t)
	defer client.Close()

	repo := redisRepo.NewKVRepository(redisRepo.NewRedisForTest(client, zap.NewNop()))
	ctx := context.Background()

	key := "test:kv:no-ttl"
	defer client.Del(ctx, key)

	err := repo.Set(ctx, key, []byte("persistent"), 0)
	require.NoError(t, err)

	ttl, err := client.TTL(ctx, key).Result()
	require.NoError(t, err)
	assert.Equal(t, time.Duration(-1), ttl, "key should have no expiry")
}
