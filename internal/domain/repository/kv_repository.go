package repository

import (
	"context"
	"time"
)

// KVRepository is a small key-value store used for debounce checkpoints
// and last-known positions.
type KVRepository interface {
	// Get returns the value for a key. A missing key returns nil with
	// no error.
	Get(ctx context.Context, key string) ([]byte, error)

	// Set stores a value with a TTL. A zero TTL means no expiry.
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error

	// Delete removes a key.
	Delete(ctx context.Context, key string) error

	// Exists reports whether a key is present.
	Exists(ctx context.Context, key string) (bool, error)
}
