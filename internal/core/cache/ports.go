package cache

import (
	"context"
	"errors"
	"time"
)

// ErrCacheMiss is returned by Get when the key does not exist.
var ErrCacheMiss = errors.New("cache: key not found")

// Cache is the key-value port used by the shipping feature for weight overrides
// and quote caching.
type Cache interface {
	// Get retrieves a value by key. Missing keys return an error wrapping ErrCacheMiss.
	Get(ctx context.Context, key string) ([]byte, error)

	// GetMany retrieves several keys in one round trip. Missing keys are absent from the result.
	GetMany(ctx context.Context, keys ...string) (map[string][]byte, error)

	// Set stores a value with the specified TTL. A TTL of 0 means no expiration.
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error

	// Incr atomically increments an integer counter, creating it at 0 first, and returns the new value.
	Incr(ctx context.Context, key string) (int64, error)

	// Delete removes a value by key.
	Delete(ctx context.Context, key string) error

	// Ping checks if the cache service is reachable.
	Ping(ctx context.Context) error

	// Close closes the cache connection.
	Close() error
}
