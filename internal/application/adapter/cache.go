// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"
	"time"
)

// Cache defines a small key/value cache used for analytics results.
// Implementations are best-effort: callers treat errors as cache misses.
type Cache interface {
	// Get retrieves the value for a key. The second return value is false
	// when the key is absent.
	Get(ctx context.Context, key string) (string, bool, error)

	// Set stores a value with a time-to-live.
	Set(ctx context.Context, key, value string, ttl time.Duration) error

	// Delete removes a key.
	Delete(ctx context.Context, key string) error
}
