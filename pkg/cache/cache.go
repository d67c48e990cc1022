// Package cache is the shared key/value store behind rate limiting, the
// travel context digest and chat sessions.
package cache

import (
	"context"
	"errors"
	"time"
)

// ErrUnavailable wraps backend failures (connection refused, timeouts).
var ErrUnavailable = errors.New("cache unavailable")

// Store is atomic per key only. There are no cross-key transactions.
type Store interface {
	// Get returns ok=false when the key is missing or expired.
	Get(ctx context.Context, key string) (value string, ok bool, err error)

	// Set overwrites the key. A ttl <= 0 keeps the value until deleted.
	Set(ctx context.Context, key string, value string, ttl time.Duration) error

	Delete(ctx context.Context, key string) error
}
