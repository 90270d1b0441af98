// Package cache stores rendered artifacts keyed by a hash of their inputs.
//
// The replay command uses it to skip re-rendering frames whose render input
// has not changed since a previous run. [FileCache] persists entries under
// the user's cache directory, [NullCache] disables caching.
package cache

import (
	"context"
	"time"
)

// Cache is a byte store with optional expiry.
type Cache interface {
	// Get returns the stored data and whether the key was present.
	Get(ctx context.Context, key string) ([]byte, bool, error)
	// Set stores data under key. A non-positive ttl never expires.
	Set(ctx context.Context, key string, data []byte, ttl time.Duration) error
	Delete(ctx context.Context, key string) error
	Close() error
}
