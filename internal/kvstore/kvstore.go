// Package kvstore declares a minimal expiring key-value cache contract and
// provides Redis-backed and in-memory implementations. Expiry is enforced by
// the store itself; callers never re-check TTLs.
package kvstore

import (
	"context"
	"time"
)

// Store is an expiring key-value cache.
type Store interface {
	// Set writes value under key with the given TTL, overwriting any
	// previous value and its remaining TTL.
	Set(ctx context.Context, key string, value string, ttl time.Duration) error

	// Get returns the value for key. A missing or expired key yields
	// common.ErrorNotFound.
	Get(ctx context.Context, key string) (string, error)

	// Remove deletes key. Removing a non-existent key is a no-op success.
	Remove(ctx context.Context, key string) error
}
