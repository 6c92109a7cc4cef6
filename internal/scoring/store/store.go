// Package store provides the key-value cache behind the scoring methods:
// a Redis-backed implementation with retry-on-transient-failure semantics
// and an in-memory twin for tests and local development.
package store

import (
	"context"
	"errors"
	"time"
)

// ErrKeyNotFound reports that a key is legitimately absent. Absence is not
// transient: it is surfaced immediately, never retried.
var ErrKeyNotFound = errors.New("store: key not found")

// Store is the cache contract the scoring methods consume.
//
// CacheGet and CacheSet are best-effort cache accessors: a miss is not an
// error (ok=false), and callers are free to ignore failures. Get is the
// strict accessor used by interest lookups: an absent key becomes
// ErrKeyNotFound.
type Store interface {
	// CacheSet stores value under key with the given TTL.
	CacheSet(ctx context.Context, key, value string, ttl time.Duration) error

	// CacheGet returns the value under key. ok is false when the key is
	// absent; err reports connectivity failures only.
	CacheGet(ctx context.Context, key string) (value string, ok bool, err error)

	// Get returns the value under key, or ErrKeyNotFound when absent.
	Get(ctx context.Context, key string) (string, error)
}
