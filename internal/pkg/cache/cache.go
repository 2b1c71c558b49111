// Package cache provides a small TTL key-value store abstraction.
//
// Production code depends on the Cache interface so business logic can run
// against Redis in production and an in-memory store in tests.
package cache

import (
	"context"
	"errors"
	"time"
)

// ErrMiss is returned by Get when the key does not exist or has expired.
var ErrMiss = errors.New("cache: key not found")

// Cache is a TTL key-value store.
type Cache interface {
	// Get returns the value stored under key, or ErrMiss.
	Get(ctx context.Context, key string) (string, error)
	// Set stores value under key with the given TTL, replacing any
	// existing value. A non-positive TTL stores the key without expiry.
	Set(ctx context.Context, key, value string, ttl time.Duration) error
	// SetNX stores value under key only when the key does not already
	// exist. It reports whether the key was set.
	SetNX(ctx context.Context, key, value string, ttl time.Duration) (bool, error)
	// Delete removes key. Deleting a missing key is not an error.
	Delete(ctx context.Context, key string) error
	// Incr atomically increments the integer stored under key and returns
	// the new value. Every increment resets the key's TTL, so the expiry
	// window rolls from the most recent increment.
	Incr(ctx context.Context, key string, ttl time.Duration) (int64, error)
}
