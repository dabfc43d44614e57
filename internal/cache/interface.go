// Copyright (c) 2025-2026 Kanata Chinese Seniors Support Centre
// SPDX-License-Identifier: GPL-3.0-or-later

// Package cache provides the caching infrastructure for the site: a
// byte-oriented Cacher interface with in-memory and Redis implementations,
// and typed wrappers for the entity lists the data service keeps warm.
package cache

import (
	"context"
	"time"
)

// Cacher is the interface all cache backends implement.
// Implementations must be safe for concurrent use. Values are []byte so the
// same interface serves both the in-memory and the Redis backend.
type Cacher interface {
	// Get retrieves a value. Returns ErrCacheMiss if absent or expired.
	Get(ctx context.Context, key string) ([]byte, error)

	// Set stores a value with the given TTL. A zero TTL uses the default.
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error

	// Delete removes a key.
	Delete(ctx context.Context, key string) error

	// Clear removes all entries.
	Clear(ctx context.Context) error

	// Has reports whether a key exists and is not expired.
	Has(ctx context.Context, key string) (bool, error)

	// Close releases any resources held by the cache.
	Close() error
}

// StatsProvider is an optional interface for caches that track statistics.
type StatsProvider interface {
	Stats() Stats
}

// Stats holds cache statistics.
type Stats struct {
	Hits    int64   `json:"hits"`
	Misses  int64   `json:"misses"`
	Sets    int64   `json:"sets"`
	Items   int     `json:"items"`
	HitRate float64 `json:"hit_rate"`
}

// Error is the error type for cache operations.
type Error string

func (e Error) Error() string { return string(e) }

const (
	// ErrCacheMiss indicates the key was not found or has expired.
	ErrCacheMiss Error = "cache miss"

	// ErrCacheClosed indicates the cache has been closed.
	ErrCacheClosed Error = "cache closed"
)
