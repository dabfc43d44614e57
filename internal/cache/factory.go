// Copyright (c) 2025-2026 Kanata Chinese Seniors Support Centre
// SPDX-License-Identifier: GPL-3.0-or-later

package cache

import "time"

// Config selects and configures a cache backend.
type Config struct {
	// RedisURL selects the Redis backend when non-empty.
	RedisURL string

	// Prefix is the Redis key prefix.
	Prefix string

	// DefaultTTL is the default TTL for cache entries.
	DefaultTTL time.Duration

	// CleanupInterval is the expired-entry sweep interval for the memory
	// backend.
	CleanupInterval time.Duration
}

// DefaultConfig returns the memory backend with a 5-minute TTL, matching
// the data-service freshness window.
func DefaultConfig() Config {
	return Config{
		DefaultTTL:      5 * time.Minute,
		CleanupInterval: time.Minute,
	}
}

// New creates a cache from the configuration: Redis when a URL is set,
// in-memory otherwise.
func New(cfg Config) (Cacher, error) {
	if cfg.RedisURL != "" {
		return NewRedisCache(RedisCacheOptions{
			URL:        cfg.RedisURL,
			Prefix:     cfg.Prefix,
			DefaultTTL: cfg.DefaultTTL,
		})
	}
	return NewMemoryCache(MemoryCacheOptions{
		DefaultTTL:      cfg.DefaultTTL,
		CleanupInterval: cfg.CleanupInterval,
	}), nil
}
