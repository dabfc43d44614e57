// Copyright (c) 2025-2026 Kanata Chinese Seniors Support Centre
// SPDX-License-Identifier: GPL-3.0-or-later

package cache

import (
	"context"
	"sync"
	"sync/atomic"
	"time"
)

// MemoryCache is a thread-safe in-memory cache with per-entry TTLs.
// The clock is injectable so TTL behavior is testable without sleeping.
type MemoryCache struct {
	mu     sync.RWMutex
	data   map[string]memoryEntry
	now    func() time.Time
	ttl    time.Duration
	stopCh chan struct{}
	closed atomic.Bool

	hits   atomic.Int64
	misses atomic.Int64
	sets   atomic.Int64
}

type memoryEntry struct {
	value     []byte
	expiresAt time.Time
}

// MemoryCacheOptions configures a MemoryCache.
type MemoryCacheOptions struct {
	DefaultTTL      time.Duration
	CleanupInterval time.Duration    // 0 disables the background sweep
	Clock           func() time.Time // nil uses time.Now
}

// NewMemoryCache creates a memory cache with the given options.
func NewMemoryCache(opts MemoryCacheOptions) *MemoryCache {
	clock := opts.Clock
	if clock == nil {
		clock = time.Now
	}
	c := &MemoryCache{
		data:   make(map[string]memoryEntry),
		now:    clock,
		ttl:    opts.DefaultTTL,
		stopCh: make(chan struct{}),
	}
	if opts.CleanupInterval > 0 {
		go c.cleanupLoop(opts.CleanupInterval)
	}
	return c
}

// NewSimpleMemoryCache creates a memory cache with just a default TTL and a
// one-minute cleanup sweep.
func NewSimpleMemoryCache(ttl time.Duration) *MemoryCache {
	return NewMemoryCache(MemoryCacheOptions{
		DefaultTTL:      ttl,
		CleanupInterval: time.Minute,
	})
}

// Get retrieves a value from the cache.
func (c *MemoryCache) Get(_ context.Context, key string) ([]byte, error) {
	if c.closed.Load() {
		return nil, ErrCacheClosed
	}

	c.mu.RLock()
	entry, ok := c.data[key]
	c.mu.RUnlock()

	if !ok || c.now().After(entry.expiresAt) {
		if ok {
			c.mu.Lock()
			delete(c.data, key)
			c.mu.Unlock()
		}
		c.misses.Add(1)
		return nil, ErrCacheMiss
	}

	c.hits.Add(1)
	// Copy so callers cannot mutate the cached bytes.
	out := make([]byte, len(entry.value))
	copy(out, entry.value)
	return out, nil
}

// Set stores a value with the given TTL.
func (c *MemoryCache) Set(_ context.Context, key string, value []byte, ttl time.Duration) error {
	if c.closed.Load() {
		return ErrCacheClosed
	}
	if ttl == 0 {
		ttl = c.ttl
	}

	buf := make([]byte, len(value))
	copy(buf, value)

	c.mu.Lock()
	c.data[key] = memoryEntry{value: buf, expiresAt: c.now().Add(ttl)}
	c.mu.Unlock()

	c.sets.Add(1)
	return nil
}

// Delete removes a key from the cache.
func (c *MemoryCache) Delete(_ context.Context, key string) error {
	if c.closed.Load() {
		return ErrCacheClosed
	}
	c.mu.Lock()
	delete(c.data, key)
	c.mu.Unlock()
	return nil
}

// Clear removes all entries.
func (c *MemoryCache) Clear(_ context.Context) error {
	if c.closed.Load() {
		return ErrCacheClosed
	}
	c.mu.Lock()
	c.data = make(map[string]memoryEntry)
	c.mu.Unlock()
	return nil
}

// Has reports whether a key exists and is not expired.
func (c *MemoryCache) Has(_ context.Context, key string) (bool, error) {
	if c.closed.Load() {
		return false, ErrCacheClosed
	}
	c.mu.RLock()
	entry, ok := c.data[key]
	c.mu.RUnlock()
	return ok && !c.now().After(entry.expiresAt), nil
}

// Close stops the cleanup goroutine.
func (c *MemoryCache) Close() error {
	if c.closed.CompareAndSwap(false, true) {
		close(c.stopCh)
	}
	return nil
}

// Stats returns current cache statistics.
func (c *MemoryCache) Stats() Stats {
	hits := c.hits.Load()
	misses := c.misses.Load()

	var rate float64
	if total := hits + misses; total > 0 {
		rate = float64(hits) / float64(total) * 100
	}

	c.mu.RLock()
	items := len(c.data)
	c.mu.RUnlock()

	return Stats{
		Hits:    hits,
		Misses:  misses,
		Sets:    c.sets.Load(),
		Items:   items,
		HitRate: rate,
	}
}

func (c *MemoryCache) cleanupLoop(interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			c.removeExpired()
		case <-c.stopCh:
			return
		}
	}
}

func (c *MemoryCache) removeExpired() {
	now := c.now()
	c.mu.Lock()
	for key, entry := range c.data {
		if now.After(entry.expiresAt) {
			delete(c.data, key)
		}
	}
	c.mu.Unlock()
}

var (
	_ Cacher        = (*MemoryCache)(nil)
	_ StatsProvider = (*MemoryCache)(nil)
)
