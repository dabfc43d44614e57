// Copyright (c) 2025-2026 Kanata Chinese Seniors Support Centre
// SPDX-License-Identifier: GPL-3.0-or-later

package cache

import (
	"context"
	"time"

	"github.com/kcssc/kcssc-go/internal/model"
)

// Cache keys for the entity list caches. One entry per entity type.
const (
	KeyEvents   = "events:all"
	KeyPrograms = "programs:all"
	KeyPhotos   = "photos:all"
)

// EntityCaches holds the per-entity list caches used by the data service.
// Construct once at startup and pass by reference; there is no package-level
// cache state.
type EntityCaches struct {
	Events   *TypedCache[[]model.Event]
	Programs *TypedCache[[]model.Program]
	Photos   *TypedCache[[]model.Photo]

	backend Cacher
}

// NewEntityCaches wraps a backend cache with typed entity-list views.
func NewEntityCaches(backend Cacher, ttl time.Duration) *EntityCaches {
	return &EntityCaches{
		Events:   NewTypedCache[[]model.Event](backend, ttl),
		Programs: NewTypedCache[[]model.Program](backend, ttl),
		Photos:   NewTypedCache[[]model.Photo](backend, ttl),
		backend:  backend,
	}
}

// InvalidateEvents clears the events list entry so the next read re-fetches.
func (c *EntityCaches) InvalidateEvents(ctx context.Context) {
	_ = c.Events.Delete(ctx, KeyEvents)
}

// InvalidatePrograms clears the programs list entry.
func (c *EntityCaches) InvalidatePrograms(ctx context.Context) {
	_ = c.Programs.Delete(ctx, KeyPrograms)
}

// InvalidatePhotos clears the photos list entry.
func (c *EntityCaches) InvalidatePhotos(ctx context.Context) {
	_ = c.Photos.Delete(ctx, KeyPhotos)
}

// Stats returns backend statistics when the backend tracks them.
func (c *EntityCaches) Stats() (Stats, bool) {
	if sp, ok := c.backend.(StatsProvider); ok {
		return sp.Stats(), true
	}
	return Stats{}, false
}

// Close closes the backend cache.
func (c *EntityCaches) Close() error {
	return c.backend.Close()
}
