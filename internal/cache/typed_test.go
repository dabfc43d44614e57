package cache

import (
	"context"
	"testing"
	"time"

	"github.com/kcssc/kcssc-go/internal/model"
)

func TestTypedCacheRoundTrip(t *testing.T) {
	backend := NewMemoryCache(MemoryCacheOptions{DefaultTTL: time.Minute})
	t.Cleanup(func() { _ = backend.Close() })

	tc := NewTypedCache[[]model.Event](backend, time.Minute)
	ctx := context.Background()

	events := []model.Event{
		{ID: 1, Title: "Lunar New Year Celebration", Date: "January 25, 2025", Featured: true},
		{ID: 2, Title: "Tai Chi in the Park", Date: "January 20, 2025"},
	}
	if err := tc.Set(ctx, KeyEvents, events); err != nil {
		t.Fatalf("Set: %v", err)
	}

	got, ok := tc.Get(ctx, KeyEvents)
	if !ok {
		t.Fatal("expected cache hit")
	}
	if len(got) != 2 || got[0].Title != events[0].Title || !got[0].Featured {
		t.Errorf("Get = %+v", got)
	}
}

func TestTypedCacheMiss(t *testing.T) {
	backend := NewMemoryCache(MemoryCacheOptions{DefaultTTL: time.Minute})
	t.Cleanup(func() { _ = backend.Close() })

	tc := NewTypedCache[[]model.Program](backend, time.Minute)
	if _, ok := tc.Get(context.Background(), KeyPrograms); ok {
		t.Error("expected miss on empty cache")
	}
}

func TestEntityCachesInvalidate(t *testing.T) {
	backend := NewMemoryCache(MemoryCacheOptions{DefaultTTL: time.Minute})
	caches := NewEntityCaches(backend, time.Minute)
	t.Cleanup(func() { _ = caches.Close() })
	ctx := context.Background()

	_ = caches.Events.Set(ctx, KeyEvents, []model.Event{{ID: 1}})
	_ = caches.Photos.Set(ctx, KeyPhotos, []model.Photo{{ID: 9}})

	caches.InvalidateEvents(ctx)

	if _, ok := caches.Events.Get(ctx, KeyEvents); ok {
		t.Error("events entry should be gone after invalidation")
	}
	if _, ok := caches.Photos.Get(ctx, KeyPhotos); !ok {
		t.Error("photos entry should survive events invalidation")
	}
}
