// Copyright (c) 2025-2026 Kanata Chinese Seniors Support Centre
// SPDX-License-Identifier: GPL-3.0-or-later

package service

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/kcssc/kcssc-go/internal/cache"
	"github.com/kcssc/kcssc-go/internal/mockdata"
	"github.com/kcssc/kcssc-go/internal/model"
)

// Mode says where the service gets its data.
type Mode int

const (
	// ModeMock serves the built-in sample content and rejects writes.
	ModeMock Mode = iota
	// ModeBackend reads and writes through a configured Backend, falling
	// back to sample content when reads fail.
	ModeBackend
)

// String implements fmt.Stringer for log output.
func (m Mode) String() string {
	if m == ModeBackend {
		return "backend"
	}
	return "mock"
}

// DataService is the single entry point for site data. It layers a
// five-minute list cache over every read path (backend, mock and degraded
// fallback alike), degrades reads to sample content when the backend is
// unreachable, and invalidates the cache after every successful write.
type DataService struct {
	mode    Mode
	backend Backend
	mock    *MockBackend
	caches  *cache.EntityCaches
	log     *slog.Logger
}

// Options configures a DataService.
type Options struct {
	// Backend supplies real data. Nil puts the service in mock mode.
	Backend Backend
	// Caches holds the entity list caches. Nil gets a process-local cache
	// with the default TTL.
	Caches *cache.EntityCaches
	// MockDelay is the simulated latency of mock-mode reads. The degraded
	// fallback path never waits.
	MockDelay time.Duration
	Logger    *slog.Logger
}

// defaultCacheTTL matches the site's five-minute list cache.
const defaultCacheTTL = 5 * time.Minute

// New creates a DataService from the given options.
func New(opts Options) *DataService {
	log := opts.Logger
	if log == nil {
		log = slog.Default()
	}
	mode := ModeMock
	if opts.Backend != nil {
		mode = ModeBackend
	}
	caches := opts.Caches
	if caches == nil {
		caches = cache.NewEntityCaches(cache.NewMemoryCache(cache.MemoryCacheOptions{
			DefaultTTL: defaultCacheTTL,
		}), defaultCacheTTL)
	}
	return &DataService{
		mode:    mode,
		backend: opts.Backend,
		mock:    NewMockBackend(opts.MockDelay),
		caches:  caches,
		log:     log,
	}
}

// Mode reports where the service currently gets its data.
func (s *DataService) Mode() Mode {
	return s.mode
}

// degrade logs a failed backend read. The caller answers from sample data,
// so the request still succeeds; the log line is the only signal.
func (s *DataService) degrade(entity string, err error) {
	s.log.Warn("backend read failed, serving sample data",
		"entity", entity, "error", err)
}

// Events lists events. Unfiltered lists are served from and stored in the
// TTL cache whatever their source; filtered lists always hit the source so
// the filter runs in SQL (or on the remote API).
func (s *DataService) Events(ctx context.Context, f model.EventFilter) ([]model.Event, error) {
	if f.IsZero() {
		if cached, ok := s.caches.Events.Get(ctx, cache.KeyEvents); ok {
			return cached, nil
		}
	}
	if s.mode == ModeMock {
		events, err := s.mock.ListEvents(ctx, f)
		if err != nil {
			return nil, err
		}
		s.cacheEvents(ctx, f, events)
		return events, nil
	}
	events, err := s.backend.ListEvents(ctx, f)
	if err != nil {
		if errors.Is(err, ErrInvalidInput) {
			return nil, err
		}
		s.degrade("events", err)
		events = filterEvents(mockdata.Events(), f)
	}
	s.cacheEvents(ctx, f, events)
	return events, nil
}

func (s *DataService) cacheEvents(ctx context.Context, f model.EventFilter, events []model.Event) {
	if !f.IsZero() {
		return
	}
	if err := s.caches.Events.Set(ctx, cache.KeyEvents, events); err != nil {
		s.log.Warn("caching events failed", "error", err)
	}
}

// EventsFresh drops any cached events list and re-fetches.
func (s *DataService) EventsFresh(ctx context.Context) ([]model.Event, error) {
	s.caches.InvalidateEvents(ctx)
	return s.Events(ctx, model.EventFilter{})
}

// Event returns a single event by id. A backend miss or failure falls
// through to the sample set; ErrNotFound means the id is absent from both.
func (s *DataService) Event(ctx context.Context, id int64) (model.Event, error) {
	if s.mode == ModeMock {
		return s.mock.GetEvent(ctx, id)
	}
	e, err := s.backend.GetEvent(ctx, id)
	if err != nil {
		if !errors.Is(err, model.ErrNotFound) {
			s.degrade("events", err)
		}
		return findEvent(mockdata.Events(), id)
	}
	return e, nil
}

// CreateEvent stores a new event and drops the cached list.
func (s *DataService) CreateEvent(ctx context.Context, e model.Event) (model.Event, error) {
	if s.mode == ModeMock {
		return model.Event{}, ErrNoBackend
	}
	created, err := s.backend.CreateEvent(ctx, e)
	if err != nil {
		return model.Event{}, err
	}
	s.caches.InvalidateEvents(ctx)
	return created, nil
}

// UpdateEvent replaces an event and drops the cached list.
func (s *DataService) UpdateEvent(ctx context.Context, id int64, e model.Event) (model.Event, error) {
	if s.mode == ModeMock {
		return model.Event{}, ErrNoBackend
	}
	updated, err := s.backend.UpdateEvent(ctx, id, e)
	if err != nil {
		return model.Event{}, err
	}
	s.caches.InvalidateEvents(ctx)
	return updated, nil
}

// DeleteEvent removes an event and drops the cached list.
func (s *DataService) DeleteEvent(ctx context.Context, id int64) error {
	if s.mode == ModeMock {
		return ErrNoBackend
	}
	if err := s.backend.DeleteEvent(ctx, id); err != nil {
		return err
	}
	s.caches.InvalidateEvents(ctx)
	return nil
}

// Programs lists programs, cached when unfiltered.
func (s *DataService) Programs(ctx context.Context, f model.ProgramFilter) ([]model.Program, error) {
	if f.IsZero() {
		if cached, ok := s.caches.Programs.Get(ctx, cache.KeyPrograms); ok {
			return cached, nil
		}
	}
	if s.mode == ModeMock {
		programs, err := s.mock.ListPrograms(ctx, f)
		if err != nil {
			return nil, err
		}
		s.cachePrograms(ctx, f, programs)
		return programs, nil
	}
	programs, err := s.backend.ListPrograms(ctx, f)
	if err != nil {
		if errors.Is(err, ErrInvalidInput) {
			return nil, err
		}
		s.degrade("programs", err)
		programs = filterPrograms(mockdata.Programs(), f)
	}
	s.cachePrograms(ctx, f, programs)
	return programs, nil
}

func (s *DataService) cachePrograms(ctx context.Context, f model.ProgramFilter, programs []model.Program) {
	if !f.IsZero() {
		return
	}
	if err := s.caches.Programs.Set(ctx, cache.KeyPrograms, programs); err != nil {
		s.log.Warn("caching programs failed", "error", err)
	}
}

// ProgramsFresh drops any cached programs list and re-fetches.
func (s *DataService) ProgramsFresh(ctx context.Context) ([]model.Program, error) {
	s.caches.InvalidatePrograms(ctx)
	return s.Programs(ctx, model.ProgramFilter{})
}

// Program returns a single program by id, falling through to the sample set
// like Event does.
func (s *DataService) Program(ctx context.Context, id int64) (model.Program, error) {
	if s.mode == ModeMock {
		return s.mock.GetProgram(ctx, id)
	}
	p, err := s.backend.GetProgram(ctx, id)
	if err != nil {
		if !errors.Is(err, model.ErrNotFound) {
			s.degrade("programs", err)
		}
		return findProgram(mockdata.Programs(), id)
	}
	return p, nil
}

// CreateProgram stores a new program and drops the cached list.
func (s *DataService) CreateProgram(ctx context.Context, p model.Program) (model.Program, error) {
	if s.mode == ModeMock {
		return model.Program{}, ErrNoBackend
	}
	created, err := s.backend.CreateProgram(ctx, p)
	if err != nil {
		return model.Program{}, err
	}
	s.caches.InvalidatePrograms(ctx)
	return created, nil
}

// UpdateProgram replaces a program and drops the cached list.
func (s *DataService) UpdateProgram(ctx context.Context, id int64, p model.Program) (model.Program, error) {
	if s.mode == ModeMock {
		return model.Program{}, ErrNoBackend
	}
	updated, err := s.backend.UpdateProgram(ctx, id, p)
	if err != nil {
		return model.Program{}, err
	}
	s.caches.InvalidatePrograms(ctx)
	return updated, nil
}

// DeleteProgram removes a program and drops the cached list.
func (s *DataService) DeleteProgram(ctx context.Context, id int64) error {
	if s.mode == ModeMock {
		return ErrNoBackend
	}
	if err := s.backend.DeleteProgram(ctx, id); err != nil {
		return err
	}
	s.caches.InvalidatePrograms(ctx)
	return nil
}

// Photos lists photos, cached when unfiltered.
func (s *DataService) Photos(ctx context.Context, f model.PhotoFilter) ([]model.Photo, error) {
	if f.IsZero() {
		if cached, ok := s.caches.Photos.Get(ctx, cache.KeyPhotos); ok {
			return cached, nil
		}
	}
	if s.mode == ModeMock {
		photos, err := s.mock.ListPhotos(ctx, f)
		if err != nil {
			return nil, err
		}
		s.cachePhotos(ctx, f, photos)
		return photos, nil
	}
	photos, err := s.backend.ListPhotos(ctx, f)
	if err != nil {
		if errors.Is(err, ErrInvalidInput) {
			return nil, err
		}
		s.degrade("photos", err)
		photos = filterPhotos(mockdata.Photos(), f)
	}
	s.cachePhotos(ctx, f, photos)
	return photos, nil
}

func (s *DataService) cachePhotos(ctx context.Context, f model.PhotoFilter, photos []model.Photo) {
	if !f.IsZero() {
		return
	}
	if err := s.caches.Photos.Set(ctx, cache.KeyPhotos, photos); err != nil {
		s.log.Warn("caching photos failed", "error", err)
	}
}

// PhotosFresh drops any cached photos list and re-fetches.
func (s *DataService) PhotosFresh(ctx context.Context) ([]model.Photo, error) {
	s.caches.InvalidatePhotos(ctx)
	return s.Photos(ctx, model.PhotoFilter{})
}

// Photo returns a single photo by id, falling through to the sample set
// like Event does.
func (s *DataService) Photo(ctx context.Context, id int64) (model.Photo, error) {
	if s.mode == ModeMock {
		return s.mock.GetPhoto(ctx, id)
	}
	p, err := s.backend.GetPhoto(ctx, id)
	if err != nil {
		if !errors.Is(err, model.ErrNotFound) {
			s.degrade("photos", err)
		}
		return findPhoto(mockdata.Photos(), id)
	}
	return p, nil
}

// CreatePhoto stores a new photo and drops the cached list.
func (s *DataService) CreatePhoto(ctx context.Context, p model.Photo) (model.Photo, error) {
	if s.mode == ModeMock {
		return model.Photo{}, ErrNoBackend
	}
	created, err := s.backend.CreatePhoto(ctx, p)
	if err != nil {
		return model.Photo{}, err
	}
	s.caches.InvalidatePhotos(ctx)
	return created, nil
}

// UpdatePhoto applies a partial photo update and drops the cached list.
func (s *DataService) UpdatePhoto(ctx context.Context, id int64, patch model.PhotoPatch) (model.Photo, error) {
	if s.mode == ModeMock {
		return model.Photo{}, ErrNoBackend
	}
	updated, err := s.backend.UpdatePhoto(ctx, id, patch)
	if err != nil {
		return model.Photo{}, err
	}
	s.caches.InvalidatePhotos(ctx)
	return updated, nil
}

// DeletePhoto removes a photo and drops the cached list.
func (s *DataService) DeletePhoto(ctx context.Context, id int64) error {
	if s.mode == ModeMock {
		return ErrNoBackend
	}
	if err := s.backend.DeletePhoto(ctx, id); err != nil {
		return err
	}
	s.caches.InvalidatePhotos(ctx)
	return nil
}

func findEvent(events []model.Event, id int64) (model.Event, error) {
	for _, e := range events {
		if e.ID == id {
			return e, nil
		}
	}
	return model.Event{}, model.ErrNotFound
}

func findProgram(programs []model.Program, id int64) (model.Program, error) {
	for _, p := range programs {
		if p.ID == id {
			return p, nil
		}
	}
	return model.Program{}, model.ErrNotFound
}

func findPhoto(photos []model.Photo, id int64) (model.Photo, error) {
	for _, p := range photos {
		if p.ID == id {
			return p, nil
		}
	}
	return model.Photo{}, model.ErrNotFound
}
