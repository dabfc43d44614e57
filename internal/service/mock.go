// Copyright (c) 2025-2026 Kanata Chinese Seniors Support Centre
// SPDX-License-Identifier: GPL-3.0-or-later

package service

import (
	"context"
	"strconv"
	"strings"
	"time"

	"github.com/kcssc/kcssc-go/internal/datetext"
	"github.com/kcssc/kcssc-go/internal/mockdata"
	"github.com/kcssc/kcssc-go/internal/model"
)

// DefaultMockDelay approximates a network round trip so the site's loading
// states stay visible during demos.
const DefaultMockDelay = 1500 * time.Millisecond

// MockBackend serves the built-in sample content. Reads succeed after a
// simulated delay; writes return ErrNoBackend.
type MockBackend struct {
	delay time.Duration
}

// NewMockBackend creates a MockBackend with the given simulated latency.
// Use zero in tests.
func NewMockBackend(delay time.Duration) *MockBackend {
	return &MockBackend{delay: delay}
}

func (m *MockBackend) wait(ctx context.Context) error {
	if m.delay <= 0 {
		return nil
	}
	t := time.NewTimer(m.delay)
	defer t.Stop()
	select {
	case <-t.C:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

func (m *MockBackend) ListEvents(ctx context.Context, f model.EventFilter) ([]model.Event, error) {
	if err := m.wait(ctx); err != nil {
		return nil, err
	}
	return filterEvents(mockdata.Events(), f), nil
}

func (m *MockBackend) GetEvent(ctx context.Context, id int64) (model.Event, error) {
	if err := m.wait(ctx); err != nil {
		return model.Event{}, err
	}
	for _, e := range mockdata.Events() {
		if e.ID == id {
			return e, nil
		}
	}
	return model.Event{}, model.ErrNotFound
}

func (m *MockBackend) CreateEvent(ctx context.Context, _ model.Event) (model.Event, error) {
	return model.Event{}, ErrNoBackend
}

func (m *MockBackend) UpdateEvent(ctx context.Context, _ int64, _ model.Event) (model.Event, error) {
	return model.Event{}, ErrNoBackend
}

func (m *MockBackend) DeleteEvent(ctx context.Context, _ int64) error {
	return ErrNoBackend
}

func (m *MockBackend) ListPrograms(ctx context.Context, f model.ProgramFilter) ([]model.Program, error) {
	if err := m.wait(ctx); err != nil {
		return nil, err
	}
	return filterPrograms(mockdata.Programs(), f), nil
}

func (m *MockBackend) GetProgram(ctx context.Context, id int64) (model.Program, error) {
	if err := m.wait(ctx); err != nil {
		return model.Program{}, err
	}
	for _, p := range mockdata.Programs() {
		if p.ID == id {
			return p, nil
		}
	}
	return model.Program{}, model.ErrNotFound
}

func (m *MockBackend) CreateProgram(ctx context.Context, _ model.Program) (model.Program, error) {
	return model.Program{}, ErrNoBackend
}

func (m *MockBackend) UpdateProgram(ctx context.Context, _ int64, _ model.Program) (model.Program, error) {
	return model.Program{}, ErrNoBackend
}

func (m *MockBackend) DeleteProgram(ctx context.Context, _ int64) error {
	return ErrNoBackend
}

func (m *MockBackend) ListPhotos(ctx context.Context, f model.PhotoFilter) ([]model.Photo, error) {
	if err := m.wait(ctx); err != nil {
		return nil, err
	}
	return filterPhotos(mockdata.Photos(), f), nil
}

func (m *MockBackend) GetPhoto(ctx context.Context, id int64) (model.Photo, error) {
	if err := m.wait(ctx); err != nil {
		return model.Photo{}, err
	}
	for _, p := range mockdata.Photos() {
		if p.ID == id {
			return p, nil
		}
	}
	return model.Photo{}, model.ErrNotFound
}

func (m *MockBackend) CreatePhoto(ctx context.Context, _ model.Photo) (model.Photo, error) {
	return model.Photo{}, ErrNoBackend
}

func (m *MockBackend) UpdatePhoto(ctx context.Context, _ int64, _ model.PhotoPatch) (model.Photo, error) {
	return model.Photo{}, ErrNoBackend
}

func (m *MockBackend) DeletePhoto(ctx context.Context, _ int64) error {
	return ErrNoBackend
}

// filterEvents applies an EventFilter in memory with the same contract as
// the SQL path: category is an exact match, date bounds are inclusive, and
// events whose date cannot be parsed never match a bounded query.
func filterEvents(events []model.Event, f model.EventFilter) []model.Event {
	if f.IsZero() {
		return events
	}
	var out []model.Event
	for _, e := range events {
		if f.Category != "" && e.Category != f.Category {
			continue
		}
		if f.Featured != nil && e.Featured != *f.Featured {
			continue
		}
		if f.StartDate != "" || f.EndDate != "" {
			d, err := datetext.ParseDate(e.Date)
			if err != nil {
				continue
			}
			if f.StartDate != "" {
				start, err := datetext.ParseDate(f.StartDate)
				if err != nil || d.Before(start) {
					continue
				}
			}
			if f.EndDate != "" {
				end, err := datetext.ParseDate(f.EndDate)
				if err != nil || d.After(end) {
					continue
				}
			}
		}
		out = append(out, e)
	}
	return out
}

func filterPrograms(programs []model.Program, f model.ProgramFilter) []model.Program {
	if f.IsZero() {
		return programs
	}
	var out []model.Program
	for _, p := range programs {
		if f.Category != "" && p.Category != f.Category {
			continue
		}
		if f.AgeGroup != "" && p.AgeGroup != f.AgeGroup {
			continue
		}
		out = append(out, p)
	}
	return out
}

func filterPhotos(photos []model.Photo, f model.PhotoFilter) []model.Photo {
	if f.IsZero() {
		return photos
	}
	var out []model.Photo
	for _, p := range photos {
		if f.Favourite != nil && p.Favourite != *f.Favourite {
			continue
		}
		if f.Event != "" && p.Event != f.Event {
			continue
		}
		if f.Year != 0 && !strings.HasPrefix(p.Date, strconv.Itoa(f.Year)+"-") {
			continue
		}
		out = append(out, p)
	}
	return out
}
