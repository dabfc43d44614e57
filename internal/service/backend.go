// Copyright (c) 2025-2026 Kanata Chinese Seniors Support Centre
// SPDX-License-Identifier: GPL-3.0-or-later

// Package service implements the data service the site reads and writes
// through. A Backend supplies real data (local store or remote API); when
// none is configured the service answers reads from the built-in sample
// content and rejects writes.
package service

import (
	"context"
	"errors"

	"github.com/kcssc/kcssc-go/internal/model"
)

// ErrNoBackend is returned by write operations when the service runs in
// mock mode. Reads never return it; they fall back to sample data instead.
var ErrNoBackend = errors.New("no data backend configured")

// ErrInvalidInput wraps validation failures so handlers can answer 400
// instead of 500.
var ErrInvalidInput = errors.New("invalid input")

// Backend is a source of real site data. Implementations exist for the
// local SQLite store and for a remote HTTP API.
type Backend interface {
	ListEvents(ctx context.Context, f model.EventFilter) ([]model.Event, error)
	GetEvent(ctx context.Context, id int64) (model.Event, error)
	CreateEvent(ctx context.Context, e model.Event) (model.Event, error)
	UpdateEvent(ctx context.Context, id int64, e model.Event) (model.Event, error)
	DeleteEvent(ctx context.Context, id int64) error

	ListPrograms(ctx context.Context, f model.ProgramFilter) ([]model.Program, error)
	GetProgram(ctx context.Context, id int64) (model.Program, error)
	CreateProgram(ctx context.Context, p model.Program) (model.Program, error)
	UpdateProgram(ctx context.Context, id int64, p model.Program) (model.Program, error)
	DeleteProgram(ctx context.Context, id int64) error

	ListPhotos(ctx context.Context, f model.PhotoFilter) ([]model.Photo, error)
	GetPhoto(ctx context.Context, id int64) (model.Photo, error)
	CreatePhoto(ctx context.Context, p model.Photo) (model.Photo, error)
	UpdatePhoto(ctx context.Context, id int64, patch model.PhotoPatch) (model.Photo, error)
	DeletePhoto(ctx context.Context, id int64) error
}
