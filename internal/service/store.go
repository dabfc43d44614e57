// Copyright (c) 2025-2026 Kanata Chinese Seniors Support Centre
// SPDX-License-Identifier: GPL-3.0-or-later

package service

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/microcosm-cc/bluemonday"

	"github.com/kcssc/kcssc-go/internal/datetext"
	"github.com/kcssc/kcssc-go/internal/model"
	"github.com/kcssc/kcssc-go/internal/store"
	"github.com/kcssc/kcssc-go/internal/util"
)

// StoreBackend serves data from the local SQLite store. It converts between
// the display shapes the API exchanges and the row shapes the store keeps,
// and strips HTML from free-text fields on the way in.
type StoreBackend struct {
	q        *store.Queries
	sanitize *bluemonday.Policy
}

// NewStoreBackend wraps a Queries instance as a Backend.
func NewStoreBackend(q *store.Queries) *StoreBackend {
	return &StoreBackend{
		q:        q,
		sanitize: bluemonday.StrictPolicy(),
	}
}

func mapNoRows(err error) error {
	if errors.Is(err, sql.ErrNoRows) {
		return model.ErrNotFound
	}
	return err
}

func eventFromRow(row store.Event) (model.Event, error) {
	date, err := datetext.FormatRowDate(row.Date)
	if err != nil {
		return model.Event{}, fmt.Errorf("event %d: %w", row.ID, err)
	}
	timeRange, err := datetext.FormatTimeRange(row.Time, util.StringFromNull(row.EndTime))
	if err != nil {
		return model.Event{}, fmt.Errorf("event %d: %w", row.ID, err)
	}
	return model.Event{
		ID:          row.ID,
		Title:       row.Title,
		Date:        date,
		Time:        timeRange,
		Location:    row.Location,
		Category:    row.Category,
		Description: row.Description,
		Featured:    row.Featured,
		ImageURL:    util.PtrFromNullString(row.ImageURL),
	}, nil
}

func (b *StoreBackend) eventToParams(e model.Event) (store.CreateEventParams, error) {
	date, err := datetext.RowDate(e.Date)
	if err != nil {
		return store.CreateEventParams{}, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}
	start, end, err := datetext.ParseTimeRange(e.Time)
	if err != nil {
		return store.CreateEventParams{}, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}
	return store.CreateEventParams{
		Title:       b.sanitize.Sanitize(e.Title),
		Date:        date,
		Time:        start,
		EndTime:     sql.NullString{String: end, Valid: end != ""},
		Location:    b.sanitize.Sanitize(e.Location),
		Category:    e.Category,
		Description: b.sanitize.Sanitize(e.Description),
		Featured:    e.Featured,
		ImageURL:    util.NullStringFromPtr(e.ImageURL),
	}, nil
}

func (b *StoreBackend) ListEvents(ctx context.Context, f model.EventFilter) ([]model.Event, error) {
	params := store.EventListParams{
		Category: f.Category,
		Featured: f.Featured,
	}
	if f.StartDate != "" {
		row, err := datetext.RowDate(f.StartDate)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
		}
		params.StartDate = row
	}
	if f.EndDate != "" {
		row, err := datetext.RowDate(f.EndDate)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
		}
		params.EndDate = row
	}

	rows, err := b.q.ListEvents(ctx, params)
	if err != nil {
		return nil, err
	}
	events := make([]model.Event, 0, len(rows))
	for _, row := range rows {
		e, err := eventFromRow(row)
		if err != nil {
			return nil, err
		}
		events = append(events, e)
	}
	return events, nil
}

func (b *StoreBackend) GetEvent(ctx context.Context, id int64) (model.Event, error) {
	row, err := b.q.GetEvent(ctx, id)
	if err != nil {
		return model.Event{}, mapNoRows(err)
	}
	return eventFromRow(row)
}

func (b *StoreBackend) CreateEvent(ctx context.Context, e model.Event) (model.Event, error) {
	params, err := b.eventToParams(e)
	if err != nil {
		return model.Event{}, err
	}
	row, err := b.q.CreateEvent(ctx, params)
	if err != nil {
		return model.Event{}, err
	}
	return eventFromRow(row)
}

func (b *StoreBackend) UpdateEvent(ctx context.Context, id int64, e model.Event) (model.Event, error) {
	params, err := b.eventToParams(e)
	if err != nil {
		return model.Event{}, err
	}
	row, err := b.q.UpdateEvent(ctx, id, params)
	if err != nil {
		return model.Event{}, mapNoRows(err)
	}
	return eventFromRow(row)
}

func (b *StoreBackend) DeleteEvent(ctx context.Context, id int64) error {
	return mapNoRows(b.q.DeleteEvent(ctx, id))
}

func programFromRow(row store.Program) model.Program {
	return model.Program{
		ID:          row.ID,
		Title:       row.Title,
		Category:    row.Category,
		Icon:        row.Icon,
		Schedule:    row.Schedule,
		AgeGroup:    row.AgeGroup,
		Description: row.Description,
		Spots:       row.Spots,
		ImageURL:    util.PtrFromNullString(row.ImageURL),
	}
}

func (b *StoreBackend) programToParams(p model.Program) (store.CreateProgramParams, error) {
	if !model.ProgramIcons[p.Icon] {
		return store.CreateProgramParams{}, fmt.Errorf("%w: unknown icon %q", ErrInvalidInput, p.Icon)
	}
	return store.CreateProgramParams{
		Title:       b.sanitize.Sanitize(p.Title),
		Category:    p.Category,
		Icon:        p.Icon,
		Schedule:    b.sanitize.Sanitize(p.Schedule),
		AgeGroup:    b.sanitize.Sanitize(p.AgeGroup),
		Description: b.sanitize.Sanitize(p.Description),
		Spots:       b.sanitize.Sanitize(p.Spots),
		ImageURL:    util.NullStringFromPtr(p.ImageURL),
	}, nil
}

func (b *StoreBackend) ListPrograms(ctx context.Context, f model.ProgramFilter) ([]model.Program, error) {
	rows, err := b.q.ListPrograms(ctx, store.ProgramListParams{
		Category: f.Category,
		AgeGroup: f.AgeGroup,
	})
	if err != nil {
		return nil, err
	}
	programs := make([]model.Program, 0, len(rows))
	for _, row := range rows {
		programs = append(programs, programFromRow(row))
	}
	return programs, nil
}

func (b *StoreBackend) GetProgram(ctx context.Context, id int64) (model.Program, error) {
	row, err := b.q.GetProgram(ctx, id)
	if err != nil {
		return model.Program{}, mapNoRows(err)
	}
	return programFromRow(row), nil
}

func (b *StoreBackend) CreateProgram(ctx context.Context, p model.Program) (model.Program, error) {
	params, err := b.programToParams(p)
	if err != nil {
		return model.Program{}, err
	}
	row, err := b.q.CreateProgram(ctx, params)
	if err != nil {
		return model.Program{}, err
	}
	return programFromRow(row), nil
}

func (b *StoreBackend) UpdateProgram(ctx context.Context, id int64, p model.Program) (model.Program, error) {
	params, err := b.programToParams(p)
	if err != nil {
		return model.Program{}, err
	}
	row, err := b.q.UpdateProgram(ctx, id, params)
	if err != nil {
		return model.Program{}, mapNoRows(err)
	}
	return programFromRow(row), nil
}

func (b *StoreBackend) DeleteProgram(ctx context.Context, id int64) error {
	return mapNoRows(b.q.DeleteProgram(ctx, id))
}

func photoFromRow(row store.Photo) model.Photo {
	return model.Photo{
		ID:          row.ID,
		Photo:       row.Photo,
		Description: util.PtrFromNullString(row.Description),
		Event:       row.Event,
		Date:        row.Date,
		Favourite:   row.Favourite,
	}
}

func (b *StoreBackend) ListPhotos(ctx context.Context, f model.PhotoFilter) ([]model.Photo, error) {
	rows, err := b.q.ListPhotos(ctx, store.PhotoListParams{
		Favourite: f.Favourite,
		Event:     f.Event,
		Year:      f.Year,
	})
	if err != nil {
		return nil, err
	}
	photos := make([]model.Photo, 0, len(rows))
	for _, row := range rows {
		photos = append(photos, photoFromRow(row))
	}
	return photos, nil
}

func (b *StoreBackend) GetPhoto(ctx context.Context, id int64) (model.Photo, error) {
	row, err := b.q.GetPhoto(ctx, id)
	if err != nil {
		return model.Photo{}, mapNoRows(err)
	}
	return photoFromRow(row), nil
}

func (b *StoreBackend) CreatePhoto(ctx context.Context, p model.Photo) (model.Photo, error) {
	date, err := datetext.RowDate(p.Date)
	if err != nil {
		return model.Photo{}, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}
	var desc sql.NullString
	if p.Description != nil {
		desc = util.NullStringFromValue(b.sanitize.Sanitize(*p.Description))
	}
	row, err := b.q.CreatePhoto(ctx, store.CreatePhotoParams{
		Photo:       p.Photo,
		Description: desc,
		Event:       b.sanitize.Sanitize(p.Event),
		Date:        date,
		Favourite:   p.Favourite,
	})
	if err != nil {
		return model.Photo{}, err
	}
	return photoFromRow(row), nil
}

func (b *StoreBackend) UpdatePhoto(ctx context.Context, id int64, patch model.PhotoPatch) (model.Photo, error) {
	if patch.IsZero() {
		return model.Photo{}, fmt.Errorf("%w: no fields to update", ErrInvalidInput)
	}
	params := store.UpdatePhotoParams{
		Photo:     patch.Photo,
		Event:     patch.Event,
		Favourite: patch.Favourite,
	}
	if patch.Description != nil {
		clean := b.sanitize.Sanitize(*patch.Description)
		params.Description = &clean
	}
	if patch.Date != nil {
		row, err := datetext.RowDate(*patch.Date)
		if err != nil {
			return model.Photo{}, fmt.Errorf("%w: %v", ErrInvalidInput, err)
		}
		params.Date = &row
	}
	row, err := b.q.UpdatePhoto(ctx, id, params)
	if err != nil {
		return model.Photo{}, mapNoRows(err)
	}
	return photoFromRow(row), nil
}

func (b *StoreBackend) DeletePhoto(ctx context.Context, id int64) error {
	return mapNoRows(b.q.DeletePhoto(ctx, id))
}
