// Copyright (c) 2025-2026 Kanata Chinese Seniors Support Centre
// SPDX-License-Identifier: GPL-3.0-or-later

package store_test

import (
	"context"
	"database/sql"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kcssc/kcssc-go/internal/store"
	"github.com/kcssc/kcssc-go/internal/testutil"
)

func newEvent(title, date, start string, featured bool, category string) store.CreateEventParams {
	return store.CreateEventParams{
		Title:       title,
		Date:        date,
		Time:        start,
		Location:    "Community Hall",
		Category:    category,
		Description: "test event",
		Featured:    featured,
	}
}

func TestEventCRUD(t *testing.T) {
	db := testutil.TestDB(t)
	q := store.New(db)
	ctx := context.Background()

	created, err := q.CreateEvent(ctx, newEvent("Lunar New Year", "2025-01-25", "11:00:00", true, "cultural"))
	require.NoError(t, err)
	assert.NotZero(t, created.ID)
	assert.Equal(t, "Lunar New Year", created.Title)
	assert.True(t, created.Featured)

	got, err := q.GetEvent(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, created, got)

	upd := newEvent("Lunar New Year Gala", "2025-01-25", "12:00:00", true, "cultural")
	updated, err := q.UpdateEvent(ctx, created.ID, upd)
	require.NoError(t, err)
	assert.Equal(t, "Lunar New Year Gala", updated.Title)
	assert.Equal(t, "12:00:00", updated.Time)

	require.NoError(t, q.DeleteEvent(ctx, created.ID))
	_, err = q.GetEvent(ctx, created.ID)
	assert.ErrorIs(t, err, sql.ErrNoRows)
}

func TestEventMissingRows(t *testing.T) {
	db := testutil.TestDB(t)
	q := store.New(db)
	ctx := context.Background()

	_, err := q.GetEvent(ctx, 999)
	assert.ErrorIs(t, err, sql.ErrNoRows)

	_, err = q.UpdateEvent(ctx, 999, newEvent("X", "2025-01-01", "10:00:00", false, "social"))
	assert.ErrorIs(t, err, sql.ErrNoRows)

	assert.ErrorIs(t, q.DeleteEvent(ctx, 999), sql.ErrNoRows)
}

func TestListEventsFiltersAndOrder(t *testing.T) {
	db := testutil.TestDB(t)
	q := store.New(db)
	ctx := context.Background()

	seed := []store.CreateEventParams{
		newEvent("B later same day", "2025-01-20", "14:00:00", false, "health"),
		newEvent("C next month", "2025-02-01", "09:00:00", true, "cultural"),
		newEvent("A earlier same day", "2025-01-20", "08:00:00", true, "health"),
		newEvent("D previous week", "2025-01-15", "10:00:00", false, "arts"),
	}
	for _, p := range seed {
		_, err := q.CreateEvent(ctx, p)
		require.NoError(t, err)
	}

	all, err := q.ListEvents(ctx, store.EventListParams{})
	require.NoError(t, err)
	require.Len(t, all, 4)
	// Date ascending, then start time ascending within a day.
	assert.Equal(t, "D previous week", all[0].Title)
	assert.Equal(t, "A earlier same day", all[1].Title)
	assert.Equal(t, "B later same day", all[2].Title)
	assert.Equal(t, "C next month", all[3].Title)

	health, err := q.ListEvents(ctx, store.EventListParams{Category: "health"})
	require.NoError(t, err)
	assert.Len(t, health, 2)

	featured := true
	feat, err := q.ListEvents(ctx, store.EventListParams{Featured: &featured})
	require.NoError(t, err)
	assert.Len(t, feat, 2)

	// Date bounds are inclusive on both ends.
	ranged, err := q.ListEvents(ctx, store.EventListParams{StartDate: "2025-01-20", EndDate: "2025-02-01"})
	require.NoError(t, err)
	assert.Len(t, ranged, 3)
}

func TestProgramCRUD(t *testing.T) {
	db := testutil.TestDB(t)
	q := store.New(db)
	ctx := context.Background()

	created, err := q.CreateProgram(ctx, store.CreateProgramParams{
		Title:       "Tai Chi for Beginners",
		Category:    "health",
		Icon:        "Heart",
		Schedule:    "Mondays, 8:00 AM - 9:00 AM",
		AgeGroup:    "Seniors",
		Description: "Gentle intro",
		Spots:       "Open enrollment",
	})
	require.NoError(t, err)
	assert.NotZero(t, created.ID)

	got, err := q.GetProgram(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, created, got)

	byCategory, err := q.ListPrograms(ctx, store.ProgramListParams{Category: "health"})
	require.NoError(t, err)
	assert.Len(t, byCategory, 1)

	byAge, err := q.ListPrograms(ctx, store.ProgramListParams{AgeGroup: "Adults"})
	require.NoError(t, err)
	assert.Empty(t, byAge)

	require.NoError(t, q.DeleteProgram(ctx, created.ID))
	assert.ErrorIs(t, q.DeleteProgram(ctx, created.ID), sql.ErrNoRows)
}

func TestPhotoListOrderAndFilters(t *testing.T) {
	db := testutil.TestDB(t)
	q := store.New(db)
	ctx := context.Background()

	seed := []store.CreatePhotoParams{
		{Photo: "/uploads/a.jpg", Event: "Concert", Date: "2024-05-01"},
		{Photo: "/uploads/b.jpg", Event: "Concert", Date: "2024-05-01", Favourite: true},
		{Photo: "/uploads/c.jpg", Event: "Picnic", Date: "2023-08-12", Favourite: true},
	}
	for _, p := range seed {
		_, err := q.CreatePhoto(ctx, p)
		require.NoError(t, err)
	}

	all, err := q.ListPhotos(ctx, store.PhotoListParams{})
	require.NoError(t, err)
	require.Len(t, all, 3)
	// Newest date first, higher id first on ties.
	assert.Equal(t, "/uploads/b.jpg", all[0].Photo)
	assert.Equal(t, "/uploads/a.jpg", all[1].Photo)
	assert.Equal(t, "/uploads/c.jpg", all[2].Photo)

	fav := true
	favs, err := q.ListPhotos(ctx, store.PhotoListParams{Favourite: &fav})
	require.NoError(t, err)
	assert.Len(t, favs, 2)

	byEvent, err := q.ListPhotos(ctx, store.PhotoListParams{Event: "Picnic"})
	require.NoError(t, err)
	assert.Len(t, byEvent, 1)

	byYear, err := q.ListPhotos(ctx, store.PhotoListParams{Year: 2024})
	require.NoError(t, err)
	assert.Len(t, byYear, 2)
}

func TestUpdatePhotoPartial(t *testing.T) {
	db := testutil.TestDB(t)
	q := store.New(db)
	ctx := context.Background()

	created, err := q.CreatePhoto(ctx, store.CreatePhotoParams{
		Photo: "/uploads/orig.jpg",
		Event: "Concert",
		Date:  "2024-05-01",
	})
	require.NoError(t, err)

	fav := true
	updated, err := q.UpdatePhoto(ctx, created.ID, store.UpdatePhotoParams{Favourite: &fav})
	require.NoError(t, err)
	assert.True(t, updated.Favourite)
	// Untouched fields keep their values.
	assert.Equal(t, "/uploads/orig.jpg", updated.Photo)
	assert.Equal(t, "Concert", updated.Event)

	desc := "crowd shot"
	updated, err = q.UpdatePhoto(ctx, created.ID, store.UpdatePhotoParams{Description: &desc})
	require.NoError(t, err)
	require.True(t, updated.Description.Valid)
	assert.Equal(t, "crowd shot", updated.Description.String)
	assert.True(t, updated.Favourite)

	_, err = q.UpdatePhoto(ctx, created.ID, store.UpdatePhotoParams{})
	assert.Error(t, err)

	_, err = q.UpdatePhoto(ctx, 999, store.UpdatePhotoParams{Favourite: &fav})
	assert.ErrorIs(t, err, sql.ErrNoRows)
}

func TestSeedIdempotent(t *testing.T) {
	db := testutil.TestDB(t)
	ctx := context.Background()
	log := testutil.TestLogger()

	require.NoError(t, store.Seed(ctx, db, log))

	q := store.New(db)
	events, err := q.ListEvents(ctx, store.EventListParams{})
	require.NoError(t, err)
	first := len(events)
	require.NotZero(t, first)

	// A second run must not duplicate anything.
	require.NoError(t, store.Seed(ctx, db, log))
	events, err = q.ListEvents(ctx, store.EventListParams{})
	require.NoError(t, err)
	assert.Len(t, events, first)

	photos, err := q.ListPhotos(ctx, store.PhotoListParams{})
	require.NoError(t, err)
	assert.NotEmpty(t, photos)
}
