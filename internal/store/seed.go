// Copyright (c) 2025-2026 Kanata Chinese Seniors Support Centre
// SPDX-License-Identifier: GPL-3.0-or-later

package store

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"

	"github.com/kcssc/kcssc-go/internal/datetext"
	"github.com/kcssc/kcssc-go/internal/mockdata"
	"github.com/kcssc/kcssc-go/internal/util"
)

// Seed inserts the sample content into an empty database. It is idempotent:
// rows that already exist are logged and skipped, never overwritten.
func Seed(ctx context.Context, db *sql.DB, log *slog.Logger) error {
	q := New(db)

	seeded, skipped := 0, 0

	for _, e := range mockdata.Events() {
		exists, err := rowExists(ctx, db,
			"SELECT 1 FROM events WHERE title = ? AND date = ?",
			e.Title, mustRowDate(e.Date))
		if err != nil {
			return fmt.Errorf("checking event %q: %w", e.Title, err)
		}
		if exists {
			log.Debug("seed: event already present, skipping", "title", e.Title)
			skipped++
			continue
		}

		start, end, err := datetext.ParseTimeRange(e.Time)
		if err != nil {
			return fmt.Errorf("seed event %q: %w", e.Title, err)
		}
		_, err = q.CreateEvent(ctx, CreateEventParams{
			Title:       e.Title,
			Date:        mustRowDate(e.Date),
			Time:        start,
			EndTime:     sql.NullString{String: end, Valid: end != ""},
			Location:    e.Location,
			Category:    e.Category,
			Description: e.Description,
			Featured:    e.Featured,
			ImageURL:    util.NullStringFromPtr(e.ImageURL),
		})
		if err != nil {
			return fmt.Errorf("seeding event %q: %w", e.Title, err)
		}
		seeded++
	}

	for _, p := range mockdata.Programs() {
		exists, err := rowExists(ctx, db,
			"SELECT 1 FROM programs WHERE title = ?", p.Title)
		if err != nil {
			return fmt.Errorf("checking program %q: %w", p.Title, err)
		}
		if exists {
			log.Debug("seed: program already present, skipping", "title", p.Title)
			skipped++
			continue
		}

		_, err = q.CreateProgram(ctx, CreateProgramParams{
			Title:       p.Title,
			Category:    p.Category,
			Icon:        p.Icon,
			Schedule:    p.Schedule,
			AgeGroup:    p.AgeGroup,
			Description: p.Description,
			Spots:       p.Spots,
			ImageURL:    util.NullStringFromPtr(p.ImageURL),
		})
		if err != nil {
			return fmt.Errorf("seeding program %q: %w", p.Title, err)
		}
		seeded++
	}

	for _, ph := range mockdata.Photos() {
		exists, err := rowExists(ctx, db,
			"SELECT 1 FROM photos WHERE photo = ?", ph.Photo)
		if err != nil {
			return fmt.Errorf("checking photo %q: %w", ph.Photo, err)
		}
		if exists {
			log.Debug("seed: photo already present, skipping", "photo", ph.Photo)
			skipped++
			continue
		}

		_, err = q.CreatePhoto(ctx, CreatePhotoParams{
			Photo:       ph.Photo,
			Description: util.NullStringFromPtr(ph.Description),
			Event:       ph.Event,
			Date:        ph.Date,
			Favourite:   ph.Favourite,
		})
		if err != nil {
			return fmt.Errorf("seeding photo %q: %w", ph.Photo, err)
		}
		seeded++
	}

	log.Info("database seed complete", "inserted", seeded, "skipped", skipped)
	return nil
}

func rowExists(ctx context.Context, db *sql.DB, query string, args ...any) (bool, error) {
	var one int
	err := db.QueryRowContext(ctx, query, args...).Scan(&one)
	if err == sql.ErrNoRows {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}

// mustRowDate converts a display date to row format. Sample data is
// validated by tests, so a parse failure here is a programming error.
func mustRowDate(display string) string {
	row, err := datetext.RowDate(display)
	if err != nil {
		panic(fmt.Sprintf("bad sample date %q: %v", display, err))
	}
	return row
}
