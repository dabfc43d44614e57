// Copyright (c) 2025-2026 Kanata Chinese Seniors Support Centre
// SPDX-License-Identifier: GPL-3.0-or-later

package store

import (
	"context"
	"database/sql"
	"fmt"
	"strconv"
	"strings"
)

// Queries wraps a database handle with typed query methods.
type Queries struct {
	db *sql.DB
}

// New creates a Queries instance over the given database.
func New(db *sql.DB) *Queries {
	return &Queries{db: db}
}

// Event is an events table row. Date is YYYY-MM-DD, Time and EndTime are
// 24-hour HH:MM:SS.
type Event struct {
	ID          int64
	Title       string
	Date        string
	Time        string
	EndTime     sql.NullString
	Location    string
	Category    string
	Description string
	Featured    bool
	ImageURL    sql.NullString
}

// Program is a programs table row.
type Program struct {
	ID          int64
	Title       string
	Category    string
	Icon        string
	Schedule    string
	AgeGroup    string
	Description string
	Spots       string
	ImageURL    sql.NullString
}

// Photo is a photos table row. Date is YYYY-MM-DD.
type Photo struct {
	ID          int64
	Photo       string
	Description sql.NullString
	Event       string
	Date        string
	Favourite   bool
}

// EventListParams filters ListEvents. Zero values mean "no filter"; date
// bounds are inclusive row-format dates.
type EventListParams struct {
	Category  string
	StartDate string
	EndDate   string
	Featured  *bool
}

const eventColumns = "id, title, date, time, end_time, location, category, description, featured, image_url"

func scanEvent(row interface{ Scan(...any) error }) (Event, error) {
	var e Event
	err := row.Scan(&e.ID, &e.Title, &e.Date, &e.Time, &e.EndTime,
		&e.Location, &e.Category, &e.Description, &e.Featured, &e.ImageURL)
	return e, err
}

// ListEvents returns events matching the filters, ordered by date then
// start time.
func (q *Queries) ListEvents(ctx context.Context, p EventListParams) ([]Event, error) {
	query := "SELECT " + eventColumns + " FROM events WHERE 1=1"
	var args []any

	if p.Category != "" {
		query += " AND category = ?"
		args = append(args, p.Category)
	}
	if p.StartDate != "" {
		query += " AND date >= ?"
		args = append(args, p.StartDate)
	}
	if p.EndDate != "" {
		query += " AND date <= ?"
		args = append(args, p.EndDate)
	}
	if p.Featured != nil {
		query += " AND featured = ?"
		args = append(args, *p.Featured)
	}
	query += " ORDER BY date ASC, time ASC"

	rows, err := q.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("listing events: %w", err)
	}
	defer rows.Close()

	var events []Event
	for rows.Next() {
		e, err := scanEvent(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning event: %w", err)
		}
		events = append(events, e)
	}
	return events, rows.Err()
}

// GetEvent returns a single event. Returns sql.ErrNoRows when absent.
func (q *Queries) GetEvent(ctx context.Context, id int64) (Event, error) {
	row := q.db.QueryRowContext(ctx,
		"SELECT "+eventColumns+" FROM events WHERE id = ?", id)
	return scanEvent(row)
}

// CreateEventParams holds the insertable event fields.
type CreateEventParams struct {
	Title       string
	Date        string
	Time        string
	EndTime     sql.NullString
	Location    string
	Category    string
	Description string
	Featured    bool
	ImageURL    sql.NullString
}

// CreateEvent inserts an event and returns the stored row.
func (q *Queries) CreateEvent(ctx context.Context, p CreateEventParams) (Event, error) {
	row := q.db.QueryRowContext(ctx, `
		INSERT INTO events (title, date, time, end_time, location, category, description, featured, image_url)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
		RETURNING `+eventColumns,
		p.Title, p.Date, p.Time, p.EndTime, p.Location, p.Category, p.Description, p.Featured, p.ImageURL)
	return scanEvent(row)
}

// UpdateEvent replaces an event row. Returns sql.ErrNoRows when absent.
func (q *Queries) UpdateEvent(ctx context.Context, id int64, p CreateEventParams) (Event, error) {
	row := q.db.QueryRowContext(ctx, `
		UPDATE events
		SET title = ?, date = ?, time = ?, end_time = ?, location = ?,
		    category = ?, description = ?, featured = ?, image_url = ?,
		    updated_at = datetime('now')
		WHERE id = ?
		RETURNING `+eventColumns,
		p.Title, p.Date, p.Time, p.EndTime, p.Location, p.Category, p.Description, p.Featured, p.ImageURL, id)
	return scanEvent(row)
}

// DeleteEvent removes an event. Returns sql.ErrNoRows when absent.
func (q *Queries) DeleteEvent(ctx context.Context, id int64) error {
	return q.deleteByID(ctx, "events", id)
}

// ProgramListParams filters ListPrograms.
type ProgramListParams struct {
	Category string
	AgeGroup string
}

const programColumns = "id, title, category, icon, schedule, age_group, description, spots, image_url"

func scanProgram(row interface{ Scan(...any) error }) (Program, error) {
	var p Program
	err := row.Scan(&p.ID, &p.Title, &p.Category, &p.Icon, &p.Schedule,
		&p.AgeGroup, &p.Description, &p.Spots, &p.ImageURL)
	return p, err
}

// ListPrograms returns programs matching the filters, ordered by title.
func (q *Queries) ListPrograms(ctx context.Context, p ProgramListParams) ([]Program, error) {
	query := "SELECT " + programColumns + " FROM programs WHERE 1=1"
	var args []any

	if p.Category != "" {
		query += " AND category = ?"
		args = append(args, p.Category)
	}
	if p.AgeGroup != "" {
		query += " AND age_group = ?"
		args = append(args, p.AgeGroup)
	}
	query += " ORDER BY title ASC"

	rows, err := q.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("listing programs: %w", err)
	}
	defer rows.Close()

	var programs []Program
	for rows.Next() {
		pr, err := scanProgram(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning program: %w", err)
		}
		programs = append(programs, pr)
	}
	return programs, rows.Err()
}

// GetProgram returns a single program. Returns sql.ErrNoRows when absent.
func (q *Queries) GetProgram(ctx context.Context, id int64) (Program, error) {
	row := q.db.QueryRowContext(ctx,
		"SELECT "+programColumns+" FROM programs WHERE id = ?", id)
	return scanProgram(row)
}

// CreateProgramParams holds the insertable program fields.
type CreateProgramParams struct {
	Title       string
	Category    string
	Icon        string
	Schedule    string
	AgeGroup    string
	Description string
	Spots       string
	ImageURL    sql.NullString
}

// CreateProgram inserts a program and returns the stored row.
func (q *Queries) CreateProgram(ctx context.Context, p CreateProgramParams) (Program, error) {
	row := q.db.QueryRowContext(ctx, `
		INSERT INTO programs (title, category, icon, schedule, age_group, description, spots, image_url)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)
		RETURNING `+programColumns,
		p.Title, p.Category, p.Icon, p.Schedule, p.AgeGroup, p.Description, p.Spots, p.ImageURL)
	return scanProgram(row)
}

// UpdateProgram replaces a program row. Returns sql.ErrNoRows when absent.
func (q *Queries) UpdateProgram(ctx context.Context, id int64, p CreateProgramParams) (Program, error) {
	row := q.db.QueryRowContext(ctx, `
		UPDATE programs
		SET title = ?, category = ?, icon = ?, schedule = ?, age_group = ?,
		    description = ?, spots = ?, image_url = ?, updated_at = datetime('now')
		WHERE id = ?
		RETURNING `+programColumns,
		p.Title, p.Category, p.Icon, p.Schedule, p.AgeGroup, p.Description, p.Spots, p.ImageURL, id)
	return scanProgram(row)
}

// DeleteProgram removes a program. Returns sql.ErrNoRows when absent.
func (q *Queries) DeleteProgram(ctx context.Context, id int64) error {
	return q.deleteByID(ctx, "programs", id)
}

// PhotoListParams filters ListPhotos.
type PhotoListParams struct {
	Favourite *bool
	Event     string
	Year      int
}

const photoColumns = "id, photo, description, event, date, favourite"

func scanPhoto(row interface{ Scan(...any) error }) (Photo, error) {
	var p Photo
	err := row.Scan(&p.ID, &p.Photo, &p.Description, &p.Event, &p.Date, &p.Favourite)
	return p, err
}

// ListPhotos returns photos matching the filters, newest first.
func (q *Queries) ListPhotos(ctx context.Context, p PhotoListParams) ([]Photo, error) {
	query := "SELECT " + photoColumns + " FROM photos WHERE 1=1"
	var args []any

	if p.Favourite != nil {
		query += " AND favourite = ?"
		args = append(args, *p.Favourite)
	}
	if p.Event != "" {
		query += " AND event = ?"
		args = append(args, p.Event)
	}
	if p.Year != 0 {
		query += " AND strftime('%Y', date) = ?"
		args = append(args, strconv.Itoa(p.Year))
	}
	query += " ORDER BY date DESC, id DESC"

	rows, err := q.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("listing photos: %w", err)
	}
	defer rows.Close()

	var photos []Photo
	for rows.Next() {
		ph, err := scanPhoto(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning photo: %w", err)
		}
		photos = append(photos, ph)
	}
	return photos, rows.Err()
}

// GetPhoto returns a single photo. Returns sql.ErrNoRows when absent.
func (q *Queries) GetPhoto(ctx context.Context, id int64) (Photo, error) {
	row := q.db.QueryRowContext(ctx,
		"SELECT "+photoColumns+" FROM photos WHERE id = ?", id)
	return scanPhoto(row)
}

// CreatePhotoParams holds the insertable photo fields.
type CreatePhotoParams struct {
	Photo       string
	Description sql.NullString
	Event       string
	Date        string
	Favourite   bool
}

// CreatePhoto inserts a photo and returns the stored row.
func (q *Queries) CreatePhoto(ctx context.Context, p CreatePhotoParams) (Photo, error) {
	row := q.db.QueryRowContext(ctx, `
		INSERT INTO photos (photo, description, event, date, favourite)
		VALUES (?, ?, ?, ?, ?)
		RETURNING `+photoColumns,
		p.Photo, p.Description, p.Event, p.Date, p.Favourite)
	return scanPhoto(row)
}

// UpdatePhotoParams carries a partial photo update; nil fields are left
// unchanged, matching the admin UI's field-at-a-time edits.
type UpdatePhotoParams struct {
	Photo       *string
	Description *string
	Event       *string
	Date        *string
	Favourite   *bool
}

// IsZero reports whether no field is set.
func (p UpdatePhotoParams) IsZero() bool {
	return p.Photo == nil && p.Description == nil && p.Event == nil && p.Date == nil && p.Favourite == nil
}

// UpdatePhoto applies a partial update. Returns sql.ErrNoRows when absent.
func (q *Queries) UpdatePhoto(ctx context.Context, id int64, p UpdatePhotoParams) (Photo, error) {
	var sets []string
	var args []any

	if p.Photo != nil {
		sets = append(sets, "photo = ?")
		args = append(args, *p.Photo)
	}
	if p.Description != nil {
		sets = append(sets, "description = ?")
		args = append(args, sql.NullString{String: *p.Description, Valid: *p.Description != ""})
	}
	if p.Event != nil {
		sets = append(sets, "event = ?")
		args = append(args, *p.Event)
	}
	if p.Date != nil {
		sets = append(sets, "date = ?")
		args = append(args, *p.Date)
	}
	if p.Favourite != nil {
		sets = append(sets, "favourite = ?")
		args = append(args, *p.Favourite)
	}
	if len(sets) == 0 {
		return Photo{}, fmt.Errorf("no fields to update")
	}

	args = append(args, id)
	row := q.db.QueryRowContext(ctx,
		"UPDATE photos SET "+strings.Join(sets, ", ")+" WHERE id = ? RETURNING "+photoColumns,
		args...)
	return scanPhoto(row)
}

// DeletePhoto removes a photo. Returns sql.ErrNoRows when absent.
func (q *Queries) DeletePhoto(ctx context.Context, id int64) error {
	return q.deleteByID(ctx, "photos", id)
}

// deleteByID deletes one row, mapping "nothing deleted" to sql.ErrNoRows so
// handlers can 404 consistently.
func (q *Queries) deleteByID(ctx context.Context, table string, id int64) error {
	res, err := q.db.ExecContext(ctx, "DELETE FROM "+table+" WHERE id = ?", id)
	if err != nil {
		return fmt.Errorf("deleting from %s: %w", table, err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return sql.ErrNoRows
	}
	return nil
}
