// Copyright (c) 2025-2026 Kanata Chinese Seniors Support Centre
// SPDX-License-Identifier: GPL-3.0-or-later

// Package model defines the display-shaped entities served by the API and
// consumed by the client data service.
package model

import "errors"

// ErrNotFound is returned when an entity does not exist in the backend or
// the fallback dataset.
var ErrNotFound = errors.New("not found")

// Event categories used by the site. The set is open; these are the values
// the admin UI offers.
const (
	EventCategoryHoliday  = "Holiday"
	EventCategoryHealth   = "Health"
	EventCategoryArts     = "Arts"
	EventCategoryFitness  = "Fitness"
	EventCategoryCooking  = "Cooking"
	EventCategoryLearning = "Learning"
	EventCategorySocial   = "Social"
)

// Event is a single dated occurrence at the centre.
// Date and Time carry the display format ("January 25, 2025",
// "11:00 AM - 3:00 PM"); the store keeps the row format.
type Event struct {
	ID          int64   `json:"id"`
	Title       string  `json:"title"`
	Date        string  `json:"date"`
	Time        string  `json:"time"`
	Location    string  `json:"location"`
	Category    string  `json:"category"`
	Description string  `json:"description"`
	Featured    bool    `json:"featured"`
	ImageURL    *string `json:"imageUrl,omitempty"`
}

// EventFilter narrows an event list query. Zero values mean "no filter".
// Date bounds are inclusive and use the row format (YYYY-MM-DD) or the
// display format; both are accepted.
type EventFilter struct {
	Category  string
	StartDate string
	EndDate   string
	Featured  *bool
}

// IsZero reports whether no filter field is set.
func (f EventFilter) IsZero() bool {
	return f.Category == "" && f.StartDate == "" && f.EndDate == "" && f.Featured == nil
}
