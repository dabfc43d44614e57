// Copyright (c) 2025-2026 Kanata Chinese Seniors Support Centre
// SPDX-License-Identifier: GPL-3.0-or-later

package model

// Program icon keys. The frontend maps these onto its icon set, so only
// known names are accepted at the API boundary.
var ProgramIcons = map[string]bool{
	"Palette":  true,
	"Heart":    true,
	"Music":    true,
	"BookOpen": true,
	"Utensils": true,
	"Dumbbell": true,
	"Users":    true,
	"Globe":    true,
}

// Program is a recurring activity. Schedule is free text such as
// "Tuesdays, 10:00 AM - 12:00 PM"; the calendar package parses it
// heuristically for display.
type Program struct {
	ID          int64   `json:"id"`
	Title       string  `json:"title"`
	Category    string  `json:"category"`
	Icon        string  `json:"icon"`
	Schedule    string  `json:"schedule"`
	AgeGroup    string  `json:"ageGroup"`
	Description string  `json:"description"`
	Spots       string  `json:"spots"`
	ImageURL    *string `json:"imageUrl,omitempty"`
}

// ProgramFilter narrows a program list query. Zero values mean "no filter".
type ProgramFilter struct {
	Category string
	AgeGroup string
}

// IsZero reports whether no filter field is set.
func (f ProgramFilter) IsZero() bool {
	return f.Category == "" && f.AgeGroup == ""
}
