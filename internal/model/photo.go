// Copyright (c) 2025-2026 Kanata Chinese Seniors Support Centre
// SPDX-License-Identifier: GPL-3.0-or-later

package model

// Photo is a gallery image. Event is a free-text label, not a reference to
// an Event row; the two are matched by name only. Date uses YYYY-MM-DD.
type Photo struct {
	ID          int64   `json:"id"`
	Photo       string  `json:"photo"`
	Description *string `json:"description,omitempty"`
	Event       string  `json:"event"`
	Date        string  `json:"date"`
	Favourite   bool    `json:"favourite"`
}

// PhotoPatch is a partial photo update. Nil fields are left unchanged.
type PhotoPatch struct {
	Photo       *string `json:"photo"`
	Description *string `json:"description"`
	Event       *string `json:"event"`
	Date        *string `json:"date"`
	Favourite   *bool   `json:"favourite"`
}

// IsZero reports whether no field is set.
func (p PhotoPatch) IsZero() bool {
	return p.Photo == nil && p.Description == nil && p.Event == nil && p.Date == nil && p.Favourite == nil
}

// PhotoFilter narrows a photo list query. Zero values mean "no filter".
type PhotoFilter struct {
	Favourite *bool
	Event     string
	Year      int
}

// IsZero reports whether no filter field is set.
func (f PhotoFilter) IsZero() bool {
	return f.Favourite == nil && f.Event == "" && f.Year == 0
}
