// Copyright (c) 2025-2026 Kanata Chinese Seniors Support Centre
// SPDX-License-Identifier: GPL-3.0-or-later

package api

import (
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/kcssc/kcssc-go/internal/calendar"
	"github.com/kcssc/kcssc-go/internal/datetext"
	"github.com/kcssc/kcssc-go/internal/model"
)

// calendarDay is one populated day in the month view. Days with no
// activity are omitted.
type calendarDay struct {
	Date     string          `json:"date"`
	Events   []model.Event   `json:"events,omitempty"`
	Programs []model.Program `json:"programs,omitempty"`
}

// monthCalendar serves GET /api/calendar/{year}/{month}: the events and
// program occurrences of one month, keyed by date.
func (h *Handler) monthCalendar(w http.ResponseWriter, r *http.Request) {
	year, err := strconv.Atoi(chi.URLParam(r, "year"))
	if err != nil || year < 2000 || year > 2100 {
		h.writeError(w, http.StatusBadRequest, "Invalid year")
		return
	}
	monthNum, err := strconv.Atoi(chi.URLParam(r, "month"))
	if err != nil || monthNum < 1 || monthNum > 12 {
		h.writeError(w, http.StatusBadRequest, "Invalid month")
		return
	}
	month := time.Month(monthNum)

	first := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC)
	last := first.AddDate(0, 1, -1)

	events, err := h.data.Events(r.Context(), model.EventFilter{
		StartDate: first.Format(datetext.RowDateLayout),
		EndDate:   last.Format(datetext.RowDateLayout),
	})
	if err != nil {
		h.fail(w, r, err, "")
		return
	}
	programs, err := h.data.Programs(r.Context(), model.ProgramFilter{})
	if err != nil {
		h.fail(w, r, err, "")
		return
	}

	days := make([]calendarDay, 0, 31)
	for d := first; d.Month() == month; d = d.AddDate(0, 0, 1) {
		day := calendarDay{
			Date:     d.Format(datetext.RowDateLayout),
			Events:   calendar.EventsOnDate(events, d),
			Programs: calendar.ProgramsOnDate(programs, d),
		}
		if len(day.Events) > 0 || len(day.Programs) > 0 {
			days = append(days, day)
		}
	}

	h.writeJSON(w, http.StatusOK, map[string]any{
		"year":  year,
		"month": monthNum,
		"days":  days,
	})
}
