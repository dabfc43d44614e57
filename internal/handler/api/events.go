// Copyright (c) 2025-2026 Kanata Chinese Seniors Support Centre
// SPDX-License-Identifier: GPL-3.0-or-later

package api

import (
	"net/http"
	"strconv"

	"github.com/kcssc/kcssc-go/internal/model"
)

func eventFilterFromQuery(r *http.Request) model.EventFilter {
	q := r.URL.Query()
	f := model.EventFilter{
		Category:  q.Get("category"),
		StartDate: q.Get("startDate"),
		EndDate:   q.Get("endDate"),
	}
	if v := q.Get("featured"); v != "" {
		featured := v == "true"
		f.Featured = &featured
	}
	return f
}

func (h *Handler) listEvents(w http.ResponseWriter, r *http.Request) {
	events, err := h.data.Events(r.Context(), eventFilterFromQuery(r))
	if err != nil {
		h.fail(w, r, err, "")
		return
	}
	if events == nil {
		events = []model.Event{}
	}
	h.writeJSON(w, http.StatusOK, events)
}

func (h *Handler) getEvent(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r)
	if err != nil {
		h.writeError(w, http.StatusBadRequest, "Invalid event ID")
		return
	}
	event, err := h.data.Event(r.Context(), id)
	if err != nil {
		h.fail(w, r, err, "Event not found")
		return
	}
	h.writeJSON(w, http.StatusOK, event)
}

func validateEvent(e model.Event) string {
	switch {
	case e.Title == "":
		return "Title is required"
	case e.Date == "":
		return "Date is required"
	case e.Time == "":
		return "Time is required"
	case e.Location == "":
		return "Location is required"
	case e.Category == "":
		return "Category is required"
	}
	return ""
}

func (h *Handler) createEvent(w http.ResponseWriter, r *http.Request) {
	var e model.Event
	if err := decodeBody(r, &e); err != nil {
		h.writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if msg := validateEvent(e); msg != "" {
		h.writeError(w, http.StatusBadRequest, msg)
		return
	}
	created, err := h.data.CreateEvent(r.Context(), e)
	if err != nil {
		h.fail(w, r, err, "")
		return
	}
	h.writeJSON(w, http.StatusCreated, created)
}

func (h *Handler) updateEvent(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r)
	if err != nil {
		h.writeError(w, http.StatusBadRequest, "Invalid event ID")
		return
	}
	var e model.Event
	if err := decodeBody(r, &e); err != nil {
		h.writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if msg := validateEvent(e); msg != "" {
		h.writeError(w, http.StatusBadRequest, msg)
		return
	}
	updated, err := h.data.UpdateEvent(r.Context(), id, e)
	if err != nil {
		h.fail(w, r, err, "Event not found")
		return
	}
	h.writeJSON(w, http.StatusOK, updated)
}

func (h *Handler) deleteEvent(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r)
	if err != nil {
		h.writeError(w, http.StatusBadRequest, "Invalid event ID")
		return
	}
	if err := h.data.DeleteEvent(r.Context(), id); err != nil {
		h.fail(w, r, err, "Event not found")
		return
	}
	h.writeJSON(w, http.StatusOK, map[string]any{
		"message": "Event deleted successfully",
		"id":      strconv.FormatInt(id, 10),
	})
}
