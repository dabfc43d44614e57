// Copyright (c) 2025-2026 Kanata Chinese Seniors Support Centre
// SPDX-License-Identifier: GPL-3.0-or-later

package api

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kcssc/kcssc-go/internal/model"
)

func sampleEvent(title, date string) map[string]any {
	return map[string]any{
		"title":       title,
		"date":        date,
		"time":        "10:00 AM - 12:00 PM",
		"location":    "Community Hall",
		"category":    "social",
		"description": "A test event",
	}
}

func TestEventLifecycle(t *testing.T) {
	h := newTestHandler(t)

	rec := doJSON(t, h, http.MethodPost, "/api/events", sampleEvent("Potluck", "January 19, 2025"))
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	created := decode[model.Event](t, rec)
	assert.NotZero(t, created.ID)
	assert.Equal(t, "January 19, 2025", created.Date)
	assert.Equal(t, "10:00 AM - 12:00 PM", created.Time)

	rec = doJSON(t, h, http.MethodGet, fmt.Sprintf("/api/events/%d", created.ID), nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, created, decode[model.Event](t, rec))

	update := sampleEvent("Potluck Dinner", "January 19, 2025")
	rec = doJSON(t, h, http.MethodPut, fmt.Sprintf("/api/events/%d", created.ID), update)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "Potluck Dinner", decode[model.Event](t, rec).Title)

	rec = doJSON(t, h, http.MethodDelete, fmt.Sprintf("/api/events/%d", created.ID), nil)
	require.Equal(t, http.StatusOK, rec.Code)
	body := decode[map[string]any](t, rec)
	assert.Equal(t, "Event deleted successfully", body["message"])

	rec = doJSON(t, h, http.MethodGet, "/api/events", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Empty(t, decode[[]model.Event](t, rec))
}

func TestGetEventFallsBackToSamples(t *testing.T) {
	h := newTestHandler(t)

	// A database miss resolves against the sample set; low ids exist there.
	rec := doJSON(t, h, http.MethodGet, "/api/events/1", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.NotEmpty(t, decode[model.Event](t, rec).Title)

	// Absent from both database and samples.
	rec = doJSON(t, h, http.MethodGet, "/api/events/9999", nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "Event not found", decode[map[string]string](t, rec)["error"])
}

func TestListEventsOrderingAndFilters(t *testing.T) {
	h := newTestHandler(t)

	for _, e := range []map[string]any{
		sampleEvent("Later", "January 20, 2025"),
		sampleEvent("Earlier", "January 10, 2025"),
		sampleEvent("Middle", "January 15, 2025"),
	} {
		rec := doJSON(t, h, http.MethodPost, "/api/events", e)
		require.Equal(t, http.StatusCreated, rec.Code)
	}

	rec := doJSON(t, h, http.MethodGet, "/api/events", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	events := decode[[]model.Event](t, rec)
	require.Len(t, events, 3)
	assert.Equal(t, "Earlier", events[0].Title)
	assert.Equal(t, "Middle", events[1].Title)
	assert.Equal(t, "Later", events[2].Title)

	// Date bounds are inclusive.
	rec = doJSON(t, h, http.MethodGet, "/api/events?startDate=2025-01-10&endDate=2025-01-15", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Len(t, decode[[]model.Event](t, rec), 2)
}

func TestListEventsEmptyIsArray(t *testing.T) {
	h := newTestHandler(t)

	rec := doJSON(t, h, http.MethodGet, "/api/events", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "[]\n", rec.Body.String())
}

func TestCreateEventValidation(t *testing.T) {
	h := newTestHandler(t)

	e := sampleEvent("", "January 19, 2025")
	rec := doJSON(t, h, http.MethodPost, "/api/events", e)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "Title is required", decode[map[string]string](t, rec)["error"])

	e = sampleEvent("Bad date", "sometime soon")
	rec = doJSON(t, h, http.MethodPost, "/api/events", e)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestEventInvalidID(t *testing.T) {
	h := newTestHandler(t)

	rec := doJSON(t, h, http.MethodGet, "/api/events/abc", nil)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestMockModeWritesUnavailable(t *testing.T) {
	h := newMockHandler(t)

	rec := doJSON(t, h, http.MethodPost, "/api/events", sampleEvent("X", "January 19, 2025"))
	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)

	// Reads still work from sample content.
	rec = doJSON(t, h, http.MethodGet, "/api/events", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.NotEmpty(t, decode[[]model.Event](t, rec))
}
