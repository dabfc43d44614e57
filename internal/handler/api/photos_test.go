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

func createPhoto(t *testing.T, h http.Handler, path, event, date string) model.Photo {
	t.Helper()
	rec := doJSON(t, h, http.MethodPost, "/api/photos", map[string]any{
		"photo": path,
		"event": event,
		"date":  date,
	})
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	return decode[model.Photo](t, rec)
}

func TestCreatePhotoRequiredFields(t *testing.T) {
	h := newTestHandler(t)

	rec := doJSON(t, h, http.MethodPost, "/api/photos", map[string]any{
		"photo": "/uploads/a.jpg",
	})
	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "Photo, event, and date are required",
		decode[map[string]string](t, rec)["error"])
}

func TestPhotoListOrderAndFilters(t *testing.T) {
	h := newTestHandler(t)

	createPhoto(t, h, "/uploads/old.jpg", "Picnic", "2023-08-12")
	createPhoto(t, h, "/uploads/new.jpg", "Concert", "2024-05-01")
	createPhoto(t, h, "/uploads/newer.jpg", "Concert", "2024-05-01")

	rec := doJSON(t, h, http.MethodGet, "/api/photos", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	photos := decode[[]model.Photo](t, rec)
	require.Len(t, photos, 3)
	// Newest date first; newest insert first on equal dates.
	assert.Equal(t, "/uploads/newer.jpg", photos[0].Photo)
	assert.Equal(t, "/uploads/new.jpg", photos[1].Photo)
	assert.Equal(t, "/uploads/old.jpg", photos[2].Photo)

	rec = doJSON(t, h, http.MethodGet, "/api/photos?year=2024", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Len(t, decode[[]model.Photo](t, rec), 2)

	rec = doJSON(t, h, http.MethodGet, "/api/photos?event=Picnic", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Len(t, decode[[]model.Photo](t, rec), 1)
}

func TestPhotoPartialUpdate(t *testing.T) {
	h := newTestHandler(t)
	p := createPhoto(t, h, "/uploads/a.jpg", "Concert", "2024-05-01")

	rec := doJSON(t, h, http.MethodPut, fmt.Sprintf("/api/photos/%d", p.ID), map[string]any{
		"favourite": true,
	})
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	updated := decode[model.Photo](t, rec)
	assert.True(t, updated.Favourite)
	assert.Equal(t, "/uploads/a.jpg", updated.Photo)
	assert.Equal(t, "Concert", updated.Event)

	rec = doJSON(t, h, http.MethodPut, fmt.Sprintf("/api/photos/%d", p.ID), map[string]any{})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestPhotoDeleteReturnsNoContent(t *testing.T) {
	h := newTestHandler(t)
	p := createPhoto(t, h, "/uploads/a.jpg", "Concert", "2024-05-01")

	rec := doJSON(t, h, http.MethodDelete, fmt.Sprintf("/api/photos/%d", p.ID), nil)
	assert.Equal(t, http.StatusNoContent, rec.Code)
	assert.Empty(t, rec.Body.String())

	rec = doJSON(t, h, http.MethodDelete, fmt.Sprintf("/api/photos/%d", p.ID), nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestGetPhoto(t *testing.T) {
	h := newTestHandler(t)
	p := createPhoto(t, h, "/uploads/a.jpg", "Concert", "2024-05-01")

	rec := doJSON(t, h, http.MethodGet, fmt.Sprintf("/api/photos/%d", p.ID), nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, p, decode[model.Photo](t, rec))

	rec = doJSON(t, h, http.MethodGet, "/api/photos/9999", nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "Photo not found", decode[map[string]string](t, rec)["error"])
}
