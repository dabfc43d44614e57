// Copyright (c) 2025-2026 Kanata Chinese Seniors Support Centre
// SPDX-License-Identifier: GPL-3.0-or-later

package api

import (
	"net/http"
	"strconv"

	"github.com/kcssc/kcssc-go/internal/model"
)

func photoFilterFromQuery(r *http.Request) model.PhotoFilter {
	q := r.URL.Query()
	f := model.PhotoFilter{
		Event: q.Get("event"),
	}
	if v := q.Get("favourite"); v != "" {
		favourite := v == "true"
		f.Favourite = &favourite
	}
	if v := q.Get("year"); v != "" {
		if year, err := strconv.Atoi(v); err == nil {
			f.Year = year
		}
	}
	return f
}

func (h *Handler) listPhotos(w http.ResponseWriter, r *http.Request) {
	photos, err := h.data.Photos(r.Context(), photoFilterFromQuery(r))
	if err != nil {
		h.fail(w, r, err, "")
		return
	}
	if photos == nil {
		photos = []model.Photo{}
	}
	h.writeJSON(w, http.StatusOK, photos)
}

func (h *Handler) getPhoto(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r)
	if err != nil {
		h.writeError(w, http.StatusBadRequest, "Invalid photo ID")
		return
	}
	photo, err := h.data.Photo(r.Context(), id)
	if err != nil {
		h.fail(w, r, err, "Photo not found")
		return
	}
	h.writeJSON(w, http.StatusOK, photo)
}

func (h *Handler) createPhoto(w http.ResponseWriter, r *http.Request) {
	var p model.Photo
	if err := decodeBody(r, &p); err != nil {
		h.writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if p.Photo == "" || p.Event == "" || p.Date == "" {
		h.writeError(w, http.StatusBadRequest, "Photo, event, and date are required")
		return
	}
	created, err := h.data.CreatePhoto(r.Context(), p)
	if err != nil {
		h.fail(w, r, err, "")
		return
	}
	h.writeJSON(w, http.StatusCreated, created)
}

func (h *Handler) updatePhoto(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r)
	if err != nil {
		h.writeError(w, http.StatusBadRequest, "Invalid photo ID")
		return
	}
	var patch model.PhotoPatch
	if err := decodeBody(r, &patch); err != nil {
		h.writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if patch.IsZero() {
		h.writeError(w, http.StatusBadRequest, "No fields to update")
		return
	}
	updated, err := h.data.UpdatePhoto(r.Context(), id, patch)
	if err != nil {
		h.fail(w, r, err, "Photo not found")
		return
	}
	h.writeJSON(w, http.StatusOK, updated)
}

func (h *Handler) deletePhoto(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r)
	if err != nil {
		h.writeError(w, http.StatusBadRequest, "Invalid photo ID")
		return
	}
	if err := h.data.DeletePhoto(r.Context(), id); err != nil {
		h.fail(w, r, err, "Photo not found")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
