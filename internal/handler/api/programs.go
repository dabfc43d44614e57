// Copyright (c) 2025-2026 Kanata Chinese Seniors Support Centre
// SPDX-License-Identifier: GPL-3.0-or-later

package api

import (
	"net/http"
	"strconv"

	"github.com/kcssc/kcssc-go/internal/model"
)

func programFilterFromQuery(r *http.Request) model.ProgramFilter {
	q := r.URL.Query()
	return model.ProgramFilter{
		Category: q.Get("category"),
		AgeGroup: q.Get("ageGroup"),
	}
}

func (h *Handler) listPrograms(w http.ResponseWriter, r *http.Request) {
	programs, err := h.data.Programs(r.Context(), programFilterFromQuery(r))
	if err != nil {
		h.fail(w, r, err, "")
		return
	}
	if programs == nil {
		programs = []model.Program{}
	}
	h.writeJSON(w, http.StatusOK, programs)
}

func (h *Handler) getProgram(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r)
	if err != nil {
		h.writeError(w, http.StatusBadRequest, "Invalid program ID")
		return
	}
	program, err := h.data.Program(r.Context(), id)
	if err != nil {
		h.fail(w, r, err, "Program not found")
		return
	}
	h.writeJSON(w, http.StatusOK, program)
}

func validateProgram(p model.Program) string {
	switch {
	case p.Title == "":
		return "Title is required"
	case p.Category == "":
		return "Category is required"
	case p.Icon == "":
		return "Icon is required"
	case p.Schedule == "":
		return "Schedule is required"
	}
	return ""
}

func (h *Handler) createProgram(w http.ResponseWriter, r *http.Request) {
	var p model.Program
	if err := decodeBody(r, &p); err != nil {
		h.writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if msg := validateProgram(p); msg != "" {
		h.writeError(w, http.StatusBadRequest, msg)
		return
	}
	created, err := h.data.CreateProgram(r.Context(), p)
	if err != nil {
		h.fail(w, r, err, "")
		return
	}
	h.writeJSON(w, http.StatusCreated, created)
}

func (h *Handler) updateProgram(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r)
	if err != nil {
		h.writeError(w, http.StatusBadRequest, "Invalid program ID")
		return
	}
	var p model.Program
	if err := decodeBody(r, &p); err != nil {
		h.writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if msg := validateProgram(p); msg != "" {
		h.writeError(w, http.StatusBadRequest, msg)
		return
	}
	updated, err := h.data.UpdateProgram(r.Context(), id, p)
	if err != nil {
		h.fail(w, r, err, "Program not found")
		return
	}
	h.writeJSON(w, http.StatusOK, updated)
}

func (h *Handler) deleteProgram(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r)
	if err != nil {
		h.writeError(w, http.StatusBadRequest, "Invalid program ID")
		return
	}
	if err := h.data.DeleteProgram(r.Context(), id); err != nil {
		h.fail(w, r, err, "Program not found")
		return
	}
	h.writeJSON(w, http.StatusOK, map[string]any{
		"message": "Program deleted successfully",
		"id":      strconv.FormatInt(id, 10),
	})
}
