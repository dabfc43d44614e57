// Copyright (c) 2025-2026 Kanata Chinese Seniors Support Centre
// SPDX-License-Identifier: GPL-3.0-or-later

// Package api implements the REST endpoints under /api plus the health
// check. Responses use plain JSON arrays and objects; failures are
// {"error": "..."} with a matching status code.
package api

import (
	"database/sql"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/kcssc/kcssc-go/internal/imaging"
	"github.com/kcssc/kcssc-go/internal/model"
	"github.com/kcssc/kcssc-go/internal/service"
)

// Handler serves the site API.
type Handler struct {
	data       *service.DataService
	uploads    *imaging.Processor
	db         *sql.DB
	log        *slog.Logger
	mutation   []func(http.Handler) http.Handler
	uploadsDir string
}

// Options configures a Handler.
type Options struct {
	Data    *service.DataService
	Uploads *imaging.Processor
	// DB is pinged by the health check. Nil in mock mode.
	DB     *sql.DB
	Logger *slog.Logger
	// UploadsDir, when set, is served as static files under /uploads/.
	UploadsDir string
	// Mutation middleware guards every write route (auth, rate limits).
	Mutation []func(http.Handler) http.Handler
}

// New creates a Handler from the given options.
func New(opts Options) *Handler {
	log := opts.Logger
	if log == nil {
		log = slog.Default()
	}
	return &Handler{
		data:       opts.Data,
		uploads:    opts.Uploads,
		db:         opts.DB,
		log:        log,
		mutation:   opts.Mutation,
		uploadsDir: opts.UploadsDir,
	}
}

// Routes builds the API router.
func (h *Handler) Routes() chi.Router {
	r := chi.NewRouter()

	r.Get("/health", h.health)

	r.Route("/api", func(r chi.Router) {
		r.Get("/events", h.listEvents)
		r.Get("/events/{id}", h.getEvent)
		r.Get("/programs", h.listPrograms)
		r.Get("/programs/{id}", h.getProgram)
		r.Get("/photos", h.listPhotos)
		r.Get("/photos/{id}", h.getPhoto)
		r.Get("/calendar/{year}/{month}", h.monthCalendar)

		r.Group(func(r chi.Router) {
			r.Use(h.mutation...)

			r.Post("/events", h.createEvent)
			r.Put("/events/{id}", h.updateEvent)
			r.Delete("/events/{id}", h.deleteEvent)

			r.Post("/programs", h.createProgram)
			r.Put("/programs/{id}", h.updateProgram)
			r.Delete("/programs/{id}", h.deleteProgram)

			r.Post("/photos", h.createPhoto)
			r.Put("/photos/{id}", h.updatePhoto)
			r.Delete("/photos/{id}", h.deletePhoto)

			r.Post("/upload/photo", h.upload)
		})
	})

	if h.uploadsDir != "" {
		fs := http.StripPrefix("/uploads/", http.FileServer(http.Dir(h.uploadsDir)))
		r.Get("/uploads/*", fs.ServeHTTP)
	}

	return r
}

// writeJSON sends v with the given status.
func (h *Handler) writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		h.log.Error("encoding response failed", "error", err)
	}
}

// writeError sends an {"error": message} body.
func (h *Handler) writeError(w http.ResponseWriter, status int, message string) {
	h.writeJSON(w, status, map[string]string{"error": message})
}

// fail maps a service error onto a status code and logs server faults.
func (h *Handler) fail(w http.ResponseWriter, r *http.Request, err error, notFoundMsg string) {
	switch {
	case errors.Is(err, model.ErrNotFound):
		h.writeError(w, http.StatusNotFound, notFoundMsg)
	case errors.Is(err, service.ErrInvalidInput):
		h.writeError(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, service.ErrNoBackend):
		h.writeError(w, http.StatusServiceUnavailable, "Write operations are not available in mock mode")
	default:
		h.log.Error("request failed", "method", r.Method, "path", r.URL.Path, "error", err)
		h.writeError(w, http.StatusInternalServerError, "Internal server error")
	}
}

// idParam parses the {id} URL parameter.
func idParam(r *http.Request) (int64, error) {
	return strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
}

// decodeBody reads a JSON request body into v.
func decodeBody(r *http.Request, v any) error {
	defer r.Body.Close()
	return json.NewDecoder(r.Body).Decode(v)
}
