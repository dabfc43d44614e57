// Copyright (c) 2025-2026 Kanata Chinese Seniors Support Centre
// SPDX-License-Identifier: GPL-3.0-or-later

package api

import (
	"net/http"
	"time"

	"github.com/kcssc/kcssc-go/internal/version"
)

// health reports liveness plus a database ping when one is configured.
func (h *Handler) health(w http.ResponseWriter, r *http.Request) {
	status := http.StatusOK
	body := map[string]any{
		"status":    "ok",
		"timestamp": time.Now().UTC().Format(time.RFC3339),
		"version":   version.Version,
	}

	if h.db != nil {
		if err := h.db.PingContext(r.Context()); err != nil {
			h.log.Error("health: database ping failed", "error", err)
			body["status"] = "degraded"
			body["database"] = "unavailable"
			status = http.StatusServiceUnavailable
		} else {
			body["database"] = "ok"
		}
	}

	h.writeJSON(w, status, body)
}
