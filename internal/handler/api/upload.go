// Copyright (c) 2025-2026 Kanata Chinese Seniors Support Centre
// SPDX-License-Identifier: GPL-3.0-or-later

package api

import (
	"errors"
	"io"
	"net/http"

	"github.com/kcssc/kcssc-go/internal/imaging"
)

// uploadResponse is the body returned after a successful upload.
type uploadResponse struct {
	Success      bool   `json:"success"`
	FilePath     string `json:"filePath"`
	Filename     string `json:"filename"`
	OriginalName string `json:"originalName"`
	Size         int64  `json:"size"`
}

// upload accepts a multipart form with a "photo" file field, stores it and
// returns its public path for use in a photo record.
func (h *Handler) upload(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, imaging.MaxUploadBytes+4096)

	file, header, err := r.FormFile("photo")
	if err != nil {
		var maxErr *http.MaxBytesError
		if errors.As(err, &maxErr) {
			h.writeError(w, http.StatusRequestEntityTooLarge, "File too large. Maximum size is 10MB.")
			return
		}
		h.writeError(w, http.StatusBadRequest, "No file uploaded")
		return
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		h.writeError(w, http.StatusBadRequest, "Reading upload failed")
		return
	}

	res, err := h.uploads.Save(header.Filename, data)
	switch {
	case errors.Is(err, imaging.ErrTooLarge):
		h.writeError(w, http.StatusRequestEntityTooLarge, "File too large. Maximum size is 10MB.")
		return
	case errors.Is(err, imaging.ErrUnsupportedType):
		h.writeError(w, http.StatusBadRequest, "Only image files are allowed (jpeg, jpg, png, gif, webp)")
		return
	case err != nil:
		h.log.Error("storing upload failed", "filename", header.Filename, "error", err)
		h.writeError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	h.log.Info("photo uploaded",
		"filename", res.Filename, "original", res.OriginalName, "size", res.Size)

	h.writeJSON(w, http.StatusOK, uploadResponse{
		Success:      true,
		FilePath:     res.Path,
		Filename:     res.Filename,
		OriginalName: res.OriginalName,
		Size:         res.Size,
	})
}
