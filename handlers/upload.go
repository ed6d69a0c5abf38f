// Copyright (c) 2025 Adrian Vogel.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/dustin/go-humanize"

	"github.com/avogel3/costumevote/engine"
	"github.com/avogel3/costumevote/images"
	"github.com/avogel3/costumevote/middleware"
	"github.com/avogel3/costumevote/models"
)

// Uploads larger than this are rejected before decoding.
const maxUploadBytes = 10 << 20

type UploadHandler struct {
	engine *engine.Engine
	images *images.Store
}

func NewUploadHandler(eng *engine.Engine, imgs *images.Store) *UploadHandler {
	return &UploadHandler{engine: eng, images: imgs}
}

// Upload handles POST /upload/{authCode}
// Accepts a multipart form with an "image" file, stores it and links
// the resulting image id to the code. Re-uploading replaces the link.
func (h *UploadHandler) Upload(w http.ResponseWriter, r *http.Request) {
	authCode := r.PathValue("authCode")
	if authCode == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, "auth code is required")
		return
	}

	if err := r.ParseMultipartForm(maxUploadBytes); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid multipart form")
		return
	}

	file, header, err := r.FormFile("image")
	if err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "image file is required")
		return
	}
	defer file.Close()

	imageID, err := h.images.Save(file)
	if err != nil {
		slog.Warn("failed to process upload", "error", err, "filename", header.Filename)
		middleware.ErrorResponse(w, http.StatusBadRequest, "Could not process image")
		return
	}

	if err := h.engine.AttachImage(authCode, imageID); err != nil {
		switch {
		case errors.Is(err, engine.ErrInvalidToken):
			middleware.ErrorResponse(w, http.StatusUnauthorized, err.Error())
		default:
			slog.Error("failed to link image", "error", err)
			middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		}
		return
	}

	slog.Info("image uploaded",
		"image_id", imageID,
		"size", humanize.Bytes(uint64(header.Size)),
	)

	middleware.JSONResponse(w, http.StatusCreated, models.UploadResponse{
		ImageID: imageID,
	})
}

// GetImage handles GET /images/{id}
func (h *UploadHandler) GetImage(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	if id == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, "image id is required")
		return
	}

	http.ServeFile(w, r, h.images.Path(id))
}
