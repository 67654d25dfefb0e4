package media

import (
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
)

const maxUploadBytes = 20 << 20

type Handler struct {
	service Service
}

func NewHandler(service Service) *Handler {
	return &Handler{service: service}
}

// RegisterAdminRoutes mounts the upload endpoint; uploads are admin-only.
func (h *Handler) RegisterAdminRoutes(r chi.Router) {
	r.Post("/uploads", h.upload)
}

func (h *Handler) upload(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, maxUploadBytes)
	if err := r.ParseMultipartForm(maxUploadBytes); err != nil {
		respond(w, http.StatusBadRequest, map[string]string{"error": "invalid multipart form"})
		return
	}
	file, header, err := r.FormFile("file")
	if err != nil {
		respond(w, http.StatusBadRequest, map[string]string{"error": "missing file field"})
		return
	}
	defer file.Close()
	data, err := io.ReadAll(file)
	if err != nil {
		respond(w, http.StatusBadRequest, map[string]string{"error": "unreadable file"})
		return
	}

	path := r.FormValue("path")
	skip := r.FormValue("skipWatermark") == "true"
	url, err := h.service.Store(r.Context(), path, header.Filename, data, skip)
	if err != nil {
		if errors.Is(err, ErrInvalidPath) {
			respond(w, http.StatusBadRequest, map[string]string{"error": err.Error()})
			return
		}
		slog.Error("upload failed", "path", path, "error", err)
		respond(w, http.StatusInternalServerError, map[string]string{"error": "failed to upload image"})
		return
	}
	respond(w, http.StatusCreated, map[string]string{"url": url})
}

func respond(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(payload)
}
