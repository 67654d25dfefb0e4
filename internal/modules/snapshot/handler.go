package snapshot

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
)

type Handler struct {
	service Service
}

func NewHandler(service Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Get("/api/v1/storefront", h.getSnapshot)
}

func (h *Handler) RegisterAdminRoutes(r chi.Router) {
	r.Post("/storefront/refresh", h.refresh)
}

func (h *Handler) getSnapshot(w http.ResponseWriter, r *http.Request) {
	snap, err := h.service.Get(r.Context())
	if err != nil {
		slog.Error("serving snapshot failed", "error", err)
		snap = Empty()
	}
	respond(w, http.StatusOK, snap)
}

func (h *Handler) refresh(w http.ResponseWriter, r *http.Request) {
	snap, err := h.service.Refetch(r.Context())
	if err != nil {
		slog.Error("refreshing snapshot failed", "error", err)
		respond(w, http.StatusInternalServerError, map[string]string{"error": "failed to refresh storefront"})
		return
	}
	respond(w, http.StatusOK, snap)
}

func respond(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(payload)
}
