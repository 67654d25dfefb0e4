package analytics

import (
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
)

type Handler struct {
	service Service
}

func NewHandler(service Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Post("/api/v1/visits", h.recordVisit)
}

func (h *Handler) RegisterAdminRoutes(r chi.Router) {
	r.Get("/visits", h.listVisits)
}

// recordVisit always answers 204; analytics must never break the page.
func (h *Handler) recordVisit(w http.ResponseWriter, r *http.Request) {
	var visit Visit
	if err := json.NewDecoder(r.Body).Decode(&visit); err == nil || errors.Is(err, io.EOF) {
		visit.IP = clientIP(r)
		visit.UserAgent = r.UserAgent()
		if err := h.service.RecordVisit(r.Context(), visit); err != nil {
			slog.Warn("recording visit failed", "error", err)
		}
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) listVisits(w http.ResponseWriter, r *http.Request) {
	visits, err := h.service.ListVisits(r.Context())
	if err != nil {
		slog.Error("listing visits failed", "error", err)
		respond(w, http.StatusInternalServerError, map[string]string{"error": "failed to list visits"})
		return
	}
	respond(w, http.StatusOK, visits)
}

func clientIP(r *http.Request) string {
	if fwd := r.Header.Get("X-Forwarded-For"); fwd != "" {
		return strings.TrimSpace(strings.Split(fwd, ",")[0])
	}
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}

func respond(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(payload)
}
