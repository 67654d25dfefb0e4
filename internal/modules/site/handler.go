package site

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/starlinkjewels/storefront-backend/internal/store"
)

type Handler struct {
	service Service
}

func NewHandler(service Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Get("/api/v1/contact", h.getContact)
	r.Get("/api/v1/promo-header", h.getPromo)
	r.Get("/api/v1/offices", h.listOffices)
}

func (h *Handler) RegisterAdminRoutes(r chi.Router) {
	r.Put("/contact", h.setContact)
	r.Put("/promo-header", h.setPromo)

	r.Get("/offices", h.listOffices)
	r.Post("/offices", h.createOffice)
	r.Put("/offices/{id}", h.updateOffice)
	r.Delete("/offices/{id}", h.deleteOffice)
}

func (h *Handler) getContact(w http.ResponseWriter, r *http.Request) {
	c, err := h.service.Contact(r.Context())
	if err != nil {
		slog.Warn("contact info unavailable", "error", err)
		c = DefaultContact()
	}
	respond(w, http.StatusOK, c)
}

func (h *Handler) setContact(w http.ResponseWriter, r *http.Request) {
	var c ContactInfo
	if err := json.NewDecoder(r.Body).Decode(&c); err != nil {
		respond(w, http.StatusBadRequest, map[string]string{"error": "invalid request body"})
		return
	}
	saved, err := h.service.SetContact(r.Context(), c)
	if err != nil {
		respondError(w, err, "save contact info")
		return
	}
	respond(w, http.StatusOK, saved)
}

func (h *Handler) getPromo(w http.ResponseWriter, r *http.Request) {
	p, err := h.service.Promo(r.Context())
	if err != nil {
		slog.Warn("promo header unavailable", "error", err)
		p = PromoHeader{}
	}
	respond(w, http.StatusOK, p)
}

func (h *Handler) setPromo(w http.ResponseWriter, r *http.Request) {
	var p PromoHeader
	if err := json.NewDecoder(r.Body).Decode(&p); err != nil {
		respond(w, http.StatusBadRequest, map[string]string{"error": "invalid request body"})
		return
	}
	saved, err := h.service.SetPromo(r.Context(), p)
	if err != nil {
		respondError(w, err, "save promo header")
		return
	}
	respond(w, http.StatusOK, saved)
}

func (h *Handler) listOffices(w http.ResponseWriter, r *http.Request) {
	offices, err := h.service.ListOffices(r.Context())
	if err != nil {
		slog.Warn("office list unavailable", "error", err)
		offices = []Office{}
	}
	respond(w, http.StatusOK, offices)
}

func (h *Handler) createOffice(w http.ResponseWriter, r *http.Request) {
	var req OfficeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respond(w, http.StatusBadRequest, map[string]string{"error": "invalid request body"})
		return
	}
	office, err := h.service.SaveOffice(r.Context(), "", req)
	if err != nil {
		respondError(w, err, "create office")
		return
	}
	respond(w, http.StatusCreated, office)
}

func (h *Handler) updateOffice(w http.ResponseWriter, r *http.Request) {
	var req OfficeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respond(w, http.StatusBadRequest, map[string]string{"error": "invalid request body"})
		return
	}
	office, err := h.service.SaveOffice(r.Context(), chi.URLParam(r, "id"), req)
	if err != nil {
		respondError(w, err, "update office")
		return
	}
	respond(w, http.StatusOK, office)
}

func (h *Handler) deleteOffice(w http.ResponseWriter, r *http.Request) {
	if err := h.service.DeleteOffice(r.Context(), chi.URLParam(r, "id")); err != nil {
		respondError(w, err, "delete office")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func respond(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(payload)
}

func respondError(w http.ResponseWriter, err error, action string) {
	switch {
	case errors.Is(err, store.ErrNotFound):
		respond(w, http.StatusNotFound, map[string]string{"error": "not found"})
	case errors.Is(err, ErrInvalidRecord):
		respond(w, http.StatusBadRequest, map[string]string{"error": err.Error()})
	default:
		slog.Error(action+" failed", "error", err)
		respond(w, http.StatusInternalServerError, map[string]string{"error": "failed to " + action})
	}
}
