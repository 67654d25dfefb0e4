package editorial

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

// RegisterRoutes mounts the public read endpoints.
func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Get("/api/v1/blogs", h.listBlogs)
	r.Get("/api/v1/blogs/{id}", h.getBlog)
	r.Get("/api/v1/buying-guides", h.listGuides)
	r.Get("/api/v1/buying-guides/{slug}", h.getGuide)
}

// RegisterAdminRoutes mounts admin CRUD; paths are relative so the caller
// can wrap them in auth middleware.
func (h *Handler) RegisterAdminRoutes(r chi.Router) {
	r.Get("/blogs", h.listBlogs)
	r.Post("/blogs", h.createBlog)
	r.Put("/blogs/{id}", h.updateBlog)
	r.Delete("/blogs/{id}", h.deleteBlog)

	r.Get("/buying-guides", h.listAllGuides)
	r.Post("/buying-guides", h.createGuide)
	r.Put("/buying-guides/{id}", h.updateGuide)
	r.Delete("/buying-guides/{id}", h.deleteGuide)
}

func (h *Handler) listBlogs(w http.ResponseWriter, r *http.Request) {
	posts, err := h.service.ListBlogs(r.Context())
	if err != nil {
		slog.Warn("blog list unavailable", "error", err)
		posts = []BlogPost{}
	}
	respond(w, http.StatusOK, posts)
}

func (h *Handler) getBlog(w http.ResponseWriter, r *http.Request) {
	post, err := h.service.GetBlog(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		respondError(w, err, "load blog post")
		return
	}
	respond(w, http.StatusOK, post)
}

func (h *Handler) createBlog(w http.ResponseWriter, r *http.Request) {
	var req BlogRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respond(w, http.StatusBadRequest, map[string]string{"error": "invalid request body"})
		return
	}
	post, err := h.service.SaveBlog(r.Context(), "", req)
	if err != nil {
		respondError(w, err, "create blog post")
		return
	}
	respond(w, http.StatusCreated, post)
}

func (h *Handler) updateBlog(w http.ResponseWriter, r *http.Request) {
	var req BlogRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respond(w, http.StatusBadRequest, map[string]string{"error": "invalid request body"})
		return
	}
	post, err := h.service.SaveBlog(r.Context(), chi.URLParam(r, "id"), req)
	if err != nil {
		respondError(w, err, "update blog post")
		return
	}
	respond(w, http.StatusOK, post)
}

func (h *Handler) deleteBlog(w http.ResponseWriter, r *http.Request) {
	if err := h.service.DeleteBlog(r.Context(), chi.URLParam(r, "id")); err != nil {
		respondError(w, err, "delete blog post")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) listGuides(w http.ResponseWriter, r *http.Request) {
	guides, err := h.service.ListPublishedGuides(r.Context())
	if err != nil {
		slog.Warn("buying guide list unavailable", "error", err)
		guides = []BuyingGuide{}
	}
	respond(w, http.StatusOK, guides)
}

func (h *Handler) listAllGuides(w http.ResponseWriter, r *http.Request) {
	guides, err := h.service.ListAllGuides(r.Context())
	if err != nil {
		slog.Warn("buying guide list unavailable", "error", err)
		guides = []BuyingGuide{}
	}
	respond(w, http.StatusOK, guides)
}

func (h *Handler) getGuide(w http.ResponseWriter, r *http.Request) {
	guide, err := h.service.GetGuideBySlug(r.Context(), chi.URLParam(r, "slug"))
	if err != nil {
		respondError(w, err, "load buying guide")
		return
	}
	respond(w, http.StatusOK, guide)
}

func (h *Handler) createGuide(w http.ResponseWriter, r *http.Request) {
	var req GuideRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respond(w, http.StatusBadRequest, map[string]string{"error": "invalid request body"})
		return
	}
	guide, err := h.service.SaveGuide(r.Context(), "", req)
	if err != nil {
		respondError(w, err, "create buying guide")
		return
	}
	respond(w, http.StatusCreated, guide)
}

func (h *Handler) updateGuide(w http.ResponseWriter, r *http.Request) {
	var req GuideRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respond(w, http.StatusBadRequest, map[string]string{"error": "invalid request body"})
		return
	}
	guide, err := h.service.SaveGuide(r.Context(), chi.URLParam(r, "id"), req)
	if err != nil {
		respondError(w, err, "update buying guide")
		return
	}
	respond(w, http.StatusOK, guide)
}

func (h *Handler) deleteGuide(w http.ResponseWriter, r *http.Request) {
	if err := h.service.DeleteGuide(r.Context(), chi.URLParam(r, "id")); err != nil {
		respondError(w, err, "delete buying guide")
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
