package content

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/starlinkjewels/storefront-backend/internal/store"
)

// Handler exposes the supporting-content HTTP endpoints. The five types in
// this module share one CRUD shape, so routes are registered generically.
type Handler struct{ service Service }

func NewHandler(service Service) *Handler { return &Handler{service: service} }

func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Route("/api/v1", func(r chi.Router) {
		r.Get("/banners", listOf(h.service.ListBanners, "banners"))
		r.Get("/gallery", listOf(h.service.ListGallery, "gallery"))
		r.Get("/featured", listOf(h.service.ListFeatured, "featured collection"))
		r.Get("/instagram", listOf(h.service.ListInstagramPosts, "instagram posts"))
		r.Get("/testimonials", listOf(h.service.ListTestimonials, "testimonials"))
	})
}

func (h *Handler) RegisterAdminRoutes(r chi.Router) {
	registerCRUD(r, "/banners", h.service.SaveBanner, h.service.DeleteBanner, "banner")
	registerCRUD(r, "/gallery", h.service.SaveGalleryItem, h.service.DeleteGalleryItem, "gallery item")
	registerCRUD(r, "/featured", h.service.SaveFeaturedItem, h.service.DeleteFeaturedItem, "featured item")
	registerCRUD(r, "/instagram", h.service.SaveInstagramPost, h.service.DeleteInstagramPost, "instagram post")
	registerCRUD(r, "/testimonials", h.service.SaveTestimonial, h.service.DeleteTestimonial, "testimonial")
}

// listOf adapts a list read into a handler that degrades to an empty list
// instead of erroring.
func listOf[T any](list func(context.Context) ([]T, error), what string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		recs, err := list(r.Context())
		if err != nil {
			slog.Warn("listing "+what+" failed, serving empty list", "error", err)
			recs = []T{}
		}
		respond(w, http.StatusOK, recs)
	}
}

// registerCRUD mounts create/update/delete for one content type. POST
// creates with a fresh id, PUT replaces in place, DELETE removes.
func registerCRUD[Req any, T any](
	r chi.Router,
	path string,
	save func(context.Context, string, Req) (T, error),
	del func(context.Context, string) error,
	what string,
) {
	r.Post(path, func(w http.ResponseWriter, r *http.Request) {
		var req Req
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "invalid json", http.StatusBadRequest)
			return
		}
		rec, err := save(r.Context(), "", req)
		if err != nil {
			respondError(w, err, "create "+what)
			return
		}
		respond(w, http.StatusCreated, rec)
	})
	r.Put(path+"/{id}", func(w http.ResponseWriter, r *http.Request) {
		var req Req
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "invalid json", http.StatusBadRequest)
			return
		}
		rec, err := save(r.Context(), chi.URLParam(r, "id"), req)
		if err != nil {
			respondError(w, err, "update "+what)
			return
		}
		respond(w, http.StatusOK, rec)
	})
	r.Delete(path+"/{id}", func(w http.ResponseWriter, r *http.Request) {
		if err := del(r.Context(), chi.URLParam(r, "id")); err != nil {
			respondError(w, err, "delete "+what)
			return
		}
		respond(w, http.StatusOK, map[string]string{"status": "deleted"})
	})
}

func respond(w http.ResponseWriter, status int, body interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(body)
}

func respondError(w http.ResponseWriter, err error, action string) {
	switch {
	case errors.Is(err, store.ErrNotFound):
		http.Error(w, "not found", http.StatusNotFound)
	case errors.Is(err, ErrInvalidRecord):
		http.Error(w, err.Error(), http.StatusBadRequest)
	default:
		slog.Error(action+" failed", "error", err)
		http.Error(w, "failed to "+action, http.StatusInternalServerError)
	}
}
