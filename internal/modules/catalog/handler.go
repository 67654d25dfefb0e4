package catalog

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/starlinkjewels/storefront-backend/internal/store"
)

// Handler exposes catalog HTTP endpoints.
type Handler struct{ service Service }

func NewHandler(service Service) *Handler { return &Handler{service: service} }

// RegisterRoutes mounts the public, read-only catalog surface. List reads
// degrade to empty lists rather than erroring.
func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Route("/api/v1", func(r chi.Router) {
		r.Get("/categories", h.listCategories)
		r.Get("/categories/{id}", h.getCategory)
		r.Get("/categories/{id}/products", h.listCategoryProducts)
		r.Get("/products", h.listProducts)
		r.Get("/products/{id}", h.getProduct)
		r.Get("/products/{id}/purchase-link", h.purchaseLink)
	})
}

// RegisterAdminRoutes mounts the CRUD surface; the caller wraps it in the
// admin auth middleware.
func (h *Handler) RegisterAdminRoutes(r chi.Router) {
	r.Post("/categories", h.createCategory)
	r.Put("/categories/{id}", h.updateCategory)
	r.Delete("/categories/{id}", h.deleteCategory)
	r.Post("/products", h.createProduct)
	r.Put("/products/{id}", h.updateProduct)
	r.Delete("/products/{id}", h.deleteProduct)
}

func (h *Handler) listCategories(w http.ResponseWriter, r *http.Request) {
	cats, err := h.service.ListCategories(r.Context())
	if err != nil {
		slog.Warn("listing categories failed, serving empty list", "error", err)
		cats = []Category{}
	}
	respond(w, http.StatusOK, cats)
}

func (h *Handler) getCategory(w http.ResponseWriter, r *http.Request) {
	c, err := h.service.GetCategory(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		respondError(w, err, "load category")
		return
	}
	respond(w, http.StatusOK, c)
}

func (h *Handler) listCategoryProducts(w http.ResponseWriter, r *http.Request) {
	key := ParseSortKey(r.URL.Query().Get("sort"))
	products, err := h.service.ListCategoryProducts(r.Context(), chi.URLParam(r, "id"), key)
	if err != nil {
		slog.Warn("listing category products failed, serving empty list", "error", err)
		products = []Product{}
	}
	respond(w, http.StatusOK, products)
}

func (h *Handler) listProducts(w http.ResponseWriter, r *http.Request) {
	products, err := h.service.ListProducts(r.Context())
	if err != nil {
		slog.Warn("listing products failed, serving empty list", "error", err)
		products = []Product{}
	}
	respond(w, http.StatusOK, products)
}

func (h *Handler) getProduct(w http.ResponseWriter, r *http.Request) {
	p, err := h.service.GetProduct(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		respondError(w, err, "load product")
		return
	}
	respond(w, http.StatusOK, p)
}

func (h *Handler) purchaseLink(w http.ResponseWriter, r *http.Request) {
	link, err := h.service.PurchaseLink(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		respondError(w, err, "build purchase link")
		return
	}
	respond(w, http.StatusOK, map[string]string{"url": link})
}

func (h *Handler) createCategory(w http.ResponseWriter, r *http.Request) {
	var req CategoryRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid json", http.StatusBadRequest)
		return
	}
	c, err := h.service.CreateCategory(r.Context(), req)
	if err != nil {
		respondError(w, err, "create category")
		return
	}
	respond(w, http.StatusCreated, c)
}

func (h *Handler) updateCategory(w http.ResponseWriter, r *http.Request) {
	var req CategoryRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid json", http.StatusBadRequest)
		return
	}
	c, err := h.service.UpdateCategory(r.Context(), chi.URLParam(r, "id"), req)
	if err != nil {
		respondError(w, err, "update category")
		return
	}
	respond(w, http.StatusOK, c)
}

func (h *Handler) deleteCategory(w http.ResponseWriter, r *http.Request) {
	if err := h.service.DeleteCategory(r.Context(), chi.URLParam(r, "id")); err != nil {
		respondError(w, err, "delete category")
		return
	}
	respond(w, http.StatusOK, map[string]string{"status": "deleted"})
}

func (h *Handler) createProduct(w http.ResponseWriter, r *http.Request) {
	var req ProductRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid json", http.StatusBadRequest)
		return
	}
	p, err := h.service.CreateProduct(r.Context(), req)
	if err != nil {
		respondError(w, err, "create product")
		return
	}
	respond(w, http.StatusCreated, p)
}

func (h *Handler) updateProduct(w http.ResponseWriter, r *http.Request) {
	var req ProductRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid json", http.StatusBadRequest)
		return
	}
	p, err := h.service.UpdateProduct(r.Context(), chi.URLParam(r, "id"), req)
	if err != nil {
		respondError(w, err, "update product")
		return
	}
	respond(w, http.StatusOK, p)
}

func (h *Handler) deleteProduct(w http.ResponseWriter, r *http.Request) {
	if err := h.service.DeleteProduct(r.Context(), chi.URLParam(r, "id")); err != nil {
		respondError(w, err, "delete product")
		return
	}
	respond(w, http.StatusOK, map[string]string{"status": "deleted"})
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
