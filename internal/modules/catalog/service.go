package catalog

import (
	"context"
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/starlinkjewels/storefront-backend/internal/sanitize"
	"github.com/starlinkjewels/storefront-backend/internal/store"
)

// Service defines catalog business logic.
type Service interface {
	ListCategories(ctx context.Context) ([]Category, error)
	GetCategory(ctx context.Context, id string) (Category, error)
	CreateCategory(ctx context.Context, req CategoryRequest) (Category, error)
	UpdateCategory(ctx context.Context, id string, req CategoryRequest) (Category, error)
	DeleteCategory(ctx context.Context, id string) error

	ListProducts(ctx context.Context) ([]Product, error)
	ListCategoryProducts(ctx context.Context, categoryID string, key SortKey) ([]Product, error)
	GetProduct(ctx context.Context, id string) (Product, error)
	CreateProduct(ctx context.Context, req ProductRequest) (Product, error)
	UpdateProduct(ctx context.Context, id string, req ProductRequest) (Product, error)
	DeleteProduct(ctx context.Context, id string) error

	PurchaseLink(ctx context.Context, id string) (string, error)
}

// CategoryRequest holds the data for creating or updating a category.
type CategoryRequest struct {
	Name        string `json:"name"`
	Image       string `json:"image"`
	Description string `json:"description"`
	Priority    int    `json:"priority"`
}

// ProductRequest holds the data for creating or updating a product.
type ProductRequest struct {
	CategoryID  string   `json:"categoryId"`
	Name        string   `json:"name"`
	Image       string   `json:"image"`
	Images      []string `json:"images"`
	Description string   `json:"description"`
	Price       string   `json:"price"`
}

type service struct {
	categories CategoryRepository
	products   ProductRepository

	// purchaseNumber resolves the messaging number purchase intents are
	// routed to; deleting a category never cascades into products here.
	purchaseNumber func(ctx context.Context) string
}

// NewService wires the catalog repositories. purchaseNumber resolves the
// fixed messaging number used for purchase deep links.
func NewService(categories CategoryRepository, products ProductRepository, purchaseNumber func(ctx context.Context) string) Service {
	return &service{categories: categories, products: products, purchaseNumber: purchaseNumber}
}

func (s *service) ListCategories(ctx context.Context) ([]Category, error) {
	cats, err := s.categories.List(ctx)
	if err != nil {
		return nil, err
	}
	return SortCategories(cats), nil
}

func (s *service) GetCategory(ctx context.Context, id string) (Category, error) {
	return s.categories.GetByID(ctx, id)
}

func (s *service) CreateCategory(ctx context.Context, req CategoryRequest) (Category, error) {
	c, err := ParseCategory(Category{
		ID:          store.NewID("cat"),
		Name:        req.Name,
		Image:       req.Image,
		Description: req.Description,
		Priority:    req.Priority,
	})
	if err != nil {
		return Category{}, err
	}
	if err := s.categories.Upsert(ctx, c); err != nil {
		return Category{}, err
	}
	return c, nil
}

func (s *service) UpdateCategory(ctx context.Context, id string, req CategoryRequest) (Category, error) {
	if _, err := s.categories.GetByID(ctx, id); err != nil {
		return Category{}, err
	}
	c, err := ParseCategory(Category{
		ID:          id,
		Name:        req.Name,
		Image:       req.Image,
		Description: req.Description,
		Priority:    req.Priority,
	})
	if err != nil {
		return Category{}, err
	}
	if err := s.categories.Upsert(ctx, c); err != nil {
		return Category{}, err
	}
	return c, nil
}

// DeleteCategory removes the category only; its products keep their dangling
// categoryId and simply fail to resolve a category name on the public site.
func (s *service) DeleteCategory(ctx context.Context, id string) error {
	return s.categories.Delete(ctx, id)
}

func (s *service) ListProducts(ctx context.Context) ([]Product, error) {
	return s.products.List(ctx)
}

func (s *service) ListCategoryProducts(ctx context.Context, categoryID string, key SortKey) ([]Product, error) {
	products, err := s.products.ListByCategory(ctx, categoryID)
	if err != nil {
		return nil, err
	}
	return SortProducts(products, key), nil
}

func (s *service) GetProduct(ctx context.Context, id string) (Product, error) {
	return s.products.GetByID(ctx, id)
}

func (s *service) CreateProduct(ctx context.Context, req ProductRequest) (Product, error) {
	p, err := ParseProduct(Product{
		ID:          store.NewID("prod"),
		CategoryID:  req.CategoryID,
		Name:        req.Name,
		Image:       req.Image,
		Images:      req.Images,
		Description: req.Description,
		Price:       req.Price,
		CreatedAt:   time.Now().UTC().Format(time.RFC3339),
	})
	if err != nil {
		return Product{}, err
	}
	if err := s.products.Upsert(ctx, p); err != nil {
		return Product{}, err
	}
	return p, nil
}

func (s *service) UpdateProduct(ctx context.Context, id string, req ProductRequest) (Product, error) {
	existing, err := s.products.GetByID(ctx, id)
	if err != nil {
		return Product{}, err
	}
	p, err := ParseProduct(Product{
		ID:          id,
		CategoryID:  req.CategoryID,
		Name:        req.Name,
		Image:       req.Image,
		Images:      req.Images,
		Description: req.Description,
		Price:       req.Price,
		CreatedAt:   existing.CreatedAt,
	})
	if err != nil {
		return Product{}, err
	}
	if err := s.products.Upsert(ctx, p); err != nil {
		return Product{}, err
	}
	return p, nil
}

func (s *service) DeleteProduct(ctx context.Context, id string) error {
	return s.products.Delete(ctx, id)
}

func (s *service) PurchaseLink(ctx context.Context, id string) (string, error) {
	p, err := s.products.GetByID(ctx, id)
	if err != nil {
		return "", err
	}
	return BuildPurchaseLink(p, s.purchaseNumber(ctx)), nil
}

// BuildPurchaseLink builds the deep link that opens a pre-filled chat with
// the shop's fixed messaging number. The message carries the product name,
// its price reduced to digits, and the description with markup stripped.
func BuildPurchaseLink(p Product, number string) string {
	price := "$" + numericPortion(p.Price)
	message := fmt.Sprintf("Hi! I'm interested in:\n\n*%s*\nPrice: %s\n\n%s",
		p.Name, price, sanitize.Text(p.Description))
	return "https://wa.me/" + strings.TrimSpace(number) + "?text=" + url.QueryEscape(message)
}
