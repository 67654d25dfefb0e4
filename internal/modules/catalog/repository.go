package catalog

import "context"

// CategoryRepository defines the interface for category storage.
type CategoryRepository interface {
	List(ctx context.Context) ([]Category, error)
	GetByID(ctx context.Context, id string) (Category, error)
	Upsert(ctx context.Context, c Category) error
	Delete(ctx context.Context, id string) error
}

// ProductRepository defines the interface for product storage.
type ProductRepository interface {
	List(ctx context.Context) ([]Product, error)
	ListByCategory(ctx context.Context, categoryID string) ([]Product, error)
	GetByID(ctx context.Context, id string) (Product, error)
	Upsert(ctx context.Context, p Product) error
	Delete(ctx context.Context, id string) error
}
