package catalog

import (
	"context"

	"github.com/starlinkjewels/storefront-backend/internal/store"
)

type memoryCategoryRepo struct{ recs *store.Memory[Category] }

// NewMemoryCategoryRepository returns a CategoryRepository backed by process
// memory, for dev mode and tests.
func NewMemoryCategoryRepository() CategoryRepository {
	return &memoryCategoryRepo{recs: store.NewMemory[Category]()}
}

func (r *memoryCategoryRepo) List(_ context.Context) ([]Category, error) {
	return r.recs.List(), nil
}

func (r *memoryCategoryRepo) GetByID(_ context.Context, id string) (Category, error) {
	c, ok := r.recs.Get(id)
	if !ok {
		return Category{}, store.ErrNotFound
	}
	return c, nil
}

func (r *memoryCategoryRepo) Upsert(_ context.Context, c Category) error {
	r.recs.Put(c.ID, c)
	return nil
}

func (r *memoryCategoryRepo) Delete(_ context.Context, id string) error {
	if !r.recs.Delete(id) {
		return store.ErrNotFound
	}
	return nil
}

type memoryProductRepo struct{ recs *store.Memory[Product] }

// NewMemoryProductRepository returns a ProductRepository backed by process
// memory, for dev mode and tests.
func NewMemoryProductRepository() ProductRepository {
	return &memoryProductRepo{recs: store.NewMemory[Product]()}
}

func (r *memoryProductRepo) List(_ context.Context) ([]Product, error) {
	return r.recs.List(), nil
}

func (r *memoryProductRepo) ListByCategory(_ context.Context, categoryID string) ([]Product, error) {
	all := r.recs.List()
	out := make([]Product, 0, len(all))
	for _, p := range all {
		if p.CategoryID == categoryID {
			out = append(out, p)
		}
	}
	return out, nil
}

func (r *memoryProductRepo) GetByID(_ context.Context, id string) (Product, error) {
	p, ok := r.recs.Get(id)
	if !ok {
		return Product{}, store.ErrNotFound
	}
	return p, nil
}

func (r *memoryProductRepo) Upsert(_ context.Context, p Product) error {
	r.recs.Put(p.ID, p)
	return nil
}

func (r *memoryProductRepo) Delete(_ context.Context, id string) error {
	if !r.recs.Delete(id) {
		return store.ErrNotFound
	}
	return nil
}
