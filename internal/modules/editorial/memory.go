package editorial

import (
	"context"

	"github.com/starlinkjewels/storefront-backend/internal/store"
)

type memoryBlogRepo struct {
	records *store.Memory[BlogPost]
}

func NewMemoryBlogRepository() BlogRepository {
	return &memoryBlogRepo{records: store.NewMemory[BlogPost]()}
}

func (r *memoryBlogRepo) List(ctx context.Context) ([]BlogPost, error) {
	return r.records.List(), nil
}

func (r *memoryBlogRepo) GetByID(ctx context.Context, id string) (BlogPost, error) {
	b, ok := r.records.Get(id)
	if !ok {
		return BlogPost{}, store.ErrNotFound
	}
	return b, nil
}

func (r *memoryBlogRepo) Upsert(ctx context.Context, b BlogPost) error {
	r.records.Put(b.ID, b)
	return nil
}

func (r *memoryBlogRepo) Delete(ctx context.Context, id string) error {
	if !r.records.Delete(id) {
		return store.ErrNotFound
	}
	return nil
}

type memoryGuideRepo struct {
	records *store.Memory[BuyingGuide]
}

func NewMemoryGuideRepository() GuideRepository {
	return &memoryGuideRepo{records: store.NewMemory[BuyingGuide]()}
}

func (r *memoryGuideRepo) List(ctx context.Context) ([]BuyingGuide, error) {
	return r.records.List(), nil
}

func (r *memoryGuideRepo) GetByID(ctx context.Context, id string) (BuyingGuide, error) {
	g, ok := r.records.Get(id)
	if !ok {
		return BuyingGuide{}, store.ErrNotFound
	}
	return g, nil
}

func (r *memoryGuideRepo) GetBySlug(ctx context.Context, slug string) (BuyingGuide, error) {
	for _, g := range r.records.List() {
		if g.Slug == slug {
			return g, nil
		}
	}
	return BuyingGuide{}, store.ErrNotFound
}

func (r *memoryGuideRepo) Upsert(ctx context.Context, g BuyingGuide) error {
	r.records.Put(g.ID, g)
	return nil
}

func (r *memoryGuideRepo) Delete(ctx context.Context, id string) error {
	if !r.records.Delete(id) {
		return store.ErrNotFound
	}
	return nil
}
