package content

import (
	"context"

	"github.com/starlinkjewels/storefront-backend/internal/store"
)

// memoryRepo backs a Repository with process memory, for dev mode and tests.
type memoryRepo[T any] struct {
	recs *store.Memory[T]
	id   func(T) string
}

func newMemoryRepo[T any](id func(T) string) Repository[T] {
	return &memoryRepo[T]{recs: store.NewMemory[T](), id: id}
}

func NewMemoryBannerRepository() Repository[Banner] {
	return newMemoryRepo(func(b Banner) string { return b.ID })
}

func NewMemoryGalleryRepository() Repository[GalleryItem] {
	return newMemoryRepo(func(g GalleryItem) string { return g.ID })
}

func NewMemoryFeaturedRepository() Repository[FeaturedItem] {
	return newMemoryRepo(func(f FeaturedItem) string { return f.ID })
}

func NewMemoryInstagramRepository() Repository[InstagramPost] {
	return newMemoryRepo(func(p InstagramPost) string { return p.ID })
}

func NewMemoryTestimonialRepository() Repository[Testimonial] {
	return newMemoryRepo(func(t Testimonial) string { return t.ID })
}

func (r *memoryRepo[T]) List(_ context.Context) ([]T, error) {
	return r.recs.List(), nil
}

func (r *memoryRepo[T]) GetByID(_ context.Context, id string) (T, error) {
	rec, ok := r.recs.Get(id)
	if !ok {
		var zero T
		return zero, store.ErrNotFound
	}
	return rec, nil
}

func (r *memoryRepo[T]) Upsert(_ context.Context, rec T) error {
	r.recs.Put(r.id(rec), rec)
	return nil
}

func (r *memoryRepo[T]) Delete(_ context.Context, id string) error {
	if !r.recs.Delete(id) {
		return store.ErrNotFound
	}
	return nil
}
