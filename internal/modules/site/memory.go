package site

import (
	"context"
	"sync"

	"github.com/starlinkjewels/storefront-backend/internal/store"
)

type memoryContactRepo struct {
	mu  sync.RWMutex
	set bool
	c   ContactInfo
}

func NewMemoryContactRepository() ContactRepository {
	return &memoryContactRepo{}
}

func (r *memoryContactRepo) Get(ctx context.Context) (ContactInfo, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	if !r.set {
		return ContactInfo{}, store.ErrNotFound
	}
	return r.c, nil
}

func (r *memoryContactRepo) Set(ctx context.Context, c ContactInfo) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.c, r.set = c, true
	return nil
}

type memoryPromoRepo struct {
	mu  sync.RWMutex
	set bool
	p   PromoHeader
}

func NewMemoryPromoRepository() PromoRepository {
	return &memoryPromoRepo{}
}

func (r *memoryPromoRepo) Get(ctx context.Context) (PromoHeader, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	if !r.set {
		return PromoHeader{}, store.ErrNotFound
	}
	return r.p, nil
}

func (r *memoryPromoRepo) Set(ctx context.Context, p PromoHeader) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.p, r.set = p, true
	return nil
}

type memoryOfficeRepo struct {
	records *store.Memory[Office]
}

func NewMemoryOfficeRepository() OfficeRepository {
	return &memoryOfficeRepo{records: store.NewMemory[Office]()}
}

func (r *memoryOfficeRepo) List(ctx context.Context) ([]Office, error) {
	return r.records.List(), nil
}

func (r *memoryOfficeRepo) GetByID(ctx context.Context, id string) (Office, error) {
	o, ok := r.records.Get(id)
	if !ok {
		return Office{}, store.ErrNotFound
	}
	return o, nil
}

func (r *memoryOfficeRepo) Upsert(ctx context.Context, o Office) error {
	r.records.Put(o.ID, o)
	return nil
}

func (r *memoryOfficeRepo) Delete(ctx context.Context, id string) error {
	if !r.records.Delete(id) {
		return store.ErrNotFound
	}
	return nil
}
