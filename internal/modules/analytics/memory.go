package analytics

import (
	"context"

	"github.com/starlinkjewels/storefront-backend/internal/store"
)

type memoryRepo struct {
	records *store.Memory[VisitorLog]
}

func NewMemoryRepository() Repository {
	return &memoryRepo{records: store.NewMemory[VisitorLog]()}
}

func (r *memoryRepo) List(ctx context.Context) ([]VisitorLog, error) {
	return r.records.List(), nil
}

func (r *memoryRepo) Insert(ctx context.Context, v VisitorLog) error {
	r.records.Put(v.ID, v)
	return nil
}
