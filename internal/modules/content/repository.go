package content

import "context"

// Repository is the shared storage contract for the simple content types in
// this module; each instance handles one collection.
type Repository[T any] interface {
	List(ctx context.Context) ([]T, error)
	GetByID(ctx context.Context, id string) (T, error)
	Upsert(ctx context.Context, rec T) error
	Delete(ctx context.Context, id string) error
}
