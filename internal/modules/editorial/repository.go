package editorial

import "context"

type BlogRepository interface {
	List(ctx context.Context) ([]BlogPost, error)
	GetByID(ctx context.Context, id string) (BlogPost, error)
	Upsert(ctx context.Context, b BlogPost) error
	Delete(ctx context.Context, id string) error
}

type GuideRepository interface {
	List(ctx context.Context) ([]BuyingGuide, error)
	GetByID(ctx context.Context, id string) (BuyingGuide, error)
	GetBySlug(ctx context.Context, slug string) (BuyingGuide, error)
	Upsert(ctx context.Context, g BuyingGuide) error
	Delete(ctx context.Context, id string) error
}
