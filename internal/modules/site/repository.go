package site

import "context"

// ContactRepository holds a single contact document.
type ContactRepository interface {
	Get(ctx context.Context) (ContactInfo, error)
	Set(ctx context.Context, c ContactInfo) error
}

// PromoRepository holds a single promo header document.
type PromoRepository interface {
	Get(ctx context.Context) (PromoHeader, error)
	Set(ctx context.Context, p PromoHeader) error
}

type OfficeRepository interface {
	List(ctx context.Context) ([]Office, error)
	GetByID(ctx context.Context, id string) (Office, error)
	Upsert(ctx context.Context, o Office) error
	Delete(ctx context.Context, id string) error
}
