package site

import (
	"context"
	"errors"
	"log/slog"

	"github.com/starlinkjewels/storefront-backend/internal/store"
)

type Service interface {
	// EnsureDefaults seeds the contact document if the store is empty.
	EnsureDefaults(ctx context.Context) error

	Contact(ctx context.Context) (ContactInfo, error)
	SetContact(ctx context.Context, c ContactInfo) (ContactInfo, error)

	Promo(ctx context.Context) (PromoHeader, error)
	SetPromo(ctx context.Context, p PromoHeader) (PromoHeader, error)

	ListOffices(ctx context.Context) ([]Office, error)
	SaveOffice(ctx context.Context, id string, req OfficeRequest) (Office, error)
	DeleteOffice(ctx context.Context, id string) error
}

type OfficeRequest struct {
	Country        string `json:"country"`
	City           string `json:"city"`
	Address        string `json:"address"`
	Phone          string `json:"phone"`
	Email          string `json:"email"`
	FlagImage      string `json:"flagImage"`
	IsHeadquarters bool   `json:"isHeadquarters"`
}

type service struct {
	contact ContactRepository
	promo   PromoRepository
	offices OfficeRepository
}

func NewService(contact ContactRepository, promo PromoRepository, offices OfficeRepository) Service {
	return &service{contact: contact, promo: promo, offices: offices}
}

func (s *service) EnsureDefaults(ctx context.Context) error {
	_, err := s.contact.Get(ctx)
	if err == nil {
		return nil
	}
	if !errors.Is(err, store.ErrNotFound) {
		return err
	}
	slog.Info("seeding default contact info")
	return s.contact.Set(ctx, DefaultContact())
}

func (s *service) Contact(ctx context.Context) (ContactInfo, error) {
	c, err := s.contact.Get(ctx)
	if errors.Is(err, store.ErrNotFound) {
		return DefaultContact(), nil
	}
	return c, err
}

func (s *service) SetContact(ctx context.Context, c ContactInfo) (ContactInfo, error) {
	if err := s.contact.Set(ctx, c); err != nil {
		return ContactInfo{}, err
	}
	return c, nil
}

func (s *service) Promo(ctx context.Context) (PromoHeader, error) {
	p, err := s.promo.Get(ctx)
	if errors.Is(err, store.ErrNotFound) {
		// Absent document means the strip is off.
		return PromoHeader{}, nil
	}
	return p, err
}

func (s *service) SetPromo(ctx context.Context, p PromoHeader) (PromoHeader, error) {
	if err := s.promo.Set(ctx, p); err != nil {
		return PromoHeader{}, err
	}
	return p, nil
}

func (s *service) ListOffices(ctx context.Context) ([]Office, error) {
	offices, err := s.offices.List(ctx)
	if err != nil {
		return nil, err
	}
	return SortOffices(offices), nil
}

func (s *service) SaveOffice(ctx context.Context, id string, req OfficeRequest) (Office, error) {
	if id == "" {
		id = store.NewID("office")
	}
	office, err := ParseOffice(Office{
		ID:             id,
		Country:        req.Country,
		City:           req.City,
		Address:        req.Address,
		Phone:          req.Phone,
		Email:          req.Email,
		FlagImage:      req.FlagImage,
		IsHeadquarters: req.IsHeadquarters,
	})
	if err != nil {
		return Office{}, err
	}
	if err := s.offices.Upsert(ctx, office); err != nil {
		return Office{}, err
	}
	return office, nil
}

func (s *service) DeleteOffice(ctx context.Context, id string) error {
	return s.offices.Delete(ctx, id)
}
