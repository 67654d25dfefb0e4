package content

import (
	"context"

	"github.com/starlinkjewels/storefront-backend/internal/store"
)

// Service defines the supporting-content business logic. Save operations
// follow the admin form flow: an empty id creates a record, a known id
// replaces it in place.
type Service interface {
	ListBanners(ctx context.Context) ([]Banner, error)
	SaveBanner(ctx context.Context, id string, req BannerRequest) (Banner, error)
	DeleteBanner(ctx context.Context, id string) error

	ListGallery(ctx context.Context) ([]GalleryItem, error)
	SaveGalleryItem(ctx context.Context, id string, req GalleryItemRequest) (GalleryItem, error)
	DeleteGalleryItem(ctx context.Context, id string) error

	ListFeatured(ctx context.Context) ([]FeaturedItem, error)
	SaveFeaturedItem(ctx context.Context, id string, req FeaturedItemRequest) (FeaturedItem, error)
	DeleteFeaturedItem(ctx context.Context, id string) error

	ListInstagramPosts(ctx context.Context) ([]InstagramPost, error)
	SaveInstagramPost(ctx context.Context, id string, req InstagramPostRequest) (InstagramPost, error)
	DeleteInstagramPost(ctx context.Context, id string) error

	ListTestimonials(ctx context.Context) ([]Testimonial, error)
	SaveTestimonial(ctx context.Context, id string, req TestimonialRequest) (Testimonial, error)
	DeleteTestimonial(ctx context.Context, id string) error
}

type BannerRequest struct {
	Image       string `json:"image"`
	Title       string `json:"title"`
	Description string `json:"description"`
	MediaType   string `json:"mediaType"`
	Priority    int    `json:"priority"`
}

type GalleryItemRequest struct {
	Image       string `json:"image"`
	Description string `json:"description"`
}

type FeaturedItemRequest struct {
	Image       string `json:"image"`
	Title       string `json:"title"`
	Description string `json:"description"`
}

type InstagramPostRequest struct {
	URL string `json:"url"`
}

type TestimonialRequest struct {
	Name   string `json:"name"`
	Text   string `json:"text"`
	Rating int    `json:"rating"`
}

type service struct {
	banners      Repository[Banner]
	gallery      Repository[GalleryItem]
	featured     Repository[FeaturedItem]
	instagram    Repository[InstagramPost]
	testimonials Repository[Testimonial]
}

func NewService(
	banners Repository[Banner],
	gallery Repository[GalleryItem],
	featured Repository[FeaturedItem],
	instagram Repository[InstagramPost],
	testimonials Repository[Testimonial],
) Service {
	return &service{
		banners:      banners,
		gallery:      gallery,
		featured:     featured,
		instagram:    instagram,
		testimonials: testimonials,
	}
}

func (s *service) ListBanners(ctx context.Context) ([]Banner, error) {
	banners, err := s.banners.List(ctx)
	if err != nil {
		return nil, err
	}
	return SortBanners(banners), nil
}

func (s *service) SaveBanner(ctx context.Context, id string, req BannerRequest) (Banner, error) {
	if id == "" {
		id = store.NewID("banner")
	}
	b, err := ParseBanner(Banner{
		ID:          id,
		Image:       req.Image,
		Title:       req.Title,
		Description: req.Description,
		MediaType:   req.MediaType,
		Priority:    req.Priority,
	})
	if err != nil {
		return Banner{}, err
	}
	if err := s.banners.Upsert(ctx, b); err != nil {
		return Banner{}, err
	}
	return b, nil
}

func (s *service) DeleteBanner(ctx context.Context, id string) error {
	return s.banners.Delete(ctx, id)
}

func (s *service) ListGallery(ctx context.Context) ([]GalleryItem, error) {
	return s.gallery.List(ctx)
}

func (s *service) SaveGalleryItem(ctx context.Context, id string, req GalleryItemRequest) (GalleryItem, error) {
	if id == "" {
		id = store.NewID("gal")
	}
	g, err := ParseGalleryItem(GalleryItem{ID: id, Image: req.Image, Description: req.Description})
	if err != nil {
		return GalleryItem{}, err
	}
	if err := s.gallery.Upsert(ctx, g); err != nil {
		return GalleryItem{}, err
	}
	return g, nil
}

func (s *service) DeleteGalleryItem(ctx context.Context, id string) error {
	return s.gallery.Delete(ctx, id)
}

func (s *service) ListFeatured(ctx context.Context) ([]FeaturedItem, error) {
	return s.featured.List(ctx)
}

func (s *service) SaveFeaturedItem(ctx context.Context, id string, req FeaturedItemRequest) (FeaturedItem, error) {
	if id == "" {
		id = store.NewID("feat")
	}
	f, err := ParseFeaturedItem(FeaturedItem{
		ID:          id,
		Image:       req.Image,
		Title:       req.Title,
		Description: req.Description,
	})
	if err != nil {
		return FeaturedItem{}, err
	}
	if err := s.featured.Upsert(ctx, f); err != nil {
		return FeaturedItem{}, err
	}
	return f, nil
}

func (s *service) DeleteFeaturedItem(ctx context.Context, id string) error {
	return s.featured.Delete(ctx, id)
}

func (s *service) ListInstagramPosts(ctx context.Context) ([]InstagramPost, error) {
	return s.instagram.List(ctx)
}

func (s *service) SaveInstagramPost(ctx context.Context, id string, req InstagramPostRequest) (InstagramPost, error) {
	if id == "" {
		id = store.NewID("ig")
	}
	p, err := ParseInstagramPost(InstagramPost{ID: id, URL: req.URL})
	if err != nil {
		return InstagramPost{}, err
	}
	if err := s.instagram.Upsert(ctx, p); err != nil {
		return InstagramPost{}, err
	}
	return p, nil
}

func (s *service) DeleteInstagramPost(ctx context.Context, id string) error {
	return s.instagram.Delete(ctx, id)
}

func (s *service) ListTestimonials(ctx context.Context) ([]Testimonial, error) {
	return s.testimonials.List(ctx)
}

func (s *service) SaveTestimonial(ctx context.Context, id string, req TestimonialRequest) (Testimonial, error) {
	if id == "" {
		id = store.NewID("tm")
	}
	t, err := ParseTestimonial(Testimonial{ID: id, Name: req.Name, Text: req.Text, Rating: req.Rating})
	if err != nil {
		return Testimonial{}, err
	}
	if err := s.testimonials.Upsert(ctx, t); err != nil {
		return Testimonial{}, err
	}
	return t, nil
}

func (s *service) DeleteTestimonial(ctx context.Context, id string) error {
	return s.testimonials.Delete(ctx, id)
}
