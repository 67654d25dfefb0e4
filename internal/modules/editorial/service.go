package editorial

import (
	"context"
	"time"

	"github.com/starlinkjewels/storefront-backend/internal/store"
)

type Service interface {
	ListBlogs(ctx context.Context) ([]BlogPost, error)
	GetBlog(ctx context.Context, id string) (BlogPost, error)
	SaveBlog(ctx context.Context, id string, req BlogRequest) (BlogPost, error)
	DeleteBlog(ctx context.Context, id string) error

	ListPublishedGuides(ctx context.Context) ([]BuyingGuide, error)
	ListAllGuides(ctx context.Context) ([]BuyingGuide, error)
	GetGuideBySlug(ctx context.Context, slug string) (BuyingGuide, error)
	SaveGuide(ctx context.Context, id string, req GuideRequest) (BuyingGuide, error)
	DeleteGuide(ctx context.Context, id string) error
}

type BlogRequest struct {
	Title     string `json:"title"`
	Content   string `json:"content"`
	Image     string `json:"image"`
	Thumbnail string `json:"thumbnail"`
	Date      string `json:"date"`
}

type GuideRequest struct {
	Title     string `json:"title"`
	Slug      string `json:"slug"`
	Content   string `json:"content"`
	Image     string `json:"image"`
	Order     *int   `json:"order"`
	Published bool   `json:"published"`
}

type service struct {
	blogs  BlogRepository
	guides GuideRepository
}

func NewService(blogs BlogRepository, guides GuideRepository) Service {
	return &service{blogs: blogs, guides: guides}
}

func (s *service) ListBlogs(ctx context.Context) ([]BlogPost, error) {
	posts, err := s.blogs.List(ctx)
	if err != nil {
		return nil, err
	}
	return SortBlogsNewestFirst(posts), nil
}

func (s *service) GetBlog(ctx context.Context, id string) (BlogPost, error) {
	return s.blogs.GetByID(ctx, id)
}

func (s *service) SaveBlog(ctx context.Context, id string, req BlogRequest) (BlogPost, error) {
	date := req.Date
	if id == "" {
		id = store.NewID("blog")
		if date == "" {
			date = time.Now().UTC().Format(time.RFC3339)
		}
	} else if existing, err := s.blogs.GetByID(ctx, id); err == nil && date == "" {
		date = existing.Date
	}
	post, err := ParseBlogPost(BlogPost{
		ID:        id,
		Title:     req.Title,
		Content:   req.Content,
		Image:     req.Image,
		Thumbnail: req.Thumbnail,
		Date:      date,
	})
	if err != nil {
		return BlogPost{}, err
	}
	if err := s.blogs.Upsert(ctx, post); err != nil {
		return BlogPost{}, err
	}
	return post, nil
}

func (s *service) DeleteBlog(ctx context.Context, id string) error {
	return s.blogs.Delete(ctx, id)
}

func (s *service) ListPublishedGuides(ctx context.Context) ([]BuyingGuide, error) {
	guides, err := s.guides.List(ctx)
	if err != nil {
		return nil, err
	}
	published := make([]BuyingGuide, 0, len(guides))
	for _, g := range guides {
		if g.Published {
			published = append(published, g)
		}
	}
	return SortGuides(published), nil
}

func (s *service) ListAllGuides(ctx context.Context) ([]BuyingGuide, error) {
	guides, err := s.guides.List(ctx)
	if err != nil {
		return nil, err
	}
	return SortGuides(guides), nil
}

func (s *service) GetGuideBySlug(ctx context.Context, slug string) (BuyingGuide, error) {
	g, err := s.guides.GetBySlug(ctx, slug)
	if err != nil {
		return BuyingGuide{}, err
	}
	if !g.Published {
		return BuyingGuide{}, store.ErrNotFound
	}
	return g, nil
}

func (s *service) SaveGuide(ctx context.Context, id string, req GuideRequest) (BuyingGuide, error) {
	createdAt := ""
	order := 0
	if id == "" {
		id = store.NewID("guide")
		createdAt = time.Now().UTC().Format(time.RFC3339)
		if req.Order != nil {
			order = *req.Order
		} else {
			// New guides append to the end of the list.
			existing, err := s.guides.List(ctx)
			if err != nil {
				return BuyingGuide{}, err
			}
			order = len(existing)
		}
	} else {
		existing, err := s.guides.GetByID(ctx, id)
		if err == nil {
			createdAt = existing.CreatedAt
			order = existing.Order
		}
		if req.Order != nil {
			order = *req.Order
		}
	}
	guide, err := ParseBuyingGuide(BuyingGuide{
		ID:        id,
		Title:     req.Title,
		Slug:      req.Slug,
		Content:   req.Content,
		Image:     req.Image,
		Order:     order,
		Published: req.Published,
		CreatedAt: createdAt,
	})
	if err != nil {
		return BuyingGuide{}, err
	}
	if err := s.guides.Upsert(ctx, guide); err != nil {
		return BuyingGuide{}, err
	}
	return guide, nil
}

func (s *service) DeleteGuide(ctx context.Context, id string) error {
	return s.guides.Delete(ctx, id)
}
