package snapshot

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"golang.org/x/sync/errgroup"
	"golang.org/x/sync/singleflight"

	"github.com/starlinkjewels/storefront-backend/internal/modules/catalog"
	"github.com/starlinkjewels/storefront-backend/internal/modules/content"
	"github.com/starlinkjewels/storefront-backend/internal/modules/editorial"
	"github.com/starlinkjewels/storefront-backend/internal/modules/site"
)

// Sources supplies each section of the snapshot. Prepare runs once per
// build, before the fan-out, for store-side seeding.
type Sources struct {
	Prepare      func(ctx context.Context) error
	Banners      func(ctx context.Context) ([]content.Banner, error)
	Categories   func(ctx context.Context) ([]catalog.Category, error)
	Products     func(ctx context.Context) ([]catalog.Product, error)
	Gallery      func(ctx context.Context) ([]content.GalleryItem, error)
	Featured     func(ctx context.Context) ([]content.FeaturedItem, error)
	Blogs        func(ctx context.Context) ([]editorial.BlogPost, error)
	Instagram    func(ctx context.Context) ([]content.InstagramPost, error)
	Testimonials func(ctx context.Context) ([]content.Testimonial, error)
	Promo        func(ctx context.Context) (site.PromoHeader, error)
	Contact      func(ctx context.Context) (site.ContactInfo, error)
}

type Service interface {
	// Get returns the cached snapshot, building one if none exists.
	// Concurrent callers share a single build.
	Get(ctx context.Context) (*Snapshot, error)
	// Refetch forces a rebuild, returning the fresh snapshot.
	Refetch(ctx context.Context) (*Snapshot, error)
}

type service struct {
	sources Sources
	slot    Store
	warmer  *Warmer
	group   singleflight.Group

	mu      sync.RWMutex
	cached  *Snapshot
	fetched bool
}

// NewService hydrates from the persistent slot so restarts serve content
// immediately. A hydrated snapshot counts as fresh; admins force a rebuild
// through Refetch when they need one.
func NewService(sources Sources, slot Store, warmer *Warmer) Service {
	s := &service{sources: sources, slot: slot, warmer: warmer}
	if slot != nil {
		if cached, err := slot.Load(); err == nil && cached != nil {
			s.cached = cached
			s.fetched = true
			if warmer != nil {
				warmer.Warm(cached.CriticalAssets())
			}
		}
	}
	return s
}

func (s *service) Get(ctx context.Context) (*Snapshot, error) {
	return s.get(ctx, false)
}

func (s *service) Refetch(ctx context.Context) (*Snapshot, error) {
	return s.get(ctx, true)
}

func (s *service) get(ctx context.Context, force bool) (*Snapshot, error) {
	if !force {
		s.mu.RLock()
		if s.fetched && s.cached != nil {
			cached := s.cached
			s.mu.RUnlock()
			return cached, nil
		}
		s.mu.RUnlock()
	}

	result, err, _ := s.group.Do("storefront", func() (any, error) {
		return s.fetchAll(ctx)
	})
	if err != nil {
		slog.Error("snapshot build failed", "error", err)
		s.mu.RLock()
		cached := s.cached
		s.mu.RUnlock()
		if cached != nil {
			return cached, nil
		}
		return Empty(), nil
	}
	return result.(*Snapshot), nil
}

func (s *service) fetchAll(ctx context.Context) (*Snapshot, error) {
	if s.sources.Prepare != nil {
		if err := s.sources.Prepare(ctx); err != nil {
			return nil, err
		}
	}

	snap := Empty()
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() (err error) { snap.Banners, err = s.sources.Banners(gctx); return })
	g.Go(func() (err error) { snap.Categories, err = s.sources.Categories(gctx); return })
	g.Go(func() (err error) { snap.Products, err = s.sources.Products(gctx); return })
	g.Go(func() (err error) { snap.GalleryItems, err = s.sources.Gallery(gctx); return })
	g.Go(func() (err error) { snap.Featured, err = s.sources.Featured(gctx); return })
	g.Go(func() (err error) { snap.Blogs, err = s.sources.Blogs(gctx); return })
	g.Go(func() (err error) { snap.InstagramPosts, err = s.sources.Instagram(gctx); return })
	g.Go(func() (err error) { snap.Testimonials, err = s.sources.Testimonials(gctx); return })
	g.Go(func() (err error) { snap.PromoHeader, err = s.sources.Promo(gctx); return })
	g.Go(func() (err error) { snap.Contact, err = s.sources.Contact(gctx); return })
	if err := g.Wait(); err != nil {
		return nil, err
	}
	snap.FetchedAt = time.Now().UTC()

	s.mu.Lock()
	s.cached = snap
	s.fetched = true
	s.mu.Unlock()

	if s.slot != nil {
		if err := s.slot.Save(snap); err != nil {
			slog.Warn("persisting snapshot failed", "error", err)
		}
	}
	if s.warmer != nil {
		s.warmer.Warm(snap.CriticalAssets())
	}
	return snap, nil
}
