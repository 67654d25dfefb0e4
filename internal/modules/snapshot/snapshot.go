// Package snapshot assembles the whole public storefront into a single
// document, caches it, and coalesces concurrent rebuilds.
package snapshot

import (
	"time"

	"github.com/starlinkjewels/storefront-backend/internal/modules/catalog"
	"github.com/starlinkjewels/storefront-backend/internal/modules/content"
	"github.com/starlinkjewels/storefront-backend/internal/modules/editorial"
	"github.com/starlinkjewels/storefront-backend/internal/modules/site"
)

// Snapshot is everything the public site needs for first paint.
type Snapshot struct {
	Banners        []content.Banner        `json:"banners"`
	Categories     []catalog.Category      `json:"categories"`
	Products       []catalog.Product       `json:"products"`
	GalleryItems   []content.GalleryItem   `json:"galleryItems"`
	Featured       []content.FeaturedItem  `json:"featuredCollection"`
	Blogs          []editorial.BlogPost    `json:"blogs"`
	InstagramPosts []content.InstagramPost `json:"instagramPosts"`
	Testimonials   []content.Testimonial   `json:"testimonials"`
	PromoHeader    site.PromoHeader        `json:"promoHeader"`
	Contact        site.ContactInfo        `json:"contact"`
	FetchedAt      time.Time               `json:"fetchedAt"`
}

// Empty returns a snapshot with every list present but empty, so the
// client never sees null collections.
func Empty() *Snapshot {
	return &Snapshot{
		Banners:        []content.Banner{},
		Categories:     []catalog.Category{},
		Products:       []catalog.Product{},
		GalleryItems:   []content.GalleryItem{},
		Featured:       []content.FeaturedItem{},
		Blogs:          []editorial.BlogPost{},
		InstagramPosts: []content.InstagramPost{},
		Testimonials:   []content.Testimonial{},
	}
}

// CriticalAssets lists the image URLs worth warming: every banner, the
// first six category tiles, and the first four featured items. Duplicates
// and blanks are dropped.
func (s *Snapshot) CriticalAssets() []string {
	var urls []string
	seen := make(map[string]bool)
	add := func(u string) {
		if u != "" && !seen[u] {
			seen[u] = true
			urls = append(urls, u)
		}
	}
	for _, b := range s.Banners {
		add(b.Image)
	}
	for i, c := range s.Categories {
		if i == 6 {
			break
		}
		add(c.Image)
	}
	for i, f := range s.Featured {
		if i == 4 {
			break
		}
		add(f.Image)
	}
	return urls
}
