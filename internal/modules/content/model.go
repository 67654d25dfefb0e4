package content

import (
	"errors"
	"sort"
	"strings"
)

const defaultPriority = 99

// ErrInvalidRecord marks documents or requests that do not match the
// expected shape.
var ErrInvalidRecord = errors.New("record does not match expected shape")

// Banner is a home page hero slide. MediaType distinguishes stills from
// video and gif media; Priority orders the carousel ascending with zero
// (unset) sorting last.
type Banner struct {
	ID          string `json:"id" bson:"_id"`
	Image       string `json:"image" bson:"image"`
	Title       string `json:"title" bson:"title"`
	Description string `json:"description" bson:"description"`
	MediaType   string `json:"mediaType,omitempty" bson:"mediaType,omitempty"`
	Priority    int    `json:"priority,omitempty" bson:"priority,omitempty"`
}

// GalleryItem is one unordered gallery photo.
type GalleryItem struct {
	ID          string `json:"id" bson:"_id"`
	Image       string `json:"image" bson:"image"`
	Description string `json:"description" bson:"description"`
}

// FeaturedItem is one tile of the featured collection strip.
type FeaturedItem struct {
	ID          string `json:"id" bson:"_id"`
	Image       string `json:"image" bson:"image"`
	Title       string `json:"title" bson:"title"`
	Description string `json:"description" bson:"description"`
}

// InstagramPost is an embedded post, stored as its permalink only.
type InstagramPost struct {
	ID  string `json:"id" bson:"_id"`
	URL string `json:"url" bson:"url"`
}

// Testimonial carries a customer quote with a 1-5 star rating.
type Testimonial struct {
	ID     string `json:"id" bson:"_id"`
	Name   string `json:"name" bson:"name"`
	Text   string `json:"text" bson:"text"`
	Rating int    `json:"rating" bson:"rating"`
}

func ParseBanner(b Banner) (Banner, error) {
	if b.ID == "" || b.Image == "" {
		return Banner{}, ErrInvalidRecord
	}
	switch b.MediaType {
	case "image", "video", "gif":
	default:
		b.MediaType = "image"
	}
	return b, nil
}

func ParseGalleryItem(g GalleryItem) (GalleryItem, error) {
	if g.ID == "" || g.Image == "" {
		return GalleryItem{}, ErrInvalidRecord
	}
	return g, nil
}

func ParseFeaturedItem(f FeaturedItem) (FeaturedItem, error) {
	if f.ID == "" || f.Image == "" {
		return FeaturedItem{}, ErrInvalidRecord
	}
	return f, nil
}

func ParseInstagramPost(p InstagramPost) (InstagramPost, error) {
	if p.ID == "" || strings.TrimSpace(p.URL) == "" {
		return InstagramPost{}, ErrInvalidRecord
	}
	return p, nil
}

func ParseTestimonial(t Testimonial) (Testimonial, error) {
	t.Name = strings.TrimSpace(t.Name)
	t.Text = strings.TrimSpace(t.Text)
	if t.ID == "" || t.Name == "" || t.Text == "" {
		return Testimonial{}, ErrInvalidRecord
	}
	if t.Rating < 1 || t.Rating > 5 {
		return Testimonial{}, ErrInvalidRecord
	}
	return t, nil
}

// SortBanners orders by ascending priority, unset priority last, ties in
// input order.
func SortBanners(banners []Banner) []Banner {
	sorted := make([]Banner, len(banners))
	copy(sorted, banners)
	sort.SliceStable(sorted, func(i, j int) bool {
		return orderPriority(sorted[i].Priority) < orderPriority(sorted[j].Priority)
	})
	return sorted
}

func orderPriority(p int) int {
	if p == 0 {
		return defaultPriority
	}
	return p
}
