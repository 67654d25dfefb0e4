package editorial

import (
	"errors"
	"regexp"
	"sort"
	"strings"
	"time"

	"github.com/starlinkjewels/storefront-backend/internal/sanitize"
)

// ErrInvalidRecord marks documents or requests that do not match the
// expected shape.
var ErrInvalidRecord = errors.New("record does not match expected shape")

// BlogPost is a long-form article. Content is sanitized HTML; Date is an
// ISO-8601 string and drives newest-first ordering.
type BlogPost struct {
	ID        string `json:"id" bson:"_id"`
	Title     string `json:"title" bson:"title"`
	Content   string `json:"content" bson:"content"`
	Image     string `json:"image" bson:"image"`
	Thumbnail string `json:"thumbnail,omitempty" bson:"thumbnail,omitempty"`
	Date      string `json:"date" bson:"date"`
}

// BuyingGuide is an evergreen article reachable by slug. Order drives the
// public listing; unpublished guides stay admin-only.
type BuyingGuide struct {
	ID        string `json:"id" bson:"_id"`
	Title     string `json:"title" bson:"title"`
	Slug      string `json:"slug" bson:"slug"`
	Content   string `json:"content" bson:"content"`
	Image     string `json:"image" bson:"image"`
	Order     int    `json:"order" bson:"order"`
	Published bool   `json:"published" bson:"published"`
	CreatedAt string `json:"createdAt" bson:"createdAt"`
}

var slugPattern = regexp.MustCompile("[^a-z0-9]+")

// Slugify derives a URL slug from a title.
func Slugify(title string) string {
	s := slugPattern.ReplaceAllString(strings.ToLower(title), "-")
	return strings.Trim(s, "-")
}

func ParseBlogPost(b BlogPost) (BlogPost, error) {
	b.Title = strings.TrimSpace(b.Title)
	if b.ID == "" || b.Title == "" {
		return BlogPost{}, ErrInvalidRecord
	}
	b.Content = sanitize.HTML(b.Content)
	return b, nil
}

func ParseBuyingGuide(g BuyingGuide) (BuyingGuide, error) {
	g.Title = strings.TrimSpace(g.Title)
	if g.ID == "" || g.Title == "" {
		return BuyingGuide{}, ErrInvalidRecord
	}
	if g.Slug == "" {
		g.Slug = Slugify(g.Title)
	}
	g.Content = sanitize.HTML(g.Content)
	return g, nil
}

// SortBlogsNewestFirst orders posts by descending date; unparsable dates
// sort as epoch zero and cluster at the end. Ties keep input order.
func SortBlogsNewestFirst(posts []BlogPost) []BlogPost {
	sorted := make([]BlogPost, len(posts))
	copy(sorted, posts)
	sort.SliceStable(sorted, func(i, j int) bool {
		return blogTime(sorted[i]) > blogTime(sorted[j])
	})
	return sorted
}

func blogTime(b BlogPost) int64 {
	if t, err := time.Parse(time.RFC3339, b.Date); err == nil {
		return t.UnixMilli()
	}
	// Date-only strings come from older admin entries.
	if t, err := time.Parse("2006-01-02", b.Date); err == nil {
		return t.UnixMilli()
	}
	return 0
}

// SortGuides orders by ascending Order, ties in input order.
func SortGuides(guides []BuyingGuide) []BuyingGuide {
	sorted := make([]BuyingGuide, len(guides))
	copy(sorted, guides)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Order < sorted[j].Order
	})
	return sorted
}
