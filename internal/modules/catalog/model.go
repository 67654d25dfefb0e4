package catalog

import (
	"errors"
	"strings"

	"github.com/starlinkjewels/storefront-backend/internal/sanitize"
)

// defaultPriority sorts records with no explicit priority after all records
// that have one.
const defaultPriority = 99

// ErrInvalidRecord marks documents or requests that do not match the
// expected shape.
var ErrInvalidRecord = errors.New("record does not match expected shape")

// Category groups products on the public site. Priority orders the category
// listing ascending; zero means "no priority" and sorts last.
type Category struct {
	ID          string `json:"id" bson:"_id"`
	Name        string `json:"name" bson:"name"`
	Image       string `json:"image" bson:"image"`
	Description string `json:"description" bson:"description"`
	Priority    int    `json:"priority,omitempty" bson:"priority,omitempty"`
}

// Product belongs to a category by id. The first entry of Images is the
// canonical cover image. Price keeps its display formatting (currency symbol
// included) and is parsed only for sorting. CreatedAt is absent on legacy
// records, whose creation time is recovered from the id suffix instead.
type Product struct {
	ID          string   `json:"id" bson:"_id"`
	CategoryID  string   `json:"categoryId" bson:"categoryId"`
	Name        string   `json:"name" bson:"name"`
	Image       string   `json:"image" bson:"image"`
	Images      []string `json:"images,omitempty" bson:"images,omitempty"`
	Description string   `json:"description" bson:"description"`
	Price       string   `json:"price" bson:"price"`
	CreatedAt   string   `json:"createdAt,omitempty" bson:"createdAt,omitempty"`
}

// ParseCategory validates a stored document at the store boundary, rejecting
// shapes the rest of the system should never see.
func ParseCategory(c Category) (Category, error) {
	c.Name = strings.TrimSpace(c.Name)
	if c.ID == "" || c.Name == "" {
		return Category{}, ErrInvalidRecord
	}
	c.Description = sanitize.HTML(c.Description)
	return c, nil
}

// ParseProduct validates a stored product and normalizes the cover image:
// Image and Images[0] always agree after parsing.
func ParseProduct(p Product) (Product, error) {
	p.Name = strings.TrimSpace(p.Name)
	if p.ID == "" || p.Name == "" {
		return Product{}, ErrInvalidRecord
	}
	if p.Image == "" && len(p.Images) > 0 {
		p.Image = p.Images[0]
	}
	if len(p.Images) == 0 && p.Image != "" {
		p.Images = []string{p.Image}
	}
	p.Description = sanitize.HTML(p.Description)
	return p, nil
}
