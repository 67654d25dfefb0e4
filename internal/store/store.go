// Package store holds the shared pieces of the document record store: the
// Mongo connection bootstrap, the collection names (one per content type),
// id generation, and the in-memory collection used in dev mode and tests.
package store

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
)

// ErrNotFound is returned by repositories when no record matches the id.
var ErrNotFound = errors.New("record not found")

// Collection names, one per content type.
const (
	Banners      = "banners"
	Categories   = "categories"
	Products     = "products"
	Gallery      = "gallery"
	Featured     = "featured-collection"
	Contact      = "contact"
	Offices      = "offices"
	Blogs        = "blogs"
	Guides       = "buying-guides"
	Instagram    = "instagram"
	Visitors     = "visitors"
	PromoHeader  = "promo-header"
	Testimonials = "testimonials"
)

// SingletonKey is the fixed document id for single-instance records such as
// the contact info and the promo header.
const SingletonKey = "main"

var (
	idMu   sync.Mutex
	lastID int64
)

// NewID returns a wall-clock-derived identifier of the form
// "<prefix>_<unix millis>". The clock value is bumped when two ids land on
// the same millisecond so ids stay unique within a process. Sorting code
// elsewhere relies on the numeric suffix as a creation-time fallback for
// records that predate explicit createdAt fields.
func NewID(prefix string) string {
	idMu.Lock()
	now := time.Now().UnixMilli()
	if now <= lastID {
		now = lastID + 1
	}
	lastID = now
	idMu.Unlock()
	return fmt.Sprintf("%s_%d", prefix, now)
}

// Connect opens the Mongo connection and verifies it with a ping.
func Connect(ctx context.Context, uri, dbName string) (*mongo.Database, error) {
	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	if err != nil {
		return nil, fmt.Errorf("connect mongo: %w", err)
	}
	if err := client.Ping(ctx, readpref.Primary()); err != nil {
		return nil, fmt.Errorf("ping mongo: %w", err)
	}
	return client.Database(dbName), nil
}
