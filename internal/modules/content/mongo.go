package content

import (
	"context"
	"log/slog"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/starlinkjewels/storefront-backend/internal/store"
)

// mongoRepo is a Mongo-backed Repository for one collection. parse rejects
// documents that don't match the record shape; id extracts the document key.
type mongoRepo[T any] struct {
	coll  *mongo.Collection
	name  string
	id    func(T) string
	parse func(T) (T, error)
}

func newMongoRepo[T any](db *mongo.Database, name string, id func(T) string, parse func(T) (T, error)) Repository[T] {
	return &mongoRepo[T]{coll: db.Collection(name), name: name, id: id, parse: parse}
}

func NewMongoBannerRepository(db *mongo.Database) Repository[Banner] {
	return newMongoRepo(db, store.Banners, func(b Banner) string { return b.ID }, ParseBanner)
}

func NewMongoGalleryRepository(db *mongo.Database) Repository[GalleryItem] {
	return newMongoRepo(db, store.Gallery, func(g GalleryItem) string { return g.ID }, ParseGalleryItem)
}

func NewMongoFeaturedRepository(db *mongo.Database) Repository[FeaturedItem] {
	return newMongoRepo(db, store.Featured, func(f FeaturedItem) string { return f.ID }, ParseFeaturedItem)
}

func NewMongoInstagramRepository(db *mongo.Database) Repository[InstagramPost] {
	return newMongoRepo(db, store.Instagram, func(p InstagramPost) string { return p.ID }, ParseInstagramPost)
}

func NewMongoTestimonialRepository(db *mongo.Database) Repository[Testimonial] {
	return newMongoRepo(db, store.Testimonials, func(t Testimonial) string { return t.ID }, ParseTestimonial)
}

func (r *mongoRepo[T]) List(ctx context.Context) ([]T, error) {
	cursor, err := r.coll.Find(ctx, bson.M{})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var raw []T
	if err := cursor.All(ctx, &raw); err != nil {
		return nil, err
	}
	out := make([]T, 0, len(raw))
	for _, rec := range raw {
		parsed, err := r.parse(rec)
		if err != nil {
			slog.Warn("skipping malformed document", "collection", r.name, "id", r.id(rec))
			continue
		}
		out = append(out, parsed)
	}
	return out, nil
}

func (r *mongoRepo[T]) GetByID(ctx context.Context, id string) (T, error) {
	var rec T
	err := r.coll.FindOne(ctx, bson.M{"_id": id}).Decode(&rec)
	if err == mongo.ErrNoDocuments {
		var zero T
		return zero, store.ErrNotFound
	}
	if err != nil {
		var zero T
		return zero, err
	}
	return r.parse(rec)
}

func (r *mongoRepo[T]) Upsert(ctx context.Context, rec T) error {
	opts := options.Replace().SetUpsert(true)
	_, err := r.coll.ReplaceOne(ctx, bson.M{"_id": r.id(rec)}, rec, opts)
	return err
}

func (r *mongoRepo[T]) Delete(ctx context.Context, id string) error {
	res, err := r.coll.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return store.ErrNotFound
	}
	return nil
}
