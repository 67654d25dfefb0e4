package catalog

import (
	"context"
	"log/slog"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/starlinkjewels/storefront-backend/internal/store"
)

type mongoCategoryRepo struct{ coll *mongo.Collection }

func NewMongoCategoryRepository(db *mongo.Database) CategoryRepository {
	return &mongoCategoryRepo{coll: db.Collection(store.Categories)}
}

func (r *mongoCategoryRepo) List(ctx context.Context) ([]Category, error) {
	cursor, err := r.coll.Find(ctx, bson.M{})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var raw []Category
	if err := cursor.All(ctx, &raw); err != nil {
		return nil, err
	}
	out := make([]Category, 0, len(raw))
	for _, c := range raw {
		parsed, err := ParseCategory(c)
		if err != nil {
			slog.Warn("skipping malformed category document", "id", c.ID)
			continue
		}
		out = append(out, parsed)
	}
	return out, nil
}

func (r *mongoCategoryRepo) GetByID(ctx context.Context, id string) (Category, error) {
	var c Category
	err := r.coll.FindOne(ctx, bson.M{"_id": id}).Decode(&c)
	if err == mongo.ErrNoDocuments {
		return Category{}, store.ErrNotFound
	}
	if err != nil {
		return Category{}, err
	}
	return ParseCategory(c)
}

func (r *mongoCategoryRepo) Upsert(ctx context.Context, c Category) error {
	opts := options.Replace().SetUpsert(true)
	_, err := r.coll.ReplaceOne(ctx, bson.M{"_id": c.ID}, c, opts)
	return err
}

func (r *mongoCategoryRepo) Delete(ctx context.Context, id string) error {
	res, err := r.coll.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return store.ErrNotFound
	}
	return nil
}

type mongoProductRepo struct{ coll *mongo.Collection }

func NewMongoProductRepository(db *mongo.Database) ProductRepository {
	return &mongoProductRepo{coll: db.Collection(store.Products)}
}

func (r *mongoProductRepo) List(ctx context.Context) ([]Product, error) {
	return r.find(ctx, bson.M{})
}

func (r *mongoProductRepo) ListByCategory(ctx context.Context, categoryID string) ([]Product, error) {
	return r.find(ctx, bson.M{"categoryId": categoryID})
}

func (r *mongoProductRepo) find(ctx context.Context, filter bson.M) ([]Product, error) {
	cursor, err := r.coll.Find(ctx, filter)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var raw []Product
	if err := cursor.All(ctx, &raw); err != nil {
		return nil, err
	}
	out := make([]Product, 0, len(raw))
	for _, p := range raw {
		parsed, err := ParseProduct(p)
		if err != nil {
			slog.Warn("skipping malformed product document", "id", p.ID)
			continue
		}
		out = append(out, parsed)
	}
	return out, nil
}

func (r *mongoProductRepo) GetByID(ctx context.Context, id string) (Product, error) {
	var p Product
	err := r.coll.FindOne(ctx, bson.M{"_id": id}).Decode(&p)
	if err == mongo.ErrNoDocuments {
		return Product{}, store.ErrNotFound
	}
	if err != nil {
		return Product{}, err
	}
	return ParseProduct(p)
}

func (r *mongoProductRepo) Upsert(ctx context.Context, p Product) error {
	opts := options.Replace().SetUpsert(true)
	_, err := r.coll.ReplaceOne(ctx, bson.M{"_id": p.ID}, p, opts)
	return err
}

func (r *mongoProductRepo) Delete(ctx context.Context, id string) error {
	res, err := r.coll.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return store.ErrNotFound
	}
	return nil
}
