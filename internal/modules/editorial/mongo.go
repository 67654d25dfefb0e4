package editorial

import (
	"context"
	"log/slog"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/starlinkjewels/storefront-backend/internal/store"
)

type mongoBlogRepo struct {
	coll *mongo.Collection
}

func NewMongoBlogRepository(db *mongo.Database) BlogRepository {
	return &mongoBlogRepo{coll: db.Collection(store.Blogs)}
}

func (r *mongoBlogRepo) List(ctx context.Context) ([]BlogPost, error) {
	cursor, err := r.coll.Find(ctx, bson.M{})
	if err != nil {
		return nil, err
	}
	var raw []BlogPost
	if err := cursor.All(ctx, &raw); err != nil {
		return nil, err
	}
	posts := make([]BlogPost, 0, len(raw))
	for _, b := range raw {
		parsed, err := ParseBlogPost(b)
		if err != nil {
			slog.Warn("skipping malformed blog post", "id", b.ID)
			continue
		}
		posts = append(posts, parsed)
	}
	return posts, nil
}

func (r *mongoBlogRepo) GetByID(ctx context.Context, id string) (BlogPost, error) {
	var b BlogPost
	err := r.coll.FindOne(ctx, bson.M{"_id": id}).Decode(&b)
	if err == mongo.ErrNoDocuments {
		return BlogPost{}, store.ErrNotFound
	}
	if err != nil {
		return BlogPost{}, err
	}
	return ParseBlogPost(b)
}

func (r *mongoBlogRepo) Upsert(ctx context.Context, b BlogPost) error {
	_, err := r.coll.ReplaceOne(ctx, bson.M{"_id": b.ID}, b, options.Replace().SetUpsert(true))
	return err
}

func (r *mongoBlogRepo) Delete(ctx context.Context, id string) error {
	res, err := r.coll.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return store.ErrNotFound
	}
	return nil
}

type mongoGuideRepo struct {
	coll *mongo.Collection
}

func NewMongoGuideRepository(db *mongo.Database) GuideRepository {
	return &mongoGuideRepo{coll: db.Collection(store.Guides)}
}

func (r *mongoGuideRepo) List(ctx context.Context) ([]BuyingGuide, error) {
	cursor, err := r.coll.Find(ctx, bson.M{})
	if err != nil {
		return nil, err
	}
	var raw []BuyingGuide
	if err := cursor.All(ctx, &raw); err != nil {
		return nil, err
	}
	guides := make([]BuyingGuide, 0, len(raw))
	for _, g := range raw {
		parsed, err := ParseBuyingGuide(g)
		if err != nil {
			slog.Warn("skipping malformed buying guide", "id", g.ID)
			continue
		}
		guides = append(guides, parsed)
	}
	return guides, nil
}

func (r *mongoGuideRepo) GetByID(ctx context.Context, id string) (BuyingGuide, error) {
	return r.findOne(ctx, bson.M{"_id": id})
}

func (r *mongoGuideRepo) GetBySlug(ctx context.Context, slug string) (BuyingGuide, error) {
	return r.findOne(ctx, bson.M{"slug": slug})
}

func (r *mongoGuideRepo) findOne(ctx context.Context, filter bson.M) (BuyingGuide, error) {
	var g BuyingGuide
	err := r.coll.FindOne(ctx, filter).Decode(&g)
	if err == mongo.ErrNoDocuments {
		return BuyingGuide{}, store.ErrNotFound
	}
	if err != nil {
		return BuyingGuide{}, err
	}
	return ParseBuyingGuide(g)
}

func (r *mongoGuideRepo) Upsert(ctx context.Context, g BuyingGuide) error {
	_, err := r.coll.ReplaceOne(ctx, bson.M{"_id": g.ID}, g, options.Replace().SetUpsert(true))
	return err
}

func (r *mongoGuideRepo) Delete(ctx context.Context, id string) error {
	res, err := r.coll.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return store.ErrNotFound
	}
	return nil
}
