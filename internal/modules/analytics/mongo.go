package analytics

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/starlinkjewels/storefront-backend/internal/store"
)

type mongoRepo struct {
	coll *mongo.Collection
}

func NewMongoRepository(db *mongo.Database) Repository {
	return &mongoRepo{coll: db.Collection(store.Visitors)}
}

func (r *mongoRepo) List(ctx context.Context) ([]VisitorLog, error) {
	cursor, err := r.coll.Find(ctx, bson.M{})
	if err != nil {
		return nil, err
	}
	var logs []VisitorLog
	if err := cursor.All(ctx, &logs); err != nil {
		return nil, err
	}
	return logs, nil
}

func (r *mongoRepo) Insert(ctx context.Context, v VisitorLog) error {
	_, err := r.coll.InsertOne(ctx, v)
	return err
}
