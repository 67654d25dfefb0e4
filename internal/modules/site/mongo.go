package site

import (
	"context"
	"log/slog"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/starlinkjewels/storefront-backend/internal/store"
)

// Singleton collections store exactly one document under a fixed key.

type contactDoc struct {
	ID          string `bson:"_id"`
	ContactInfo `bson:",inline"`
}

type mongoContactRepo struct {
	coll *mongo.Collection
}

func NewMongoContactRepository(db *mongo.Database) ContactRepository {
	return &mongoContactRepo{coll: db.Collection(store.Contact)}
}

func (r *mongoContactRepo) Get(ctx context.Context) (ContactInfo, error) {
	var doc contactDoc
	err := r.coll.FindOne(ctx, bson.M{"_id": store.SingletonKey}).Decode(&doc)
	if err == mongo.ErrNoDocuments {
		return ContactInfo{}, store.ErrNotFound
	}
	if err != nil {
		return ContactInfo{}, err
	}
	return doc.ContactInfo, nil
}

func (r *mongoContactRepo) Set(ctx context.Context, c ContactInfo) error {
	doc := contactDoc{ID: store.SingletonKey, ContactInfo: c}
	_, err := r.coll.ReplaceOne(ctx, bson.M{"_id": store.SingletonKey}, doc, options.Replace().SetUpsert(true))
	return err
}

type promoDoc struct {
	ID          string `bson:"_id"`
	PromoHeader `bson:",inline"`
}

type mongoPromoRepo struct {
	coll *mongo.Collection
}

func NewMongoPromoRepository(db *mongo.Database) PromoRepository {
	return &mongoPromoRepo{coll: db.Collection(store.PromoHeader)}
}

func (r *mongoPromoRepo) Get(ctx context.Context) (PromoHeader, error) {
	var doc promoDoc
	err := r.coll.FindOne(ctx, bson.M{"_id": store.SingletonKey}).Decode(&doc)
	if err == mongo.ErrNoDocuments {
		return PromoHeader{}, store.ErrNotFound
	}
	if err != nil {
		return PromoHeader{}, err
	}
	return doc.PromoHeader, nil
}

func (r *mongoPromoRepo) Set(ctx context.Context, p PromoHeader) error {
	doc := promoDoc{ID: store.SingletonKey, PromoHeader: p}
	_, err := r.coll.ReplaceOne(ctx, bson.M{"_id": store.SingletonKey}, doc, options.Replace().SetUpsert(true))
	return err
}

type mongoOfficeRepo struct {
	coll *mongo.Collection
}

func NewMongoOfficeRepository(db *mongo.Database) OfficeRepository {
	return &mongoOfficeRepo{coll: db.Collection(store.Offices)}
}

func (r *mongoOfficeRepo) List(ctx context.Context) ([]Office, error) {
	cursor, err := r.coll.Find(ctx, bson.M{})
	if err != nil {
		return nil, err
	}
	var raw []Office
	if err := cursor.All(ctx, &raw); err != nil {
		return nil, err
	}
	offices := make([]Office, 0, len(raw))
	for _, o := range raw {
		parsed, err := ParseOffice(o)
		if err != nil {
			slog.Warn("skipping malformed office", "id", o.ID)
			continue
		}
		offices = append(offices, parsed)
	}
	return offices, nil
}

func (r *mongoOfficeRepo) GetByID(ctx context.Context, id string) (Office, error) {
	var o Office
	err := r.coll.FindOne(ctx, bson.M{"_id": id}).Decode(&o)
	if err == mongo.ErrNoDocuments {
		return Office{}, store.ErrNotFound
	}
	if err != nil {
		return Office{}, err
	}
	return ParseOffice(o)
}

func (r *mongoOfficeRepo) Upsert(ctx context.Context, o Office) error {
	_, err := r.coll.ReplaceOne(ctx, bson.M{"_id": o.ID}, o, options.Replace().SetUpsert(true))
	return err
}

func (r *mongoOfficeRepo) Delete(ctx context.Context, id string) error {
	res, err := r.coll.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return store.ErrNotFound
	}
	return nil
}
