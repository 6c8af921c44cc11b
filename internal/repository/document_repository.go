package repository

import (
	"context"

	"cablib/internal/domain/document"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type DocumentRepository interface {
	Create(ctx context.Context, d document.Document) error
	FindByUser(ctx context.Context, userID string) ([]document.Document, error)
	Delete(ctx context.Context, id, userID string) error
}

type MongoDocumentRepository struct {
	coll *mongo.Collection
}

func NewMongoDocumentRepository(coll *mongo.Collection) *MongoDocumentRepository {
	return &MongoDocumentRepository{coll: coll}
}

func (r *MongoDocumentRepository) Create(ctx context.Context, d document.Document) error {
	_, err := r.coll.InsertOne(ctx, d)
	return err
}

func (r *MongoDocumentRepository) FindByUser(ctx context.Context, userID string) ([]document.Document, error) {
	opts := options.Find().SetSort(bson.D{{Key: "uploaded_at", Value: -1}}).SetLimit(100)
	cur, err := r.coll.Find(ctx, bson.M{"user_id": userID}, opts)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	out := make([]document.Document, 0)
	for cur.Next(ctx) {
		var d document.Document
		if err := cur.Decode(&d); err != nil {
			return nil, err
		}
		out = append(out, d)
	}
	return out, cur.Err()
}

func (r *MongoDocumentRepository) Delete(ctx context.Context, id, userID string) error {
	res, err := r.coll.DeleteOne(ctx, bson.M{"id": id, "user_id": userID})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return document.ErrNotFound
	}
	return nil
}
