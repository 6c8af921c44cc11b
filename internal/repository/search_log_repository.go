package repository

import (
	"context"

	"cablib/internal/domain/searchlog"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type SearchLogRepository interface {
	Create(ctx context.Context, l searchlog.SearchLog) error
	ListRecent(ctx context.Context, limit int64) ([]searchlog.SearchLog, error)
	ListByCity(ctx context.Context, city string, limit int64) ([]searchlog.SearchLog, error)
}

type MongoSearchLogRepository struct {
	coll *mongo.Collection
}

func NewMongoSearchLogRepository(coll *mongo.Collection) *MongoSearchLogRepository {
	return &MongoSearchLogRepository{coll: coll}
}

func (r *MongoSearchLogRepository) Create(ctx context.Context, l searchlog.SearchLog) error {
	_, err := r.coll.InsertOne(ctx, l)
	return err
}

func (r *MongoSearchLogRepository) ListRecent(ctx context.Context, limit int64) ([]searchlog.SearchLog, error) {
	return r.find(ctx, bson.M{}, limit)
}

func (r *MongoSearchLogRepository) ListByCity(ctx context.Context, city string, limit int64) ([]searchlog.SearchLog, error) {
	return r.find(ctx, bson.M{"city": primitive.Regex{Pattern: city, Options: "i"}}, limit)
}

func (r *MongoSearchLogRepository) find(ctx context.Context, filter bson.M, limit int64) ([]searchlog.SearchLog, error) {
	opts := options.Find().SetSort(bson.D{{Key: "timestamp", Value: -1}}).SetLimit(limit)
	cur, err := r.coll.Find(ctx, filter, opts)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	out := make([]searchlog.SearchLog, 0)
	for cur.Next(ctx) {
		var l searchlog.SearchLog
		if err := cur.Decode(&l); err != nil {
			return nil, err
		}
		out = append(out, l)
	}
	return out, cur.Err()
}
