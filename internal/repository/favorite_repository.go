package repository

import (
	"context"
	"errors"

	"cablib/internal/domain/favorite"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type FavoriteRepository interface {
	Create(ctx context.Context, f favorite.Favorite) error
	Exists(ctx context.Context, userID, listingID string) (bool, error)
	FindByUser(ctx context.Context, userID string) ([]favorite.Favorite, error)
	Delete(ctx context.Context, userID, listingID string) error
}

type MongoFavoriteRepository struct {
	coll *mongo.Collection
}

func NewMongoFavoriteRepository(coll *mongo.Collection) *MongoFavoriteRepository {
	return &MongoFavoriteRepository{coll: coll}
}

func (r *MongoFavoriteRepository) Create(ctx context.Context, f favorite.Favorite) error {
	_, err := r.coll.InsertOne(ctx, f)
	return err
}

func (r *MongoFavoriteRepository) Exists(ctx context.Context, userID, listingID string) (bool, error) {
	err := r.coll.FindOne(ctx, bson.M{"user_id": userID, "listing_id": listingID}).Err()
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return false, nil
		}
		return false, err
	}
	return true, nil
}

func (r *MongoFavoriteRepository) FindByUser(ctx context.Context, userID string) ([]favorite.Favorite, error) {
	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}}).SetLimit(100)
	cur, err := r.coll.Find(ctx, bson.M{"user_id": userID}, opts)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	out := make([]favorite.Favorite, 0)
	for cur.Next(ctx) {
		var f favorite.Favorite
		if err := cur.Decode(&f); err != nil {
			return nil, err
		}
		out = append(out, f)
	}
	return out, cur.Err()
}

func (r *MongoFavoriteRepository) Delete(ctx context.Context, userID, listingID string) error {
	res, err := r.coll.DeleteOne(ctx, bson.M{"user_id": userID, "listing_id": listingID})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return favorite.ErrNotFound
	}
	return nil
}
