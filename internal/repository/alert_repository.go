package repository

import (
	"context"
	"errors"
	"time"

	"cablib/internal/domain/alert"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type AlertRepository interface {
	Create(ctx context.Context, a alert.Alert) error
	FindByUser(ctx context.Context, userID string) ([]alert.Alert, error)
	GetForUser(ctx context.Context, id, userID string) (alert.Alert, error)
	SetActive(ctx context.Context, id, userID string, active bool) (alert.Alert, error)
	TouchLastChecked(ctx context.Context, id, userID string, t time.Time) error
	Delete(ctx context.Context, id, userID string) error
}

type MongoAlertRepository struct {
	coll *mongo.Collection
}

func NewMongoAlertRepository(coll *mongo.Collection) *MongoAlertRepository {
	return &MongoAlertRepository{coll: coll}
}

func (r *MongoAlertRepository) Create(ctx context.Context, a alert.Alert) error {
	_, err := r.coll.InsertOne(ctx, a)
	return err
}

func (r *MongoAlertRepository) FindByUser(ctx context.Context, userID string) ([]alert.Alert, error) {
	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}}).SetLimit(50)
	cur, err := r.coll.Find(ctx, bson.M{"user_id": userID}, opts)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	out := make([]alert.Alert, 0)
	for cur.Next(ctx) {
		var a alert.Alert
		if err := cur.Decode(&a); err != nil {
			return nil, err
		}
		out = append(out, a)
	}
	return out, cur.Err()
}

func (r *MongoAlertRepository) GetForUser(ctx context.Context, id, userID string) (alert.Alert, error) {
	var a alert.Alert
	if err := r.coll.FindOne(ctx, bson.M{"id": id, "user_id": userID}).Decode(&a); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return alert.Alert{}, alert.ErrNotFound
		}
		return alert.Alert{}, err
	}
	return a, nil
}

func (r *MongoAlertRepository) SetActive(ctx context.Context, id, userID string, active bool) (alert.Alert, error) {
	res, err := r.coll.UpdateOne(ctx,
		bson.M{"id": id, "user_id": userID},
		bson.M{"$set": bson.M{"active": active}},
	)
	if err != nil {
		return alert.Alert{}, err
	}
	if res.MatchedCount == 0 {
		return alert.Alert{}, alert.ErrNotFound
	}
	return r.GetForUser(ctx, id, userID)
}

func (r *MongoAlertRepository) TouchLastChecked(ctx context.Context, id, userID string, t time.Time) error {
	res, err := r.coll.UpdateOne(ctx,
		bson.M{"id": id, "user_id": userID},
		bson.M{"$set": bson.M{"last_checked": t}},
	)
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return alert.ErrNotFound
	}
	return nil
}

func (r *MongoAlertRepository) Delete(ctx context.Context, id, userID string) error {
	res, err := r.coll.DeleteOne(ctx, bson.M{"id": id, "user_id": userID})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return alert.ErrNotFound
	}
	return nil
}
