package repository

import (
	"context"
	"errors"

	"cablib/internal/domain/visit"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type VisitRepository interface {
	Create(ctx context.Context, v visit.Visit) error
	GetByID(ctx context.Context, id string) (visit.Visit, error)
	FindByPractitioner(ctx context.Context, practitionerID string) ([]visit.Visit, error)
	FindByOwner(ctx context.Context, ownerID string) ([]visit.Visit, error)
	UpdateStatus(ctx context.Context, id, status string) (visit.Visit, error)
	// DeleteForParticipant removes a visit only when the caller is the
	// requesting practitioner or the listing owner.
	DeleteForParticipant(ctx context.Context, id, userID string) error
}

type MongoVisitRepository struct {
	coll *mongo.Collection
}

func NewMongoVisitRepository(coll *mongo.Collection) *MongoVisitRepository {
	return &MongoVisitRepository{coll: coll}
}

func (r *MongoVisitRepository) Create(ctx context.Context, v visit.Visit) error {
	_, err := r.coll.InsertOne(ctx, v)
	return err
}

func (r *MongoVisitRepository) GetByID(ctx context.Context, id string) (visit.Visit, error) {
	var v visit.Visit
	if err := r.coll.FindOne(ctx, bson.M{"id": id}).Decode(&v); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return visit.Visit{}, visit.ErrNotFound
		}
		return visit.Visit{}, err
	}
	return v, nil
}

func (r *MongoVisitRepository) FindByPractitioner(ctx context.Context, practitionerID string) ([]visit.Visit, error) {
	return r.find(ctx, bson.M{"practitioner_id": practitionerID})
}

func (r *MongoVisitRepository) FindByOwner(ctx context.Context, ownerID string) ([]visit.Visit, error) {
	return r.find(ctx, bson.M{"owner_id": ownerID})
}

func (r *MongoVisitRepository) find(ctx context.Context, filter bson.M) ([]visit.Visit, error) {
	opts := options.Find().SetSort(bson.D{{Key: "date", Value: 1}}).SetLimit(100)
	cur, err := r.coll.Find(ctx, filter, opts)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	out := make([]visit.Visit, 0)
	for cur.Next(ctx) {
		var v visit.Visit
		if err := cur.Decode(&v); err != nil {
			return nil, err
		}
		out = append(out, v)
	}
	return out, cur.Err()
}

func (r *MongoVisitRepository) UpdateStatus(ctx context.Context, id, status string) (visit.Visit, error) {
	res, err := r.coll.UpdateOne(ctx, bson.M{"id": id}, bson.M{"$set": bson.M{"status": status}})
	if err != nil {
		return visit.Visit{}, err
	}
	if res.MatchedCount == 0 {
		return visit.Visit{}, visit.ErrNotFound
	}
	return r.GetByID(ctx, id)
}

func (r *MongoVisitRepository) DeleteForParticipant(ctx context.Context, id, userID string) error {
	res, err := r.coll.DeleteOne(ctx, bson.M{
		"id": id,
		"$or": bson.A{
			bson.M{"practitioner_id": userID},
			bson.M{"owner_id": userID},
		},
	})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return visit.ErrNotFound
	}
	return nil
}
