package repository

import (
	"context"

	"cablib/internal/domain/message"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type MessageRepository interface {
	Create(ctx context.Context, m message.Message) error
	// FindConversation returns the messages exchanged between two users
	// in chronological order, bounded.
	FindConversation(ctx context.Context, userID, peerID string) ([]message.Message, error)
	// FindInvolving returns the newest messages the user sent or
	// received, newest first, bounded. Used to fold conversations.
	FindInvolving(ctx context.Context, userID string) ([]message.Message, error)
}

type MongoMessageRepository struct {
	coll *mongo.Collection
}

func NewMongoMessageRepository(coll *mongo.Collection) *MongoMessageRepository {
	return &MongoMessageRepository{coll: coll}
}

func (r *MongoMessageRepository) Create(ctx context.Context, m message.Message) error {
	_, err := r.coll.InsertOne(ctx, m)
	return err
}

func (r *MongoMessageRepository) FindConversation(ctx context.Context, userID, peerID string) ([]message.Message, error) {
	filter := bson.M{"$or": bson.A{
		bson.M{"sender_id": userID, "recipient_id": peerID},
		bson.M{"sender_id": peerID, "recipient_id": userID},
	}}
	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: 1}}).SetLimit(200)
	return r.find(ctx, filter, opts)
}

func (r *MongoMessageRepository) FindInvolving(ctx context.Context, userID string) ([]message.Message, error) {
	filter := bson.M{"$or": bson.A{
		bson.M{"sender_id": userID},
		bson.M{"recipient_id": userID},
	}}
	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}}).SetLimit(500)
	return r.find(ctx, filter, opts)
}

func (r *MongoMessageRepository) find(ctx context.Context, filter bson.M, opts *options.FindOptions) ([]message.Message, error) {
	cur, err := r.coll.Find(ctx, filter, opts)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	out := make([]message.Message, 0)
	for cur.Next(ctx) {
		var m message.Message
		if err := cur.Decode(&m); err != nil {
			return nil, err
		}
		out = append(out, m)
	}
	return out, cur.Err()
}
