package mongodb

import (
	"context"
	"fmt"
	"time"

	"cablib/internal/config"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
)

// Mongo wraps the driver client and the application database.
type Mongo struct {
	client *mongo.Client
	db     *mongo.Database
}

func Connect(ctx context.Context, cfg config.MongoConfig) (*Mongo, error) {
	if cfg.URL == "" || cfg.DBName == "" {
		return nil, fmt.Errorf("mongo: missing MONGO_URL or DB_NAME")
	}

	opts := options.Client().ApplyURI(cfg.URL)
	client, err := mongo.Connect(ctx, opts)
	if err != nil {
		return nil, fmt.Errorf("mongo: connect: %w", err)
	}

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := client.Ping(pingCtx, readpref.Primary()); err != nil {
		_ = client.Disconnect(ctx)
		return nil, fmt.Errorf("mongo: ping: %w", err)
	}

	return &Mongo{client: client, db: client.Database(cfg.DBName)}, nil
}

func (m *Mongo) Collection(name string) *mongo.Collection {
	if m == nil || m.db == nil {
		return nil
	}
	return m.db.Collection(name)
}

func (m *Mongo) Ping(ctx context.Context) error {
	if m == nil || m.client == nil {
		return fmt.Errorf("mongo: not connected")
	}
	return m.client.Ping(ctx, readpref.Primary())
}

func (m *Mongo) Close(ctx context.Context) error {
	if m == nil || m.client == nil {
		return nil
	}
	return m.client.Disconnect(ctx)
}
