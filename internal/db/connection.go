package db

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
)

const connectTimeout = 10 * time.Second

// Connection wraps a MongoDB client scoped to a single database.
type Connection struct {
	client *mongo.Client
	db     *mongo.Database
}

// Connect establishes a connection to MongoDB and selects the given database.
// Note that the driver connects lazily: a bad host is only surfaced by Ping.
func Connect(ctx context.Context, uri, database string) (*Connection, error) {
	clientOptions := options.Client().ApplyURI(uri)
	clientOptions.SetConnectTimeout(connectTimeout)

	client, err := mongo.Connect(ctx, clientOptions)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to MongoDB: %w", err)
	}

	return &Connection{
		client: client,
		db:     client.Database(database),
	}, nil
}

// Ping verifies the connection is usable before any destructive work.
func (c *Connection) Ping(ctx context.Context) error {
	if err := c.client.Ping(ctx, readpref.Primary()); err != nil {
		return fmt.Errorf("failed to ping MongoDB: %w", err)
	}
	return nil
}

// ListCollections returns the current collection names in driver order.
func (c *Connection) ListCollections(ctx context.Context) ([]string, error) {
	collections, err := c.db.ListCollectionNames(ctx, bson.D{})
	if err != nil {
		return nil, fmt.Errorf("failed to list collections: %w", err)
	}
	return collections, nil
}

// DropCollection permanently removes a collection and all its documents.
func (c *Connection) DropCollection(ctx context.Context, name string) error {
	if err := c.db.Collection(name).Drop(ctx); err != nil {
		return fmt.Errorf("failed to drop collection %s: %w", name, err)
	}
	return nil
}

// CountDocuments returns the number of documents in a collection.
func (c *Connection) CountDocuments(ctx context.Context, name string) (int64, error) {
	count, err := c.db.Collection(name).CountDocuments(ctx, bson.D{})
	if err != nil {
		return 0, fmt.Errorf("failed to count documents in %s: %w", name, err)
	}
	return count, nil
}

// Close disconnects the underlying client.
func (c *Connection) Close(ctx context.Context) error {
	return c.client.Disconnect(ctx)
}
