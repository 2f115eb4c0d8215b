// Package infra holds external collaborators: the Cosmos DB (API for
// MongoDB) client used by every repository.
package infra

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
)

// NewCosmosDatabase connects to the document store and validates
// connectivity at startup. The returned handle is constructed once in the
// composition root and never reassigned.
func NewCosmosDatabase(uri, database string) (*mongo.Database, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().
		ApplyURI(uri).
		SetAppName("CarnetDigitalUAGro"))
	if err != nil {
		return nil, err
	}

	if err := client.Ping(ctx, readpref.Primary()); err != nil {
		return nil, err
	}

	return client.Database(database), nil
}

// Ping checks store connectivity for the health endpoint.
func Ping(ctx context.Context, db *mongo.Database) error {
	ctx, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()
	return db.Client().Ping(ctx, readpref.Primary())
}
