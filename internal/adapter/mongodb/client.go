// Package mongodb holds the MongoDB connection helpers shared by the
// document-store repositories.
package mongodb

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"

	"github.com/heartmarshall/todo-backend/internal/config"
	"github.com/heartmarshall/todo-backend/internal/domain"
)

// Connect opens a client from MongoConfig and pings the primary so
// misconfiguration fails at startup.
func Connect(ctx context.Context, cfg config.MongoConfig) (*mongo.Client, error) {
	ctx, cancel := context.WithTimeout(ctx, cfg.ConnectTimeout)
	defer cancel()

	opts := options.Client().
		ApplyURI(cfg.URI).
		SetAppName("todo-backend")

	client, err := mongo.Connect(ctx, opts)
	if err != nil {
		return nil, fmt.Errorf("connect mongo: %w", err)
	}

	if err := client.Ping(ctx, readpref.Primary()); err != nil {
		_ = client.Disconnect(context.Background())
		return nil, fmt.Errorf("ping mongo: %w", err)
	}

	return client, nil
}

// Pinger adapts a client to the health-check interface.
type Pinger struct {
	Client *mongo.Client
}

// Ping checks that the primary is reachable.
func (p Pinger) Ping(ctx context.Context) error {
	return p.Client.Ping(ctx, readpref.Primary())
}

// MapError converts driver errors to domain errors. Missing documents
// become notFound; context errors pass through.
func MapError(err error, notFound error, id string) error {
	if err == nil {
		return nil
	}

	if errors.Is(err, context.DeadlineExceeded) || errors.Is(err, context.Canceled) {
		return fmt.Errorf("%s: %w", id, err)
	}

	if errors.Is(err, mongo.ErrNoDocuments) {
		return fmt.Errorf("%s: %w", id, notFound)
	}

	var we mongo.WriteException
	if errors.As(err, &we) {
		for _, e := range we.WriteErrors {
			if e.Code == 121 { // DocumentValidationFailure
				return fmt.Errorf("%s: %w", id, domain.ErrValidation)
			}
		}
	}

	return fmt.Errorf("%s: %w", id, err)
}
