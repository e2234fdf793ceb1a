package database

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog/log"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"

	"inventory-backend/internal/config"
)

// Collection names. Every document carries an object id plus
// created_time/modified_time in UTC.
const (
	CollectionCatalogueCategories = "catalogue_categories"
	CollectionCatalogueItems      = "catalogue_items"
	CollectionItems               = "items"
	CollectionSystems             = "systems"
	CollectionUnits               = "units"
	CollectionUsageStatuses       = "usage_statuses"
	CollectionManufacturers       = "manufacturers"
)

// MongoDB wraps the driver client and the configured database handle.
type MongoDB struct {
	Client *mongo.Client
	Config *config.DatabaseConfig

	database *mongo.Database
}

func NewMongoDB(cfg *config.DatabaseConfig) *MongoDB {
	return &MongoDB{Config: cfg}
}

// Connect establishes the client with retry and verifies it with a ping.
// Transactions require a replica set, which is assumed of the deployment
// the URI points at.
func (db *MongoDB) Connect(ctx context.Context) error {
	opts := options.Client().
		ApplyURI(db.Config.URI).
		SetConnectTimeout(db.Config.ConnectTimeout)

	var lastErr error
	for attempt := 1; attempt <= db.Config.MaxRetries; attempt++ {
		client, err := mongo.Connect(opts)
		if err == nil {
			pingCtx, cancel := context.WithTimeout(ctx, db.Config.ConnectTimeout)
			err = client.Ping(pingCtx, nil)
			cancel()
			if err == nil {
				db.Client = client
				db.database = client.Database(db.Config.Name)
				log.Info().Int("attempt", attempt).Msg("Connected to MongoDB")
				return nil
			}
			_ = client.Disconnect(ctx)
		}
		lastErr = err
		log.Warn().Err(err).Int("attempt", attempt).Msg("MongoDB connection failed")

		if attempt < db.Config.MaxRetries {
			delay := db.Config.RetryDelay * time.Duration(1<<uint(attempt-1))
			select {
			case <-time.After(delay):
			case <-ctx.Done():
				return fmt.Errorf("connection cancelled: %w", ctx.Err())
			}
		}
	}

	return fmt.Errorf("failed to connect after %d attempts: %w", db.Config.MaxRetries, lastErr)
}

func (db *MongoDB) Database() *mongo.Database {
	return db.database
}

func (db *MongoDB) Collection(name string) *mongo.Collection {
	return db.database.Collection(name)
}

func (db *MongoDB) HealthCheck(ctx context.Context) error {
	if db.Client == nil {
		return fmt.Errorf("mongodb client is not initialized")
	}
	ctx, cancel := context.WithTimeout(ctx, 2*time.Second)
	defer cancel()
	return db.Client.Ping(ctx, nil)
}

func (db *MongoDB) Close(ctx context.Context) error {
	if db.Client == nil {
		return nil
	}
	return db.Client.Disconnect(ctx)
}
