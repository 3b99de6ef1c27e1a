package persistence

import (
	"context"
	"errors"
	"fmt"
	"time"

	"launch-control-service/pkg/logger"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
	"go.mongodb.org/mongo-driver/mongo/writeconcern"
)

const defaultMongoConnectTimeout = 10 * time.Second

// ErrMissingMongoURI is returned when no connection string is configured
var ErrMissingMongoURI = errors.New("mongodb uri is empty")

// MongoConfig describes how to reach the launch store
type MongoConfig struct {
	URI            string
	Username       string
	Password       string
	AppName        string
	ConnectTimeout time.Duration
}

func (c MongoConfig) clientOptions() *options.ClientOptions {
	opts := options.Client().
		ApplyURI(c.URI).
		SetServerSelectionTimeout(c.timeout())

	if c.AppName != "" {
		opts.SetAppName(c.AppName)
	}
	if c.Username != "" && c.Password != "" {
		opts.SetAuth(options.Credential{
			Username: c.Username,
			Password: c.Password,
		})
	}
	return opts
}

func (c MongoConfig) timeout() time.Duration {
	if c.ConnectTimeout <= 0 {
		return defaultMongoConnectTimeout
	}
	return c.ConnectTimeout
}

// NewMongoClient connects to MongoDB and waits until the primary answers a ping
func NewMongoClient(ctx context.Context, cfg MongoConfig) (*mongo.Client, error) {
	if cfg.URI == "" {
		return nil, ErrMissingMongoURI
	}

	ctx, cancel := context.WithTimeout(ctx, cfg.timeout())
	defer cancel()

	client, err := mongo.Connect(ctx, cfg.clientOptions())
	if err != nil {
		return nil, fmt.Errorf("failed to connect to mongodb: %w", err)
	}

	if err := client.Ping(ctx, readpref.Primary()); err != nil {
		client.Disconnect(context.Background())
		return nil, fmt.Errorf("failed to ping mongodb: %w", err)
	}

	return client, nil
}

// GetDatabase returns the launch database. Writes wait for a majority so an
// acknowledged upsert survives a primary failover.
func GetDatabase(client *mongo.Client, name string) *mongo.Database {
	return client.Database(name, options.Database().SetWriteConcern(writeconcern.Majority()))
}

// DisconnectMongo closes the client and logs a failed disconnect
func DisconnectMongo(ctx context.Context, client *mongo.Client, log logger.Logger) {
	if err := client.Disconnect(ctx); err != nil {
		log.Error("MongoDB disconnect error", "error", err)
		return
	}
	log.Info("MongoDB disconnected")
}
