package mongodb

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
)

// Client MongoDB dédié au journal d'audit des mutations cliniques.
// L'application fonctionne sans MongoDB : l'audit est best-effort.
type Client struct {
	client   *mongo.Client
	database *mongo.Database
}

type MongoConfig struct {
	URI      string
	Database string
}

func NewClient(config *MongoConfig) (*Client, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	clientOptions := options.Client().ApplyURI(config.URI)
	clientOptions.SetMaxPoolSize(20)
	clientOptions.SetMinPoolSize(2)
	clientOptions.SetMaxConnIdleTime(30 * time.Minute)
	clientOptions.SetConnectTimeout(10 * time.Second)
	clientOptions.SetServerSelectionTimeout(5 * time.Second)
	clientOptions.SetRetryWrites(true)

	mongoClient, err := mongo.Connect(ctx, clientOptions)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to MongoDB: %w", err)
	}

	return &Client{
		client:   mongoClient,
		database: mongoClient.Database(config.Database),
	}, nil
}

func (c *Client) Ping(ctx context.Context) error {
	if c.client == nil {
		return fmt.Errorf("MongoDB client is nil")
	}

	if err := c.client.Ping(ctx, readpref.Primary()); err != nil {
		return fmt.Errorf("ping failed: %w", err)
	}

	return nil
}

func (c *Client) Close(ctx context.Context) error {
	if c.client != nil {
		return c.client.Disconnect(ctx)
	}
	return nil
}

// Collection retourne une collection de la base d'audit
func (c *Client) Collection(name string) *mongo.Collection {
	return c.database.Collection(name)
}
