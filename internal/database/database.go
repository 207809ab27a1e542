// server/internal/database/database.go
package database

import (
	"context"
	"fmt"
	"time"

	"agrisense-farm-api-server/config"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
)

// Connect mở kết nối tới MongoDB và ping để chắc chắn server sẵn sàng.
func Connect(cfg config.MongoConfig) (*mongo.Client, *mongo.Database, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(cfg.URI))
	if err != nil {
		return nil, nil, fmt.Errorf("failed to connect to MongoDB: %w", err)
	}

	if err := client.Ping(ctx, readpref.Primary()); err != nil {
		return nil, nil, fmt.Errorf("failed to ping MongoDB: %w", err)
	}

	return client, client.Database(cfg.DBName), nil
}

// EnsureIndexes tạo index phụ trên farm_id, query phụ duy nhất của collection zones.
func EnsureIndexes(db *mongo.Database) error {
	indexModel := mongo.IndexModel{
		Keys: bson.D{{Key: "farm_id", Value: 1}},
	}

	_, err := db.Collection("zones").Indexes().CreateOne(context.Background(), indexModel)
	if err != nil {
		return fmt.Errorf("failed to create farm_id index: %w", err)
	}
	return nil
}
