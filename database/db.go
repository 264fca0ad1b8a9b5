package database

import (
	"context"
	"log"
	"time"

	"hoofline/config"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const dbName = "hoofline"

// MongoClient is the global MongoDB client instance.
var MongoClient *mongo.Client

// DB returns the application database handle.
func DB() *mongo.Database {
	return MongoClient.Database(dbName)
}

// InitDB initializes the MongoDB connection and ensures the indexes the
// calendar and route queries depend on.
func InitDB() {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	clientOptions := options.Client().ApplyURI(config.AppConfig.DatabaseURL)
	client, err := mongo.Connect(ctx, clientOptions)
	if err != nil {
		log.Fatalf("failed to connect to MongoDB: %v", err)
	}
	if err := client.Ping(ctx, nil); err != nil {
		log.Fatalf("failed to ping MongoDB: %v", err)
	}
	MongoClient = client

	if err := ensureIndexes(ctx); err != nil {
		log.Fatalf("failed to ensure indexes: %v", err)
	}
	log.Println("Connected to MongoDB successfully!")
}

// ensureIndexes creates the indexes backing the hot read paths: bookings by
// provider day, the weekly template row, the per-date exception, and route
// orders by provider day. The uniqueness constraints mirror the write-side
// upsert filters.
func ensureIndexes(ctx context.Context) error {
	db := DB()

	type spec struct {
		coll   string
		keys   bson.D
		unique bool
	}
	specs := []spec{
		{"bookings", bson.D{{Key: "providerId", Value: 1}, {Key: "date", Value: 1}, {Key: "start", Value: 1}}, false},
		{"weekly_hours", bson.D{{Key: "providerId", Value: 1}, {Key: "weekday", Value: 1}}, true},
		{"date_exceptions", bson.D{{Key: "providerId", Value: 1}, {Key: "date", Value: 1}}, true},
		{"route_orders", bson.D{{Key: "providerId", Value: 1}, {Key: "date", Value: 1}}, false},
	}

	for _, s := range specs {
		model := mongo.IndexModel{Keys: s.keys}
		if s.unique {
			model.Options = options.Index().SetUnique(true)
		}
		if _, err := db.Collection(s.coll).Indexes().CreateOne(ctx, model); err != nil {
			return err
		}
	}
	return nil
}
