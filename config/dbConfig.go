package config

import (
	"context"
	"log"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

var Client *mongo.Client

// ConnectDB establishes the MongoDB connection. Must be called after Load.
func ConnectDB() {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(App.MongoURI))
	if err != nil {
		log.Fatal(err)
	}

	if err := client.Ping(ctx, nil); err != nil {
		log.Fatal(err)
	}

	log.Println("Connected to MongoDB")
	Client = client
}

// OpenCollection returns a handle to the named collection.
func OpenCollection(collectionName string) *mongo.Collection {
	return Client.Database(App.DatabaseName).Collection(collectionName)
}

// EnsureIndexes creates the unique indexes the write paths rely on. The
// pre-insert existence checks in the controllers are only a fast path for a
// friendly error message; the indexes are the source of truth under
// concurrent writes.
func EnsureIndexes() {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	unique := options.Index().SetUnique(true)

	_, err := OpenCollection("users").Indexes().CreateMany(ctx, []mongo.IndexModel{
		{Keys: bson.D{{Key: "username", Value: 1}}, Options: unique},
		{Keys: bson.D{{Key: "email", Value: 1}}, Options: unique},
	})
	if err != nil {
		log.Fatal(err)
	}

	_, err = OpenCollection("categories").Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "category_name", Value: 1}},
		Options: unique,
	})
	if err != nil {
		log.Fatal(err)
	}
}
