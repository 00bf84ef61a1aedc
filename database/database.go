package database

import (
	"context"
	"log"
	"time"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// DB is the shared MongoDB handle for the process. It is created once in main
// and passed into the stores; nothing reaches for it through package globals.
type DB struct {
	Client *mongo.Client

	Users          *mongo.Collection
	Biodatas       *mongo.Collection
	Counters       *mongo.Collection
	Favorites      *mongo.Collection
	Payments       *mongo.Collection
	Reviews        *mongo.Collection
	SuccessStories *mongo.Collection
}

func Connect(uri, dbName string) (*DB, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	if err != nil {
		return nil, err
	}

	if err := client.Ping(ctx, nil); err != nil {
		return nil, err
	}

	db := client.Database(dbName)

	log.Println("Connected to MongoDB successfully")
	return &DB{
		Client:         client,
		Users:          db.Collection("users"),
		Biodatas:       db.Collection("biodatas"),
		Counters:       db.Collection("counters"),
		Favorites:      db.Collection("favorites"),
		Payments:       db.Collection("payments"),
		Reviews:        db.Collection("reviews"),
		SuccessStories: db.Collection("successStories"),
	}, nil
}

func (db *DB) Disconnect() error {
	if db == nil || db.Client == nil {
		return nil
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := db.Client.Disconnect(ctx); err != nil {
		return err
	}

	log.Println("Disconnected from MongoDB")
	return nil
}
