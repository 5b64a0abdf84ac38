package db

import (
	"context"
	"time"

	"github.com/Nathal25/LUMIX-BACKEND/internal/config"

	"github.com/rs/zerolog/log"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

var mongoClient *mongo.Client
var mongoDB *mongo.Database

func InitMongo(cfg *config.Config) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(cfg.MongoURI))
	if err != nil {
		log.Fatal().Err(err).Msg("mongo connect failed")
	}

	if err := client.Ping(ctx, nil); err != nil {
		log.Fatal().Err(err).Msg("mongo ping failed")
	}

	mongoClient = client
	mongoDB = client.Database(cfg.MongoDB)
	log.Info().Str("db", cfg.MongoDB).Msg("mongo connected")

	if err := ensureIndexes(ctx, mongoDB); err != nil {
		log.Fatal().Err(err).Msg("mongo index bootstrap failed")
	}
}

func DB() *mongo.Database {
	return mongoDB
}

func Disconnect(ctx context.Context) error {
	if mongoClient == nil {
		return nil
	}
	return mongoClient.Disconnect(ctx)
}

// ensureIndexes creates the unique indexes the application relies on for
// conflict detection. Uniqueness of email, review pair and favorite pair is
// ultimately delegated to the store: the repositories pre-check, but a race
// between two writers must still end in a duplicate-key error here.
func ensureIndexes(ctx context.Context, database *mongo.Database) error {
	unique := options.Index().SetUnique(true)

	_, err := database.Collection("users").Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "email", Value: 1}},
		Options: unique,
	})
	if err != nil {
		return err
	}

	_, err = database.Collection("movies").Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "pexelsId", Value: 1}},
		Options: unique,
	})
	if err != nil {
		return err
	}

	pair := bson.D{{Key: "userId", Value: 1}, {Key: "movieId", Value: 1}}

	_, err = database.Collection("reviews").Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    pair,
		Options: unique,
	})
	if err != nil {
		return err
	}

	_, err = database.Collection("favorites").Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    pair,
		Options: unique,
	})
	return err
}
