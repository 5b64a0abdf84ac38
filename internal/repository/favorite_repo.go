package repository

import (
	"context"
	"fmt"

	"github.com/Nathal25/LUMIX-BACKEND/internal/db"
	"github.com/Nathal25/LUMIX-BACKEND/internal/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

type FavoriteRepository struct {
	*Repo[models.Favorite]
	col *mongo.Collection
}

func NewFavoriteRepository() *FavoriteRepository {
	col := db.DB().Collection("favorites")
	return &FavoriteRepository{Repo: NewRepo[models.Favorite](col), col: col}
}

func (r *FavoriteRepository) FindByUserAndMovie(ctx context.Context, userID, movieID primitive.ObjectID) (*models.Favorite, error) {
	return r.findOne(ctx, bson.M{"userId": userID, "movieId": movieID})
}

// ListByUser returns the user's favorites with the movie details joined in.
func (r *FavoriteRepository) ListByUser(ctx context.Context, userID primitive.ObjectID) ([]models.FavoriteWithMovie, error) {
	pipeline := mongo.Pipeline{
		{{Key: "$match", Value: bson.M{"userId": userID}}},
		{{Key: "$lookup", Value: bson.M{
			"from":         "movies",
			"localField":   "movieId",
			"foreignField": "_id",
			"as":           "movie",
		}}},
		{{Key: "$unwind", Value: "$movie"}},
		{{Key: "$sort", Value: bson.M{"createdAt": -1}}},
	}

	cur, err := r.col.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, fmt.Errorf("store: aggregate favorites: %w", err)
	}
	defer cur.Close(ctx)

	var out []models.FavoriteWithMovie
	if err := cur.All(ctx, &out); err != nil {
		return nil, fmt.Errorf("store: decode favorites: %w", err)
	}
	return out, nil
}
