package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/Nathal25/LUMIX-BACKEND/internal/db"
	"github.com/Nathal25/LUMIX-BACKEND/internal/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type ReviewRepository struct {
	*Repo[models.Review]
	col *mongo.Collection
}

func NewReviewRepository() *ReviewRepository {
	col := db.DB().Collection("reviews")
	return &ReviewRepository{Repo: NewRepo[models.Review](col), col: col}
}

func (r *ReviewRepository) ListByMovie(ctx context.Context, movieID primitive.ObjectID) ([]models.Review, error) {
	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})
	return r.Find(ctx, bson.M{"movieId": movieID}, opts)
}

func (r *ReviewRepository) ListByUser(ctx context.Context, userID primitive.ObjectID) ([]models.Review, error) {
	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})
	return r.Find(ctx, bson.M{"userId": userID}, opts)
}

func (r *ReviewRepository) FindByUserAndMovie(ctx context.Context, userID, movieID primitive.ObjectID) (*models.Review, error) {
	return r.findOne(ctx, bson.M{"userId": userID, "movieId": movieID})
}

func (r *ReviewRepository) UpdateByUserAndMovie(ctx context.Context, userID, movieID primitive.ObjectID, comment string, rating int) error {
	res, err := r.col.UpdateOne(ctx,
		bson.M{"userId": userID, "movieId": movieID},
		bson.M{"$set": bson.M{
			"comment":   comment,
			"rating":    rating,
			"updatedAt": time.Now().UTC(),
		}},
	)
	if err != nil {
		return fmt.Errorf("store: update review: %w", err)
	}
	if res.MatchedCount == 0 {
		return mongo.ErrNoDocuments
	}
	return nil
}

// AverageRating computes the mean rating for a movie. 0 when the movie has
// no reviews.
func (r *ReviewRepository) AverageRating(ctx context.Context, movieID primitive.ObjectID) (float64, error) {
	pipeline := mongo.Pipeline{
		{{Key: "$match", Value: bson.M{"movieId": movieID}}},
		{{Key: "$group", Value: bson.M{
			"_id":     nil,
			"average": bson.M{"$avg": "$rating"},
		}}},
	}

	cur, err := r.col.Aggregate(ctx, pipeline)
	if err != nil {
		return 0, fmt.Errorf("store: aggregate rating: %w", err)
	}
	defer cur.Close(ctx)

	var results []struct {
		Average float64 `bson:"average"`
	}
	if err := cur.All(ctx, &results); err != nil {
		return 0, fmt.Errorf("store: decode rating: %w", err)
	}
	if len(results) == 0 {
		return 0, nil
	}
	return results[0].Average, nil
}
