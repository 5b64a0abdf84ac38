package repository

import (
	"context"

	"github.com/Nathal25/LUMIX-BACKEND/internal/db"
	"github.com/Nathal25/LUMIX-BACKEND/internal/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type MovieRepository struct {
	*Repo[models.Movie]
}

func NewMovieRepository() *MovieRepository {
	return &MovieRepository{Repo: NewRepo[models.Movie](db.DB().Collection("movies"))}
}

// FindByPexelsID is the ingestion dedup lookup.
func (r *MovieRepository) FindByPexelsID(ctx context.Context, pexelsID int) (*models.Movie, error) {
	return r.findOne(ctx, bson.M{"pexelsId": pexelsID})
}

func (r *MovieRepository) List(ctx context.Context, q string, limit, offset int) ([]models.Movie, error) {
	filter := bson.M{}
	if q != "" {
		filter["title"] = bson.M{"$regex": q, "$options": "i"}
	}

	opts := options.Find().
		SetSort(bson.D{{Key: "createdAt", Value: -1}}).
		SetLimit(int64(limit)).
		SetSkip(int64(offset))

	return r.Find(ctx, filter, opts)
}
