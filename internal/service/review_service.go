package service

import (
	"context"
	"fmt"
	"time"

	"github.com/Nathal25/LUMIX-BACKEND/internal/models"

	"go.mongodb.org/mongo-driver/mongo"
)

const (
	minComment = 3
	maxComment = 1000
	minRating  = 1
	maxRating  = 5
)

type ReviewService struct {
	reviews ReviewStore
	movies  MovieStore
}

type ReviewData struct {
	Comment string
	Rating  int
}

func NewReviewService(reviews ReviewStore, movies MovieStore) *ReviewService {
	return &ReviewService{reviews: reviews, movies: movies}
}

// Create posts a review. One review per (user, movie) pair.
func (s *ReviewService) Create(ctx context.Context, userIDHex, movieIDHex string, data ReviewData) (*models.Review, error) {
	if err := validateReview(data); err != nil {
		return nil, err
	}
	userID, err := parseObjectID(userIDHex)
	if err != nil {
		return nil, err
	}
	movieID, err := parseObjectID(movieIDHex)
	if err != nil {
		return nil, err
	}

	movie, err := s.movies.GetByID(ctx, movieID)
	if err != nil {
		return nil, err
	}
	if movie == nil {
		return nil, ErrNotFound
	}

	existing, err := s.reviews.FindByUserAndMovie(ctx, userID, movieID)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, fmt.Errorf("%w: movie already reviewed", ErrConflict)
	}

	now := time.Now().UTC()
	rv := &models.Review{
		UserID:    userID,
		MovieID:   movieID,
		Comment:   data.Comment,
		Rating:    data.Rating,
		CreatedAt: now,
		UpdatedAt: now,
	}
	id, err := s.reviews.Create(ctx, rv)
	if err != nil {
		// The unique (userId, movieId) index closes the check-then-write race.
		if mongo.IsDuplicateKeyError(err) {
			return nil, fmt.Errorf("%w: movie already reviewed", ErrConflict)
		}
		return nil, err
	}
	rv.ID = id
	return rv, nil
}

func (s *ReviewService) ListByMovie(ctx context.Context, movieIDHex string) ([]models.Review, error) {
	movieID, err := parseObjectID(movieIDHex)
	if err != nil {
		return nil, err
	}
	out, err := s.reviews.ListByMovie(ctx, movieID)
	if err != nil {
		return nil, err
	}
	if len(out) == 0 {
		return nil, ErrNotFound
	}
	return out, nil
}

func (s *ReviewService) ListByUser(ctx context.Context, userIDHex string) ([]models.Review, error) {
	userID, err := parseObjectID(userIDHex)
	if err != nil {
		return nil, err
	}
	out, err := s.reviews.ListByUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	if len(out) == 0 {
		return nil, ErrNotFound
	}
	return out, nil
}

// Update rewrites the caller's review of a movie.
func (s *ReviewService) Update(ctx context.Context, userIDHex, movieIDHex string, data ReviewData) error {
	if err := validateReview(data); err != nil {
		return err
	}
	userID, err := parseObjectID(userIDHex)
	if err != nil {
		return err
	}
	movieID, err := parseObjectID(movieIDHex)
	if err != nil {
		return err
	}
	if err := s.reviews.UpdateByUserAndMovie(ctx, userID, movieID, data.Comment, data.Rating); err != nil {
		if err == mongo.ErrNoDocuments {
			return ErrNotFound
		}
		return err
	}
	return nil
}

func (s *ReviewService) Delete(ctx context.Context, idHex string) error {
	id, err := parseObjectID(idHex)
	if err != nil {
		return err
	}
	if err := s.reviews.DeleteByID(ctx, id); err != nil {
		if err == mongo.ErrNoDocuments {
			return ErrNotFound
		}
		return err
	}
	return nil
}

// AverageRating returns 0 for movies with no reviews.
func (s *ReviewService) AverageRating(ctx context.Context, movieIDHex string) (float64, error) {
	movieID, err := parseObjectID(movieIDHex)
	if err != nil {
		return 0, err
	}
	return s.reviews.AverageRating(ctx, movieID)
}

func validateReview(data ReviewData) error {
	if n := len(data.Comment); n < minComment || n > maxComment {
		return fmt.Errorf("%w: comment must be %d-%d characters", ErrValidation, minComment, maxComment)
	}
	if data.Rating < minRating || data.Rating > maxRating {
		return fmt.Errorf("%w: rating must be %d-%d", ErrValidation, minRating, maxRating)
	}
	return nil
}
