package service

import (
	"context"
	"fmt"
	"time"

	"github.com/Nathal25/LUMIX-BACKEND/internal/models"

	"go.mongodb.org/mongo-driver/mongo"
)

type FavoriteService struct {
	favorites FavoriteStore
	movies    MovieStore
}

func NewFavoriteService(favorites FavoriteStore, movies MovieStore) *FavoriteService {
	return &FavoriteService{favorites: favorites, movies: movies}
}

// Add marks a movie as a favorite. A user can favorite a given movie only
// once; the second attempt is a conflict.
func (s *FavoriteService) Add(ctx context.Context, userIDHex, movieIDHex string) (*models.Favorite, error) {
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

	existing, err := s.favorites.FindByUserAndMovie(ctx, userID, movieID)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, fmt.Errorf("%w: movie already in favorites", ErrConflict)
	}

	now := time.Now().UTC()
	f := &models.Favorite{
		UserID:    userID,
		MovieID:   movieID,
		CreatedAt: now,
		UpdatedAt: now,
	}
	id, err := s.favorites.Create(ctx, f)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return nil, fmt.Errorf("%w: movie already in favorites", ErrConflict)
		}
		return nil, err
	}
	f.ID = id
	return f, nil
}

func (s *FavoriteService) ListByUser(ctx context.Context, userIDHex string) ([]models.FavoriteWithMovie, error) {
	userID, err := parseObjectID(userIDHex)
	if err != nil {
		return nil, err
	}
	out, err := s.favorites.ListByUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	if out == nil {
		out = []models.FavoriteWithMovie{}
	}
	return out, nil
}

func (s *FavoriteService) Remove(ctx context.Context, idHex string) error {
	id, err := parseObjectID(idHex)
	if err != nil {
		return err
	}
	if err := s.favorites.DeleteByID(ctx, id); err != nil {
		if err == mongo.ErrNoDocuments {
			return ErrNotFound
		}
		return err
	}
	return nil
}
