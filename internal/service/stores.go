package service

import (
	"context"
	"time"

	"github.com/Nathal25/LUMIX-BACKEND/internal/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Store interfaces capture exactly the persistence operations each service
// needs. The mongo repositories in internal/repository satisfy them; tests
// run against in-memory fakes.

type UserStore interface {
	Create(ctx context.Context, u *models.User) (primitive.ObjectID, error)
	GetByID(ctx context.Context, id primitive.ObjectID) (*models.User, error)
	UpdateByID(ctx context.Context, id primitive.ObjectID, update bson.M) error
	DeleteByID(ctx context.Context, id primitive.ObjectID) error
	FindByEmail(ctx context.Context, email string) (*models.User, error)
	FindByResetToken(ctx context.Context, email, token string) (*models.User, error)
	SetResetToken(ctx context.Context, email, token string, expiry time.Time) error
	ResetPassword(ctx context.Context, email, passwordHash string) error
}

type MovieStore interface {
	Create(ctx context.Context, m *models.Movie) (primitive.ObjectID, error)
	GetByID(ctx context.Context, id primitive.ObjectID) (*models.Movie, error)
	List(ctx context.Context, q string, limit, offset int) ([]models.Movie, error)
	FindByPexelsID(ctx context.Context, pexelsID int) (*models.Movie, error)
}

type FavoriteStore interface {
	Create(ctx context.Context, f *models.Favorite) (primitive.ObjectID, error)
	DeleteByID(ctx context.Context, id primitive.ObjectID) error
	FindByUserAndMovie(ctx context.Context, userID, movieID primitive.ObjectID) (*models.Favorite, error)
	ListByUser(ctx context.Context, userID primitive.ObjectID) ([]models.FavoriteWithMovie, error)
}

type ReviewStore interface {
	Create(ctx context.Context, rv *models.Review) (primitive.ObjectID, error)
	DeleteByID(ctx context.Context, id primitive.ObjectID) error
	ListByMovie(ctx context.Context, movieID primitive.ObjectID) ([]models.Review, error)
	ListByUser(ctx context.Context, userID primitive.ObjectID) ([]models.Review, error)
	FindByUserAndMovie(ctx context.Context, userID, movieID primitive.ObjectID) (*models.Review, error)
	UpdateByUserAndMovie(ctx context.Context, userID, movieID primitive.ObjectID, comment string, rating int) error
	AverageRating(ctx context.Context, movieID primitive.ObjectID) (float64, error)
}

// Mailer dispatches outbound mail. The SMTP implementation lives in
// internal/mail.
type Mailer interface {
	SendPasswordReset(ctx context.Context, to, resetLink string) error
}
