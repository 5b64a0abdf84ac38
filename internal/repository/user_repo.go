package repository

import (
	"context"
	"time"

	"github.com/Nathal25/LUMIX-BACKEND/internal/db"
	"github.com/Nathal25/LUMIX-BACKEND/internal/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

type UserRepository struct {
	*Repo[models.User]
	col *mongo.Collection
}

func NewUserRepository() *UserRepository {
	col := db.DB().Collection("users")
	return &UserRepository{Repo: NewRepo[models.User](col), col: col}
}

func (r *UserRepository) FindByEmail(ctx context.Context, email string) (*models.User, error) {
	return r.findOne(ctx, bson.M{"email": email})
}

// FindByResetToken matches a pending reset token. The pair is only valid
// while the stored expiry is still in the future.
func (r *UserRepository) FindByResetToken(ctx context.Context, email, token string) (*models.User, error) {
	return r.findOne(ctx, bson.M{
		"email":            email,
		"resetToken":       token,
		"resetTokenExpiry": bson.M{"$gt": time.Now()},
	})
}

func (r *UserRepository) SetResetToken(ctx context.Context, email, token string, expiry time.Time) error {
	return r.updateByEmail(ctx, email, bson.M{
		"resetToken":       token,
		"resetTokenExpiry": expiry,
		"updatedAt":        time.Now().UTC(),
	})
}

// ResetPassword stores the new hash and clears the reset token so it cannot
// be replayed.
func (r *UserRepository) ResetPassword(ctx context.Context, email, passwordHash string) error {
	res, err := r.col.UpdateOne(ctx,
		bson.M{"email": email},
		bson.M{
			"$set":   bson.M{"passwordHash": passwordHash, "updatedAt": time.Now().UTC()},
			"$unset": bson.M{"resetToken": "", "resetTokenExpiry": ""},
		},
	)
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return mongo.ErrNoDocuments
	}
	return nil
}

func (r *UserRepository) updateByEmail(ctx context.Context, email string, update bson.M) error {
	res, err := r.col.UpdateOne(ctx, bson.M{"email": email}, bson.M{"$set": update})
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return mongo.ErrNoDocuments
	}
	return nil
}
