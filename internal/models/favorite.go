package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type Favorite struct {
	ID      primitive.ObjectID `json:"id" bson:"_id,omitempty"`
	UserID  primitive.ObjectID `json:"userId" bson:"userId"`
	MovieID primitive.ObjectID `json:"movieId" bson:"movieId"`

	CreatedAt time.Time `json:"createdAt" bson:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt" bson:"updatedAt"`
}

// FavoriteWithMovie is the $lookup projection returned when listing a
// user's favorites with the movie details joined in.
type FavoriteWithMovie struct {
	ID        primitive.ObjectID `json:"id" bson:"_id"`
	UserID    primitive.ObjectID `json:"userId" bson:"userId"`
	Movie     Movie              `json:"movie" bson:"movie"`
	CreatedAt time.Time          `json:"createdAt" bson:"createdAt"`
}
