package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Review links a user and a movie. One review per (userId, movieId) pair.
type Review struct {
	ID      primitive.ObjectID `json:"id" bson:"_id,omitempty"`
	UserID  primitive.ObjectID `json:"userId" bson:"userId"`
	MovieID primitive.ObjectID `json:"movieId" bson:"movieId"`
	Comment string             `json:"comment" bson:"comment"`
	Rating  int                `json:"rating" bson:"rating"`

	CreatedAt time.Time `json:"createdAt" bson:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt" bson:"updatedAt"`
}
