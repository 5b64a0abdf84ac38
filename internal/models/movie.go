package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Movie is a catalog entry ingested from the Pexels video API.
// PexelsID is the provider id and is unique per movie (dedup on ingest).
type Movie struct {
	ID          primitive.ObjectID `json:"id" bson:"_id,omitempty"`
	PexelsID    int                `json:"pexelsId" bson:"pexelsId"`
	Title       string             `json:"title" bson:"title"`
	Image       string             `json:"image" bson:"image"`
	VideoURL    string             `json:"videoUrl" bson:"videoUrl"`
	Duration    int                `json:"duration" bson:"duration"`
	Author      string             `json:"author" bson:"author"`
	Description string             `json:"description,omitempty" bson:"description,omitempty"`

	CreatedAt time.Time `json:"createdAt" bson:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt" bson:"updatedAt"`
}
