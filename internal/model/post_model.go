package model

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// PostModel is the MongoDB document shape for a post.
type PostModel struct {
	ID           primitive.ObjectID `bson:"_id,omitempty"`
	Username     string             `bson:"username"`
	Content      string             `bson:"content"`
	Image        string             `bson:"image,omitempty"`
	UserIP       string             `bson:"userIP,omitempty"`
	UserAgent    string             `bson:"userAgent,omitempty"`
	PostType     string             `bson:"postType"`
	ViewCount    int                `bson:"viewCount"`
	LastViewedAt *time.Time         `bson:"lastViewedAt,omitempty"`
	CreatedAt    time.Time          `bson:"createdAt"`
	UpdatedAt    time.Time          `bson:"updatedAt"`
}
