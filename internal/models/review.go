package models

import (
	"time"

	"github.com/google/uuid"
)

// Rating bounds for reviews
const (
	MinRating = 1
	MaxRating = 5
)

// ReviewDB represents a review left on a property.
type ReviewDB struct {
	ReviewID   uuid.UUID `json:"review_id" db:"review_id"`     // Primary key
	PropertyID uuid.UUID `json:"property_id" db:"property_id"` // Reviewed property
	UserID     uuid.UUID `json:"user_id" db:"user_id"`         // Review author
	Rating     int       `json:"rating" db:"rating"`           // 1..5 inclusive
	Comment    string    `json:"comment" db:"comment"`         // Free-text comment
	CreatedAt  time.Time `json:"created_at" db:"created_at"`   // Creation timestamp
}
