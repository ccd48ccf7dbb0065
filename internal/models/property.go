package models

import (
	"time"

	"github.com/google/uuid"
)

// Supported property types
const (
	PropertyTypeApartment = "apartment"
	PropertyTypeHouse     = "house"
)

// ValidPropertyType reports whether t is one of the supported property types.
func ValidPropertyType(t string) bool {
	return t == PropertyTypeApartment || t == PropertyTypeHouse
}

// PropertyDB represents a property listing in the database
type PropertyDB struct {
	PropertyID   uuid.UUID `json:"property_id" db:"property_id"`     // Primary key
	UserID       uuid.UUID `json:"user_id" db:"user_id"`             // Owning landlord
	Title        string    `json:"title" db:"title"`                 // Listing title
	Description  string    `json:"description" db:"description"`     // Free-text description
	Location     string    `json:"location" db:"location"`           // Location string
	Price        string    `json:"price" db:"price"`                 // Price per period, decimal with 2 fractional digits
	NumRooms     int       `json:"num_rooms" db:"num_rooms"`         // Room count
	PropertyType string    `json:"property_type" db:"property_type"` // apartment or house
	IsActive     bool      `json:"is_active" db:"is_active"`         // Soft-deactivation flag
	Available    bool      `json:"available" db:"available"`         // Availability flag
	ViewsCount   int       `json:"views_count" db:"views_count"`     // Monotonic view counter
	CreatedAt    time.Time `json:"created_at" db:"created_at"`       // Creation timestamp
}

// PropertyFilter holds the optional list filters and ordering.
// Nil pointer fields are not applied.
type PropertyFilter struct {
	PriceGTE         *string // price >= value
	PriceLTE         *string // price <= value
	Location         *string // exact location match
	LocationContains *string // case-insensitive substring match
	NumRoomsGTE      *int    // num_rooms >= value
	NumRoomsLTE      *int    // num_rooms <= value
	PropertyType     *string // exact property type
	Search           *string // case-insensitive substring over title+description
	Ordering         string  // price, created_at or views_count, optionally "-" prefixed
}

// PropertyUpdate holds the mutable fields of a listing for partial updates.
// Nil pointer fields keep their current value.
type PropertyUpdate struct {
	Title        *string
	Description  *string
	Location     *string
	Price        *string
	NumRooms     *int
	PropertyType *string
	IsActive     *bool
	Available    *bool
}
