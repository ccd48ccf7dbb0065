package models

import (
	"time"

	"github.com/google/uuid"
)

// SearchHistoryDB is an append-only record of a search performed by a user.
type SearchHistoryDB struct {
	SearchID  uuid.UUID `json:"search_id" db:"search_id"`   // Primary key
	UserID    uuid.UUID `json:"user_id" db:"user_id"`       // Searching user
	Keyword   string    `json:"keyword" db:"keyword"`       // Search keyword
	CreatedAt time.Time `json:"created_at" db:"created_at"` // Search timestamp
}

// PropertyViewDB is an append-only audit record of a property view event.
type PropertyViewDB struct {
	ViewID     uuid.UUID `json:"view_id" db:"view_id"`         // Primary key
	UserID     uuid.UUID `json:"user_id" db:"user_id"`         // Viewing user
	PropertyID uuid.UUID `json:"property_id" db:"property_id"` // Viewed property
	ViewedAt   time.Time `json:"viewed_at" db:"viewed_at"`     // View timestamp
}

// Kafka event types
const (
	EventPropertyViewed  = "property_viewed"
	EventSearchPerformed = "search_performed"
)

// TelemetryEvent is the payload published to Kafka for view and search events.
type TelemetryEvent struct {
	EventType  string    `json:"event_type"`            // property_viewed or search_performed
	UserID     uuid.UUID `json:"user_id"`               // Acting user
	PropertyID uuid.UUID `json:"property_id,omitempty"` // Target property for view events
	Keyword    string    `json:"keyword,omitempty"`     // Keyword for search events
	OccurredAt time.Time `json:"occurred_at"`           // Event timestamp
}
