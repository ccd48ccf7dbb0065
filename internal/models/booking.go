package models

import (
	"time"

	"github.com/google/uuid"
)

// Booking statuses
const (
	BookingStatusPending   = "pending"
	BookingStatusConfirmed = "confirmed"
	BookingStatusCancelled = "cancelled"
)

// ValidBookingStatus reports whether s is one of the three booking statuses.
func ValidBookingStatus(s string) bool {
	return s == BookingStatusPending || s == BookingStatusConfirmed || s == BookingStatusCancelled
}

// BookingDB represents a reservation of a property for a half-open
// date range [start_date, end_date).
type BookingDB struct {
	BookingID  uuid.UUID `json:"booking_id" db:"booking_id"`   // Primary key
	PropertyID uuid.UUID `json:"property_id" db:"property_id"` // Booked property
	UserID     uuid.UUID `json:"user_id" db:"user_id"`         // Requesting tenant
	StartDate  time.Time `json:"start_date" db:"start_date"`   // Check-in date, inclusive
	EndDate    time.Time `json:"end_date" db:"end_date"`       // Check-out date, exclusive
	Status     string    `json:"status" db:"status"`           // pending, confirmed or cancelled
	CreatedAt  time.Time `json:"created_at" db:"created_at"`   // Creation timestamp
}

// BookingFilter holds the optional list filters.
type BookingFilter struct {
	PropertyID   *uuid.UUID // bookings on one property
	Status       *string    // exact status match
	StartDateGTE *time.Time // start_date on or after
	StartDateLTE *time.Time // start_date on or before
	EndDateGTE   *time.Time // end_date on or after
	EndDateLTE   *time.Time // end_date on or before
	Ordering     string     // whitelist key, empty for newest first
}
