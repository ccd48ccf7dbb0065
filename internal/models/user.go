package models

import (
	"time"

	"github.com/google/uuid"
)

// Role group names accepted at registration
const (
	RoleLandlord = "Landlord"
	RoleTenant   = "Tenant"
)

// UserDB represents a user record in the database
type UserDB struct {
	UserID       uuid.UUID `json:"user_id" db:"user_id"`         // Primary key
	Email        string    `json:"email" db:"email"`             // Unique email, used as the login key
	Username     string    `json:"username" db:"username"`       // Display name
	PasswordHash string    `json:"-" db:"password_hash"`         // Hashed password, never serialized
	IsLandlord   bool      `json:"is_landlord" db:"is_landlord"` // Landlord role flag
	IsTenant     bool      `json:"is_tenant" db:"is_tenant"`     // Tenant role flag
	CreatedAt    time.Time `json:"created_at" db:"created_at"`   // Creation timestamp
	UpdatedAt    time.Time `json:"updated_at" db:"updated_at"`   // Last update timestamp
}
