package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/andreionishchenko/Final-proekt-D/internal/jwt"
	"github.com/andreionishchenko/Final-proekt-D/internal/logger"
	"github.com/andreionishchenko/Final-proekt-D/internal/models"
	"github.com/andreionishchenko/Final-proekt-D/internal/services"
)

// PropertyCreator defines the interface that the service must implement.
type PropertyCreator interface {
	Create(ctx context.Context, claims *jwt.Claims, title, description, location, price string, numRooms int, propertyType string) (*models.PropertyDB, error)
}

// CreatePropertyRequest represents the JSON body for creating a listing
// swagger:model CreatePropertyRequest
type CreatePropertyRequest struct {
	// Listing title
	// required: true
	// default: Cozy downtown flat
	Title string `json:"title"`

	// Description
	// default: Two-room apartment near the station
	Description string `json:"description"`

	// Location
	// required: true
	// default: Berlin
	Location string `json:"location"`

	// Price with two fractional digits
	// required: true
	// default: 100.00
	Price string `json:"price"`

	// Room count
	// required: true
	// default: 2
	NumRooms int `json:"num_rooms"`

	// Property type: apartment or house
	// required: true
	// default: apartment
	PropertyType string `json:"property_type"`
}

// NewPropertyCreateHandler returns an HTTP handler for creating a listing.
// @Summary Create a property
// @Description Creates a listing owned by the caller. Landlord role required.
// @Tags properties
// @Accept json
// @Produce json
// @Param createPropertyRequest body handlers.CreatePropertyRequest true "New listing"
// @Success 201 {object} models.PropertyDB "Created listing"
// @Failure 400 {object} handlers.ErrorResponse "Invalid listing fields"
// @Failure 401 {object} handlers.ErrorResponse "Unauthorized"
// @Failure 403 {object} handlers.ErrorResponse "Caller is not a landlord"
// @Router /properties [post]
// @Security BearerAuth
func NewPropertyCreateHandler(svc PropertyCreator, tokener Tokener) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims := claimsFromRequest(w, r, tokener)
		if claims == nil {
			return
		}

		var req CreatePropertyRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeError(w, http.StatusBadRequest, "Invalid request body")
			return
		}

		property, err := svc.Create(r.Context(), claims, req.Title, req.Description, req.Location, req.Price, req.NumRooms, req.PropertyType)
		if err != nil {
			switch {
			case errors.Is(err, services.ErrNotLandlord):
				writeError(w, http.StatusForbidden, "Landlord role required")
			case errors.Is(err, services.ErrInvalidProperty):
				writeError(w, http.StatusBadRequest, "Invalid listing fields")
			default:
				logger.Log.Errorw("internal server error", "err", err)
				writeError(w, http.StatusInternalServerError, "Internal server error")
			}
			return
		}

		writeJSON(w, http.StatusCreated, property)
	}
}
