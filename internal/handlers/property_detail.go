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
	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
)

// PropertyGetter defines the read interface for one listing.
type PropertyGetter interface {
	Get(ctx context.Context, propertyID uuid.UUID) (*models.PropertyDB, error)
}

// PropertyUpdater defines the update interface for one listing.
type PropertyUpdater interface {
	Update(ctx context.Context, claims *jwt.Claims, propertyID uuid.UUID, update models.PropertyUpdate) (*models.PropertyDB, error)
}

// PropertyDeleter defines the delete interface for one listing.
type PropertyDeleter interface {
	Delete(ctx context.Context, claims *jwt.Claims, propertyID uuid.UUID) error
}

// UpdatePropertyRequest represents the JSON body for a partial update.
// Omitted fields keep their current values.
// swagger:model UpdatePropertyRequest
type UpdatePropertyRequest struct {
	// Listing title
	Title *string `json:"title,omitempty"`

	// Description
	Description *string `json:"description,omitempty"`

	// Location
	Location *string `json:"location,omitempty"`

	// Price with two fractional digits
	Price *string `json:"price,omitempty"`

	// Room count
	NumRooms *int `json:"num_rooms,omitempty"`

	// Property type: apartment or house
	PropertyType *string `json:"property_type,omitempty"`

	// Soft-deactivation flag
	IsActive *bool `json:"is_active,omitempty"`

	// Availability flag
	Available *bool `json:"available,omitempty"`
}

func propertyIDFromURL(w http.ResponseWriter, r *http.Request) (uuid.UUID, bool) {
	propertyID, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, http.StatusNotFound, "Property not found")
		return uuid.Nil, false
	}
	return propertyID, true
}

// NewPropertyGetHandler returns an HTTP handler for reading one listing.
// @Summary Get a property
// @Tags properties
// @Produce json
// @Param id path string true "Property ID"
// @Success 200 {object} models.PropertyDB "The listing"
// @Failure 401 {object} handlers.ErrorResponse "Unauthorized"
// @Failure 404 {object} handlers.ErrorResponse "Property not found"
// @Router /properties/{id} [get]
// @Security BearerAuth
func NewPropertyGetHandler(svc PropertyGetter, tokener Tokener) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims := claimsFromRequest(w, r, tokener)
		if claims == nil {
			return
		}

		propertyID, ok := propertyIDFromURL(w, r)
		if !ok {
			return
		}

		property, err := svc.Get(r.Context(), propertyID)
		if err != nil {
			switch {
			case errors.Is(err, services.ErrPropertyNotFound):
				writeError(w, http.StatusNotFound, "Property not found")
			default:
				logger.Log.Errorw("internal server error", "err", err)
				writeError(w, http.StatusInternalServerError, "Internal server error")
			}
			return
		}

		writeJSON(w, http.StatusOK, property)
	}
}

// NewPropertyUpdateHandler returns an HTTP handler for updating one listing.
// @Summary Update a property
// @Description Partial update. The caller must be a landlord and own the listing.
// @Tags properties
// @Accept json
// @Produce json
// @Param id path string true "Property ID"
// @Param updatePropertyRequest body handlers.UpdatePropertyRequest true "Fields to change"
// @Success 200 {object} models.PropertyDB "Updated listing"
// @Failure 400 {object} handlers.ErrorResponse "Invalid listing fields"
// @Failure 401 {object} handlers.ErrorResponse "Unauthorized"
// @Failure 403 {object} handlers.ErrorResponse "Not the owner"
// @Failure 404 {object} handlers.ErrorResponse "Property not found"
// @Router /properties/{id} [patch]
// @Security BearerAuth
func NewPropertyUpdateHandler(svc PropertyUpdater, tokener Tokener) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims := claimsFromRequest(w, r, tokener)
		if claims == nil {
			return
		}

		propertyID, ok := propertyIDFromURL(w, r)
		if !ok {
			return
		}

		var req UpdatePropertyRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeError(w, http.StatusBadRequest, "Invalid request body")
			return
		}

		property, err := svc.Update(r.Context(), claims, propertyID, models.PropertyUpdate{
			Title:        req.Title,
			Description:  req.Description,
			Location:     req.Location,
			Price:        req.Price,
			NumRooms:     req.NumRooms,
			PropertyType: req.PropertyType,
			IsActive:     req.IsActive,
			Available:    req.Available,
		})
		if err != nil {
			switch {
			case errors.Is(err, services.ErrNotLandlord), errors.Is(err, services.ErrNotOwner):
				writeError(w, http.StatusForbidden, "You do not own this listing")
			case errors.Is(err, services.ErrPropertyNotFound):
				writeError(w, http.StatusNotFound, "Property not found")
			case errors.Is(err, services.ErrInvalidProperty):
				writeError(w, http.StatusBadRequest, "Invalid listing fields")
			default:
				logger.Log.Errorw("internal server error", "err", err)
				writeError(w, http.StatusInternalServerError, "Internal server error")
			}
			return
		}

		writeJSON(w, http.StatusOK, property)
	}
}

// NewPropertyDeleteHandler returns an HTTP handler for deleting one listing.
// @Summary Delete a property
// @Description The caller must be a landlord and own the listing.
// @Tags properties
// @Param id path string true "Property ID"
// @Success 204 "Deleted"
// @Failure 401 {object} handlers.ErrorResponse "Unauthorized"
// @Failure 403 {object} handlers.ErrorResponse "Not the owner"
// @Failure 404 {object} handlers.ErrorResponse "Property not found"
// @Router /properties/{id} [delete]
// @Security BearerAuth
func NewPropertyDeleteHandler(svc PropertyDeleter, tokener Tokener) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims := claimsFromRequest(w, r, tokener)
		if claims == nil {
			return
		}

		propertyID, ok := propertyIDFromURL(w, r)
		if !ok {
			return
		}

		if err := svc.Delete(r.Context(), claims, propertyID); err != nil {
			switch {
			case errors.Is(err, services.ErrNotLandlord), errors.Is(err, services.ErrNotOwner):
				writeError(w, http.StatusForbidden, "You do not own this listing")
			case errors.Is(err, services.ErrPropertyNotFound):
				writeError(w, http.StatusNotFound, "Property not found")
			default:
				logger.Log.Errorw("internal server error", "err", err)
				writeError(w, http.StatusInternalServerError, "Internal server error")
			}
			return
		}

		w.WriteHeader(http.StatusNoContent)
	}
}
