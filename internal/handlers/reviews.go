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
	"github.com/google/uuid"
)

// ReviewCreator defines the create interface that the service must implement.
type ReviewCreator interface {
	Create(ctx context.Context, claims *jwt.Claims, propertyID uuid.UUID, rating int, comment string) (*models.ReviewDB, error)
}

// ReviewLister defines the list interface that the service must implement.
type ReviewLister interface {
	List(ctx context.Context, propertyID uuid.UUID) ([]models.ReviewDB, error)
}

// CreateReviewRequest represents the JSON body for creating a review
// swagger:model CreateReviewRequest
type CreateReviewRequest struct {
	// Rating from 1 to 5
	// required: true
	// default: 5
	Rating int `json:"rating"`

	// Free-text comment
	// default: Great stay!
	Comment string `json:"comment"`
}

// NewReviewCreateHandler returns an HTTP handler for creating a review.
// @Summary Create a review
// @Description Reviews the property in the URL path. The rating must be 1..5 and the caller must have a booking on the property with an end date in the past. Multiple reviews per user are allowed.
// @Tags reviews
// @Accept json
// @Produce json
// @Param id path string true "Property ID"
// @Param createReviewRequest body handlers.CreateReviewRequest true "New review"
// @Success 201 {object} models.ReviewDB "Created review"
// @Failure 400 {object} handlers.ErrorResponse "Rating out of range"
// @Failure 401 {object} handlers.ErrorResponse "Unauthorized"
// @Failure 403 {object} handlers.ErrorResponse "No completed stay on this property"
// @Failure 404 {object} handlers.ErrorResponse "Property not found"
// @Router /properties/{id}/reviews [post]
// @Security BearerAuth
func NewReviewCreateHandler(svc ReviewCreator, tokener Tokener) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims := claimsFromRequest(w, r, tokener)
		if claims == nil {
			return
		}

		propertyID, ok := propertyIDFromURL(w, r)
		if !ok {
			return
		}

		var req CreateReviewRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeError(w, http.StatusBadRequest, "Invalid request body")
			return
		}

		review, err := svc.Create(r.Context(), claims, propertyID, req.Rating, req.Comment)
		if err != nil {
			switch {
			case errors.Is(err, services.ErrInvalidRating):
				writeError(w, http.StatusBadRequest, "Rating must be between 1 and 5")
			case errors.Is(err, services.ErrPropertyNotFound):
				writeError(w, http.StatusNotFound, "Property not found")
			case errors.Is(err, services.ErrNotEligible):
				writeError(w, http.StatusForbidden, "You need a completed stay to review this property")
			default:
				logger.Log.Errorw("internal server error", "err", err)
				writeError(w, http.StatusInternalServerError, "Internal server error")
			}
			return
		}

		writeJSON(w, http.StatusCreated, review)
	}
}

// NewReviewListHandler returns an HTTP handler for listing a property's reviews.
// @Summary List reviews of a property
// @Description Any authenticated caller may read any property's reviews.
// @Tags reviews
// @Produce json
// @Param id path string true "Property ID"
// @Success 200 {array} models.ReviewDB "Reviews, newest first"
// @Failure 401 {object} handlers.ErrorResponse "Unauthorized"
// @Failure 404 {object} handlers.ErrorResponse "Property not found"
// @Router /properties/{id}/reviews [get]
// @Security BearerAuth
func NewReviewListHandler(svc ReviewLister, tokener Tokener) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims := claimsFromRequest(w, r, tokener)
		if claims == nil {
			return
		}

		propertyID, ok := propertyIDFromURL(w, r)
		if !ok {
			return
		}

		reviews, err := svc.List(r.Context(), propertyID)
		if err != nil {
			logger.Log.Errorw("failed to list reviews", "err", err)
			writeError(w, http.StatusInternalServerError, "Internal server error")
			return
		}
		if reviews == nil {
			reviews = []models.ReviewDB{}
		}

		writeJSON(w, http.StatusOK, reviews)
	}
}
