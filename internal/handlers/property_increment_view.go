package handlers

import (
	"context"
	"errors"
	"net/http"

	"github.com/andreionishchenko/Final-proekt-D/internal/jwt"
	"github.com/andreionishchenko/Final-proekt-D/internal/logger"
	"github.com/andreionishchenko/Final-proekt-D/internal/services"
	"github.com/google/uuid"
)

// ViewIncrementer defines the interface that the service must implement.
type ViewIncrementer interface {
	IncrementView(ctx context.Context, claims *jwt.Claims, propertyID uuid.UUID) (int, error)
}

// IncrementViewResponse represents the result of a view-increment action
// swagger:model IncrementViewResponse
type IncrementViewResponse struct {
	// Status message
	// default: view count incremented
	Status string `json:"status"`

	// View counter after the increment
	// default: 1
	ViewsCount int `json:"views_count"`
}

// NewIncrementViewHandler returns an HTTP handler for recording a property view.
// @Summary Record a property view
// @Description Increments the listing's view counter and appends a view audit record for the caller. Not idempotent: repeated calls accumulate.
// @Tags properties
// @Produce json
// @Param id path string true "Property ID"
// @Success 200 {object} handlers.IncrementViewResponse "New counter value"
// @Failure 401 {object} handlers.ErrorResponse "Unauthorized"
// @Failure 404 {object} handlers.ErrorResponse "Property not found"
// @Router /properties/{id}/increment_view [post]
// @Security BearerAuth
func NewIncrementViewHandler(svc ViewIncrementer, tokener Tokener) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims := claimsFromRequest(w, r, tokener)
		if claims == nil {
			return
		}

		propertyID, ok := propertyIDFromURL(w, r)
		if !ok {
			return
		}

		viewsCount, err := svc.IncrementView(r.Context(), claims, propertyID)
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

		writeJSON(w, http.StatusOK, IncrementViewResponse{
			Status:     "view count incremented",
			ViewsCount: viewsCount,
		})
	}
}
