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

// BookingUpdater defines the interface that the service must implement.
type BookingUpdater interface {
	UpdateStatus(ctx context.Context, claims *jwt.Claims, bookingID uuid.UUID, status string) (*models.BookingDB, error)
}

// UpdateBookingRequest represents the JSON body for a status transition
// swagger:model UpdateBookingRequest
type UpdateBookingRequest struct {
	// New status: pending, confirmed or cancelled
	// required: true
	// default: confirmed
	Status string `json:"status"`
}

// NewBookingUpdateHandler returns an HTTP handler for booking status transitions.
// @Summary Update a booking status
// @Description Sets the booking status. Only the owner of the booked property may do this; the booking's author is rejected. Any of the three statuses may be set.
// @Tags bookings
// @Accept json
// @Produce json
// @Param id path string true "Booking ID"
// @Param updateBookingRequest body handlers.UpdateBookingRequest true "New status"
// @Success 200 {object} models.BookingDB "Updated booking"
// @Failure 400 {object} handlers.ErrorResponse "Invalid status"
// @Failure 401 {object} handlers.ErrorResponse "Unauthorized"
// @Failure 403 {object} handlers.ErrorResponse "Caller does not own the property"
// @Failure 404 {object} handlers.ErrorResponse "Booking not found"
// @Router /bookings/{id} [patch]
// @Security BearerAuth
func NewBookingUpdateHandler(svc BookingUpdater, tokener Tokener) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims := claimsFromRequest(w, r, tokener)
		if claims == nil {
			return
		}

		bookingID, err := uuid.Parse(chi.URLParam(r, "id"))
		if err != nil {
			writeError(w, http.StatusNotFound, "Booking not found")
			return
		}

		var req UpdateBookingRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeError(w, http.StatusBadRequest, "Invalid request body")
			return
		}

		booking, err := svc.UpdateStatus(r.Context(), claims, bookingID, req.Status)
		if err != nil {
			switch {
			case errors.Is(err, services.ErrInvalidBookingStatus):
				writeError(w, http.StatusBadRequest, "Invalid booking status")
			case errors.Is(err, services.ErrBookingNotFound), errors.Is(err, services.ErrPropertyNotFound):
				writeError(w, http.StatusNotFound, "Booking not found")
			case errors.Is(err, services.ErrNotOwner):
				writeError(w, http.StatusForbidden, "You do not have permission to confirm or cancel this booking")
			default:
				logger.Log.Errorw("internal server error", "err", err)
				writeError(w, http.StatusInternalServerError, "Internal server error")
			}
			return
		}

		writeJSON(w, http.StatusOK, booking)
	}
}
