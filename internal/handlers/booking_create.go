package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/andreionishchenko/Final-proekt-D/internal/jwt"
	"github.com/andreionishchenko/Final-proekt-D/internal/logger"
	"github.com/andreionishchenko/Final-proekt-D/internal/models"
	"github.com/andreionishchenko/Final-proekt-D/internal/services"
	"github.com/google/uuid"
)

// bookingDateLayout is the wire format for booking dates.
const bookingDateLayout = "2006-01-02"

// BookingCreator defines the interface that the service must implement.
type BookingCreator interface {
	Create(ctx context.Context, claims *jwt.Claims, propertyID uuid.UUID, startDate, endDate time.Time) (*models.BookingDB, error)
}

// CreateBookingRequest represents the JSON body for creating a booking
// swagger:model CreateBookingRequest
type CreateBookingRequest struct {
	// Property to book
	// required: true
	PropertyID uuid.UUID `json:"property_id"`

	// Check-in date, inclusive
	// required: true
	// default: 2024-06-01
	StartDate string `json:"start_date"`

	// Check-out date, exclusive
	// required: true
	// default: 2024-06-05
	EndDate string `json:"end_date"`
}

// NewBookingCreateHandler returns an HTTP handler for creating a booking.
// @Summary Create a booking
// @Description Books the property for the half-open range [start_date, end_date). The range must not intersect any existing booking on the property, whatever its status; an overlap is rejected with 409 and nothing is written. The new booking starts pending.
// @Tags bookings
// @Accept json
// @Produce json
// @Param createBookingRequest body handlers.CreateBookingRequest true "New booking"
// @Success 201 {object} models.BookingDB "Created booking"
// @Failure 400 {object} handlers.ErrorResponse "Malformed dates"
// @Failure 401 {object} handlers.ErrorResponse "Unauthorized"
// @Failure 404 {object} handlers.ErrorResponse "Property not found"
// @Failure 409 {object} handlers.ErrorResponse "Dates conflict with an existing booking"
// @Router /bookings [post]
// @Security BearerAuth
func NewBookingCreateHandler(svc BookingCreator, tokener Tokener) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims := claimsFromRequest(w, r, tokener)
		if claims == nil {
			return
		}

		var req CreateBookingRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeError(w, http.StatusBadRequest, "Invalid request body")
			return
		}

		startDate, err := time.Parse(bookingDateLayout, req.StartDate)
		if err != nil {
			writeError(w, http.StatusBadRequest, "Malformed start_date, expected YYYY-MM-DD")
			return
		}
		endDate, err := time.Parse(bookingDateLayout, req.EndDate)
		if err != nil {
			writeError(w, http.StatusBadRequest, "Malformed end_date, expected YYYY-MM-DD")
			return
		}

		booking, err := svc.Create(r.Context(), claims, req.PropertyID, startDate, endDate)
		if err != nil {
			switch {
			case errors.Is(err, services.ErrInvalidBookingDates):
				writeError(w, http.StatusBadRequest, "start_date must be before end_date")
			case errors.Is(err, services.ErrPropertyNotFound):
				writeError(w, http.StatusNotFound, "Property not found")
			case errors.Is(err, services.ErrBookingConflict):
				writeError(w, http.StatusConflict, "Dates conflict with an existing booking")
			default:
				logger.Log.Errorw("internal server error", "err", err)
				writeError(w, http.StatusInternalServerError, "Internal server error")
			}
			return
		}

		writeJSON(w, http.StatusCreated, booking)
	}
}
