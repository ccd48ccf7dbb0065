package handlers

import (
	"context"
	"net/http"
	"net/url"
	"time"

	"github.com/andreionishchenko/Final-proekt-D/internal/jwt"
	"github.com/andreionishchenko/Final-proekt-D/internal/logger"
	"github.com/andreionishchenko/Final-proekt-D/internal/models"
	"github.com/google/uuid"
)

// BookingLister defines the interface that the service must implement.
type BookingLister interface {
	List(ctx context.Context, claims *jwt.Claims, filter models.BookingFilter) ([]models.BookingDB, error)
}

func queryDate(values url.Values, key string) (*time.Time, error) {
	if !values.Has(key) {
		return nil, nil
	}
	d, err := time.Parse(bookingDateLayout, values.Get(key))
	if err != nil {
		return nil, err
	}
	return &d, nil
}

// NewBookingListHandler returns an HTTP handler for listing bookings.
// @Summary List bookings
// @Description A landlord sees bookings on properties they own; everyone else sees their own bookings. Optional filters: property (id), status, start_date__gte, start_date__lte, end_date__gte, end_date__lte (all 2006-01-02). Optional ordering: start_date, end_date, created_at, each with a - prefix for descending.
// @Tags bookings
// @Produce json
// @Success 200 {array} models.BookingDB "Visible bookings"
// @Failure 400 {object} handlers.ErrorResponse "Malformed filter value"
// @Failure 401 {object} handlers.ErrorResponse "Unauthorized"
// @Router /bookings [get]
// @Security BearerAuth
func NewBookingListHandler(svc BookingLister, tokener Tokener) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims := claimsFromRequest(w, r, tokener)
		if claims == nil {
			return
		}

		values := r.URL.Query()
		var filter models.BookingFilter

		if values.Has("property") {
			propertyID, err := uuid.Parse(values.Get("property"))
			if err != nil {
				writeError(w, http.StatusBadRequest, "Malformed property id")
				return
			}
			filter.PropertyID = &propertyID
		}
		filter.Status = queryString(values, "status")
		filter.Ordering = values.Get("ordering")

		dateFilters := []struct {
			key  string
			dest **time.Time
		}{
			{"start_date__gte", &filter.StartDateGTE},
			{"start_date__lte", &filter.StartDateLTE},
			{"end_date__gte", &filter.EndDateGTE},
			{"end_date__lte", &filter.EndDateLTE},
		}
		for _, df := range dateFilters {
			d, err := queryDate(values, df.key)
			if err != nil {
				writeError(w, http.StatusBadRequest, "Malformed date filter")
				return
			}
			*df.dest = d
		}

		bookings, err := svc.List(r.Context(), claims, filter)
		if err != nil {
			logger.Log.Errorw("failed to list bookings", "err", err)
			writeError(w, http.StatusInternalServerError, "Internal server error")
			return
		}
		if bookings == nil {
			bookings = []models.BookingDB{}
		}

		writeJSON(w, http.StatusOK, bookings)
	}
}
