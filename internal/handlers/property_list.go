package handlers

import (
	"context"
	"net/http"
	"net/url"
	"strconv"

	"github.com/andreionishchenko/Final-proekt-D/internal/jwt"
	"github.com/andreionishchenko/Final-proekt-D/internal/logger"
	"github.com/andreionishchenko/Final-proekt-D/internal/models"
)

// PropertyLister defines the interface that the service must implement.
type PropertyLister interface {
	List(ctx context.Context, claims *jwt.Claims, filter models.PropertyFilter) ([]models.PropertyDB, error)
}

func queryString(values url.Values, key string) *string {
	if !values.Has(key) {
		return nil
	}
	v := values.Get(key)
	return &v
}

func queryInt(values url.Values, key string) (*int, error) {
	if !values.Has(key) {
		return nil, nil
	}
	n, err := strconv.Atoi(values.Get(key))
	if err != nil {
		return nil, err
	}
	return &n, nil
}

// parsePropertyFilter builds a PropertyFilter from the request query.
func parsePropertyFilter(r *http.Request) (models.PropertyFilter, error) {
	values := r.URL.Query()

	filter := models.PropertyFilter{
		PriceGTE:         queryString(values, "price__gte"),
		PriceLTE:         queryString(values, "price__lte"),
		Location:         queryString(values, "location"),
		LocationContains: queryString(values, "location__icontains"),
		PropertyType:     queryString(values, "property_type"),
		Search:           queryString(values, "search"),
		Ordering:         values.Get("ordering"),
	}

	var err error
	if filter.NumRoomsGTE, err = queryInt(values, "num_rooms__gte"); err != nil {
		return filter, err
	}
	if filter.NumRoomsLTE, err = queryInt(values, "num_rooms__lte"); err != nil {
		return filter, err
	}

	return filter, nil
}

// NewPropertyListHandler returns an HTTP handler for listing properties.
// @Summary List properties
// @Description Lists properties with optional filters (price__gte, price__lte, location, location__icontains, num_rooms__gte, num_rooms__lte, property_type), free-text search over title and description, and ordering by price, created_at or views_count ("-" prefix for descending). A non-empty search is recorded in the caller's search history.
// @Tags properties
// @Produce json
// @Success 200 {array} models.PropertyDB "Matching properties"
// @Failure 400 {object} handlers.ErrorResponse "Malformed filter value"
// @Failure 401 {object} handlers.ErrorResponse "Unauthorized"
// @Router /properties [get]
// @Security BearerAuth
func NewPropertyListHandler(svc PropertyLister, tokener Tokener) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims := claimsFromRequest(w, r, tokener)
		if claims == nil {
			return
		}

		filter, err := parsePropertyFilter(r)
		if err != nil {
			writeError(w, http.StatusBadRequest, "Malformed filter value")
			return
		}

		properties, err := svc.List(r.Context(), claims, filter)
		if err != nil {
			logger.Log.Errorw("failed to list properties", "err", err)
			writeError(w, http.StatusInternalServerError, "Internal server error")
			return
		}
		if properties == nil {
			properties = []models.PropertyDB{}
		}

		writeJSON(w, http.StatusOK, properties)
	}
}
