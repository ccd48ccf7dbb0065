package handlers

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/andreionishchenko/Final-proekt-D/internal/jwt"
	"github.com/andreionishchenko/Final-proekt-D/internal/logger"
	"github.com/andreionishchenko/Final-proekt-D/internal/models"
	"github.com/google/uuid"
)

// PropertyViewSaver defines the create interface that the service must implement.
type PropertyViewSaver interface {
	SaveView(ctx context.Context, claims *jwt.Claims, propertyID uuid.UUID) (*models.PropertyViewDB, error)
}

// PropertyViewLister defines the list interface that the service must implement.
type PropertyViewLister interface {
	ListViews(ctx context.Context, claims *jwt.Claims) ([]models.PropertyViewDB, error)
}

// CreatePropertyViewRequest represents the JSON body for appending a view record
// swagger:model CreatePropertyViewRequest
type CreatePropertyViewRequest struct {
	// Viewed property
	// required: true
	PropertyID uuid.UUID `json:"property_id"`
}

// NewPropertyViewCreateHandler returns an HTTP handler for appending a view record.
// @Summary Record a property view event
// @Description Appends a view record stamped with the caller and the current time.
// @Tags telemetry
// @Accept json
// @Produce json
// @Param createPropertyViewRequest body handlers.CreatePropertyViewRequest true "Viewed property"
// @Success 201 {object} models.PropertyViewDB "Created record"
// @Failure 400 {object} handlers.ErrorResponse "Property id missing"
// @Failure 401 {object} handlers.ErrorResponse "Unauthorized"
// @Router /property-views [post]
// @Security BearerAuth
func NewPropertyViewCreateHandler(svc PropertyViewSaver, tokener Tokener) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims := claimsFromRequest(w, r, tokener)
		if claims == nil {
			return
		}

		var req CreatePropertyViewRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.PropertyID == uuid.Nil {
			writeError(w, http.StatusBadRequest, "property_id is required")
			return
		}

		record, err := svc.SaveView(r.Context(), claims, req.PropertyID)
		if err != nil {
			logger.Log.Errorw("failed to save view record", "err", err)
			writeError(w, http.StatusInternalServerError, "Internal server error")
			return
		}

		writeJSON(w, http.StatusCreated, record)
	}
}

// NewPropertyViewListHandler returns an HTTP handler for listing the caller's view records.
// @Summary List own property views
// @Tags telemetry
// @Produce json
// @Success 200 {array} models.PropertyViewDB "Own records, newest first"
// @Failure 401 {object} handlers.ErrorResponse "Unauthorized"
// @Router /property-views [get]
// @Security BearerAuth
func NewPropertyViewListHandler(svc PropertyViewLister, tokener Tokener) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims := claimsFromRequest(w, r, tokener)
		if claims == nil {
			return
		}

		records, err := svc.ListViews(r.Context(), claims)
		if err != nil {
			logger.Log.Errorw("failed to list view records", "err", err)
			writeError(w, http.StatusInternalServerError, "Internal server error")
			return
		}
		if records == nil {
			records = []models.PropertyViewDB{}
		}

		writeJSON(w, http.StatusOK, records)
	}
}
