package handlers

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/andreionishchenko/Final-proekt-D/internal/jwt"
	"github.com/andreionishchenko/Final-proekt-D/internal/logger"
	"github.com/andreionishchenko/Final-proekt-D/internal/models"
)

// SearchHistorySaver defines the create interface that the service must implement.
type SearchHistorySaver interface {
	SaveSearch(ctx context.Context, claims *jwt.Claims, keyword string) (*models.SearchHistoryDB, error)
}

// SearchHistoryLister defines the list interface that the service must implement.
type SearchHistoryLister interface {
	ListSearches(ctx context.Context, claims *jwt.Claims) ([]models.SearchHistoryDB, error)
}

// CreateSearchHistoryRequest represents the JSON body for appending a search record
// swagger:model CreateSearchHistoryRequest
type CreateSearchHistoryRequest struct {
	// Search keyword
	// required: true
	// default: berlin apartment
	Keyword string `json:"keyword"`
}

// NewSearchHistoryCreateHandler returns an HTTP handler for appending a search record.
// @Summary Record a search
// @Description Appends a search record stamped with the caller and the current time.
// @Tags telemetry
// @Accept json
// @Produce json
// @Param createSearchHistoryRequest body handlers.CreateSearchHistoryRequest true "Search keyword"
// @Success 201 {object} models.SearchHistoryDB "Created record"
// @Failure 400 {object} handlers.ErrorResponse "Keyword missing"
// @Failure 401 {object} handlers.ErrorResponse "Unauthorized"
// @Router /search-history [post]
// @Security BearerAuth
func NewSearchHistoryCreateHandler(svc SearchHistorySaver, tokener Tokener) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims := claimsFromRequest(w, r, tokener)
		if claims == nil {
			return
		}

		var req CreateSearchHistoryRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.Keyword == "" {
			writeError(w, http.StatusBadRequest, "Keyword is required")
			return
		}

		record, err := svc.SaveSearch(r.Context(), claims, req.Keyword)
		if err != nil {
			logger.Log.Errorw("failed to save search record", "err", err)
			writeError(w, http.StatusInternalServerError, "Internal server error")
			return
		}

		writeJSON(w, http.StatusCreated, record)
	}
}

// NewSearchHistoryListHandler returns an HTTP handler for listing the caller's searches.
// @Summary List own search history
// @Tags telemetry
// @Produce json
// @Success 200 {array} models.SearchHistoryDB "Own records, newest first"
// @Failure 401 {object} handlers.ErrorResponse "Unauthorized"
// @Router /search-history [get]
// @Security BearerAuth
func NewSearchHistoryListHandler(svc SearchHistoryLister, tokener Tokener) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims := claimsFromRequest(w, r, tokener)
		if claims == nil {
			return
		}

		records, err := svc.ListSearches(r.Context(), claims)
		if err != nil {
			logger.Log.Errorw("failed to list search records", "err", err)
			writeError(w, http.StatusInternalServerError, "Internal server error")
			return
		}
		if records == nil {
			records = []models.SearchHistoryDB{}
		}

		writeJSON(w, http.StatusOK, records)
	}
}
