package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/andreionishchenko/Final-proekt-D/internal/logger"
	"github.com/andreionishchenko/Final-proekt-D/internal/services"
)

// Refresher defines the interface that the refresh service must implement.
type Refresher interface {
	Refresh(ctx context.Context, refreshToken string) (access, refresh string, err error)
}

// RefreshRequest represents the JSON body for a token refresh
// swagger:model RefreshRequest
type RefreshRequest struct {
	// Refresh token
	// required: true
	// default: REFRESH_TOKEN
	Refresh string `json:"refresh"`
}

// RefreshResponse represents a successful token refresh response
// swagger:model RefreshResponse
type RefreshResponse struct {
	// New access token
	// default: ACCESS_TOKEN
	Access string `json:"access"`

	// New refresh token
	// default: REFRESH_TOKEN
	Refresh string `json:"refresh"`
}

// NewRefreshHandler returns an HTTP handler for exchanging a refresh token.
// @Summary Refresh tokens
// @Description Exchanges a valid refresh token for a new access/refresh pair. The pair is rotated; the previous refresh token stops working.
// @Tags auth
// @Accept json
// @Produce json
// @Param refreshRequest body handlers.RefreshRequest true "Refresh Request"
// @Success 200 {object} handlers.RefreshResponse "New token pair"
// @Failure 400 {object} handlers.ErrorResponse "Invalid request body"
// @Failure 401 {object} handlers.ErrorResponse "Invalid refresh token"
// @Router /token/refresh [post]
func NewRefreshHandler(svc Refresher, accessExp time.Duration, cookieSecure bool) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req RefreshRequest

		if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.Refresh == "" {
			writeError(w, http.StatusBadRequest, "Invalid request body")
			return
		}

		access, refresh, err := svc.Refresh(r.Context(), req.Refresh)
		if err != nil {
			switch {
			case errors.Is(err, services.ErrInvalidRefresh):
				writeError(w, http.StatusUnauthorized, "Invalid refresh token")
			default:
				logger.Log.Errorw("internal server error", "err", err)
				writeError(w, http.StatusInternalServerError, "Internal server error")
			}
			return
		}

		setAccessCookie(w, access, accessExp, cookieSecure)
		writeJSON(w, http.StatusOK, RefreshResponse{
			Access:  access,
			Refresh: refresh,
		})
	}
}
