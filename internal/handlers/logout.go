package handlers

import (
	"context"
	"net/http"

	"github.com/andreionishchenko/Final-proekt-D/internal/jwt"
	"github.com/andreionishchenko/Final-proekt-D/internal/logger"
)

// Logouter defines the interface that the service must implement.
type Logouter interface {
	Logout(ctx context.Context, claims *jwt.Claims) error
}

// MessageResponse represents a plain confirmation message
// swagger:model MessageResponse
type MessageResponse struct {
	// Confirmation message
	// default: Logged out
	Message string `json:"message"`
}

func clearAccessCookie(w http.ResponseWriter, secure bool) {
	http.SetCookie(w, &http.Cookie{
		Name:     jwt.AccessTokenCookie,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   secure,
		SameSite: http.SameSiteStrictMode,
	})
}

// NewLogoutHandler returns an HTTP handler for ending a session.
// @Summary Log out
// @Description Deletes the stored refresh token, so the current pair can no longer be rotated, and clears the access_token cookie.
// @Tags auth
// @Produce json
// @Success 200 {object} handlers.MessageResponse "Logged out"
// @Failure 401 {object} handlers.ErrorResponse "Unauthorized"
// @Router /logout [post]
// @Security BearerAuth
func NewLogoutHandler(svc Logouter, tokener Tokener, cookieSecure bool) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims := claimsFromRequest(w, r, tokener)
		if claims == nil {
			return
		}

		if err := svc.Logout(r.Context(), claims); err != nil {
			logger.Log.Errorw("failed to log out", "user_id", claims.UserID, "err", err)
			writeError(w, http.StatusInternalServerError, "Internal server error")
			return
		}

		clearAccessCookie(w, cookieSecure)
		writeJSON(w, http.StatusOK, MessageResponse{Message: "Logged out"})
	}
}
