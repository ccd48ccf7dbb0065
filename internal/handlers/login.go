package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/andreionishchenko/Final-proekt-D/internal/jwt"
	"github.com/andreionishchenko/Final-proekt-D/internal/logger"
	"github.com/andreionishchenko/Final-proekt-D/internal/services"
)

// Loginer defines the interface that the login service must implement.
type Loginer interface {
	Login(ctx context.Context, email, password string) (access, refresh string, err error)
}

// LoginRequest represents the JSON body for user login
// swagger:model LoginRequest
type LoginRequest struct {
	// Email
	// required: true
	// default: john@example.com
	Email string `json:"email"`

	// Password
	// required: true
	// default: secret123
	Password string `json:"password"`
}

// LoginResponse represents a successful login response
// swagger:model LoginResponse
type LoginResponse struct {
	// Access token
	// default: ACCESS_TOKEN
	Access string `json:"access"`

	// Refresh token
	// default: REFRESH_TOKEN
	Refresh string `json:"refresh"`
}

// setAccessCookie sets the http-only access_token cookie used as the
// fallback credential transport.
func setAccessCookie(w http.ResponseWriter, access string, maxAge time.Duration, secure bool) {
	http.SetCookie(w, &http.Cookie{
		Name:     jwt.AccessTokenCookie,
		Value:    access,
		Path:     "/",
		MaxAge:   int(maxAge.Seconds()),
		HttpOnly: true,
		Secure:   secure,
		SameSite: http.SameSiteStrictMode,
	})
}

// NewLoginHandler returns an HTTP handler for user login.
// @Summary User login
// @Description Authenticate by email and password. Returns an access/refresh token pair and sets the http-only access_token cookie. Unknown email and wrong password are not distinguished.
// @Tags auth
// @Accept json
// @Produce json
// @Param loginRequest body handlers.LoginRequest true "Login Request"
// @Success 200 {object} handlers.LoginResponse "Token pair returned"
// @Failure 400 {object} handlers.ErrorResponse "Invalid request body"
// @Failure 401 {object} handlers.ErrorResponse "Invalid email or password"
// @Router /login [post]
func NewLoginHandler(svc Loginer, accessExp time.Duration, cookieSecure bool) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req LoginRequest

		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeError(w, http.StatusBadRequest, "Invalid request body")
			return
		}

		access, refresh, err := svc.Login(r.Context(), req.Email, req.Password)
		if err != nil {
			switch {
			case errors.Is(err, services.ErrInvalidCredentials):
				writeError(w, http.StatusUnauthorized, "Invalid email or password")
			default:
				logger.Log.Errorw("internal server error", "err", err)
				writeError(w, http.StatusInternalServerError, "Internal server error")
			}
			return
		}

		setAccessCookie(w, access, accessExp, cookieSecure)
		writeJSON(w, http.StatusOK, LoginResponse{
			Access:  access,
			Refresh: refresh,
		})
	}
}
