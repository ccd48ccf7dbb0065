package handlers

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/andreionishchenko/Final-proekt-D/internal/jwt"
	"github.com/andreionishchenko/Final-proekt-D/internal/logger"
)

// Tokener extracts and parses the caller's access token. Implemented by
// the jwt package and shared by every authenticated handler.
type Tokener interface {
	GetTokenFromRequest(ctx context.Context, r *http.Request) (string, error)
	GetClaims(ctx context.Context, tokenString string) (*jwt.Claims, error)
}

// ErrorResponse is the uniform error body
// swagger:model ErrorResponse
type ErrorResponse struct {
	// Error message
	// default: Internal server error
	Error string `json:"error"`
}

func writeError(w http.ResponseWriter, code int, msg string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	json.NewEncoder(w).Encode(ErrorResponse{Error: msg})
}

func writeJSON(w http.ResponseWriter, code int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	json.NewEncoder(w).Encode(body)
}

// claimsFromRequest resolves the caller's claims, rejecting refresh tokens
// used in place of access tokens. On failure it writes a 401 response and
// returns nil.
func claimsFromRequest(w http.ResponseWriter, r *http.Request, tokener Tokener) *jwt.Claims {
	ctx := r.Context()

	tokenStr, err := tokener.GetTokenFromRequest(ctx, r)
	if err != nil {
		logger.Log.Errorw("unauthorized request: missing token", "err", err)
		writeError(w, http.StatusUnauthorized, "Unauthorized")
		return nil
	}

	claims, err := tokener.GetClaims(ctx, tokenStr)
	if err != nil {
		logger.Log.Errorw("failed to parse token claims", "err", err)
		writeError(w, http.StatusUnauthorized, "Unauthorized")
		return nil
	}
	if claims.TokenType != jwt.TokenTypeAccess {
		logger.Log.Errorw("refresh token used as access token", "user_id", claims.UserID)
		writeError(w, http.StatusUnauthorized, "Unauthorized")
		return nil
	}

	return claims
}
