package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/andreionishchenko/Final-proekt-D/internal/logger"
	"github.com/andreionishchenko/Final-proekt-D/internal/services"
)

// Registerer defines the interface that the service must implement.
type Registerer interface {
	Register(ctx context.Context, email, username, password, group string) error
}

// RegisterRequest represents the JSON body for user registration
// swagger:model RegisterRequest
type RegisterRequest struct {
	// Email
	// required: true
	// default: john@example.com
	Email string `json:"email"`

	// Username
	// required: true
	// default: john_doe
	Username string `json:"username"`

	// Password
	// required: true
	// default: secret123
	Password string `json:"password"`

	// Role group to assign: Landlord or Tenant. Tenant when omitted.
	// default: Tenant
	Group string `json:"group,omitempty"`
}

// RegisterResponse represents a successful registration response
// swagger:model RegisterResponse
type RegisterResponse struct {
	// Success message
	// default: User registered successfully
	Message string `json:"message"`
}

// NewRegisterHandler returns an HTTP handler for user registration.
// @Summary Register a new user
// @Description Creates a new user account. Email must be unique. The optional group field assigns the Landlord or Tenant role; tenants are the default.
// @Tags auth
// @Accept json
// @Produce json
// @Param registerRequest body handlers.RegisterRequest true "User registration request"
// @Success 201 {object} handlers.RegisterResponse "User successfully registered"
// @Failure 400 {object} handlers.ErrorResponse "Invalid request body"
// @Failure 404 {object} handlers.ErrorResponse "Unknown role group"
// @Failure 409 {object} handlers.ErrorResponse "Email already exists"
// @Router /register [post]
func NewRegisterHandler(svc Registerer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req RegisterRequest

		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeError(w, http.StatusBadRequest, "Invalid request body")
			return
		}
		if req.Email == "" || req.Username == "" || req.Password == "" {
			writeError(w, http.StatusBadRequest, "Email, username and password are required")
			return
		}

		err := svc.Register(r.Context(), req.Email, req.Username, req.Password, req.Group)
		if err != nil {
			switch {
			case errors.Is(err, services.ErrEmailAlreadyExists):
				writeError(w, http.StatusConflict, "Email already exists")
			case errors.Is(err, services.ErrRoleNotFound):
				writeError(w, http.StatusNotFound, "Role group not found")
			default:
				logger.Log.Errorw("internal server error", "err", err)
				writeError(w, http.StatusInternalServerError, "Internal server error")
			}
			return
		}

		writeJSON(w, http.StatusCreated, RegisterResponse{
			Message: "User registered successfully",
		})
	}
}
