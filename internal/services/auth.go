package services

import (
	"context"
	"errors"
	"strings"

	"github.com/andreionishchenko/Final-proekt-D/internal/jwt"
	"github.com/andreionishchenko/Final-proekt-D/internal/logger"
	"github.com/andreionishchenko/Final-proekt-D/internal/models"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

// Error variables
var (
	ErrEmailAlreadyExists = errors.New("email already exists")
	ErrRoleNotFound       = errors.New("role group not found")
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrInvalidRefresh     = errors.New("invalid refresh token")
)

// UserReader defines read-only operations for users.
type UserReader interface {
	GetByEmail(ctx context.Context, email string) (*models.UserDB, error)
	GetByID(ctx context.Context, userID uuid.UUID) (*models.UserDB, error)
}

// UserWriter defines write operations for users.
type UserWriter interface {
	Save(ctx context.Context, email, username, passwordHash string, isLandlord, isTenant bool) (uuid.UUID, error)
}

// TokenPairGenerator issues access/refresh token pairs and parses tokens.
type TokenPairGenerator interface {
	GeneratePair(ctx context.Context, userID uuid.UUID, isLandlord, isTenant bool) (access, refresh string, err error)
	GetClaims(ctx context.Context, tokenString string) (*jwt.Claims, error)
}

// RefreshTokenStore keeps the currently valid refresh token per user.
type RefreshTokenStore interface {
	Save(ctx context.Context, userID uuid.UUID, token string) error
	Get(ctx context.Context, userID uuid.UUID) (string, error)
	Delete(ctx context.Context, userID uuid.UUID) error
}

// AuthService handles registration, login and token refresh.
type AuthService struct {
	reader        UserReader
	writer        UserWriter
	jwt           TokenPairGenerator
	refreshTokens RefreshTokenStore
}

// NewAuthService creates a new AuthService instance.
func NewAuthService(reader UserReader, writer UserWriter, jwt TokenPairGenerator, refreshTokens RefreshTokenStore) *AuthService {
	return &AuthService{
		reader:        reader,
		writer:        writer,
		jwt:           jwt,
		refreshTokens: refreshTokens,
	}
}

// Register creates a new user. The optional group names the role to assign:
// "Landlord" or "Tenant" (case-insensitive). Without a group the user is a
// tenant. An unknown group fails with ErrRoleNotFound before any write.
func (svc *AuthService) Register(ctx context.Context, email, username, password, group string) error {
	isLandlord, isTenant := false, true
	switch strings.ToLower(group) {
	case "":
		// default role
	case strings.ToLower(models.RoleLandlord):
		isLandlord, isTenant = true, false
	case strings.ToLower(models.RoleTenant):
		// explicit default
	default:
		logger.Log.Errorw("unknown role group", "group", group)
		return ErrRoleNotFound
	}

	user, err := svc.reader.GetByEmail(ctx, email)
	if err != nil {
		logger.Log.Errorw("failed to check user exists", "err", err)
		return err
	}
	if user != nil {
		logger.Log.Errorw("email already exists", "email", email)
		return ErrEmailAlreadyExists
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		logger.Log.Errorw("failed to hash password", "err", err)
		return err
	}

	if _, err := svc.writer.Save(ctx, email, username, string(hashedPassword), isLandlord, isTenant); err != nil {
		logger.Log.Errorw("failed to save user", "err", err)
		return err
	}

	return nil
}

// Login authenticates a user by email and password and returns a token pair.
// Unknown email and wrong password are indistinguishable to the caller.
func (svc *AuthService) Login(ctx context.Context, email, password string) (access string, refresh string, err error) {
	user, err := svc.reader.GetByEmail(ctx, email)
	if err != nil {
		logger.Log.Errorw("failed to get user", "err", err)
		return "", "", err
	}
	if user == nil {
		logger.Log.Errorw("login for unknown email", "email", email)
		return "", "", ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		logger.Log.Errorw("invalid credentials", "email", email)
		return "", "", ErrInvalidCredentials
	}

	access, refresh, err = svc.jwt.GeneratePair(ctx, user.UserID, user.IsLandlord, user.IsTenant)
	if err != nil {
		logger.Log.Errorw("failed to generate token pair", "err", err)
		return "", "", err
	}

	if err := svc.refreshTokens.Save(ctx, user.UserID, refresh); err != nil {
		logger.Log.Errorw("failed to store refresh token", "err", err)
		return "", "", err
	}

	return access, refresh, nil
}

// Logout invalidates the caller's session: the stored refresh token is
// removed, so the pair can no longer be rotated.
func (svc *AuthService) Logout(ctx context.Context, claims *jwt.Claims) error {
	if err := svc.refreshTokens.Delete(ctx, claims.UserID); err != nil {
		logger.Log.Errorw("failed to delete refresh token", "user_id", claims.UserID, "err", err)
		return err
	}
	return nil
}

// Refresh exchanges a valid refresh token for a new token pair. The token
// must parse, be of refresh type, and match the stored one; the pair is
// rotated on success.
func (svc *AuthService) Refresh(ctx context.Context, refreshToken string) (access string, refresh string, err error) {
	claims, err := svc.jwt.GetClaims(ctx, refreshToken)
	if err != nil {
		logger.Log.Errorw("failed to parse refresh token", "err", err)
		return "", "", ErrInvalidRefresh
	}
	if claims.TokenType != jwt.TokenTypeRefresh {
		logger.Log.Errorw("token is not a refresh token", "user_id", claims.UserID)
		return "", "", ErrInvalidRefresh
	}

	stored, err := svc.refreshTokens.Get(ctx, claims.UserID)
	if err != nil {
		logger.Log.Errorw("failed to load stored refresh token", "err", err)
		return "", "", err
	}
	if stored == "" || stored != refreshToken {
		logger.Log.Errorw("refresh token does not match stored one", "user_id", claims.UserID)
		return "", "", ErrInvalidRefresh
	}

	access, refresh, err = svc.jwt.GeneratePair(ctx, claims.UserID, claims.IsLandlord, claims.IsTenant)
	if err != nil {
		logger.Log.Errorw("failed to generate token pair", "err", err)
		return "", "", err
	}

	if err := svc.refreshTokens.Save(ctx, claims.UserID, refresh); err != nil {
		logger.Log.Errorw("failed to rotate refresh token", "err", err)
		return "", "", err
	}

	return access, refresh, nil
}
