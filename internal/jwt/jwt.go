package jwt

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// Token types carried in the token_type claim.
const (
	TokenTypeAccess  = "access"
	TokenTypeRefresh = "refresh"
)

// AccessTokenCookie is the cookie used as a fallback transport for the
// access token when the Authorization header is absent.
const AccessTokenCookie = "access_token"

// Claims are the claims embedded in every issued token.
type Claims struct {
	UserID     uuid.UUID `json:"user_id"`     // Authenticated user
	IsLandlord bool      `json:"is_landlord"` // Landlord role flag
	IsTenant   bool      `json:"is_tenant"`   // Tenant role flag
	TokenType  string    `json:"token_type"`  // access or refresh
	jwt.RegisteredClaims
}

// JWT issues and validates access/refresh token pairs.
type JWT struct {
	SecretKey  string        // Secret key for signing tokens
	AccessExp  time.Duration // Access token lifetime
	RefreshExp time.Duration // Refresh token lifetime
}

// New creates a new JWT instance.
func New(secretKey string, accessExp, refreshExp time.Duration) *JWT {
	return &JWT{
		SecretKey:  secretKey,
		AccessExp:  accessExp,
		RefreshExp: refreshExp,
	}
}

// GeneratePair issues an access and a refresh token for the given user.
func (j *JWT) GeneratePair(ctx context.Context, userID uuid.UUID, isLandlord, isTenant bool) (access string, refresh string, err error) {
	access, err = j.generate(userID, isLandlord, isTenant, TokenTypeAccess, j.AccessExp)
	if err != nil {
		return "", "", err
	}
	refresh, err = j.generate(userID, isLandlord, isTenant, TokenTypeRefresh, j.RefreshExp)
	if err != nil {
		return "", "", err
	}
	return access, refresh, nil
}

func (j *JWT) generate(userID uuid.UUID, isLandlord, isTenant bool, tokenType string, exp time.Duration) (string, error) {
	now := time.Now()
	claims := Claims{
		UserID:     userID,
		IsLandlord: isLandlord,
		IsTenant:   isTenant,
		TokenType:  tokenType,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(now.Add(exp)),
			IssuedAt:  jwt.NewNumericDate(now),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(j.SecretKey))
}

// GetClaims parses the token string and returns its claims if the token is valid.
func (j *JWT) GetClaims(ctx context.Context, tokenString string) (*Claims, error) {
	var claims Claims
	token, err := jwt.ParseWithClaims(tokenString, &claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return []byte(j.SecretKey), nil
	})
	if err != nil {
		return nil, err
	}
	if !token.Valid {
		return nil, errors.New("invalid token")
	}
	if claims.UserID == uuid.Nil {
		return nil, errors.New("user_id not found in token")
	}
	return &claims, nil
}

// Validate checks that tokenString is a valid access token.
// Refresh tokens presented as access tokens are rejected.
func (j *JWT) Validate(ctx context.Context, tokenString string) error {
	claims, err := j.GetClaims(ctx, tokenString)
	if err != nil {
		return err
	}
	if claims.TokenType != TokenTypeAccess {
		return errors.New("not an access token")
	}
	return nil
}

// GetTokenFromRequest extracts the access token from the Authorization
// header, falling back to the access_token cookie when the header is absent.
func (j *JWT) GetTokenFromRequest(ctx context.Context, r *http.Request) (string, error) {
	authHeader := r.Header.Get("Authorization")
	if authHeader == "" {
		cookie, err := r.Cookie(AccessTokenCookie)
		if err != nil || cookie.Value == "" {
			return "", errors.New("authorization header and access_token cookie missing")
		}
		return cookie.Value, nil
	}

	parts := strings.Fields(authHeader)
	if len(parts) != 2 || strings.ToLower(parts[0]) != "bearer" {
		return "", errors.New("invalid authorization header format")
	}

	return parts[1], nil
}
