package repositories

import (
	"context"
	"fmt"
	"time"

	"github.com/andreionishchenko/Final-proekt-D/internal/logger"
	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

// RefreshTokenRepository stores the currently valid refresh token per user
// in Redis. Issuing a new pair overwrites the key, so a refresh token can
// only be exchanged while it is the latest one.
type RefreshTokenRepository struct {
	client *redis.Client
	exp    time.Duration // matches the refresh token lifetime
}

// NewRefreshTokenRepository creates a new repository instance.
func NewRefreshTokenRepository(client *redis.Client, expiration time.Duration) *RefreshTokenRepository {
	return &RefreshTokenRepository{
		client: client,
		exp:    expiration,
	}
}

func refreshTokenKey(userID uuid.UUID) string {
	return fmt.Sprintf("refresh_token:%s", userID)
}

// Save stores the refresh token for the user with the configured TTL.
func (r *RefreshTokenRepository) Save(ctx context.Context, userID uuid.UUID, token string) error {
	key := refreshTokenKey(userID)
	err := r.client.Set(ctx, key, token, r.exp).Err()

	logger.Log.Infow(
		"key", key,
		"result", "ok",
		"error", err,
	)

	return err
}

// Get returns the stored refresh token for the user, or "" when none is stored.
func (r *RefreshTokenRepository) Get(ctx context.Context, userID uuid.UUID) (string, error) {
	key := refreshTokenKey(userID)

	val, err := r.client.Get(ctx, key).Result()
	if err == redis.Nil {
		logger.Log.Infow(
			"key", key,
			"result", "not found",
			"error", nil,
		)
		return "", nil
	}

	logger.Log.Infow(
		"key", key,
		"error", err,
	)

	if err != nil {
		return "", err
	}
	return val, nil
}

// Delete removes the stored refresh token for the user.
func (r *RefreshTokenRepository) Delete(ctx context.Context, userID uuid.UUID) error {
	key := refreshTokenKey(userID)
	err := r.client.Del(ctx, key).Err()

	logger.Log.Infow(
		"key", key,
		"result", "ok",
		"error", err,
	)

	return err
}
