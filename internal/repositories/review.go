package repositories

import (
	"context"
	"strings"
	"time"

	"github.com/andreionishchenko/Final-proekt-D/internal/logger"
	"github.com/andreionishchenko/Final-proekt-D/internal/models"
	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
)

const reviewColumns = `review_id, property_id, user_id, rating, comment, created_at`

type ReviewReadRepository struct {
	db *sqlx.DB
}

func NewReviewReadRepository(db *sqlx.DB) *ReviewReadRepository {
	return &ReviewReadRepository{db: db}
}

// ListByProperty returns all reviews of the property, newest first.
func (r *ReviewReadRepository) ListByProperty(ctx context.Context, propertyID uuid.UUID) ([]models.ReviewDB, error) {
	query := `SELECT ` + reviewColumns + ` FROM reviews WHERE property_id = $1 ORDER BY created_at DESC`

	var reviews []models.ReviewDB
	err := r.db.SelectContext(ctx, &reviews, query, propertyID)

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{propertyID},
		"result", len(reviews),
		"error", err,
	)

	return reviews, err
}

// HasCompletedStay reports whether the user has any booking on the property
// whose end date is strictly before now.
func (r *ReviewReadRepository) HasCompletedStay(ctx context.Context, propertyID, userID uuid.UUID, now time.Time) (bool, error) {
	query := `
		SELECT EXISTS (
			SELECT 1 FROM bookings
			WHERE property_id = $1
			  AND user_id = $2
			  AND end_date < $3
		)
	`
	args := []any{propertyID, userID, now}

	var exists bool
	err := r.db.GetContext(ctx, &exists, query, args...)

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", args,
		"result", exists,
		"error", err,
	)

	return exists, err
}

type ReviewWriteRepository struct {
	db *sqlx.DB
}

func NewReviewWriteRepository(db *sqlx.DB) *ReviewWriteRepository {
	return &ReviewWriteRepository{db: db}
}

// Save inserts a new review and returns the stored row.
func (r *ReviewWriteRepository) Save(ctx context.Context, propertyID, userID uuid.UUID, rating int, comment string) (*models.ReviewDB, error) {
	query := `
		INSERT INTO reviews (review_id, property_id, user_id, rating, comment, created_at)
		VALUES ($1, $2, $3, $4, $5, NOW())
		RETURNING ` + reviewColumns
	args := []any{uuid.New(), propertyID, userID, rating, comment}

	var review models.ReviewDB
	err := r.db.GetContext(ctx, &review, query, args...)

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", args,
		"error", err,
	)

	if err != nil {
		return nil, err
	}
	return &review, nil
}
