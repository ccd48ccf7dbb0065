package repositories

import (
	"context"
	"strings"

	"github.com/andreionishchenko/Final-proekt-D/internal/logger"
	"github.com/andreionishchenko/Final-proekt-D/internal/models"
	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
)

const propertyViewColumns = `view_id, user_id, property_id, viewed_at`

// PropertyViewRepository is an append-and-list store of view events.
type PropertyViewRepository struct {
	db *sqlx.DB
}

func NewPropertyViewRepository(db *sqlx.DB) *PropertyViewRepository {
	return &PropertyViewRepository{db: db}
}

// Save appends a view record for the user.
func (r *PropertyViewRepository) Save(ctx context.Context, userID, propertyID uuid.UUID) (*models.PropertyViewDB, error) {
	query := `
		INSERT INTO property_views (view_id, user_id, property_id, viewed_at)
		VALUES ($1, $2, $3, NOW())
		RETURNING ` + propertyViewColumns
	args := []any{uuid.New(), userID, propertyID}

	var record models.PropertyViewDB
	err := r.db.GetContext(ctx, &record, query, args...)

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", args,
		"error", err,
	)

	if err != nil {
		return nil, err
	}
	return &record, nil
}

// ListByUser returns the user's view records, newest first.
func (r *PropertyViewRepository) ListByUser(ctx context.Context, userID uuid.UUID) ([]models.PropertyViewDB, error) {
	query := `SELECT ` + propertyViewColumns + ` FROM property_views WHERE user_id = $1 ORDER BY viewed_at DESC`

	var records []models.PropertyViewDB
	err := r.db.SelectContext(ctx, &records, query, userID)

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{userID},
		"result", len(records),
		"error", err,
	)

	return records, err
}
