package repositories

import (
	"context"
	"strings"

	"github.com/andreionishchenko/Final-proekt-D/internal/logger"
	"github.com/andreionishchenko/Final-proekt-D/internal/models"
	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
)

const searchHistoryColumns = `search_id, user_id, keyword, created_at`

// SearchHistoryRepository is an append-and-list store of search events.
type SearchHistoryRepository struct {
	db *sqlx.DB
}

func NewSearchHistoryRepository(db *sqlx.DB) *SearchHistoryRepository {
	return &SearchHistoryRepository{db: db}
}

// Save appends a search record for the user.
func (r *SearchHistoryRepository) Save(ctx context.Context, userID uuid.UUID, keyword string) (*models.SearchHistoryDB, error) {
	query := `
		INSERT INTO search_history (search_id, user_id, keyword, created_at)
		VALUES ($1, $2, $3, NOW())
		RETURNING ` + searchHistoryColumns
	args := []any{uuid.New(), userID, keyword}

	var record models.SearchHistoryDB
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

// ListByUser returns the user's search records, newest first.
func (r *SearchHistoryRepository) ListByUser(ctx context.Context, userID uuid.UUID) ([]models.SearchHistoryDB, error) {
	query := `SELECT ` + searchHistoryColumns + ` FROM search_history WHERE user_id = $1 ORDER BY created_at DESC`

	var records []models.SearchHistoryDB
	err := r.db.SelectContext(ctx, &records, query, userID)

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{userID},
		"result", len(records),
		"error", err,
	)

	return records, err
}
