package repositories

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/andreionishchenko/Final-proekt-D/internal/logger"
	"github.com/andreionishchenko/Final-proekt-D/internal/models"
	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
)

const propertyColumns = `property_id, user_id, title, description, location, price, num_rooms, property_type, is_active, available, views_count, created_at`

// orderings maps the accepted ordering parameter values to ORDER BY clauses.
var orderings = map[string]string{
	"price":        "price ASC",
	"-price":       "price DESC",
	"created_at":   "created_at ASC",
	"-created_at":  "created_at DESC",
	"views_count":  "views_count ASC",
	"-views_count": "views_count DESC",
}

type PropertyReadRepository struct {
	db *sqlx.DB
}

func NewPropertyReadRepository(db *sqlx.DB) *PropertyReadRepository {
	return &PropertyReadRepository{db: db}
}

// GetByID returns the property with the given id, or nil when absent.
func (r *PropertyReadRepository) GetByID(ctx context.Context, propertyID uuid.UUID) (*models.PropertyDB, error) {
	query := `SELECT ` + propertyColumns + ` FROM properties WHERE property_id = $1 LIMIT 1`

	var property models.PropertyDB
	err := r.db.GetContext(ctx, &property, query, propertyID)

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{propertyID},
		"error", err,
	)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	return &property, nil
}

// List returns properties matching the filter, in the requested order.
// Unknown ordering values fall back to newest-first.
func (r *PropertyReadRepository) List(ctx context.Context, filter models.PropertyFilter) ([]models.PropertyDB, error) {
	conds := []string{"TRUE"}
	args := []any{}

	addCond := func(cond string, value any) {
		args = append(args, value)
		conds = append(conds, fmt.Sprintf(cond, len(args)))
	}

	if filter.PriceGTE != nil {
		addCond("price >= $%d::NUMERIC", *filter.PriceGTE)
	}
	if filter.PriceLTE != nil {
		addCond("price <= $%d::NUMERIC", *filter.PriceLTE)
	}
	if filter.Location != nil {
		addCond("location = $%d", *filter.Location)
	}
	if filter.LocationContains != nil {
		addCond("location ILIKE '%%' || $%d || '%%'", *filter.LocationContains)
	}
	if filter.NumRoomsGTE != nil {
		addCond("num_rooms >= $%d", *filter.NumRoomsGTE)
	}
	if filter.NumRoomsLTE != nil {
		addCond("num_rooms <= $%d", *filter.NumRoomsLTE)
	}
	if filter.PropertyType != nil {
		addCond("property_type = $%d", *filter.PropertyType)
	}
	if filter.Search != nil {
		args = append(args, *filter.Search)
		n := len(args)
		conds = append(conds, fmt.Sprintf("(title ILIKE '%%' || $%d || '%%' OR description ILIKE '%%' || $%d || '%%')", n, n))
	}

	orderBy, ok := orderings[filter.Ordering]
	if !ok {
		orderBy = "created_at DESC"
	}

	query := `SELECT ` + propertyColumns + ` FROM properties WHERE ` +
		strings.Join(conds, " AND ") + ` ORDER BY ` + orderBy

	var properties []models.PropertyDB
	err := r.db.SelectContext(ctx, &properties, query, args...)

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", args,
		"result", len(properties),
		"error", err,
	)

	return properties, err
}

type PropertyWriteRepository struct {
	db *sqlx.DB
}

func NewPropertyWriteRepository(db *sqlx.DB) *PropertyWriteRepository {
	return &PropertyWriteRepository{db: db}
}

// Save inserts a new property and returns the stored row.
func (r *PropertyWriteRepository) Save(ctx context.Context, userID uuid.UUID, title, description, location, price string, numRooms int, propertyType string) (*models.PropertyDB, error) {
	query := `
		INSERT INTO properties (property_id, user_id, title, description, location, price, num_rooms, property_type, is_active, available, views_count, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, TRUE, TRUE, 0, NOW())
		RETURNING ` + propertyColumns
	args := []any{uuid.New(), userID, title, description, location, price, numRooms, propertyType}

	var property models.PropertyDB
	err := r.db.GetContext(ctx, &property, query, args...)

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", args,
		"error", err,
	)

	if err != nil {
		return nil, err
	}
	return &property, nil
}

// Update applies a partial update and returns the stored row.
// Nil fields keep their current value.
func (r *PropertyWriteRepository) Update(ctx context.Context, propertyID uuid.UUID, update models.PropertyUpdate) (*models.PropertyDB, error) {
	query := `
		UPDATE properties
		SET title = COALESCE($2, title),
		    description = COALESCE($3, description),
		    location = COALESCE($4, location),
		    price = COALESCE($5, price),
		    num_rooms = COALESCE($6, num_rooms),
		    property_type = COALESCE($7, property_type),
		    is_active = COALESCE($8, is_active),
		    available = COALESCE($9, available)
		WHERE property_id = $1
		RETURNING ` + propertyColumns
	args := []any{
		propertyID,
		update.Title, update.Description, update.Location, update.Price,
		update.NumRooms, update.PropertyType, update.IsActive, update.Available,
	}

	var property models.PropertyDB
	err := r.db.GetContext(ctx, &property, query, args...)

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", args,
		"error", err,
	)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &property, nil
}

// Delete removes the property row. Returns false when no row matched.
func (r *PropertyWriteRepository) Delete(ctx context.Context, propertyID uuid.UUID) (bool, error) {
	query := `DELETE FROM properties WHERE property_id = $1`

	res, err := r.db.ExecContext(ctx, query, propertyID)
	var rowsAffected int64
	if res != nil {
		rowsAffected, _ = res.RowsAffected()
	}

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{propertyID},
		"result", rowsAffected,
		"error", err,
	)

	return rowsAffected > 0, err
}

// IncrementViews bumps the view counter and returns the new value.
// Returns sql.ErrNoRows for an unknown property.
func (r *PropertyWriteRepository) IncrementViews(ctx context.Context, propertyID uuid.UUID) (int, error) {
	query := `
		UPDATE properties
		SET views_count = views_count + 1
		WHERE property_id = $1
		RETURNING views_count
	`

	var viewsCount int
	err := r.db.GetContext(ctx, &viewsCount, query, propertyID)

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{propertyID},
		"result", viewsCount,
		"error", err,
	)

	return viewsCount, err
}
