package repositories

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/andreionishchenko/Final-proekt-D/internal/logger"
	"github.com/andreionishchenko/Final-proekt-D/internal/models"
	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
)

const bookingColumns = `booking_id, property_id, user_id, start_date, end_date, status, created_at`

// bookingOrderings maps the accepted ordering parameter values to ORDER BY clauses.
var bookingOrderings = map[string]string{
	"start_date":  "start_date ASC",
	"-start_date": "start_date DESC",
	"end_date":    "end_date ASC",
	"-end_date":   "end_date DESC",
	"created_at":  "created_at ASC",
	"-created_at": "created_at DESC",
}

type BookingReadRepository struct {
	db *sqlx.DB
}

func NewBookingReadRepository(db *sqlx.DB) *BookingReadRepository {
	return &BookingReadRepository{db: db}
}

// GetByID returns the booking with the given id, or nil when absent.
func (r *BookingReadRepository) GetByID(ctx context.Context, bookingID uuid.UUID) (*models.BookingDB, error) {
	query := `SELECT ` + bookingColumns + ` FROM bookings WHERE booking_id = $1 LIMIT 1`

	var booking models.BookingDB
	err := r.db.GetContext(ctx, &booking, query, bookingID)

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{bookingID},
		"error", err,
	)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	return &booking, nil
}

// ListByUser returns the bookings created by the given user, newest first.
func (r *BookingReadRepository) ListByUser(ctx context.Context, userID uuid.UUID, filter models.BookingFilter) ([]models.BookingDB, error) {
	return r.list(ctx, "user_id = $1", userID, filter)
}

// ListByOwner returns all bookings on properties owned by the given
// landlord, newest first.
func (r *BookingReadRepository) ListByOwner(ctx context.Context, ownerID uuid.UUID, filter models.BookingFilter) ([]models.BookingDB, error) {
	return r.list(ctx, "property_id IN (SELECT property_id FROM properties WHERE user_id = $1)", ownerID, filter)
}

func (r *BookingReadRepository) list(ctx context.Context, scope string, scopeArg any, filter models.BookingFilter) ([]models.BookingDB, error) {
	conds := []string{scope}
	args := []any{scopeArg}

	if filter.PropertyID != nil {
		args = append(args, *filter.PropertyID)
		conds = append(conds, fmt.Sprintf("property_id = $%d", len(args)))
	}
	if filter.Status != nil {
		args = append(args, *filter.Status)
		conds = append(conds, fmt.Sprintf("status = $%d", len(args)))
	}
	if filter.StartDateGTE != nil {
		args = append(args, *filter.StartDateGTE)
		conds = append(conds, fmt.Sprintf("start_date >= $%d", len(args)))
	}
	if filter.StartDateLTE != nil {
		args = append(args, *filter.StartDateLTE)
		conds = append(conds, fmt.Sprintf("start_date <= $%d", len(args)))
	}
	if filter.EndDateGTE != nil {
		args = append(args, *filter.EndDateGTE)
		conds = append(conds, fmt.Sprintf("end_date >= $%d", len(args)))
	}
	if filter.EndDateLTE != nil {
		args = append(args, *filter.EndDateLTE)
		conds = append(conds, fmt.Sprintf("end_date <= $%d", len(args)))
	}

	orderBy, ok := bookingOrderings[filter.Ordering]
	if !ok {
		orderBy = "created_at DESC"
	}

	query := `SELECT ` + bookingColumns + ` FROM bookings WHERE ` +
		strings.Join(conds, " AND ") + ` ORDER BY ` + orderBy

	var bookings []models.BookingDB
	err := r.db.SelectContext(ctx, &bookings, query, args...)

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", args,
		"result", len(bookings),
		"error", err,
	)

	return bookings, err
}

// BookingWriteRepository handles booking writes. All methods run on the
// request transaction when one is present in the context, so the
// lock/check/insert sequence of a booking creation is atomic.
type BookingWriteRepository struct {
	db       *sqlx.DB
	txGetter func(ctx context.Context) *sqlx.Tx
}

func NewBookingWriteRepository(db *sqlx.DB, txGetter func(ctx context.Context) *sqlx.Tx) *BookingWriteRepository {
	return &BookingWriteRepository{db: db, txGetter: txGetter}
}

func (r *BookingWriteRepository) executor(ctx context.Context) sqlx.ExtContext {
	if r.txGetter != nil {
		if tx := r.txGetter(ctx); tx != nil {
			return tx
		}
	}
	return r.db
}

// LockProperty takes a row lock on the property, serializing concurrent
// booking creations per property. Returns sql.ErrNoRows for an unknown
// property.
func (r *BookingWriteRepository) LockProperty(ctx context.Context, propertyID uuid.UUID) error {
	query := `SELECT property_id FROM properties WHERE property_id = $1 FOR UPDATE`

	var locked uuid.UUID
	err := sqlx.GetContext(ctx, r.executor(ctx), &locked, query, propertyID)

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{propertyID},
		"error", err,
	)

	return err
}

// HasOverlap reports whether any existing booking on the property, in any
// status, intersects the half-open range [startDate, endDate). Cancelled
// bookings block too, matching the documented overlap policy.
func (r *BookingWriteRepository) HasOverlap(ctx context.Context, propertyID uuid.UUID, startDate, endDate time.Time) (bool, error) {
	query := `
		SELECT EXISTS (
			SELECT 1 FROM bookings
			WHERE property_id = $1
			  AND start_date < $3
			  AND end_date > $2
		)
	`
	args := []any{propertyID, startDate, endDate}

	var exists bool
	err := sqlx.GetContext(ctx, r.executor(ctx), &exists, query, args...)

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", args,
		"result", exists,
		"error", err,
	)

	return exists, err
}

// Save inserts a new pending booking and returns the stored row.
func (r *BookingWriteRepository) Save(ctx context.Context, propertyID, userID uuid.UUID, startDate, endDate time.Time) (*models.BookingDB, error) {
	query := `
		INSERT INTO bookings (booking_id, property_id, user_id, start_date, end_date, status, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, NOW())
		RETURNING ` + bookingColumns
	args := []any{uuid.New(), propertyID, userID, startDate, endDate, models.BookingStatusPending}

	var booking models.BookingDB
	err := sqlx.GetContext(ctx, r.executor(ctx), &booking, query, args...)

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", args,
		"error", err,
	)

	if err != nil {
		return nil, err
	}
	return &booking, nil
}

// UpdateStatus sets the booking status and returns the stored row, or nil
// when the booking does not exist.
func (r *BookingWriteRepository) UpdateStatus(ctx context.Context, bookingID uuid.UUID, status string) (*models.BookingDB, error) {
	query := `
		UPDATE bookings
		SET status = $2
		WHERE booking_id = $1
		RETURNING ` + bookingColumns
	args := []any{bookingID, status}

	var booking models.BookingDB
	err := sqlx.GetContext(ctx, r.executor(ctx), &booking, query, args...)

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
	return &booking, nil
}
