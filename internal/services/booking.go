package services

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/andreionishchenko/Final-proekt-D/internal/jwt"
	"github.com/andreionishchenko/Final-proekt-D/internal/logger"
	"github.com/andreionishchenko/Final-proekt-D/internal/models"
	"github.com/google/uuid"
)

var (
	// ErrBookingConflict is returned when the requested range overlaps an
	// existing booking on the property.
	ErrBookingConflict = errors.New("booking dates conflict with an existing booking")
	// ErrBookingNotFound is returned for an unknown booking id.
	ErrBookingNotFound = errors.New("booking not found")
	// ErrInvalidBookingDates is returned when start is not before end.
	ErrInvalidBookingDates = errors.New("start date must be before end date")
	// ErrInvalidBookingStatus is returned for a status outside the enum.
	ErrInvalidBookingStatus = errors.New("invalid booking status")
)

// BookingReader defines read operations for bookings.
type BookingReader interface {
	GetByID(ctx context.Context, bookingID uuid.UUID) (*models.BookingDB, error)
	ListByUser(ctx context.Context, userID uuid.UUID, filter models.BookingFilter) ([]models.BookingDB, error)
	ListByOwner(ctx context.Context, ownerID uuid.UUID, filter models.BookingFilter) ([]models.BookingDB, error)
}

// BookingWriter defines the transactional write protocol for bookings:
// lock the property row, check for overlap, then insert.
type BookingWriter interface {
	LockProperty(ctx context.Context, propertyID uuid.UUID) error
	HasOverlap(ctx context.Context, propertyID uuid.UUID, startDate, endDate time.Time) (bool, error)
	Save(ctx context.Context, propertyID, userID uuid.UUID, startDate, endDate time.Time) (*models.BookingDB, error)
	UpdateStatus(ctx context.Context, bookingID uuid.UUID, status string) (*models.BookingDB, error)
}

// BookingPropertyReader resolves the property referenced by a booking.
type BookingPropertyReader interface {
	GetByID(ctx context.Context, propertyID uuid.UUID) (*models.PropertyDB, error)
}

// BookingService owns the booking ledger rules: per-property non-overlap on
// creation and property-owner-only status transitions.
type BookingService struct {
	reader     BookingReader
	writer     BookingWriter
	properties BookingPropertyReader
}

// NewBookingService creates a new BookingService.
func NewBookingService(reader BookingReader, writer BookingWriter, properties BookingPropertyReader) *BookingService {
	return &BookingService{
		reader:     reader,
		writer:     writer,
		properties: properties,
	}
}

// Create books the property for the half-open range [startDate, endDate).
// It must run inside a request transaction: the property row lock
// serializes concurrent creations, so the overlap check and the insert are
// atomic per property. Bookings of any status block, cancelled included.
func (s *BookingService) Create(ctx context.Context, claims *jwt.Claims, propertyID uuid.UUID, startDate, endDate time.Time) (*models.BookingDB, error) {
	if !startDate.Before(endDate) {
		return nil, ErrInvalidBookingDates
	}

	if err := s.writer.LockProperty(ctx, propertyID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrPropertyNotFound
		}
		logger.Log.Errorw("failed to lock property", "property_id", propertyID, "err", err)
		return nil, err
	}

	overlap, err := s.writer.HasOverlap(ctx, propertyID, startDate, endDate)
	if err != nil {
		logger.Log.Errorw("failed to check booking overlap", "property_id", propertyID, "err", err)
		return nil, err
	}
	if overlap {
		logger.Log.Errorw("booking conflict", "property_id", propertyID, "start", startDate, "end", endDate)
		return nil, ErrBookingConflict
	}

	return s.writer.Save(ctx, propertyID, claims.UserID, startDate, endDate)
}

// List returns bookings visible to the caller: a landlord sees bookings on
// properties they own, everyone else sees their own bookings.
func (s *BookingService) List(ctx context.Context, claims *jwt.Claims, filter models.BookingFilter) ([]models.BookingDB, error) {
	if claims.IsLandlord {
		return s.reader.ListByOwner(ctx, claims.UserID, filter)
	}
	return s.reader.ListByUser(ctx, claims.UserID, filter)
}

// UpdateStatus sets the booking status. Only the owner of the booked
// property may do this; the booking's own author is rejected. Any of the
// three enum values is accepted, no-op transitions included.
func (s *BookingService) UpdateStatus(ctx context.Context, claims *jwt.Claims, bookingID uuid.UUID, status string) (*models.BookingDB, error) {
	if !models.ValidBookingStatus(status) {
		return nil, ErrInvalidBookingStatus
	}

	booking, err := s.reader.GetByID(ctx, bookingID)
	if err != nil {
		return nil, err
	}
	if booking == nil {
		return nil, ErrBookingNotFound
	}

	property, err := s.properties.GetByID(ctx, booking.PropertyID)
	if err != nil {
		return nil, err
	}
	if property == nil {
		return nil, ErrPropertyNotFound
	}
	if property.UserID != claims.UserID {
		logger.Log.Errorw("booking status update by non-owner", "user_id", claims.UserID, "booking_id", bookingID)
		return nil, ErrNotOwner
	}

	return s.writer.UpdateStatus(ctx, bookingID, status)
}
