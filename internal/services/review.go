package services

import (
	"context"
	"errors"
	"time"

	"github.com/andreionishchenko/Final-proekt-D/internal/jwt"
	"github.com/andreionishchenko/Final-proekt-D/internal/logger"
	"github.com/andreionishchenko/Final-proekt-D/internal/models"
	"github.com/google/uuid"
)

var (
	// ErrInvalidRating is returned when the rating is outside 1..5.
	ErrInvalidRating = errors.New("rating must be between 1 and 5")
	// ErrNotEligible is returned when the author has no completed stay on
	// the property.
	ErrNotEligible = errors.New("no completed stay on this property")
)

// ReviewReader defines read operations for reviews.
type ReviewReader interface {
	ListByProperty(ctx context.Context, propertyID uuid.UUID) ([]models.ReviewDB, error)
	HasCompletedStay(ctx context.Context, propertyID, userID uuid.UUID, now time.Time) (bool, error)
}

// ReviewWriter defines write operations for reviews.
type ReviewWriter interface {
	Save(ctx context.Context, propertyID, userID uuid.UUID, rating int, comment string) (*models.ReviewDB, error)
}

// ReviewPropertyReader resolves the reviewed property.
type ReviewPropertyReader interface {
	GetByID(ctx context.Context, propertyID uuid.UUID) (*models.PropertyDB, error)
}

// ReviewService owns the review ledger rules: rating bounds and the
// completed-stay precondition.
type ReviewService struct {
	reader     ReviewReader
	writer     ReviewWriter
	properties ReviewPropertyReader
}

// NewReviewService creates a new ReviewService.
func NewReviewService(reader ReviewReader, writer ReviewWriter, properties ReviewPropertyReader) *ReviewService {
	return &ReviewService{
		reader:     reader,
		writer:     writer,
		properties: properties,
	}
}

// Create adds a review. The rating is validated before anything else; the
// author must have a booking on the property with an end date strictly in
// the past. A user may review the same property more than once.
func (s *ReviewService) Create(ctx context.Context, claims *jwt.Claims, propertyID uuid.UUID, rating int, comment string) (*models.ReviewDB, error) {
	if rating < models.MinRating || rating > models.MaxRating {
		return nil, ErrInvalidRating
	}

	property, err := s.properties.GetByID(ctx, propertyID)
	if err != nil {
		return nil, err
	}
	if property == nil {
		return nil, ErrPropertyNotFound
	}

	eligible, err := s.reader.HasCompletedStay(ctx, propertyID, claims.UserID, time.Now())
	if err != nil {
		logger.Log.Errorw("failed to check review eligibility", "err", err)
		return nil, err
	}
	if !eligible {
		logger.Log.Errorw("review without completed stay", "user_id", claims.UserID, "property_id", propertyID)
		return nil, ErrNotEligible
	}

	return s.writer.Save(ctx, propertyID, claims.UserID, rating, comment)
}

// List returns all reviews of the property. Any authenticated caller may read.
func (s *ReviewService) List(ctx context.Context, propertyID uuid.UUID) ([]models.ReviewDB, error) {
	return s.reader.ListByProperty(ctx, propertyID)
}
