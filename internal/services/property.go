package services

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/andreionishchenko/Final-proekt-D/internal/jwt"
	"github.com/andreionishchenko/Final-proekt-D/internal/logger"
	"github.com/andreionishchenko/Final-proekt-D/internal/models"
	"github.com/google/uuid"
	"github.com/segmentio/kafka-go"
)

var (
	// ErrNotLandlord is returned when a non-landlord attempts a listing mutation.
	ErrNotLandlord = errors.New("caller is not a landlord")
	// ErrNotOwner is returned when the caller does not own the target resource.
	ErrNotOwner = errors.New("caller does not own this resource")
	// ErrPropertyNotFound is returned for an unknown property id.
	ErrPropertyNotFound = errors.New("property not found")
	// ErrInvalidProperty is returned for out-of-range listing fields.
	ErrInvalidProperty = errors.New("invalid property fields")
)

// PropertyReader defines read operations for properties.
type PropertyReader interface {
	GetByID(ctx context.Context, propertyID uuid.UUID) (*models.PropertyDB, error)
	List(ctx context.Context, filter models.PropertyFilter) ([]models.PropertyDB, error)
}

// PropertyWriter defines write operations for properties.
type PropertyWriter interface {
	Save(ctx context.Context, userID uuid.UUID, title, description, location, price string, numRooms int, propertyType string) (*models.PropertyDB, error)
	Update(ctx context.Context, propertyID uuid.UUID, update models.PropertyUpdate) (*models.PropertyDB, error)
	Delete(ctx context.Context, propertyID uuid.UUID) (bool, error)
	IncrementViews(ctx context.Context, propertyID uuid.UUID) (int, error)
}

// ViewWriter appends property-view audit records.
type ViewWriter interface {
	Save(ctx context.Context, userID, propertyID uuid.UUID) (*models.PropertyViewDB, error)
}

// SearchWriter appends search-history records.
type SearchWriter interface {
	Save(ctx context.Context, userID uuid.UUID, keyword string) (*models.SearchHistoryDB, error)
}

// KafkaWriter defines a Kafka writer abstraction.
type KafkaWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error // Writes messages to Kafka
	Close() error                                                   // Closes the Kafka writer
}

// PropertyService owns the listing catalog rules: landlord-gated creation,
// owner-gated mutation, filtered search and view recording.
type PropertyService struct {
	reader      PropertyReader
	writer      PropertyWriter
	views       ViewWriter
	searches    SearchWriter
	kafkaWriter KafkaWriter
}

// NewPropertyService creates a new PropertyService.
func NewPropertyService(reader PropertyReader, writer PropertyWriter, views ViewWriter, searches SearchWriter, kafkaWriter KafkaWriter) *PropertyService {
	return &PropertyService{
		reader:      reader,
		writer:      writer,
		views:       views,
		searches:    searches,
		kafkaWriter: kafkaWriter,
	}
}

// publishEvent publishes a telemetry event to Kafka. Publishing is
// best-effort: failures are logged and never fail the request.
func (s *PropertyService) publishEvent(ctx context.Context, event models.TelemetryEvent) {
	if s.kafkaWriter == nil {
		logger.Log.Warnw("Kafka writer not configured, skipping publishing", "event_type", event.EventType)
		return
	}

	payload, err := json.Marshal(event)
	if err != nil {
		logger.Log.Errorw("failed to marshal telemetry event", "err", err)
		return
	}

	msg := kafka.Message{
		Key:   []byte(event.UserID.String()),
		Value: payload,
	}
	if err := s.kafkaWriter.WriteMessages(ctx, msg); err != nil {
		logger.Log.Errorw("failed to publish telemetry event", "event_type", event.EventType, "err", err)
	}
}

// Create adds a new listing owned by the caller. Landlord role required.
func (s *PropertyService) Create(ctx context.Context, claims *jwt.Claims, title, description, location, price string, numRooms int, propertyType string) (*models.PropertyDB, error) {
	if !claims.IsLandlord {
		logger.Log.Errorw("property create by non-landlord", "user_id", claims.UserID)
		return nil, ErrNotLandlord
	}
	if !models.ValidPropertyType(propertyType) || numRooms <= 0 || price == "" {
		return nil, ErrInvalidProperty
	}

	return s.writer.Save(ctx, claims.UserID, title, description, location, price, numRooms, propertyType)
}

// List returns listings matching the filter. A non-empty search keyword is
// also appended to the caller's search history and published as an event.
func (s *PropertyService) List(ctx context.Context, claims *jwt.Claims, filter models.PropertyFilter) ([]models.PropertyDB, error) {
	properties, err := s.reader.List(ctx, filter)
	if err != nil {
		logger.Log.Errorw("failed to list properties", "err", err)
		return nil, err
	}

	if filter.Search != nil && *filter.Search != "" {
		if _, err := s.searches.Save(ctx, claims.UserID, *filter.Search); err != nil {
			logger.Log.Errorw("failed to record search history", "err", err)
		}
		s.publishEvent(ctx, models.TelemetryEvent{
			EventType:  models.EventSearchPerformed,
			UserID:     claims.UserID,
			Keyword:    *filter.Search,
			OccurredAt: time.Now(),
		})
	}

	return properties, nil
}

// Get returns one listing.
func (s *PropertyService) Get(ctx context.Context, propertyID uuid.UUID) (*models.PropertyDB, error) {
	property, err := s.reader.GetByID(ctx, propertyID)
	if err != nil {
		return nil, err
	}
	if property == nil {
		return nil, ErrPropertyNotFound
	}
	return property, nil
}

// Update applies a partial update. The caller must be a landlord and own
// the listing; the ownership check runs even though the route is already
// role-gated.
func (s *PropertyService) Update(ctx context.Context, claims *jwt.Claims, propertyID uuid.UUID, update models.PropertyUpdate) (*models.PropertyDB, error) {
	if !claims.IsLandlord {
		return nil, ErrNotLandlord
	}
	if update.PropertyType != nil && !models.ValidPropertyType(*update.PropertyType) {
		return nil, ErrInvalidProperty
	}

	property, err := s.reader.GetByID(ctx, propertyID)
	if err != nil {
		return nil, err
	}
	if property == nil {
		return nil, ErrPropertyNotFound
	}
	if property.UserID != claims.UserID {
		logger.Log.Errorw("property update by non-owner", "user_id", claims.UserID, "property_id", propertyID)
		return nil, ErrNotOwner
	}

	return s.writer.Update(ctx, propertyID, update)
}

// Delete removes a listing. Same authorization as Update.
func (s *PropertyService) Delete(ctx context.Context, claims *jwt.Claims, propertyID uuid.UUID) error {
	if !claims.IsLandlord {
		return ErrNotLandlord
	}

	property, err := s.reader.GetByID(ctx, propertyID)
	if err != nil {
		return err
	}
	if property == nil {
		return ErrPropertyNotFound
	}
	if property.UserID != claims.UserID {
		logger.Log.Errorw("property delete by non-owner", "user_id", claims.UserID, "property_id", propertyID)
		return ErrNotOwner
	}

	_, err = s.writer.Delete(ctx, propertyID)
	return err
}

// IncrementView bumps the listing's view counter, appends a view audit
// record and publishes a view event. Repeated calls accumulate.
func (s *PropertyService) IncrementView(ctx context.Context, claims *jwt.Claims, propertyID uuid.UUID) (int, error) {
	property, err := s.reader.GetByID(ctx, propertyID)
	if err != nil {
		return 0, err
	}
	if property == nil {
		return 0, ErrPropertyNotFound
	}

	viewsCount, err := s.writer.IncrementViews(ctx, propertyID)
	if err != nil {
		logger.Log.Errorw("failed to increment views", "property_id", propertyID, "err", err)
		return 0, err
	}

	if _, err := s.views.Save(ctx, claims.UserID, propertyID); err != nil {
		logger.Log.Errorw("failed to record property view", "err", err)
		return 0, err
	}

	s.publishEvent(ctx, models.TelemetryEvent{
		EventType:  models.EventPropertyViewed,
		UserID:     claims.UserID,
		PropertyID: propertyID,
		OccurredAt: time.Now(),
	})

	return viewsCount, nil
}
