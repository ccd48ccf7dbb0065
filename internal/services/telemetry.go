package services

import (
	"context"
	"encoding/json"
	"time"

	"github.com/andreionishchenko/Final-proekt-D/internal/jwt"
	"github.com/andreionishchenko/Final-proekt-D/internal/logger"
	"github.com/andreionishchenko/Final-proekt-D/internal/models"
	"github.com/google/uuid"
	"github.com/segmentio/kafka-go"
)

// SearchHistoryStore is the append-and-list contract for search records.
type SearchHistoryStore interface {
	Save(ctx context.Context, userID uuid.UUID, keyword string) (*models.SearchHistoryDB, error)
	ListByUser(ctx context.Context, userID uuid.UUID) ([]models.SearchHistoryDB, error)
}

// PropertyViewStore is the append-and-list contract for view records.
type PropertyViewStore interface {
	Save(ctx context.Context, userID, propertyID uuid.UUID) (*models.PropertyViewDB, error)
	ListByUser(ctx context.Context, userID uuid.UUID) ([]models.PropertyViewDB, error)
}

// TelemetryService backs the owner-scoped search-history and property-view
// endpoints. Every record is stamped with the caller and the current time;
// reads are filtered to the caller.
type TelemetryService struct {
	searches    SearchHistoryStore
	views       PropertyViewStore
	kafkaWriter KafkaWriter
}

// NewTelemetryService creates a new TelemetryService.
func NewTelemetryService(searches SearchHistoryStore, views PropertyViewStore, kafkaWriter KafkaWriter) *TelemetryService {
	return &TelemetryService{
		searches:    searches,
		views:       views,
		kafkaWriter: kafkaWriter,
	}
}

func (s *TelemetryService) publishEvent(ctx context.Context, event models.TelemetryEvent) {
	if s.kafkaWriter == nil {
		logger.Log.Warnw("Kafka writer not configured, skipping publishing", "event_type", event.EventType)
		return
	}

	payload, err := json.Marshal(event)
	if err != nil {
		logger.Log.Errorw("failed to marshal telemetry event", "err", err)
		return
	}

	if err := s.kafkaWriter.WriteMessages(ctx, kafka.Message{
		Key:   []byte(event.UserID.String()),
		Value: payload,
	}); err != nil {
		logger.Log.Errorw("failed to publish telemetry event", "event_type", event.EventType, "err", err)
	}
}

// SaveSearch appends a search record for the caller.
func (s *TelemetryService) SaveSearch(ctx context.Context, claims *jwt.Claims, keyword string) (*models.SearchHistoryDB, error) {
	record, err := s.searches.Save(ctx, claims.UserID, keyword)
	if err != nil {
		logger.Log.Errorw("failed to save search record", "err", err)
		return nil, err
	}

	s.publishEvent(ctx, models.TelemetryEvent{
		EventType:  models.EventSearchPerformed,
		UserID:     claims.UserID,
		Keyword:    keyword,
		OccurredAt: time.Now(),
	})

	return record, nil
}

// ListSearches returns the caller's search records.
func (s *TelemetryService) ListSearches(ctx context.Context, claims *jwt.Claims) ([]models.SearchHistoryDB, error) {
	return s.searches.ListByUser(ctx, claims.UserID)
}

// SaveView appends a view record for the caller.
func (s *TelemetryService) SaveView(ctx context.Context, claims *jwt.Claims, propertyID uuid.UUID) (*models.PropertyViewDB, error) {
	record, err := s.views.Save(ctx, claims.UserID, propertyID)
	if err != nil {
		logger.Log.Errorw("failed to save view record", "err", err)
		return nil, err
	}

	s.publishEvent(ctx, models.TelemetryEvent{
		EventType:  models.EventPropertyViewed,
		UserID:     claims.UserID,
		PropertyID: propertyID,
		OccurredAt: time.Now(),
	})

	return record, nil
}

// ListViews returns the caller's view records.
func (s *TelemetryService) ListViews(ctx context.Context, claims *jwt.Claims) ([]models.PropertyViewDB, error) {
	return s.views.ListByUser(ctx, claims.UserID)
}
