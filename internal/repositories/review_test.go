package repositories

import (
	"context"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
)

func newMockDB(t *testing.T) (*sqlx.DB, sqlmock.Sqlmock) {
	t.Helper()

	mockDB, mock, err := sqlmock.New()
	assert.NoError(t, err)
	t.Cleanup(func() { mockDB.Close() })

	return sqlx.NewDb(mockDB, "sqlmock"), mock
}

func TestReviewReadRepository_HasCompletedStay(t *testing.T) {
	propertyID := uuid.New()
	userID := uuid.New()
	now := time.Date(2024, 8, 1, 0, 0, 0, 0, time.UTC)

	t.Run("completed stay exists", func(t *testing.T) {
		db, mock := newMockDB(t)
		repo := NewReviewReadRepository(db)

		mock.ExpectQuery("SELECT EXISTS").
			WithArgs(propertyID, userID, now).
			WillReturnRows(sqlmock.NewRows([]string{"exists"}).AddRow(true))

		eligible, err := repo.HasCompletedStay(context.Background(), propertyID, userID, now)
		assert.NoError(t, err)
		assert.True(t, eligible)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("no completed stay", func(t *testing.T) {
		db, mock := newMockDB(t)
		repo := NewReviewReadRepository(db)

		mock.ExpectQuery("SELECT EXISTS").
			WithArgs(propertyID, userID, now).
			WillReturnRows(sqlmock.NewRows([]string{"exists"}).AddRow(false))

		eligible, err := repo.HasCompletedStay(context.Background(), propertyID, userID, now)
		assert.NoError(t, err)
		assert.False(t, eligible)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestReviewReadRepository_ListByProperty(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewReviewReadRepository(db)

	propertyID := uuid.New()
	reviewID := uuid.New()
	userID := uuid.New()
	createdAt := time.Now()

	mock.ExpectQuery("SELECT review_id, property_id, user_id, rating, comment, created_at FROM reviews").
		WithArgs(propertyID).
		WillReturnRows(sqlmock.
			NewRows([]string{"review_id", "property_id", "user_id", "rating", "comment", "created_at"}).
			AddRow(reviewID, propertyID, userID, 5, "Great stay!", createdAt))

	reviews, err := repo.ListByProperty(context.Background(), propertyID)
	assert.NoError(t, err)
	assert.Len(t, reviews, 1)
	assert.Equal(t, reviewID, reviews[0].ReviewID)
	assert.Equal(t, 5, reviews[0].Rating)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestReviewWriteRepository_Save(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewReviewWriteRepository(db)

	propertyID := uuid.New()
	userID := uuid.New()
	createdAt := time.Now()

	mock.ExpectQuery("INSERT INTO reviews").
		WithArgs(sqlmock.AnyArg(), propertyID, userID, 4, "Good location").
		WillReturnRows(sqlmock.
			NewRows([]string{"review_id", "property_id", "user_id", "rating", "comment", "created_at"}).
			AddRow(uuid.New(), propertyID, userID, 4, "Good location", createdAt))

	review, err := repo.Save(context.Background(), propertyID, userID, 4, "Good location")
	assert.NoError(t, err)
	assert.Equal(t, 4, review.Rating)
	assert.Equal(t, "Good location", review.Comment)
	assert.NoError(t, mock.ExpectationsWereMet())
}
