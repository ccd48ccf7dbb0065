package repositories

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	tc "github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"

	"github.com/andreionishchenko/Final-proekt-D/internal/models"
)

func setupBookingPostgresContainer(t *testing.T) (*sqlx.DB, func()) {
	t.Helper()

	req := tc.ContainerRequest{
		Image:        "postgres:15-alpine",
		Env:          map[string]string{"POSTGRES_PASSWORD": "password", "POSTGRES_DB": "testdb", "POSTGRES_USER": "postgres"},
		ExposedPorts: []string{"5432/tcp"},
		WaitingFor:   wait.ForListeningPort("5432/tcp"),
	}

	container, err := tc.GenericContainer(context.Background(), tc.GenericContainerRequest{
		ContainerRequest: req,
		Started:          true,
	})
	assert.NoError(t, err)

	host, _ := container.Host(context.Background())
	port, _ := container.MappedPort(context.Background(), "5432")

	dsn := fmt.Sprintf("postgres://postgres:password@%s:%d/testdb?sslmode=disable", host, port.Int())

	var db *sqlx.DB
	for i := 0; i < 10; i++ {
		db, err = sqlx.Connect("pgx", dsn)
		if err == nil {
			break
		}
		time.Sleep(time.Second)
	}
	assert.NoError(t, err)

	schema := `
	CREATE TABLE IF NOT EXISTS users (
		user_id UUID PRIMARY KEY,
		email VARCHAR(100) NOT NULL UNIQUE,
		username VARCHAR(50) NOT NULL,
		password_hash VARCHAR(255) NOT NULL,
		is_landlord BOOLEAN NOT NULL DEFAULT FALSE,
		is_tenant BOOLEAN NOT NULL DEFAULT TRUE,
		created_at TIMESTAMP NOT NULL DEFAULT NOW(),
		updated_at TIMESTAMP NOT NULL DEFAULT NOW()
	);

	CREATE TABLE IF NOT EXISTS properties (
		property_id UUID PRIMARY KEY,
		user_id UUID NOT NULL REFERENCES users(user_id),
		title VARCHAR(255) NOT NULL,
		description TEXT NOT NULL DEFAULT '',
		location VARCHAR(255) NOT NULL DEFAULT '',
		price NUMERIC(10,2) NOT NULL,
		num_rooms INT NOT NULL,
		property_type VARCHAR(20) NOT NULL,
		is_active BOOLEAN NOT NULL DEFAULT TRUE,
		available BOOLEAN NOT NULL DEFAULT TRUE,
		views_count INT NOT NULL DEFAULT 0,
		created_at TIMESTAMP NOT NULL DEFAULT NOW()
	);

	CREATE TABLE IF NOT EXISTS bookings (
		booking_id UUID PRIMARY KEY,
		property_id UUID NOT NULL REFERENCES properties(property_id),
		user_id UUID NOT NULL REFERENCES users(user_id),
		start_date DATE NOT NULL,
		end_date DATE NOT NULL,
		status VARCHAR(20) NOT NULL DEFAULT 'pending',
		created_at TIMESTAMP NOT NULL DEFAULT NOW()
	);
	`
	_, err = db.Exec(schema)
	assert.NoError(t, err)

	teardown := func() {
		db.Close()
		container.Terminate(context.Background())
	}

	return db, teardown
}

func seedBookingFixtures(t *testing.T, db *sqlx.DB) (landlordID, tenantID, propertyID uuid.UUID) {
	t.Helper()

	landlordID, tenantID, propertyID = uuid.New(), uuid.New(), uuid.New()

	_, err := db.Exec(`INSERT INTO users (user_id, email, username, password_hash, is_landlord, is_tenant)
		VALUES ($1, 'owner@example.com', 'owner', 'x', TRUE, FALSE), ($2, 'guest@example.com', 'guest', 'x', FALSE, TRUE)`,
		landlordID, tenantID)
	assert.NoError(t, err)

	_, err = db.Exec(`INSERT INTO properties (property_id, user_id, title, price, num_rooms, property_type)
		VALUES ($1, $2, 'Cozy flat', 1200.00, 2, 'apartment')`, propertyID, landlordID)
	assert.NoError(t, err)

	return landlordID, tenantID, propertyID
}

func TestBookingWriteRepository_OverlapScenario(t *testing.T) {
	db, teardown := setupBookingPostgresContainer(t)
	defer teardown()

	_, tenantID, propertyID := seedBookingFixtures(t, db)

	writeRepo := NewBookingWriteRepository(db, nil)
	ctx := context.Background()

	day := func(d int) time.Time { return time.Date(2024, 6, d, 0, 0, 0, 0, time.UTC) }

	booking, err := writeRepo.Save(ctx, propertyID, tenantID, day(1), day(5))
	assert.NoError(t, err)
	assert.Equal(t, models.BookingStatusPending, booking.Status)

	// [2024-06-03, 2024-06-07) intersects the existing stay.
	overlap, err := writeRepo.HasOverlap(ctx, propertyID, day(3), day(7))
	assert.NoError(t, err)
	assert.True(t, overlap)

	// Confirmed bookings keep blocking.
	updated, err := writeRepo.UpdateStatus(ctx, booking.BookingID, models.BookingStatusConfirmed)
	assert.NoError(t, err)
	assert.Equal(t, models.BookingStatusConfirmed, updated.Status)

	overlap, err = writeRepo.HasOverlap(ctx, propertyID, day(3), day(7))
	assert.NoError(t, err)
	assert.True(t, overlap)

	// The check-out day is free: [2024-06-05, 2024-06-10) does not overlap.
	overlap, err = writeRepo.HasOverlap(ctx, propertyID, day(5), day(10))
	assert.NoError(t, err)
	assert.False(t, overlap)

	second, err := writeRepo.Save(ctx, propertyID, tenantID, day(5), day(10))
	assert.NoError(t, err)
	assert.Equal(t, models.BookingStatusPending, second.Status)

	// Cancelled bookings still block their range.
	_, err = writeRepo.UpdateStatus(ctx, second.BookingID, models.BookingStatusCancelled)
	assert.NoError(t, err)

	overlap, err = writeRepo.HasOverlap(ctx, propertyID, day(6), day(8))
	assert.NoError(t, err)
	assert.True(t, overlap)
}

func TestBookingWriteRepository_LockProperty(t *testing.T) {
	db, teardown := setupBookingPostgresContainer(t)
	defer teardown()

	_, _, propertyID := seedBookingFixtures(t, db)

	writeRepo := NewBookingWriteRepository(db, nil)
	ctx := context.Background()

	assert.NoError(t, writeRepo.LockProperty(ctx, propertyID))
	assert.Error(t, writeRepo.LockProperty(ctx, uuid.New()))
}

func TestBookingWriteRepository_UpdateStatusUnknown(t *testing.T) {
	db, teardown := setupBookingPostgresContainer(t)
	defer teardown()

	seedBookingFixtures(t, db)

	writeRepo := NewBookingWriteRepository(db, nil)

	booking, err := writeRepo.UpdateStatus(context.Background(), uuid.New(), models.BookingStatusConfirmed)
	assert.NoError(t, err)
	assert.Nil(t, booking)
}

func TestBookingReadRepository_List(t *testing.T) {
	db, teardown := setupBookingPostgresContainer(t)
	defer teardown()

	landlordID, tenantID, propertyID := seedBookingFixtures(t, db)

	writeRepo := NewBookingWriteRepository(db, nil)
	readRepo := NewBookingReadRepository(db)
	ctx := context.Background()

	day := func(d int) time.Time { return time.Date(2024, 7, d, 0, 0, 0, 0, time.UTC) }

	first, err := writeRepo.Save(ctx, propertyID, tenantID, day(1), day(3))
	assert.NoError(t, err)
	_, err = writeRepo.Save(ctx, propertyID, tenantID, day(10), day(12))
	assert.NoError(t, err)
	_, err = writeRepo.UpdateStatus(ctx, first.BookingID, models.BookingStatusConfirmed)
	assert.NoError(t, err)

	t.Run("tenant sees own bookings", func(t *testing.T) {
		bookings, err := readRepo.ListByUser(ctx, tenantID, models.BookingFilter{})
		assert.NoError(t, err)
		assert.Len(t, bookings, 2)
	})

	t.Run("owner sees bookings on owned properties", func(t *testing.T) {
		bookings, err := readRepo.ListByOwner(ctx, landlordID, models.BookingFilter{})
		assert.NoError(t, err)
		assert.Len(t, bookings, 2)
	})

	t.Run("status filter", func(t *testing.T) {
		status := models.BookingStatusConfirmed
		bookings, err := readRepo.ListByUser(ctx, tenantID, models.BookingFilter{Status: &status})
		assert.NoError(t, err)
		assert.Len(t, bookings, 1)
		assert.Equal(t, first.BookingID, bookings[0].BookingID)
	})

	t.Run("start date range filter", func(t *testing.T) {
		gte, lte := day(9), day(11)
		bookings, err := readRepo.ListByUser(ctx, tenantID, models.BookingFilter{StartDateGTE: &gte, StartDateLTE: &lte})
		assert.NoError(t, err)
		assert.Len(t, bookings, 1)
		assert.Equal(t, day(10), bookings[0].StartDate.UTC())
	})

	t.Run("end date range filter", func(t *testing.T) {
		lte := day(5)
		bookings, err := readRepo.ListByUser(ctx, tenantID, models.BookingFilter{EndDateLTE: &lte})
		assert.NoError(t, err)
		assert.Len(t, bookings, 1)
		assert.Equal(t, first.BookingID, bookings[0].BookingID)
	})

	t.Run("ordering by start date", func(t *testing.T) {
		bookings, err := readRepo.ListByUser(ctx, tenantID, models.BookingFilter{Ordering: "start_date"})
		assert.NoError(t, err)
		assert.Len(t, bookings, 2)
		assert.Equal(t, first.BookingID, bookings[0].BookingID)

		bookings, err = readRepo.ListByUser(ctx, tenantID, models.BookingFilter{Ordering: "-start_date"})
		assert.NoError(t, err)
		assert.Len(t, bookings, 2)
		assert.Equal(t, first.BookingID, bookings[1].BookingID)
	})

	t.Run("unknown booking id", func(t *testing.T) {
		booking, err := readRepo.GetByID(ctx, uuid.New())
		assert.NoError(t, err)
		assert.Nil(t, booking)
	})
}

// Two goroutines race overlapping creates through the full
// lock/check/insert protocol, each on its own transaction. The property
// row lock serializes them, so the loser's overlap check sees the
// winner's committed booking.
func TestBookingWriteRepository_ConcurrentCreates(t *testing.T) {
	db, teardown := setupBookingPostgresContainer(t)
	defer teardown()

	_, tenantID, propertyID := seedBookingFixtures(t, db)

	type ctxTxKey struct{}
	repo := NewBookingWriteRepository(db, func(ctx context.Context) *sqlx.Tx {
		tx, _ := ctx.Value(ctxTxKey{}).(*sqlx.Tx)
		return tx
	})

	errConflict := errors.New("conflict")

	attempt := func(start, end time.Time) error {
		tx, err := db.Beginx()
		if err != nil {
			return err
		}
		ctx := context.WithValue(context.Background(), ctxTxKey{}, tx)

		if err := repo.LockProperty(ctx, propertyID); err != nil {
			tx.Rollback()
			return err
		}
		overlap, err := repo.HasOverlap(ctx, propertyID, start, end)
		if err != nil {
			tx.Rollback()
			return err
		}
		if overlap {
			tx.Rollback()
			return errConflict
		}
		if _, err := repo.Save(ctx, propertyID, tenantID, start, end); err != nil {
			tx.Rollback()
			return err
		}
		return tx.Commit()
	}

	day := func(m, d int) time.Time { return time.Date(2024, time.Month(m), d, 0, 0, 0, 0, time.UTC) }

	race := func(aStart, aEnd, bStart, bEnd time.Time) (errA, errB error) {
		var wg sync.WaitGroup
		wg.Add(2)
		go func() { defer wg.Done(); errA = attempt(aStart, aEnd) }()
		go func() { defer wg.Done(); errB = attempt(bStart, bEnd) }()
		wg.Wait()
		return errA, errB
	}

	t.Run("overlapping creates admit exactly one", func(t *testing.T) {
		errA, errB := race(day(8, 1), day(8, 5), day(8, 3), day(8, 7))
		if errA == nil {
			assert.ErrorIs(t, errB, errConflict)
		} else {
			assert.ErrorIs(t, errA, errConflict)
			assert.NoError(t, errB)
		}

		var count int
		assert.NoError(t, db.Get(&count, `SELECT COUNT(*) FROM bookings WHERE property_id = $1`, propertyID))
		assert.Equal(t, 1, count)
	})

	t.Run("disjoint creates both succeed", func(t *testing.T) {
		errA, errB := race(day(9, 1), day(9, 5), day(9, 5), day(9, 10))
		assert.NoError(t, errA)
		assert.NoError(t, errB)

		var count int
		assert.NoError(t, db.Get(&count, `SELECT COUNT(*) FROM bookings WHERE property_id = $1 AND start_date >= $2`, propertyID, day(9, 1)))
		assert.Equal(t, 2, count)
	})
}
