package postgres

import (
	"context"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"

	"rentadesk-backend/internal/domain"
)

func TestCheckoutRepository_Create(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("error opening mock database: %v", err)
	}
	defer db.Close()

	repo := NewCheckoutRepository(db)
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		rec := &domain.CheckoutRecord{
			ReservationID: 1,
			CheckoutTime:  time.Date(2024, 3, 1, 9, 0, 0, 0, time.UTC),
			StartOdometer: 1000,
			DelivererName: "M. Garcia",
			ActorKind:     domain.ActorKindNone,
		}

		mock.ExpectQuery("INSERT INTO checkouts").
			WithArgs(rec.ReservationID, rec.CheckoutTime, rec.StartOdometer, rec.DelivererName,
				rec.DriverName, rec.Notes, rec.ActorKind, rec.ActorID, sqlmock.AnyArg()).
			WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(7))

		err := repo.Create(ctx, rec)
		assert.NoError(t, err)
		assert.Equal(t, int32(7), rec.ID)
	})

	t.Run("DuplicateReservation", func(t *testing.T) {
		rec := &domain.CheckoutRecord{
			ReservationID: 1,
			CheckoutTime:  time.Date(2024, 3, 1, 9, 0, 0, 0, time.UTC),
			StartOdometer: 1000,
			DelivererName: "M. Garcia",
			ActorKind:     domain.ActorKindNone,
		}

		mock.ExpectQuery("INSERT INTO checkouts").
			WithArgs(rec.ReservationID, rec.CheckoutTime, rec.StartOdometer, rec.DelivererName,
				rec.DriverName, rec.Notes, rec.ActorKind, rec.ActorID, sqlmock.AnyArg()).
			WillReturnError(&pq.Error{Code: "23505", Constraint: "checkouts_reservation_id_key"})

		err := repo.Create(ctx, rec)
		assert.ErrorIs(t, err, domain.ErrDuplicateRecord)
	})
}

func TestCheckoutRepository_GetByReservation(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("error opening mock database: %v", err)
	}
	defer db.Close()

	repo := NewCheckoutRepository(db)
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		rows := sqlmock.NewRows([]string{"id", "reservation_id", "checkout_time", "start_odometer", "deliverer_name", "driver_name", "notes", "actor_kind", "actor_id", "created_on"}).
			AddRow(7, 1, time.Now(), 1000, "M. Garcia", "", "", "NONE", nil, time.Now())

		mock.ExpectQuery("SELECT (.+) FROM checkouts WHERE reservation_id = \\$1").
			WithArgs(int32(1)).
			WillReturnRows(rows)

		rec, err := repo.GetByReservation(ctx, 1)
		assert.NoError(t, err)
		assert.NotNil(t, rec)
		assert.Equal(t, int32(1000), rec.StartOdometer)
	})

	t.Run("NotFound", func(t *testing.T) {
		mock.ExpectQuery("SELECT (.+) FROM checkouts WHERE reservation_id = \\$1").
			WithArgs(int32(99)).
			WillReturnRows(sqlmock.NewRows([]string{"id"}))

		rec, err := repo.GetByReservation(ctx, 99)
		assert.Nil(t, rec)
		assert.ErrorIs(t, err, domain.ErrNotFound)
	})
}

func TestCheckinRepository_Create(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("error opening mock database: %v", err)
	}
	defer db.Close()

	repo := NewCheckinRepository(db)
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		rec := &domain.CheckinRecord{
			ReservationID:   1,
			CheckinTime:     time.Date(2024, 3, 4, 10, 0, 0, 0, time.UTC),
			EndOdometer:     1500,
			ExtraDays:       2,
			BillableDays:    4,
			ExtraKilometers: 100,
			ActorKind:       domain.ActorKindNone,
		}

		mock.ExpectQuery("INSERT INTO checkins").
			WithArgs(rec.ReservationID, rec.CheckinTime, rec.EndOdometer, rec.ExtraDays, rec.BillableDays,
				rec.ExtraKilometers, rec.Notes, rec.ActorKind, rec.ActorID, sqlmock.AnyArg()).
			WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(3))

		err := repo.Create(ctx, rec)
		assert.NoError(t, err)
		assert.Equal(t, int32(3), rec.ID)
	})

	t.Run("DuplicateReservation", func(t *testing.T) {
		rec := &domain.CheckinRecord{
			ReservationID: 1,
			CheckinTime:   time.Date(2024, 3, 4, 10, 0, 0, 0, time.UTC),
			EndOdometer:   1500,
			ActorKind:     domain.ActorKindNone,
		}

		mock.ExpectQuery("INSERT INTO checkins").
			WithArgs(rec.ReservationID, rec.CheckinTime, rec.EndOdometer, rec.ExtraDays, rec.BillableDays,
				rec.ExtraKilometers, rec.Notes, rec.ActorKind, rec.ActorID, sqlmock.AnyArg()).
			WillReturnError(&pq.Error{Code: "23505", Constraint: "checkins_reservation_id_key"})

		err := repo.Create(ctx, rec)
		assert.ErrorIs(t, err, domain.ErrDuplicateRecord)
	})
}
