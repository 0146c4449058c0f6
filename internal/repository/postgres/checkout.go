package postgres

import (
	"context"
	"database/sql"
	"time"

	"rentadesk-backend/internal/domain"
	"rentadesk-backend/internal/repository"
)

type checkoutRepository struct {
	db *sql.DB
}

func NewCheckoutRepository(db *sql.DB) repository.CheckoutRepository {
	return &checkoutRepository{db: db}
}

func (r *checkoutRepository) Create(ctx context.Context, rec *domain.CheckoutRecord) error {
	query := `INSERT INTO checkouts (reservation_id, checkout_time, start_odometer, deliverer_name, driver_name, notes, actor_kind, actor_id, created_on)
	          VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9) RETURNING id`
	now := time.Now()
	err := r.db.QueryRowContext(ctx, query,
		rec.ReservationID, rec.CheckoutTime, rec.StartOdometer, rec.DelivererName,
		rec.DriverName, rec.Notes, rec.ActorKind, rec.ActorID, now).Scan(&rec.ID)
	if err != nil {
		return wrapErr("create", "checkout", err)
	}
	rec.CreatedOn = now
	return nil
}

func (r *checkoutRepository) GetByReservation(ctx context.Context, reservationID int32) (*domain.CheckoutRecord, error) {
	rec := &domain.CheckoutRecord{}
	query := `SELECT id, reservation_id, checkout_time, start_odometer, deliverer_name, driver_name, notes, actor_kind, actor_id, created_on
	          FROM checkouts WHERE reservation_id = $1`
	err := r.db.QueryRowContext(ctx, query, reservationID).Scan(
		&rec.ID, &rec.ReservationID, &rec.CheckoutTime, &rec.StartOdometer, &rec.DelivererName,
		&rec.DriverName, &rec.Notes, &rec.ActorKind, &rec.ActorID, &rec.CreatedOn)
	if err != nil {
		return nil, wrapErr("get", "checkout", err)
	}
	return rec, nil
}

type checkinRepository struct {
	db *sql.DB
}

func NewCheckinRepository(db *sql.DB) repository.CheckinRepository {
	return &checkinRepository{db: db}
}

func (r *checkinRepository) Create(ctx context.Context, rec *domain.CheckinRecord) error {
	query := `INSERT INTO checkins (reservation_id, checkin_time, end_odometer, extra_days, billable_days, extra_kilometers, notes, actor_kind, actor_id, created_on)
	          VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10) RETURNING id`
	now := time.Now()
	err := r.db.QueryRowContext(ctx, query,
		rec.ReservationID, rec.CheckinTime, rec.EndOdometer, rec.ExtraDays, rec.BillableDays,
		rec.ExtraKilometers, rec.Notes, rec.ActorKind, rec.ActorID, now).Scan(&rec.ID)
	if err != nil {
		return wrapErr("create", "checkin", err)
	}
	rec.CreatedOn = now
	return nil
}

func (r *checkinRepository) GetByReservation(ctx context.Context, reservationID int32) (*domain.CheckinRecord, error) {
	rec := &domain.CheckinRecord{}
	query := `SELECT id, reservation_id, checkin_time, end_odometer, extra_days, billable_days, extra_kilometers, notes, actor_kind, actor_id, created_on
	          FROM checkins WHERE reservation_id = $1`
	err := r.db.QueryRowContext(ctx, query, reservationID).Scan(
		&rec.ID, &rec.ReservationID, &rec.CheckinTime, &rec.EndOdometer, &rec.ExtraDays,
		&rec.BillableDays, &rec.ExtraKilometers, &rec.Notes, &rec.ActorKind, &rec.ActorID, &rec.CreatedOn)
	if err != nil {
		return nil, wrapErr("get", "checkin", err)
	}
	return rec, nil
}
