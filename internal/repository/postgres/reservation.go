package postgres

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"rentadesk-backend/internal/domain"
	"rentadesk-backend/internal/repository"
)

type reservationRepository struct {
	db *sql.DB
}

func NewReservationRepository(db *sql.DB) repository.ReservationRepository {
	return &reservationRepository{db: db}
}

func (r *reservationRepository) Create(ctx context.Context, rsv *domain.Reservation) error {
	query := `INSERT INTO reservations (car_id, customer_id, start_date, planned_days, with_driver, status, created_on, updated_on)
	          VALUES ($1, $2, $3, $4, $5, $6, $7, $8) RETURNING id`
	now := time.Now()
	err := r.db.QueryRowContext(ctx, query,
		rsv.CarID, rsv.CustomerID, rsv.StartDate, rsv.PlannedDays, rsv.WithDriver, rsv.Status, now, now).Scan(&rsv.ID)
	if err != nil {
		return wrapErr("create", "reservation", err)
	}
	rsv.CreatedOn = now
	rsv.UpdatedOn = now
	return nil
}

func (r *reservationRepository) GetByID(ctx context.Context, id int32) (*domain.Reservation, error) {
	rsv := &domain.Reservation{}
	query := `SELECT id, car_id, customer_id, start_date, planned_days, with_driver, status, created_on, updated_on
	          FROM reservations WHERE id = $1`
	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&rsv.ID, &rsv.CarID, &rsv.CustomerID, &rsv.StartDate, &rsv.PlannedDays,
		&rsv.WithDriver, &rsv.Status, &rsv.CreatedOn, &rsv.UpdatedOn)
	if err != nil {
		return nil, wrapErr("get", "reservation", err)
	}
	return rsv, nil
}

func (r *reservationRepository) List(ctx context.Context, status string, customerID, page, pageSize int32) ([]domain.Reservation, int32, error) {
	offset := (page - 1) * pageSize
	query := `SELECT id, car_id, customer_id, start_date, planned_days, with_driver, status, created_on, updated_on
	          FROM reservations WHERE 1=1`

	args := []interface{}{}
	argIdx := 1
	if status != "" {
		query += fmt.Sprintf(" AND status = $%d", argIdx)
		args = append(args, status)
		argIdx++
	}
	if customerID != 0 {
		query += fmt.Sprintf(" AND customer_id = $%d", argIdx)
		args = append(args, customerID)
		argIdx++
	}

	var count int32
	countQuery := "SELECT count(*) FROM (" + query + ") as sub"
	if err := r.db.QueryRowContext(ctx, countQuery, args...).Scan(&count); err != nil {
		return nil, 0, wrapErr("count", "reservation", err)
	}

	query += fmt.Sprintf(" ORDER BY created_on DESC LIMIT $%d OFFSET $%d", argIdx, argIdx+1)
	args = append(args, pageSize, offset)

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, 0, wrapErr("list", "reservation", err)
	}
	defer rows.Close()

	var reservations []domain.Reservation
	for rows.Next() {
		var rsv domain.Reservation
		if err := rows.Scan(&rsv.ID, &rsv.CarID, &rsv.CustomerID, &rsv.StartDate, &rsv.PlannedDays,
			&rsv.WithDriver, &rsv.Status, &rsv.CreatedOn, &rsv.UpdatedOn); err != nil {
			return nil, 0, wrapErr("list", "reservation", err)
		}
		reservations = append(reservations, rsv)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, wrapErr("list", "reservation", err)
	}
	return reservations, count, nil
}

func (r *reservationRepository) TransitionStatus(ctx context.Context, id int32, from, to domain.ReservationStatus) error {
	query := `UPDATE reservations SET status = $1, updated_on = $2 WHERE id = $3 AND status = $4`
	res, err := r.db.ExecContext(ctx, query, to, time.Now(), id, from)
	if err != nil {
		return wrapErr("transition", "reservation", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return wrapErr("transition", "reservation", err)
	}
	// Zero rows means the row's status no longer matched the expected
	// precondition; a concurrent writer won the race.
	if affected == 0 {
		return domain.ErrIllegalTransition
	}
	return nil
}
