package postgres

import (
	"context"
	"database/sql"
	"time"

	"rentadesk-backend/internal/domain"
	"rentadesk-backend/internal/repository"
)

type carRepository struct {
	db *sql.DB
}

func NewCarRepository(db *sql.DB) repository.CarRepository {
	return &carRepository{db: db}
}

func (r *carRepository) Create(ctx context.Context, car *domain.Car) error {
	query := `INSERT INTO cars (plate, make, model, year, daily_rate_cents, daily_km_allowance, is_available, created_on, updated_on)
	          VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9) RETURNING id`
	now := time.Now()
	err := r.db.QueryRowContext(ctx, query,
		car.Plate, car.Make, car.Model, car.Year, car.DailyRateCents,
		car.DailyKmAllowance, car.IsAvailable, now, now).Scan(&car.ID)
	if err != nil {
		return wrapErr("create", "car", err)
	}
	car.CreatedOn = now
	car.UpdatedOn = now
	return nil
}

func (r *carRepository) GetByID(ctx context.Context, id int32) (*domain.Car, error) {
	car := &domain.Car{}
	query := `SELECT id, plate, make, model, year, daily_rate_cents, daily_km_allowance, is_available, created_on, updated_on
	          FROM cars WHERE id = $1`
	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&car.ID, &car.Plate, &car.Make, &car.Model, &car.Year, &car.DailyRateCents,
		&car.DailyKmAllowance, &car.IsAvailable, &car.CreatedOn, &car.UpdatedOn)
	if err != nil {
		return nil, wrapErr("get", "car", err)
	}
	return car, nil
}

func (r *carRepository) Update(ctx context.Context, car *domain.Car) error {
	query := `UPDATE cars SET plate=$1, make=$2, model=$3, year=$4, daily_rate_cents=$5, daily_km_allowance=$6, updated_on=$7 WHERE id=$8`
	_, err := r.db.ExecContext(ctx, query,
		car.Plate, car.Make, car.Model, car.Year, car.DailyRateCents, car.DailyKmAllowance, time.Now(), car.ID)
	return wrapErr("update", "car", err)
}

func (r *carRepository) Delete(ctx context.Context, id int32) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM cars WHERE id = $1`, id)
	return wrapErr("delete", "car", err)
}

func (r *carRepository) List(ctx context.Context, page, pageSize int32) ([]domain.Car, int32, error) {
	offset := (page - 1) * pageSize

	var count int32
	if err := r.db.QueryRowContext(ctx, `SELECT count(*) FROM cars`).Scan(&count); err != nil {
		return nil, 0, wrapErr("count", "car", err)
	}

	query := `SELECT id, plate, make, model, year, daily_rate_cents, daily_km_allowance, is_available, created_on, updated_on
	          FROM cars ORDER BY plate LIMIT $1 OFFSET $2`
	rows, err := r.db.QueryContext(ctx, query, pageSize, offset)
	if err != nil {
		return nil, 0, wrapErr("list", "car", err)
	}
	defer rows.Close()

	var cars []domain.Car
	for rows.Next() {
		var car domain.Car
		if err := rows.Scan(&car.ID, &car.Plate, &car.Make, &car.Model, &car.Year, &car.DailyRateCents,
			&car.DailyKmAllowance, &car.IsAvailable, &car.CreatedOn, &car.UpdatedOn); err != nil {
			return nil, 0, wrapErr("list", "car", err)
		}
		cars = append(cars, car)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, wrapErr("list", "car", err)
	}
	return cars, count, nil
}

func (r *carRepository) SetAvailability(ctx context.Context, id int32, available bool) error {
	query := `UPDATE cars SET is_available = $1, updated_on = $2 WHERE id = $3`
	_, err := r.db.ExecContext(ctx, query, available, time.Now(), id)
	return wrapErr("set availability", "car", err)
}
