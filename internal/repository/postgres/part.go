package postgres

import (
	"context"
	"database/sql"
	"time"

	"rentadesk-backend/internal/domain"
	"rentadesk-backend/internal/repository"
)

type partRepository struct {
	db *sql.DB
}

func NewPartRepository(db *sql.DB) repository.PartRepository {
	return &partRepository{db: db}
}

func (r *partRepository) Create(ctx context.Context, p *domain.Part) error {
	query := `INSERT INTO parts (sku, name, quantity, unit_cost_cents, created_on, updated_on)
	          VALUES ($1, $2, $3, $4, $5, $6) RETURNING id`
	now := time.Now()
	err := r.db.QueryRowContext(ctx, query, p.SKU, p.Name, p.Quantity, p.UnitCostCents, now, now).Scan(&p.ID)
	if err != nil {
		return wrapErr("create", "part", err)
	}
	p.CreatedOn = now
	p.UpdatedOn = now
	return nil
}

func (r *partRepository) GetByID(ctx context.Context, id int32) (*domain.Part, error) {
	p := &domain.Part{}
	query := `SELECT id, sku, name, quantity, unit_cost_cents, created_on, updated_on FROM parts WHERE id = $1`
	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&p.ID, &p.SKU, &p.Name, &p.Quantity, &p.UnitCostCents, &p.CreatedOn, &p.UpdatedOn)
	if err != nil {
		return nil, wrapErr("get", "part", err)
	}
	return p, nil
}

func (r *partRepository) Update(ctx context.Context, p *domain.Part) error {
	query := `UPDATE parts SET sku=$1, name=$2, unit_cost_cents=$3, updated_on=$4 WHERE id=$5`
	_, err := r.db.ExecContext(ctx, query, p.SKU, p.Name, p.UnitCostCents, time.Now(), p.ID)
	return wrapErr("update", "part", err)
}

func (r *partRepository) Delete(ctx context.Context, id int32) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM parts WHERE id = $1`, id)
	return wrapErr("delete", "part", err)
}

func (r *partRepository) List(ctx context.Context, page, pageSize int32) ([]domain.Part, int32, error) {
	offset := (page - 1) * pageSize

	var count int32
	if err := r.db.QueryRowContext(ctx, `SELECT count(*) FROM parts`).Scan(&count); err != nil {
		return nil, 0, wrapErr("count", "part", err)
	}

	query := `SELECT id, sku, name, quantity, unit_cost_cents, created_on, updated_on
	          FROM parts ORDER BY sku LIMIT $1 OFFSET $2`
	rows, err := r.db.QueryContext(ctx, query, pageSize, offset)
	if err != nil {
		return nil, 0, wrapErr("list", "part", err)
	}
	defer rows.Close()

	var parts []domain.Part
	for rows.Next() {
		var p domain.Part
		if err := rows.Scan(&p.ID, &p.SKU, &p.Name, &p.Quantity, &p.UnitCostCents, &p.CreatedOn, &p.UpdatedOn); err != nil {
			return nil, 0, wrapErr("list", "part", err)
		}
		parts = append(parts, p)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, wrapErr("list", "part", err)
	}
	return parts, count, nil
}

func (r *partRepository) AdjustQuantity(ctx context.Context, id int32, delta int32) (*domain.Part, error) {
	// Guard against driving stock negative in the same statement.
	query := `UPDATE parts SET quantity = quantity + $1, updated_on = $2
	          WHERE id = $3 AND quantity + $1 >= 0
	          RETURNING id, sku, name, quantity, unit_cost_cents, created_on, updated_on`
	p := &domain.Part{}
	err := r.db.QueryRowContext(ctx, query, delta, time.Now(), id).Scan(
		&p.ID, &p.SKU, &p.Name, &p.Quantity, &p.UnitCostCents, &p.CreatedOn, &p.UpdatedOn)
	if err != nil {
		return nil, wrapErr("adjust quantity", "part", err)
	}
	return p, nil
}
