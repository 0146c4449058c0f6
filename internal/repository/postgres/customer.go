package postgres

import (
	"context"
	"database/sql"
	"time"

	"rentadesk-backend/internal/domain"
	"rentadesk-backend/internal/repository"
)

type customerRepository struct {
	db *sql.DB
}

func NewCustomerRepository(db *sql.DB) repository.CustomerRepository {
	return &customerRepository{db: db}
}

func (r *customerRepository) Create(ctx context.Context, c *domain.Customer) error {
	query := `INSERT INTO customers (name, email, phone, licence_no, created_on, updated_on)
	          VALUES ($1, $2, $3, $4, $5, $6) RETURNING id`
	now := time.Now()
	err := r.db.QueryRowContext(ctx, query, c.Name, c.Email, c.Phone, c.LicenceNo, now, now).Scan(&c.ID)
	if err != nil {
		return wrapErr("create", "customer", err)
	}
	c.CreatedOn = now
	c.UpdatedOn = now
	return nil
}

func (r *customerRepository) GetByID(ctx context.Context, id int32) (*domain.Customer, error) {
	c := &domain.Customer{}
	query := `SELECT id, name, email, phone, licence_no, created_on, updated_on FROM customers WHERE id = $1`
	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&c.ID, &c.Name, &c.Email, &c.Phone, &c.LicenceNo, &c.CreatedOn, &c.UpdatedOn)
	if err != nil {
		return nil, wrapErr("get", "customer", err)
	}
	return c, nil
}

func (r *customerRepository) Update(ctx context.Context, c *domain.Customer) error {
	query := `UPDATE customers SET name=$1, email=$2, phone=$3, licence_no=$4, updated_on=$5 WHERE id=$6`
	_, err := r.db.ExecContext(ctx, query, c.Name, c.Email, c.Phone, c.LicenceNo, time.Now(), c.ID)
	return wrapErr("update", "customer", err)
}

func (r *customerRepository) Delete(ctx context.Context, id int32) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM customers WHERE id = $1`, id)
	return wrapErr("delete", "customer", err)
}

func (r *customerRepository) List(ctx context.Context, page, pageSize int32) ([]domain.Customer, int32, error) {
	offset := (page - 1) * pageSize

	var count int32
	if err := r.db.QueryRowContext(ctx, `SELECT count(*) FROM customers`).Scan(&count); err != nil {
		return nil, 0, wrapErr("count", "customer", err)
	}

	query := `SELECT id, name, email, phone, licence_no, created_on, updated_on
	          FROM customers ORDER BY name LIMIT $1 OFFSET $2`
	rows, err := r.db.QueryContext(ctx, query, pageSize, offset)
	if err != nil {
		return nil, 0, wrapErr("list", "customer", err)
	}
	defer rows.Close()

	var customers []domain.Customer
	for rows.Next() {
		var c domain.Customer
		if err := rows.Scan(&c.ID, &c.Name, &c.Email, &c.Phone, &c.LicenceNo, &c.CreatedOn, &c.UpdatedOn); err != nil {
			return nil, 0, wrapErr("list", "customer", err)
		}
		customers = append(customers, c)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, wrapErr("list", "customer", err)
	}
	return customers, count, nil
}
