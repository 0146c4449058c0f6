package postgres

import (
	"database/sql"
	"errors"

	"rentadesk-backend/internal/domain"
	"rentadesk-backend/internal/repository"

	"github.com/lib/pq"
)

type Store struct {
	db *sql.DB
	repository.CarRepository
	repository.CustomerRepository
	repository.ReservationRepository
	repository.CheckoutRepository
	repository.CheckinRepository
	repository.PartRepository
}

func NewStore(db *sql.DB) *Store {
	return &Store{
		db:                    db,
		CarRepository:         NewCarRepository(db),
		CustomerRepository:    NewCustomerRepository(db),
		ReservationRepository: NewReservationRepository(db),
		CheckoutRepository:    NewCheckoutRepository(db),
		CheckinRepository:     NewCheckinRepository(db),
		PartRepository:        NewPartRepository(db),
	}
}

const uniqueViolation = "23505"

// wrapErr maps raw database errors onto the domain error taxonomy so service
// code never inspects driver types.
func wrapErr(op, entity string, err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, sql.ErrNoRows) {
		return domain.ErrNotFound
	}
	var pqErr *pq.Error
	if errors.As(err, &pqErr) && pqErr.Code == uniqueViolation {
		err = domain.ErrDuplicateRecord
	}
	return &domain.PersistenceError{Op: op, Entity: entity, Err: err}
}
