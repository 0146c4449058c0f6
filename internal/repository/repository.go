// Package repository declares the persistence collaborator contract the core
// operates against. Implementations must map storage failures onto
// domain.PersistenceError and uniqueness rejections onto domain.ErrDuplicateRecord.
package repository

import (
	"context"

	"rentadesk-backend/internal/domain"
)

type CarRepository interface {
	Create(ctx context.Context, car *domain.Car) error
	GetByID(ctx context.Context, id int32) (*domain.Car, error)
	Update(ctx context.Context, car *domain.Car) error
	Delete(ctx context.Context, id int32) error
	List(ctx context.Context, page, pageSize int32) ([]domain.Car, int32, error)

	// SetAvailability toggles the availability flag owned by the catalog.
	// The rental core only ever flips it on checkout/checkin.
	SetAvailability(ctx context.Context, id int32, available bool) error
}

type CustomerRepository interface {
	Create(ctx context.Context, customer *domain.Customer) error
	GetByID(ctx context.Context, id int32) (*domain.Customer, error)
	Update(ctx context.Context, customer *domain.Customer) error
	Delete(ctx context.Context, id int32) error
	List(ctx context.Context, page, pageSize int32) ([]domain.Customer, int32, error)
}

type ReservationRepository interface {
	Create(ctx context.Context, rsv *domain.Reservation) error
	GetByID(ctx context.Context, id int32) (*domain.Reservation, error)
	List(ctx context.Context, status string, customerID, page, pageSize int32) ([]domain.Reservation, int32, error)

	// TransitionStatus performs a conditional update: the row is only moved to
	// the target status when its current status still equals from. Zero rows
	// affected surfaces as domain.ErrIllegalTransition, never as success, which
	// pushes the precondition/write race into the storage layer.
	TransitionStatus(ctx context.Context, id int32, from, to domain.ReservationStatus) error
}

type CheckoutRepository interface {
	// Create persists a checkout record. The reservation reference carries a
	// uniqueness constraint so a duplicate checkout is rejected by storage.
	Create(ctx context.Context, rec *domain.CheckoutRecord) error
	GetByReservation(ctx context.Context, reservationID int32) (*domain.CheckoutRecord, error)
}

type CheckinRepository interface {
	Create(ctx context.Context, rec *domain.CheckinRecord) error
	GetByReservation(ctx context.Context, reservationID int32) (*domain.CheckinRecord, error)
}

type PartRepository interface {
	Create(ctx context.Context, part *domain.Part) error
	GetByID(ctx context.Context, id int32) (*domain.Part, error)
	Update(ctx context.Context, part *domain.Part) error
	Delete(ctx context.Context, id int32) error
	List(ctx context.Context, page, pageSize int32) ([]domain.Part, int32, error)
	AdjustQuantity(ctx context.Context, id int32, delta int32) (*domain.Part, error)
}
