package service

import (
	"context"
	"time"

	"rentadesk-backend/internal/domain"
)

type ReservationService interface {
	Create(ctx context.Context, form CreateReservationForm) (*domain.Reservation, error)
	Get(ctx context.Context, id int32) (*domain.ReservationDetail, error)
	List(ctx context.Context, status string, customerID, page, pageSize int32) ([]domain.Reservation, int32, error)
	Cancel(ctx context.Context, id int32) (*domain.Reservation, error)

	// RegisterCheckout records the physical handover of the car and moves the
	// reservation to ACTIVE. RegisterCheckin records the return, computes the
	// billing figures and completes the reservation.
	RegisterCheckout(ctx context.Context, reservationID int32, form CheckoutForm) (*domain.CheckoutRecord, error)
	RegisterCheckin(ctx context.Context, reservationID int32, form CheckinForm) (*domain.CheckinRecord, error)
}

type CarService interface {
	Add(ctx context.Context, car *domain.Car) error
	Get(ctx context.Context, id int32) (*domain.Car, error)
	Update(ctx context.Context, car *domain.Car) error
	Delete(ctx context.Context, id int32) error
	List(ctx context.Context, page, pageSize int32) ([]domain.Car, int32, error)
}

type CustomerService interface {
	Add(ctx context.Context, customer *domain.Customer) error
	Get(ctx context.Context, id int32) (*domain.Customer, error)
	Update(ctx context.Context, customer *domain.Customer) error
	Delete(ctx context.Context, id int32) error
	List(ctx context.Context, page, pageSize int32) ([]domain.Customer, int32, error)
}

type PartService interface {
	Add(ctx context.Context, part *domain.Part) error
	Get(ctx context.Context, id int32) (*domain.Part, error)
	Update(ctx context.Context, part *domain.Part) error
	Delete(ctx context.Context, id int32) error
	List(ctx context.Context, page, pageSize int32) ([]domain.Part, int32, error)
	AdjustStock(ctx context.Context, id int32, delta int32) (*domain.Part, error)
}

type EmailService interface {
	SendCheckoutConfirmation(ctx context.Context, toEmail, toName, plate string, expectedReturn time.Time) error
	SendCheckinReceipt(ctx context.Context, toEmail, toName, plate string, rec *domain.CheckinRecord) error
	SendReturnReminder(ctx context.Context, toEmail, toName, plate string, expectedReturn time.Time) error
}
