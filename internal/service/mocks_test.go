package service

import (
	"context"
	"time"

	"github.com/stretchr/testify/mock"

	"rentadesk-backend/internal/domain"
	"rentadesk-backend/internal/security"
)

// MockReservationRepo
type MockReservationRepo struct {
	mock.Mock
}

func (m *MockReservationRepo) Create(ctx context.Context, rsv *domain.Reservation) error {
	args := m.Called(ctx, rsv)
	return args.Error(0)
}
func (m *MockReservationRepo) GetByID(ctx context.Context, id int32) (*domain.Reservation, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Reservation), args.Error(1)
}
func (m *MockReservationRepo) List(ctx context.Context, status string, customerID, page, pageSize int32) ([]domain.Reservation, int32, error) {
	args := m.Called(ctx, status, customerID, page, pageSize)
	return args.Get(0).([]domain.Reservation), args.Get(1).(int32), args.Error(2)
}
func (m *MockReservationRepo) TransitionStatus(ctx context.Context, id int32, from, to domain.ReservationStatus) error {
	args := m.Called(ctx, id, from, to)
	return args.Error(0)
}

// MockCarRepo
type MockCarRepo struct {
	mock.Mock
}

func (m *MockCarRepo) Create(ctx context.Context, car *domain.Car) error {
	args := m.Called(ctx, car)
	return args.Error(0)
}
func (m *MockCarRepo) GetByID(ctx context.Context, id int32) (*domain.Car, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Car), args.Error(1)
}
func (m *MockCarRepo) Update(ctx context.Context, car *domain.Car) error {
	args := m.Called(ctx, car)
	return args.Error(0)
}
func (m *MockCarRepo) Delete(ctx context.Context, id int32) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}
func (m *MockCarRepo) List(ctx context.Context, page, pageSize int32) ([]domain.Car, int32, error) {
	args := m.Called(ctx, page, pageSize)
	return args.Get(0).([]domain.Car), args.Get(1).(int32), args.Error(2)
}
func (m *MockCarRepo) SetAvailability(ctx context.Context, id int32, available bool) error {
	args := m.Called(ctx, id, available)
	return args.Error(0)
}

// MockCustomerRepo
type MockCustomerRepo struct {
	mock.Mock
}

func (m *MockCustomerRepo) Create(ctx context.Context, customer *domain.Customer) error {
	args := m.Called(ctx, customer)
	return args.Error(0)
}
func (m *MockCustomerRepo) GetByID(ctx context.Context, id int32) (*domain.Customer, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Customer), args.Error(1)
}
func (m *MockCustomerRepo) Update(ctx context.Context, customer *domain.Customer) error {
	args := m.Called(ctx, customer)
	return args.Error(0)
}
func (m *MockCustomerRepo) Delete(ctx context.Context, id int32) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}
func (m *MockCustomerRepo) List(ctx context.Context, page, pageSize int32) ([]domain.Customer, int32, error) {
	args := m.Called(ctx, page, pageSize)
	return args.Get(0).([]domain.Customer), args.Get(1).(int32), args.Error(2)
}

// MockCheckoutRepo
type MockCheckoutRepo struct {
	mock.Mock
}

func (m *MockCheckoutRepo) Create(ctx context.Context, rec *domain.CheckoutRecord) error {
	args := m.Called(ctx, rec)
	return args.Error(0)
}
func (m *MockCheckoutRepo) GetByReservation(ctx context.Context, reservationID int32) (*domain.CheckoutRecord, error) {
	args := m.Called(ctx, reservationID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.CheckoutRecord), args.Error(1)
}

// MockCheckinRepo
type MockCheckinRepo struct {
	mock.Mock
}

func (m *MockCheckinRepo) Create(ctx context.Context, rec *domain.CheckinRecord) error {
	args := m.Called(ctx, rec)
	return args.Error(0)
}
func (m *MockCheckinRepo) GetByReservation(ctx context.Context, reservationID int32) (*domain.CheckinRecord, error) {
	args := m.Called(ctx, reservationID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.CheckinRecord), args.Error(1)
}

// MockEmailService
type MockEmailService struct {
	mock.Mock
}

func (m *MockEmailService) SendCheckoutConfirmation(ctx context.Context, toEmail, toName, plate string, expectedReturn time.Time) error {
	args := m.Called(ctx, toEmail, toName, plate, expectedReturn)
	return args.Error(0)
}
func (m *MockEmailService) SendCheckinReceipt(ctx context.Context, toEmail, toName, plate string, rec *domain.CheckinRecord) error {
	args := m.Called(ctx, toEmail, toName, plate, rec)
	return args.Error(0)
}
func (m *MockEmailService) SendReturnReminder(ctx context.Context, toEmail, toName, plate string, expectedReturn time.Time) error {
	args := m.Called(ctx, toEmail, toName, plate, expectedReturn)
	return args.Error(0)
}

// fixedActorResolver always reports the same actor, regardless of context.
type fixedActorResolver struct {
	actor security.Actor
}

func (r fixedActorResolver) CurrentActor(ctx context.Context) security.Actor {
	return r.actor
}
