package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"rentadesk-backend/internal/domain"
	"rentadesk-backend/internal/security"
)

type reservationFixture struct {
	reservations *MockReservationRepo
	cars         *MockCarRepo
	customers    *MockCustomerRepo
	checkouts    *MockCheckoutRepo
	checkins     *MockCheckinRepo
	email        *MockEmailService
	svc          ReservationService
}

func newReservationFixture(actor security.Actor) *reservationFixture {
	f := &reservationFixture{
		reservations: &MockReservationRepo{},
		cars:         &MockCarRepo{},
		customers:    &MockCustomerRepo{},
		checkouts:    &MockCheckoutRepo{},
		checkins:     &MockCheckinRepo{},
		email:        &MockEmailService{},
	}
	f.svc = NewReservationService(
		f.reservations, f.cars, f.customers, f.checkouts, f.checkins,
		fixedActorResolver{actor: actor}, f.email, 100,
	)
	return f
}

func int32Ptr(v int32) *int32 { return &v }

func bookedReservation(id int32, withDriver bool) *domain.Reservation {
	return &domain.Reservation{
		ID:          id,
		CarID:       10,
		CustomerID:  20,
		StartDate:   time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC),
		PlannedDays: 2,
		WithDriver:  withDriver,
		Status:      domain.ReservationStatusBooked,
	}
}

func validCheckoutForm() CheckoutForm {
	return CheckoutForm{
		CheckoutTime:  time.Date(2024, 3, 1, 9, 0, 0, 0, time.UTC),
		StartOdometer: int32Ptr(1000),
		DelivererName: "M. Garcia",
	}
}

func TestRegisterCheckout_Success(t *testing.T) {
	actorID := int32(42)
	f := newReservationFixture(security.Actor{Kind: domain.ActorKindAccount, ID: &actorID})
	ctx := context.Background()

	rsv := bookedReservation(1, false)
	f.reservations.On("GetByID", ctx, int32(1)).Return(rsv, nil)
	f.checkouts.On("GetByReservation", ctx, int32(1)).Return(nil, domain.ErrNotFound)
	f.checkouts.On("Create", ctx, mock.AnythingOfType("*domain.CheckoutRecord")).Return(nil)
	f.reservations.On("TransitionStatus", ctx, int32(1),
		domain.ReservationStatusBooked, domain.ReservationStatusActive).Return(nil)
	f.cars.On("SetAvailability", ctx, int32(10), false).Return(nil)
	f.customers.On("GetByID", ctx, int32(20)).Return(&domain.Customer{ID: 20, Name: "Ana", Email: "ana@example.com"}, nil)
	f.cars.On("GetByID", ctx, int32(10)).Return(&domain.Car{ID: 10, Plate: "B-1234-XY"}, nil)
	f.email.On("SendCheckoutConfirmation", ctx, "ana@example.com", "Ana", "B-1234-XY", mock.AnythingOfType("time.Time")).Return(nil)

	rec, err := f.svc.RegisterCheckout(ctx, 1, validCheckoutForm())
	require.NoError(t, err)
	require.NotNil(t, rec)
	assert.Equal(t, int32(1), rec.ReservationID)
	assert.Equal(t, int32(1000), rec.StartOdometer)
	assert.Equal(t, domain.ActorKindAccount, rec.ActorKind)
	require.NotNil(t, rec.ActorID)
	assert.Equal(t, int32(42), *rec.ActorID)
	f.reservations.AssertExpectations(t)
	f.checkouts.AssertExpectations(t)
	f.cars.AssertExpectations(t)
}

func TestRegisterCheckout_IllegalStatus(t *testing.T) {
	f := newReservationFixture(security.None())
	ctx := context.Background()

	rsv := bookedReservation(1, false)
	rsv.Status = domain.ReservationStatusActive
	f.reservations.On("GetByID", ctx, int32(1)).Return(rsv, nil)

	rec, err := f.svc.RegisterCheckout(ctx, 1, validCheckoutForm())
	assert.Nil(t, rec)
	assert.ErrorIs(t, err, domain.ErrIllegalTransition)
	f.checkouts.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestRegisterCheckout_AlreadyCheckedOut(t *testing.T) {
	f := newReservationFixture(security.None())
	ctx := context.Background()

	f.reservations.On("GetByID", ctx, int32(1)).Return(bookedReservation(1, false), nil)
	f.checkouts.On("GetByReservation", ctx, int32(1)).Return(&domain.CheckoutRecord{ID: 5, ReservationID: 1}, nil)

	rec, err := f.svc.RegisterCheckout(ctx, 1, validCheckoutForm())
	assert.Nil(t, rec)
	assert.ErrorIs(t, err, domain.ErrIllegalTransition)
	f.checkouts.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestRegisterCheckout_WithDriverRequiresDriverName(t *testing.T) {
	f := newReservationFixture(security.None())
	ctx := context.Background()

	f.reservations.On("GetByID", ctx, int32(1)).Return(bookedReservation(1, true), nil)
	f.checkouts.On("GetByReservation", ctx, int32(1)).Return(nil, domain.ErrNotFound)

	form := validCheckoutForm()
	form.DriverName = "   "

	rec, err := f.svc.RegisterCheckout(ctx, 1, form)
	assert.Nil(t, rec)

	var verr *domain.ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Contains(t, verr.Fields, "DriverName")
	f.checkouts.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestRegisterCheckout_MissingFields(t *testing.T) {
	f := newReservationFixture(security.None())
	ctx := context.Background()

	f.reservations.On("GetByID", ctx, int32(1)).Return(bookedReservation(1, false), nil)
	f.checkouts.On("GetByReservation", ctx, int32(1)).Return(nil, domain.ErrNotFound)

	rec, err := f.svc.RegisterCheckout(ctx, 1, CheckoutForm{})
	assert.Nil(t, rec)

	var verr *domain.ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Contains(t, verr.Fields, "CheckoutTime")
	assert.Contains(t, verr.Fields, "StartOdometer")
	assert.Contains(t, verr.Fields, "DelivererName")
}

func TestRegisterCheckout_AdvisoryFailureStillSucceeds(t *testing.T) {
	f := newReservationFixture(security.None())
	ctx := context.Background()

	rsv := bookedReservation(1, false)
	f.reservations.On("GetByID", ctx, int32(1)).Return(rsv, nil)
	f.checkouts.On("GetByReservation", ctx, int32(1)).Return(nil, domain.ErrNotFound)
	f.checkouts.On("Create", ctx, mock.AnythingOfType("*domain.CheckoutRecord")).Return(nil)
	f.reservations.On("TransitionStatus", ctx, int32(1),
		domain.ReservationStatusBooked, domain.ReservationStatusActive).Return(errors.New("db down"))
	f.cars.On("SetAvailability", ctx, int32(10), false).Return(errors.New("db down"))
	f.customers.On("GetByID", ctx, int32(20)).Return(nil, errors.New("db down"))

	rec, err := f.svc.RegisterCheckout(ctx, 1, validCheckoutForm())
	require.NoError(t, err)
	require.NotNil(t, rec)
}

func TestRegisterCheckout_CriticalFailurePropagates(t *testing.T) {
	f := newReservationFixture(security.None())
	ctx := context.Background()

	f.reservations.On("GetByID", ctx, int32(1)).Return(bookedReservation(1, false), nil)
	f.checkouts.On("GetByReservation", ctx, int32(1)).Return(nil, domain.ErrNotFound)
	f.checkouts.On("Create", ctx, mock.AnythingOfType("*domain.CheckoutRecord")).
		Return(&domain.PersistenceError{Op: "create", Entity: "checkout", Err: domain.ErrDuplicateRecord})

	rec, err := f.svc.RegisterCheckout(ctx, 1, validCheckoutForm())
	assert.Nil(t, rec)
	assert.ErrorIs(t, err, domain.ErrDuplicateRecord)
	f.reservations.AssertNotCalled(t, "TransitionStatus", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func activeReservationWithCheckout(id int32) (*domain.Reservation, *domain.CheckoutRecord) {
	rsv := bookedReservation(id, false)
	rsv.Status = domain.ReservationStatusActive
	checkout := &domain.CheckoutRecord{
		ID:            5,
		ReservationID: id,
		CheckoutTime:  time.Date(2024, 3, 1, 9, 0, 0, 0, time.UTC),
		StartOdometer: 1000,
	}
	return rsv, checkout
}

func TestRegisterCheckin_BillingFields(t *testing.T) {
	f := newReservationFixture(security.None())
	ctx := context.Background()

	rsv, checkout := activeReservationWithCheckout(1)
	f.reservations.On("GetByID", ctx, int32(1)).Return(rsv, nil)
	f.checkouts.On("GetByReservation", ctx, int32(1)).Return(checkout, nil)
	f.checkins.On("GetByReservation", ctx, int32(1)).Return(nil, domain.ErrNotFound)
	f.cars.On("GetByID", ctx, int32(10)).Return(&domain.Car{ID: 10, Plate: "B-1234-XY", DailyKmAllowance: 100}, nil)
	f.checkins.On("Create", ctx, mock.AnythingOfType("*domain.CheckinRecord")).Return(nil)
	f.reservations.On("TransitionStatus", ctx, int32(1),
		domain.ReservationStatusActive, domain.ReservationStatusCompleted).Return(nil)
	f.cars.On("SetAvailability", ctx, int32(10), true).Return(nil)
	f.customers.On("GetByID", ctx, int32(20)).Return(&domain.Customer{ID: 20, Name: "Ana", Email: "ana@example.com"}, nil)
	f.email.On("SendCheckinReceipt", ctx, "ana@example.com", "Ana", "B-1234-XY", mock.AnythingOfType("*domain.CheckinRecord")).Return(nil)

	// Expected return is 2024-03-03T09:00. Returning 25 hours past it crosses
	// one full day plus part of another.
	form := CheckinForm{
		CheckinTime: time.Date(2024, 3, 4, 10, 0, 0, 0, time.UTC),
		EndOdometer: int32Ptr(1500),
	}

	rec, err := f.svc.RegisterCheckin(ctx, 1, form)
	require.NoError(t, err)
	require.NotNil(t, rec)
	assert.Equal(t, int32(2), rec.ExtraDays)
	assert.Equal(t, int32(4), rec.BillableDays)
	// 500 km driven against a 4-day allowance of 400.
	assert.Equal(t, int32(100), rec.ExtraKilometers)
	f.checkins.AssertExpectations(t)
	f.reservations.AssertExpectations(t)
}

func TestRegisterCheckin_OnTimeReturn(t *testing.T) {
	f := newReservationFixture(security.None())
	ctx := context.Background()

	rsv, checkout := activeReservationWithCheckout(1)
	f.reservations.On("GetByID", ctx, int32(1)).Return(rsv, nil)
	f.checkouts.On("GetByReservation", ctx, int32(1)).Return(checkout, nil)
	f.checkins.On("GetByReservation", ctx, int32(1)).Return(nil, domain.ErrNotFound)
	f.cars.On("GetByID", ctx, int32(10)).Return(&domain.Car{ID: 10, Plate: "B-1234-XY", DailyKmAllowance: 100}, nil)
	f.checkins.On("Create", ctx, mock.AnythingOfType("*domain.CheckinRecord")).Return(nil)
	f.reservations.On("TransitionStatus", ctx, int32(1),
		domain.ReservationStatusActive, domain.ReservationStatusCompleted).Return(nil)
	f.cars.On("SetAvailability", ctx, int32(10), true).Return(nil)
	f.customers.On("GetByID", ctx, int32(20)).Return(&domain.Customer{ID: 20, Name: "Ana", Email: "ana@example.com"}, nil)
	f.email.On("SendCheckinReceipt", ctx, "ana@example.com", "Ana", "B-1234-XY", mock.AnythingOfType("*domain.CheckinRecord")).Return(nil)

	form := CheckinForm{
		CheckinTime: time.Date(2024, 3, 3, 8, 30, 0, 0, time.UTC),
		EndOdometer: int32Ptr(1150),
	}

	rec, err := f.svc.RegisterCheckin(ctx, 1, form)
	require.NoError(t, err)
	assert.Equal(t, int32(0), rec.ExtraDays)
	assert.Equal(t, int32(2), rec.BillableDays)
	assert.Equal(t, int32(0), rec.ExtraKilometers)
}

func TestRegisterCheckin_DefaultAllowanceFallback(t *testing.T) {
	f := newReservationFixture(security.None())
	ctx := context.Background()

	rsv, checkout := activeReservationWithCheckout(1)
	f.reservations.On("GetByID", ctx, int32(1)).Return(rsv, nil)
	f.checkouts.On("GetByReservation", ctx, int32(1)).Return(checkout, nil)
	f.checkins.On("GetByReservation", ctx, int32(1)).Return(nil, domain.ErrNotFound)
	// No per-car allowance declared, so the configured default of 100 applies.
	f.cars.On("GetByID", ctx, int32(10)).Return(&domain.Car{ID: 10, Plate: "B-1234-XY"}, nil)
	f.checkins.On("Create", ctx, mock.AnythingOfType("*domain.CheckinRecord")).Return(nil)
	f.reservations.On("TransitionStatus", ctx, int32(1),
		domain.ReservationStatusActive, domain.ReservationStatusCompleted).Return(nil)
	f.cars.On("SetAvailability", ctx, int32(10), true).Return(nil)
	f.customers.On("GetByID", ctx, int32(20)).Return(&domain.Customer{ID: 20, Name: "Ana", Email: "ana@example.com"}, nil)
	f.email.On("SendCheckinReceipt", ctx, "ana@example.com", "Ana", "B-1234-XY", mock.AnythingOfType("*domain.CheckinRecord")).Return(nil)

	form := CheckinForm{
		CheckinTime: time.Date(2024, 3, 3, 8, 0, 0, 0, time.UTC),
		EndOdometer: int32Ptr(1250),
	}

	rec, err := f.svc.RegisterCheckin(ctx, 1, form)
	require.NoError(t, err)
	assert.Equal(t, int32(50), rec.ExtraKilometers)
}

func TestRegisterCheckin_WithoutCheckout(t *testing.T) {
	f := newReservationFixture(security.None())
	ctx := context.Background()

	rsv := bookedReservation(1, false)
	rsv.Status = domain.ReservationStatusActive
	f.reservations.On("GetByID", ctx, int32(1)).Return(rsv, nil)
	f.checkouts.On("GetByReservation", ctx, int32(1)).Return(nil, domain.ErrNotFound)

	rec, err := f.svc.RegisterCheckin(ctx, 1, CheckinForm{
		CheckinTime: time.Date(2024, 3, 3, 9, 0, 0, 0, time.UTC),
		EndOdometer: int32Ptr(1200),
	})
	assert.Nil(t, rec)
	assert.ErrorIs(t, err, domain.ErrIllegalTransition)
}

func TestRegisterCheckin_EndOdometerBelowStart(t *testing.T) {
	f := newReservationFixture(security.None())
	ctx := context.Background()

	rsv, checkout := activeReservationWithCheckout(1)
	f.reservations.On("GetByID", ctx, int32(1)).Return(rsv, nil)
	f.checkouts.On("GetByReservation", ctx, int32(1)).Return(checkout, nil)
	f.checkins.On("GetByReservation", ctx, int32(1)).Return(nil, domain.ErrNotFound)

	rec, err := f.svc.RegisterCheckin(ctx, 1, CheckinForm{
		CheckinTime: time.Date(2024, 3, 3, 9, 0, 0, 0, time.UTC),
		EndOdometer: int32Ptr(900),
	})
	assert.Nil(t, rec)

	var verr *domain.ValidationError
	require.ErrorAs(t, err, &verr)
	f.checkins.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestRegisterCheckin_NotActive(t *testing.T) {
	f := newReservationFixture(security.None())
	ctx := context.Background()

	f.reservations.On("GetByID", ctx, int32(1)).Return(bookedReservation(1, false), nil)

	rec, err := f.svc.RegisterCheckin(ctx, 1, CheckinForm{
		CheckinTime: time.Date(2024, 3, 3, 9, 0, 0, 0, time.UTC),
		EndOdometer: int32Ptr(1200),
	})
	assert.Nil(t, rec)
	assert.ErrorIs(t, err, domain.ErrIllegalTransition)
}

func TestCancel(t *testing.T) {
	t.Run("from booked", func(t *testing.T) {
		f := newReservationFixture(security.None())
		ctx := context.Background()

		f.reservations.On("GetByID", ctx, int32(1)).Return(bookedReservation(1, false), nil)
		f.reservations.On("TransitionStatus", ctx, int32(1),
			domain.ReservationStatusBooked, domain.ReservationStatusCancelled).Return(nil)

		rsv, err := f.svc.Cancel(ctx, 1)
		require.NoError(t, err)
		assert.Equal(t, domain.ReservationStatusCancelled, rsv.Status)
	})

	t.Run("from active", func(t *testing.T) {
		f := newReservationFixture(security.None())
		ctx := context.Background()

		active := bookedReservation(1, false)
		active.Status = domain.ReservationStatusActive
		f.reservations.On("GetByID", ctx, int32(1)).Return(active, nil)

		rsv, err := f.svc.Cancel(ctx, 1)
		assert.Nil(t, rsv)
		assert.ErrorIs(t, err, domain.ErrIllegalTransition)
		f.reservations.AssertNotCalled(t, "TransitionStatus", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	})
}

func TestCreateReservation_Validation(t *testing.T) {
	f := newReservationFixture(security.None())
	ctx := context.Background()

	rsv, err := f.svc.Create(ctx, CreateReservationForm{
		CarID:      10,
		CustomerID: 20,
		StartDate:  time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC),
		// PlannedDays missing
	})
	assert.Nil(t, rsv)

	var verr *domain.ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Contains(t, verr.Fields, "PlannedDays")
}

func TestCreateReservation_Success(t *testing.T) {
	f := newReservationFixture(security.None())
	ctx := context.Background()

	f.cars.On("GetByID", ctx, int32(10)).Return(&domain.Car{ID: 10}, nil)
	f.customers.On("GetByID", ctx, int32(20)).Return(&domain.Customer{ID: 20}, nil)
	f.reservations.On("Create", ctx, mock.AnythingOfType("*domain.Reservation")).Return(nil)

	rsv, err := f.svc.Create(ctx, CreateReservationForm{
		CarID:       10,
		CustomerID:  20,
		StartDate:   time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC),
		PlannedDays: 2,
	})
	require.NoError(t, err)
	assert.Equal(t, domain.ReservationStatusBooked, rsv.Status)
}
