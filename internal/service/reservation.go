package service

import (
	"context"
	"errors"
	"fmt"

	"rentadesk-backend/internal/billing"
	"rentadesk-backend/internal/domain"
	"rentadesk-backend/internal/logger"
	"rentadesk-backend/internal/repository"
	"rentadesk-backend/internal/security"
)

// step is one write in a checkout/checkin sequence. A critical step's failure
// aborts the operation and is reported to the caller; an advisory step's
// failure is logged and swallowed, because once the physical fact of a
// handover or return is durable it must never be retracted by a downstream
// bookkeeping failure.
type step struct {
	name     string
	critical bool
	run      func(ctx context.Context) error
}

type reservationService struct {
	reservationRepo  repository.ReservationRepository
	carRepo          repository.CarRepository
	customerRepo     repository.CustomerRepository
	checkoutRepo     repository.CheckoutRepository
	checkinRepo      repository.CheckinRepository
	actors           security.ActorResolver
	emailSvc         EmailService
	defaultAllowance int32
}

func NewReservationService(
	reservationRepo repository.ReservationRepository,
	carRepo repository.CarRepository,
	customerRepo repository.CustomerRepository,
	checkoutRepo repository.CheckoutRepository,
	checkinRepo repository.CheckinRepository,
	actors security.ActorResolver,
	emailSvc EmailService,
	defaultKmAllowance int32,
) ReservationService {
	return &reservationService{
		reservationRepo:  reservationRepo,
		carRepo:          carRepo,
		customerRepo:     customerRepo,
		checkoutRepo:     checkoutRepo,
		checkinRepo:      checkinRepo,
		actors:           actors,
		emailSvc:         emailSvc,
		defaultAllowance: defaultKmAllowance,
	}
}

func (s *reservationService) Create(ctx context.Context, form CreateReservationForm) (*domain.Reservation, error) {
	if verr := validateStruct(form); verr != nil {
		return nil, verr
	}
	if _, err := s.carRepo.GetByID(ctx, form.CarID); err != nil {
		return nil, fmt.Errorf("car %d: %w", form.CarID, err)
	}
	if _, err := s.customerRepo.GetByID(ctx, form.CustomerID); err != nil {
		return nil, fmt.Errorf("customer %d: %w", form.CustomerID, err)
	}

	rsv := &domain.Reservation{
		CarID:       form.CarID,
		CustomerID:  form.CustomerID,
		StartDate:   form.StartDate,
		PlannedDays: form.PlannedDays,
		WithDriver:  form.WithDriver,
		Status:      domain.ReservationStatusBooked,
	}
	if err := s.reservationRepo.Create(ctx, rsv); err != nil {
		return nil, err
	}
	return rsv, nil
}

func (s *reservationService) Get(ctx context.Context, id int32) (*domain.ReservationDetail, error) {
	rsv, err := s.reservationRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	detail := &domain.ReservationDetail{Reservation: *rsv}
	if checkout, err := s.checkoutRepo.GetByReservation(ctx, id); err == nil {
		detail.Checkout = checkout
	} else if !errors.Is(err, domain.ErrNotFound) {
		return nil, err
	}
	if checkin, err := s.checkinRepo.GetByReservation(ctx, id); err == nil {
		detail.Checkin = checkin
	} else if !errors.Is(err, domain.ErrNotFound) {
		return nil, err
	}
	return detail, nil
}

func (s *reservationService) List(ctx context.Context, status string, customerID, page, pageSize int32) ([]domain.Reservation, int32, error) {
	return s.reservationRepo.List(ctx, status, customerID, page, pageSize)
}

func (s *reservationService) Cancel(ctx context.Context, id int32) (*domain.Reservation, error) {
	rsv, err := s.reservationRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if !rsv.Status.CanTransitionTo(domain.ReservationStatusCancelled) {
		return nil, fmt.Errorf("cancel reservation %d in status %s: %w", id, rsv.Status, domain.ErrIllegalTransition)
	}
	if err := s.reservationRepo.TransitionStatus(ctx, id, rsv.Status, domain.ReservationStatusCancelled); err != nil {
		return nil, err
	}
	rsv.Status = domain.ReservationStatusCancelled
	return rsv, nil
}

func (s *reservationService) RegisterCheckout(ctx context.Context, reservationID int32, form CheckoutForm) (*domain.CheckoutRecord, error) {
	rsv, err := s.reservationRepo.GetByID(ctx, reservationID)
	if err != nil {
		return nil, err
	}
	if !rsv.Status.CanTransitionTo(domain.ReservationStatusActive) {
		return nil, fmt.Errorf("checkout reservation %d in status %s: %w", reservationID, rsv.Status, domain.ErrIllegalTransition)
	}
	if err := s.requireNoCheckout(ctx, reservationID); err != nil {
		return nil, err
	}
	if err := form.validate(rsv.WithDriver); err != nil {
		return nil, err
	}

	actor := s.actors.CurrentActor(ctx)
	rec := &domain.CheckoutRecord{
		ReservationID: reservationID,
		CheckoutTime:  form.CheckoutTime,
		StartOdometer: *form.StartOdometer,
		DelivererName: form.DelivererName,
		DriverName:    form.DriverName,
		Notes:         form.Notes,
		ActorKind:     actor.Kind,
		ActorID:       actor.ID,
	}

	steps := []step{
		{name: "create checkout record", critical: true, run: func(ctx context.Context) error {
			return s.checkoutRepo.Create(ctx, rec)
		}},
		{name: "activate reservation", run: func(ctx context.Context) error {
			return s.reservationRepo.TransitionStatus(ctx, reservationID,
				domain.ReservationStatusBooked, domain.ReservationStatusActive)
		}},
		{name: "mark car unavailable", run: func(ctx context.Context) error {
			return s.carRepo.SetAvailability(ctx, rsv.CarID, false)
		}},
		{name: "send checkout confirmation", run: func(ctx context.Context) error {
			return s.notifyCheckout(ctx, rsv, rec)
		}},
	}
	if err := s.runSteps(ctx, "checkout", steps); err != nil {
		return nil, err
	}
	return rec, nil
}

func (s *reservationService) RegisterCheckin(ctx context.Context, reservationID int32, form CheckinForm) (*domain.CheckinRecord, error) {
	rsv, err := s.reservationRepo.GetByID(ctx, reservationID)
	if err != nil {
		return nil, err
	}
	if !rsv.Status.CanTransitionTo(domain.ReservationStatusCompleted) {
		return nil, fmt.Errorf("checkin reservation %d in status %s: %w", reservationID, rsv.Status, domain.ErrIllegalTransition)
	}

	checkout, err := s.checkoutRepo.GetByReservation(ctx, reservationID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, fmt.Errorf("checkin reservation %d without checkout: %w", reservationID, domain.ErrIllegalTransition)
		}
		return nil, err
	}
	if err := s.requireNoCheckin(ctx, reservationID); err != nil {
		return nil, err
	}
	if err := form.validate(checkout.StartOdometer); err != nil {
		return nil, err
	}

	car, err := s.carRepo.GetByID(ctx, rsv.CarID)
	if err != nil {
		return nil, err
	}
	allowance := car.DailyKmAllowance
	if allowance == 0 {
		allowance = s.defaultAllowance
	}

	extraDays := billing.ExtraDays(checkout.CheckoutTime, form.CheckinTime, int(rsv.PlannedDays))
	billableDays := int(rsv.PlannedDays) + extraDays
	extraKm := billing.ExtraKilometers(int(checkout.StartOdometer), int(*form.EndOdometer), billableDays, int(allowance))

	actor := s.actors.CurrentActor(ctx)
	rec := &domain.CheckinRecord{
		ReservationID:   reservationID,
		CheckinTime:     form.CheckinTime,
		EndOdometer:     *form.EndOdometer,
		ExtraDays:       int32(extraDays),
		BillableDays:    int32(billableDays),
		ExtraKilometers: int32(extraKm),
		Notes:           form.Notes,
		ActorKind:       actor.Kind,
		ActorID:         actor.ID,
	}

	steps := []step{
		{name: "create checkin record", critical: true, run: func(ctx context.Context) error {
			return s.checkinRepo.Create(ctx, rec)
		}},
		{name: "complete reservation", run: func(ctx context.Context) error {
			return s.reservationRepo.TransitionStatus(ctx, reservationID,
				domain.ReservationStatusActive, domain.ReservationStatusCompleted)
		}},
		{name: "mark car available", run: func(ctx context.Context) error {
			return s.carRepo.SetAvailability(ctx, rsv.CarID, true)
		}},
		{name: "send checkin receipt", run: func(ctx context.Context) error {
			return s.notifyCheckin(ctx, rsv, car.Plate, rec)
		}},
	}
	if err := s.runSteps(ctx, "checkin", steps); err != nil {
		return nil, err
	}
	return rec, nil
}

// runSteps executes the write sequence in order. Only a critical failure
// propagates; everything after the first critical step is bookkeeping that
// reconciliation can repair later.
func (s *reservationService) runSteps(ctx context.Context, op string, steps []step) error {
	for _, st := range steps {
		if err := st.run(ctx); err != nil {
			if st.critical {
				return err
			}
			logger.AdvisoryFailure(op, st.name, err)
		}
	}
	return nil
}

func (s *reservationService) requireNoCheckout(ctx context.Context, reservationID int32) error {
	_, err := s.checkoutRepo.GetByReservation(ctx, reservationID)
	if err == nil {
		return fmt.Errorf("reservation %d already checked out: %w", reservationID, domain.ErrIllegalTransition)
	}
	if errors.Is(err, domain.ErrNotFound) {
		return nil
	}
	return err
}

func (s *reservationService) requireNoCheckin(ctx context.Context, reservationID int32) error {
	_, err := s.checkinRepo.GetByReservation(ctx, reservationID)
	if err == nil {
		return fmt.Errorf("reservation %d already checked in: %w", reservationID, domain.ErrIllegalTransition)
	}
	if errors.Is(err, domain.ErrNotFound) {
		return nil
	}
	return err
}

func (s *reservationService) notifyCheckout(ctx context.Context, rsv *domain.Reservation, rec *domain.CheckoutRecord) error {
	customer, err := s.customerRepo.GetByID(ctx, rsv.CustomerID)
	if err != nil {
		return err
	}
	car, err := s.carRepo.GetByID(ctx, rsv.CarID)
	if err != nil {
		return err
	}
	expected := billing.ExpectedReturn(rec.CheckoutTime, int(rsv.PlannedDays))
	return s.emailSvc.SendCheckoutConfirmation(ctx, customer.Email, customer.Name, car.Plate, expected)
}

func (s *reservationService) notifyCheckin(ctx context.Context, rsv *domain.Reservation, plate string, rec *domain.CheckinRecord) error {
	customer, err := s.customerRepo.GetByID(ctx, rsv.CustomerID)
	if err != nil {
		return err
	}
	return s.emailSvc.SendCheckinReceipt(ctx, customer.Email, customer.Name, plate, rec)
}
