package service

import (
	"fmt"
	"strings"
	"time"

	"rentadesk-backend/internal/domain"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New(validator.WithRequiredStructEnabled())

type CreateReservationForm struct {
	CarID       int32     `json:"car_id" validate:"required"`
	CustomerID  int32     `json:"customer_id" validate:"required"`
	StartDate   time.Time `json:"start_date" validate:"required"`
	PlannedDays int32     `json:"planned_days" validate:"required,gte=1"`
	WithDriver  bool      `json:"with_driver"`
}

// CheckoutForm carries the raw form data of the "register checkout" screen.
// Odometer readings are pointers so a missing field is distinguishable from
// a legitimate zero.
type CheckoutForm struct {
	CheckoutTime  time.Time `json:"checkout_time" validate:"required"`
	StartOdometer *int32    `json:"start_odometer" validate:"required,gte=0"`
	DelivererName string    `json:"deliverer_name" validate:"required"`
	DriverName    string    `json:"driver_name"`
	Notes         string    `json:"notes"`
}

// CheckinForm carries the raw form data of the "register checkin" screen.
type CheckinForm struct {
	CheckinTime time.Time `json:"checkin_time" validate:"required"`
	EndOdometer *int32    `json:"end_odometer" validate:"required,gte=0"`
	Notes       string    `json:"notes"`
}

// validateStruct runs the tag-based rules and converts failures into the
// domain validation error the HTTP layer understands.
func validateStruct(data interface{}) *domain.ValidationError {
	err := validate.Struct(data)
	if err == nil {
		return nil
	}

	fields := make(map[string]string)
	if verrs, ok := err.(validator.ValidationErrors); ok {
		for _, fe := range verrs {
			fields[fe.Field()] = messageFor(fe)
		}
	} else {
		fields["form"] = err.Error()
	}
	return &domain.ValidationError{Fields: fields}
}

func messageFor(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "this field is required"
	case "gte":
		return fmt.Sprintf("must be at least %s", fe.Param())
	default:
		return fmt.Sprintf("invalid %s field", fe.Field())
	}
}

func (f CheckoutForm) validate(withDriver bool) error {
	verr := validateStruct(f)
	if withDriver && strings.TrimSpace(f.DriverName) == "" {
		if verr == nil {
			verr = &domain.ValidationError{Fields: map[string]string{}}
		}
		verr.Fields["DriverName"] = "driver name is required for with-driver reservations"
	}
	if verr != nil {
		return verr
	}
	return nil
}

func (f CheckinForm) validate(startOdometer int32) error {
	if verr := validateStruct(f); verr != nil {
		return verr
	}
	if *f.EndOdometer < startOdometer {
		return domain.NewValidationError("EndOdometer",
			fmt.Sprintf("must not be below the checkout odometer reading of %d", startOdometer))
	}
	return nil
}
