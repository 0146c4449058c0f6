package domain

import "time"

type ReservationStatus string

const (
	ReservationStatusBooked    ReservationStatus = "BOOKED"
	ReservationStatusActive    ReservationStatus = "ACTIVE"
	ReservationStatusCompleted ReservationStatus = "COMPLETED"
	ReservationStatusCancelled ReservationStatus = "CANCELLED"
)

// legalTransitions is the full transition table. Statuses are monotonic
// except for cancellation, which is only reachable from BOOKED.
var legalTransitions = map[ReservationStatus][]ReservationStatus{
	ReservationStatusBooked: {ReservationStatusActive, ReservationStatusCancelled},
	ReservationStatusActive: {ReservationStatusCompleted},
}

// CanTransitionTo reports whether moving from s to next is a legal transition.
func (s ReservationStatus) CanTransitionTo(next ReservationStatus) bool {
	for _, t := range legalTransitions[s] {
		if t == next {
			return true
		}
	}
	return false
}

// Terminal reports whether no further transition is possible from s.
func (s ReservationStatus) Terminal() bool {
	return len(legalTransitions[s]) == 0
}

type Reservation struct {
	ID          int32             `json:"id"`
	CarID       int32             `json:"car_id"`
	CustomerID  int32             `json:"customer_id"`
	StartDate   time.Time         `json:"start_date"`
	PlannedDays int32             `json:"planned_days"`
	WithDriver  bool              `json:"with_driver"`
	Status      ReservationStatus `json:"status"`
	CreatedOn   time.Time         `json:"created_on"`
	UpdatedOn   time.Time         `json:"updated_on"`
}

// ReservationDetail joins a reservation with its checkout/checkin facts,
// either of which may not exist yet.
type ReservationDetail struct {
	Reservation
	Checkout *CheckoutRecord `json:"checkout,omitempty"`
	Checkin  *CheckinRecord  `json:"checkin,omitempty"`
}
