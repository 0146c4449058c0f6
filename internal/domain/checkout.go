package domain

import "time"

// ActorKind identifies which of the two identity schemes performed an action.
// A record never carries both kinds at once.
type ActorKind string

const (
	ActorKindAccount     ActorKind = "ACCOUNT"
	ActorKindTenantLocal ActorKind = "TENANT_LOCAL"
	ActorKindNone        ActorKind = "NONE"
)

// CheckoutRecord is the immutable fact that a car was handed to the customer.
// Exactly one exists per reservation; it is never updated or deleted.
type CheckoutRecord struct {
	ID            int32     `json:"id"`
	ReservationID int32     `json:"reservation_id"`
	CheckoutTime  time.Time `json:"checkout_time"`
	StartOdometer int32     `json:"start_odometer"`
	DelivererName string    `json:"deliverer_name"`
	DriverName    string    `json:"driver_name,omitempty"`
	Notes         string    `json:"notes,omitempty"`
	ActorKind     ActorKind `json:"actor_kind"`
	ActorID       *int32    `json:"actor_id,omitempty"`
	CreatedOn     time.Time `json:"created_on"`
}

// CheckinRecord is the immutable fact that a car was returned, including the
// billing figures computed at checkin time so callers never recompute them.
type CheckinRecord struct {
	ID              int32     `json:"id"`
	ReservationID   int32     `json:"reservation_id"`
	CheckinTime     time.Time `json:"checkin_time"`
	EndOdometer     int32     `json:"end_odometer"`
	ExtraDays       int32     `json:"extra_days"`
	BillableDays    int32     `json:"billable_days"`
	ExtraKilometers int32     `json:"extra_kilometers"`
	Notes           string    `json:"notes,omitempty"`
	ActorKind       ActorKind `json:"actor_kind"`
	ActorID         *int32    `json:"actor_id,omitempty"`
	CreatedOn       time.Time `json:"created_on"`
}
