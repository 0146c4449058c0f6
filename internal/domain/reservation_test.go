package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestReservationStatus_CanTransitionTo(t *testing.T) {
	tests := []struct {
		name  string
		from  ReservationStatus
		to    ReservationStatus
		legal bool
	}{
		{"booked to active", ReservationStatusBooked, ReservationStatusActive, true},
		{"booked to cancelled", ReservationStatusBooked, ReservationStatusCancelled, true},
		{"booked to completed", ReservationStatusBooked, ReservationStatusCompleted, false},
		{"active to completed", ReservationStatusActive, ReservationStatusCompleted, true},
		{"active to cancelled", ReservationStatusActive, ReservationStatusCancelled, false},
		{"active to booked", ReservationStatusActive, ReservationStatusBooked, false},
		{"completed to anything", ReservationStatusCompleted, ReservationStatusActive, false},
		{"cancelled to anything", ReservationStatusCancelled, ReservationStatusActive, false},
		{"self transition", ReservationStatusBooked, ReservationStatusBooked, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.legal, tt.from.CanTransitionTo(tt.to))
		})
	}
}

func TestReservationStatus_Terminal(t *testing.T) {
	assert.False(t, ReservationStatusBooked.Terminal())
	assert.False(t, ReservationStatusActive.Terminal())
	assert.True(t, ReservationStatusCompleted.Terminal())
	assert.True(t, ReservationStatusCancelled.Terminal())
}
