package jobs

import (
	"context"
	"time"

	"rentadesk-backend/internal/billing"
	"rentadesk-backend/internal/logger"
)

// ReconcileCarAvailability repairs car availability flags that drifted from
// the reservation state. The flag is written best-effort during checkout and
// checkin, so a failed write leaves a car marked wrong until this job runs.
func (jr *JobRunner) ReconcileCarAvailability() {
	jr.runWithRecovery("ReconcileCarAvailability", func() {
		ctx := context.Background()

		// Cars with an active reservation must not be listed as available.
		markBusy := `
			UPDATE cars
			SET is_available = FALSE,
			    updated_on = NOW()
			WHERE is_available = TRUE
			  AND id IN (
				SELECT car_id FROM reservations WHERE status = 'ACTIVE'
			  )
			RETURNING id
		`
		busyCount, err := jr.execReturningCount(ctx, markBusy)
		if err != nil {
			logger.Error("Failed to mark rented cars unavailable", "error", err)
			return
		}

		// Cars with no active reservation go back on the lot.
		markFree := `
			UPDATE cars
			SET is_available = TRUE,
			    updated_on = NOW()
			WHERE is_available = FALSE
			  AND id NOT IN (
				SELECT car_id FROM reservations WHERE status = 'ACTIVE'
			  )
			RETURNING id
		`
		freeCount, err := jr.execReturningCount(ctx, markFree)
		if err != nil {
			logger.Error("Failed to mark returned cars available", "error", err)
			return
		}

		logger.Info("Reconciled car availability", "marked_unavailable", busyCount, "marked_available", freeCount)
	})
}

// SendReturnReminders emails customers whose active rental is past its
// expected return time.
func (jr *JobRunner) SendReturnReminders() {
	jr.runWithRecovery("SendReturnReminders", func() {
		ctx := context.Background()

		query := `
			SELECT r.id, r.planned_days, co.checkout_time,
			       cu.name, cu.email, ca.plate
			FROM reservations r
			JOIN checkouts co ON co.reservation_id = r.id
			JOIN customers cu ON cu.id = r.customer_id
			JOIN cars ca ON ca.id = r.car_id
			WHERE r.status = 'ACTIVE'
		`

		rows, err := jr.db.QueryContext(ctx, query)
		if err != nil {
			logger.Error("Failed to query active rentals", "error", err)
			return
		}
		defer rows.Close()

		now := time.Now()
		sent := 0
		for rows.Next() {
			var (
				reservationID int32
				plannedDays   int
				checkoutTime  time.Time
				name, email   string
				plate         string
			)
			if err := rows.Scan(&reservationID, &plannedDays, &checkoutTime, &name, &email, &plate); err != nil {
				logger.Error("Failed to scan active rental", "error", err)
				continue
			}

			expected := billing.ExpectedReturn(checkoutTime, plannedDays)
			if !now.After(expected) {
				continue
			}

			if err := jr.services.Email.SendReturnReminder(ctx, email, name, plate, expected); err != nil {
				logger.Error("Failed to send return reminder",
					"reservation_id", reservationID, "email", email, "error", err)
				continue
			}
			sent++
			logger.Debug("Sent return reminder",
				"reservation_id", reservationID, "plate", plate, "expected_return", expected)
		}

		if err := rows.Err(); err != nil {
			logger.Error("Error iterating active rentals", "error", err)
			return
		}

		logger.Info("Sent return reminders", "count", sent)
	})
}

func (jr *JobRunner) execReturningCount(ctx context.Context, query string) (int, error) {
	rows, err := jr.db.QueryContext(ctx, query)
	if err != nil {
		return 0, err
	}
	defer rows.Close()

	count := 0
	for rows.Next() {
		var id int32
		if err := rows.Scan(&id); err != nil {
			return count, err
		}
		count++
	}
	return count, rows.Err()
}
