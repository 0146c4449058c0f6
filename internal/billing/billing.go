// Package billing holds the rental-duration arithmetic. Everything here is a
// pure function of its inputs; nothing reads the wall clock.
package billing

import "time"

// ExpectedReturn is the contractual return instant for a rental: the checkout
// date advanced by plannedDays calendar days, at the same hour and minute as
// the checkout. The contract is "same hour, N days later", not "24×N hours
// later", so this must stay date arithmetic to survive DST and calendar
// boundaries. Seconds and sub-seconds are zeroed.
func ExpectedReturn(checkoutTime time.Time, plannedDays int) time.Time {
	d := checkoutTime.AddDate(0, 0, plannedDays)
	return time.Date(d.Year(), d.Month(), d.Day(),
		checkoutTime.Hour(), checkoutTime.Minute(), 0, 0, checkoutTime.Location())
}

// ExtraDays computes the penalty days incurred by returning the car after the
// expected return instant.
//
// Returning at or before the exact expected instant costs nothing; there is
// no grace period past it. Lateness within the expected calendar day charges
// one full day. Beyond that, whole days late are charged as-is, plus one more
// only when the return time-of-day is strictly later than the contractual
// hour:minute (equality does not add a day).
func ExtraDays(checkoutTime, checkinTime time.Time, plannedDays int) int {
	expected := ExpectedReturn(checkoutTime, plannedDays)
	if !checkinTime.After(expected) {
		return 0
	}

	diffDays := int(checkinTime.Sub(expected) / (24 * time.Hour))
	if diffDays == 0 {
		return 1
	}

	if minuteOfDay(checkinTime) > minuteOfDay(expected) {
		return diffDays + 1
	}
	return diffDays
}

// BillableDays is the total day count to bill: the originally booked days
// plus any extra days from a late return.
func BillableDays(checkoutTime, checkinTime time.Time, plannedDays int) int {
	return plannedDays + ExtraDays(checkoutTime, checkinTime, plannedDays)
}

// ExtraKilometers is the fee basis for distance beyond the contract allowance:
// kilometers actually driven minus billableDays times the daily allowance,
// floored at zero.
func ExtraKilometers(startOdometer, endOdometer, billableDays, dailyAllowance int) int {
	extra := endOdometer - startOdometer - billableDays*dailyAllowance
	if extra < 0 {
		return 0
	}
	return extra
}

func minuteOfDay(t time.Time) int {
	return t.Hour()*60 + t.Minute()
}
