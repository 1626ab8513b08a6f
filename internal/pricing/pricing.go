// Package pricing holds the rental money and date arithmetic: total price
// from an inclusive calendar-date range, payment-status derivation, and the
// overdue predicate. Everything here is pure so the rest of the system can
// recompute instead of storing derived values independently.
package pricing

import (
	"fmt"
	"math"
	"time"

	"scooter-backoffice/internal/domain"
)

// DateLayout is the wire format for all calendar dates (no time-of-day).
const DateLayout = "2006-01-02"

// ParseDate converts a yyyy-mm-dd string into a date-only time.Time in UTC.
func ParseDate(s string) (time.Time, error) {
	t, err := time.Parse(DateLayout, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q, expected yyyy-mm-dd", s)
	}
	return t, nil
}

// DaysInclusive returns the number of charged days for a rental running from
// start to end, both endpoints included. A rental from day D to day D is one
// full day.
func DaysInclusive(start, end time.Time) (int, error) {
	if end.Before(start) {
		return 0, fmt.Errorf("end date must not be before start date")
	}
	return int(end.Sub(start).Hours()/24) + 1, nil
}

// TotalPrice computes round(dailyPrice * daysInclusive) for the given
// calendar-date range.
func TotalPrice(dailyPrice float64, startDate, endDate string) (float64, error) {
	start, err := ParseDate(startDate)
	if err != nil {
		return 0, fmt.Errorf("invalid start date: %w", err)
	}
	end, err := ParseDate(endDate)
	if err != nil {
		return 0, fmt.Errorf("invalid end date: %w", err)
	}
	days, err := DaysInclusive(start, end)
	if err != nil {
		return 0, err
	}
	return math.Round(dailyPrice * float64(days)), nil
}

// DerivePaymentStatus classifies amountPaid against totalPrice. It is the
// only source of payment_status; the column is rewritten from these two
// numbers on every create and update.
func DerivePaymentStatus(amountPaid, totalPrice float64) domain.PaymentStatus {
	switch {
	case amountPaid >= totalPrice:
		return domain.PaymentStatusPaid
	case amountPaid > 0:
		return domain.PaymentStatusPartial
	default:
		return domain.PaymentStatusPending
	}
}

// IsOverdue reports whether an active rental ending on endDate has passed
// relative to today. Date-only comparison: a rental ending today is not
// overdue.
func IsOverdue(endDate, today time.Time) bool {
	e := truncateToDate(endDate)
	t := truncateToDate(today)
	return e.Before(t)
}

func truncateToDate(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
