package pricing

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"scooter-backoffice/internal/domain"
)

func TestTotalPrice(t *testing.T) {
	t.Run("InclusiveDayCount", func(t *testing.T) {
		// Jan 1 through Jan 3 is three charged days.
		total, err := TotalPrice(100, "2024-01-01", "2024-01-03")
		assert.NoError(t, err)
		assert.Equal(t, 300.0, total)
	})

	t.Run("SingleDayRental", func(t *testing.T) {
		total, err := TotalPrice(80, "2024-06-15", "2024-06-15")
		assert.NoError(t, err)
		assert.Equal(t, 80.0, total)
	})

	t.Run("RoundsToNearestInteger", func(t *testing.T) {
		total, err := TotalPrice(33.33, "2024-01-01", "2024-01-03")
		assert.NoError(t, err)
		assert.Equal(t, 100.0, total)
	})

	t.Run("EndBeforeStart", func(t *testing.T) {
		_, err := TotalPrice(100, "2024-01-05", "2024-01-01")
		assert.Error(t, err)
	})

	t.Run("MalformedDates", func(t *testing.T) {
		_, err := TotalPrice(100, "01/01/2024", "2024-01-03")
		assert.Error(t, err)

		_, err = TotalPrice(100, "2024-01-01", "not-a-date")
		assert.Error(t, err)
	})
}

func TestDaysInclusive(t *testing.T) {
	start, _ := ParseDate("2024-03-01")
	end, _ := ParseDate("2024-03-10")

	days, err := DaysInclusive(start, end)
	assert.NoError(t, err)
	assert.Equal(t, 10, days)

	days, err = DaysInclusive(start, start)
	assert.NoError(t, err)
	assert.Equal(t, 1, days)

	_, err = DaysInclusive(end, start)
	assert.Error(t, err)
}

func TestDerivePaymentStatus(t *testing.T) {
	tests := []struct {
		name       string
		amountPaid float64
		totalPrice float64
		want       domain.PaymentStatus
	}{
		{"NothingPaid", 0, 500, domain.PaymentStatusPending},
		{"PartiallyPaid", 100, 500, domain.PaymentStatusPartial},
		{"ExactlyPaid", 500, 500, domain.PaymentStatusPaid},
		{"Overpaid", 600, 500, domain.PaymentStatusPaid},
		{"ZeroTotal", 0, 0, domain.PaymentStatusPaid},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, DerivePaymentStatus(tt.amountPaid, tt.totalPrice))
		})
	}
}

func TestIsOverdue(t *testing.T) {
	today := time.Date(2025, 6, 10, 15, 30, 0, 0, time.UTC)

	t.Run("EndedYesterday", func(t *testing.T) {
		end := time.Date(2025, 6, 9, 0, 0, 0, 0, time.UTC)
		assert.True(t, IsOverdue(end, today))
	})

	t.Run("EndsToday", func(t *testing.T) {
		// Not overdue until the day is over, whatever the clock says.
		end := time.Date(2025, 6, 10, 0, 0, 0, 0, time.UTC)
		assert.False(t, IsOverdue(end, today))
	})

	t.Run("EndsTomorrow", func(t *testing.T) {
		end := time.Date(2025, 6, 11, 0, 0, 0, 0, time.UTC)
		assert.False(t, IsOverdue(end, today))
	})
}
