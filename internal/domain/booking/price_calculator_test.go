//go:build unit

package booking_test

import (
	"testing"
	"time"

	"hotelier/internal/domain/booking"

	"github.com/stretchr/testify/assert"
)

func day1(hour, minute int) time.Time {
	return time.Date(2025, 3, 1, hour, minute, 0, 0, time.UTC)
}

func TestTieredPriceCalculator(t *testing.T) {
	calc := booking.NewTieredPriceCalculator()
	rate := booking.NewMoney(500_000)

	t.Run("hourly stays up to 12 hours bill first hour at 20% then 10%", func(t *testing.T) {
		cases := []struct {
			name     string
			checkIn  time.Time
			checkOut time.Time
			expected int64
		}{
			{"single hour", day1(8, 0), day1(9, 0), 100_000},
			{"two hours", day1(8, 0), day1(10, 0), 150_000},
			{"fractional hour rounds up", day1(8, 0), day1(9, 30), 150_000},
			{"sub-hour stay bills one hour", day1(8, 0), day1(8, 20), 100_000},
			{"twelve hours exactly", day1(8, 0), day1(20, 0), 100_000 + 11*50_000},
		}

		for _, tc := range cases {
			t.Run(tc.name, func(t *testing.T) {
				charge := calc.Calculate(tc.checkIn, tc.checkOut, booking.RateHourly, rate)
				assert.Equal(t, tc.expected, charge.Amount())
			})
		}
	})

	t.Run("nightly stays bill ceil(hours/24) nights", func(t *testing.T) {
		cases := []struct {
			name     string
			checkIn  time.Time
			checkOut time.Time
			rateType booking.RateType
			expected int64
		}{
			{"one full night", day1(8, 0), day1(8, 0).Add(24 * time.Hour), booking.RateNightly, 500_000},
			{"partial second night rounds up", day1(8, 0), day1(8, 0).Add(30 * time.Hour), booking.RateNightly, 1_000_000},
			{"short nightly stay still bills one night", day1(8, 0), day1(10, 0), booking.RateNightly, 500_000},
			{"hourly stay over 12h falls back to nightly", day1(8, 0), day1(21, 0), booking.RateHourly, 500_000},
			{"three nights", day1(8, 0), day1(8, 0).Add(72 * time.Hour), booking.RateNightly, 1_500_000},
		}

		for _, tc := range cases {
			t.Run(tc.name, func(t *testing.T) {
				charge := calc.Calculate(tc.checkIn, tc.checkOut, tc.rateType, rate)
				assert.Equal(t, tc.expected, charge.Amount())
			})
		}
	})

	t.Run("non-positive interval bills nothing", func(t *testing.T) {
		assert.Equal(t, int64(0), calc.Calculate(day1(10, 0), day1(10, 0), booking.RateNightly, rate).Amount())
		assert.Equal(t, int64(0), calc.Calculate(day1(10, 0), day1(8, 0), booking.RateHourly, rate).Amount())
	})

	t.Run("deterministic for identical inputs", func(t *testing.T) {
		first := calc.Calculate(day1(8, 0), day1(10, 0), booking.RateHourly, rate)
		second := calc.Calculate(day1(8, 0), day1(10, 0), booking.RateHourly, rate)
		assert.Equal(t, first, second)
	})
}

func TestParseRateType(t *testing.T) {
	cases := []struct {
		input    string
		expected booking.RateType
		wantErr  bool
	}{
		{"hourly", booking.RateHourly, false},
		{"Nightly", booking.RateNightly, false},
		{"  HOURLY  ", booking.RateHourly, false},
		{"weekly", "", true},
		{"", "", true},
	}

	for _, tc := range cases {
		t.Run("input "+tc.input, func(t *testing.T) {
			got, err := booking.ParseRateType(tc.input)
			if tc.wantErr {
				assert.ErrorIs(t, err, booking.ErrInvalidRateType)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tc.expected, got)
		})
	}
}
