package booking

import (
	"math"
	"time"
)

// PriceCalculator computes the total charge for a stay from the raw
// check-in/check-out pair, the billing mode and the room's nightly rate.
type PriceCalculator interface {
	Calculate(checkIn, checkOut time.Time, rateType RateType, nightlyRate Money) Money
}

// TieredPriceCalculator bills long stays by the night and short hourly stays
// with a higher first-hour rate:
//
//   - nightly, or any stay over 12 hours: ceil(hours/24) nights, minimum 1
//   - hourly up to 12 hours: 20% of the nightly rate for the first hour,
//     10% for each started hour after that
//
// A non-positive interval bills nothing rather than failing; callers validate
// the range when a booking is created, but historical rows may carry
// zero-length stays and those price to zero.
type TieredPriceCalculator struct {
	FirstHourShare float64
	NextHourShare  float64
}

const hourlyBillingCutoffHours = 12

func NewTieredPriceCalculator() *TieredPriceCalculator {
	return &TieredPriceCalculator{
		FirstHourShare: 0.20,
		NextHourShare:  0.10,
	}
}

func (c *TieredPriceCalculator) Calculate(checkIn, checkOut time.Time, rateType RateType, nightlyRate Money) Money {
	duration := checkOut.Sub(checkIn)
	if duration <= 0 {
		return NewMoney(0)
	}

	hours := duration.Hours()

	if rateType == RateNightly || hours > hourlyBillingCutoffHours {
		nights := int64(math.Ceil(hours / 24))
		if nights < 1 {
			nights = 1
		}
		return NewMoney(nights * nightlyRate.Amount())
	}

	totalHours := int64(math.Ceil(hours))
	if totalHours < 1 {
		totalHours = 1
	}

	firstHour := int64(float64(nightlyRate.Amount()) * c.FirstHourShare)
	if totalHours == 1 {
		return NewMoney(firstHour)
	}

	nextHour := int64(float64(nightlyRate.Amount()) * c.NextHourShare)
	return NewMoney(firstHour + (totalHours-1)*nextHour)
}
