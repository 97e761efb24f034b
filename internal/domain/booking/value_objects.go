package booking

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

var (
	ErrInvalidStayPeriod = errors.New("check-out must be after check-in")
	ErrInvalidRateType   = errors.New("invalid rate type")
	ErrNegativeMoney     = errors.New("money cannot be negative")
)

// RateType is the billing mode of a stay: by the hour or by the night.
type RateType string

const (
	RateHourly  RateType = "hourly"
	RateNightly RateType = "nightly"
)

func ParseRateType(s string) (RateType, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "hourly":
		return RateHourly, nil
	case "nightly":
		return RateNightly, nil
	default:
		return "", ErrInvalidRateType
	}
}

func (r RateType) String() string {
	return string(r)
}

func (r RateType) IsValid() bool {
	return r == RateHourly || r == RateNightly
}

// StayPeriod is the check-in/check-out range being priced and booked.
type StayPeriod struct {
	checkIn  time.Time
	checkOut time.Time
}

func NewStayPeriod(checkIn, checkOut time.Time) (StayPeriod, error) {
	if !checkOut.After(checkIn) {
		return StayPeriod{}, ErrInvalidStayPeriod
	}
	return StayPeriod{checkIn: checkIn, checkOut: checkOut}, nil
}

// ReconstructStayPeriod rehydrates a persisted range without validation;
// historical rows may predate the range check.
func ReconstructStayPeriod(checkIn, checkOut time.Time) StayPeriod {
	return StayPeriod{checkIn: checkIn, checkOut: checkOut}
}

func (p StayPeriod) CheckIn() time.Time  { return p.checkIn }
func (p StayPeriod) CheckOut() time.Time { return p.checkOut }

func (p StayPeriod) Duration() time.Duration {
	return p.checkOut.Sub(p.checkIn)
}

func (p StayPeriod) Hours() float64 {
	return p.Duration().Hours()
}

func (p StayPeriod) ToTstzrange() string {
	return fmt.Sprintf("[%s,%s)", p.checkIn.Format(time.RFC3339), p.checkOut.Format(time.RFC3339))
}

// Money is an amount in the smallest currency unit.
type Money struct {
	amount int64
}

func NewMoney(amount int64) Money {
	return Money{amount: amount}
}

func NewNonNegativeMoney(amount int64) (Money, error) {
	if amount < 0 {
		return Money{}, ErrNegativeMoney
	}
	return Money{amount: amount}, nil
}

func (m Money) Amount() int64 {
	return m.amount
}

func (m Money) IsZero() bool {
	return m.amount == 0
}

func (m Money) IsNegative() bool {
	return m.amount < 0
}

func (m Money) Add(other Money) Money {
	return Money{amount: m.amount + other.amount}
}

// Sub floors at zero; a discount can never push a charge negative.
func (m Money) Sub(other Money) Money {
	remaining := m.amount - other.amount
	if remaining < 0 {
		remaining = 0
	}
	return Money{amount: remaining}
}

func (m Money) LessThan(other Money) bool {
	return m.amount < other.amount
}
