package loyalty

import (
	"errors"
	"math"

	"github.com/google/uuid"
)

var (
	ErrInvalidAccrualRate  = errors.New("accrual rate must be positive")
	ErrInvalidDiscountRate = errors.New("discount per point must be positive")
	ErrNoPointsEarned      = errors.New("paid amount too small to earn points")
)

// Program is the read-only points-program configuration a customer is
// enrolled in. Rates are fixed for the duration of a transaction.
type Program struct {
	id               uuid.UUID
	name             string
	minPoints        int64
	discountPerPoint int64
	accrualRate      float64
}

func NewProgram(id uuid.UUID, name string, minPoints, discountPerPoint int64, accrualRate float64) Program {
	return Program{
		id:               id,
		name:             name,
		minPoints:        minPoints,
		discountPerPoint: discountPerPoint,
		accrualRate:      accrualRate,
	}
}

func (p Program) ID() uuid.UUID           { return p.id }
func (p Program) Name() string            { return p.name }
func (p Program) MinPoints() int64        { return p.minPoints }
func (p Program) DiscountPerPoint() int64 { return p.discountPerPoint }
func (p Program) AccrualRate() float64    { return p.accrualRate }

// EarnedPoints converts a paid amount into points. Fractional points are
// truncated, never rounded up. A configured rate that yields zero points for
// the given amount is reported as ErrNoPointsEarned so callers can treat it
// as a no-op instead of a failure.
func (p Program) EarnedPoints(paidAmount int64) (int64, error) {
	if p.accrualRate <= 0 {
		return 0, ErrInvalidAccrualRate
	}

	points := int64(math.Floor(float64(paidAmount) * p.accrualRate))
	if points <= 0 {
		return 0, ErrNoPointsEarned
	}
	return points, nil
}

// DiscountFor converts redeemed points into a currency discount.
func (p Program) DiscountFor(points int64) (int64, error) {
	if p.discountPerPoint <= 0 {
		return 0, ErrInvalidDiscountRate
	}
	return points * p.discountPerPoint, nil
}
