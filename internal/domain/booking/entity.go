package booking

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

var (
	ErrNegativeCharge          = errors.New("charge cannot be negative")
	ErrRoomUnavailable         = errors.New("room is not available")
	ErrNotPending              = errors.New("booking is not pending")
	ErrNotCheckedIn            = errors.New("booking is not checked in")
	ErrAlreadyCanceled         = errors.New("booking is already canceled")
	ErrDiscountExceedsCharge   = errors.New("discount exceeds booking charge")
	ErrDiscountAlreadyApplied  = errors.New("a loyalty discount is already applied")
	ErrServiceOnClosedBooking  = errors.New("cannot add services after check-out or cancel")
	ErrInvalidServiceQuantity  = errors.New("service quantity must be positive")
	ErrCheckInBeforeStayStarts = errors.New("cannot check in before the stay starts")
)

// RoomSpec is the slice of a room the booking factory needs.
type RoomSpec struct {
	ID          uuid.UUID
	NightlyRate Money
	Available   bool
}

type Booking struct {
	id             uuid.UUID
	customerID     uuid.UUID
	roomID         uuid.UUID
	period         StayPeriod
	rateType       RateType
	status         Status
	charge         Money
	discount       Money
	redeemedPoints int64
	createdAt      time.Time
	updatedAt      time.Time
}

type Factory struct {
	Clock           interface{ Now() time.Time }
	PriceCalculator PriceCalculator
}

func NewFactory(clock interface{ Now() time.Time }, priceCalculator PriceCalculator) *Factory {
	return &Factory{
		Clock:           clock,
		PriceCalculator: priceCalculator,
	}
}

func (f *Factory) CreateBooking(
	room RoomSpec,
	customerID uuid.UUID,
	period StayPeriod,
	rateType RateType,
) (*Booking, error) {
	if !rateType.IsValid() {
		return nil, ErrInvalidRateType
	}
	if !room.Available {
		return nil, ErrRoomUnavailable
	}

	charge := f.PriceCalculator.Calculate(period.CheckIn(), period.CheckOut(), rateType, room.NightlyRate)
	if charge.IsNegative() {
		return nil, ErrNegativeCharge
	}

	return &Booking{
		id:         uuid.New(),
		customerID: customerID,
		roomID:     room.ID,
		period:     period,
		rateType:   rateType,
		status:     StatusPending,
		charge:     charge,
	}, nil
}

func ReconstructBooking(
	id, customerID, roomID uuid.UUID,
	period StayPeriod,
	rateType RateType,
	status Status,
	charge, discount Money,
	redeemedPoints int64,
	createdAt, updatedAt time.Time,
) *Booking {
	return &Booking{
		id:             id,
		customerID:     customerID,
		roomID:         roomID,
		period:         period,
		rateType:       rateType,
		status:         status,
		charge:         charge,
		discount:       discount,
		redeemedPoints: redeemedPoints,
		createdAt:      createdAt,
		updatedAt:      updatedAt,
	}
}

// ApplyLoyaltyDiscount records a redeemed-points discount against the charge.
// At most one redemption per booking, and only while the stay is still pending;
// a canceled or closed booking never reaches an invoice, so points burned
// against it would buy nothing.
func (b *Booking) ApplyLoyaltyDiscount(points int64, discount Money) error {
	if b.status != StatusPending {
		return ErrNotPending
	}
	if b.redeemedPoints > 0 {
		return ErrDiscountAlreadyApplied
	}
	if b.charge.LessThan(discount) {
		return ErrDiscountExceedsCharge
	}
	b.redeemedPoints = points
	b.discount = discount
	return nil
}

func (b *Booking) CheckIn(now time.Time) error {
	switch b.status {
	case StatusCanceled:
		return ErrAlreadyCanceled
	case StatusPending:
	default:
		return ErrNotPending
	}
	if now.Before(b.period.CheckIn()) {
		return ErrCheckInBeforeStayStarts
	}
	b.status = StatusCheckedIn
	return nil
}

func (b *Booking) CheckOut() error {
	if b.status != StatusCheckedIn {
		return ErrNotCheckedIn
	}
	b.status = StatusCheckedOut
	return nil
}

func (b *Booking) Cancel() error {
	switch b.status {
	case StatusCanceled:
		return ErrAlreadyCanceled
	case StatusPending:
		b.status = StatusCanceled
		return nil
	default:
		return ErrNotPending
	}
}

func (b *Booking) CanAddServices() bool {
	return b.status == StatusPending || b.status == StatusCheckedIn
}

// Payable is the charge net of the loyalty discount.
func (b *Booking) Payable() Money {
	return b.charge.Sub(b.discount)
}

func (b *Booking) IsActive() bool {
	return b.status == StatusPending || b.status == StatusCheckedIn
}

func (b *Booking) ID() uuid.UUID         { return b.id }
func (b *Booking) CustomerID() uuid.UUID { return b.customerID }
func (b *Booking) RoomID() uuid.UUID     { return b.roomID }
func (b *Booking) Period() StayPeriod    { return b.period }
func (b *Booking) RateType() RateType    { return b.rateType }
func (b *Booking) Status() Status        { return b.status }
func (b *Booking) Charge() Money         { return b.charge }
func (b *Booking) Discount() Money       { return b.discount }
func (b *Booking) RedeemedPoints() int64 { return b.redeemedPoints }
func (b *Booking) CreatedAt() time.Time  { return b.createdAt }
func (b *Booking) UpdatedAt() time.Time  { return b.updatedAt }
