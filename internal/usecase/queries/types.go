package queries

import (
	"time"

	"github.com/google/uuid"
)

// Read models (DTO for read side)

type BookingView struct {
	ID             uuid.UUID `json:"id"`
	CustomerID     uuid.UUID `json:"customer_id"`
	CustomerName   string    `json:"customer_name"`
	RoomID         uuid.UUID `json:"room_id"`
	RoomNumber     string    `json:"room_number"`
	CheckIn        time.Time `json:"check_in"`
	CheckOut       time.Time `json:"check_out"`
	RateType       string    `json:"rate_type"`
	Status         string    `json:"status"`
	Charge         int64     `json:"charge"`
	Discount       int64     `json:"discount"`
	RedeemedPoints int64     `json:"redeemed_points"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

type BookingListItem struct {
	ID         uuid.UUID `json:"id"`
	RoomNumber string    `json:"room_number"`
	CheckIn    time.Time `json:"check_in"`
	CheckOut   time.Time `json:"check_out"`
	Status     string    `json:"status"`
	Charge     int64     `json:"charge"`
	CreatedAt  time.Time `json:"created_at"`
}

type RoomView struct {
	ID          uuid.UUID `json:"id"`
	Number      string    `json:"number"`
	TypeID      uuid.UUID `json:"type_id"`
	TypeName    string    `json:"type_name"`
	Capacity    int32     `json:"capacity"`
	NightlyRate int64     `json:"nightly_rate"`
	Status      string    `json:"status"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

type RoomTypeView struct {
	ID       uuid.UUID `json:"id"`
	Name     string    `json:"name"`
	Capacity int32     `json:"capacity"`
	BaseRate int64     `json:"base_rate"`
}

type CustomerView struct {
	ID            uuid.UUID  `json:"id"`
	UserID        *uuid.UUID `json:"user_id,omitempty"`
	FullName      string     `json:"full_name"`
	Phone         *string    `json:"phone,omitempty"`
	ProgramID     uuid.UUID  `json:"program_id"`
	ProgramName   string     `json:"program_name"`
	PointsBalance int64      `json:"points_balance"`
	CreatedAt     time.Time  `json:"created_at"`
	UpdatedAt     time.Time  `json:"updated_at"`
}

type InvoiceView struct {
	ID            uuid.UUID     `json:"id"`
	BookingID     uuid.UUID     `json:"booking_id"`
	CustomerID    uuid.UUID     `json:"customer_id"`
	RoomCharge    int64         `json:"room_charge"`
	ServiceCharge int64         `json:"service_charge"`
	Discount      int64         `json:"discount"`
	Total         int64         `json:"total"`
	PaidAmount    int64         `json:"paid_amount"`
	Status        string        `json:"status"`
	IssuedAt      time.Time     `json:"issued_at"`
	Payments      []PaymentView `json:"payments,omitempty"`
}

type PaymentView struct {
	ID        uuid.UUID `json:"id"`
	InvoiceID uuid.UUID `json:"invoice_id"`
	Amount    int64     `json:"amount"`
	Method    string    `json:"method"`
	PaidAt    time.Time `json:"paid_at"`
}

type ServiceView struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	UnitPrice int64     `json:"unit_price"`
	Active    bool      `json:"active"`
}

type PointsBalanceView struct {
	CustomerID       uuid.UUID `json:"customer_id"`
	ProgramID        uuid.UUID `json:"program_id"`
	ProgramName      string    `json:"program_name"`
	Balance          int64     `json:"balance"`
	MinPoints        int64     `json:"min_points"`
	DiscountPerPoint int64     `json:"discount_per_point"`
	AccrualRate      float64   `json:"accrual_rate"`
}

type LedgerEntryView struct {
	ID         uuid.UUID `json:"id"`
	CustomerID uuid.UUID `json:"customer_id"`
	Points     int64     `json:"points"`
	Kind       string    `json:"kind"`
	CreatedAt  time.Time `json:"created_at"`
}

type AuthorizedUserView struct {
	ID       uuid.UUID `json:"id"`
	Email    string    `json:"email"`
	Role     string    `json:"role"`
	IsActive bool      `json:"is_active"`
}
