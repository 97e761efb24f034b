package request

import (
	"github.com/google/uuid"
)

type RedeemPointsRequest struct {
	Points int64 `json:"points" binding:"required,gt=0"`
	// BookingID applies the discount to a pending booking in the same
	// transaction as the redemption.
	BookingID *uuid.UUID `json:"booking_id,omitempty"`
}

// AccruePointsRequest grants points for an amount paid outside the normal
// invoice flow, at the program's accrual rate.
type AccruePointsRequest struct {
	PaidAmount int64 `json:"paid_amount" binding:"required,gt=0"`
}
