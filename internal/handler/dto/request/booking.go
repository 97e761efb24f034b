package request

import (
	"time"

	"github.com/google/uuid"
)

type CreateBookingRequest struct {
	CustomerID uuid.UUID `json:"customer_id" binding:"required"`
	RoomID     uuid.UUID `json:"room_id" binding:"required"`
	CheckIn    time.Time `json:"check_in" binding:"required"`
	CheckOut   time.Time `json:"check_out" binding:"required"`
	RateType   string    `json:"rate_type" binding:"required"`
}

type AddServiceRequest struct {
	ServiceID uuid.UUID `json:"service_id" binding:"required"`
	Quantity  int32     `json:"quantity" binding:"required,gt=0"`
}
