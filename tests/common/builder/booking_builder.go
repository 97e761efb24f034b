//go:build unit || e2e

package builder

import (
	"time"

	reqdto "hotelier/internal/handler/dto/request"
	"hotelier/internal/usecase/queries"

	"github.com/google/uuid"
)

type BookingBuilder struct {
	CustomerID uuid.UUID
	RoomID     uuid.UUID
	CheckIn    time.Time
	CheckOut   time.Time
	RateType   string
	Status     string
	Charge     int64
}

func NewBookingBuilder() *BookingBuilder {
	checkIn := time.Now().Add(24 * time.Hour).Truncate(time.Hour)
	return &BookingBuilder{
		CustomerID: uuid.New(),
		RoomID:     uuid.New(),
		CheckIn:    checkIn,
		CheckOut:   checkIn.Add(48 * time.Hour),
		RateType:   "nightly",
		Status:     "pending",
		Charge:     20000,
	}
}

func (b *BookingBuilder) BuildDTO() reqdto.CreateBookingRequest {
	return reqdto.CreateBookingRequest{
		CustomerID: b.CustomerID,
		RoomID:     b.RoomID,
		CheckIn:    b.CheckIn,
		CheckOut:   b.CheckOut,
		RateType:   b.RateType,
	}
}

func (b *BookingBuilder) BuildReadModel() *queries.BookingView {
	now := time.Now()
	return &queries.BookingView{
		ID:           uuid.New(),
		CustomerID:   b.CustomerID,
		CustomerName: "Test Guest",
		RoomID:       b.RoomID,
		RoomNumber:   "101",
		CheckIn:      b.CheckIn,
		CheckOut:     b.CheckOut,
		RateType:     b.RateType,
		Status:       b.Status,
		Charge:       b.Charge,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
}

func (b *BookingBuilder) WithRateType(rateType string) *BookingBuilder {
	b.RateType = rateType
	return b
}

func (b *BookingBuilder) WithStay(checkIn, checkOut time.Time) *BookingBuilder {
	b.CheckIn = checkIn
	b.CheckOut = checkOut
	return b
}

func (b *BookingBuilder) WithCustomerID(id uuid.UUID) *BookingBuilder {
	b.CustomerID = id
	return b
}

func (b *BookingBuilder) WithRoomID(id uuid.UUID) *BookingBuilder {
	b.RoomID = id
	return b
}
