package response

import (
	"time"

	"github.com/google/uuid"
	"github.com/jinzhu/copier"

	"hotelier/internal/usecase/queries"
)

type BookingResponse struct {
	ID             uuid.UUID `json:"id"`
	CustomerID     uuid.UUID `json:"customerId"`
	CustomerName   string    `json:"customerName"`
	RoomID         uuid.UUID `json:"roomId"`
	RoomNumber     string    `json:"roomNumber"`
	CheckIn        time.Time `json:"checkIn"`
	CheckOut       time.Time `json:"checkOut"`
	RateType       string    `json:"rateType"`
	Status         string    `json:"status"`
	Charge         int64     `json:"charge"`
	Discount       int64     `json:"discount"`
	RedeemedPoints int64     `json:"redeemedPoints"`
	CreatedAt      time.Time `json:"createdAt"`
	UpdatedAt      time.Time `json:"updatedAt"`
}

type BookingListItemResponse struct {
	ID         uuid.UUID `json:"id"`
	RoomNumber string    `json:"roomNumber"`
	CheckIn    time.Time `json:"checkIn"`
	CheckOut   time.Time `json:"checkOut"`
	Status     string    `json:"status"`
	Charge     int64     `json:"charge"`
	CreatedAt  time.Time `json:"createdAt"`
}

type BookingListResponse struct {
	Items      []*BookingListItemResponse `json:"items"`
	NextCursor string                     `json:"nextCursor,omitempty"`
}

func FromBookingView(view *queries.BookingView) *BookingResponse {
	var resp BookingResponse
	_ = copier.Copy(&resp, view)
	return &resp
}

func FromBookingListItems(items []*queries.BookingListItem, next *queries.Cursor) *BookingListResponse {
	resp := &BookingListResponse{
		Items: make([]*BookingListItemResponse, 0, len(items)),
	}
	for _, item := range items {
		var r BookingListItemResponse
		_ = copier.Copy(&r, item)
		resp.Items = append(resp.Items, &r)
	}
	if next != nil {
		resp.NextCursor = next.After
	}
	return resp
}
