package response

import (
	"time"

	"github.com/google/uuid"
	"github.com/jinzhu/copier"

	"hotelier/internal/usecase/queries"
)

type InvoiceResponse struct {
	ID            uuid.UUID         `json:"id"`
	BookingID     uuid.UUID         `json:"bookingId"`
	CustomerID    uuid.UUID         `json:"customerId"`
	RoomCharge    int64             `json:"roomCharge"`
	ServiceCharge int64             `json:"serviceCharge"`
	Discount      int64             `json:"discount"`
	Total         int64             `json:"total"`
	PaidAmount    int64             `json:"paidAmount"`
	Status        string            `json:"status"`
	IssuedAt      time.Time         `json:"issuedAt"`
	Payments      []PaymentResponse `json:"payments,omitempty"`
}

type PaymentResponse struct {
	ID        uuid.UUID `json:"id"`
	InvoiceID uuid.UUID `json:"invoiceId"`
	Amount    int64     `json:"amount"`
	Method    string    `json:"method"`
	PaidAt    time.Time `json:"paidAt"`
}

type PaymentResultResponse struct {
	InvoiceID    uuid.UUID `json:"invoiceId"`
	PaidAmount   int64     `json:"paidAmount"`
	Outstanding  int64     `json:"outstanding"`
	Settled      bool      `json:"settled"`
	PointsEarned int64     `json:"pointsEarned"`
}

func FromInvoiceView(view *queries.InvoiceView) *InvoiceResponse {
	var resp InvoiceResponse
	_ = copier.Copy(&resp, view)
	return &resp
}

func FromInvoiceViews(views []*queries.InvoiceView) []*InvoiceResponse {
	resps := make([]*InvoiceResponse, 0, len(views))
	for _, view := range views {
		resps = append(resps, FromInvoiceView(view))
	}
	return resps
}
