package invoice

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

var (
	ErrInvalidStatus        = errors.New("invalid invoice status")
	ErrInvalidPaymentMethod = errors.New("invalid payment method")
	ErrInvalidPaymentAmount = errors.New("payment amount must be positive")
	ErrInvoiceNotPayable    = errors.New("invoice is not payable")
	ErrOverpayment          = errors.New("payment exceeds outstanding amount")
	ErrAlreadyPaid          = errors.New("invoice is already paid")
)

// Invoice is issued at check-out: the booking charge plus service usage,
// minus the loyalty discount already applied to the booking.
type Invoice struct {
	id            uuid.UUID
	bookingID     uuid.UUID
	customerID    uuid.UUID
	roomCharge    int64
	serviceCharge int64
	discount      int64
	paidAmount    int64
	status        Status
	issuedAt      time.Time
}

func NewInvoice(bookingID, customerID uuid.UUID, roomCharge, serviceCharge, discount int64, issuedAt time.Time) *Invoice {
	inv := &Invoice{
		id:            uuid.New(),
		bookingID:     bookingID,
		customerID:    customerID,
		roomCharge:    roomCharge,
		serviceCharge: serviceCharge,
		discount:      discount,
		status:        StatusIssued,
		issuedAt:      issuedAt,
	}
	// A fully discounted stay has nothing to collect; issue it settled so it
	// does not sit unpayable forever.
	if inv.Total() == 0 {
		inv.status = StatusPaid
	}
	return inv
}

func ReconstructInvoice(
	id, bookingID, customerID uuid.UUID,
	roomCharge, serviceCharge, discount, paidAmount int64,
	status Status,
	issuedAt time.Time,
) *Invoice {
	return &Invoice{
		id:            id,
		bookingID:     bookingID,
		customerID:    customerID,
		roomCharge:    roomCharge,
		serviceCharge: serviceCharge,
		discount:      discount,
		paidAmount:    paidAmount,
		status:        status,
		issuedAt:      issuedAt,
	}
}

// Total is the amount due, never negative.
func (i *Invoice) Total() int64 {
	total := i.roomCharge + i.serviceCharge - i.discount
	if total < 0 {
		total = 0
	}
	return total
}

func (i *Invoice) Outstanding() int64 {
	return i.Total() - i.paidAmount
}

// RecordPayment applies a payment and returns whether the invoice is now
// settled in full. Settlement is what triggers points accrual upstream.
func (i *Invoice) RecordPayment(amount int64) (settled bool, err error) {
	switch i.status {
	case StatusPaid:
		return false, ErrAlreadyPaid
	case StatusIssued:
	default:
		return false, ErrInvoiceNotPayable
	}
	if amount <= 0 {
		return false, ErrInvalidPaymentAmount
	}
	if amount > i.Outstanding() {
		return false, ErrOverpayment
	}

	i.paidAmount += amount
	if i.paidAmount >= i.Total() {
		i.status = StatusPaid
		return true, nil
	}
	return false, nil
}

func (i *Invoice) ID() uuid.UUID         { return i.id }
func (i *Invoice) BookingID() uuid.UUID  { return i.bookingID }
func (i *Invoice) CustomerID() uuid.UUID { return i.customerID }
func (i *Invoice) RoomCharge() int64     { return i.roomCharge }
func (i *Invoice) ServiceCharge() int64  { return i.serviceCharge }
func (i *Invoice) Discount() int64       { return i.discount }
func (i *Invoice) PaidAmount() int64     { return i.paidAmount }
func (i *Invoice) Status() Status        { return i.status }
func (i *Invoice) IssuedAt() time.Time   { return i.issuedAt }

// Payment is one settlement against an invoice. Immutable once recorded.
type Payment struct {
	id        uuid.UUID
	invoiceID uuid.UUID
	amount    int64
	method    PaymentMethod
	paidAt    time.Time
}

func NewPayment(invoiceID uuid.UUID, amount int64, method PaymentMethod, paidAt time.Time) (*Payment, error) {
	if amount <= 0 {
		return nil, ErrInvalidPaymentAmount
	}
	if !method.IsValid() {
		return nil, ErrInvalidPaymentMethod
	}

	return &Payment{
		id:        uuid.New(),
		invoiceID: invoiceID,
		amount:    amount,
		method:    method,
		paidAt:    paidAt,
	}, nil
}

func ReconstructPayment(id, invoiceID uuid.UUID, amount int64, method PaymentMethod, paidAt time.Time) *Payment {
	return &Payment{
		id:        id,
		invoiceID: invoiceID,
		amount:    amount,
		method:    method,
		paidAt:    paidAt,
	}
}

func (p *Payment) ID() uuid.UUID         { return p.id }
func (p *Payment) InvoiceID() uuid.UUID  { return p.invoiceID }
func (p *Payment) Amount() int64         { return p.amount }
func (p *Payment) Method() PaymentMethod { return p.method }
func (p *Payment) PaidAt() time.Time     { return p.paidAt }
