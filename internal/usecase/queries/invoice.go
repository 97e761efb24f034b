package queries

import (
	"context"

	"github.com/google/uuid"
)

type InvoiceQueries interface {
	GetByID(ctx context.Context, id uuid.UUID) (*InvoiceView, error)
	ListByCustomer(ctx context.Context, customerID uuid.UUID, limit int) ([]*InvoiceView, error)
}

type InvoiceReadStore interface {
	FindByID(ctx context.Context, id uuid.UUID) (*InvoiceView, error)
	FindByCustomer(ctx context.Context, customerID uuid.UUID, limit int32) ([]*InvoiceView, error)
	FindPayments(ctx context.Context, invoiceID uuid.UUID) ([]PaymentView, error)
}

type invoiceQueriesImpl struct {
	store InvoiceReadStore
}

func NewInvoiceQueries(store InvoiceReadStore) InvoiceQueries {
	return &invoiceQueriesImpl{store: store}
}

func (q *invoiceQueriesImpl) GetByID(ctx context.Context, id uuid.UUID) (*InvoiceView, error) {
	view, err := q.store.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	payments, err := q.store.FindPayments(ctx, id)
	if err != nil {
		return nil, err
	}
	view.Payments = payments

	return view, nil
}

func (q *invoiceQueriesImpl) ListByCustomer(ctx context.Context, customerID uuid.UUID, limit int) ([]*InvoiceView, error) {
	return q.store.FindByCustomer(ctx, customerID, int32(ValidateLimit(limit)))
}
