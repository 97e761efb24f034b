package readstore

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"hotelier/internal/infra"
	"hotelier/internal/pkg/pgconv"
	"hotelier/internal/usecase/queries"
)

type InvoiceReadStore struct {
	pool *pgxpool.Pool
}

func NewInvoiceReadStore(pool *pgxpool.Pool) queries.InvoiceReadStore {
	return &InvoiceReadStore{pool: pool}
}

func (s *InvoiceReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.InvoiceView, error) {
	row := s.pool.QueryRow(ctx,
		`SELECT id, booking_id, customer_id, room_charge, service_charge,
		        discount, total, paid_amount, status, issued_at
		   FROM fn_invoice_detail($1)`,
		id,
	)

	view, err := scanInvoiceView(row)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("invoice not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find invoice", err)
	}
	return view, nil
}

func (s *InvoiceReadStore) FindByCustomer(ctx context.Context, customerID uuid.UUID, limit int32) ([]*queries.InvoiceView, error) {
	rows, err := s.pool.Query(ctx,
		`SELECT id, booking_id, customer_id, room_charge, service_charge,
		        discount, total, paid_amount, status, issued_at
		   FROM fn_invoices_by_customer($1, $2)`,
		customerID, limit,
	)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list invoices", err)
	}
	defer rows.Close()

	views := make([]*queries.InvoiceView, 0)
	for rows.Next() {
		view, err := scanInvoiceView(rows)
		if err != nil {
			return nil, infra.WrapRepoErr("failed to scan invoice row", err)
		}
		views = append(views, view)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate invoice rows", err)
	}
	return views, nil
}

func (s *InvoiceReadStore) FindPayments(ctx context.Context, invoiceID uuid.UUID) ([]queries.PaymentView, error) {
	rows, err := s.pool.Query(ctx,
		`SELECT id, invoice_id, amount, method, paid_at
		   FROM fn_payments_by_invoice($1)`,
		invoiceID,
	)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list payments", err)
	}
	defer rows.Close()

	payments := make([]queries.PaymentView, 0)
	for rows.Next() {
		var p queries.PaymentView
		if err := rows.Scan(&p.ID, &p.InvoiceID, &p.Amount, &p.Method, &p.PaidAt); err != nil {
			return nil, infra.WrapRepoErr("failed to scan payment row", err)
		}
		payments = append(payments, p)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate payment rows", err)
	}
	return payments, nil
}

func scanInvoiceView(row pgx.Row) (*queries.InvoiceView, error) {
	var view queries.InvoiceView
	err := row.Scan(
		&view.ID,
		&view.BookingID,
		&view.CustomerID,
		&view.RoomCharge,
		&view.ServiceCharge,
		&view.Discount,
		&view.Total,
		&view.PaidAmount,
		&view.Status,
		&view.IssuedAt,
	)
	if err != nil {
		return nil, err
	}
	return &view, nil
}
