package repository

import (
	"context"

	"github.com/google/uuid"

	"hotelier/internal/domain/invoice"
	"hotelier/internal/infra"
	"hotelier/internal/infra/db"
	"hotelier/internal/pkg/pgconv"
	"hotelier/internal/usecase/commands"
)

type InvoiceRepository struct{}

func NewInvoiceRepository() *InvoiceRepository {
	return &InvoiceRepository{}
}

func (r *InvoiceRepository) Create(ctx context.Context, tx db.DBTX, inv *invoice.Invoice) (uuid.UUID, error) {
	var id uuid.UUID
	err := tx.QueryRow(ctx,
		`SELECT sp_create_invoice($1, $2, $3, $4, $5, $6, $7, $8)`,
		inv.ID(),
		inv.BookingID(),
		inv.CustomerID(),
		inv.RoomCharge(),
		inv.ServiceCharge(),
		inv.Discount(),
		inv.Status().String(),
		inv.IssuedAt(),
	).Scan(&id)
	if err != nil {
		return uuid.Nil, infra.WrapRepoErr("failed to create invoice", err)
	}
	return id, nil
}

func (r *InvoiceRepository) FindByIDForUpdate(ctx context.Context, tx db.DBTX, id uuid.UUID) (*commands.InvoiceSnapshot, error) {
	var snap commands.InvoiceSnapshot
	err := tx.QueryRow(ctx,
		`SELECT id, booking_id, customer_id, room_charge, service_charge,
		        discount, paid_amount, status, issued_at
		   FROM sp_invoice_for_update($1)`,
		id,
	).Scan(
		&snap.ID,
		&snap.BookingID,
		&snap.CustomerID,
		&snap.RoomCharge,
		&snap.ServiceCharge,
		&snap.Discount,
		&snap.PaidAmount,
		&snap.Status,
		&snap.IssuedAt,
	)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("invoice not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find invoice for update", err)
	}
	return &snap, nil
}

func (r *InvoiceRepository) RecordPayment(ctx context.Context, tx db.DBTX, p *invoice.Payment) error {
	_, err := tx.Exec(ctx,
		`SELECT sp_record_payment($1, $2, $3, $4, $5)`,
		p.ID(),
		p.InvoiceID(),
		p.Amount(),
		p.Method().String(),
		p.PaidAt(),
	)
	if err != nil {
		return infra.WrapRepoErr("failed to record payment", err)
	}
	return nil
}

func (r *InvoiceRepository) UpdateSettlement(ctx context.Context, tx db.DBTX, id uuid.UUID, paidAmount int64, status invoice.Status) error {
	if _, err := tx.Exec(ctx, `SELECT sp_update_invoice_settlement($1, $2, $3)`, id, paidAmount, status.String()); err != nil {
		return infra.WrapRepoErr("failed to update invoice settlement", err)
	}
	return nil
}
