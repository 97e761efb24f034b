package commands

import (
	"context"
	"errors"
	"log/slog"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"hotelier/internal/domain/invoice"
	"hotelier/internal/infra"
	"hotelier/internal/infra/db"
	"hotelier/internal/pkg/clock"
	"hotelier/internal/pkg/errs"
	"hotelier/internal/usecase/shared"
)

var (
	ErrInvoiceNotFound      = errs.New("invoice not found")
	ErrInvalidPayment       = errs.New("invalid payment")
	ErrInvoiceNotPayable    = errs.New("invoice not payable")
	ErrOverpayment          = errs.New("payment exceeds outstanding amount")
	ErrInvoiceAlreadyPaid   = errs.New("invoice already paid")
	ErrInvalidPaymentMethod = errs.New("invalid payment method")
)

type RecordPaymentParams struct {
	InvoiceID uuid.UUID
	Amount    int64
	Method    string
}

type PaymentResult struct {
	InvoiceID    uuid.UUID
	PaidAmount   int64
	Outstanding  int64
	Settled      bool
	PointsEarned int64
}

type InvoiceCommands interface {
	RecordPayment(ctx context.Context, params RecordPaymentParams) (*PaymentResult, error)
}

type invoiceCommandsImpl struct {
	invoiceRepo InvoiceRepository
	accruer     PointsAccruer
	pool        *pgxpool.Pool
	clock       clock.Clock
}

func NewInvoiceCommands(
	invoiceRepo InvoiceRepository,
	accruer PointsAccruer,
	pool *pgxpool.Pool,
	clock clock.Clock,
) InvoiceCommands {
	return &invoiceCommandsImpl{
		invoiceRepo: invoiceRepo,
		accruer:     accruer,
		pool:        pool,
		clock:       clock,
	}
}

// RecordPayment applies a payment against an invoice. When the payment
// settles the invoice in full, points accrue on the settled total in the
// same transaction, so a crashed accrual also rolls the payment back.
func (i *invoiceCommandsImpl) RecordPayment(ctx context.Context, params RecordPaymentParams) (*PaymentResult, error) {
	method, err := invoice.NewPaymentMethod(params.Method)
	if err != nil {
		return nil, errs.Mark(err, ErrInvalidPaymentMethod)
	}

	return shared.WithDefaultRetry(ctx, i.pool, func(tx db.DBTX) (*PaymentResult, error) {
		snap, err := i.invoiceRepo.FindByIDForUpdate(ctx, tx, params.InvoiceID)
		if err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return nil, ErrInvoiceNotFound
			}
			return nil, err
		}

		entity, err := invoiceFromSnapshot(snap)
		if err != nil {
			return nil, err
		}

		settled, err := entity.RecordPayment(params.Amount)
		if err != nil {
			switch {
			case errors.Is(err, invoice.ErrAlreadyPaid):
				return nil, ErrInvoiceAlreadyPaid
			case errors.Is(err, invoice.ErrOverpayment):
				return nil, ErrOverpayment
			case errors.Is(err, invoice.ErrInvoiceNotPayable):
				return nil, ErrInvoiceNotPayable
			default:
				return nil, errs.Mark(err, ErrInvalidPayment)
			}
		}

		payment, err := invoice.NewPayment(params.InvoiceID, params.Amount, method, i.clock.Now())
		if err != nil {
			return nil, errs.Mark(err, ErrInvalidPayment)
		}
		if err := i.invoiceRepo.RecordPayment(ctx, tx, payment); err != nil {
			return nil, err
		}
		if err := i.invoiceRepo.UpdateSettlement(ctx, tx, params.InvoiceID, entity.PaidAmount(), entity.Status()); err != nil {
			return nil, err
		}

		result := &PaymentResult{
			InvoiceID:   params.InvoiceID,
			PaidAmount:  entity.PaidAmount(),
			Outstanding: entity.Outstanding(),
			Settled:     settled,
		}

		if settled {
			points, err := i.accruer.AccrueInTx(ctx, tx, entity.CustomerID(), entity.Total())
			if err != nil {
				if errors.Is(err, ErrNoPointsEarned) {
					slog.Debug("settlement earned no points", "invoice_id", params.InvoiceID)
					return result, nil
				}
				return nil, err
			}
			result.PointsEarned = points
		}
		return result, nil
	})
}

func invoiceFromSnapshot(snap *InvoiceSnapshot) (*invoice.Invoice, error) {
	status, err := invoice.NewStatus(snap.Status)
	if err != nil {
		return nil, err
	}

	return invoice.ReconstructInvoice(
		snap.ID,
		snap.BookingID,
		snap.CustomerID,
		snap.RoomCharge,
		snap.ServiceCharge,
		snap.Discount,
		snap.PaidAmount,
		status,
		snap.IssuedAt,
	), nil
}
