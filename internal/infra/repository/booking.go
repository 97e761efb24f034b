package repository

import (
	"context"

	"github.com/google/uuid"

	"hotelier/internal/domain/booking"
	"hotelier/internal/infra"
	"hotelier/internal/infra/db"
	"hotelier/internal/pkg/pgconv"
	"hotelier/internal/usecase/commands"
)

type BookingRepository struct{}

func NewBookingRepository() *BookingRepository {
	return &BookingRepository{}
}

func (r *BookingRepository) Create(ctx context.Context, tx db.DBTX, b *booking.Booking) (uuid.UUID, error) {
	var id uuid.UUID
	err := tx.QueryRow(ctx,
		`SELECT sp_create_booking($1, $2, $3, $4, $5, $6, $7, $8)`,
		b.ID(),
		b.CustomerID(),
		b.RoomID(),
		b.Period().CheckIn(),
		b.Period().CheckOut(),
		b.RateType().String(),
		b.Status().String(),
		b.Charge().Amount(),
	).Scan(&id)
	if err != nil {
		return uuid.Nil, infra.WrapRepoErr("failed to create booking", err)
	}
	return id, nil
}

func (r *BookingRepository) FindByIDForUpdate(ctx context.Context, tx db.DBTX, id uuid.UUID) (*commands.BookingSnapshot, error) {
	var snap commands.BookingSnapshot
	err := tx.QueryRow(ctx,
		`SELECT id, customer_id, room_id, check_in, check_out, rate_type, status,
		        charge, discount, redeemed_points, created_at, updated_at
		   FROM sp_booking_for_update($1)`,
		id,
	).Scan(
		&snap.ID,
		&snap.CustomerID,
		&snap.RoomID,
		&snap.CheckIn,
		&snap.CheckOut,
		&snap.RateType,
		&snap.Status,
		&snap.Charge,
		&snap.Discount,
		&snap.RedeemedPoints,
		&snap.CreatedAt,
		&snap.UpdatedAt,
	)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("booking not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find booking for update", err)
	}
	return &snap, nil
}

func (r *BookingRepository) UpdateStatus(ctx context.Context, tx db.DBTX, id uuid.UUID, status booking.Status) error {
	if _, err := tx.Exec(ctx, `SELECT sp_update_booking_status($1, $2)`, id, status.String()); err != nil {
		return infra.WrapRepoErr("failed to update booking status", err)
	}
	return nil
}

func (r *BookingRepository) ApplyDiscount(ctx context.Context, tx db.DBTX, id uuid.UUID, redeemedPoints, discount int64) error {
	if _, err := tx.Exec(ctx, `SELECT sp_apply_booking_discount($1, $2, $3)`, id, redeemedPoints, discount); err != nil {
		return infra.WrapRepoErr("failed to apply booking discount", err)
	}
	return nil
}
