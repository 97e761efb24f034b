package readstore

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"hotelier/internal/infra"
	"hotelier/internal/pkg/pgconv"
	"hotelier/internal/usecase/queries"
)

type BookingReadStore struct {
	pool *pgxpool.Pool
}

func NewBookingReadStore(pool *pgxpool.Pool) queries.BookingReadStore {
	return &BookingReadStore{pool: pool}
}

func (s *BookingReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.BookingView, error) {
	var view queries.BookingView
	err := s.pool.QueryRow(ctx,
		`SELECT id, customer_id, customer_name, room_id, room_number, check_in,
		        check_out, rate_type, status, charge, discount, redeemed_points,
		        created_at, updated_at
		   FROM fn_booking_detail($1)`,
		id,
	).Scan(
		&view.ID,
		&view.CustomerID,
		&view.CustomerName,
		&view.RoomID,
		&view.RoomNumber,
		&view.CheckIn,
		&view.CheckOut,
		&view.RateType,
		&view.Status,
		&view.Charge,
		&view.Discount,
		&view.RedeemedPoints,
		&view.CreatedAt,
		&view.UpdatedAt,
	)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("booking not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find booking", err)
	}
	return &view, nil
}

func (s *BookingReadStore) FindByCustomerFirstPage(ctx context.Context, customerID uuid.UUID, limit int32) ([]*queries.BookingListItem, error) {
	rows, err := s.pool.Query(ctx,
		`SELECT id, room_number, check_in, check_out, status, charge, created_at
		   FROM fn_bookings_by_customer($1, $2)`,
		customerID, limit,
	)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list bookings", err)
	}
	defer rows.Close()

	return scanBookingItems(rows)
}

func (s *BookingReadStore) FindByCustomerKeyset(ctx context.Context, customerID uuid.UUID, lastCreatedAt time.Time, lastID uuid.UUID, limit int32) ([]*queries.BookingListItem, error) {
	rows, err := s.pool.Query(ctx,
		`SELECT id, room_number, check_in, check_out, status, charge, created_at
		   FROM fn_bookings_by_customer_keyset($1, $2, $3, $4)`,
		customerID, lastCreatedAt, lastID, limit,
	)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list bookings", err)
	}
	defer rows.Close()

	return scanBookingItems(rows)
}

func scanBookingItems(rows pgx.Rows) ([]*queries.BookingListItem, error) {
	items := make([]*queries.BookingListItem, 0)
	for rows.Next() {
		var item queries.BookingListItem
		if err := rows.Scan(
			&item.ID,
			&item.RoomNumber,
			&item.CheckIn,
			&item.CheckOut,
			&item.Status,
			&item.Charge,
			&item.CreatedAt,
		); err != nil {
			return nil, infra.WrapRepoErr("failed to scan booking row", err)
		}
		items = append(items, &item)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate booking rows", err)
	}
	return items, nil
}
