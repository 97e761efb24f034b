package repository

import (
	"context"
	"time"

	"github.com/google/uuid"

	"hotelier/internal/domain/room"
	"hotelier/internal/infra"
	"hotelier/internal/infra/db"
	"hotelier/internal/pkg/pgconv"
	"hotelier/internal/usecase/commands"
)

type RoomRepository struct{}

func NewRoomRepository() *RoomRepository {
	return &RoomRepository{}
}

func (r *RoomRepository) Create(ctx context.Context, tx db.DBTX, entity *room.Room) (uuid.UUID, error) {
	var id uuid.UUID
	err := tx.QueryRow(ctx,
		`SELECT sp_create_room($1, $2, $3, $4, $5)`,
		entity.ID(),
		entity.Number(),
		entity.TypeID(),
		entity.NightlyRate(),
		entity.Status().String(),
	).Scan(&id)
	if err != nil {
		return uuid.Nil, infra.WrapRepoErr("failed to create room", err)
	}
	return id, nil
}

func (r *RoomRepository) CreateType(ctx context.Context, tx db.DBTX, t *room.RoomType) (uuid.UUID, error) {
	var id uuid.UUID
	err := tx.QueryRow(ctx,
		`SELECT sp_create_room_type($1, $2, $3, $4)`,
		t.ID(),
		t.Name(),
		t.Capacity(),
		t.BaseRate(),
	).Scan(&id)
	if err != nil {
		return uuid.Nil, infra.WrapRepoErr("failed to create room type", err)
	}
	return id, nil
}

func (r *RoomRepository) FindByID(ctx context.Context, tx db.DBTX, id uuid.UUID) (*commands.RoomSnapshot, error) {
	var snap commands.RoomSnapshot
	err := tx.QueryRow(ctx,
		`SELECT id, number, type_id, nightly_rate, status, created_at, updated_at
		   FROM sp_room_for_update($1)`,
		id,
	).Scan(
		&snap.ID,
		&snap.Number,
		&snap.TypeID,
		&snap.NightlyRate,
		&snap.Status,
		&snap.CreatedAt,
		&snap.UpdatedAt,
	)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("room not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find room", err)
	}
	return &snap, nil
}

func (r *RoomRepository) UpdateStatus(ctx context.Context, tx db.DBTX, id uuid.UUID, status room.Status) error {
	if _, err := tx.Exec(ctx, `SELECT sp_update_room_status($1, $2)`, id, status.String()); err != nil {
		return infra.WrapRepoErr("failed to update room status", err)
	}
	return nil
}

func (r *RoomRepository) UpdateNightlyRate(ctx context.Context, tx db.DBTX, id uuid.UUID, rate int64) error {
	if _, err := tx.Exec(ctx, `SELECT sp_update_room_rate($1, $2)`, id, rate); err != nil {
		return infra.WrapRepoErr("failed to update room rate", err)
	}
	return nil
}

func (r *RoomRepository) HasOverlappingBooking(ctx context.Context, tx db.DBTX, roomID uuid.UUID, checkIn, checkOut time.Time) (bool, error) {
	var overlapping bool
	err := tx.QueryRow(ctx,
		`SELECT fn_has_overlapping_booking($1, $2, $3)`,
		roomID, checkIn, checkOut,
	).Scan(&overlapping)
	if err != nil {
		return false, infra.WrapRepoErr("failed to check booking overlap", err)
	}
	return overlapping, nil
}
