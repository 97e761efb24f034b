package commands

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"hotelier/internal/domain/room"
	"hotelier/internal/infra"
	"hotelier/internal/infra/db"
	"hotelier/internal/pkg/errs"
	"hotelier/internal/usecase/queries"
	"hotelier/internal/usecase/shared"
)

var (
	ErrRoomTypeNotFound    = errs.New("room type not found")
	ErrDuplicateRoomNumber = errs.New("room number already exists")
	ErrInvalidRoomData     = errs.New("invalid room data")
)

type CreateRoomParams struct {
	Number      string
	TypeID      uuid.UUID
	NightlyRate int64
}

type CreateRoomTypeParams struct {
	Name     string
	Capacity int32
	BaseRate int64
}

type RoomCommands interface {
	Create(ctx context.Context, params CreateRoomParams) (*queries.RoomView, error)
	CreateType(ctx context.Context, params CreateRoomTypeParams) (uuid.UUID, error)
	SetStatus(ctx context.Context, roomID uuid.UUID, status string) error
	SetNightlyRate(ctx context.Context, roomID uuid.UUID, rate int64) error
}

type roomCommandsImpl struct {
	roomRepo    RoomRepository
	roomQueries queries.RoomQueries
	pool        *pgxpool.Pool
}

func NewRoomCommands(roomRepo RoomRepository, roomQueries queries.RoomQueries, pool *pgxpool.Pool) RoomCommands {
	return &roomCommandsImpl{
		roomRepo:    roomRepo,
		roomQueries: roomQueries,
		pool:        pool,
	}
}

func (r *roomCommandsImpl) Create(ctx context.Context, params CreateRoomParams) (*queries.RoomView, error) {
	entity, err := room.NewRoom(params.Number, params.TypeID, params.NightlyRate)
	if err != nil {
		return nil, errs.Mark(err, ErrInvalidRoomData)
	}

	roomID, err := shared.RunInTx(ctx, r.pool, func(tx db.DBTX) (uuid.UUID, error) {
		id, err := r.roomRepo.Create(ctx, tx, entity)
		if err != nil {
			switch {
			case infra.IsKind(err, infra.KindDuplicateKey):
				return uuid.Nil, ErrDuplicateRoomNumber
			case infra.IsKind(err, infra.KindForeignKeyViolated):
				return uuid.Nil, ErrRoomTypeNotFound
			default:
				return uuid.Nil, errs.Mark(err, ErrDatabaseOperationFailed)
			}
		}
		return id, nil
	})
	if err != nil {
		return nil, err
	}

	view, err := r.roomQueries.GetByID(ctx, roomID)
	if err != nil {
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}
	return view, nil
}

func (r *roomCommandsImpl) CreateType(ctx context.Context, params CreateRoomTypeParams) (uuid.UUID, error) {
	entity, err := room.NewRoomType(params.Name, params.Capacity, params.BaseRate)
	if err != nil {
		return uuid.Nil, errs.Mark(err, ErrInvalidRoomData)
	}

	return shared.RunInTx(ctx, r.pool, func(tx db.DBTX) (uuid.UUID, error) {
		id, err := r.roomRepo.CreateType(ctx, tx, entity)
		if err != nil {
			if infra.IsKind(err, infra.KindDuplicateKey) {
				return uuid.Nil, ErrInvalidRoomData
			}
			return uuid.Nil, errs.Mark(err, ErrDatabaseOperationFailed)
		}
		return id, nil
	})
}

func (r *roomCommandsImpl) SetStatus(ctx context.Context, roomID uuid.UUID, status string) error {
	parsed, err := room.NewStatus(status)
	if err != nil {
		return errs.Mark(err, ErrInvalidRoomData)
	}

	_, err = shared.RunInTx(ctx, r.pool, func(tx db.DBTX) (struct{}, error) {
		snap, err := r.roomRepo.FindByID(ctx, tx, roomID)
		if err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return struct{}{}, ErrRoomNotFound
			}
			return struct{}{}, errs.Mark(err, ErrDatabaseOperationFailed)
		}

		entity, err := roomFromSnapshot(snap)
		if err != nil {
			return struct{}{}, errs.Mark(err, ErrInvalidRoomData)
		}
		if err := entity.SetStatus(parsed); err != nil {
			return struct{}{}, errs.Mark(err, ErrInvalidRoomData)
		}

		if err := r.roomRepo.UpdateStatus(ctx, tx, roomID, entity.Status()); err != nil {
			return struct{}{}, errs.Mark(err, ErrDatabaseOperationFailed)
		}
		return struct{}{}, nil
	})
	return err
}

func (r *roomCommandsImpl) SetNightlyRate(ctx context.Context, roomID uuid.UUID, rate int64) error {
	_, err := shared.RunInTx(ctx, r.pool, func(tx db.DBTX) (struct{}, error) {
		snap, err := r.roomRepo.FindByID(ctx, tx, roomID)
		if err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return struct{}{}, ErrRoomNotFound
			}
			return struct{}{}, errs.Mark(err, ErrDatabaseOperationFailed)
		}

		entity, err := roomFromSnapshot(snap)
		if err != nil {
			return struct{}{}, errs.Mark(err, ErrInvalidRoomData)
		}
		if err := entity.SetNightlyRate(rate); err != nil {
			return struct{}{}, errs.Mark(err, ErrInvalidRoomData)
		}

		if err := r.roomRepo.UpdateNightlyRate(ctx, tx, roomID, entity.NightlyRate()); err != nil {
			return struct{}{}, errs.Mark(err, ErrDatabaseOperationFailed)
		}
		return struct{}{}, nil
	})
	return err
}

func roomFromSnapshot(snap *RoomSnapshot) (*room.Room, error) {
	status, err := room.NewStatus(snap.Status)
	if err != nil {
		return nil, err
	}
	return room.ReconstructRoom(snap.ID, snap.Number, snap.TypeID, snap.NightlyRate, status, snap.CreatedAt, snap.UpdatedAt), nil
}
