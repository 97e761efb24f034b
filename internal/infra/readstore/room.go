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

type RoomReadStore struct {
	pool *pgxpool.Pool
}

func NewRoomReadStore(pool *pgxpool.Pool) queries.RoomReadStore {
	return &RoomReadStore{pool: pool}
}

func (s *RoomReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.RoomView, error) {
	row := s.pool.QueryRow(ctx,
		`SELECT id, number, type_id, type_name, capacity, nightly_rate, status,
		        created_at, updated_at
		   FROM fn_room_detail($1)`,
		id,
	)

	view, err := scanRoomView(row)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("room not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find room", err)
	}
	return view, nil
}

func (s *RoomReadStore) FindAll(ctx context.Context) ([]*queries.RoomView, error) {
	rows, err := s.pool.Query(ctx,
		`SELECT id, number, type_id, type_name, capacity, nightly_rate, status,
		        created_at, updated_at
		   FROM fn_rooms()`,
	)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list rooms", err)
	}
	defer rows.Close()

	return scanRoomViews(rows)
}

func (s *RoomReadStore) FindAvailable(ctx context.Context, from, to time.Time) ([]*queries.RoomView, error) {
	rows, err := s.pool.Query(ctx,
		`SELECT id, number, type_id, type_name, capacity, nightly_rate, status,
		        created_at, updated_at
		   FROM fn_available_rooms($1, $2)`,
		from, to,
	)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list available rooms", err)
	}
	defer rows.Close()

	return scanRoomViews(rows)
}

func (s *RoomReadStore) FindAllTypes(ctx context.Context) ([]*queries.RoomTypeView, error) {
	rows, err := s.pool.Query(ctx,
		`SELECT id, name, capacity, base_rate FROM fn_room_types()`,
	)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list room types", err)
	}
	defer rows.Close()

	types := make([]*queries.RoomTypeView, 0)
	for rows.Next() {
		var t queries.RoomTypeView
		if err := rows.Scan(&t.ID, &t.Name, &t.Capacity, &t.BaseRate); err != nil {
			return nil, infra.WrapRepoErr("failed to scan room type row", err)
		}
		types = append(types, &t)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate room type rows", err)
	}
	return types, nil
}

func (s *RoomReadStore) FindTypeByID(ctx context.Context, id uuid.UUID) (*queries.RoomTypeView, error) {
	var t queries.RoomTypeView
	err := s.pool.QueryRow(ctx,
		`SELECT id, name, capacity, base_rate FROM fn_room_type($1)`,
		id,
	).Scan(&t.ID, &t.Name, &t.Capacity, &t.BaseRate)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("room type not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find room type", err)
	}
	return &t, nil
}

func scanRoomView(row pgx.Row) (*queries.RoomView, error) {
	var view queries.RoomView
	err := row.Scan(
		&view.ID,
		&view.Number,
		&view.TypeID,
		&view.TypeName,
		&view.Capacity,
		&view.NightlyRate,
		&view.Status,
		&view.CreatedAt,
		&view.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &view, nil
}

func scanRoomViews(rows pgx.Rows) ([]*queries.RoomView, error) {
	views := make([]*queries.RoomView, 0)
	for rows.Next() {
		view, err := scanRoomView(rows)
		if err != nil {
			return nil, infra.WrapRepoErr("failed to scan room row", err)
		}
		views = append(views, view)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate room rows", err)
	}
	return views, nil
}
