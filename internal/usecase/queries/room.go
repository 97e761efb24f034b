package queries

import (
	"context"
	"time"

	"github.com/google/uuid"
)

type RoomQueries interface {
	GetByID(ctx context.Context, id uuid.UUID) (*RoomView, error)
	List(ctx context.Context) ([]*RoomView, error)
	ListAvailable(ctx context.Context, from, to time.Time) ([]*RoomView, error)
	ListTypes(ctx context.Context) ([]*RoomTypeView, error)
	GetTypeByID(ctx context.Context, id uuid.UUID) (*RoomTypeView, error)
}

type RoomReadStore interface {
	FindByID(ctx context.Context, id uuid.UUID) (*RoomView, error)
	FindAll(ctx context.Context) ([]*RoomView, error)
	FindAvailable(ctx context.Context, from, to time.Time) ([]*RoomView, error)
	FindAllTypes(ctx context.Context) ([]*RoomTypeView, error)
	FindTypeByID(ctx context.Context, id uuid.UUID) (*RoomTypeView, error)
}

type roomQueriesImpl struct {
	store RoomReadStore
}

func NewRoomQueries(store RoomReadStore) RoomQueries {
	return &roomQueriesImpl{store: store}
}

func (q *roomQueriesImpl) GetByID(ctx context.Context, id uuid.UUID) (*RoomView, error) {
	return q.store.FindByID(ctx, id)
}

func (q *roomQueriesImpl) List(ctx context.Context) ([]*RoomView, error) {
	return q.store.FindAll(ctx)
}

func (q *roomQueriesImpl) ListAvailable(ctx context.Context, from, to time.Time) ([]*RoomView, error) {
	return q.store.FindAvailable(ctx, from, to)
}

func (q *roomQueriesImpl) ListTypes(ctx context.Context) ([]*RoomTypeView, error) {
	return q.store.FindAllTypes(ctx)
}

func (q *roomQueriesImpl) GetTypeByID(ctx context.Context, id uuid.UUID) (*RoomTypeView, error) {
	return q.store.FindTypeByID(ctx, id)
}
