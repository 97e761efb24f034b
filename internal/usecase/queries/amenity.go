package queries

import (
	"context"
)

type AmenityQueries interface {
	ListServices(ctx context.Context) ([]*ServiceView, error)
}

type AmenityReadStore interface {
	FindAllServices(ctx context.Context) ([]*ServiceView, error)
}

type amenityQueriesImpl struct {
	store AmenityReadStore
}

func NewAmenityQueries(store AmenityReadStore) AmenityQueries {
	return &amenityQueriesImpl{store: store}
}

func (q *amenityQueriesImpl) ListServices(ctx context.Context) ([]*ServiceView, error) {
	return q.store.FindAllServices(ctx)
}
