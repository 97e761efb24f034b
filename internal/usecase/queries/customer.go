package queries

import (
	"context"
	"time"

	"github.com/google/uuid"

	"hotelier/internal/pkg/errs"
)

type CustomerQueries interface {
	GetByID(ctx context.Context, id uuid.UUID) (*CustomerView, error)
	// GetIDByUser resolves the customer record owned by an authenticated user.
	GetIDByUser(ctx context.Context, userID uuid.UUID) (uuid.UUID, error)
	List(ctx context.Context, after *Cursor, limit int) ([]*CustomerView, *Cursor, error)
}

type CustomerReadStore interface {
	FindByID(ctx context.Context, id uuid.UUID) (*CustomerView, error)
	FindIDByUser(ctx context.Context, userID uuid.UUID) (uuid.UUID, error)
	FindFirstPage(ctx context.Context, limit int32) ([]*CustomerView, error)
	FindKeyset(ctx context.Context, lastCreatedAt time.Time, lastID uuid.UUID, limit int32) ([]*CustomerView, error)
}

type customerQueriesImpl struct {
	store CustomerReadStore
}

func NewCustomerQueries(store CustomerReadStore) CustomerQueries {
	return &customerQueriesImpl{store: store}
}

func (q *customerQueriesImpl) GetByID(ctx context.Context, id uuid.UUID) (*CustomerView, error) {
	return q.store.FindByID(ctx, id)
}

func (q *customerQueriesImpl) GetIDByUser(ctx context.Context, userID uuid.UUID) (uuid.UUID, error) {
	return q.store.FindIDByUser(ctx, userID)
}

func (q *customerQueriesImpl) List(ctx context.Context, after *Cursor, limit int) ([]*CustomerView, *Cursor, error) {
	limit = ValidateLimit(limit)

	var (
		rows []*CustomerView
		err  error
	)
	if after == nil || after.After == "" {
		rows, err = q.store.FindFirstPage(ctx, int32(limit))
	} else {
		lastCreatedAt, lastID, decodeErr := DecodeAfterCursor(after.After)
		if decodeErr != nil {
			return nil, nil, errs.Mark(decodeErr, ErrInvalidCursor)
		}
		rows, err = q.store.FindKeyset(ctx, lastCreatedAt, lastID, int32(limit))
	}
	if err != nil {
		return nil, nil, err
	}

	var next *Cursor
	if len(rows) == limit {
		last := rows[len(rows)-1]
		next = &Cursor{After: EncodeAfterCursor(last.CreatedAt, last.ID)}
	}
	return rows, next, nil
}
