package queries

import (
	"context"

	"github.com/google/uuid"
)

type LoyaltyQueries interface {
	GetBalance(ctx context.Context, customerID uuid.UUID) (*PointsBalanceView, error)
	History(ctx context.Context, customerID uuid.UUID, limit int) ([]*LedgerEntryView, error)
}

type LoyaltyReadStore interface {
	FindBalance(ctx context.Context, customerID uuid.UUID) (*PointsBalanceView, error)
	FindHistory(ctx context.Context, customerID uuid.UUID, limit int32) ([]*LedgerEntryView, error)
}

type loyaltyQueriesImpl struct {
	store LoyaltyReadStore
}

func NewLoyaltyQueries(store LoyaltyReadStore) LoyaltyQueries {
	return &loyaltyQueriesImpl{store: store}
}

func (q *loyaltyQueriesImpl) GetBalance(ctx context.Context, customerID uuid.UUID) (*PointsBalanceView, error) {
	return q.store.FindBalance(ctx, customerID)
}

func (q *loyaltyQueriesImpl) History(ctx context.Context, customerID uuid.UUID, limit int) ([]*LedgerEntryView, error) {
	return q.store.FindHistory(ctx, customerID, int32(ValidateLimit(limit)))
}
