package readstore

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/jackc/pgx/v5/pgxpool"

	"hotelier/internal/infra"
	"hotelier/internal/pkg/pgconv"
	"hotelier/internal/usecase/queries"
)

type LoyaltyReadStore struct {
	pool *pgxpool.Pool
}

func NewLoyaltyReadStore(pool *pgxpool.Pool) queries.LoyaltyReadStore {
	return &LoyaltyReadStore{pool: pool}
}

func (s *LoyaltyReadStore) FindBalance(ctx context.Context, customerID uuid.UUID) (*queries.PointsBalanceView, error) {
	var (
		view queries.PointsBalanceView
		rate pgtype.Numeric
	)
	err := s.pool.QueryRow(ctx,
		`SELECT customer_id, program_id, program_name, balance, min_points,
		        discount_per_point, accrual_rate
		   FROM fn_points_balance($1)`,
		customerID,
	).Scan(
		&view.CustomerID,
		&view.ProgramID,
		&view.ProgramName,
		&view.Balance,
		&view.MinPoints,
		&view.DiscountPerPoint,
		&rate,
	)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("loyalty account not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find points balance", err)
	}

	view.AccrualRate, err = pgconv.Float64FromNumeric(rate)
	if err != nil {
		return nil, infra.WrapRepoErr("invalid accrual rate", err)
	}
	return &view, nil
}

func (s *LoyaltyReadStore) FindHistory(ctx context.Context, customerID uuid.UUID, limit int32) ([]*queries.LedgerEntryView, error) {
	rows, err := s.pool.Query(ctx,
		`SELECT id, customer_id, points, kind, created_at
		   FROM fn_points_history($1, $2)`,
		customerID, limit,
	)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list points history", err)
	}
	defer rows.Close()

	entries := make([]*queries.LedgerEntryView, 0)
	for rows.Next() {
		var e queries.LedgerEntryView
		if err := rows.Scan(&e.ID, &e.CustomerID, &e.Points, &e.Kind, &e.CreatedAt); err != nil {
			return nil, infra.WrapRepoErr("failed to scan ledger row", err)
		}
		entries = append(entries, &e)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate ledger rows", err)
	}
	return entries, nil
}
