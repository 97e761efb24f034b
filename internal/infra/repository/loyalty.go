package repository

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"

	"hotelier/internal/domain/loyalty"
	"hotelier/internal/infra"
	"hotelier/internal/infra/db"
	"hotelier/internal/pkg/pgconv"
	"hotelier/internal/usecase/commands"
)

// LoyaltyRepository is the write side of the points ledger. Every mutation
// goes through a stored procedure; the FOR UPDATE lock in
// sp_loyalty_account_for_update serializes concurrent movements per customer.
type LoyaltyRepository struct{}

func NewLoyaltyRepository() *LoyaltyRepository {
	return &LoyaltyRepository{}
}

func (r *LoyaltyRepository) CreateAccount(ctx context.Context, tx db.DBTX, customerID, programID uuid.UUID) error {
	if _, err := tx.Exec(ctx, `SELECT sp_create_loyalty_account($1, $2)`, customerID, programID); err != nil {
		return infra.WrapRepoErr("failed to create loyalty account", err)
	}
	return nil
}

func (r *LoyaltyRepository) AccountForUpdate(ctx context.Context, tx db.DBTX, customerID uuid.UUID) (*commands.AccountSnapshot, error) {
	var snap commands.AccountSnapshot
	err := tx.QueryRow(ctx,
		`SELECT customer_id, program_id, balance
		   FROM sp_loyalty_account_for_update($1)`,
		customerID,
	).Scan(&snap.CustomerID, &snap.ProgramID, &snap.Balance)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("loyalty account not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to lock loyalty account", err)
	}
	return &snap, nil
}

func (r *LoyaltyRepository) ProgramByID(ctx context.Context, tx db.DBTX, id uuid.UUID) (*commands.ProgramSnapshot, error) {
	var (
		snap commands.ProgramSnapshot
		rate pgtype.Numeric
	)
	err := tx.QueryRow(ctx,
		`SELECT id, name, min_points, discount_per_point, accrual_rate
		   FROM fn_loyalty_program($1)`,
		id,
	).Scan(&snap.ID, &snap.Name, &snap.MinPoints, &snap.DiscountPerPoint, &rate)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("loyalty program not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find loyalty program", err)
	}

	snap.AccrualRate, err = pgconv.Float64FromNumeric(rate)
	if err != nil {
		return nil, infra.WrapRepoErr("invalid accrual rate", err)
	}
	return &snap, nil
}

func (r *LoyaltyRepository) AppendEntry(ctx context.Context, tx db.DBTX, entry loyalty.Entry) error {
	_, err := tx.Exec(ctx,
		`SELECT sp_append_points_entry($1, $2, $3, $4, $5)`,
		entry.ID(),
		entry.CustomerID(),
		entry.Points(),
		entry.Kind().String(),
		entry.CreatedAt(),
	)
	if err != nil {
		return infra.WrapRepoErr("failed to append points entry", err)
	}
	return nil
}

func (r *LoyaltyRepository) SetBalance(ctx context.Context, tx db.DBTX, customerID uuid.UUID, balance int64) error {
	if _, err := tx.Exec(ctx, `SELECT sp_set_points_balance($1, $2)`, customerID, balance); err != nil {
		return infra.WrapRepoErr("failed to set points balance", err)
	}
	return nil
}

func (r *LoyaltyRepository) EntrySum(ctx context.Context, tx db.DBTX, customerID uuid.UUID) (int64, error) {
	var sum int64
	if err := tx.QueryRow(ctx, `SELECT fn_points_entry_sum($1)`, customerID).Scan(&sum); err != nil {
		return 0, infra.WrapRepoErr("failed to sum points entries", err)
	}
	return sum, nil
}
