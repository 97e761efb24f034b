package readstore

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/jackc/pgx/v5/pgxpool"

	"hotelier/internal/infra"
	"hotelier/internal/pkg/pgconv"
	"hotelier/internal/usecase/queries"
)

type CustomerReadStore struct {
	pool *pgxpool.Pool
}

func NewCustomerReadStore(pool *pgxpool.Pool) queries.CustomerReadStore {
	return &CustomerReadStore{pool: pool}
}

func (s *CustomerReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.CustomerView, error) {
	row := s.pool.QueryRow(ctx,
		`SELECT id, user_id, full_name, phone, program_id, program_name,
		        points_balance, created_at, updated_at
		   FROM fn_customer_detail($1)`,
		id,
	)

	view, err := scanCustomerView(row)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("customer not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find customer", err)
	}
	return view, nil
}

func (s *CustomerReadStore) FindIDByUser(ctx context.Context, userID uuid.UUID) (uuid.UUID, error) {
	var id pgtype.UUID
	err := s.pool.QueryRow(ctx, `SELECT fn_customer_id_by_user($1)`, userID).Scan(&id)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return uuid.Nil, infra.WrapRepoErr("customer not found for user", err, infra.KindNotFound)
		}
		return uuid.Nil, infra.WrapRepoErr("failed to resolve customer", err)
	}
	if !id.Valid {
		return uuid.Nil, infra.WrapRepoErr("customer not found for user", pgx.ErrNoRows, infra.KindNotFound)
	}
	return uuid.UUID(id.Bytes), nil
}

func (s *CustomerReadStore) FindFirstPage(ctx context.Context, limit int32) ([]*queries.CustomerView, error) {
	rows, err := s.pool.Query(ctx,
		`SELECT id, user_id, full_name, phone, program_id, program_name,
		        points_balance, created_at, updated_at
		   FROM fn_customers($1)`,
		limit,
	)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list customers", err)
	}
	defer rows.Close()

	return scanCustomerViews(rows)
}

func (s *CustomerReadStore) FindKeyset(ctx context.Context, lastCreatedAt time.Time, lastID uuid.UUID, limit int32) ([]*queries.CustomerView, error) {
	rows, err := s.pool.Query(ctx,
		`SELECT id, user_id, full_name, phone, program_id, program_name,
		        points_balance, created_at, updated_at
		   FROM fn_customers_keyset($1, $2, $3)`,
		lastCreatedAt, lastID, limit,
	)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list customers", err)
	}
	defer rows.Close()

	return scanCustomerViews(rows)
}

func scanCustomerView(row pgx.Row) (*queries.CustomerView, error) {
	var (
		view   queries.CustomerView
		userID pgtype.UUID
		phone  pgtype.Text
	)
	err := row.Scan(
		&view.ID,
		&userID,
		&view.FullName,
		&phone,
		&view.ProgramID,
		&view.ProgramName,
		&view.PointsBalance,
		&view.CreatedAt,
		&view.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	view.UserID = pgconv.UUIDPtrFromPgtype(userID)
	view.Phone = pgconv.StringPtrFromPgtype(phone)
	return &view, nil
}

func scanCustomerViews(rows pgx.Rows) ([]*queries.CustomerView, error) {
	views := make([]*queries.CustomerView, 0)
	for rows.Next() {
		view, err := scanCustomerView(rows)
		if err != nil {
			return nil, infra.WrapRepoErr("failed to scan customer row", err)
		}
		views = append(views, view)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate customer rows", err)
	}
	return views, nil
}
