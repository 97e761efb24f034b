package repository

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"

	"hotelier/internal/domain/customer"
	"hotelier/internal/infra"
	"hotelier/internal/infra/db"
	"hotelier/internal/pkg/pgconv"
	"hotelier/internal/usecase/commands"
)

type CustomerRepository struct{}

func NewCustomerRepository() *CustomerRepository {
	return &CustomerRepository{}
}

func (r *CustomerRepository) Create(ctx context.Context, tx db.DBTX, c *customer.Customer) (uuid.UUID, error) {
	var id uuid.UUID
	err := tx.QueryRow(ctx,
		`SELECT sp_create_customer($1, $2, $3, $4, $5)`,
		c.ID(),
		pgconv.UUIDPtrToPgtype(c.UserID()),
		c.FullName(),
		c.Phone(),
		c.ProgramID(),
	).Scan(&id)
	if err != nil {
		return uuid.Nil, infra.WrapRepoErr("failed to create customer", err)
	}
	return id, nil
}

func (r *CustomerRepository) Update(ctx context.Context, tx db.DBTX, c *customer.Customer) error {
	_, err := tx.Exec(ctx,
		`SELECT sp_update_customer($1, $2, $3)`,
		c.ID(),
		c.FullName(),
		c.Phone(),
	)
	if err != nil {
		return infra.WrapRepoErr("failed to update customer", err)
	}
	return nil
}

func (r *CustomerRepository) FindByID(ctx context.Context, tx db.DBTX, id uuid.UUID) (*commands.CustomerSnapshot, error) {
	var (
		snap   commands.CustomerSnapshot
		userID pgtype.UUID
		phone  pgtype.Text
	)
	err := tx.QueryRow(ctx,
		`SELECT id, user_id, full_name, phone, program_id, created_at, updated_at
		   FROM sp_customer_for_update($1)`,
		id,
	).Scan(
		&snap.ID,
		&userID,
		&snap.FullName,
		&phone,
		&snap.ProgramID,
		&snap.CreatedAt,
		&snap.UpdatedAt,
	)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("customer not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find customer", err)
	}

	snap.UserID = pgconv.UUIDPtrFromPgtype(userID)
	if p := pgconv.StringPtrFromPgtype(phone); p != nil {
		snap.Phone = *p
	}
	return &snap, nil
}
