package repository

import (
	"context"

	"github.com/google/uuid"

	"hotelier/internal/domain/user"
	"hotelier/internal/infra"
	"hotelier/internal/infra/db"
)

type UserRepository struct{}

func NewUserRepository() *UserRepository {
	return &UserRepository{}
}

func (r *UserRepository) Create(ctx context.Context, tx db.DBTX, u *user.User) (uuid.UUID, error) {
	var id uuid.UUID
	err := tx.QueryRow(ctx,
		`SELECT sp_create_user($1, $2, $3, $4, $5)`,
		u.ID(),
		u.Email().Value(),
		u.PasswordHash(),
		u.Role().String(),
		u.IsActive(),
	).Scan(&id)
	if err != nil {
		return uuid.Nil, infra.WrapRepoErr("failed to create user", err)
	}
	return id, nil
}

func (r *UserRepository) UpdateLastLogin(ctx context.Context, tx db.DBTX, id uuid.UUID) error {
	if _, err := tx.Exec(ctx, `SELECT sp_update_user_last_login($1)`, id); err != nil {
		return infra.WrapRepoErr("failed to update last login", err)
	}
	return nil
}
