package repository

import (
	"context"

	"github.com/google/uuid"

	"hotelier/internal/domain/amenity"
	"hotelier/internal/infra"
	"hotelier/internal/infra/db"
	"hotelier/internal/pkg/pgconv"
	"hotelier/internal/usecase/commands"
)

type AmenityRepository struct{}

func NewAmenityRepository() *AmenityRepository {
	return &AmenityRepository{}
}

func (r *AmenityRepository) CreateService(ctx context.Context, tx db.DBTX, s *amenity.Service) (uuid.UUID, error) {
	var id uuid.UUID
	err := tx.QueryRow(ctx,
		`SELECT sp_create_service($1, $2, $3, $4)`,
		s.ID(),
		s.Name(),
		s.UnitPrice(),
		s.IsActive(),
	).Scan(&id)
	if err != nil {
		return uuid.Nil, infra.WrapRepoErr("failed to create service", err)
	}
	return id, nil
}

func (r *AmenityRepository) FindServiceByID(ctx context.Context, tx db.DBTX, id uuid.UUID) (*commands.ServiceSnapshot, error) {
	var snap commands.ServiceSnapshot
	err := tx.QueryRow(ctx,
		`SELECT id, name, unit_price, active FROM fn_service($1)`,
		id,
	).Scan(&snap.ID, &snap.Name, &snap.UnitPrice, &snap.Active)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("service not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find service", err)
	}
	return &snap, nil
}

func (r *AmenityRepository) AddUsage(ctx context.Context, tx db.DBTX, u *amenity.Usage) error {
	_, err := tx.Exec(ctx,
		`SELECT sp_add_service_usage($1, $2, $3, $4, $5, $6)`,
		u.ID(),
		u.BookingID(),
		u.ServiceID(),
		u.Quantity(),
		u.UnitPrice(),
		u.UsedAt(),
	)
	if err != nil {
		return infra.WrapRepoErr("failed to add service usage", err)
	}
	return nil
}

func (r *AmenityRepository) UsageTotal(ctx context.Context, tx db.DBTX, bookingID uuid.UUID) (int64, error) {
	var total int64
	if err := tx.QueryRow(ctx, `SELECT fn_service_usage_total($1)`, bookingID).Scan(&total); err != nil {
		return 0, infra.WrapRepoErr("failed to total service usage", err)
	}
	return total, nil
}
