package readstore

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	"hotelier/internal/infra"
	"hotelier/internal/usecase/queries"
)

type AmenityReadStore struct {
	pool *pgxpool.Pool
}

func NewAmenityReadStore(pool *pgxpool.Pool) queries.AmenityReadStore {
	return &AmenityReadStore{pool: pool}
}

func (s *AmenityReadStore) FindAllServices(ctx context.Context) ([]*queries.ServiceView, error) {
	rows, err := s.pool.Query(ctx,
		`SELECT id, name, unit_price, active FROM fn_services()`,
	)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list services", err)
	}
	defer rows.Close()

	services := make([]*queries.ServiceView, 0)
	for rows.Next() {
		var v queries.ServiceView
		if err := rows.Scan(&v.ID, &v.Name, &v.UnitPrice, &v.Active); err != nil {
			return nil, infra.WrapRepoErr("failed to scan service row", err)
		}
		services = append(services, &v)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate service rows", err)
	}
	return services, nil
}
