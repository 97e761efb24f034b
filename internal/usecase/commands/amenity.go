package commands

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"hotelier/internal/domain/amenity"
	"hotelier/internal/infra"
	"hotelier/internal/infra/db"
	"hotelier/internal/pkg/clock"
	"hotelier/internal/pkg/errs"
	"hotelier/internal/usecase/shared"
)

var (
	ErrServiceNotFound  = errs.New("service not found")
	ErrServiceInactive  = errs.New("service is inactive")
	ErrInvalidUsage     = errs.New("invalid service usage")
	ErrBookingNotOpen   = errs.New("booking does not accept service charges")
	ErrInvalidService   = errs.New("invalid service data")
	ErrDuplicateService = errs.New("service name already exists")
)

type AddUsageParams struct {
	BookingID uuid.UUID
	ServiceID uuid.UUID
	Quantity  int32
}

type UsageResult struct {
	UsageID   uuid.UUID
	UnitPrice int64
	Total     int64
}

type AmenityCommands interface {
	CreateService(ctx context.Context, name string, unitPrice int64) (uuid.UUID, error)
	AddUsage(ctx context.Context, params AddUsageParams) (*UsageResult, error)
}

type amenityCommandsImpl struct {
	amenityRepo AmenityRepository
	bookingRepo BookingRepository
	pool        *pgxpool.Pool
	clock       clock.Clock
}

func NewAmenityCommands(
	amenityRepo AmenityRepository,
	bookingRepo BookingRepository,
	pool *pgxpool.Pool,
	clock clock.Clock,
) AmenityCommands {
	return &amenityCommandsImpl{
		amenityRepo: amenityRepo,
		bookingRepo: bookingRepo,
		pool:        pool,
		clock:       clock,
	}
}

func (a *amenityCommandsImpl) CreateService(ctx context.Context, name string, unitPrice int64) (uuid.UUID, error) {
	entity, err := amenity.NewService(name, unitPrice)
	if err != nil {
		return uuid.Nil, errs.Mark(err, ErrInvalidService)
	}

	return shared.RunInTx(ctx, a.pool, func(tx db.DBTX) (uuid.UUID, error) {
		id, err := a.amenityRepo.CreateService(ctx, tx, entity)
		if err != nil {
			if infra.IsKind(err, infra.KindDuplicateKey) {
				return uuid.Nil, ErrDuplicateService
			}
			return uuid.Nil, errs.Mark(err, ErrDatabaseOperationFailed)
		}
		return id, nil
	})
}

// AddUsage charges a service to an open booking. The unit price is frozen on
// the usage row, so later price changes never touch past stays.
func (a *amenityCommandsImpl) AddUsage(ctx context.Context, params AddUsageParams) (*UsageResult, error) {
	return shared.RunInTx(ctx, a.pool, func(tx db.DBTX) (*UsageResult, error) {
		bookingSnap, err := a.bookingRepo.FindByIDForUpdate(ctx, tx, params.BookingID)
		if err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return nil, ErrBookingNotFound
			}
			return nil, errs.Mark(err, ErrDatabaseOperationFailed)
		}

		entity, err := bookingFromSnapshot(bookingSnap)
		if err != nil {
			return nil, errs.Mark(err, ErrDatabaseOperationFailed)
		}
		if !entity.CanAddServices() {
			return nil, ErrBookingNotOpen
		}

		svcSnap, err := a.amenityRepo.FindServiceByID(ctx, tx, params.ServiceID)
		if err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return nil, ErrServiceNotFound
			}
			return nil, errs.Mark(err, ErrDatabaseOperationFailed)
		}
		if !svcSnap.Active {
			return nil, ErrServiceInactive
		}

		service := amenity.ReconstructService(svcSnap.ID, svcSnap.Name, svcSnap.UnitPrice, svcSnap.Active)
		usage, err := amenity.NewUsage(params.BookingID, service, params.Quantity, a.clock.Now())
		if err != nil {
			return nil, errs.Mark(err, ErrInvalidUsage)
		}

		if err := a.amenityRepo.AddUsage(ctx, tx, usage); err != nil {
			return nil, errs.Mark(err, ErrDatabaseOperationFailed)
		}

		return &UsageResult{
			UsageID:   usage.ID(),
			UnitPrice: usage.UnitPrice(),
			Total:     usage.Total(),
		}, nil
	})
}
