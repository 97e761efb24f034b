package commands

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"hotelier/internal/domain/booking"
	"hotelier/internal/domain/invoice"
	"hotelier/internal/domain/room"
	"hotelier/internal/infra"
	"hotelier/internal/infra/db"
	"hotelier/internal/pkg/clock"
	"hotelier/internal/pkg/errs"
	"hotelier/internal/usecase/queries"
	"hotelier/internal/usecase/shared"
)

var (
	ErrBookingNotFound         = errs.New("booking not found")
	ErrRoomNotFound            = errs.New("room not found")
	ErrCustomerNotFound        = errs.New("customer not found")
	ErrRoomUnavailable         = errs.New("room unavailable for the requested period")
	ErrBookingConflict         = errs.New("booking conflict")
	ErrInvalidStay             = errs.New("invalid stay period")
	ErrInvalidRateType         = errs.New("invalid rate type")
	ErrBookingStateTransition  = errs.New("booking state does not allow this operation")
	ErrDatabaseOperationFailed = errs.New("database operation failed")
)

type CreateBookingParams struct {
	CustomerID uuid.UUID
	RoomID     uuid.UUID
	CheckIn    time.Time
	CheckOut   time.Time
	RateType   string
}

type BookingCommands interface {
	Create(ctx context.Context, params CreateBookingParams) (*queries.BookingView, error)
	CheckIn(ctx context.Context, bookingID uuid.UUID) error
	CheckOut(ctx context.Context, bookingID uuid.UUID) (*queries.InvoiceView, error)
	Cancel(ctx context.Context, bookingID uuid.UUID) error
}

type bookingCommandsImpl struct {
	bookingRepo    BookingRepository
	roomRepo       RoomRepository
	customerRepo   CustomerRepository
	invoiceRepo    InvoiceRepository
	amenityRepo    AmenityRepository
	factory        *booking.Factory
	bookingQueries queries.BookingQueries
	invoiceQueries queries.InvoiceQueries
	pool           *pgxpool.Pool
	clock          clock.Clock
}

func NewBookingCommands(
	bookingRepo BookingRepository,
	roomRepo RoomRepository,
	customerRepo CustomerRepository,
	invoiceRepo InvoiceRepository,
	amenityRepo AmenityRepository,
	factory *booking.Factory,
	bookingQueries queries.BookingQueries,
	invoiceQueries queries.InvoiceQueries,
	pool *pgxpool.Pool,
	clock clock.Clock,
) BookingCommands {
	return &bookingCommandsImpl{
		bookingRepo:    bookingRepo,
		roomRepo:       roomRepo,
		customerRepo:   customerRepo,
		invoiceRepo:    invoiceRepo,
		amenityRepo:    amenityRepo,
		factory:        factory,
		bookingQueries: bookingQueries,
		invoiceQueries: invoiceQueries,
		pool:           pool,
		clock:          clock,
	}
}

func (b *bookingCommandsImpl) Create(ctx context.Context, params CreateBookingParams) (*queries.BookingView, error) {
	rateType, err := booking.ParseRateType(params.RateType)
	if err != nil {
		return nil, errs.Mark(err, ErrInvalidRateType)
	}
	period, err := booking.NewStayPeriod(params.CheckIn, params.CheckOut)
	if err != nil {
		return nil, errs.Mark(err, ErrInvalidStay)
	}

	bookingID, err := shared.WithDefaultRetry(ctx, b.pool, func(tx db.DBTX) (uuid.UUID, error) {
		roomSnap, err := b.roomRepo.FindByID(ctx, tx, params.RoomID)
		if err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return uuid.Nil, ErrRoomNotFound
			}
			return uuid.Nil, errs.Mark(err, ErrDatabaseOperationFailed)
		}

		if _, err := b.customerRepo.FindByID(ctx, tx, params.CustomerID); err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return uuid.Nil, ErrCustomerNotFound
			}
			return uuid.Nil, errs.Mark(err, ErrDatabaseOperationFailed)
		}

		overlapping, err := b.roomRepo.HasOverlappingBooking(ctx, tx, params.RoomID, period.CheckIn(), period.CheckOut())
		if err != nil {
			return uuid.Nil, errs.Mark(err, ErrDatabaseOperationFailed)
		}

		spec := booking.RoomSpec{
			ID:          roomSnap.ID,
			NightlyRate: booking.NewMoney(roomSnap.NightlyRate),
			Available:   roomSnap.Status == room.StatusAvailable.String() && !overlapping,
		}
		entity, err := b.factory.CreateBooking(spec, params.CustomerID, period, rateType)
		if err != nil {
			if errors.Is(err, booking.ErrRoomUnavailable) {
				return uuid.Nil, ErrRoomUnavailable
			}
			return uuid.Nil, err
		}

		id, err := b.bookingRepo.Create(ctx, tx, entity)
		if err != nil {
			// An exclusion constraint catches races the overlap check missed.
			if infra.IsKind(err, infra.KindDuplicateKey) || infra.IsKind(err, infra.KindCheckViolated) {
				return uuid.Nil, ErrBookingConflict
			}
			return uuid.Nil, errs.Mark(err, ErrDatabaseOperationFailed)
		}
		return id, nil
	})
	if err != nil {
		return nil, err
	}

	// Read-after-write through the read store for the full view.
	view, err := b.bookingQueries.GetByID(ctx, bookingID)
	if err != nil {
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}
	return view, nil
}

func (b *bookingCommandsImpl) CheckIn(ctx context.Context, bookingID uuid.UUID) error {
	_, err := shared.RunInTx(ctx, b.pool, func(tx db.DBTX) (struct{}, error) {
		entity, err := b.loadBooking(ctx, tx, bookingID)
		if err != nil {
			return struct{}{}, err
		}

		if err := entity.CheckIn(b.clock.Now()); err != nil {
			return struct{}{}, errs.Mark(err, ErrBookingStateTransition)
		}

		if err := b.bookingRepo.UpdateStatus(ctx, tx, bookingID, entity.Status()); err != nil {
			return struct{}{}, errs.Mark(err, ErrDatabaseOperationFailed)
		}
		if err := b.roomRepo.UpdateStatus(ctx, tx, entity.RoomID(), room.StatusOccupied); err != nil {
			return struct{}{}, errs.Mark(err, ErrDatabaseOperationFailed)
		}
		return struct{}{}, nil
	})
	return err
}

// CheckOut closes the stay and issues the invoice: room charge plus service
// usage, minus any redeemed-points discount already on the booking.
func (b *bookingCommandsImpl) CheckOut(ctx context.Context, bookingID uuid.UUID) (*queries.InvoiceView, error) {
	invoiceID, err := shared.WithDefaultRetry(ctx, b.pool, func(tx db.DBTX) (uuid.UUID, error) {
		entity, err := b.loadBooking(ctx, tx, bookingID)
		if err != nil {
			return uuid.Nil, err
		}

		if err := entity.CheckOut(); err != nil {
			return uuid.Nil, errs.Mark(err, ErrBookingStateTransition)
		}

		serviceCharge, err := b.amenityRepo.UsageTotal(ctx, tx, bookingID)
		if err != nil {
			return uuid.Nil, errs.Mark(err, ErrDatabaseOperationFailed)
		}

		inv := invoice.NewInvoice(
			bookingID,
			entity.CustomerID(),
			entity.Charge().Amount(),
			serviceCharge,
			entity.Discount().Amount(),
			b.clock.Now(),
		)
		invoiceID, err := b.invoiceRepo.Create(ctx, tx, inv)
		if err != nil {
			if infra.IsKind(err, infra.KindDuplicateKey) {
				return uuid.Nil, ErrBookingConflict
			}
			return uuid.Nil, errs.Mark(err, ErrDatabaseOperationFailed)
		}

		if err := b.bookingRepo.UpdateStatus(ctx, tx, bookingID, entity.Status()); err != nil {
			return uuid.Nil, errs.Mark(err, ErrDatabaseOperationFailed)
		}
		if err := b.roomRepo.UpdateStatus(ctx, tx, entity.RoomID(), room.StatusAvailable); err != nil {
			return uuid.Nil, errs.Mark(err, ErrDatabaseOperationFailed)
		}
		return invoiceID, nil
	})
	if err != nil {
		return nil, err
	}

	view, err := b.invoiceQueries.GetByID(ctx, invoiceID)
	if err != nil {
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}
	return view, nil
}

func (b *bookingCommandsImpl) Cancel(ctx context.Context, bookingID uuid.UUID) error {
	_, err := shared.RunInTx(ctx, b.pool, func(tx db.DBTX) (struct{}, error) {
		entity, err := b.loadBooking(ctx, tx, bookingID)
		if err != nil {
			return struct{}{}, err
		}

		if err := entity.Cancel(); err != nil {
			return struct{}{}, errs.Mark(err, ErrBookingStateTransition)
		}

		if err := b.bookingRepo.UpdateStatus(ctx, tx, bookingID, entity.Status()); err != nil {
			return struct{}{}, errs.Mark(err, ErrDatabaseOperationFailed)
		}
		return struct{}{}, nil
	})
	return err
}

func (b *bookingCommandsImpl) loadBooking(ctx context.Context, tx db.DBTX, bookingID uuid.UUID) (*booking.Booking, error) {
	snap, err := b.bookingRepo.FindByIDForUpdate(ctx, tx, bookingID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrBookingNotFound
		}
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}
	return bookingFromSnapshot(snap)
}

func bookingFromSnapshot(snap *BookingSnapshot) (*booking.Booking, error) {
	rateType, err := booking.ParseRateType(snap.RateType)
	if err != nil {
		return nil, err
	}
	status, err := booking.NewStatus(snap.Status)
	if err != nil {
		return nil, err
	}

	return booking.ReconstructBooking(
		snap.ID,
		snap.CustomerID,
		snap.RoomID,
		booking.ReconstructStayPeriod(snap.CheckIn, snap.CheckOut),
		rateType,
		status,
		booking.NewMoney(snap.Charge),
		booking.NewMoney(snap.Discount),
		snap.RedeemedPoints,
		snap.CreatedAt,
		snap.UpdatedAt,
	), nil
}
