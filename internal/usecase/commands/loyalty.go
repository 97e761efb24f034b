package commands

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"hotelier/internal/domain/booking"
	"hotelier/internal/domain/loyalty"
	"hotelier/internal/infra"
	"hotelier/internal/infra/db"
	"hotelier/internal/pkg/clock"
	"hotelier/internal/pkg/config"
	"hotelier/internal/pkg/errs"
	"hotelier/internal/usecase/shared"
)

var (
	ErrLoyaltyAccountNotFound = errs.New("loyalty account not found")
	ErrProgramNotFound        = errs.New("loyalty program not found")
	ErrProgramMisconfigured   = errs.New("loyalty program misconfigured")
	ErrInvalidPointsAmount    = errs.New("invalid points amount")
	ErrInsufficientBalance    = errs.New("insufficient points balance")
	ErrBelowMinimumPoints     = errs.New("balance below program minimum")
	ErrDiscountNotApplicable  = errs.New("discount cannot be applied to booking")
	ErrNoPointsEarned         = errs.New("no points earned")
)

type RedeemPointsParams struct {
	CustomerID uuid.UUID
	Points     int64
	// BookingID, when set, applies the redeemed discount to that booking in
	// the same transaction as the ledger movement.
	BookingID *uuid.UUID
}

type RedeemResult struct {
	Points   int64
	Discount int64
	Balance  int64
}

type AccrueResult struct {
	Points  int64
	Balance int64
}

type ReconcileResult struct {
	CustomerID uuid.UUID
	Balance    int64
	LedgerSum  int64
	Consistent bool
	Repaired   bool
}

// PointsAccruer is the slice of LoyaltyCommands other commands need to grant
// points inside their own transaction.
type PointsAccruer interface {
	AccrueInTx(ctx context.Context, tx db.DBTX, customerID uuid.UUID, paidAmount int64) (int64, error)
}

type LoyaltyCommands interface {
	PointsAccruer

	AccruePoints(ctx context.Context, customerID uuid.UUID, paidAmount int64) (*AccrueResult, error)
	RedeemPoints(ctx context.Context, params RedeemPointsParams) (*RedeemResult, error)
	Reconcile(ctx context.Context, customerID uuid.UUID) (*ReconcileResult, error)
}

type loyaltyCommandsImpl struct {
	loyaltyRepo LoyaltyRepository
	bookingRepo BookingRepository
	pool        *pgxpool.Pool
	clock       clock.Clock
	cfg         config.LoyaltyConfig
}

func NewLoyaltyCommands(
	loyaltyRepo LoyaltyRepository,
	bookingRepo BookingRepository,
	pool *pgxpool.Pool,
	clock clock.Clock,
	cfg config.LoyaltyConfig,
) LoyaltyCommands {
	return &loyaltyCommandsImpl{
		loyaltyRepo: loyaltyRepo,
		bookingRepo: bookingRepo,
		pool:        pool,
		clock:       clock,
		cfg:         cfg,
	}
}

// AccruePoints grants points for a paid amount as its own transaction.
func (l *loyaltyCommandsImpl) AccruePoints(ctx context.Context, customerID uuid.UUID, paidAmount int64) (*AccrueResult, error) {
	return shared.WithDefaultRetry(ctx, l.pool, func(tx db.DBTX) (*AccrueResult, error) {
		points, balance, err := l.accrue(ctx, tx, customerID, paidAmount)
		if err != nil {
			return nil, err
		}
		return &AccrueResult{Points: points, Balance: balance}, nil
	})
}

// AccrueInTx grants points inside a caller-owned transaction, so settlement
// and accrual commit or roll back together.
func (l *loyaltyCommandsImpl) AccrueInTx(ctx context.Context, tx db.DBTX, customerID uuid.UUID, paidAmount int64) (int64, error) {
	points, _, err := l.accrue(ctx, tx, customerID, paidAmount)
	return points, err
}

func (l *loyaltyCommandsImpl) accrue(ctx context.Context, tx db.DBTX, customerID uuid.UUID, paidAmount int64) (int64, int64, error) {
	account, program, err := l.loadAccount(ctx, tx, customerID)
	if err != nil {
		return 0, 0, err
	}

	points, err := program.EarnedPoints(paidAmount)
	if err != nil {
		switch {
		case errors.Is(err, loyalty.ErrNoPointsEarned):
			return 0, account.Balance(), ErrNoPointsEarned
		case errors.Is(err, loyalty.ErrInvalidAccrualRate):
			return 0, 0, errs.Mark(err, ErrProgramMisconfigured)
		default:
			return 0, 0, err
		}
	}

	entry, err := account.Earn(points, l.clock.Now())
	if err != nil {
		return 0, 0, errs.Mark(err, ErrInvalidPointsAmount)
	}

	if err := l.persistMovement(ctx, tx, account, entry); err != nil {
		return 0, 0, err
	}
	return points, account.Balance(), nil
}

// RedeemPoints burns points for a discount. The ledger append, the balance
// write, and the optional booking discount share one transaction.
func (l *loyaltyCommandsImpl) RedeemPoints(ctx context.Context, params RedeemPointsParams) (*RedeemResult, error) {
	if params.Points <= 0 || params.Points > l.cfg.MaxRedeemPoints {
		return nil, ErrInvalidPointsAmount
	}

	return shared.WithDefaultRetry(ctx, l.pool, func(tx db.DBTX) (*RedeemResult, error) {
		account, program, err := l.loadAccount(ctx, tx, params.CustomerID)
		if err != nil {
			return nil, err
		}

		discount, err := program.DiscountFor(params.Points)
		if err != nil {
			return nil, errs.Mark(err, ErrProgramMisconfigured)
		}

		entry, err := account.Redeem(params.Points, program, l.clock.Now())
		if err != nil {
			switch {
			case errors.Is(err, loyalty.ErrInsufficientBalance):
				return nil, ErrInsufficientBalance
			case errors.Is(err, loyalty.ErrBelowMinimumPoints):
				return nil, ErrBelowMinimumPoints
			default:
				return nil, errs.Mark(err, ErrInvalidPointsAmount)
			}
		}

		if err := l.persistMovement(ctx, tx, account, entry); err != nil {
			return nil, err
		}

		if params.BookingID != nil {
			if err := l.applyBookingDiscount(ctx, tx, *params.BookingID, params.CustomerID, params.Points, discount); err != nil {
				return nil, err
			}
		}

		return &RedeemResult{
			Points:   params.Points,
			Discount: discount,
			Balance:  account.Balance(),
		}, nil
	})
}

// Reconcile recomputes the balance from the ledger sum and repairs any drift.
func (l *loyaltyCommandsImpl) Reconcile(ctx context.Context, customerID uuid.UUID) (*ReconcileResult, error) {
	return shared.RunInTx(ctx, l.pool, func(tx db.DBTX) (*ReconcileResult, error) {
		account, err := l.loyaltyRepo.AccountForUpdate(ctx, tx, customerID)
		if err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return nil, ErrLoyaltyAccountNotFound
			}
			return nil, err
		}

		sum, err := l.loyaltyRepo.EntrySum(ctx, tx, customerID)
		if err != nil {
			return nil, err
		}

		result := &ReconcileResult{
			CustomerID: customerID,
			Balance:    account.Balance,
			LedgerSum:  sum,
			Consistent: true,
		}
		if err := loyalty.CheckConsistency(account.Balance, sum); err != nil {
			// The ledger is the source of truth; the balance is a cache of it.
			if err := l.loyaltyRepo.SetBalance(ctx, tx, customerID, sum); err != nil {
				return nil, err
			}
			result.Consistent = false
			result.Repaired = true
			result.Balance = sum
		}
		return result, nil
	})
}

func (l *loyaltyCommandsImpl) loadAccount(ctx context.Context, tx db.DBTX, customerID uuid.UUID) (*loyalty.Account, loyalty.Program, error) {
	snap, err := l.loyaltyRepo.AccountForUpdate(ctx, tx, customerID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, loyalty.Program{}, ErrLoyaltyAccountNotFound
		}
		return nil, loyalty.Program{}, err
	}

	progSnap, err := l.loyaltyRepo.ProgramByID(ctx, tx, snap.ProgramID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, loyalty.Program{}, ErrProgramNotFound
		}
		return nil, loyalty.Program{}, err
	}

	account := loyalty.ReconstructAccount(snap.CustomerID, snap.ProgramID, snap.Balance)
	program := loyalty.NewProgram(progSnap.ID, progSnap.Name, progSnap.MinPoints, progSnap.DiscountPerPoint, progSnap.AccrualRate)
	return account, program, nil
}

func (l *loyaltyCommandsImpl) persistMovement(ctx context.Context, tx db.DBTX, account *loyalty.Account, entry loyalty.Entry) error {
	if err := l.loyaltyRepo.AppendEntry(ctx, tx, entry); err != nil {
		return err
	}
	return l.loyaltyRepo.SetBalance(ctx, tx, account.CustomerID(), account.Balance())
}

func (l *loyaltyCommandsImpl) applyBookingDiscount(ctx context.Context, tx db.DBTX, bookingID, customerID uuid.UUID, points, discount int64) error {
	snap, err := l.bookingRepo.FindByIDForUpdate(ctx, tx, bookingID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return ErrBookingNotFound
		}
		return err
	}
	if snap.CustomerID != customerID {
		return ErrBookingNotFound
	}

	entity, err := bookingFromSnapshot(snap)
	if err != nil {
		return errs.Mark(err, ErrDiscountNotApplicable)
	}
	if err := entity.ApplyLoyaltyDiscount(points, booking.NewMoney(discount)); err != nil {
		return errs.Mark(err, ErrDiscountNotApplicable)
	}

	return l.bookingRepo.ApplyDiscount(ctx, tx, bookingID, entity.RedeemedPoints(), entity.Discount().Amount())
}
