package commands

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"hotelier/internal/domain/customer"
	"hotelier/internal/domain/user"
	"hotelier/internal/infra"
	"hotelier/internal/infra/db"
	"hotelier/internal/pkg/errs"
	"hotelier/internal/pkg/password"
	"hotelier/internal/usecase/queries"
	"hotelier/internal/usecase/shared"
)

var (
	ErrEmailAlreadyUsed    = errs.New("email already in use")
	ErrInvalidCustomerData = errs.New("invalid customer data")
)

type RegisterCustomerParams struct {
	FullName  string
	Phone     string
	ProgramID uuid.UUID
	// Email and Password, when both set, also create a login for the guest.
	Email    string
	Password string
}

type UpdateCustomerParams struct {
	CustomerID uuid.UUID
	FullName   *string
	Phone      *string
}

type CustomerCommands interface {
	Register(ctx context.Context, params RegisterCustomerParams) (*queries.CustomerView, error)
	Update(ctx context.Context, params UpdateCustomerParams) error
}

type customerCommandsImpl struct {
	customerRepo    CustomerRepository
	userRepo        UserRepository
	loyaltyRepo     LoyaltyRepository
	customerQueries queries.CustomerQueries
	pool            *pgxpool.Pool
}

func NewCustomerCommands(
	customerRepo CustomerRepository,
	userRepo UserRepository,
	loyaltyRepo LoyaltyRepository,
	customerQueries queries.CustomerQueries,
	pool *pgxpool.Pool,
) CustomerCommands {
	return &customerCommandsImpl{
		customerRepo:    customerRepo,
		userRepo:        userRepo,
		loyaltyRepo:     loyaltyRepo,
		customerQueries: customerQueries,
		pool:            pool,
	}
}

// Register creates the guest profile, an empty points account, and
// optionally a login, all in one transaction.
func (c *customerCommandsImpl) Register(ctx context.Context, params RegisterCustomerParams) (*queries.CustomerView, error) {
	customerID, err := shared.RunInTx(ctx, c.pool, func(tx db.DBTX) (uuid.UUID, error) {
		var userID *uuid.UUID
		if params.Email != "" {
			id, err := c.createLogin(ctx, tx, params.Email, params.Password)
			if err != nil {
				return uuid.Nil, err
			}
			userID = &id
		}

		entity, err := customer.NewCustomer(userID, params.FullName, params.Phone, params.ProgramID)
		if err != nil {
			return uuid.Nil, errs.Mark(err, ErrInvalidCustomerData)
		}

		id, err := c.customerRepo.Create(ctx, tx, entity)
		if err != nil {
			if infra.IsKind(err, infra.KindForeignKeyViolated) {
				return uuid.Nil, ErrProgramNotFound
			}
			return uuid.Nil, errs.Mark(err, ErrDatabaseOperationFailed)
		}

		if err := c.loyaltyRepo.CreateAccount(ctx, tx, id, params.ProgramID); err != nil {
			return uuid.Nil, errs.Mark(err, ErrDatabaseOperationFailed)
		}
		return id, nil
	})
	if err != nil {
		return nil, err
	}

	view, err := c.customerQueries.GetByID(ctx, customerID)
	if err != nil {
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}
	return view, nil
}

func (c *customerCommandsImpl) Update(ctx context.Context, params UpdateCustomerParams) error {
	_, err := shared.RunInTx(ctx, c.pool, func(tx db.DBTX) (struct{}, error) {
		snap, err := c.customerRepo.FindByID(ctx, tx, params.CustomerID)
		if err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return struct{}{}, ErrCustomerNotFound
			}
			return struct{}{}, errs.Mark(err, ErrDatabaseOperationFailed)
		}

		entity := customer.ReconstructCustomer(
			snap.ID, snap.UserID, snap.FullName, snap.Phone, snap.ProgramID,
			snap.CreatedAt, snap.UpdatedAt,
		)
		if params.FullName != nil {
			if err := entity.Rename(*params.FullName); err != nil {
				return struct{}{}, errs.Mark(err, ErrInvalidCustomerData)
			}
		}
		if params.Phone != nil {
			if err := entity.SetPhone(*params.Phone); err != nil {
				return struct{}{}, errs.Mark(err, ErrInvalidCustomerData)
			}
		}

		if err := c.customerRepo.Update(ctx, tx, entity); err != nil {
			return struct{}{}, errs.Mark(err, ErrDatabaseOperationFailed)
		}
		return struct{}{}, nil
	})
	return err
}

func (c *customerCommandsImpl) createLogin(ctx context.Context, tx db.DBTX, rawEmail, rawPassword string) (uuid.UUID, error) {
	email, err := user.NewEmail(rawEmail)
	if err != nil {
		return uuid.Nil, errs.Mark(err, ErrInvalidCustomerData)
	}
	pw, err := user.NewPassword(rawPassword)
	if err != nil {
		return uuid.Nil, errs.Mark(err, ErrInvalidCustomerData)
	}

	hash, err := password.HashPassword(pw.Value())
	if err != nil {
		return uuid.Nil, errs.Mark(err, ErrInvalidCustomerData)
	}

	id, err := c.userRepo.Create(ctx, tx, user.NewUser(email, hash, user.RoleCustomer))
	if err != nil {
		if infra.IsKind(err, infra.KindDuplicateKey) {
			return uuid.Nil, ErrEmailAlreadyUsed
		}
		return uuid.Nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}
	return id, nil
}
