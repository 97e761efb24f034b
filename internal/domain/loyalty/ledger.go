package loyalty

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

var (
	ErrInvalidPointsAmount = errors.New("points amount must be positive")
	ErrInsufficientBalance = errors.New("insufficient points balance")
	ErrBelowMinimumPoints  = errors.New("balance below program minimum for redemption")
	ErrBalanceMismatch     = errors.New("points balance does not match ledger sum")
)

// Entry is one immutable change to a customer's points balance. Entries are
// append-only; the balance is the running sum of all entries for a customer.
type Entry struct {
	id         uuid.UUID
	customerID uuid.UUID
	points     int64
	kind       EntryKind
	createdAt  time.Time
}

func ReconstructEntry(id, customerID uuid.UUID, points int64, kind EntryKind, createdAt time.Time) Entry {
	return Entry{
		id:         id,
		customerID: customerID,
		points:     points,
		kind:       kind,
		createdAt:  createdAt,
	}
}

func (e Entry) ID() uuid.UUID         { return e.id }
func (e Entry) CustomerID() uuid.UUID { return e.customerID }
func (e Entry) Points() int64         { return e.points }
func (e Entry) Kind() EntryKind       { return e.kind }
func (e Entry) CreatedAt() time.Time  { return e.createdAt }

// Account is a customer's loyalty balance. It only moves by producing
// entries; Earn and Redeem mutate the balance and hand back the entry that
// must be persisted in the same unit of work.
type Account struct {
	customerID uuid.UUID
	programID  uuid.UUID
	balance    int64
}

func ReconstructAccount(customerID, programID uuid.UUID, balance int64) *Account {
	return &Account{
		customerID: customerID,
		programID:  programID,
		balance:    balance,
	}
}

func (a *Account) CustomerID() uuid.UUID { return a.customerID }
func (a *Account) ProgramID() uuid.UUID  { return a.programID }
func (a *Account) Balance() int64        { return a.balance }

func (a *Account) Earn(points int64, now time.Time) (Entry, error) {
	if points <= 0 {
		return Entry{}, ErrInvalidPointsAmount
	}

	a.balance += points
	return Entry{
		id:         uuid.New(),
		customerID: a.customerID,
		points:     points,
		kind:       KindEarn,
		createdAt:  now,
	}, nil
}

func (a *Account) Redeem(points int64, program Program, now time.Time) (Entry, error) {
	if points <= 0 {
		return Entry{}, ErrInvalidPointsAmount
	}
	if a.balance < program.MinPoints() {
		return Entry{}, ErrBelowMinimumPoints
	}
	if a.balance < points {
		return Entry{}, ErrInsufficientBalance
	}

	a.balance -= points
	return Entry{
		id:         uuid.New(),
		customerID: a.customerID,
		points:     -points,
		kind:       KindUse,
		createdAt:  now,
	}, nil
}

// CheckConsistency compares a stored balance against the ledger sum.
// Any drift means an append and its balance update were split across
// failed units of work and the balance must be rebuilt from the entries.
func CheckConsistency(balance, entrySum int64) error {
	if balance != entrySum {
		return ErrBalanceMismatch
	}
	return nil
}
