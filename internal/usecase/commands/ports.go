package commands

import (
	"context"
	"time"

	"github.com/google/uuid"

	"hotelier/internal/domain/amenity"
	"hotelier/internal/domain/booking"
	"hotelier/internal/domain/customer"
	"hotelier/internal/domain/invoice"
	"hotelier/internal/domain/loyalty"
	"hotelier/internal/domain/room"
	"hotelier/internal/domain/user"
	"hotelier/internal/infra/db"
)

// Write-side snapshots prevent dependency on read-side query types (CQRS separation)

type RoomSnapshot struct {
	ID          uuid.UUID
	Number      string
	TypeID      uuid.UUID
	NightlyRate int64
	Status      string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

type CustomerSnapshot struct {
	ID        uuid.UUID
	UserID    *uuid.UUID
	FullName  string
	Phone     string
	ProgramID uuid.UUID
	CreatedAt time.Time
	UpdatedAt time.Time
}

type BookingSnapshot struct {
	ID             uuid.UUID
	CustomerID     uuid.UUID
	RoomID         uuid.UUID
	CheckIn        time.Time
	CheckOut       time.Time
	RateType       string
	Status         string
	Charge         int64
	Discount       int64
	RedeemedPoints int64
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

type AccountSnapshot struct {
	CustomerID uuid.UUID
	ProgramID  uuid.UUID
	Balance    int64
}

type ProgramSnapshot struct {
	ID               uuid.UUID
	Name             string
	MinPoints        int64
	DiscountPerPoint int64
	AccrualRate      float64
}

type InvoiceSnapshot struct {
	ID            uuid.UUID
	BookingID     uuid.UUID
	CustomerID    uuid.UUID
	RoomCharge    int64
	ServiceCharge int64
	Discount      int64
	PaidAmount    int64
	Status        string
	IssuedAt      time.Time
}

type ServiceSnapshot struct {
	ID        uuid.UUID
	Name      string
	UnitPrice int64
	Active    bool
}

type BookingRepository interface {
	Create(ctx context.Context, tx db.DBTX, b *booking.Booking) (uuid.UUID, error)
	FindByIDForUpdate(ctx context.Context, tx db.DBTX, id uuid.UUID) (*BookingSnapshot, error)
	UpdateStatus(ctx context.Context, tx db.DBTX, id uuid.UUID, status booking.Status) error
	ApplyDiscount(ctx context.Context, tx db.DBTX, id uuid.UUID, redeemedPoints, discount int64) error
}

type RoomRepository interface {
	Create(ctx context.Context, tx db.DBTX, r *room.Room) (uuid.UUID, error)
	CreateType(ctx context.Context, tx db.DBTX, t *room.RoomType) (uuid.UUID, error)
	FindByID(ctx context.Context, tx db.DBTX, id uuid.UUID) (*RoomSnapshot, error)
	UpdateStatus(ctx context.Context, tx db.DBTX, id uuid.UUID, status room.Status) error
	UpdateNightlyRate(ctx context.Context, tx db.DBTX, id uuid.UUID, rate int64) error
	HasOverlappingBooking(ctx context.Context, tx db.DBTX, roomID uuid.UUID, checkIn, checkOut time.Time) (bool, error)
}

type CustomerRepository interface {
	Create(ctx context.Context, tx db.DBTX, c *customer.Customer) (uuid.UUID, error)
	Update(ctx context.Context, tx db.DBTX, c *customer.Customer) error
	FindByID(ctx context.Context, tx db.DBTX, id uuid.UUID) (*CustomerSnapshot, error)
}

// LoyaltyRepository is the write side of the points ledger. AccountForUpdate
// must take a row lock so the append and the balance write behave as one
// serialized unit per customer.
type LoyaltyRepository interface {
	CreateAccount(ctx context.Context, tx db.DBTX, customerID, programID uuid.UUID) error
	AccountForUpdate(ctx context.Context, tx db.DBTX, customerID uuid.UUID) (*AccountSnapshot, error)
	ProgramByID(ctx context.Context, tx db.DBTX, id uuid.UUID) (*ProgramSnapshot, error)
	AppendEntry(ctx context.Context, tx db.DBTX, entry loyalty.Entry) error
	SetBalance(ctx context.Context, tx db.DBTX, customerID uuid.UUID, balance int64) error
	EntrySum(ctx context.Context, tx db.DBTX, customerID uuid.UUID) (int64, error)
}

type InvoiceRepository interface {
	Create(ctx context.Context, tx db.DBTX, inv *invoice.Invoice) (uuid.UUID, error)
	FindByIDForUpdate(ctx context.Context, tx db.DBTX, id uuid.UUID) (*InvoiceSnapshot, error)
	RecordPayment(ctx context.Context, tx db.DBTX, p *invoice.Payment) error
	UpdateSettlement(ctx context.Context, tx db.DBTX, id uuid.UUID, paidAmount int64, status invoice.Status) error
}

type AmenityRepository interface {
	CreateService(ctx context.Context, tx db.DBTX, s *amenity.Service) (uuid.UUID, error)
	FindServiceByID(ctx context.Context, tx db.DBTX, id uuid.UUID) (*ServiceSnapshot, error)
	AddUsage(ctx context.Context, tx db.DBTX, u *amenity.Usage) error
	UsageTotal(ctx context.Context, tx db.DBTX, bookingID uuid.UUID) (int64, error)
}

type UserRepository interface {
	Create(ctx context.Context, tx db.DBTX, u *user.User) (uuid.UUID, error)
	UpdateLastLogin(ctx context.Context, tx db.DBTX, id uuid.UUID) error
}
