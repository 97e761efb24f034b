// Package amenity models the hotel's extra services (laundry, minibar,
// airport pickup) that can be charged to a booking.
package amenity

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
)

var (
	ErrInvalidName      = errors.New("service name cannot be empty")
	ErrInvalidUnitPrice = errors.New("unit price must be positive")
	ErrInvalidQuantity  = errors.New("quantity must be positive")
)

type Service struct {
	id        uuid.UUID
	name      string
	unitPrice int64
	active    bool
}

func NewService(name string, unitPrice int64) (*Service, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, ErrInvalidName
	}
	if unitPrice <= 0 {
		return nil, ErrInvalidUnitPrice
	}

	return &Service{
		id:        uuid.New(),
		name:      name,
		unitPrice: unitPrice,
		active:    true,
	}, nil
}

func ReconstructService(id uuid.UUID, name string, unitPrice int64, active bool) *Service {
	return &Service{
		id:        id,
		name:      name,
		unitPrice: unitPrice,
		active:    active,
	}
}

func (s *Service) ID() uuid.UUID    { return s.id }
func (s *Service) Name() string     { return s.name }
func (s *Service) UnitPrice() int64 { return s.unitPrice }
func (s *Service) IsActive() bool   { return s.active }

// Usage is one service line attached to a booking; the unit price is frozen
// at the moment of use so later price changes don't rewrite old invoices.
type Usage struct {
	id        uuid.UUID
	bookingID uuid.UUID
	serviceID uuid.UUID
	quantity  int32
	unitPrice int64
	usedAt    time.Time
}

func NewUsage(bookingID uuid.UUID, service *Service, quantity int32, usedAt time.Time) (*Usage, error) {
	if quantity <= 0 {
		return nil, ErrInvalidQuantity
	}

	return &Usage{
		id:        uuid.New(),
		bookingID: bookingID,
		serviceID: service.ID(),
		quantity:  quantity,
		unitPrice: service.UnitPrice(),
		usedAt:    usedAt,
	}, nil
}

func ReconstructUsage(id, bookingID, serviceID uuid.UUID, quantity int32, unitPrice int64, usedAt time.Time) *Usage {
	return &Usage{
		id:        id,
		bookingID: bookingID,
		serviceID: serviceID,
		quantity:  quantity,
		unitPrice: unitPrice,
		usedAt:    usedAt,
	}
}

func (u *Usage) Total() int64 {
	return int64(u.quantity) * u.unitPrice
}

func (u *Usage) ID() uuid.UUID        { return u.id }
func (u *Usage) BookingID() uuid.UUID { return u.bookingID }
func (u *Usage) ServiceID() uuid.UUID { return u.serviceID }
func (u *Usage) Quantity() int32      { return u.quantity }
func (u *Usage) UnitPrice() int64     { return u.unitPrice }
func (u *Usage) UsedAt() time.Time    { return u.usedAt }
