package customer

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
)

var (
	ErrInvalidFullName = errors.New("full name cannot be empty")
	ErrInvalidPhone    = errors.New("invalid phone number")
)

// Customer is a guest profile. The loyalty balance itself lives in
// loyalty.Account; the profile only carries the program enrollment.
type Customer struct {
	id        uuid.UUID
	userID    *uuid.UUID
	fullName  string
	phone     string
	programID uuid.UUID
	createdAt time.Time
	updatedAt time.Time
}

func NewCustomer(userID *uuid.UUID, fullName, phone string, programID uuid.UUID) (*Customer, error) {
	fullName = strings.TrimSpace(fullName)
	if fullName == "" {
		return nil, ErrInvalidFullName
	}
	phone = strings.TrimSpace(phone)
	if phone != "" && len(phone) < 7 {
		return nil, ErrInvalidPhone
	}

	return &Customer{
		id:        uuid.New(),
		userID:    userID,
		fullName:  fullName,
		phone:     phone,
		programID: programID,
	}, nil
}

func ReconstructCustomer(
	id uuid.UUID,
	userID *uuid.UUID,
	fullName, phone string,
	programID uuid.UUID,
	createdAt, updatedAt time.Time,
) *Customer {
	return &Customer{
		id:        id,
		userID:    userID,
		fullName:  fullName,
		phone:     phone,
		programID: programID,
		createdAt: createdAt,
		updatedAt: updatedAt,
	}
}

func (c *Customer) Rename(fullName string) error {
	fullName = strings.TrimSpace(fullName)
	if fullName == "" {
		return ErrInvalidFullName
	}
	c.fullName = fullName
	return nil
}

func (c *Customer) SetPhone(phone string) error {
	phone = strings.TrimSpace(phone)
	if phone != "" && len(phone) < 7 {
		return ErrInvalidPhone
	}
	c.phone = phone
	return nil
}

func (c *Customer) ID() uuid.UUID        { return c.id }
func (c *Customer) UserID() *uuid.UUID   { return c.userID }
func (c *Customer) FullName() string     { return c.fullName }
func (c *Customer) Phone() string        { return c.phone }
func (c *Customer) ProgramID() uuid.UUID { return c.programID }
func (c *Customer) CreatedAt() time.Time { return c.createdAt }
func (c *Customer) UpdatedAt() time.Time { return c.updatedAt }
