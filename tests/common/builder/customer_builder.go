//go:build unit || e2e

package builder

import (
	"time"

	reqdto "hotelier/internal/handler/dto/request"
	"hotelier/internal/usecase/queries"

	"github.com/google/uuid"
)

type CustomerBuilder struct {
	FullName  string
	Phone     string
	ProgramID uuid.UUID
	Email     string
	Password  string
}

func NewCustomerBuilder() *CustomerBuilder {
	return &CustomerBuilder{
		FullName:  "Test Guest",
		Phone:     "+81-90-0000-0000",
		ProgramID: uuid.New(),
	}
}

func (c *CustomerBuilder) BuildDTO() reqdto.RegisterCustomerRequest {
	return reqdto.RegisterCustomerRequest{
		FullName:  c.FullName,
		Phone:     c.Phone,
		ProgramID: c.ProgramID,
		Email:     c.Email,
		Password:  c.Password,
	}
}

func (c *CustomerBuilder) BuildReadModel() *queries.CustomerView {
	now := time.Now()
	phone := c.Phone
	return &queries.CustomerView{
		ID:          uuid.New(),
		FullName:    c.FullName,
		Phone:       &phone,
		ProgramID:   c.ProgramID,
		ProgramName: "Standard",
		CreatedAt:   now,
		UpdatedAt:   now,
	}
}

func (c *CustomerBuilder) WithLogin(email, password string) *CustomerBuilder {
	c.Email = email
	c.Password = password
	return c
}

func (c *CustomerBuilder) WithProgramID(id uuid.UUID) *CustomerBuilder {
	c.ProgramID = id
	return c
}
