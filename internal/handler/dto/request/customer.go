package request

import (
	"github.com/google/uuid"
)

type RegisterCustomerRequest struct {
	FullName  string    `json:"full_name" binding:"required"`
	Phone     string    `json:"phone"`
	ProgramID uuid.UUID `json:"program_id" binding:"required"`
	// Optional guest login. When email is set, password is required too.
	Email    string `json:"email" binding:"omitempty,email"`
	Password string `json:"password" binding:"required_with=Email,omitempty,min=8"`
}

type UpdateCustomerRequest struct {
	FullName *string `json:"full_name,omitempty"`
	Phone    *string `json:"phone,omitempty"`
}
