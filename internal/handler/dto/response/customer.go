package response

import (
	"time"

	"github.com/google/uuid"
	"github.com/jinzhu/copier"

	"hotelier/internal/usecase/queries"
)

type CustomerResponse struct {
	ID            uuid.UUID  `json:"id"`
	UserID        *uuid.UUID `json:"userId,omitempty"`
	FullName      string     `json:"fullName"`
	Phone         *string    `json:"phone,omitempty"`
	ProgramID     uuid.UUID  `json:"programId"`
	ProgramName   string     `json:"programName"`
	PointsBalance int64      `json:"pointsBalance"`
	CreatedAt     time.Time  `json:"createdAt"`
	UpdatedAt     time.Time  `json:"updatedAt"`
}

type CustomerListResponse struct {
	Items      []*CustomerResponse `json:"items"`
	NextCursor string              `json:"nextCursor,omitempty"`
}

func FromCustomerView(view *queries.CustomerView) *CustomerResponse {
	var resp CustomerResponse
	_ = copier.Copy(&resp, view)
	return &resp
}

func FromCustomerViews(views []*queries.CustomerView, next *queries.Cursor) *CustomerListResponse {
	resp := &CustomerListResponse{
		Items: make([]*CustomerResponse, 0, len(views)),
	}
	for _, view := range views {
		resp.Items = append(resp.Items, FromCustomerView(view))
	}
	if next != nil {
		resp.NextCursor = next.After
	}
	return resp
}
