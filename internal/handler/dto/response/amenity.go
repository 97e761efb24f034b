package response

import (
	"github.com/google/uuid"
	"github.com/jinzhu/copier"

	"hotelier/internal/usecase/queries"
)

type ServiceResponse struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	UnitPrice int64     `json:"unitPrice"`
	Active    bool      `json:"active"`
}

type UsageResponse struct {
	UsageID   uuid.UUID `json:"usageId"`
	UnitPrice int64     `json:"unitPrice"`
	Total     int64     `json:"total"`
}

func FromServiceViews(views []*queries.ServiceView) []*ServiceResponse {
	resps := make([]*ServiceResponse, 0, len(views))
	for _, view := range views {
		var r ServiceResponse
		_ = copier.Copy(&r, view)
		resps = append(resps, &r)
	}
	return resps
}
