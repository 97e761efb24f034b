package response

import (
	"time"

	"github.com/google/uuid"
	"github.com/jinzhu/copier"

	"hotelier/internal/usecase/queries"
)

type PointsBalanceResponse struct {
	CustomerID       uuid.UUID `json:"customerId"`
	ProgramID        uuid.UUID `json:"programId"`
	ProgramName      string    `json:"programName"`
	Balance          int64     `json:"balance"`
	MinPoints        int64     `json:"minPoints"`
	DiscountPerPoint int64     `json:"discountPerPoint"`
	AccrualRate      float64   `json:"accrualRate"`
}

type LedgerEntryResponse struct {
	ID         uuid.UUID `json:"id"`
	CustomerID uuid.UUID `json:"customerId"`
	Points     int64     `json:"points"`
	Kind       string    `json:"kind"`
	CreatedAt  time.Time `json:"createdAt"`
}

type AccrueResponse struct {
	Points  int64 `json:"points"`
	Balance int64 `json:"balance"`
}

type RedeemResponse struct {
	Points   int64 `json:"points"`
	Discount int64 `json:"discount"`
	Balance  int64 `json:"balance"`
}

type ReconcileResponse struct {
	CustomerID uuid.UUID `json:"customerId"`
	Balance    int64     `json:"balance"`
	LedgerSum  int64     `json:"ledgerSum"`
	Consistent bool      `json:"consistent"`
	Repaired   bool      `json:"repaired"`
}

func FromPointsBalanceView(view *queries.PointsBalanceView) *PointsBalanceResponse {
	var resp PointsBalanceResponse
	_ = copier.Copy(&resp, view)
	return &resp
}

func FromLedgerEntryViews(views []*queries.LedgerEntryView) []*LedgerEntryResponse {
	resps := make([]*LedgerEntryResponse, 0, len(views))
	for _, view := range views {
		var r LedgerEntryResponse
		_ = copier.Copy(&r, view)
		resps = append(resps, &r)
	}
	return resps
}
