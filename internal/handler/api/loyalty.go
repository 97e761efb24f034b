package api

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	reqdto "hotelier/internal/handler/dto/request"
	resdto "hotelier/internal/handler/dto/response"
	"hotelier/internal/usecase/commands"
	"hotelier/internal/usecase/queries"
)

type LoyaltyHandler struct {
	loyaltyCommands commands.LoyaltyCommands
	loyaltyQueries  queries.LoyaltyQueries
}

func NewLoyaltyHandler(loyaltyCommands commands.LoyaltyCommands, loyaltyQueries queries.LoyaltyQueries) *LoyaltyHandler {
	return &LoyaltyHandler{
		loyaltyCommands: loyaltyCommands,
		loyaltyQueries:  loyaltyQueries,
	}
}

// @Summary Points balance
// @Description Current balance and program terms for a customer
// @Tags loyalty
// @Produce json
// @Security BearerAuth
// @Param id path string true "Customer ID"
// @Success 200 {object} resdto.PointsBalanceResponse
// @Failure 404 {object} map[string]string
// @Router /customers/{id}/points [get]
func (h *LoyaltyHandler) Balance(c *gin.Context) {
	customerID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid customer ID"})
		return
	}

	view, err := h.loyaltyQueries.GetBalance(c.Request.Context(), customerID)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Loyalty account not found"})
		return
	}

	c.JSON(http.StatusOK, resdto.FromPointsBalanceView(view))
}

// @Summary Points history
// @Description Ledger entries for a customer, newest first
// @Tags loyalty
// @Produce json
// @Security BearerAuth
// @Param id path string true "Customer ID"
// @Param limit query int false "Page size"
// @Success 200 {array} resdto.LedgerEntryResponse
// @Router /customers/{id}/points/history [get]
func (h *LoyaltyHandler) History(c *gin.Context) {
	customerID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid customer ID"})
		return
	}

	entries, err := h.loyaltyQueries.History(c.Request.Context(), customerID, intQuery(c, "limit"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	c.JSON(http.StatusOK, resdto.FromLedgerEntryViews(entries))
}

// @Summary Accrue points manually
// @Description Grant points for an amount paid outside the invoice flow
// @Tags loyalty
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Customer ID"
// @Param request body reqdto.AccruePointsRequest true "Accrual request"
// @Success 200 {object} resdto.AccrueResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 422 {object} map[string]string
// @Router /customers/{id}/points/accrue [post]
func (h *LoyaltyHandler) Accrue(c *gin.Context) {
	customerID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid customer ID"})
		return
	}

	var req reqdto.AccruePointsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	result, err := h.loyaltyCommands.AccruePoints(c.Request.Context(), customerID, req.PaidAmount)
	if err != nil {
		switch {
		case errors.Is(err, commands.ErrLoyaltyAccountNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "Loyalty account not found"})
		case errors.Is(err, commands.ErrNoPointsEarned):
			c.JSON(http.StatusUnprocessableEntity, gin.H{"error": "Amount too small to earn points"})
		case errors.Is(err, commands.ErrProgramMisconfigured):
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Loyalty program misconfigured"})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		}
		return
	}

	c.JSON(http.StatusOK, resdto.AccrueResponse{
		Points:  result.Points,
		Balance: result.Balance,
	})
}

// @Summary Redeem points
// @Description Burn points for a discount, optionally against a booking
// @Tags loyalty
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Customer ID"
// @Param request body reqdto.RedeemPointsRequest true "Redemption request"
// @Success 200 {object} resdto.RedeemResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 422 {object} map[string]string
// @Router /customers/{id}/points/redeem [post]
func (h *LoyaltyHandler) Redeem(c *gin.Context) {
	customerID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid customer ID"})
		return
	}

	var req reqdto.RedeemPointsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	result, err := h.loyaltyCommands.RedeemPoints(c.Request.Context(), commands.RedeemPointsParams{
		CustomerID: customerID,
		Points:     req.Points,
		BookingID:  req.BookingID,
	})
	if err != nil {
		switch {
		case errors.Is(err, commands.ErrLoyaltyAccountNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "Loyalty account not found"})
		case errors.Is(err, commands.ErrBookingNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "Booking not found"})
		case errors.Is(err, commands.ErrInvalidPointsAmount):
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid points amount"})
		case errors.Is(err, commands.ErrInsufficientBalance):
			c.JSON(http.StatusUnprocessableEntity, gin.H{"error": "Insufficient points balance"})
		case errors.Is(err, commands.ErrBelowMinimumPoints):
			c.JSON(http.StatusUnprocessableEntity, gin.H{"error": "Balance below program minimum for redemption"})
		case errors.Is(err, commands.ErrDiscountNotApplicable):
			c.JSON(http.StatusUnprocessableEntity, gin.H{"error": "Discount cannot be applied to the booking"})
		case errors.Is(err, commands.ErrProgramMisconfigured):
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Loyalty program misconfigured"})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		}
		return
	}

	c.JSON(http.StatusOK, resdto.RedeemResponse{
		Points:   result.Points,
		Discount: result.Discount,
		Balance:  result.Balance,
	})
}

// @Summary Reconcile points balance
// @Description Recompute the balance from the ledger sum and repair drift
// @Tags loyalty
// @Produce json
// @Security BearerAuth
// @Param id path string true "Customer ID"
// @Success 200 {object} resdto.ReconcileResponse
// @Failure 404 {object} map[string]string
// @Router /customers/{id}/points/reconcile [post]
func (h *LoyaltyHandler) Reconcile(c *gin.Context) {
	customerID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid customer ID"})
		return
	}

	result, err := h.loyaltyCommands.Reconcile(c.Request.Context(), customerID)
	if err != nil {
		if errors.Is(err, commands.ErrLoyaltyAccountNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Loyalty account not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	c.JSON(http.StatusOK, resdto.ReconcileResponse{
		CustomerID: result.CustomerID,
		Balance:    result.Balance,
		LedgerSum:  result.LedgerSum,
		Consistent: result.Consistent,
		Repaired:   result.Repaired,
	})
}
