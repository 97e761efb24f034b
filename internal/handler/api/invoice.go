package api

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	reqdto "hotelier/internal/handler/dto/request"
	resdto "hotelier/internal/handler/dto/response"
	"hotelier/internal/handler/middleware"
	"hotelier/internal/usecase/commands"
	"hotelier/internal/usecase/queries"
)

type InvoiceHandler struct {
	invoiceCommands commands.InvoiceCommands
	invoiceQueries  queries.InvoiceQueries
}

func NewInvoiceHandler(invoiceCommands commands.InvoiceCommands, invoiceQueries queries.InvoiceQueries) *InvoiceHandler {
	return &InvoiceHandler{
		invoiceCommands: invoiceCommands,
		invoiceQueries:  invoiceQueries,
	}
}

// @Summary Get invoice
// @Tags invoices
// @Produce json
// @Security BearerAuth
// @Param id path string true "Invoice ID"
// @Success 200 {object} resdto.InvoiceResponse
// @Failure 404 {object} map[string]string
// @Router /invoices/{id} [get]
func (h *InvoiceHandler) GetByID(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid invoice ID"})
		return
	}

	view, err := h.invoiceQueries.GetByID(c.Request.Context(), id)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Invoice not found"})
		return
	}
	// Other guests' invoices are invisible, not forbidden.
	if own, restricted := middleware.OwnCustomerID(c); restricted && view.CustomerID != own {
		c.JSON(http.StatusNotFound, gin.H{"error": "Invoice not found"})
		return
	}

	c.JSON(http.StatusOK, resdto.FromInvoiceView(view))
}

// @Summary List invoices by customer
// @Tags invoices
// @Produce json
// @Security BearerAuth
// @Param customer_id query string true "Customer ID"
// @Param limit query int false "Page size"
// @Success 200 {array} resdto.InvoiceResponse
// @Router /invoices [get]
func (h *InvoiceHandler) List(c *gin.Context) {
	customerID, err := uuid.Parse(c.Query("customer_id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid customer ID"})
		return
	}

	views, err := h.invoiceQueries.ListByCustomer(c.Request.Context(), customerID, intQuery(c, "limit"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	c.JSON(http.StatusOK, resdto.FromInvoiceViews(views))
}

// @Summary Record payment
// @Description Apply a payment; full settlement accrues loyalty points
// @Tags invoices
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Invoice ID"
// @Param request body reqdto.RecordPaymentRequest true "Payment"
// @Success 200 {object} resdto.PaymentResultResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 422 {object} map[string]string
// @Router /invoices/{id}/payments [post]
func (h *InvoiceHandler) RecordPayment(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid invoice ID"})
		return
	}

	var req reqdto.RecordPaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	result, err := h.invoiceCommands.RecordPayment(c.Request.Context(), commands.RecordPaymentParams{
		InvoiceID: id,
		Amount:    req.Amount,
		Method:    req.Method,
	})
	if err != nil {
		switch {
		case errors.Is(err, commands.ErrInvoiceNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "Invoice not found"})
		case errors.Is(err, commands.ErrInvalidPaymentMethod):
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid payment method"})
		case errors.Is(err, commands.ErrInvalidPayment):
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid payment"})
		case errors.Is(err, commands.ErrInvoiceAlreadyPaid):
			c.JSON(http.StatusUnprocessableEntity, gin.H{"error": "Invoice is already paid"})
		case errors.Is(err, commands.ErrOverpayment):
			c.JSON(http.StatusUnprocessableEntity, gin.H{"error": "Payment exceeds outstanding amount"})
		case errors.Is(err, commands.ErrInvoiceNotPayable):
			c.JSON(http.StatusUnprocessableEntity, gin.H{"error": "Invoice is not payable"})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		}
		return
	}

	c.JSON(http.StatusOK, resdto.PaymentResultResponse{
		InvoiceID:    result.InvoiceID,
		PaidAmount:   result.PaidAmount,
		Outstanding:  result.Outstanding,
		Settled:      result.Settled,
		PointsEarned: result.PointsEarned,
	})
}
