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

type CustomerHandler struct {
	customerCommands commands.CustomerCommands
	customerQueries  queries.CustomerQueries
}

func NewCustomerHandler(customerCommands commands.CustomerCommands, customerQueries queries.CustomerQueries) *CustomerHandler {
	return &CustomerHandler{
		customerCommands: customerCommands,
		customerQueries:  customerQueries,
	}
}

// @Summary Register customer
// @Description Create a guest profile with a points account and an optional login
// @Tags customers
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.RegisterCustomerRequest true "Customer"
// @Success 201 {object} resdto.CustomerResponse
// @Failure 400 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /customers [post]
func (h *CustomerHandler) Register(c *gin.Context) {
	var req reqdto.RegisterCustomerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	view, err := h.customerCommands.Register(c.Request.Context(), commands.RegisterCustomerParams{
		FullName:  req.FullName,
		Phone:     req.Phone,
		ProgramID: req.ProgramID,
		Email:     req.Email,
		Password:  req.Password,
	})
	if err != nil {
		switch {
		case errors.Is(err, commands.ErrEmailAlreadyUsed):
			c.JSON(http.StatusConflict, gin.H{"error": "Email is already in use"})
		case errors.Is(err, commands.ErrProgramNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "Loyalty program not found"})
		case errors.Is(err, commands.ErrInvalidCustomerData):
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid customer data"})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		}
		return
	}

	c.JSON(http.StatusCreated, resdto.FromCustomerView(view))
}

// @Summary Update customer
// @Tags customers
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Customer ID"
// @Param request body reqdto.UpdateCustomerRequest true "Fields to update"
// @Success 204
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /customers/{id} [patch]
func (h *CustomerHandler) Update(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid customer ID"})
		return
	}

	var req reqdto.UpdateCustomerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	err = h.customerCommands.Update(c.Request.Context(), commands.UpdateCustomerParams{
		CustomerID: id,
		FullName:   req.FullName,
		Phone:      req.Phone,
	})
	if err != nil {
		switch {
		case errors.Is(err, commands.ErrCustomerNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "Customer not found"})
		case errors.Is(err, commands.ErrInvalidCustomerData):
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid customer data"})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		}
		return
	}

	c.Status(http.StatusNoContent)
}

// @Summary Get customer
// @Tags customers
// @Produce json
// @Security BearerAuth
// @Param id path string true "Customer ID"
// @Success 200 {object} resdto.CustomerResponse
// @Failure 404 {object} map[string]string
// @Router /customers/{id} [get]
func (h *CustomerHandler) GetByID(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid customer ID"})
		return
	}

	view, err := h.customerQueries.GetByID(c.Request.Context(), id)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Customer not found"})
		return
	}

	c.JSON(http.StatusOK, resdto.FromCustomerView(view))
}

// @Summary List customers
// @Tags customers
// @Produce json
// @Security BearerAuth
// @Param after query string false "Cursor from a previous page"
// @Param limit query int false "Page size"
// @Success 200 {object} resdto.CustomerListResponse
// @Failure 400 {object} map[string]string
// @Router /customers [get]
func (h *CustomerHandler) List(c *gin.Context) {
	var after *queries.Cursor
	if v := c.Query("after"); v != "" {
		after = &queries.Cursor{After: v}
	}

	views, next, err := h.customerQueries.List(c.Request.Context(), after, intQuery(c, "limit"))
	if err != nil {
		if errors.Is(err, queries.ErrInvalidCursor) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid cursor"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	c.JSON(http.StatusOK, resdto.FromCustomerViews(views, next))
}
