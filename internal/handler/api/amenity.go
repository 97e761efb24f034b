package api

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	reqdto "hotelier/internal/handler/dto/request"
	resdto "hotelier/internal/handler/dto/response"
	"hotelier/internal/usecase/commands"
	"hotelier/internal/usecase/queries"
)

type AmenityHandler struct {
	amenityCommands commands.AmenityCommands
	amenityQueries  queries.AmenityQueries
}

func NewAmenityHandler(amenityCommands commands.AmenityCommands, amenityQueries queries.AmenityQueries) *AmenityHandler {
	return &AmenityHandler{
		amenityCommands: amenityCommands,
		amenityQueries:  amenityQueries,
	}
}

// @Summary List services
// @Tags services
// @Produce json
// @Success 200 {array} resdto.ServiceResponse
// @Router /services [get]
func (h *AmenityHandler) ListServices(c *gin.Context) {
	views, err := h.amenityQueries.ListServices(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	c.JSON(http.StatusOK, resdto.FromServiceViews(views))
}

// @Summary Create service
// @Tags services
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.CreateServiceRequest true "Service"
// @Success 201 {object} map[string]string
// @Failure 400 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /services [post]
func (h *AmenityHandler) CreateService(c *gin.Context) {
	var req reqdto.CreateServiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	id, err := h.amenityCommands.CreateService(c.Request.Context(), req.Name, req.UnitPrice)
	if err != nil {
		switch {
		case errors.Is(err, commands.ErrDuplicateService):
			c.JSON(http.StatusConflict, gin.H{"error": "Service name already exists"})
		case errors.Is(err, commands.ErrInvalidService):
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid service data"})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		}
		return
	}

	c.JSON(http.StatusCreated, gin.H{"id": id.String()})
}
