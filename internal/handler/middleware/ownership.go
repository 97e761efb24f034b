package middleware

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"hotelier/internal/domain/user"
)

const ctxCustomerIDKey = "customer_id"

// CustomerResolver links an authenticated user to their customer record.
type CustomerResolver interface {
	GetIDByUser(ctx context.Context, userID uuid.UUID) (uuid.UUID, error)
}

// OwnershipMiddleware scopes customer-role callers to their own records.
// Receptionists and admins pass through unscoped.
type OwnershipMiddleware struct {
	resolver CustomerResolver
}

func NewOwnershipMiddleware(resolver CustomerResolver) *OwnershipMiddleware {
	return &OwnershipMiddleware{resolver: resolver}
}

// ResolveCustomer stores the caller's own customer id on the context when the
// caller holds the customer role. Must run after RequireAuth.
func (m *OwnershipMiddleware) ResolveCustomer() gin.HandlerFunc {
	return func(c *gin.Context) {
		role, ok := GetUserRole(c)
		if !ok {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
			c.Abort()
			return
		}
		if role != user.RoleCustomer {
			c.Next()
			return
		}

		userID, ok := GetUserID(c)
		if !ok {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
			c.Abort()
			return
		}

		customerID, err := m.resolver.GetIDByUser(c.Request.Context(), userID)
		if err != nil {
			// A customer account without a customer record owns nothing.
			c.JSON(http.StatusForbidden, gin.H{"error": "Insufficient permissions"})
			c.Abort()
			return
		}

		c.Set(ctxCustomerIDKey, customerID)
		c.Next()
	}
}

// RequireCustomerSelf restricts a route carrying a customer id path param to
// the customer it names. Must run after ResolveCustomer.
func (m *OwnershipMiddleware) RequireCustomerSelf() gin.HandlerFunc {
	return func(c *gin.Context) {
		own, restricted := OwnCustomerID(c)
		if !restricted {
			c.Next()
			return
		}

		pathID, err := uuid.Parse(c.Param("id"))
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid customer ID"})
			c.Abort()
			return
		}
		if pathID != own {
			c.JSON(http.StatusForbidden, gin.H{"error": "Insufficient permissions"})
			c.Abort()
			return
		}

		c.Next()
	}
}

// OwnCustomerID reports the caller's customer id and whether the caller is
// scoped to it. Staff callers are never scoped.
func OwnCustomerID(c *gin.Context) (uuid.UUID, bool) {
	v, exists := c.Get(ctxCustomerIDKey)
	if !exists {
		return uuid.Nil, false
	}
	id, ok := v.(uuid.UUID)
	return id, ok
}
