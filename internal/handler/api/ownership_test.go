//go:build unit

package api_test

import (
	"errors"
	"net/http"
	"testing"

	"hotelier/internal/domain/user"
	"hotelier/internal/handler/api"
	"hotelier/internal/handler/middleware"
	"hotelier/internal/usecase/queries"
	"hotelier/tests/common/httptest"
	queriesmock "hotelier/tests/mock/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

// OwnershipTestSuite drives customer-scoped routes through the real
// ownership middleware chain with a stubbed authenticated caller.
type OwnershipTestSuite struct {
	suite.Suite
	router          *gin.Engine
	mockCtrl        *gomock.Controller
	mockCustomers   *queriesmock.MockCustomerQueries
	mockLoyalty     *queriesmock.MockLoyaltyQueries
	mockBookings    *queriesmock.MockBookingQueries
	callerUserID    uuid.UUID
	callerRole      user.Role
	ownCustomerID   uuid.UUID
	otherCustomerID uuid.UUID
}

func (s *OwnershipTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockCustomers = queriesmock.NewMockCustomerQueries(s.mockCtrl)
	s.mockLoyalty = queriesmock.NewMockLoyaltyQueries(s.mockCtrl)
	s.mockBookings = queriesmock.NewMockBookingQueries(s.mockCtrl)

	s.callerUserID = uuid.New()
	s.callerRole = user.RoleCustomer
	s.ownCustomerID = uuid.New()
	s.otherCustomerID = uuid.New()

	loyaltyHandler := api.NewLoyaltyHandler(nil, s.mockLoyalty)
	bookingHandler := api.NewBookingHandler(nil, nil, s.mockBookings)
	ownership := middleware.NewOwnershipMiddleware(s.mockCustomers)

	authStub := func(c *gin.Context) {
		c.Set("user_id", s.callerUserID)
		c.Set("user_role", s.callerRole)
	}

	customers := s.router.Group("/customers", authStub, ownership.ResolveCustomer())
	customers.GET("/:id/points", ownership.RequireCustomerSelf(), loyaltyHandler.Balance)

	bookings := s.router.Group("/bookings", authStub, ownership.ResolveCustomer())
	bookings.GET("", bookingHandler.List)
	bookings.GET("/:id", bookingHandler.GetByID)
}

func (s *OwnershipTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestOwnershipSuite(t *testing.T) {
	suite.Run(t, new(OwnershipTestSuite))
}

func (s *OwnershipTestSuite) expectResolve() {
	s.mockCustomers.EXPECT().GetIDByUser(gomock.Any(), s.callerUserID).
		Return(s.ownCustomerID, nil).Times(1)
}

func (s *OwnershipTestSuite) TestCustomerScopedPoints() {
	s.Run("customer reads own points", func() {
		s.expectResolve()
		s.mockLoyalty.EXPECT().GetBalance(gomock.Any(), s.ownCustomerID).
			Return(&queries.PointsBalanceView{CustomerID: s.ownCustomerID, Balance: 300}, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/customers/"+s.ownCustomerID.String()+"/points", nil, "token")
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, nil)
	})

	s.Run("customer reading another guest's points gets 403", func() {
		s.expectResolve()

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/customers/"+s.otherCustomerID.String()+"/points", nil, "token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusForbidden, "Insufficient permissions")
	})

	s.Run("customer without a customer record gets 403", func() {
		s.mockCustomers.EXPECT().GetIDByUser(gomock.Any(), s.callerUserID).
			Return(uuid.Nil, errors.New("no rows")).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/customers/"+s.ownCustomerID.String()+"/points", nil, "token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusForbidden, "Insufficient permissions")
	})

	s.Run("staff reads any customer's points", func() {
		s.callerRole = user.RoleReceptionist
		defer func() { s.callerRole = user.RoleCustomer }()

		s.mockLoyalty.EXPECT().GetBalance(gomock.Any(), s.otherCustomerID).
			Return(&queries.PointsBalanceView{CustomerID: s.otherCustomerID, Balance: 10}, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/customers/"+s.otherCustomerID.String()+"/points", nil, "token")
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, nil)
	})
}

func (s *OwnershipTestSuite) TestCustomerScopedBookings() {
	s.Run("another guest's booking reads as not found", func() {
		s.expectResolve()
		bookingID := uuid.New()
		s.mockBookings.EXPECT().GetByID(gomock.Any(), bookingID).
			Return(&queries.BookingView{ID: bookingID, CustomerID: s.otherCustomerID}, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/bookings/"+bookingID.String(), nil, "token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "Booking not found")
	})

	s.Run("own booking reads normally", func() {
		s.expectResolve()
		bookingID := uuid.New()
		s.mockBookings.EXPECT().GetByID(gomock.Any(), bookingID).
			Return(&queries.BookingView{ID: bookingID, CustomerID: s.ownCustomerID}, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/bookings/"+bookingID.String(), nil, "token")
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, nil)
	})

	s.Run("listing another guest's bookings gets 403", func() {
		s.expectResolve()

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/bookings?customer_id="+s.otherCustomerID.String(), nil, "token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusForbidden, "Insufficient permissions")
	})

	s.Run("listing own bookings passes through", func() {
		s.expectResolve()
		s.mockBookings.EXPECT().ListByCustomer(gomock.Any(), s.ownCustomerID, gomock.Nil(), 0).
			Return([]*queries.BookingListItem{}, nil, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/bookings?customer_id="+s.ownCustomerID.String(), nil, "token")
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, nil)
	})
}
