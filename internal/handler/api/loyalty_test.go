//go:build unit

package api_test

import (
	"errors"
	"net/http"
	"testing"

	"hotelier/internal/handler/api"
	resdto "hotelier/internal/handler/dto/response"
	"hotelier/internal/usecase/commands"
	"hotelier/internal/usecase/queries"
	"hotelier/tests/common/httptest"
	commandsmock "hotelier/tests/mock/commands"
	queriesmock "hotelier/tests/mock/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type LoyaltyHandlerTestSuite struct {
	suite.Suite
	router       *gin.Engine
	mockCtrl     *gomock.Controller
	mockCommands *commandsmock.MockLoyaltyCommands
	mockQueries  *queriesmock.MockLoyaltyQueries
	handler      *api.LoyaltyHandler
}

func (s *LoyaltyHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockCommands = commandsmock.NewMockLoyaltyCommands(s.mockCtrl)
	s.mockQueries = queriesmock.NewMockLoyaltyQueries(s.mockCtrl)
	s.handler = api.NewLoyaltyHandler(s.mockCommands, s.mockQueries)

	s.router.GET("/customers/:id/points", s.handler.Balance)
	s.router.GET("/customers/:id/points/history", s.handler.History)
	s.router.POST("/customers/:id/points/accrue", s.handler.Accrue)
	s.router.POST("/customers/:id/points/redeem", s.handler.Redeem)
	s.router.POST("/customers/:id/points/reconcile", s.handler.Reconcile)
}

func (s *LoyaltyHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestLoyaltyHandlerSuite(t *testing.T) {
	suite.Run(t, new(LoyaltyHandlerTestSuite))
}

func (s *LoyaltyHandlerTestSuite) TestBalance() {
	customerID := uuid.New()

	s.Run("success: returns 200 OK with balance and program terms", func() {
		view := &queries.PointsBalanceView{
			CustomerID:       customerID,
			ProgramID:        uuid.New(),
			ProgramName:      "Standard",
			Balance:          420,
			MinPoints:        100,
			DiscountPerPoint: 10,
			AccrualRate:      0.05,
		}
		s.mockQueries.EXPECT().GetBalance(gomock.Any(), customerID).
			Return(view, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/customers/"+customerID.String()+"/points", nil, "token")

		var response resdto.PointsBalanceResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Equal(int64(420), response.Balance)
		s.Equal("Standard", response.ProgramName)
	})

	s.Run("error: 404 when account does not exist", func() {
		s.mockQueries.EXPECT().GetBalance(gomock.Any(), customerID).
			Return(nil, errors.New("no rows")).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/customers/"+customerID.String()+"/points", nil, "token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "Loyalty account not found")
	})

	s.Run("error: 400 on malformed customer ID", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/customers/not-a-uuid/points", nil, "token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid customer ID")
	})
}

func (s *LoyaltyHandlerTestSuite) TestHistory() {
	customerID := uuid.New()

	s.Run("success: returns ledger entries newest first", func() {
		entries := []*queries.LedgerEntryView{
			{ID: uuid.New(), CustomerID: customerID, Points: -200, Kind: "use"},
			{ID: uuid.New(), CustomerID: customerID, Points: 500, Kind: "earn"},
		}
		s.mockQueries.EXPECT().History(gomock.Any(), customerID, 20).
			Return(entries, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/customers/"+customerID.String()+"/points/history?limit=20", nil, "token")

		var response []resdto.LedgerEntryResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Len(response, 2)
		s.Equal("use", response[0].Kind)
		s.Equal(int64(-200), response[0].Points)
	})
}

func (s *LoyaltyHandlerTestSuite) TestAccrue() {
	customerID := uuid.New()
	url := "/customers/" + customerID.String() + "/points/accrue"
	reqBody := map[string]any{"paid_amount": 43000}

	s.Run("success: returns 200 OK with points and new balance", func() {
		s.mockCommands.EXPECT().AccruePoints(gomock.Any(), customerID, int64(43000)).
			Return(&commands.AccrueResult{Points: 2150, Balance: 2150}, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "token")

		var response resdto.AccrueResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Equal(int64(2150), response.Points)
		s.Equal(int64(2150), response.Balance)
	})

	s.Run("error: 400 on non-positive amount", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, map[string]any{"paid_amount": 0}, "token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "")
	})

	s.Run("error: maps usecase errors to proper statuses", func() {
		testCases := []struct {
			name           string
			commandsError  error
			expectedStatus int
			expectedMsg    string
		}{
			{
				name:           "account not found",
				commandsError:  commands.ErrLoyaltyAccountNotFound,
				expectedStatus: http.StatusNotFound,
				expectedMsg:    "Loyalty account not found",
			},
			{
				name:           "amount too small",
				commandsError:  commands.ErrNoPointsEarned,
				expectedStatus: http.StatusUnprocessableEntity,
				expectedMsg:    "too small",
			},
			{
				name:           "program misconfigured",
				commandsError:  commands.ErrProgramMisconfigured,
				expectedStatus: http.StatusInternalServerError,
				expectedMsg:    "misconfigured",
			},
		}

		for _, tc := range testCases {
			s.Run(tc.name, func() {
				s.mockCommands.EXPECT().AccruePoints(gomock.Any(), customerID, int64(43000)).
					Return(nil, tc.commandsError).Times(1)

				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "token")
				httptest.AssertErrorResponse(s.T(), rec, tc.expectedStatus, tc.expectedMsg)
			})
		}
	})
}

func (s *LoyaltyHandlerTestSuite) TestRedeem() {
	customerID := uuid.New()
	url := "/customers/" + customerID.String() + "/points/redeem"
	reqBody := map[string]any{"points": 200}

	s.Run("success: returns 200 OK with discount and balance", func() {
		s.mockCommands.EXPECT().RedeemPoints(gomock.Any(), commands.RedeemPointsParams{
			CustomerID: customerID,
			Points:     200,
		}).Return(&commands.RedeemResult{
			Points:   200,
			Discount: 2000,
			Balance:  300,
		}, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "token")

		var response resdto.RedeemResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Equal(int64(2000), response.Discount)
		s.Equal(int64(300), response.Balance)
	})

	s.Run("success: forwards booking ID for in-transaction discount", func() {
		bookingID := uuid.New()
		s.mockCommands.EXPECT().RedeemPoints(gomock.Any(), commands.RedeemPointsParams{
			CustomerID: customerID,
			Points:     200,
			BookingID:  &bookingID,
		}).Return(&commands.RedeemResult{Points: 200, Discount: 2000, Balance: 300}, nil).Times(1)

		body := map[string]any{"points": 200, "booking_id": bookingID.String()}
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, body, "token")
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, nil)
	})

	s.Run("error: 400 on non-positive points", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, map[string]any{"points": 0}, "token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "")
	})

	s.Run("error: maps usecase errors to proper statuses", func() {
		testCases := []struct {
			name           string
			commandsError  error
			expectedStatus int
			expectedMsg    string
		}{
			{
				name:           "account not found",
				commandsError:  commands.ErrLoyaltyAccountNotFound,
				expectedStatus: http.StatusNotFound,
				expectedMsg:    "Loyalty account not found",
			},
			{
				name:           "booking not found",
				commandsError:  commands.ErrBookingNotFound,
				expectedStatus: http.StatusNotFound,
				expectedMsg:    "Booking not found",
			},
			{
				name:           "insufficient balance",
				commandsError:  commands.ErrInsufficientBalance,
				expectedStatus: http.StatusUnprocessableEntity,
				expectedMsg:    "Insufficient points balance",
			},
			{
				name:           "below program minimum",
				commandsError:  commands.ErrBelowMinimumPoints,
				expectedStatus: http.StatusUnprocessableEntity,
				expectedMsg:    "below program minimum",
			},
			{
				name:           "discount not applicable",
				commandsError:  commands.ErrDiscountNotApplicable,
				expectedStatus: http.StatusUnprocessableEntity,
				expectedMsg:    "cannot be applied",
			},
			{
				name:           "program misconfigured",
				commandsError:  commands.ErrProgramMisconfigured,
				expectedStatus: http.StatusInternalServerError,
				expectedMsg:    "misconfigured",
			},
		}

		for _, tc := range testCases {
			s.Run(tc.name, func() {
				s.mockCommands.EXPECT().RedeemPoints(gomock.Any(), gomock.Any()).
					Return(nil, tc.commandsError).Times(1)

				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "token")
				httptest.AssertErrorResponse(s.T(), rec, tc.expectedStatus, tc.expectedMsg)
			})
		}
	})
}

func (s *LoyaltyHandlerTestSuite) TestReconcile() {
	customerID := uuid.New()
	url := "/customers/" + customerID.String() + "/points/reconcile"

	s.Run("success: reports a consistent balance", func() {
		s.mockCommands.EXPECT().Reconcile(gomock.Any(), customerID).
			Return(&commands.ReconcileResult{
				CustomerID: customerID,
				Balance:    500,
				LedgerSum:  500,
				Consistent: true,
			}, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, nil, "token")

		var response resdto.ReconcileResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.True(response.Consistent)
		s.False(response.Repaired)
	})

	s.Run("success: repairs a drifted balance", func() {
		s.mockCommands.EXPECT().Reconcile(gomock.Any(), customerID).
			Return(&commands.ReconcileResult{
				CustomerID: customerID,
				Balance:    500,
				LedgerSum:  500,
				Consistent: false,
				Repaired:   true,
			}, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, nil, "token")

		var response resdto.ReconcileResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.False(response.Consistent)
		s.True(response.Repaired)
		s.Equal(response.LedgerSum, response.Balance)
	})

	s.Run("error: 404 when account does not exist", func() {
		s.mockCommands.EXPECT().Reconcile(gomock.Any(), customerID).
			Return(nil, commands.ErrLoyaltyAccountNotFound).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, nil, "token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "Loyalty account not found")
	})
}
