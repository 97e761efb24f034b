//go:build unit

package api_test

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"hotelier/internal/handler/api"
	resdto "hotelier/internal/handler/dto/response"
	"hotelier/internal/usecase/commands"
	"hotelier/internal/usecase/queries"
	"hotelier/tests/common/builder"
	"hotelier/tests/common/httptest"
	"hotelier/tests/common/testutil"
	commandsmock "hotelier/tests/mock/commands"
	queriesmock "hotelier/tests/mock/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type BookingHandlerTestSuite struct {
	suite.Suite
	router       *gin.Engine
	mockCtrl     *gomock.Controller
	mockCommands *commandsmock.MockBookingCommands
	mockAmenity  *commandsmock.MockAmenityCommands
	mockQueries  *queriesmock.MockBookingQueries
	handler      *api.BookingHandler
}

func (s *BookingHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockCommands = commandsmock.NewMockBookingCommands(s.mockCtrl)
	s.mockAmenity = commandsmock.NewMockAmenityCommands(s.mockCtrl)
	s.mockQueries = queriesmock.NewMockBookingQueries(s.mockCtrl)
	s.handler = api.NewBookingHandler(s.mockCommands, s.mockAmenity, s.mockQueries)

	s.router.POST("/bookings", s.handler.Create)
	s.router.GET("/bookings", s.handler.List)
	s.router.GET("/bookings/:id", s.handler.GetByID)
	s.router.POST("/bookings/:id/check-in", s.handler.CheckIn)
	s.router.POST("/bookings/:id/check-out", s.handler.CheckOut)
	s.router.POST("/bookings/:id/cancel", s.handler.Cancel)
	s.router.POST("/bookings/:id/services", s.handler.AddService)
}

func (s *BookingHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestBookingHandlerSuite(t *testing.T) {
	suite.Run(t, new(BookingHandlerTestSuite))
}

func (s *BookingHandlerTestSuite) TestCreate() {
	url := "/bookings"

	bb := builder.NewBookingBuilder()
	reqBody := bb.BuildDTO()
	createParams := commands.CreateBookingParams{
		CustomerID: reqBody.CustomerID,
		RoomID:     reqBody.RoomID,
		CheckIn:    reqBody.CheckIn,
		CheckOut:   reqBody.CheckOut,
		RateType:   reqBody.RateType,
	}
	returnView := bb.BuildReadModel()

	s.Run("success: returns 201 Created with the booking", func() {
		s.mockCommands.EXPECT().Create(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ any, params commands.CreateBookingParams) (*queries.BookingView, error) {
				s.Equal(createParams.CustomerID, params.CustomerID)
				s.Equal(createParams.RoomID, params.RoomID)
				s.Equal(createParams.RateType, params.RateType)
				s.True(createParams.CheckIn.Equal(params.CheckIn))
				s.True(createParams.CheckOut.Equal(params.CheckOut))
				return returnView, nil
			}).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "token")

		var response resdto.BookingResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, &response)
		s.Equal(returnView.ID, response.ID)
		s.Equal(returnView.RoomNumber, response.RoomNumber)
		s.Equal(returnView.Status, response.Status)
	})

	s.Run("error: 400 Bad Request on validation errors", func() {
		testCases := []struct {
			name   string
			mutate func(m map[string]any)
		}{
			{name: "missing field: customer_id", mutate: testutil.Field("customer_id", nil)},
			{name: "missing field: room_id", mutate: testutil.Field("room_id", nil)},
			{name: "missing field: check_in", mutate: testutil.Field("check_in", nil)},
			{name: "missing field: check_out", mutate: testutil.Field("check_out", nil)},
			{name: "missing field: rate_type", mutate: testutil.Field("rate_type", nil)},
			{name: "malformed customer_id", mutate: testutil.Field("customer_id", "not-a-uuid")},
		}

		for _, tc := range testCases {
			s.Run(tc.name, func() {
				requestMap := testutil.DtoMap(s.T(), reqBody, tc.mutate)
				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, requestMap, "token")
				httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "")
			})
		}
	})

	s.Run("error: maps usecase errors to proper statuses", func() {
		testCases := []struct {
			name           string
			commandsError  error
			expectedStatus int
			expectedMsg    string
		}{
			{
				name:           "room not found",
				commandsError:  commands.ErrRoomNotFound,
				expectedStatus: http.StatusNotFound,
				expectedMsg:    "Room not found",
			},
			{
				name:           "customer not found",
				commandsError:  commands.ErrCustomerNotFound,
				expectedStatus: http.StatusNotFound,
				expectedMsg:    "Customer not found",
			},
			{
				name:           "invalid rate type",
				commandsError:  commands.ErrInvalidRateType,
				expectedStatus: http.StatusBadRequest,
				expectedMsg:    "Invalid rate type",
			},
			{
				name:           "invalid stay",
				commandsError:  commands.ErrInvalidStay,
				expectedStatus: http.StatusBadRequest,
				expectedMsg:    "Check-out must be after check-in",
			},
			{
				name:           "room unavailable",
				commandsError:  commands.ErrRoomUnavailable,
				expectedStatus: http.StatusConflict,
				expectedMsg:    "Room unavailable",
			},
			{
				name:           "overlapping booking",
				commandsError:  commands.ErrBookingConflict,
				expectedStatus: http.StatusConflict,
				expectedMsg:    "conflicts with an existing stay",
			},
			{
				name:           "internal server error",
				commandsError:  errors.New("database error"),
				expectedStatus: http.StatusInternalServerError,
				expectedMsg:    "Internal server error",
			},
		}

		for _, tc := range testCases {
			s.Run(tc.name, func() {
				s.mockCommands.EXPECT().Create(gomock.Any(), gomock.Any()).
					Return(nil, tc.commandsError).Times(1)

				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "token")
				httptest.AssertErrorResponse(s.T(), rec, tc.expectedStatus, tc.expectedMsg)
			})
		}
	})
}

func (s *BookingHandlerTestSuite) TestGetByID() {
	returnView := builder.NewBookingBuilder().BuildReadModel()

	s.Run("success: returns 200 OK with the booking", func() {
		s.mockQueries.EXPECT().GetByID(gomock.Any(), returnView.ID).
			Return(returnView, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/bookings/"+returnView.ID.String(), nil, "token")

		var response resdto.BookingResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Equal(returnView.ID, response.ID)
	})

	s.Run("error: 400 on malformed ID", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/bookings/not-a-uuid", nil, "token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid booking ID")
	})

	s.Run("error: 404 when booking does not exist", func() {
		id := uuid.New()
		s.mockQueries.EXPECT().GetByID(gomock.Any(), id).
			Return(nil, errors.New("no rows")).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/bookings/"+id.String(), nil, "token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "Booking not found")
	})
}

func (s *BookingHandlerTestSuite) TestList() {
	customerID := uuid.New()

	s.Run("success: returns first page without cursor", func() {
		items := []*queries.BookingListItem{
			{ID: uuid.New(), RoomNumber: "101", Status: "pending", Charge: 20000},
			{ID: uuid.New(), RoomNumber: "202", Status: "checked_out", Charge: 45000},
		}
		s.mockQueries.EXPECT().ListByCustomer(gomock.Any(), customerID, gomock.Nil(), 0).
			Return(items, nil, nil).Times(1)

		url := fmt.Sprintf("/bookings?customer_id=%s", customerID)
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "token")

		var response resdto.BookingListResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Len(response.Items, 2)
		s.Empty(response.NextCursor)
	})

	s.Run("success: forwards cursor and limit", func() {
		after := &queries.Cursor{After: "opaque-cursor"}
		next := &queries.Cursor{After: "next-cursor"}
		s.mockQueries.EXPECT().ListByCustomer(gomock.Any(), customerID, after, 10).
			Return([]*queries.BookingListItem{}, next, nil).Times(1)

		url := fmt.Sprintf("/bookings?customer_id=%s&after=opaque-cursor&limit=10", customerID)
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "token")

		var response resdto.BookingListResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Equal("next-cursor", response.NextCursor)
	})

	s.Run("error: 400 on missing customer_id", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/bookings", nil, "token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid customer ID")
	})

	s.Run("error: 400 on bad cursor", func() {
		after := &queries.Cursor{After: "garbage"}
		s.mockQueries.EXPECT().ListByCustomer(gomock.Any(), customerID, after, 0).
			Return(nil, nil, queries.ErrInvalidCursor).Times(1)

		url := fmt.Sprintf("/bookings?customer_id=%s&after=garbage", customerID)
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid pagination cursor")
	})
}

func (s *BookingHandlerTestSuite) TestTransitions() {
	bookingID := uuid.New()

	s.Run("success: check-in returns 204", func() {
		s.mockCommands.EXPECT().CheckIn(gomock.Any(), bookingID).Return(nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/bookings/"+bookingID.String()+"/check-in", nil, "token")
		s.Equal(http.StatusNoContent, rec.Code)
	})

	s.Run("success: cancel returns 204", func() {
		s.mockCommands.EXPECT().Cancel(gomock.Any(), bookingID).Return(nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/bookings/"+bookingID.String()+"/cancel", nil, "token")
		s.Equal(http.StatusNoContent, rec.Code)
	})

	s.Run("error: 404 when booking does not exist", func() {
		s.mockCommands.EXPECT().CheckIn(gomock.Any(), bookingID).
			Return(commands.ErrBookingNotFound).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/bookings/"+bookingID.String()+"/check-in", nil, "token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "Booking not found")
	})

	s.Run("error: 422 on illegal state transition", func() {
		s.mockCommands.EXPECT().Cancel(gomock.Any(), bookingID).
			Return(commands.ErrBookingStateTransition).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/bookings/"+bookingID.String()+"/cancel", nil, "token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusUnprocessableEntity, "state does not allow")
	})
}

func (s *BookingHandlerTestSuite) TestCheckOut() {
	bookingID := uuid.New()
	url := "/bookings/" + bookingID.String() + "/check-out"

	s.Run("success: returns 200 OK with the issued invoice", func() {
		invoice := &queries.InvoiceView{
			ID:         uuid.New(),
			BookingID:  bookingID,
			CustomerID: uuid.New(),
			RoomCharge: 40000,
			Total:      40000,
			Status:     "issued",
		}
		s.mockCommands.EXPECT().CheckOut(gomock.Any(), bookingID).
			Return(invoice, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, nil, "token")

		var response resdto.InvoiceResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Equal(invoice.ID, response.ID)
		s.Equal(invoice.Total, response.Total)
		s.Equal("issued", response.Status)
	})

	s.Run("error: 422 when booking is not checked in", func() {
		s.mockCommands.EXPECT().CheckOut(gomock.Any(), bookingID).
			Return(nil, commands.ErrBookingStateTransition).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, nil, "token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusUnprocessableEntity, "does not allow check-out")
	})
}

func (s *BookingHandlerTestSuite) TestAddService() {
	bookingID := uuid.New()
	url := "/bookings/" + bookingID.String() + "/services"
	reqBody := map[string]any{
		"service_id": uuid.New().String(),
		"quantity":   2,
	}

	s.Run("success: returns 201 Created with the usage", func() {
		result := &commands.UsageResult{
			UsageID:   uuid.New(),
			UnitPrice: 1500,
			Total:     3000,
		}
		s.mockAmenity.EXPECT().AddUsage(gomock.Any(), gomock.Any()).
			Return(result, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "token")

		var response resdto.UsageResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, &response)
		s.Equal(result.UsageID, response.UsageID)
		s.Equal(result.Total, response.Total)
	})

	s.Run("error: 400 on zero quantity", func() {
		bad := map[string]any{
			"service_id": uuid.New().String(),
			"quantity":   0,
		}
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, bad, "token")
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
				name:           "booking not found",
				commandsError:  commands.ErrBookingNotFound,
				expectedStatus: http.StatusNotFound,
				expectedMsg:    "Booking not found",
			},
			{
				name:           "service not found",
				commandsError:  commands.ErrServiceNotFound,
				expectedStatus: http.StatusNotFound,
				expectedMsg:    "Service not found",
			},
			{
				name:           "service inactive",
				commandsError:  commands.ErrServiceInactive,
				expectedStatus: http.StatusUnprocessableEntity,
				expectedMsg:    "Service is inactive",
			},
			{
				name:           "booking not open",
				commandsError:  commands.ErrBookingNotOpen,
				expectedStatus: http.StatusUnprocessableEntity,
				expectedMsg:    "does not accept service charges",
			},
		}

		for _, tc := range testCases {
			s.Run(tc.name, func() {
				s.mockAmenity.EXPECT().AddUsage(gomock.Any(), gomock.Any()).
					Return(nil, tc.commandsError).Times(1)

				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "token")
				httptest.AssertErrorResponse(s.T(), rec, tc.expectedStatus, tc.expectedMsg)
			})
		}
	})
}
