//go:build e2e

package booking_test

import (
	"fmt"
	"net/http"
	"testing"
	"time"

	resdto "hotelier/internal/handler/dto/response"
	"hotelier/tests/common/authtest"
	"hotelier/tests/common/dbtest"
	"hotelier/tests/common/httptest"
	"hotelier/tests/e2e"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
)

const (
	bookingsURL  = "/api/bookings"
	customersURL = "/api/customers"
	invoicesURL  = "/api/invoices"
)

type bookingSuite struct {
	e2e.SharedSuite
}

func TestBookingSuite(t *testing.T) {
	t.Parallel()
	suite.Run(t, new(bookingSuite))
}

type fixtures struct {
	token      string
	customerID uuid.UUID
	roomID     uuid.UUID
	serviceID  uuid.UUID
}

func (s *bookingSuite) prepare() fixtures {
	t := s.T()
	token := authtest.CreateAndLogin(t, s.DB, s.Router, "desk@example.com", "receptionist")
	return fixtures{
		token:      token,
		customerID: dbtest.CreateTestCustomer(t, s.DB, "Alice Guest"),
		roomID:     dbtest.CreateTestRoom(t, s.DB, "101", 20_000),
		serviceID:  dbtest.CreateTestService(t, s.DB, "Breakfast", 1_500),
	}
}

func (s *bookingSuite) createBooking(f fixtures, checkIn, checkOut time.Time) resdto.BookingResponse {
	body := map[string]any{
		"customer_id": f.customerID,
		"room_id":     f.roomID,
		"check_in":    checkIn.Format(time.RFC3339),
		"check_out":   checkOut.Format(time.RFC3339),
		"rate_type":   "nightly",
	}
	rec := httptest.PerformRequest(s.T(), s.Router, http.MethodPost, bookingsURL, body, f.token)

	var booking resdto.BookingResponse
	httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, &booking)
	return booking
}

func (s *bookingSuite) TestBookingLifecycle() {
	s.Run("full stay: book, check in, charge services, check out, pay", func() {
		f := s.prepare()

		checkIn := time.Now().Add(-1 * time.Hour)
		checkOut := checkIn.Add(48 * time.Hour)
		booking := s.createBooking(f, checkIn, checkOut)
		s.Equal("pending", booking.Status)
		s.Equal(int64(40_000), booking.Charge) // two nights at 20,000

		rec := httptest.PerformRequest(s.T(), s.Router, http.MethodPost, bookingsURL+"/"+booking.ID.String()+"/check-in", nil, f.token)
		s.Equal(http.StatusNoContent, rec.Code, rec.Body.String())

		usage := map[string]any{"service_id": f.serviceID, "quantity": 2}
		rec = httptest.PerformRequest(s.T(), s.Router, http.MethodPost, bookingsURL+"/"+booking.ID.String()+"/services", usage, f.token)
		var usageResp resdto.UsageResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, &usageResp)
		s.Equal(int64(3_000), usageResp.Total)

		rec = httptest.PerformRequest(s.T(), s.Router, http.MethodPost, bookingsURL+"/"+booking.ID.String()+"/check-out", nil, f.token)
		var invoice resdto.InvoiceResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &invoice)
		s.Equal("issued", invoice.Status)
		s.Equal(int64(40_000), invoice.RoomCharge)
		s.Equal(int64(3_000), invoice.ServiceCharge)
		s.Equal(int64(43_000), invoice.Total)

		payment := map[string]any{"amount": 43_000, "method": "card"}
		rec = httptest.PerformRequest(s.T(), s.Router, http.MethodPost, invoicesURL+"/"+invoice.ID.String()+"/payments", payment, f.token)
		var paymentResp resdto.PaymentResultResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &paymentResp)
		s.True(paymentResp.Settled)
		s.Equal(int64(0), paymentResp.Outstanding)
		s.Equal(int64(2_150), paymentResp.PointsEarned) // 5% of 43,000

		balanceURL := fmt.Sprintf("%s/%s/points", customersURL, f.customerID)
		rec = httptest.PerformRequest(s.T(), s.Router, http.MethodGet, balanceURL, nil, f.token)
		var balance resdto.PointsBalanceResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &balance)
		s.Equal(int64(2_150), balance.Balance)
	})

	s.Run("overlapping booking on the same room is rejected", func() {
		f := s.prepare()

		checkIn := time.Now().Add(24 * time.Hour)
		checkOut := checkIn.Add(48 * time.Hour)
		s.createBooking(f, checkIn, checkOut)

		body := map[string]any{
			"customer_id": f.customerID,
			"room_id":     f.roomID,
			"check_in":    checkIn.Add(12 * time.Hour).Format(time.RFC3339),
			"check_out":   checkOut.Add(12 * time.Hour).Format(time.RFC3339),
			"rate_type":   "nightly",
		}
		rec := httptest.PerformRequest(s.T(), s.Router, http.MethodPost, bookingsURL, body, f.token)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusConflict, "")
	})

	s.Run("canceled booking frees the room", func() {
		f := s.prepare()

		checkIn := time.Now().Add(24 * time.Hour)
		checkOut := checkIn.Add(24 * time.Hour)
		first := s.createBooking(f, checkIn, checkOut)

		rec := httptest.PerformRequest(s.T(), s.Router, http.MethodPost, bookingsURL+"/"+first.ID.String()+"/cancel", nil, f.token)
		s.Equal(http.StatusNoContent, rec.Code, rec.Body.String())

		second := s.createBooking(f, checkIn, checkOut)
		s.Equal("pending", second.Status)
	})

	s.Run("check-in before the stay starts is rejected", func() {
		f := s.prepare()

		checkIn := time.Now().Add(24 * time.Hour)
		booking := s.createBooking(f, checkIn, checkIn.Add(24*time.Hour))

		rec := httptest.PerformRequest(s.T(), s.Router, http.MethodPost, bookingsURL+"/"+booking.ID.String()+"/check-in", nil, f.token)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusUnprocessableEntity, "")
	})

	s.Run("customer role cannot create bookings", func() {
		f := s.prepare()
		guestToken := authtest.CreateAndLogin(s.T(), s.DB, s.Router, "guest@example.com", "customer")

		body := map[string]any{
			"customer_id": f.customerID,
			"room_id":     f.roomID,
			"check_in":    time.Now().Add(24 * time.Hour).Format(time.RFC3339),
			"check_out":   time.Now().Add(48 * time.Hour).Format(time.RFC3339),
			"rate_type":   "nightly",
		}
		rec := httptest.PerformRequest(s.T(), s.Router, http.MethodPost, bookingsURL, body, guestToken)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusForbidden, "Insufficient permissions")
	})
}

func (s *bookingSuite) TestLoyaltyRedemption() {
	s.Run("earned points discount the next booking", func() {
		f := s.prepare()

		// Settle a first stay to earn points.
		checkIn := time.Now().Add(-1 * time.Hour)
		booking := s.createBooking(f, checkIn, checkIn.Add(48*time.Hour))
		rec := httptest.PerformRequest(s.T(), s.Router, http.MethodPost, bookingsURL+"/"+booking.ID.String()+"/check-in", nil, f.token)
		s.Equal(http.StatusNoContent, rec.Code)
		rec = httptest.PerformRequest(s.T(), s.Router, http.MethodPost, bookingsURL+"/"+booking.ID.String()+"/check-out", nil, f.token)
		var invoice resdto.InvoiceResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &invoice)
		payment := map[string]any{"amount": invoice.Total, "method": "cash"}
		rec = httptest.PerformRequest(s.T(), s.Router, http.MethodPost, invoicesURL+"/"+invoice.ID.String()+"/payments", payment, f.token)
		var paymentResp resdto.PaymentResultResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &paymentResp)
		earned := paymentResp.PointsEarned
		s.Positive(earned)

		// Redeem against a new pending booking.
		secondRoom := dbtest.CreateTestRoom(s.T(), s.DB, "202", 20_000)
		body := map[string]any{
			"customer_id": f.customerID,
			"room_id":     secondRoom,
			"check_in":    time.Now().Add(72 * time.Hour).Format(time.RFC3339),
			"check_out":   time.Now().Add(96 * time.Hour).Format(time.RFC3339),
			"rate_type":   "nightly",
		}
		rec = httptest.PerformRequest(s.T(), s.Router, http.MethodPost, bookingsURL, body, f.token)
		var second resdto.BookingResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, &second)

		redeem := map[string]any{"points": 200, "booking_id": second.ID}
		redeemURL := fmt.Sprintf("%s/%s/points/redeem", customersURL, f.customerID)
		rec = httptest.PerformRequest(s.T(), s.Router, http.MethodPost, redeemURL, redeem, f.token)
		var redeemResp resdto.RedeemResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &redeemResp)
		s.Equal(int64(2_000), redeemResp.Discount) // 200 points at 10 each
		s.Equal(earned-200, redeemResp.Balance)

		rec = httptest.PerformRequest(s.T(), s.Router, http.MethodGet, bookingsURL+"/"+second.ID.String(), nil, f.token)
		var discounted resdto.BookingResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &discounted)
		s.Equal(int64(2_000), discounted.Discount)
		s.Equal(int64(200), discounted.RedeemedPoints)
	})

	s.Run("redeeming more points than the balance is rejected", func() {
		f := s.prepare()

		redeem := map[string]any{"points": 500}
		redeemURL := fmt.Sprintf("%s/%s/points/redeem", customersURL, f.customerID)
		rec := httptest.PerformRequest(s.T(), s.Router, http.MethodPost, redeemURL, redeem, f.token)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusUnprocessableEntity, "")
	})

	s.Run("reconcile confirms ledger and balance agree", func() {
		f := s.prepare()
		adminToken := authtest.CreateAndLogin(s.T(), s.DB, s.Router, "admin@example.com", "admin")

		reconcileURL := fmt.Sprintf("%s/%s/points/reconcile", customersURL, f.customerID)
		rec := httptest.PerformRequest(s.T(), s.Router, http.MethodPost, reconcileURL, nil, adminToken)
		var resp resdto.ReconcileResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &resp)
		s.True(resp.Consistent)
		s.False(resp.Repaired)
	})
}

func (s *bookingSuite) TestCustomerScope() {
	s.Run("customer sees only their own records", func() {
		f := s.prepare()

		aliceUser := dbtest.CreateTestUser(s.T(), s.DB, "alice@example.com", "customer")
		dbtest.LinkCustomerToUser(s.T(), s.DB, f.customerID, aliceUser)
		aliceToken := authtest.LoginUser(s.T(), s.Router, "alice@example.com", "password123")

		bobID := dbtest.CreateTestCustomer(s.T(), s.DB, "Bob Guest")

		rec := httptest.PerformRequest(s.T(), s.Router, http.MethodGet, fmt.Sprintf("%s/%s/points", customersURL, f.customerID), nil, aliceToken)
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, nil)

		rec = httptest.PerformRequest(s.T(), s.Router, http.MethodGet, fmt.Sprintf("%s/%s/points", customersURL, bobID), nil, aliceToken)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusForbidden, "Insufficient permissions")

		rec = httptest.PerformRequest(s.T(), s.Router, http.MethodGet, fmt.Sprintf("%s/%s", customersURL, bobID), nil, aliceToken)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusForbidden, "Insufficient permissions")

		// Bob's booking is invisible to Alice, not forbidden.
		checkIn := time.Now().Add(24 * time.Hour)
		bobBooking := s.createBooking(fixtures{token: f.token, customerID: bobID, roomID: f.roomID}, checkIn, checkIn.Add(24*time.Hour))
		rec = httptest.PerformRequest(s.T(), s.Router, http.MethodGet, bookingsURL+"/"+bobBooking.ID.String(), nil, aliceToken)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "Booking not found")

		rec = httptest.PerformRequest(s.T(), s.Router, http.MethodGet, bookingsURL+"?customer_id="+bobID.String(), nil, aliceToken)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusForbidden, "Insufficient permissions")

		rec = httptest.PerformRequest(s.T(), s.Router, http.MethodGet, bookingsURL+"?customer_id="+f.customerID.String(), nil, aliceToken)
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, nil)
	})
}
