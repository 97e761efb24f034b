//go:build e2e

package auth_test

import (
	"net/http"
	"testing"

	"hotelier/internal/handler/dto/request"
	"hotelier/tests/common/authtest"
	"hotelier/tests/common/dbtest"
	"hotelier/tests/common/httptest"
	"hotelier/tests/e2e"

	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

const (
	loginURL   = "/api/auth/login"
	refreshURL = "/api/auth/refresh"
	meURL      = "/api/auth/me"
)

type authSuite struct {
	e2e.SharedSuite
}

func TestAuthSuite(t *testing.T) {
	t.Parallel()
	suite.Run(t, new(authSuite))
}

func (s *authSuite) seedUsers() {
	t := s.T()
	dbtest.CreateTestUser(t, s.DB, "desk@example.com", "receptionist")
	dbtest.CreateTestUser(t, s.DB, "inactive@example.com", "receptionist")

	_, err := s.DB.Exec(t.Context(), "UPDATE users SET is_active = false WHERE email = 'inactive@example.com'")
	require.NoError(t, err)
}

func (s *authSuite) TestLogin() {
	tests := []struct {
		name           string
		email          string
		password       string
		expectedStatus int
	}{
		{
			name:           "valid credentials",
			email:          "desk@example.com",
			password:       "password123",
			expectedStatus: http.StatusOK,
		},
		{
			name:           "unknown user",
			email:          "nobody@example.com",
			password:       "password123",
			expectedStatus: http.StatusUnauthorized,
		},
		{
			name:           "wrong password",
			email:          "desk@example.com",
			password:       "wrongpassword",
			expectedStatus: http.StatusUnauthorized,
		},
		{
			name:           "inactive user",
			email:          "inactive@example.com",
			password:       "password123",
			expectedStatus: http.StatusUnauthorized,
		},
		{
			name:           "malformed email",
			email:          "not-an-email",
			password:       "password123",
			expectedStatus: http.StatusBadRequest,
		},
	}

	for _, tc := range tests {
		s.Run(tc.name, func() {
			s.seedUsers()

			rec := httptest.PerformRequest(s.T(), s.Router, http.MethodPost, loginURL,
				request.LoginRequest{Email: tc.email, Password: tc.password}, "")
			s.Equal(tc.expectedStatus, rec.Code, rec.Body.String())

			if tc.expectedStatus == http.StatusOK {
				s.NotNil(httptest.ExtractCookie(rec, "access_token"))
				s.NotNil(httptest.ExtractCookie(rec, "refresh_token"))
			}
		})
	}
}

func (s *authSuite) TestRefresh() {
	s.Run("rotates tokens from the refresh cookie", func() {
		s.seedUsers()

		loginRec := httptest.PerformRequest(s.T(), s.Router, http.MethodPost, loginURL,
			request.LoginRequest{Email: "desk@example.com", Password: "password123"}, "")
		s.Require().Equal(http.StatusOK, loginRec.Code)
		cookies := httptest.ExtractCookies(loginRec)

		rec := httptest.PerformRequestWithCookies(s.T(), s.Router, http.MethodPost, refreshURL, nil, cookies, "")
		s.Equal(http.StatusOK, rec.Code, rec.Body.String())
		s.NotNil(httptest.ExtractCookie(rec, "access_token"))
	})

	s.Run("rejects a missing refresh token", func() {
		rec := httptest.PerformRequest(s.T(), s.Router, http.MethodPost, refreshURL, nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusUnauthorized, "Refresh token required")
	})
}

func (s *authSuite) TestMe() {
	s.Run("returns the authenticated user", func() {
		s.seedUsers()
		token := authtest.LoginUser(s.T(), s.Router, "desk@example.com", "password123")

		rec := httptest.PerformRequest(s.T(), s.Router, http.MethodGet, meURL, nil, token)

		var response map[string]any
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Equal("desk@example.com", response["email"])
		s.Equal("receptionist", response["role"])
	})

	s.Run("rejects an unauthenticated request", func() {
		rec := httptest.PerformRequest(s.T(), s.Router, http.MethodGet, meURL, nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusUnauthorized, "Access token required")
	})
}
