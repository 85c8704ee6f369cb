//go:build unit

package api_test

import (
	"errors"
	"net/http"
	"strings"
	"testing"

	"reserva/internal/handler/api"
	resdto "reserva/internal/handler/dto/response"
	"reserva/internal/pkg/config"
	"reserva/internal/pkg/cookie"
	"reserva/internal/usecase"
	"reserva/tests/common/builder"
	"reserva/tests/common/httptest"
	"reserva/tests/common/testutil"
	usecasemock "reserva/tests/mock/usecase"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type AuthHandlerTestSuite struct {
	suite.Suite
	router      *gin.Engine
	mockCtrl    *gomock.Controller
	mockUseCase *usecasemock.MockAuthUseCase
	handler     *api.AuthHandler
}

func (s *AuthHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockUseCase = usecasemock.NewMockAuthUseCase(s.mockCtrl)
	s.handler = api.NewAuthHandler(s.mockUseCase, config.NewTestConfig())

	s.router.POST("/auth/login", s.handler.Login)
	s.router.POST("/auth/logout", func(c *gin.Context) {
		// Mock middleware behavior for /auth/logout
		if token := c.GetHeader("Authorization"); token != "" {
			c.Set("session_token", strings.TrimPrefix(token, "Bearer "))
		}
		s.handler.Logout(c)
	})
	s.router.GET("/auth/me", func(c *gin.Context) {
		// Mock middleware behavior for /auth/me
		if authHeader := c.GetHeader("Authorization"); authHeader != "" {
			c.Set("user_id", uuid.New())
		}
		s.handler.Me(c)
	})
	s.router.POST("/auth/change-password", func(c *gin.Context) {
		// Mock middleware behavior for /auth/change-password
		if authHeader := c.GetHeader("Authorization"); authHeader != "" {
			c.Set("user_id", uuid.New())
		}
		s.handler.ChangePassword(c)
	})
}

func (s *AuthHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestAuthHandlerSuite(t *testing.T) {
	suite.Run(t, new(AuthHandlerTestSuite))
}

func (s *AuthHandlerTestSuite) TestLogin() {
	url := "/auth/login"

	reqBody := builder.NewUserBuilder().BuildLoginDTO()
	returnUser := builder.NewUserBuilder().BuildReadModel()
	expectedToken := "deadbeefcafe"

	s.Run("success: returns 200 OK and sets the session cookie", func() {
		s.mockUseCase.EXPECT().Login(gomock.Any(), gomock.Any()).
			Return(expectedToken, returnUser, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "")

		var response resdto.LoginResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Equal(returnUser.Username, response.User.Username)

		sessionCookie := httptest.ExtractCookie(rec, cookie.SessionCookieName)
		s.Require().NotNil(sessionCookie)
		s.Equal(expectedToken, sessionCookie.Value)
		s.True(sessionCookie.HttpOnly)
	})

	s.Run("error: 400 Bad Request on validation errors", func() {
		cases := []struct {
			name       string
			mutate     func(m map[string]any)
			expectCode int
		}{
			{name: "missing username", mutate: testutil.Field("username", nil), expectCode: http.StatusBadRequest},
			{name: "missing password", mutate: testutil.Field("password", nil), expectCode: http.StatusBadRequest},
			{name: "username too short", mutate: testutil.Field("username", "ab"), expectCode: http.StatusBadRequest},
			{name: "password too short", mutate: testutil.Field("password", strings.Repeat("a", 7)), expectCode: http.StatusBadRequest},
		}

		for _, tc := range cases {
			s.Run(tc.name, func() {
				body := builder.NewUserBuilder().BuildLoginDTO()
				tc.mutate(body)

				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, body, "")
				httptest.AssertErrorResponse(s.T(), rec, tc.expectCode, "")
			})
		}
	})

	s.Run("error: 401 Unauthorized for bad credentials", func() {
		s.mockUseCase.EXPECT().Login(gomock.Any(), gomock.Any()).
			Return("", nil, usecase.ErrInvalidCredentials).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusUnauthorized, "Invalid username or password")
	})

	s.Run("error: 500 Internal Server Error on unexpected failures", func() {
		s.mockUseCase.EXPECT().Login(gomock.Any(), gomock.Any()).
			Return("", nil, errors.New("db down")).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusInternalServerError, "Internal server error")
	})
}

func (s *AuthHandlerTestSuite) TestLogout() {
	url := "/auth/logout"

	s.Run("success: returns 200 OK, deletes the session and clears the cookie", func() {
		s.mockUseCase.EXPECT().Logout(gomock.Any(), "session-token-1").Return(nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, nil, "session-token-1")
		s.Equal(http.StatusOK, rec.Code)

		sessionCookie := httptest.ExtractCookie(rec, cookie.SessionCookieName)
		s.Require().NotNil(sessionCookie)
		s.Empty(sessionCookie.Value)
	})

	s.Run("error: 401 Unauthorized without a session", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusUnauthorized, "")
	})
}

func (s *AuthHandlerTestSuite) TestChangePassword() {
	url := "/auth/change-password"

	reqBody := map[string]any{
		"currentPassword": "password123",
		"newPassword":     "brand-new-pass",
	}

	s.Run("success: returns 200 OK", func() {
		s.mockUseCase.EXPECT().ChangePassword(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
			Return(nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "session-token-1")
		s.Equal(http.StatusOK, rec.Code)
	})

	s.Run("error: 400 Bad Request when the current password does not match", func() {
		s.mockUseCase.EXPECT().ChangePassword(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
			Return(usecase.ErrWrongPassword).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "session-token-1")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Current password does not match")
	})

	s.Run("error: 400 Bad Request when the new password is too short", func() {
		body := map[string]any{
			"currentPassword": "password123",
			"newPassword":     strings.Repeat("a", 7),
		}

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, body, "session-token-1")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "")
	})

	s.Run("error: 401 Unauthorized without authentication", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusUnauthorized, "")
	})
}

func (s *AuthHandlerTestSuite) TestMe() {
	url := "/auth/me"

	s.Run("success: returns the current user", func() {
		returnUser := builder.NewUserBuilder().BuildReadModel()
		s.mockUseCase.EXPECT().CurrentUser(gomock.Any(), gomock.Any()).
			Return(returnUser, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "session-token-1")
		s.Equal(http.StatusOK, rec.Code)
	})

	s.Run("error: 401 Unauthorized without authentication", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusUnauthorized, "")
	})

	s.Run("error: 404 Not Found when the user row is gone", func() {
		s.mockUseCase.EXPECT().CurrentUser(gomock.Any(), gomock.Any()).
			Return(nil, usecase.ErrUserNotFound).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "session-token-1")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "User not found")
	})
}
