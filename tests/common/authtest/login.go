//go:build unit || e2e

package authtest

import (
	"net/http"
	"testing"

	"reserva/internal/pkg/cookie"
	"reserva/tests/common/httptest"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
)

// LoginUser logs in through the real endpoint and returns the session token.
func LoginUser(t *testing.T, router *gin.Engine, username, password string) string {
	t.Helper()

	body := map[string]any{
		"username": username,
		"password": password,
	}

	w := httptest.PerformRequest(t, router, http.MethodPost, "/api/auth/login", body, "")
	require.Equal(t, http.StatusOK, w.Code, "Login failed: %s", w.Body.String())

	sessionCookie := httptest.ExtractCookie(w, cookie.SessionCookieName)
	require.NotNil(t, sessionCookie, "Login response is missing the session cookie")
	require.NotEmpty(t, sessionCookie.Value)

	return sessionCookie.Value
}
