//go:build e2e

package resource_test

import (
	"net/http"
	"testing"
	"time"

	"reserva/internal/domain/user"
	"reserva/internal/handler/dto/response"
	"reserva/tests/common/authtest"
	"reserva/tests/common/httptest"
	"reserva/tests/e2e"

	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

const (
	resourcesURL = "/api/resources"
	bookingsURL  = "/api/bookings"
)

type ResourceSuite struct {
	e2e.SharedSuite
}

func TestResourceSuite(t *testing.T) {
	t.Parallel()
	suite.Run(t, new(ResourceSuite))
}

func (s *ResourceSuite) createResource(token string, body map[string]any) response.ResourceResponse {
	t := s.T()

	w := httptest.PerformRequest(t, s.Router, http.MethodPost, resourcesURL, body, token)
	require.Equal(t, http.StatusCreated, w.Code, "Failed to create resource: %s", w.Body.String())

	var created response.ResourceResponse
	require.NoError(t, httptest.DecodeResponseBody(t, w.Body, &created))
	return created
}

func (s *ResourceSuite) TestRegistry() {
	s.Run("kind is normalized and duplicates conflict", func() {
		t := s.T()

		s.SeedUser("admin01", "password123", user.RoleAdmin)
		token := authtest.LoginUser(t, s.Router, "admin01", "password123")

		created := s.createResource(token, map[string]any{"kind": "room", "name": "Conference Room A"})
		require.Equal(t, "ROOM", created.Kind)
		require.Equal(t, "Available", created.Status)
		require.Equal(t, int32(1), created.Quantity)

		// Same name under the normalized kind must conflict
		w := httptest.PerformRequest(t, s.Router, http.MethodPost, resourcesURL,
			map[string]any{"kind": "ROOM", "name": "Conference Room A"}, token)
		httptest.AssertErrorResponse(t, w, http.StatusConflict, "already exists")

		// Same name under a different kind is fine
		w = httptest.PerformRequest(t, s.Router, http.MethodPost, resourcesURL,
			map[string]any{"kind": "EQUIPMENT", "name": "Conference Room A"}, token)
		require.Equal(t, http.StatusCreated, w.Code)
	})

	s.Run("reads are public, mutations are guarded", func() {
		t := s.T()

		s.SeedUser("admin01", "password123", user.RoleAdmin)
		s.SeedUser("member01", "password123", user.RoleMember)
		adminToken := authtest.LoginUser(t, s.Router, "admin01", "password123")
		memberToken := authtest.LoginUser(t, s.Router, "member01", "password123")

		s.createResource(adminToken, map[string]any{"kind": "ROOM", "name": "Conference Room A"})

		w := httptest.PerformRequest(t, s.Router, http.MethodGet, resourcesURL, nil, "")
		require.Equal(t, http.StatusOK, w.Code, "Listing should not require auth")

		var listed []response.ResourceResponse
		require.NoError(t, httptest.DecodeResponseBody(t, w.Body, &listed))
		require.Len(t, listed, 1)

		w = httptest.PerformRequest(t, s.Router, http.MethodPost, resourcesURL,
			map[string]any{"kind": "ROOM", "name": "Conference Room B"}, "")
		httptest.AssertErrorResponse(t, w, http.StatusUnauthorized, "")

		w = httptest.PerformRequest(t, s.Router, http.MethodPost, resourcesURL,
			map[string]any{"kind": "ROOM", "name": "Conference Room B"}, memberToken)
		httptest.AssertErrorResponse(t, w, http.StatusForbidden, "Insufficient permissions")
	})

	s.Run("patch updates only the provided fields", func() {
		t := s.T()

		s.SeedUser("admin01", "password123", user.RoleAdmin)
		token := authtest.LoginUser(t, s.Router, "admin01", "password123")
		created := s.createResource(token, map[string]any{"kind": "ROOM", "name": "Conference Room A", "quantity": 2})

		w := httptest.PerformRequest(t, s.Router, http.MethodPatch, resourcesURL+"/"+created.ID,
			map[string]any{"status": "Maintenance"}, token)
		require.Equal(t, http.StatusOK, w.Code, "Patch failed: %s", w.Body.String())

		var updated response.ResourceResponse
		require.NoError(t, httptest.DecodeResponseBody(t, w.Body, &updated))
		require.Equal(t, "Maintenance", updated.Status)
		require.Equal(t, created.Name, updated.Name)
		require.Equal(t, int32(2), updated.Quantity)

		w = httptest.PerformRequest(t, s.Router, http.MethodPatch, resourcesURL+"/"+created.ID,
			map[string]any{}, token)
		httptest.AssertErrorResponse(t, w, http.StatusBadRequest, "")
	})
}

func (s *ResourceSuite) TestDelete() {
	s.Run("soft delete marks the resource Inactive and keeps history", func() {
		t := s.T()

		s.SeedUser("admin01", "password123", user.RoleAdmin)
		token := authtest.LoginUser(t, s.Router, "admin01", "password123")
		created := s.createResource(token, map[string]any{"kind": "ROOM", "name": "Conference Room A"})

		w := httptest.PerformRequest(t, s.Router, http.MethodDelete, resourcesURL+"/"+created.ID, nil, token)
		require.Equal(t, http.StatusNoContent, w.Code)

		w = httptest.PerformRequest(t, s.Router, http.MethodGet, resourcesURL, nil, "")
		require.Equal(t, http.StatusOK, w.Code)

		var listed []response.ResourceResponse
		require.NoError(t, httptest.DecodeResponseBody(t, w.Body, &listed))
		require.Len(t, listed, 1)
		require.Equal(t, "Inactive", listed[0].Status)
	})

	s.Run("hard delete is blocked while active bookings exist", func() {
		t := s.T()

		s.SeedUser("admin01", "password123", user.RoleAdmin)
		token := authtest.LoginUser(t, s.Router, "admin01", "password123")
		created := s.createResource(token, map[string]any{"kind": "ROOM", "name": "Conference Room A"})

		start := time.Date(2026, 3, 2, 10, 0, 0, 0, time.UTC)
		w := httptest.PerformRequest(t, s.Router, http.MethodPost, bookingsURL, map[string]any{
			"kind":          "ROOM",
			"resource_id":   created.ID,
			"resource_name": created.Name,
			"start_dt":      start.Format(time.RFC3339),
			"end_dt":        start.Add(time.Hour).Format(time.RFC3339),
		}, "")
		require.Equal(t, http.StatusCreated, w.Code)

		var booking response.BookingResponse
		require.NoError(t, httptest.DecodeResponseBody(t, w.Body, &booking))

		w = httptest.PerformRequest(t, s.Router, http.MethodDelete, resourcesURL+"/"+created.ID+"?hard=true", nil, token)
		httptest.AssertErrorResponse(t, w, http.StatusConflict, "active bookings")

		// Cancel the booking, then the hard delete goes through
		w = httptest.PerformRequest(t, s.Router, http.MethodPost, bookingsURL+"/"+booking.ID+"/cancel", nil, token)
		require.Equal(t, http.StatusOK, w.Code)

		w = httptest.PerformRequest(t, s.Router, http.MethodDelete, resourcesURL+"/"+created.ID+"?hard=true", nil, token)
		require.Equal(t, http.StatusNoContent, w.Code)

		w = httptest.PerformRequest(t, s.Router, http.MethodGet, resourcesURL, nil, "")
		var listed []response.ResourceResponse
		require.NoError(t, httptest.DecodeResponseBody(t, w.Body, &listed))
		require.Empty(t, listed)
	})
}
