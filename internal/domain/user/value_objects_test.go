//go:build unit

package user_test

import (
	"strings"
	"testing"

	"reserva/internal/domain/user"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewUsername(t *testing.T) {
	t.Run("valid username", func(t *testing.T) {
		u, err := user.NewUsername("  staff01 ")
		require.NoError(t, err)
		assert.Equal(t, "staff01", u.Value())
	})

	t.Run("too short", func(t *testing.T) {
		_, err := user.NewUsername("ab")
		assert.ErrorIs(t, err, user.ErrInvalidUsername)
	})

	t.Run("too long", func(t *testing.T) {
		_, err := user.NewUsername(strings.Repeat("a", 65))
		assert.ErrorIs(t, err, user.ErrInvalidUsername)
	})
}

func TestNewPassword(t *testing.T) {
	_, err := user.NewPassword("1234567")
	assert.ErrorIs(t, err, user.ErrPasswordTooWeak)

	p, err := user.NewPassword("password123")
	require.NoError(t, err)
	assert.Equal(t, "password123", p.Value())
}

func TestRole(t *testing.T) {
	for _, s := range []string{"admin", "staff", "member"} {
		role, err := user.NewRole(s)
		require.NoError(t, err)
		assert.Equal(t, s, role.String())
	}

	_, err := user.NewRole("root")
	assert.ErrorIs(t, err, user.ErrInvalidRole)

	assert.True(t, user.RoleAdmin.CanManage())
	assert.True(t, user.RoleStaff.CanManage())
	assert.False(t, user.RoleMember.CanManage())
}
