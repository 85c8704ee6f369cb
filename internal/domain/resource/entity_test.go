//go:build unit

package resource_test

import (
	"testing"

	"reserva/internal/domain/resource"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewKind(t *testing.T) {
	t.Run("upper-cases and trims", func(t *testing.T) {
		kind, err := resource.NewKind("  room ")
		require.NoError(t, err)
		assert.Equal(t, "ROOM", kind.Value())
	})

	t.Run("empty kind is rejected", func(t *testing.T) {
		_, err := resource.NewKind("   ")
		assert.ErrorIs(t, err, resource.ErrEmptyKind)
	})
}

func TestNewStatus(t *testing.T) {
	for _, valid := range []string{"Available", "Maintenance", "Inactive"} {
		st, err := resource.NewStatus(valid)
		require.NoError(t, err)
		assert.Equal(t, valid, st.String())
	}

	_, err := resource.NewStatus("Broken")
	assert.ErrorIs(t, err, resource.ErrInvalidStatus)
}

func TestNewResource(t *testing.T) {
	kind, err := resource.NewKind("equipment")
	require.NoError(t, err)

	t.Run("defaults quantity and status", func(t *testing.T) {
		r, err := resource.NewResource(kind, "Projector", nil, nil, nil, nil)
		require.NoError(t, err)

		assert.NotEqual(t, uuid.Nil, r.ID())
		assert.Equal(t, int32(resource.DefaultQuantity), r.Quantity())
		assert.Equal(t, resource.StatusAvailable, r.Status())
	})

	t.Run("trims the name", func(t *testing.T) {
		r, err := resource.NewResource(kind, "  Projector ", nil, nil, nil, nil)
		require.NoError(t, err)
		assert.Equal(t, "Projector", r.Name())
	})

	t.Run("empty name is rejected", func(t *testing.T) {
		_, err := resource.NewResource(kind, "  ", nil, nil, nil, nil)
		assert.ErrorIs(t, err, resource.ErrEmptyName)
	})

	t.Run("negative quantity is rejected", func(t *testing.T) {
		qty := int32(-1)
		_, err := resource.NewResource(kind, "Projector", nil, nil, &qty, nil)
		assert.ErrorIs(t, err, resource.ErrNegativeQuantity)
	})

	t.Run("zero quantity is allowed", func(t *testing.T) {
		qty := int32(0)
		r, err := resource.NewResource(kind, "Projector", nil, nil, &qty, nil)
		require.NoError(t, err)
		assert.Equal(t, int32(0), r.Quantity())
	})

	t.Run("explicit status is kept", func(t *testing.T) {
		st := resource.StatusMaintenance
		r, err := resource.NewResource(kind, "Projector", nil, nil, nil, &st)
		require.NoError(t, err)
		assert.Equal(t, resource.StatusMaintenance, r.Status())
	})
}
