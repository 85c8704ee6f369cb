//go:build unit

package booking_test

import (
	"testing"
	"time"

	"reserva/internal/domain/booking"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustWindow(t *testing.T, start, end time.Time) booking.TimeWindow {
	t.Helper()
	w, err := booking.NewTimeWindow(start, end)
	require.NoError(t, err)
	return w
}

func TestNewTimeWindow(t *testing.T) {
	base := time.Date(2026, 3, 2, 10, 0, 0, 0, time.UTC)

	t.Run("valid window", func(t *testing.T) {
		w, err := booking.NewTimeWindow(base, base.Add(time.Hour))
		require.NoError(t, err)
		assert.Equal(t, base, w.Start())
		assert.Equal(t, base.Add(time.Hour), w.End())
	})

	t.Run("end equal to start is rejected", func(t *testing.T) {
		_, err := booking.NewTimeWindow(base, base)
		assert.ErrorIs(t, err, booking.ErrInvalidWindow)
	})

	t.Run("end before start is rejected", func(t *testing.T) {
		_, err := booking.NewTimeWindow(base, base.Add(-time.Minute))
		assert.ErrorIs(t, err, booking.ErrInvalidWindow)
	})
}

func TestTimeWindowOverlaps(t *testing.T) {
	base := time.Date(2026, 3, 2, 10, 0, 0, 0, time.UTC)
	hour := func(h int) time.Time { return base.Add(time.Duration(h) * time.Hour) }

	cases := []struct {
		name     string
		a        booking.TimeWindow
		b        booking.TimeWindow
		overlaps bool
	}{
		{
			name:     "partial overlap",
			a:        mustWindow(t, hour(0), hour(2)),
			b:        mustWindow(t, hour(1), hour(3)),
			overlaps: true,
		},
		{
			name:     "identical windows",
			a:        mustWindow(t, hour(0), hour(1)),
			b:        mustWindow(t, hour(0), hour(1)),
			overlaps: true,
		},
		{
			name:     "contained window",
			a:        mustWindow(t, hour(0), hour(4)),
			b:        mustWindow(t, hour(1), hour(2)),
			overlaps: true,
		},
		{
			name:     "back to back windows do not overlap",
			a:        mustWindow(t, hour(0), hour(1)),
			b:        mustWindow(t, hour(1), hour(2)),
			overlaps: false,
		},
		{
			name:     "disjoint windows",
			a:        mustWindow(t, hour(0), hour(1)),
			b:        mustWindow(t, hour(3), hour(4)),
			overlaps: false,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.overlaps, tc.a.Overlaps(tc.b))
			// Overlap is symmetric
			assert.Equal(t, tc.overlaps, tc.b.Overlaps(tc.a))
		})
	}
}
