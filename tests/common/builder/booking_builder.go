//go:build unit || e2e

package builder

import (
	"time"

	"reserva/internal/usecase/readmodel"

	"github.com/google/uuid"
)

type BookingBuilder struct {
	Kind         string
	ResourceID   uuid.UUID
	ResourceName string
	StartDT      time.Time
	EndDT        time.Time
	Status       string
}

func NewBookingBuilder() *BookingBuilder {
	start := time.Date(2026, 3, 2, 10, 0, 0, 0, time.UTC)
	return &BookingBuilder{
		Kind:         "ROOM",
		ResourceID:   uuid.New(),
		ResourceName: "Conference Room A",
		StartDT:      start,
		EndDT:        start.Add(time.Hour),
		Status:       "REQUEST",
	}
}

func (b *BookingBuilder) With(mutate func(*BookingBuilder)) *BookingBuilder {
	mutate(b)
	return b
}

func (b *BookingBuilder) BuildReadModel() *readmodel.BookingRM {
	now := time.Now()
	return &readmodel.BookingRM{
		ID:           uuid.New(),
		Kind:         b.Kind,
		ResourceID:   b.ResourceID,
		ResourceName: b.ResourceName,
		StartDT:      b.StartDT,
		EndDT:        b.EndDT,
		Status:       b.Status,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
}

func (b *BookingBuilder) BuildCreateDTO() map[string]any {
	return map[string]any{
		"kind":          b.Kind,
		"resource_id":   b.ResourceID.String(),
		"resource_name": b.ResourceName,
		"start_dt":      b.StartDT.Format(time.RFC3339),
		"end_dt":        b.EndDT.Format(time.RFC3339),
	}
}
