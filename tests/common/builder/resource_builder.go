//go:build unit || e2e

package builder

import (
	"time"

	"reserva/internal/usecase/readmodel"

	"github.com/google/uuid"
)

type ResourceBuilder struct {
	Kind     string
	Name     string
	Quantity int32
	Status   string
}

func NewResourceBuilder() *ResourceBuilder {
	return &ResourceBuilder{
		Kind:     "ROOM",
		Name:     "Conference Room A",
		Quantity: 1,
		Status:   "Available",
	}
}

func (r *ResourceBuilder) With(mutate func(*ResourceBuilder)) *ResourceBuilder {
	mutate(r)
	return r
}

func (r *ResourceBuilder) BuildReadModel() *readmodel.ResourceRM {
	now := time.Now()
	return &readmodel.ResourceRM{
		ID:        uuid.New(),
		Kind:      r.Kind,
		Name:      r.Name,
		Quantity:  r.Quantity,
		Status:    r.Status,
		CreatedAt: now,
		UpdatedAt: now,
	}
}

func (r *ResourceBuilder) BuildCreateDTO() map[string]any {
	return map[string]any{
		"kind":     r.Kind,
		"name":     r.Name,
		"quantity": r.Quantity,
	}
}
