package request

import (
	"reserva/internal/usecase"
)

type CreateResourceRequest struct {
	Kind        string  `json:"kind" binding:"required"`
	Name        string  `json:"name" binding:"required"`
	Subcategory *string `json:"subcategory,omitempty"`
	Type        *string `json:"type,omitempty"`
	Quantity    *int32  `json:"quantity,omitempty" binding:"omitempty,gte=0"`
	Status      *string `json:"status,omitempty"`
}

func (r CreateResourceRequest) ToParams() usecase.CreateResourceParams {
	return usecase.CreateResourceParams{
		Kind:        r.Kind,
		Name:        r.Name,
		Subcategory: r.Subcategory,
		Type:        r.Type,
		Quantity:    r.Quantity,
		Status:      r.Status,
	}
}

type UpdateResourceRequest struct {
	Name        *string `json:"name,omitempty"`
	Subcategory *string `json:"subcategory,omitempty"`
	Type        *string `json:"type,omitempty"`
	Quantity    *int32  `json:"quantity,omitempty"`
	Status      *string `json:"status,omitempty"`
}

func (r UpdateResourceRequest) ToParams() usecase.UpdateResourceParams {
	return usecase.UpdateResourceParams{
		Name:        r.Name,
		Subcategory: r.Subcategory,
		Type:        r.Type,
		Quantity:    r.Quantity,
		Status:      r.Status,
	}
}
