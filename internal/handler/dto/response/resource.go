package response

import (
	"time"

	"reserva/internal/usecase/readmodel"
)

type ResourceResponse struct {
	ID          string  `json:"id"`
	Kind        string  `json:"kind"`
	Name        string  `json:"name"`
	Subcategory *string `json:"subcategory,omitempty"`
	Type        *string `json:"type,omitempty"`
	Quantity    int32   `json:"quantity"`
	Status      string  `json:"status"`
	CreatedAt   string  `json:"created_at"`
	UpdatedAt   string  `json:"updated_at"`
}

func FromResource(rm *readmodel.ResourceRM) *ResourceResponse {
	return &ResourceResponse{
		ID:          rm.ID.String(),
		Kind:        rm.Kind,
		Name:        rm.Name,
		Subcategory: rm.Subcategory,
		Type:        rm.Type,
		Quantity:    rm.Quantity,
		Status:      rm.Status,
		CreatedAt:   rm.CreatedAt.Format(time.RFC3339),
		UpdatedAt:   rm.UpdatedAt.Format(time.RFC3339),
	}
}

func FromResourceList(items []*readmodel.ResourceRM) []*ResourceResponse {
	res := make([]*ResourceResponse, len(items))
	for i, it := range items {
		res[i] = FromResource(it)
	}
	return res
}
