package request

import (
	"time"

	"reserva/internal/usecase"

	"github.com/google/uuid"
)

type CreateBookingRequest struct {
	Kind          string    `json:"kind" binding:"required"`
	ResourceID    uuid.UUID `json:"resource_id" binding:"required"`
	ResourceName  string    `json:"resource_name" binding:"required"`
	StartDT       time.Time `json:"start_dt" binding:"required"`
	EndDT         time.Time `json:"end_dt" binding:"required"`
	Quantity      *int32    `json:"quantity,omitempty" binding:"omitempty,gte=1"`
	RequesterName *string   `json:"requester_name,omitempty"`
	RequesterRole *string   `json:"requester_role,omitempty"`
	Purpose       *string   `json:"purpose,omitempty"`
}

func (r CreateBookingRequest) ToParams() usecase.CreateBookingParams {
	return usecase.CreateBookingParams{
		Kind:          r.Kind,
		ResourceID:    r.ResourceID,
		ResourceName:  r.ResourceName,
		StartDT:       r.StartDT,
		EndDT:         r.EndDT,
		Quantity:      r.Quantity,
		RequesterName: r.RequesterName,
		RequesterRole: r.RequesterRole,
		Purpose:       r.Purpose,
	}
}
