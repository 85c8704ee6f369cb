package response

import (
	"time"

	"reserva/internal/usecase/readmodel"
)

type BookingResponse struct {
	ID            string  `json:"id"`
	Kind          string  `json:"kind"`
	ResourceID    string  `json:"resource_id"`
	ResourceName  string  `json:"resource_name"`
	StartDT       string  `json:"start_dt"`
	EndDT         string  `json:"end_dt"`
	Quantity      *int32  `json:"quantity,omitempty"`
	RequesterName *string `json:"requester_name,omitempty"`
	RequesterRole *string `json:"requester_role,omitempty"`
	Purpose       *string `json:"purpose,omitempty"`
	Status        string  `json:"status"`
	CreatedAt     string  `json:"created_at"`
	UpdatedAt     string  `json:"updated_at"`
	StartedAt     *string `json:"started_at,omitempty"`
	EndedAt       *string `json:"ended_at,omitempty"`
	CanceledAt    *string `json:"canceled_at,omitempty"`
}

func FromBooking(rm *readmodel.BookingRM) *BookingResponse {
	return &BookingResponse{
		ID:            rm.ID.String(),
		Kind:          rm.Kind,
		ResourceID:    rm.ResourceID.String(),
		ResourceName:  rm.ResourceName,
		StartDT:       rm.StartDT.Format(time.RFC3339),
		EndDT:         rm.EndDT.Format(time.RFC3339),
		Quantity:      rm.Quantity,
		RequesterName: rm.RequesterName,
		RequesterRole: rm.RequesterRole,
		Purpose:       rm.Purpose,
		Status:        rm.Status,
		CreatedAt:     rm.CreatedAt.Format(time.RFC3339),
		UpdatedAt:     rm.UpdatedAt.Format(time.RFC3339),
		StartedAt:     formatTimePtr(rm.StartedAt),
		EndedAt:       formatTimePtr(rm.EndedAt),
		CanceledAt:    formatTimePtr(rm.CanceledAt),
	}
}

func FromBookingList(items []*readmodel.BookingRM) []*BookingResponse {
	res := make([]*BookingResponse, len(items))
	for i, it := range items {
		res[i] = FromBooking(it)
	}
	return res
}

func formatTimePtr(t *time.Time) *string {
	if t == nil {
		return nil
	}
	s := t.Format(time.RFC3339)
	return &s
}
