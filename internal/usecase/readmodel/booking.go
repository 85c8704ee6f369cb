package readmodel

import (
	"time"

	"github.com/google/uuid"
)

type BookingRM struct {
	ID            uuid.UUID
	Kind          string
	ResourceID    uuid.UUID
	ResourceName  string
	StartDT       time.Time
	EndDT         time.Time
	Quantity      *int32
	RequesterName *string
	RequesterRole *string
	Purpose       *string
	Status        string
	CreatedAt     time.Time
	UpdatedAt     time.Time
	StartedAt     *time.Time
	EndedAt       *time.Time
	CanceledAt    *time.Time
}
