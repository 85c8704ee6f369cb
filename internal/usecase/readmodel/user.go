package readmodel

import (
	"time"

	"github.com/google/uuid"
)

type UserRM struct {
	ID        uuid.UUID `json:"id"`
	Username  string    `json:"username"`
	Role      string    `json:"role"`
	CreatedAt time.Time `json:"createdAt"`
}
