package readmodel

import (
	"time"

	"github.com/google/uuid"
)

// SessionRM carries the session row joined with the owning user's role.
type SessionRM struct {
	Token     string
	UserID    uuid.UUID
	Role      string
	ExpiresAt time.Time
}
