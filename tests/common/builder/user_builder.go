//go:build unit || e2e

package builder

import (
	"time"

	"reserva/internal/usecase/readmodel"

	"github.com/google/uuid"
)

type UserBuilder struct {
	Username string
	Role     string
}

func NewUserBuilder() *UserBuilder {
	return &UserBuilder{
		Username: "staff01",
		Role:     "staff",
	}
}

func (u *UserBuilder) With(mutate func(*UserBuilder)) *UserBuilder {
	mutate(u)
	return u
}

func (u *UserBuilder) BuildReadModel() *readmodel.UserRM {
	return &readmodel.UserRM{
		ID:        uuid.New(),
		Username:  u.Username,
		Role:      u.Role,
		CreatedAt: time.Now(),
	}
}

func (u *UserBuilder) BuildLoginDTO() map[string]any {
	return map[string]any{
		"username": u.Username,
		"password": "password123",
	}
}
