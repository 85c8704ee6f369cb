package response

import (
	"reserva/internal/usecase/readmodel"
)

type LoginResponse struct {
	User *readmodel.UserRM `json:"user"`
}
