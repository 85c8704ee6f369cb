package components

import (
	"reserva/internal/pkg/clock"
	"reserva/internal/usecase"

	"go.uber.org/fx"
)

var UseCaseModule = fx.Module("usecase",
	fx.Provide(
		clock.NewRealClock,
		usecase.NewAuthUseCase,
		usecase.NewSessionValidator,
		usecase.NewResourceUseCase,
		usecase.NewBookingUseCase,
	),
)
