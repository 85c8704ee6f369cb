package bootstrap

import (
	"reserva/cmd/bootstrap/components"

	"go.uber.org/fx"
)

var Module = fx.Options(
	ConfigModule,
	DBModule,
	SeedModule,
	components.RepositoryModule,
	components.UseCaseModule,
	components.HandlerModule,
)
