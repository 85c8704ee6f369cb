package bootstrap

import (
	"context"
	"log/slog"

	"reserva/internal/domain/user"
	"reserva/internal/pkg/config"
	"reserva/internal/pkg/password"
	"reserva/internal/usecase"

	"go.uber.org/fx"
)

var SeedModule = fx.Module("seed",
	fx.Invoke(SeedAdminUser),
)

// SeedAdminUser creates the initial admin account on startup when
// SEED_ADMIN_USERNAME is set. Existing accounts are left untouched.
func SeedAdminUser(lc fx.Lifecycle, cfg config.Config, userRepo usecase.UserRepository) {
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			if cfg.Seed.AdminUsername == "" {
				return nil
			}

			hash, err := password.HashPassword(cfg.Seed.AdminPassword)
			if err != nil {
				return err
			}

			created, err := userRepo.EnsureUser(ctx, cfg.Seed.AdminUsername, hash, user.RoleAdmin)
			if err != nil {
				return err
			}
			if created {
				slog.Info("seeded admin user", "username", cfg.Seed.AdminUsername)
			}
			return nil
		},
	})
}
