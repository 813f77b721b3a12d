// cmd/seeduser creates or refreshes the demo admin user.
// Usage: SEED_PIN=1234 go run ./cmd/seeduser
package main

import (
	"context"
	"os"

	"litepos/internal/config"
	"litepos/internal/dto"
	"litepos/internal/infra"
	"litepos/internal/model"
	"litepos/internal/repository"
	"litepos/internal/service"

	"github.com/rs/zerolog/log"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load config")
	}
	infra.ConfigureLogger(cfg.Env, cfg.LogLevel)

	name := envOr("SEED_NAME", "Admin Demo")
	email := envOr("SEED_EMAIL", "admin@litepos.local")
	pin := envOr("SEED_PIN", "1234")

	gw := infra.NewGateway(cfg)
	defer gw.Close()
	users := repository.NewUserRepository(gw)
	ctx := context.Background()

	existing, err := users.List(ctx)
	if err != nil {
		log.Fatal().Err(err).Msg("list users")
	}

	hash := service.HashPIN(pin)
	for _, u := range existing {
		if u.Name != name {
			continue
		}
		role, active := model.RoleAdmin, true
		if err := users.Update(ctx, u.ID, dto.UserPatch{
			Email: &email, PINHash: &hash, Role: &role, IsActive: &active,
		}); err != nil {
			log.Fatal().Err(err).Msg("update user")
		}
		log.Info().Int64("user_id", u.ID).Str("name", name).Msg("demo user refreshed")
		return
	}

	id, err := users.Create(ctx, dto.CreateUserInput{
		Name: name, Email: &email, PINHash: hash, Role: model.RoleAdmin,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("create user")
	}
	log.Info().Int64("user_id", id).Str("name", name).Msg("demo user created")
}

func envOr(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
