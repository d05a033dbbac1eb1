package main

import (
	"context"
	"log"

	"github.com/sps-group/user-api/internal/api"
	"github.com/sps-group/user-api/internal/bootstrap"
	"github.com/sps-group/user-api/internal/core/service"
	"github.com/sps-group/user-api/internal/infrastructure/config"
	"github.com/sps-group/user-api/internal/infrastructure/crypto"
	"github.com/sps-group/user-api/internal/infrastructure/db/memory"
	"github.com/sps-group/user-api/internal/infrastructure/token"
	"github.com/sps-group/user-api/pkg/logger"
)

func main() {
	ctx := context.Background()

	cfg, err := config.Load(ctx)
	if err != nil {
		log.Fatalf("load configuration: %v", err)
	}

	logg := logger.Init(logger.Options{
		Level:  cfg.LogLevel,
		Pretty: cfg.Env == "development",
	})

	// --- Infrastructure ---
	repo := memory.NewUserRepository()
	hasher := crypto.NewBcryptHasher(cfg.BcryptCost)
	tokens := token.NewJWTManager(cfg.JWTSecret, cfg.TokenTTL)

	// --- Core services ---
	userService := service.NewUserService(repo, hasher, logg)
	authService := service.NewAuthService(repo, userService, hasher, tokens, logg)

	if err := bootstrap.EnsureAdmin(ctx, userService, cfg.Admin.Email, cfg.Admin.Name, cfg.Admin.Password, logg); err != nil {
		logg.Fatal().Err(err).Msg("admin bootstrap failed")
	}

	e := api.NewRouter(api.Deps{
		AuthService: authService,
		UserService: userService,
		Verifier:    tokens,
		Repo:        repo,
		Logger:      logg,
	})

	logg.Info().Str("port", cfg.Port).Str("env", cfg.Env).Msg("http server starting")
	if err := e.Start(":" + cfg.Port); err != nil {
		logg.Fatal().Err(err).Msg("server stopped")
	}
}
