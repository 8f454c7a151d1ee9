package main

import (
	"context"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/storelane/auth-service/config"
	"github.com/storelane/auth-service/db"
	"github.com/storelane/auth-service/internal/auth/handler"
	"github.com/storelane/auth-service/internal/auth/lockout"
	"github.com/storelane/auth-service/internal/auth/password"
	repo "github.com/storelane/auth-service/internal/auth/repository/postgres"
	"github.com/storelane/auth-service/internal/auth/service"
	"github.com/storelane/auth-service/pkg/logger"
)

func main() {
	ctx := context.Background()

	cfg, err := config.Load(ctx)
	if err != nil {
		// Missing signing material or DB URL is fatal at startup.
		logger.New(logger.Options{}).Fatal().Err(err).Msg("configuration error")
	}

	log := logger.New(logger.Options{
		Level:  cfg.LogLevel,
		Pretty: cfg.Env == "development",
	})

	dbPool, err := db.NewPostgresPool(ctx, cfg.DBURL)
	if err != nil {
		log.Fatal().Err(err).Msg("database connection failed")
	}
	defer dbPool.Close()

	userRepo := repo.NewPostgresRepository(dbPool)
	tokenService := service.NewTokenService(cfg.TokenSecret, cfg.TokenIssuer, cfg.TokenAudience, cfg.TokenExpiryMin)
	policy := password.NewPolicy(cfg.PasswordMinLength, cfg.PasswordMaxLength)

	tracker := lockout.NewTracker(cfg.LoginMaxAttempts, time.Duration(cfg.LockoutWindowMin)*time.Minute)
	tracker.StartReaper(ctx, time.Duration(cfg.ReaperIntervalMin)*time.Minute)

	userService := service.NewUserService(userRepo, tokenService, tracker, policy, cfg.BcryptCost, log)
	authHandler := handler.NewAuthHandler(userService)

	app := fiber.New()
	handler.RegisterRoutes(app, authHandler)

	log.Info().Str("port", cfg.Port).Str("env", cfg.Env).Msg("auth service listening")
	if err := app.Listen(":" + cfg.Port); err != nil {
		log.Fatal().Err(err).Msg("server stopped")
	}
}
