package main

import (
	"context"
	"time"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"github.com/lizTheDeveloper/multiverse-bazaar-sub001/config"
	"github.com/lizTheDeveloper/multiverse-bazaar-sub001/db"
	"github.com/lizTheDeveloper/multiverse-bazaar-sub001/internal/session/handler"
	"github.com/lizTheDeveloper/multiverse-bazaar-sub001/internal/session/limiter"
	repo "github.com/lizTheDeveloper/multiverse-bazaar-sub001/internal/session/repository/postgres"
	"github.com/lizTheDeveloper/multiverse-bazaar-sub001/internal/session/service"
)

func main() {
	logger, _ := zap.NewProduction()
	defer func() { _ = logger.Sync() }()

	cfg, err := config.Load()
	if err != nil {
		logger.Fatal("load config", zap.Error(err))
	}

	ctx := context.Background()

	if err := db.Migrate(ctx, cfg.DBURL); err != nil {
		logger.Fatal("migrate up", zap.Error(err))
	}

	dbPool, err := db.NewPostgresPool(ctx, cfg.DBURL)
	if err != nil {
		logger.Fatal("connect to database", zap.Error(err))
	}
	defer dbPool.Close()

	credentialStore := repo.NewPostgresRepository(dbPool)
	attemptLimiter := limiter.NewWindowLimiter(credentialStore,
		time.Duration(cfg.AttemptWindowMin)*time.Minute, cfg.MaxEmailAttempts, cfg.MaxOriginFailures)
	tokenService := service.NewTokenService(cfg.TokenSecret, cfg.AccessExpiryMin)
	renewalService := service.NewRenewalService(credentialStore, cfg.RenewalLifetimeHours)
	sessionService := service.NewSessionService(credentialStore, tokenService, renewalService, attemptLimiter, logger)
	sessionHandler := handler.NewSessionHandler(sessionService, logger)

	app := fiber.New()
	handler.RegisterRoutes(app, sessionHandler)

	logger.Info("listening", zap.String("port", cfg.Port), zap.String("env", cfg.Env))
	if err := app.Listen(":" + cfg.Port); err != nil {
		logger.Fatal("server error", zap.Error(err))
	}
}
