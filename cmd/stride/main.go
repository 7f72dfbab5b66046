package main

import (
	"context"
	"os/signal"
	"syscall"
	"time"

	"github.com/avolkova/stride/internal/api"
	"github.com/avolkova/stride/internal/config"
	"github.com/avolkova/stride/internal/db"
	"github.com/avolkova/stride/internal/logging"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"go.uber.org/zap"
)

func main() {
	cfg := config.Load()
	logger := logging.New(cfg.LogLevel)
	defer logger.Sync()

	database, err := db.Open(cfg)
	if err != nil {
		logger.Fatal("database init failed", zap.Error(err))
	}

	handler := api.NewHandler(database, cfg.JWTSecret, logger)

	app := fiber.New(fiber.Config{
		AppName:               "Stride",
		DisableStartupMessage: true,
	})
	app.Use(recover.New())
	app.Use(api.RequestLogger(logger))
	api.RegisterRoutes(app, handler)

	sigCtx, stopSignals := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stopSignals()

	go func() {
		<-sigCtx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := app.ShutdownWithContext(shutdownCtx); err != nil {
			logger.Error("server shutdown failed", zap.Error(err))
		}
	}()

	logger.Info("stride listening",
		zap.String("port", cfg.ServerPort),
		zap.String("db_driver", cfg.DBDriver),
	)
	if err := app.Listen(":" + cfg.ServerPort); err != nil {
		logger.Fatal("server exited", zap.Error(err))
	}
}
