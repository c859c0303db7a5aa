package app

import (
	"context"
	"fmt"
	"os"
	"strings"
	"time"

	"agent-match/internal/config"
	"agent-match/internal/database/migration"
	"agent-match/internal/database/seeder"
	"agent-match/internal/delivery/http/middleware"
	"agent-match/internal/delivery/http/routes"
	"agent-match/internal/ws"

	"github.com/gofiber/fiber/v3"
	"github.com/rs/zerolog"
)

type App struct {
	Fiber  *fiber.App
	Logger zerolog.Logger
}

func NewLogger(cfg config.AppConfig) zerolog.Logger {
	logger := zerolog.New(os.Stdout).With().
		Timestamp().
		Str("app", cfg.AppName).
		Logger()

	if cfg.Environment == "development" {
		return logger.Level(zerolog.DebugLevel)
	}
	return logger.Level(zerolog.InfoLevel)
}

func Bootstrap(cfg config.Config) (*App, func() error, error) {
	logger := NewLogger(cfg.App)

	container, err := NewContainer(cfg, logger)
	if err != nil {
		return nil, nil, err
	}

	ctx, cancel := context.WithTimeout(context.Background(), 60*time.Second)
	defer cancel()

	runner := migration.Runner{Dir: cfg.Database.MigrationsDir}
	if err := runner.Run(ctx, container.DB.SQLDB()); err != nil {
		_ = container.Close()
		return nil, nil, fmt.Errorf("migrations: %w", err)
	}

	if cfg.App.SeedOnBoot {
		seedRunner := seeder.Runner{Seeders: seeder.Defaults()}
		if err := seedRunner.Run(ctx, container.DB); err != nil {
			_ = container.Close()
			return nil, nil, fmt.Errorf("seeding: %w", err)
		}
	}

	hub := ws.NewHub(logger)
	ws.SetDefaultHub(hub)
	go hub.Run()

	f := fiber.New(fiber.Config{})

	f.Use(middleware.NewErrorMiddleware(logger).Middleware())
	f.Use(middleware.NewAccessLogMiddleware(logger).Middleware())

	registry := routes.NewRegistry()
	registry.Register(f, cfg, container.DB, container.Cache, ws.NewHandler(hub, logger))

	app := &App{Fiber: f, Logger: logger}
	return app, container.Close, nil
}

func ListenAddr(port string) (string, error) {
	p := strings.TrimSpace(port)
	if p == "" {
		return "", fmt.Errorf("empty HTTP port")
	}
	if strings.HasPrefix(p, ":") {
		return p, nil
	}
	return ":" + p, nil
}
