package main

import (
	"os"

	"github.com/doni/social-network/internal/config"
	"github.com/doni/social-network/internal/db"
	"github.com/doni/social-network/internal/feedback"
	"github.com/doni/social-network/internal/pkg/logger"
	"github.com/doni/social-network/internal/server"
)

func main() {
	configPath := config.GetEnv("CONFIG_PATH", "configs/feedback-service.yaml")
	cfg, err := config.LoadConfig(configPath)
	if err != nil {
		logger.Error().Err(err).Msg("Failed to load configuration")
		os.Exit(1)
	}

	logger.Configure(logger.Config{
		Level:  logger.LogLevel(cfg.Logging.Level),
		Pretty: cfg.Logging.Format != "json",
	})

	database, err := db.NewPostgresDB(cfg)
	if err != nil {
		logger.Error().Err(err).Msg("Failed to connect to database")
		os.Exit(1)
	}

	if cfg.Database.MigrationsDir != "" {
		if err := db.NewMigrator(database.Pool).MigrateFromDirectory(cfg.Database.MigrationsDir); err != nil {
			logger.Error().Err(err).Msg("Failed to apply migrations")
			os.Exit(1)
		}
	}

	router, err := feedback.BuildRouter(cfg, database.Pool, logger.Logger())
	if err != nil {
		logger.Error().Err(err).Msg("Failed to build router")
		os.Exit(1)
	}

	if err := server.New(cfg, router, logger.Logger(), database.Close).Run(); err != nil {
		logger.Error().Err(err).Msg("Server exited with error")
		os.Exit(1)
	}
}
