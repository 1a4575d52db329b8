package main

import (
	"os"

	"github.com/doni/social-network/internal/config"
	"github.com/doni/social-network/internal/gateway"
	"github.com/doni/social-network/internal/pkg/logger"
	"github.com/doni/social-network/internal/server"
)

func main() {
	configPath := config.GetEnv("CONFIG_PATH", "configs/api-gateway.yaml")
	cfg, err := config.LoadConfig(configPath)
	if err != nil {
		logger.Error().Err(err).Msg("Failed to load configuration")
		os.Exit(1)
	}

	logger.Configure(logger.Config{
		Level:  logger.LogLevel(cfg.Logging.Level),
		Pretty: cfg.Logging.Format != "json",
	})

	router, err := gateway.BuildRouter(cfg, logger.Logger())
	if err != nil {
		logger.Error().Err(err).Msg("Failed to build router")
		os.Exit(1)
	}

	if err := server.New(cfg, router, logger.Logger()).Run(); err != nil {
		logger.Error().Err(err).Msg("Server exited with error")
		os.Exit(1)
	}
}
