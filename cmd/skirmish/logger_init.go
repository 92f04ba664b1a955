package main

import (
	"log/slog"

	"github.com/osse101/skirmish/internal/config"
	"github.com/osse101/skirmish/internal/logger"
)

// initLogger installs the default logger from the loaded configuration
func initLogger(cfg *config.Config) *slog.Logger {
	return logger.Init(cfg.Logger())
}
