package main

import (
	"io"

	"github.com/osse101/FruitReels_Go/internal/config"
	"github.com/osse101/FruitReels_Go/internal/handler"
	"github.com/osse101/FruitReels_Go/internal/logger"
)

// initLogger initializes the logger using centralized app configuration.
// The returned closer flushes the rotating log file, if any.
func initLogger(cfg *config.Config) io.Closer {
	// Source info only in dev
	addSource := !cfg.IsProduction()

	loggerConfig := logger.NewConfig(
		cfg.LogLevel,
		cfg.LogFormat,
		logger.DefaultServiceName,
		handler.GetVersion(),
		cfg.Environment,
		addSource,
	).WithDir(cfg.LogDir)

	return logger.InitLogger(loggerConfig)
}
