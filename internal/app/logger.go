// Package app provides logger initialization.
package app

import (
	"github.com/guttosm/quote-service/config"
	"github.com/guttosm/quote-service/internal/logger"
)

// InitializeLogger initializes the global logger from LOG_LEVEL and LOG_PRETTY.
func InitializeLogger(cfg config.LogConfig) {
	level := cfg.Level
	if level == "" {
		level = "info"
	}
	logger.Init(level, cfg.Pretty)
}
