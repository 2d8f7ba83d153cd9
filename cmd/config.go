package cmd

import (
	"github.com/spf13/cobra"

	"github.com/restitch/cli/internal/logger"
)

// AppConfig holds the shared dependencies commands pull from the context.
type AppConfig struct {
	Logger logger.Logger
}

// NewAppConfig creates a new configuration instance
func NewAppConfig(log logger.Logger) *AppConfig {
	return &AppConfig{Logger: log}
}

// appLogger resolves the shared logger from the command context, falling
// back to a plain stdout logger.
func appLogger(cmd *cobra.Command) logger.Logger {
	if cfg, ok := cmd.Context().Value(ConfigKey).(*AppConfig); ok && cfg != nil && cfg.Logger != nil {
		return cfg.Logger
	}
	return logger.NewStdoutLogger(nil)
}
