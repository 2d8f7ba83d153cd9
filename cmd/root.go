package cmd

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/restitch/cli/internal/logger"
)

// Context key for configuration
const ConfigKey = "config"

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "restitch",
	Short: "Pattern-driven source rewriter for TypeScript codebases",
	Long: `Restitch classifies source files into known structural patterns and
applies deterministic textual rewrites to bring them into a target shape,
writing each file back only when its content actually changed.

Shipped recipes normalize multi-argument logging calls into a
(message, metadata) signature and migrate page components to the
asynchronous route-params pattern. Files are selected explicitly, derived
from the type-checker's diagnostics, or discovered by walking the project.`,
	Version:      Version,
	SilenceUsage: true,
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() error {
	config := NewAppConfig(newDefaultLogger())
	ctx := context.WithValue(context.Background(), ConfigKey, config)
	return rootCmd.ExecuteContext(ctx)
}

func newDefaultLogger() logger.Logger {
	if logger.IsInteractive() {
		return logger.NewUILogger()
	}
	return logger.NewStdoutLogger(nil)
}

func init() {
	// Global flags
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "verbose output")
	rootCmd.PersistentFlags().StringP("config", "c", "", "config file (default: .restitch.yaml|.yml|.json)")
}
