package cmd

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/restitch/cli/internal/config"
	"github.com/restitch/cli/internal/typecheck"
	"github.com/restitch/cli/internal/ui"
)

// checkCmd represents the check command
var checkCmd = &cobra.Command{
	Use:   "check [path]",
	Short: "Run the external type-checker and summarize its diagnostics",
	Long: `Check invokes the configured type-checker (npx tsc --noEmit by
default) once and reports how many recognized diagnostics remain. When
errors remain the full checker output is persisted to the configured
scratch file and the command exits non-zero.

Example usage:
  restitch check                  # Check the current directory
  restitch check /path/to/project`,
	Args: cobra.MaximumNArgs(1),
	RunE: runCheck,
}

func init() {
	rootCmd.AddCommand(checkCmd)
}

func runCheck(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	targetPath := "."
	if len(args) > 0 {
		targetPath = args[0]
	}
	absPath, err := filepath.Abs(targetPath)
	if err != nil {
		return fmt.Errorf("failed to resolve path: %w", err)
	}

	configPath, _ := cmd.Flags().GetString("config")
	cfg, err := config.LoadConfig(configPath)
	if err != nil {
		return err
	}
	checker := newCheckerFromConfig(cfg, absPath)

	var result *typecheck.VerifyResult
	runErr := ui.RunSpinner(ctx, "Running type check...", func() error {
		var e error
		result, e = checker.Verify(ctx)
		return e
	})
	if runErr != nil {
		return runErr
	}

	if result.RemainingErrors == 0 {
		fmt.Println("✅ No recognized type errors")
		return nil
	}
	fmt.Printf("⚠️  %d type errors (full output: %s)\n", result.RemainingErrors, checker.ScratchFile)
	return fmt.Errorf("%d type errors remain", result.RemainingErrors)
}
