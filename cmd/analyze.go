package cmd

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	reportstore "github.com/restitch/cli/internal/report"
	"github.com/restitch/cli/internal/stats"
	"github.com/restitch/cli/internal/ui"
)

// analyzeCmd represents the analyze command
var analyzeCmd = &cobra.Command{
	Use:   "analyze [path]",
	Short: "Report codebase statistics for the target project",
	Long: `Analyze walks the project's source modules and reports file and line
counts by file type, module, and language, plus test, Prisma schema, and
package.json dependency statistics.

Example usage:
  restitch analyze                    # Analyze current directory
  restitch analyze /path/to/project   # Analyze specific directory
  restitch analyze --output json      # Output results as JSON
  restitch analyze --save report.json # Persist the report`,
	Args: cobra.MaximumNArgs(1),
	RunE: runAnalyze,
}

func init() {
	rootCmd.AddCommand(analyzeCmd)

	analyzeCmd.Flags().StringP("output", "o", "text", "output format (text, json)")
	analyzeCmd.Flags().String("save", "", "Save the report as JSON to the given path")
}

func runAnalyze(cmd *cobra.Command, args []string) error {
	targetPath := "."
	if len(args) > 0 {
		targetPath = args[0]
	}

	absPath, pathErr := filepath.Abs(targetPath)
	if pathErr != nil {
		return fmt.Errorf("failed to resolve path: %w", pathErr)
	}
	if _, statErr := os.Stat(absPath); os.IsNotExist(statErr) {
		return fmt.Errorf("path does not exist: %s", absPath)
	}

	verbose, _ := cmd.Flags().GetBool("verbose")
	outputFormat, _ := cmd.Flags().GetString("output")
	savePath, _ := cmd.Flags().GetString("save")

	if verbose {
		fmt.Printf("Analyzing codebase at: %s\n", absPath)
	}

	ctx := cmd.Context()
	analyzer := stats.NewAnalyzer()

	var report *stats.Report
	runErr := ui.RunSpinner(ctx, "Analyzing codebase...", func() error {
		var e error
		report, e = analyzer.Analyze(absPath)
		return e
	})
	if runErr != nil {
		return runErr
	}

	if savePath != "" {
		if err := reportstore.Save(savePath, report); err != nil {
			return err
		}
		fmt.Printf("Report saved to %s\n", savePath)
	}

	switch outputFormat {
	case "json":
		encoder := json.NewEncoder(os.Stdout)
		encoder.SetIndent("", "  ")
		return encoder.Encode(report)
	default:
		fmt.Print(ui.RenderStats(report))
		return nil
	}
}
