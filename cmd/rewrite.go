package cmd

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/restitch/cli/internal/batch"
	"github.com/restitch/cli/internal/config"
	"github.com/restitch/cli/internal/discovery"
	"github.com/restitch/cli/internal/logger"
	"github.com/restitch/cli/internal/recipes"
	reportstore "github.com/restitch/cli/internal/report"
	"github.com/restitch/cli/internal/rewrite"
	"github.com/restitch/cli/internal/syntax"
	"github.com/restitch/cli/internal/typecheck"
	"github.com/restitch/cli/internal/ui"
)

// rewriteCmd represents the rewrite command
var rewriteCmd = &cobra.Command{
	Use:   "rewrite <recipe> [path]",
	Short: "Apply a rewrite recipe to matching source files",
	Long: `Rewrite reads each target file, classifies it against the recipe's
known patterns, applies the recipe's ordered textual edits, and writes the
file back only when its content changed. Already-migrated and unrecognized
files are reported as skipped.

File selection, in precedence order: --files, the config file's params list,
--from-check (derive targets from type-checker diagnostics), or a walk of
the target path collecting TypeScript sources.

Example usage:
  restitch rewrite logging                       # Walk ./ and normalize logger calls
  restitch rewrite logging --from-check          # Only files the type-checker flags
  restitch rewrite params src/app --dry-run      # Preview the params migration
  restitch rewrite params --files src/app/tasks/[id]/page.tsx`,
	Args: cobra.RangeArgs(1, 2),
	RunE: runRewrite,
}

func init() {
	rootCmd.AddCommand(rewriteCmd)

	rewriteCmd.Flags().StringSlice("files", nil, "Explicit list of files to rewrite")
	rewriteCmd.Flags().Bool("from-check", false, "Derive the file set from type-checker diagnostics")
	rewriteCmd.Flags().Bool("dry-run", false, "Report what would change without writing files")
	rewriteCmd.Flags().IntP("jobs", "j", 0, "Parallel workers (default from config)")
	rewriteCmd.Flags().Bool("backup", false, "Write a .backup sibling before modifying a file")
	rewriteCmd.Flags().Bool("verify-syntax", false, "Parse rewritten content and veto rewrites that no longer parse")
	rewriteCmd.Flags().Bool("check-after", false, "Re-run the type-checker after the batch")
	rewriteCmd.Flags().String("report", "", "Save the batch report as JSON to the given path")
}

func runRewrite(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	info, ok := recipes.Lookup(args[0])
	if !ok {
		return fmt.Errorf("unknown recipe %q (known: %s)", args[0], strings.Join(recipes.IDs(), ", "))
	}

	targetPath := "."
	if len(args) > 1 {
		targetPath = args[1]
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

	var recipe rewrite.Recipe
	switch info.ID {
	case "logging":
		recipe = rewrite.NewLoggingRecipe(cfg.Logging.Namespace, cfg.Logging.Levels)
	case "params":
		recipe = rewrite.NewParamsRecipe(cfg.Params.LegacyIdentifiers)
	default:
		return fmt.Errorf("recipe %q has no implementation", info.ID)
	}

	driver := rewrite.NewDriver(recipe)
	driver.DryRun, _ = cmd.Flags().GetBool("dry-run")
	driver.Backup, _ = cmd.Flags().GetBool("backup")
	if verify, _ := cmd.Flags().GetBool("verify-syntax"); verify {
		driver.Validate = syntax.NewVerifier().Check
	}

	checker := newCheckerFromConfig(cfg, absPath)
	files, err := resolveFiles(cmd, info.ID, cfg, checker, absPath)
	if err != nil {
		return err
	}

	jobs, _ := cmd.Flags().GetInt("jobs")
	if jobs <= 0 {
		jobs = cfg.Jobs
	}

	log := appLogger(cmd)
	runner := batch.NewRunner(driver, jobs, log)
	report, err := runner.Run(ctx, info.ID, files)
	if err != nil {
		return err
	}
	if ul, ok := log.(*logger.UILogger); ok {
		ul.Flush()
	}

	fmt.Print(ui.RenderBatchReport(report))

	if reportPath, _ := cmd.Flags().GetString("report"); reportPath != "" {
		if err := reportstore.Save(reportPath, report); err != nil {
			return err
		}
		fmt.Printf("Report saved to %s\n", reportPath)
	}

	if checkAfter, _ := cmd.Flags().GetBool("check-after"); checkAfter {
		var result *typecheck.VerifyResult
		err := ui.RunSpinner(ctx, "Re-running type check...", func() error {
			var e error
			result, e = checker.Verify(ctx)
			return e
		})
		if err != nil {
			return err
		}
		if result.RemainingErrors == 0 {
			fmt.Println("✅ No recognized type errors remain")
		} else {
			fmt.Printf("⚠️  %d type errors remain (full output: %s)\n", result.RemainingErrors, checker.ScratchFile)
		}
	}
	return nil
}

// resolveFiles applies the selection precedence: explicit flags, the config
// file's params list, diagnostic derivation, directory walk.
func resolveFiles(cmd *cobra.Command, recipeID string, cfg *config.Config, checker *typecheck.Checker, root string) ([]string, error) {
	explicit, _ := cmd.Flags().GetStringSlice("files")
	if len(explicit) == 0 && recipeID == "params" {
		explicit = cfg.Params.Files
	}
	fromCheck, _ := cmd.Flags().GetBool("from-check")

	return discovery.Resolve(cmd.Context(), discovery.Options{
		Files:       explicit,
		FromCheck:   fromCheck,
		Checker:     checker,
		Root:        root,
		ExcludeDirs: cfg.Discovery.ExcludeDirs,
	})
}

// newCheckerFromConfig builds the external checker, keeping package
// defaults for settings the config leaves empty.
func newCheckerFromConfig(cfg *config.Config, dir string) *typecheck.Checker {
	checker := typecheck.NewChecker(cfg.Checker.Command, cfg.Checker.Args, dir)
	if cfg.Checker.NodeOptions != "" {
		checker.NodeOptions = cfg.Checker.NodeOptions
	}
	if cfg.Checker.DiagnosticPrefix != "" {
		checker.DiagnosticPrefix = cfg.Checker.DiagnosticPrefix
	}
	if cfg.Checker.ScratchFile != "" {
		checker.ScratchFile = cfg.Checker.ScratchFile
	}
	return checker
}
