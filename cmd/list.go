package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/restitch/cli/internal/config"
	"github.com/restitch/cli/internal/recipes"
)

// listCmd represents the list command
var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List recipes, classification variants, and logging levels",
	Long: `List displays the shipped rewrite recipes and the fixed sets they
operate on.

Available subcommands:
  recipes    List the shipped rewrite recipes
  variants   List the params-migration classification variants
  levels     List the logging levels the call matcher recognizes`,
}

var listRecipesCmd = &cobra.Command{
	Use:   "recipes",
	Short: "List the shipped rewrite recipes",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("🧵 Available Recipes:\n")
		fmt.Printf("====================\n\n")

		for _, info := range recipes.All() {
			fmt.Printf("🔧 %s: %s\n", info.ID, info.Title)
			fmt.Printf("   %s\n", info.Description)
			if info.Idempotent {
				fmt.Printf("   Safe to re-run: already-migrated files are skipped\n")
			}
			fmt.Printf("\n")
		}
	},
}

var listVariantsCmd = &cobra.Command{
	Use:   "variants",
	Short: "List the params-migration classification variants",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("🗂  Classification Variants (params recipe):\n")
		fmt.Printf("===========================================\n\n")

		variants := []struct {
			name        string
			description string
		}{
			{"already_migrated", "File already unwraps params with use(params); left untouched"},
			{"params_prop", "Component receives params as a typed prop; annotation wrapped in Promise"},
			{"use_params_hook", "Component reads params via useParams(); converted to the prop pattern"},
			{"unrecognized", "No known shape detected; file skipped and counted"},
		}
		for _, v := range variants {
			fmt.Printf("📄 %s\n", v.name)
			fmt.Printf("   %s\n\n", v.description)
		}
	},
}

var listLevelsCmd = &cobra.Command{
	Use:   "levels",
	Short: "List the logging levels the call matcher recognizes",
	Run: func(cmd *cobra.Command, args []string) {
		cfg, err := config.LoadConfig("")
		if err != nil {
			cfg = config.DefaultConfig()
		}
		fmt.Printf("🪵 Recognized Logging Calls:\n")
		fmt.Printf("===========================\n\n")
		fmt.Printf("Namespace: %s\n", cfg.Logging.Namespace)
		fmt.Printf("Levels:    %s\n", strings.Join(cfg.Logging.Levels, ", "))
	},
}

func init() {
	rootCmd.AddCommand(listCmd)
	listCmd.AddCommand(listRecipesCmd)
	listCmd.AddCommand(listVariantsCmd)
	listCmd.AddCommand(listLevelsCmd)
}
