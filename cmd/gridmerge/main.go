// gridmerge is a 2048-style tile-merging puzzle engine with a demo
// driver.
//
// Usage:
//
//	gridmerge list             - List available game modes
//	gridmerge demo <mode>      - Run a random-move demo game
//	gridmerge scores <mode>    - Show top results for a mode
//
// Global flags:
//
//	--seed <value>  - Set RNG seed for reproducible games
//	--db <path>     - Set database path (default: ~/.gridmerge/results.db)
//	--config <path> - Path to a custom modes YAML
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/gridmerge/internal/config"
	"github.com/vovakirdan/gridmerge/internal/modes"
)

var (
	// Global flags
	flagSeed   int64
	flagDBPath string
	flagConfig string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "gridmerge",
	Short: "gridmerge - A tile-merging grid puzzle engine",
	Long: `gridmerge is the rules engine of a 2048-style tile-merging puzzle,
playable in three mode families: unlimited (classic), move-capped with
collection goals (adventure) and time-capped (swift).

Available commands:
  list     - Show all available game modes
  demo     - Run a random-move demo game in a mode
  scores   - View top results for a mode

Examples:
  gridmerge list
  gridmerge demo classic
  gridmerge demo adventure --seed 42
  gridmerge scores swift`,
	PersistentPreRunE: registerModes,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.gridmerge/results.db", "Path to results database")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom modes YAML")

	// Add subcommands
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(demoCmd)
	rootCmd.AddCommand(scoresCmd)
}

// registerModes loads the mode presets and registers each one in the
// mode registry before any subcommand runs.
func registerModes(cmd *cobra.Command, args []string) error {
	cfg, err := config.LoadModes(flagConfig)
	if err != nil {
		return err
	}

	for name, preset := range cfg.Modes {
		if modes.Exists(name) {
			continue
		}
		title := preset.Title
		if title == "" {
			title = name
		}
		modes.Register(name, title, preset.EngineConfig)
	}
	return nil
}
