package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/gridmerge/internal/modes"
	"github.com/vovakirdan/gridmerge/internal/storage"
)

var scoresCmd = &cobra.Command{
	Use:   "scores <mode>",
	Short: "Show top results for a mode",
	Long: `Display the top 10 results for the specified game mode.

Examples:
  gridmerge scores classic
  gridmerge scores swift`,
	Args: cobra.ExactArgs(1),
	Run:  runScores,
}

func runScores(cmd *cobra.Command, args []string) {
	modeName := args[0]

	if !modes.Exists(modeName) {
		fmt.Fprintf(os.Stderr, "Error: unknown mode %q\n", modeName)
		fmt.Fprintln(os.Stderr, "Run 'gridmerge list' to see available modes.")
		os.Exit(1)
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening results database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	results, err := store.TopResults(modeName, 10)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving results: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Top results - %s\n", modeName)
	fmt.Println()

	if len(results) == 0 {
		fmt.Println("No results recorded yet.")
		fmt.Println()
		fmt.Printf("Run 'gridmerge demo %s' to record the first one!\n", modeName)
		return
	}

	// Print header
	fmt.Printf("  %-4s  %-10s  %-10s  %-10s  %s\n", "Rank", "Score", "Best tile", "Outcome", "Date")
	fmt.Printf("  %-4s  %-10s  %-10s  %-10s  %s\n", "----", "-----", "---------", "-------", "----")

	// Print results
	for i, entry := range results {
		dateStr := entry.CreatedAt.Format("2006-01-02 15:04")
		fmt.Printf("  %-4d  %-10d  %-10d  %-10s  %s\n", i+1, entry.Score, entry.BestTile, entry.Outcome, dateStr)
	}

	// Show aggregated stats
	stats, err := store.GetModeStats(modeName)
	if err == nil && stats.GamesCount > 0 {
		fmt.Println()
		fmt.Printf("Games: %d  Wins: %d  Best: %d\n", stats.GamesCount, stats.WinsCount, stats.HighScore)
	}
}
