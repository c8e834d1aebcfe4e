package main

import (
	"fmt"
	"math/rand"
	"os"
	"sort"
	"strings"
	"time"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/gridmerge/internal/engine"
	"github.com/vovakirdan/gridmerge/internal/modes"
	"github.com/vovakirdan/gridmerge/internal/storage"
)

var (
	flagMaxMoves int
	flagVerbose  bool
)

var demoCmd = &cobra.Command{
	Use:   "demo <mode>",
	Short: "Run a random-move demo game",
	Long: `Runs a full game in the given mode, picking a uniformly random
direction on every turn, and prints the board as the game progresses.
The final result is saved to the results database.

Examples:
  gridmerge demo classic
  gridmerge demo adventure --seed 42
  gridmerge demo swift --max-moves 100 -v`,
	Args: cobra.ExactArgs(1),
	Run:  runDemo,
}

func init() {
	demoCmd.Flags().IntVar(&flagMaxMoves, "max-moves", 2000, "Stop after this many accepted moves (0 = no cap)")
	demoCmd.Flags().BoolVarP(&flagVerbose, "verbose", "v", false, "Log every accepted move")
}

func runDemo(cmd *cobra.Command, args []string) {
	modeName := args[0]

	logger := log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: false,
		Prefix:          "gridmerge",
	})
	if flagVerbose {
		logger.SetLevel(log.DebugLevel)
	}

	cfg, err := modes.Create(modeName)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		fmt.Fprintln(os.Stderr, "Run 'gridmerge list' to see available modes.")
		os.Exit(1)
	}

	seed := flagSeed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	cfg.Seed = seed
	game := engine.New(cfg)

	// The driver's direction picks come from their own stream so they
	// don't interleave with the engine's spawn randomness.
	rng := rand.New(rand.NewSource(seed + 1))

	logger.Info("starting demo game", "mode", modeName, "seed", seed,
		"size", game.Size(), "target", game.Target())
	fmt.Println(renderBoard(game.Board()))

	accepted := 0
	for !game.GameOver() {
		if flagMaxMoves > 0 && accepted >= flagMaxMoves {
			logger.Info("move cap reached", "accepted", accepted)
			break
		}

		dir := engine.Directions[rng.Intn(len(engine.Directions))]
		changed, err := game.Move(dir)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		if !changed {
			continue
		}
		accepted++
		logger.Debug("move accepted", "dir", dir.String(), "score", game.Score(),
			"moves_left", game.MovesLeft(), "time_left", game.TimeLeft())
	}

	snap := game.Snapshot()
	fmt.Println(renderBoard(snap.Board))

	outcome := storage.OutcomeGameOver
	if snap.State == engine.StateWon {
		outcome = storage.OutcomeWon
	}
	logger.Info("game finished", "mode", modeName, "state", string(snap.State),
		"score", snap.Score, "best_tile", snap.MaxTile, "moves", accepted)
	if targets := game.CollectionTargets(); len(targets) > 0 {
		logger.Info("collection progress", "collected", formatCollected(targets, snap.Collected))
	}

	// Persist the result. The demo still counts without storage.
	store, err := storage.Open(flagDBPath)
	if err != nil {
		logger.Warn("could not open results database", "err", err)
		return
	}
	defer store.Close()

	if _, err := store.SaveResult(modeName, snap.Score, snap.MaxTile, outcome); err != nil {
		logger.Warn("could not save result", "err", err)
	}
}

// formatCollected renders collection progress as "256: 1/3, 512: 0/1".
func formatCollected(targets, collected map[int]int) string {
	values := make([]int, 0, len(targets))
	for v := range targets {
		values = append(values, v)
	}
	sort.Ints(values)

	parts := make([]string, 0, len(values))
	for _, v := range values {
		parts = append(parts, fmt.Sprintf("%d: %d/%d", v, collected[v], targets[v]))
	}
	return strings.Join(parts, ", ")
}
