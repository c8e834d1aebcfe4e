// Package engine implements the rules of a 2048-style tile-merging
// grid puzzle: board state, directional moves, tile spawning, score,
// win/loss evaluation and snapshot-based undo. It is a pure library
// with no rendering, input handling or persistence; callers own one
// Game per play session and drive it synchronously.
package engine

import (
	"fmt"
	"math/rand"
	"time"
)

// Config holds the immutable parameters of one game. The zero value of
// an optional field disables the feature.
type Config struct {
	Size       int         // Board dimension; defaults to 4
	Target     int         // Winning tile value; defaults to 2048
	MoveBudget int         // Moves allowed before losing; 0 = unlimited
	TimeBudget int         // Time units allowed before losing; 0 = untimed
	Collect    map[int]int // Tile value -> count required for the collection win
	Seed       int64       // RNG seed; 0 = derive from current time
}

// withDefaults fills in the defaults for unset required fields.
func (c Config) withDefaults() Config {
	if c.Size <= 0 {
		c.Size = 4
	}
	if c.Target <= 0 {
		c.Target = 2048
	}
	return c
}

// Game is the board engine for one play session. It is not safe for
// concurrent use; each instance belongs to a single caller.
type Game struct {
	cfg Config
	rng *rand.Rand

	board     Board
	score     int
	highScore int
	movesLeft int
	timeLeft  int
	collected map[int]int
	gameOver  bool
	won       bool

	history []historyEntry
}

// New creates a game from cfg, spawns the two initial tiles and records
// the initial history snapshot. All inputs are valid by construction;
// unset optional fields mean "feature disabled".
func New(cfg Config) *Game {
	cfg = cfg.withDefaults()
	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	g := &Game{
		cfg: cfg,
		rng: rand.New(rand.NewSource(seed)),
	}
	g.start()
	return g
}

// start (re)initializes the mutable state for a fresh game. The high
// score is deliberately left alone; it spans resets within a session.
func (g *Game) start() {
	g.board = NewBoard(g.cfg.Size)
	g.score = 0
	g.gameOver = false
	g.won = false
	g.movesLeft = g.cfg.MoveBudget
	g.timeLeft = g.cfg.TimeBudget
	g.collected = make(map[int]int, len(g.cfg.Collect))
	for v := range g.cfg.Collect {
		g.collected[v] = 0
	}
	g.history = nil

	g.spawnTile()
	g.spawnTile()
	g.pushHistory()
}

// Reset restarts the game per the construction rules, discarding all
// history. The session high score survives.
func (g *Game) Reset() {
	g.start()
}

// Move applies one directional move. It returns true when the board
// changed. A move against a finished game, or one that shifts no tiles,
// returns false without error; only an out-of-vocabulary direction is
// an error.
func (g *Game) Move(dir Direction) (bool, error) {
	if !dir.Valid() {
		return false, fmt.Errorf("%w: %d", ErrInvalidDirection, dir)
	}
	if g.gameOver || g.won {
		return false, nil
	}

	next, merged, changed := slideBoard(g.board, dir)
	if !changed {
		// The board is stuck, or an active budget ran dry on a
		// blocked move: the game ends here even though nothing moved.
		if !g.canMakeMove() || g.budgetExhausted() {
			g.gameOver = true
		}
		return false, nil
	}

	g.board = next
	for _, v := range merged {
		g.score += v
		g.collect(v)
	}
	g.spawnTile()

	// One move costs exactly one unit of each active budget.
	if g.cfg.MoveBudget > 0 {
		g.movesLeft--
	}
	if g.cfg.TimeBudget > 0 {
		g.timeLeft--
	}

	g.evaluate()
	g.pushHistory()
	return true, nil
}

// TickTime charges one wall-clock time unit against an active time
// budget. Hosts that want real-time play call this once per elapsed
// unit; Move charges its own unit, so the engine never reads a clock.
// A no-op when no time budget is configured or the game is over.
func (g *Game) TickTime() {
	if g.cfg.TimeBudget == 0 || g.gameOver || g.won {
		return
	}
	g.timeLeft--
	g.evaluate()
}

// spawnTile places a 2 (p=0.9) or a 4 (p=0.1) on a uniformly chosen
// empty cell. Returns false when the board is full. A spawned value
// counts toward an unmet collection target.
func (g *Game) spawnTile() bool {
	empty := g.board.EmptyCells()
	if len(empty) == 0 {
		return false
	}

	cell := empty[g.rng.Intn(len(empty))]
	value := 2
	if g.rng.Float64() < 0.1 {
		value = 4
	}
	g.board[cell.Y][cell.X] = value
	g.collect(value)
	return true
}

// collect credits v against its collection target, if v is tracked and
// the target is not yet met. Counts never exceed their requirement.
func (g *Game) collect(v int) {
	req, ok := g.cfg.Collect[v]
	if ok && g.collected[v] < req {
		g.collected[v]++
	}
}

// evaluate updates the terminal flags after a state change. A win
// (target tile on the board, or every collection target met) always
// takes precedence over budget exhaustion. The high score tracks the
// score on every evaluation regardless of outcome.
func (g *Game) evaluate() {
	if g.score > g.highScore {
		g.highScore = g.score
	}

	if g.board.MaxTile() >= g.cfg.Target || g.collectionDone() {
		g.won = true
		g.gameOver = true
		return
	}

	if !g.canMakeMove() || g.budgetExhausted() {
		g.gameOver = true
	}
}

// collectionDone reports whether every configured collection target is
// met. Vacuously false when no targets are configured.
func (g *Game) collectionDone() bool {
	if len(g.cfg.Collect) == 0 {
		return false
	}
	for v, req := range g.cfg.Collect {
		if g.collected[v] < req {
			return false
		}
	}
	return true
}

// budgetExhausted reports whether any active budget has run out.
func (g *Game) budgetExhausted() bool {
	if g.cfg.MoveBudget > 0 && g.movesLeft <= 0 {
		return true
	}
	if g.cfg.TimeBudget > 0 && g.timeLeft <= 0 {
		return true
	}
	return false
}

// canMakeMove reports whether any direction would change the board.
// Each candidate move is simulated against a disposable copy of the
// board, so the check involves no budgets, no spawning and no history
// and cannot end the game or mutate live state on its own.
func (g *Game) canMakeMove() bool {
	for _, dir := range Directions {
		if _, _, changed := slideBoard(g.board, dir); changed {
			return true
		}
	}
	return false
}

// Board returns a copy of the current board. Mutating it does not
// affect the game.
func (g *Game) Board() Board {
	return g.board.Clone()
}

// Score returns the current score.
func (g *Game) Score() int {
	return g.score
}

// HighScore returns the best score seen this session, across resets.
func (g *Game) HighScore() int {
	return g.highScore
}

// GameOver reports whether the game has ended, by win or loss.
func (g *Game) GameOver() bool {
	return g.gameOver
}

// Won reports whether the game ended in a win.
func (g *Game) Won() bool {
	return g.won
}

// Size returns the board dimension.
func (g *Game) Size() int {
	return g.cfg.Size
}

// Target returns the winning tile value.
func (g *Game) Target() int {
	return g.cfg.Target
}

// MoveBudget returns the configured move budget, 0 if unlimited.
func (g *Game) MoveBudget() int {
	return g.cfg.MoveBudget
}

// MovesLeft returns the remaining moves; meaningful only when a move
// budget is configured.
func (g *Game) MovesLeft() int {
	return g.movesLeft
}

// TimeBudget returns the configured time budget, 0 if untimed.
func (g *Game) TimeBudget() int {
	return g.cfg.TimeBudget
}

// TimeLeft returns the remaining time units; meaningful only when a
// time budget is configured.
func (g *Game) TimeLeft() int {
	return g.timeLeft
}

// CollectionTargets returns a copy of the configured collection
// targets (tile value -> required count).
func (g *Game) CollectionTargets() map[int]int {
	return cloneCounts(g.cfg.Collect)
}

// Collected returns a copy of the collected counts per tracked tile
// value.
func (g *Game) Collected() map[int]int {
	return cloneCounts(g.collected)
}

// cloneCounts copies a tile-value count map. Returns nil for nil.
func cloneCounts(m map[int]int) map[int]int {
	if m == nil {
		return nil
	}
	c := make(map[int]int, len(m))
	for k, v := range m {
		c[k] = v
	}
	return c
}
