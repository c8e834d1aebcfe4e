package engine

// GameStateType represents the current game state.
type GameStateType string

const (
	StatePlaying  GameStateType = "playing"
	StateGameOver GameStateType = "game_over"
	StateWon      GameStateType = "won"
)

// Snapshot captures the complete observable game state for determinism
// testing and for drivers that report on a game.
type Snapshot struct {
	Size       int
	Target     int
	Score      int
	HighScore  int
	Board      Board // Deep copy; safe to retain
	MaxTile    int
	MovesLeft  int // Meaningful only with a move budget
	TimeLeft   int // Meaningful only with a time budget
	Collected  map[int]int
	HistoryLen int
	State      GameStateType
}

// Snapshot returns the current game snapshot. The returned value
// shares no mutable data with the game.
func (g *Game) Snapshot() Snapshot {
	state := StatePlaying
	switch {
	case g.won:
		state = StateWon
	case g.gameOver:
		state = StateGameOver
	}

	return Snapshot{
		Size:       g.cfg.Size,
		Target:     g.cfg.Target,
		Score:      g.score,
		HighScore:  g.highScore,
		Board:      g.board.Clone(),
		MaxTile:    g.board.MaxTile(),
		MovesLeft:  g.movesLeft,
		TimeLeft:   g.timeLeft,
		Collected:  cloneCounts(g.collected),
		HistoryLen: len(g.history),
		State:      state,
	}
}
