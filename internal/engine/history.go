package engine

// historyLimit bounds the undo history. Once full, the oldest snapshot
// is evicted on every push.
const historyLimit = 10

// historyEntry is a full deep snapshot of the restorable game state,
// taken at game start and after every accepted move. Entries share no
// mutable data with the live game or with each other.
type historyEntry struct {
	board     Board
	score     int
	collected map[int]int
	movesLeft int
	timeLeft  int
}

// pushHistory appends a snapshot of the current state, evicting the
// oldest entry beyond the limit.
func (g *Game) pushHistory() {
	g.history = append(g.history, historyEntry{
		board:     g.board.Clone(),
		score:     g.score,
		collected: cloneCounts(g.collected),
		movesLeft: g.movesLeft,
		timeLeft:  g.timeLeft,
	})
	if len(g.history) > historyLimit {
		g.history = g.history[1:]
	}
}

// HistoryLen returns the number of stored snapshots.
func (g *Game) HistoryLen() int {
	return len(g.history)
}

// Undo discards the newest snapshot and restores the one before it.
// It needs at least two snapshots (the current state plus one prior)
// and returns false, mutating nothing, when fewer exist. A successful
// undo clears both terminal flags: undo always re-opens play, even
// when the restored snapshot was itself terminal.
func (g *Game) Undo() bool {
	if len(g.history) < 2 {
		return false
	}

	g.history = g.history[:len(g.history)-1]
	top := g.history[len(g.history)-1]

	g.board = top.board.Clone()
	g.score = top.score
	g.collected = cloneCounts(top.collected)
	g.movesLeft = top.movesLeft
	g.timeLeft = top.timeLeft
	g.gameOver = false
	g.won = false
	return true
}
