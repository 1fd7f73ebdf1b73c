package candy

// GameStateType represents the current game state.
type GameStateType string

const (
	StatePlaying     GameStateType = "playing"
	StateAnimating   GameStateType = "animating"
	StatePaused      GameStateType = "paused"
	StateWon         GameStateType = "won"
	StateGameOver    GameStateType = "game_over"
	StatePausedSmall GameStateType = "paused_small_window"
)

// Snapshot captures the complete game state for determinism testing and replay.
type Snapshot struct {
	Tick      uint64
	Mode      string // "campaign" or "endless"
	Level     int    // campaign level ID, 0 for endless
	Score     int
	MovesLeft int    // -1 when unlimited
	Board     string // item glyphs, one line per row
	Cursor    int
	Selected  int
	Locked    bool // a move is being played back
	Phase     Phase
	State     GameStateType
	Stars     int
	Tasks     []TaskStatus
}

// Snapshot returns the current game snapshot for determinism verification.
func (g *Game) Snapshot() Snapshot {
	state := StatePlaying
	switch {
	case g.tooSmall:
		state = StatePausedSmall
	case g.won:
		state = StateWon
	case g.gameOver:
		state = StateGameOver
	case g.paused:
		state = StatePaused
	case g.play != nil:
		state = StateAnimating
	}

	snap := Snapshot{
		Tick:      g.tick,
		Mode:      string(g.mode),
		Level:     g.Level(),
		MovesLeft: g.movesLeft,
		Board:     g.board.String(),
		Cursor:    g.cursor,
		Selected:  g.selected,
		Locked:    g.play != nil,
		Phase:     g.phase,
		State:     state,
		Stars:     g.stars,
	}
	if g.scorer != nil {
		snap.Score = g.scorer.Score()
		snap.Tasks = g.scorer.Tasks()
	}
	return snap
}
