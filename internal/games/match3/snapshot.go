package match3

import "github.com/vovakirdan/tui-match3/internal/games/match3/core"

// StateType represents the current session state.
type StateType string

const (
	StatePlaying     StateType = "playing"
	StateAnimating   StateType = "animating"
	StatePaused      StateType = "paused"
	StatePausedSmall StateType = "paused_small_window"
	StateGameOver    StateType = "game_over"
)

// Snapshot captures the complete session state for determinism tests and replay.
type Snapshot struct {
	Tick       uint64
	Mode       Mode
	Score      int
	Level      int
	Progress   int
	Attempts   int
	Moves      int
	Cascades   int
	Reshuffles int
	Failed     int
	Cursor     core.Coord
	Selected   *core.Coord
	Hint       *core.Move
	Grid       [][]core.Token
	State      StateType
	Reason     string
}

// Snapshot returns the current session snapshot. The grid is the settled
// grid, even while a cascade is still being replayed on screen.
func (g *Game) Snapshot() Snapshot {
	state := StatePlaying
	switch {
	case g.tooSmall:
		state = StatePausedSmall
	case g.gameOver:
		state = StateGameOver
	case g.paused:
		state = StatePaused
	case g.anim.active():
		state = StateAnimating
	}

	s := Snapshot{
		Tick:       g.tick,
		Mode:       g.mode,
		Score:      g.standing.Score,
		Level:      g.standing.Level,
		Progress:   g.progress,
		Attempts:   g.attempts,
		Moves:      g.moves,
		Cascades:   g.cascades,
		Reshuffles: g.reshuffles,
		Failed:     g.failed,
		Cursor:     g.cursor,
		State:      state,
		Reason:     g.reason,
	}
	if g.hasSelected {
		sel := g.selected
		s.Selected = &sel
	}
	if g.hint != nil {
		h := *g.hint
		s.Hint = &h
	}
	if g.grid != nil {
		s.Grid = g.grid.Rows()
	}
	return s
}
