package match3

import (
	"errors"

	"github.com/vovakirdan/tui-match3/internal/games/match3/core"
)

// ErrGameOver is returned by Swap once the session has ended.
var ErrGameOver = errors.New("match3: game over")

// SwapReport describes what one player swap did to the session.
type SwapReport struct {
	Move       core.Move
	Productive bool
	Points     int
	Steps      int  // Cascade iterations, 0 for an unproductive swap
	LevelUp    bool // The level rose during this swap
	Reshuffled bool // The resulting board was deadlocked and regenerated
}

// Swap exchanges two cells under the session rules.
// A productive swap is resolved to a stable grid and scored; the gauge is
// replaced by the new level progress. An unproductive swap leaves the grid as
// it was and costs an attempt in classic mode. Invalid cells return an error
// wrapping core.ErrInvalidMove and change nothing.
func (g *Game) Swap(a, b core.Coord) (SwapReport, error) {
	report := SwapReport{Move: core.Move{From: a, To: b}}
	if g.gameOver || g.engine == nil {
		return report, ErrGameOver
	}

	outcome, err := g.engine.TrySwap(g.grid, a, b)
	if err != nil {
		return report, err
	}

	g.hint = nil
	g.idleTicks = 0

	if !outcome.Productive() {
		g.failed++
		if g.mode == ModeClassic && g.cfg.Session.Attempts > 0 {
			g.attempts = max(0, g.attempts-1)
			if g.attempts == 0 {
				g.gameOver = true
				g.reason = "Out of attempts"
			}
		}
		g.last = report
		return report, nil
	}

	before := g.standing
	result, err := g.engine.ResolveAndCascade(outcome.Grid, outcome.Alignments, before)
	if err != nil {
		return report, err
	}

	g.anim.start(outcome.Grid, result.Steps, g.runtime)
	g.grid = result.Grid
	g.standing = result.Standing
	g.progress = result.Standing.Progress
	g.moves++
	g.cascades += len(result.Steps)

	report.Productive = true
	report.Points = result.Points
	report.Steps = len(result.Steps)
	report.LevelUp = result.Standing.Level > before.Level
	report.Reshuffled = g.ensurePlayable()

	g.last = report
	return report, nil
}

// Hint returns the move an idle player would be shown.
func (g *Game) Hint() (core.Move, bool) {
	if g.engine == nil || g.grid == nil {
		return core.Move{}, false
	}
	return g.engine.FindHintMove(g.grid)
}

// ensurePlayable regenerates the board while it has no productive swap.
// It returns true if at least one reshuffle happened.
func (g *Game) ensurePlayable() bool {
	reshuffled := false
	for range maxReshuffles {
		if _, ok := g.engine.FindHintMove(g.grid); ok {
			return reshuffled
		}
		grid, err := g.engine.GenerateGrid()
		if err != nil {
			g.fail(err)
			return reshuffled
		}
		g.grid = grid
		g.reshuffles++
		reshuffled = true
	}
	if _, ok := g.engine.FindHintMove(g.grid); !ok {
		g.gameOver = true
		g.reason = "No moves left"
	}
	return reshuffled
}
