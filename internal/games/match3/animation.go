package match3

import (
	platformcore "github.com/vovakirdan/tui-match3/internal/core"
	"github.com/vovakirdan/tui-match3/internal/games/match3/core"
)

// phaseMs is how long each cascade frame stays on screen.
const phaseMs = 150

// Phase is the part of a cascade step being shown.
type Phase int

const (
	PhaseNone    Phase = iota
	PhaseSwapped       // Swap applied, runs highlighted
	PhaseCleared       // Runs removed
	PhaseDropped       // Gravity applied
)

// frame is one grid to show during a cascade replay.
type frame struct {
	phase   Phase
	grid    *core.Grid
	matched []core.Coord
}

// animation replays the intermediate grids of a cascade.
// The session state is already final; only the rendered grid lags behind.
type animation struct {
	frames   []frame
	index    int
	ticks    int
	duration int
}

// start queues the frames of a resolved swap.
func (a *animation) start(swapped *core.Grid, steps []core.Step, runtime platformcore.RuntimeConfig) {
	a.frames = a.frames[:0]
	a.index = 0
	a.ticks = 0
	a.duration = runtime.MsToTicks(phaseMs)

	shown := swapped
	for _, step := range steps {
		a.frames = append(a.frames,
			frame{phase: PhaseSwapped, grid: shown, matched: core.ClearedCells(step.Alignments)},
			frame{phase: PhaseCleared, grid: step.Resolved},
			frame{phase: PhaseDropped, grid: step.Settled},
		)
		shown = step.Refilled
	}
}

// active returns true while frames remain.
func (a *animation) active() bool {
	return a.index < len(a.frames)
}

// advance moves the replay forward by one tick.
func (a *animation) advance() {
	if !a.active() {
		return
	}
	a.ticks++
	if a.ticks >= a.duration {
		a.ticks = 0
		a.index++
	}
}

// current returns the frame on screen, or false when the replay is over.
func (a *animation) current() (frame, bool) {
	if !a.active() {
		return frame{}, false
	}
	return a.frames[a.index], true
}

// stop drops any remaining frames.
func (a *animation) stop() {
	a.frames = a.frames[:0]
	a.index = 0
	a.ticks = 0
}
