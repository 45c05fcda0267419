// Package match3 hosts the match-3 engine as an arcade game: cursor and
// selection input, the attempts limit, progress decay, idle hints, deadlock
// reshuffles and cascade replay.
package match3

import (
	"math/rand"

	platformcore "github.com/vovakirdan/tui-match3/internal/core"
	"github.com/vovakirdan/tui-match3/internal/config"
	"github.com/vovakirdan/tui-match3/internal/games/match3/core"
	"github.com/vovakirdan/tui-match3/internal/registry"
)

// Mode selects the session rules.
type Mode string

const (
	ModeClassic Mode = "classic" // Attempts limit and progress decay
	ModeZen     Mode = "zen"     // No attempts limit, no decay
)

// Registry IDs for the two modes.
const (
	IDClassic = "match3"
	IDZen     = "match3_zen"
)

// maxReshuffles bounds regeneration when every new board is deadlocked.
const maxReshuffles = 100

// configPath stores the custom config path set via CLI
var configPath string

// difficultyPreset stores the difficulty preset set via CLI
var difficultyPreset config.DifficultyPreset

// SetConfigPath sets the custom config path for loading.
func SetConfigPath(path string) {
	configPath = path
}

// SetDifficultyPreset sets the difficulty preset. Unknown names clear it.
func SetDifficultyPreset(preset string) {
	p, err := config.ParsePreset(preset)
	if err != nil {
		p = ""
	}
	difficultyPreset = p
}

func init() {
	registry.Register(IDClassic, func() registry.Game {
		return New()
	})
	registry.Register(IDZen, func() registry.Game {
		return NewZen()
	})
}

// Game implements registry.Game for the match-3 engine.
type Game struct {
	mode    Mode
	fixed   *config.Match3Config // Used instead of loading when set
	cfg     config.Match3Config
	runtime platformcore.RuntimeConfig

	rng        *rand.Rand
	engine     *core.Engine
	difficulty *config.DifficultyManager
	tick       uint64

	grid     *core.Grid
	standing core.Standing
	progress int // Gauge in percent; scoring replaces it, decay lowers it
	attempts int

	cursor      core.Coord
	selected    core.Coord
	hasSelected bool
	hint        *core.Move

	idleTicks     int
	decayTicks    int
	decayInterval int
	hintAfter     int

	moves      int
	cascades   int
	reshuffles int
	failed     int
	last       SwapReport

	anim animation

	gameOver bool
	reason   string
	paused   bool
	tooSmall bool
	err      error
}

// New creates a classic-mode game that loads its config on Reset.
func New() *Game {
	return &Game{mode: ModeClassic}
}

// NewZen creates a zen-mode game that loads its config on Reset.
func NewZen() *Game {
	return &Game{mode: ModeZen}
}

// NewWithConfig creates a game that uses cfg instead of loading one.
func NewWithConfig(mode Mode, cfg config.Match3Config) *Game {
	return &Game{mode: mode, fixed: &cfg}
}

// ID returns the game identifier.
func (g *Game) ID() string {
	if g.mode == ModeZen {
		return IDZen
	}
	return IDClassic
}

// Title returns the display name.
func (g *Game) Title() string {
	if g.mode == ModeZen {
		return "Match-3 (Zen)"
	}
	return "Match-3"
}

// Description summarizes the mode's rules for the menu.
func (g *Game) Description() string {
	if g.mode == ModeZen {
		return "no attempts, no decay, play forever"
	}
	return "limited attempts, progress decays"
}

// Mode returns the session rules in use.
func (g *Game) Mode() Mode {
	return g.mode
}

// Reset initializes or restarts the game.
func (g *Game) Reset(runtime platformcore.RuntimeConfig) {
	g.runtime = runtime
	g.cfg = g.loadConfig()

	g.rng = rand.New(rand.NewSource(runtime.Seed))
	g.difficulty = config.NewDifficultyManager(g.cfg.Difficulty)
	g.decayInterval = runtime.MsToTicks(g.cfg.Session.DecayIntervalMs)
	g.hintAfter = runtime.MsToTicks(g.cfg.Session.HintAfterMs)

	g.tick = 0
	g.standing = core.NewStanding(0)
	g.progress = g.cfg.Session.InitialProgress
	g.attempts = g.cfg.Session.Attempts
	g.cursor = core.C(0, 0)
	g.hasSelected = false
	g.hint = nil
	g.idleTicks = 0
	g.decayTicks = 0
	g.moves = 0
	g.cascades = 0
	g.reshuffles = 0
	g.failed = 0
	g.last = SwapReport{}
	g.anim = animation{}
	g.gameOver = false
	g.reason = ""
	g.paused = false
	g.err = nil

	g.checkScreenSize()

	engine, err := core.NewEngine(engineConfig(g.cfg), g.rng)
	if err != nil {
		g.fail(err)
		return
	}
	g.engine = engine
	g.standing = engine.Standing(0)

	grid, err := engine.GenerateGrid()
	if err != nil {
		g.fail(err)
		return
	}
	g.grid = grid
	g.ensurePlayable()
}

// loadConfig returns the fixed config or the loaded one with the preset applied.
func (g *Game) loadConfig() config.Match3Config {
	if g.fixed != nil {
		return *g.fixed
	}
	cfg, err := config.Load(configPath)
	if err != nil {
		cfg = config.DefaultMatch3Config()
	}
	config.ApplyPreset(&cfg, difficultyPreset)
	return cfg
}

// engineConfig maps the YAML config onto the engine's constants.
func engineConfig(cfg config.Match3Config) core.Config {
	return core.Config{
		Size:       cfg.Board.Size,
		TokenCount: cfg.Board.Tokens,
		Scores: core.ScoreTable{
			Three:     cfg.Scoring.Three,
			Four:      cfg.Scoring.Four,
			FivePlus:  cfg.Scoring.FivePlus,
			LevelStep: cfg.Scoring.LevelStep,
		},
		MaxGenerateAttempts: cfg.Generation.MaxAttempts,
	}
}

// fail ends the session on an engine or config error.
func (g *Game) fail(err error) {
	g.err = err
	g.gameOver = true
	g.reason = err.Error()
}

// Resize adopts new screen dimensions and keeps the session.
func (g *Game) Resize(runtime platformcore.RuntimeConfig) {
	g.runtime.ScreenW = runtime.ScreenW
	g.runtime.ScreenH = runtime.ScreenH
	g.checkScreenSize()
}

// checkScreenSize checks if the screen can hold the HUD, the framed board and the footer.
func (g *Game) checkScreenSize() {
	size := g.cfg.Board.Size
	screen := platformcore.NewRect(0, 0, g.runtime.ScreenW, g.runtime.ScreenH)
	need := platformcore.NewRect(0, 0, size*cellWidth+2, hudHeight+size+2+footerHeight)
	g.tooSmall = !screen.Contains(need.Right()-1, need.Bottom()-1)
}

// Step advances the game by one tick.
func (g *Game) Step(in platformcore.InputFrame) platformcore.StepResult {
	g.tick++

	if g.tooSmall || g.err != nil {
		return platformcore.StepResult{State: g.State()}
	}

	if in.Has(platformcore.ActionPause) && !g.gameOver {
		g.paused = !g.paused
	}
	if g.paused || g.gameOver {
		return platformcore.StepResult{State: g.State()}
	}

	if g.anim.active() {
		g.anim.advance()
		return platformcore.StepResult{State: g.State()}
	}

	if in.Empty() {
		g.idleTicks++
	} else {
		g.idleTicks = 0
	}

	g.handleInput(in)
	g.updateHint()
	g.updateDecay()

	return platformcore.StepResult{State: g.State()}
}

// handleInput applies cursor movement, selection and the hint key.
func (g *Game) handleInput(in platformcore.InputFrame) {
	last := g.grid.Size - 1
	switch {
	case in.Has(platformcore.ActionUp):
		g.cursor.Row = platformcore.Clamp(g.cursor.Row-1, 0, last)
	case in.Has(platformcore.ActionDown):
		g.cursor.Row = platformcore.Clamp(g.cursor.Row+1, 0, last)
	case in.Has(platformcore.ActionLeft):
		g.cursor.Col = platformcore.Clamp(g.cursor.Col-1, 0, last)
	case in.Has(platformcore.ActionRight):
		g.cursor.Col = platformcore.Clamp(g.cursor.Col+1, 0, last)
	}

	if in.Has(platformcore.ActionHint) {
		g.showHint()
	}

	if in.Has(platformcore.ActionConfirm) {
		g.confirm()
	}
}

// confirm selects, deselects or swaps with the cell under the cursor.
func (g *Game) confirm() {
	switch {
	case !g.hasSelected:
		g.selected = g.cursor
		g.hasSelected = true
	case g.selected == g.cursor:
		g.hasSelected = false
	case core.Adjacent(g.selected, g.cursor):
		from := g.selected
		g.hasSelected = false
		// Only adjacent in-bounds cells reach here, so Swap cannot fail.
		_, _ = g.Swap(from, g.cursor)
	default:
		g.selected = g.cursor
	}
}

// updateHint shows a hint once the player has been idle long enough.
func (g *Game) updateHint() {
	if g.hint == nil && g.idleTicks >= g.hintAfter {
		g.showHint()
	}
}

// showHint computes the hint move for the current grid.
func (g *Game) showHint() {
	if m, ok := g.engine.FindHintMove(g.grid); ok {
		g.hint = &m
	}
}

// updateDecay lowers the progress gauge in classic mode.
func (g *Game) updateDecay() {
	if g.mode == ModeZen {
		return
	}
	g.decayTicks++
	if g.decayTicks < g.decayInterval {
		return
	}
	g.decayTicks = 0

	amount := g.difficulty.Decay(g.standing.Level, g.cfg.Session.DecayPerLevel, g.standing.Score, int(g.tick))
	g.progress = max(0, g.progress-amount)
	if g.progress == 0 {
		g.gameOver = true
		g.reason = "Progress ran out"
	}
}

// State returns the current game state.
func (g *Game) State() platformcore.GameState {
	return platformcore.GameState{
		Score:    g.standing.Score,
		GameOver: g.gameOver,
		Paused:   g.paused || g.tooSmall,
	}
}

// Progress returns the gauge as a fraction for the platform's progress bar.
func (g *Game) Progress() float64 {
	return float64(g.progress) / 100.0
}

// Result returns the end-of-game summary.
func (g *Game) Result() registry.Result {
	return registry.Result{
		Score:    g.standing.Score,
		Level:    g.standing.Level,
		Moves:    g.moves,
		Cascades: g.cascades,
	}
}

// Err returns the config or generation error that ended the session, if any.
func (g *Game) Err() error {
	return g.err
}

// Controls returns the control hints for the game.
func (g *Game) Controls() string {
	return "Arrows/WASD: Move | Enter/Space: Select/Swap | ?: Hint | P: Pause | R: Restart | Q: Quit"
}
