package core

import "fmt"

// Config holds the constructor constants of an Engine.
type Config struct {
	Size                int
	TokenCount          int
	Scores              ScoreTable
	MaxGenerateAttempts int
}

// DefaultConfig returns an 8×8 board with 8 token types and the default score table.
func DefaultConfig() Config {
	return Config{
		Size:                8,
		TokenCount:          8,
		Scores:              DefaultScoreTable,
		MaxGenerateAttempts: DefaultMaxGenerateAttempts,
	}
}

// Validate checks the config for values the engine cannot work with.
func (c Config) Validate() error {
	if c.Size < MinRun {
		return fmt.Errorf("%w: size %d is smaller than a run", ErrInvalidConfig, c.Size)
	}
	if c.TokenCount < 2 {
		return fmt.Errorf("%w: need at least 2 token types, got %d", ErrInvalidConfig, c.TokenCount)
	}
	if c.TokenCount > 36 {
		return fmt.Errorf("%w: at most 36 token types, got %d", ErrInvalidConfig, c.TokenCount)
	}
	return c.Scores.Validate()
}

// Outcome is the result of resolving a player's swap to a stable grid.
type Outcome struct {
	Grid     *Grid    // Stable grid after the last cascade step
	Points   int      // Points awarded across all steps
	Standing Standing // Standing after the points were added
	Steps    []Step
}

// Engine binds a config and a random source to the grid operations.
// An Engine is not safe for concurrent use; each session owns one.
type Engine struct {
	cfg Config
	rng Source
}

// NewEngine creates an engine after validating the config.
func NewEngine(cfg Config, rng Source) (*Engine, error) {
	if cfg.MaxGenerateAttempts <= 0 {
		cfg.MaxGenerateAttempts = DefaultMaxGenerateAttempts
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if rng == nil {
		return nil, fmt.Errorf("%w: nil random source", ErrInvalidConfig)
	}
	return &Engine{cfg: cfg, rng: rng}, nil
}

// Config returns the engine's config.
func (e *Engine) Config() Config {
	return e.cfg
}

// GenerateGrid returns a fresh board with no alignments.
func (e *Engine) GenerateGrid() (*Grid, error) {
	return Generate(e.cfg.Size, e.cfg.TokenCount, e.rng, e.cfg.MaxGenerateAttempts)
}

// DetectAlignments returns every alignment on the grid.
func (e *Engine) DetectAlignments(g *Grid) []Alignment {
	return Detect(g)
}

// TrySwap validates and applies a swap on a copy of the grid.
func (e *Engine) TrySwap(g *Grid, a, b Coord) (SwapOutcome, error) {
	if g.Size != e.cfg.Size {
		return SwapOutcome{}, fmt.Errorf("%w: grid size %d, engine size %d", ErrInvalidMove, g.Size, e.cfg.Size)
	}
	return TrySwap(g, a, b)
}

// ResolveAndCascade resolves the given alignments, then runs gravity, refill and
// further cascade steps until the grid is stable. All steps score at the
// standing's level; the returned standing carries the new score, level and progress.
// Nil alignments are detected from the grid. Alignments supplied by the caller
// must describe runs that are actually on the grid; see CheckAlignments.
func (e *Engine) ResolveAndCascade(g *Grid, alignments []Alignment, standing Standing) (Outcome, error) {
	if g.Size != e.cfg.Size {
		return Outcome{}, fmt.Errorf("%w: grid size %d, engine size %d", ErrInvalidMove, g.Size, e.cfg.Size)
	}
	if alignments == nil {
		alignments = Detect(g)
	} else if err := CheckAlignments(g, alignments); err != nil {
		return Outcome{}, err
	}

	level := max(standing.Level, 1)
	res := cascadeFrom(g, alignments, level, e.cfg.TokenCount, e.cfg.Scores, e.rng)
	return Outcome{
		Grid:     res.Grid,
		Points:   res.Points,
		Standing: standing.AddWith(e.cfg.Scores, res.Points),
		Steps:    res.Steps,
	}, nil
}

// FindHintMove returns a productive swap, or false on a deadlocked grid.
func (e *Engine) FindHintMove(g *Grid) (Move, bool) {
	return FindMove(g)
}

// Standing returns the standing for a score under the engine's score table.
func (e *Engine) Standing(score int) Standing {
	return e.cfg.Scores.Standing(score)
}
