// Package config provides YAML-based configuration loading and difficulty
// management for the match-3 game.
package config

import (
	"errors"
	"fmt"
)

// ErrInvalid is wrapped by every validation failure.
var ErrInvalid = errors.New("invalid config")

// Match3Config contains all configuration for the match-3 game.
type Match3Config struct {
	Board      BoardConfig      `yaml:"board"`
	Scoring    ScoringConfig    `yaml:"scoring"`
	Session    SessionConfig    `yaml:"session"`
	Generation GenerationConfig `yaml:"generation"`
	Difficulty DifficultyConfig `yaml:"difficulty"`
}

// BoardConfig defines the grid dimensions.
type BoardConfig struct {
	Size   int `yaml:"size"`   // Width and height of the square board
	Tokens int `yaml:"tokens"` // Number of distinct token types
}

// ScoringConfig defines the tiered run points and the score span of a level.
type ScoringConfig struct {
	Three     int `yaml:"three"`
	Four      int `yaml:"four"`
	FivePlus  int `yaml:"five_plus"`
	LevelStep int `yaml:"level_step"`
}

// SessionConfig defines the rules layered on top of the engine.
type SessionConfig struct {
	Attempts        int `yaml:"attempts"`          // Failed swaps allowed; 0 means unlimited
	InitialProgress int `yaml:"initial_progress"`  // Progress gauge at start, percent
	DecayIntervalMs int `yaml:"decay_interval_ms"` // Time between progress decays
	DecayPerLevel   int `yaml:"decay_per_level"`   // Progress lost per decay, times the level
	HintAfterMs     int `yaml:"hint_after_ms"`     // Idle time before a hint is shown
}

// GenerationConfig bounds board generation.
type GenerationConfig struct {
	MaxAttempts int `yaml:"max_attempts"`
}

// DifficultyConfig defines how the decay rate grows with the score.
type DifficultyConfig struct {
	Enabled      bool              `yaml:"enabled"`
	InitialLevel float64           `yaml:"initial_level"` // 0.0 = easy, 1.0 = hard
	Progression  ProgressionConfig `yaml:"progression"`
	Scaling      ScalingConfig     `yaml:"scaling"`
}

// ProgressionConfig defines how difficulty increases over time.
type ProgressionConfig struct {
	Type  string `yaml:"type"`   // "score", "time", or "none"
	MaxAt int    `yaml:"max_at"` // Score/ticks at which max difficulty is reached
}

// ScalingConfig defines the magnitude of difficulty changes.
type ScalingConfig struct {
	SpeedMultiplier float64 `yaml:"speed_multiplier"` // Extra decay factor at max difficulty
}

// Validate reports the first value the game cannot run with.
func (c Match3Config) Validate() error {
	switch {
	case c.Board.Size < 3:
		return fmt.Errorf("%w: board.size must be at least 3, got %d", ErrInvalid, c.Board.Size)
	case c.Board.Tokens < 2 || c.Board.Tokens > 36:
		return fmt.Errorf("%w: board.tokens must be in [2, 36], got %d", ErrInvalid, c.Board.Tokens)
	case c.Scoring.LevelStep <= 0:
		return fmt.Errorf("%w: scoring.level_step must be positive, got %d", ErrInvalid, c.Scoring.LevelStep)
	case c.Scoring.Three < 0 || c.Scoring.Four < 0 || c.Scoring.FivePlus < 0:
		return fmt.Errorf("%w: scoring points must not be negative", ErrInvalid)
	case c.Session.Attempts < 0:
		return fmt.Errorf("%w: session.attempts must not be negative, got %d", ErrInvalid, c.Session.Attempts)
	case c.Session.InitialProgress <= 0 || c.Session.InitialProgress > 100:
		return fmt.Errorf("%w: session.initial_progress must be in (0, 100], got %d", ErrInvalid, c.Session.InitialProgress)
	case c.Session.DecayIntervalMs <= 0:
		return fmt.Errorf("%w: session.decay_interval_ms must be positive, got %d", ErrInvalid, c.Session.DecayIntervalMs)
	case c.Session.HintAfterMs <= 0:
		return fmt.Errorf("%w: session.hint_after_ms must be positive, got %d", ErrInvalid, c.Session.HintAfterMs)
	}
	switch c.Difficulty.Progression.Type {
	case "", "none", "score", "time":
	default:
		return fmt.Errorf("%w: difficulty.progression.type %q", ErrInvalid, c.Difficulty.Progression.Type)
	}
	return nil
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// ParsePreset validates a preset name. The empty string means no preset.
func ParsePreset(name string) (DifficultyPreset, error) {
	switch p := DifficultyPreset(name); p {
	case "", DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyFixed:
		return p, nil
	default:
		return "", fmt.Errorf("%w: unknown difficulty %q (want easy, normal, hard or fixed)", ErrInvalid, name)
	}
}

// InitialLevelForPreset returns the initial_level for a difficulty preset.
func InitialLevelForPreset(preset DifficultyPreset) float64 {
	switch preset {
	case DifficultyNormal:
		return 0.3
	case DifficultyHard:
		return 0.7
	default:
		return 0.0
	}
}
