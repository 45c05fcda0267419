package config

import (
	_ "embed"
)

//go:embed defaults/match3.yaml
var defaultMatch3YAML []byte

// DefaultMatch3Config returns the built-in configuration.
// It matches defaults/match3.yaml and is used when that file cannot be parsed.
func DefaultMatch3Config() Match3Config {
	return Match3Config{
		Board: BoardConfig{
			Size:   8,
			Tokens: 8,
		},
		Scoring: ScoringConfig{
			Three:     50,
			Four:      150,
			FivePlus:  500,
			LevelStep: 100,
		},
		Session: SessionConfig{
			Attempts:        5,
			InitialProgress: 50,
			DecayIntervalMs: 3000,
			DecayPerLevel:   1,
			HintAfterMs:     3000,
		},
		Generation: GenerationConfig{
			MaxAttempts: 10000,
		},
		Difficulty: DifficultyConfig{
			Enabled:      true,
			InitialLevel: 0.0,
			Progression: ProgressionConfig{
				Type:  "score",
				MaxAt: 5000,
			},
			Scaling: ScalingConfig{
				SpeedMultiplier: 0.0,
			},
		},
	}
}

// DefaultYAML returns the embedded default YAML.
func DefaultYAML() []byte {
	return defaultMatch3YAML
}
