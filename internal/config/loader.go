package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

const configFile = "match3.yaml"

// Load loads the match-3 configuration.
// Search order: customPath -> ~/.match3/configs/match3.yaml -> ./configs/match3.yaml -> embedded default.
// Files are layered over the defaults, so a partial file only overrides what it names.
// A custom path that cannot be read or parsed is an error; the other locations are skipped silently.
func Load(customPath string) (Match3Config, error) {
	if customPath != "" {
		cfg, err := loadFile(customPath)
		if err != nil {
			return cfg, err
		}
		return cfg, cfg.Validate()
	}

	candidates := []string{
		userConfigPath(configFile),
		filepath.Join("configs", configFile),
	}
	for _, path := range candidates {
		if path == "" {
			continue
		}
		if cfg, err := loadFile(path); err == nil && cfg.Validate() == nil {
			return cfg, nil
		}
	}

	return embedded(), nil
}

// Parse layers YAML over the defaults.
func Parse(data []byte) (Match3Config, error) {
	cfg := embedded()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, err
	}
	return cfg, nil
}

func loadFile(path string) (Match3Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return DefaultMatch3Config(), fmt.Errorf("failed to read config %s: %w", path, err)
	}
	cfg, err := Parse(data)
	if err != nil {
		return cfg, fmt.Errorf("failed to parse config %s: %w", path, err)
	}
	return cfg, nil
}

// embedded returns the embedded defaults, or the hardcoded ones if the embed is unusable.
func embedded() Match3Config {
	cfg := DefaultMatch3Config()
	if err := yaml.Unmarshal(defaultMatch3YAML, &cfg); err != nil {
		return DefaultMatch3Config()
	}
	return cfg
}

// userConfigPath returns the path to a user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".match3", "configs", filename)
}

// ApplyPreset adjusts attempts, decay and difficulty scaling for a preset.
// The empty preset leaves the config untouched.
func ApplyPreset(cfg *Match3Config, preset DifficultyPreset) {
	if preset == "" {
		return
	}
	if preset == DifficultyFixed {
		cfg.Difficulty.Enabled = false
		return
	}

	cfg.Difficulty.Enabled = true
	cfg.Difficulty.InitialLevel = InitialLevelForPreset(preset)

	switch preset {
	case DifficultyEasy:
		cfg.Session.Attempts = 8
		cfg.Session.DecayIntervalMs = 4000
		cfg.Difficulty.Scaling.SpeedMultiplier = 0
	case DifficultyNormal:
		cfg.Session.Attempts = 5
		cfg.Session.DecayIntervalMs = 3000
		cfg.Difficulty.Scaling.SpeedMultiplier = 0.5
	case DifficultyHard:
		cfg.Session.Attempts = 3
		cfg.Session.DecayIntervalMs = 2000
		cfg.Difficulty.Scaling.SpeedMultiplier = 1.0
	}
}
