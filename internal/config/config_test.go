package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"gopkg.in/yaml.v3"
)

func TestEmbeddedMatchesDefaults(t *testing.T) {
	var cfg Match3Config
	if err := yaml.Unmarshal(DefaultYAML(), &cfg); err != nil {
		t.Fatalf("embedded yaml does not parse: %v", err)
	}
	if cfg != DefaultMatch3Config() {
		t.Errorf("embedded yaml = %+v, want %+v", cfg, DefaultMatch3Config())
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("Validate() error = %v", err)
	}
}

func TestLoadCustomPathLayersOverDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "custom.yaml")
	data := []byte("board:\n  size: 6\nsession:\n  attempts: 2\n")
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.Board.Size != 6 {
		t.Errorf("Board.Size = %d, want 6", cfg.Board.Size)
	}
	if cfg.Board.Tokens != 8 {
		t.Errorf("Board.Tokens = %d, want default 8", cfg.Board.Tokens)
	}
	if cfg.Session.Attempts != 2 {
		t.Errorf("Session.Attempts = %d, want 2", cfg.Session.Attempts)
	}
	if cfg.Scoring.FivePlus != 500 {
		t.Errorf("Scoring.FivePlus = %d, want default 500", cfg.Scoring.FivePlus)
	}
}

func TestLoadCustomPathErrors(t *testing.T) {
	dir := t.TempDir()

	if _, err := Load(filepath.Join(dir, "missing.yaml")); err == nil {
		t.Error("Load(missing) error = nil, want error")
	}

	bad := filepath.Join(dir, "bad.yaml")
	if err := os.WriteFile(bad, []byte("board: [oops"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(bad); err == nil {
		t.Error("Load(bad yaml) error = nil, want error")
	}

	invalid := filepath.Join(dir, "invalid.yaml")
	if err := os.WriteFile(invalid, []byte("board:\n  tokens: 1\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(invalid); !errors.Is(err, ErrInvalid) {
		t.Errorf("Load(invalid) error = %v, want ErrInvalid", err)
	}
}

func TestLoadFallsBackToEmbedded(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	t.Chdir(t.TempDir())

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg != DefaultMatch3Config() {
		t.Errorf("Load() = %+v, want defaults", cfg)
	}
}

func TestLoadLocalConfigsDir(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	dir := t.TempDir()
	t.Chdir(dir)

	if err := os.MkdirAll("configs", 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join("configs", "match3.yaml"), []byte("board:\n  tokens: 5\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.Board.Tokens != 5 {
		t.Errorf("Board.Tokens = %d, want 5 from ./configs", cfg.Board.Tokens)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Match3Config)
		ok     bool
	}{
		{"defaults", func(*Match3Config) {}, true},
		{"zero attempts means unlimited", func(c *Match3Config) { c.Session.Attempts = 0 }, true},
		{"small board", func(c *Match3Config) { c.Board.Size = 2 }, false},
		{"too many tokens", func(c *Match3Config) { c.Board.Tokens = 37 }, false},
		{"zero level step", func(c *Match3Config) { c.Scoring.LevelStep = 0 }, false},
		{"negative attempts", func(c *Match3Config) { c.Session.Attempts = -1 }, false},
		{"progress over 100", func(c *Match3Config) { c.Session.InitialProgress = 120 }, false},
		{"zero decay interval", func(c *Match3Config) { c.Session.DecayIntervalMs = 0 }, false},
		{"unknown progression", func(c *Match3Config) { c.Difficulty.Progression.Type = "moves" }, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultMatch3Config()
			tt.mutate(&cfg)
			err := cfg.Validate()
			if tt.ok && err != nil {
				t.Errorf("Validate() error = %v, want nil", err)
			}
			if !tt.ok && !errors.Is(err, ErrInvalid) {
				t.Errorf("Validate() error = %v, want ErrInvalid", err)
			}
		})
	}
}

func TestApplyPreset(t *testing.T) {
	tests := []struct {
		preset       DifficultyPreset
		attempts     int
		enabled      bool
		initialLevel float64
	}{
		{"", 5, true, 0.0},
		{DifficultyEasy, 8, true, 0.0},
		{DifficultyNormal, 5, true, 0.3},
		{DifficultyHard, 3, true, 0.7},
		{DifficultyFixed, 5, false, 0.0},
	}

	for _, tt := range tests {
		t.Run(string(tt.preset), func(t *testing.T) {
			cfg := DefaultMatch3Config()
			ApplyPreset(&cfg, tt.preset)
			if cfg.Session.Attempts != tt.attempts {
				t.Errorf("Attempts = %d, want %d", cfg.Session.Attempts, tt.attempts)
			}
			if cfg.Difficulty.Enabled != tt.enabled {
				t.Errorf("Enabled = %v, want %v", cfg.Difficulty.Enabled, tt.enabled)
			}
			if cfg.Difficulty.InitialLevel != tt.initialLevel {
				t.Errorf("InitialLevel = %v, want %v", cfg.Difficulty.InitialLevel, tt.initialLevel)
			}
		})
	}
}

func TestParsePreset(t *testing.T) {
	for _, name := range []string{"", "easy", "normal", "hard", "fixed"} {
		if _, err := ParsePreset(name); err != nil {
			t.Errorf("ParsePreset(%q) error = %v", name, err)
		}
	}
	if _, err := ParsePreset("nightmare"); !errors.Is(err, ErrInvalid) {
		t.Errorf("ParsePreset(nightmare) error = %v, want ErrInvalid", err)
	}
}
