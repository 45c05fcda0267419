package main

import (
	"os"
	"path/filepath"
	"testing"
)

func TestGameIDFor(t *testing.T) {
	tests := []struct {
		arg, want string
	}{
		{"", "match3"},
		{"classic", "match3"},
		{"zen", "match3_zen"},
		{"match3_zen", "match3_zen"},
		{"tetris", "tetris"},
	}
	for _, tt := range tests {
		if got := gameIDFor(tt.arg); got != tt.want {
			t.Errorf("gameIDFor(%q) = %q, want %q", tt.arg, got, tt.want)
		}
	}
}

func TestModeName(t *testing.T) {
	for _, mode := range []string{"classic", "zen"} {
		if got := modeName(gameIDFor(mode)); got != mode {
			t.Errorf("modeName(gameIDFor(%q)) = %q", mode, got)
		}
	}
}

func TestEnvDefault(t *testing.T) {
	t.Setenv("MATCH3_TEST_PATH", "/tmp/scores.db")

	v := "default"
	envDefault(true, &v, "MATCH3_TEST_PATH")
	if v != "default" {
		t.Errorf("explicit flag overridden: %q", v)
	}

	envDefault(false, &v, "MATCH3_TEST_PATH")
	if v != "/tmp/scores.db" {
		t.Errorf("env not applied: %q", v)
	}

	envDefault(false, &v, "MATCH3_TEST_UNSET")
	if v != "/tmp/scores.db" {
		t.Errorf("unset env changed value: %q", v)
	}
}

func TestEffectiveConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "match3.yaml")
	if err := os.WriteFile(path, []byte("board:\n  size: 6\n"), 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, err := effectiveConfig(path, "hard")
	if err != nil {
		t.Fatalf("effectiveConfig() error = %v", err)
	}
	if cfg.Board.Size != 6 {
		t.Errorf("Board.Size = %d, want 6 from file", cfg.Board.Size)
	}
	if cfg.Session.Attempts != 3 {
		t.Errorf("Session.Attempts = %d, want 3 from the hard preset", cfg.Session.Attempts)
	}

	if _, err := effectiveConfig(path, "brutal"); err == nil {
		t.Error("effectiveConfig() accepted an unknown preset")
	}
}

func TestSimulateConfig(t *testing.T) {
	cfg, err := simulateConfig("", "easy", 6, 5)
	if err != nil {
		t.Fatalf("simulateConfig() error = %v", err)
	}
	if cfg.Board.Size != 6 || cfg.Board.Tokens != 5 {
		t.Errorf("board = %dx%d tokens, want 6 and 5", cfg.Board.Size, cfg.Board.Tokens)
	}
	if cfg.Session.Attempts != 8 {
		t.Errorf("Session.Attempts = %d, want 8 from the easy preset", cfg.Session.Attempts)
	}

	if _, err := simulateConfig("", "", 2, 0); err == nil {
		t.Error("simulateConfig() accepted a 2x2 board")
	}
	if _, err := simulateConfig("", "brutal", 0, 0); err == nil {
		t.Error("simulateConfig() accepted an unknown preset")
	}
}
