package core

import (
	"errors"
	"math/rand"
	"reflect"
	"testing"
)

func TestConfigValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr bool
	}{
		{"default", func(*Config) {}, false},
		{"too small", func(c *Config) { c.Size = 2 }, true},
		{"one token", func(c *Config) { c.TokenCount = 1 }, true},
		{"too many tokens", func(c *Config) { c.TokenCount = 40 }, true},
		{"no level step", func(c *Config) { c.Scores.LevelStep = 0 }, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(&cfg)
			err := cfg.Validate()
			if tt.wantErr && !errors.Is(err, ErrInvalidConfig) {
				t.Errorf("Validate() error = %v, want ErrInvalidConfig", err)
			}
			if !tt.wantErr && err != nil {
				t.Errorf("Validate() error = %v", err)
			}
		})
	}
}

func TestNewEngineRejectsNilSource(t *testing.T) {
	if _, err := NewEngine(DefaultConfig(), nil); !errors.Is(err, ErrInvalidConfig) {
		t.Errorf("NewEngine(nil source) error = %v, want ErrInvalidConfig", err)
	}
}

func newEngine(t *testing.T, cfg Config, rng Source) *Engine {
	t.Helper()
	e, err := NewEngine(cfg, rng)
	if err != nil {
		t.Fatalf("NewEngine() error = %v", err)
	}
	return e
}

func TestEngineTrySwapSizeMismatch(t *testing.T) {
	e := newEngine(t, DefaultConfig(), rand.New(rand.NewSource(1)))
	if _, err := e.TrySwap(hintGrid(t), C(0, 2), C(1, 2)); !errors.Is(err, ErrInvalidMove) {
		t.Errorf("TrySwap() on a 4x4 grid error = %v, want ErrInvalidMove", err)
	}
}

func TestResolveAndCascadeStandings(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Size = 5
	cfg.TokenCount = 12
	e := newEngine(t, cfg, &scripted{values: []int{8, 9, 10, 11, 8, 9}})

	start := NewStanding(180)
	if start.Level != 2 {
		t.Fatalf("NewStanding(180).Level = %d, want 2", start.Level)
	}

	out, err := e.ResolveAndCascade(chainGrid(t), nil, start)
	if err != nil {
		t.Fatalf("ResolveAndCascade() error = %v", err)
	}
	if out.Points != 200 {
		t.Errorf("Points = %d, want 200 for two 3-runs at level 2", out.Points)
	}
	if want := (Standing{Score: 380, Level: 4, Progress: 95}); out.Standing != want {
		t.Errorf("Standing = %+v, want %+v", out.Standing, want)
	}
	if len(out.Steps) != 2 {
		t.Errorf("len(Steps) = %d, want 2", len(out.Steps))
	}
	if !out.Grid.IsStable() {
		t.Errorf("final grid is not stable:\n%s", out.Grid)
	}
}

func TestResolveAndCascadeStableGrid(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Size = 4
	cfg.TokenCount = 4
	e := newEngine(t, cfg, rand.New(rand.NewSource(1)))

	g := latinGrid(t)
	start := NewStanding(250)
	out, err := e.ResolveAndCascade(g, nil, start)
	if err != nil {
		t.Fatalf("ResolveAndCascade() error = %v", err)
	}
	assertGrid(t, "ResolveAndCascade().Grid", out.Grid, g)
	if out.Points != 0 {
		t.Errorf("Points = %d, want 0", out.Points)
	}
	if out.Standing != start {
		t.Errorf("Standing = %+v, want %+v", out.Standing, start)
	}
}

func TestResolveAndCascadeRejectsBadAlignments(t *testing.T) {
	tests := []struct {
		name       string
		alignments []Alignment
		want       error
	}{
		{
			name:       "off the grid",
			alignments: []Alignment{{Axis: Horizontal, Token: 0, Cells: []Coord{C(0, 6), C(0, 7), C(0, 8)}}},
			want:       ErrOutOfBounds,
		},
		{
			name:       "negative cell",
			alignments: []Alignment{{Axis: Vertical, Token: 0, Cells: []Coord{C(-1, 0), C(0, 0), C(1, 0)}}},
			want:       ErrOutOfBounds,
		},
		{
			name:       "wrong token",
			alignments: []Alignment{{Axis: Horizontal, Token: 1, Cells: []Coord{C(0, 0), C(0, 1), C(0, 2)}}},
			want:       ErrInvalidMove,
		},
		{
			name:       "too short",
			alignments: []Alignment{{Axis: Horizontal, Token: 0, Cells: []Coord{C(0, 0), C(0, 1)}}},
			want:       ErrInvalidMove,
		},
		{
			name: "made-up run",
			alignments: []Alignment{{Axis: Horizontal, Token: 0, Cells: []Coord{
				C(0, 0), C(0, 1), C(0, 2), C(0, 3), C(0, 4),
			}}},
			want: ErrInvalidMove,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := newEngine(t, DefaultConfig(), rand.New(rand.NewSource(7)))
			g, err := e.GenerateGrid()
			if err != nil {
				t.Fatalf("GenerateGrid() error = %v", err)
			}
			// Pin row 0 so only the listed alignment decides the outcome.
			for c := range g.Size {
				g.Set(C(0, c), Token(c%2))
			}
			before := g.Clone()
			start := NewStanding(40)

			out, err := e.ResolveAndCascade(g, tt.alignments, start)
			if !errors.Is(err, tt.want) {
				t.Fatalf("ResolveAndCascade() error = %v, want %v", err, tt.want)
			}
			if out.Grid != nil || out.Points != 0 {
				t.Errorf("ResolveAndCascade() = %+v, want zero Outcome", out)
			}
			assertGrid(t, "grid after rejected alignments", g, before)
		})
	}
}

// TestEndToEnd plays one hinted swap on seeded 8×8 boards with 8 token types.
func TestEndToEnd(t *testing.T) {
	played := 0
	for seed := int64(1); seed <= 25; seed++ {
		e := newEngine(t, DefaultConfig(), rand.New(rand.NewSource(seed)))

		g, err := e.GenerateGrid()
		if err != nil {
			t.Fatalf("seed %d: GenerateGrid() error = %v", seed, err)
		}
		if got := e.DetectAlignments(g); len(got) != 0 {
			t.Fatalf("seed %d: generated grid has alignments %+v", seed, got)
		}

		move, ok := e.FindHintMove(g)
		if !ok {
			continue
		}
		played++

		swap, err := e.TrySwap(g, move.From, move.To)
		if err != nil {
			t.Fatalf("seed %d: TrySwap(%s) error = %v", seed, move, err)
		}
		if !swap.Productive() {
			t.Fatalf("seed %d: hint %s is not productive", seed, move)
		}

		start := NewStanding(0)
		out, err := e.ResolveAndCascade(swap.Grid, swap.Alignments, start)
		if err != nil {
			t.Fatalf("seed %d: ResolveAndCascade() error = %v", seed, err)
		}

		if got := e.DetectAlignments(out.Grid); len(got) != 0 {
			t.Errorf("seed %d: final grid has alignments %+v", seed, got)
		}
		if !out.Grid.IsStable() {
			t.Errorf("seed %d: final grid is not stable", seed)
		}
		if out.Grid.Size != 8 {
			t.Errorf("seed %d: Size = %d, want 8", seed, out.Grid.Size)
		}
		if err := out.Grid.Validate(8); err != nil {
			t.Errorf("seed %d: Validate() error = %v", seed, err)
		}

		if len(out.Steps) == 0 {
			t.Fatalf("seed %d: no cascade steps", seed)
		}
		if !reflect.DeepEqual(out.Steps[0].Alignments, swap.Alignments) {
			t.Errorf("seed %d: first step alignments = %+v, want %+v", seed, out.Steps[0].Alignments, swap.Alignments)
		}

		want := 0
		for _, step := range out.Steps {
			for _, a := range step.Alignments {
				want += ScoreFor(a.Len(), start.Level)
			}
		}
		if out.Points != want || want <= 0 {
			t.Errorf("seed %d: Points = %d, want %d (positive)", seed, out.Points, want)
		}
		if out.Standing != NewStanding(want) {
			t.Errorf("seed %d: Standing = %+v, want %+v", seed, out.Standing, NewStanding(want))
		}
		if out.Standing.Score < start.Score {
			t.Errorf("seed %d: score dropped from %d to %d", seed, start.Score, out.Standing.Score)
		}
	}
	if played == 0 {
		t.Fatal("no seeded board offered a move")
	}
}
