package core

import (
	"errors"
	"math/rand"
	"testing"
)

func TestGenerateHasNoAlignments(t *testing.T) {
	tests := []struct {
		size, tokens int
	}{
		{8, 8},
		{8, 5},
		{6, 4},
		{10, 6},
	}
	for _, tt := range tests {
		for seed := int64(1); seed <= 10; seed++ {
			g, err := Generate(tt.size, tt.tokens, rand.New(rand.NewSource(seed)), 0)
			if err != nil {
				t.Fatalf("Generate(%d, %d) seed %d error = %v", tt.size, tt.tokens, seed, err)
			}
			if g.Size != tt.size {
				t.Errorf("Size = %d, want %d", g.Size, tt.size)
			}
			if got := Detect(g); len(got) != 0 {
				t.Errorf("seed %d: generated grid has alignments %+v", seed, got)
			}
			if !g.IsStable() {
				t.Errorf("seed %d: generated grid is not stable", seed)
			}
			if err := g.Validate(tt.tokens); err != nil {
				t.Errorf("seed %d: Validate() error = %v", seed, err)
			}
		}
	}
}

func TestGenerateDeterministic(t *testing.T) {
	a, err := Generate(8, 8, rand.New(rand.NewSource(42)), 0)
	if err != nil {
		t.Fatalf("Generate() error = %v", err)
	}
	b, err := Generate(8, 8, rand.New(rand.NewSource(42)), 0)
	if err != nil {
		t.Fatalf("Generate() error = %v", err)
	}
	assertGrid(t, "second Generate()", b, a)
}

func TestGenerateNonconvergence(t *testing.T) {
	_, err := Generate(4, 1, rand.New(rand.NewSource(1)), 25)
	if !errors.Is(err, ErrGenerationNonconvergence) {
		t.Errorf("Generate() error = %v, want ErrGenerationNonconvergence", err)
	}
}

func TestGenerateInvalidArgs(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	if _, err := Generate(0, 8, rng, 0); !errors.Is(err, ErrInvalidConfig) {
		t.Errorf("Generate(0, 8) error = %v, want ErrInvalidConfig", err)
	}
	if _, err := Generate(8, 0, rng, 0); !errors.Is(err, ErrInvalidConfig) {
		t.Errorf("Generate(8, 0) error = %v, want ErrInvalidConfig", err)
	}
}
