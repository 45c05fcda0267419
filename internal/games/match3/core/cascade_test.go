package core

import (
	"math/rand"
	"slices"
	"testing"
)

// chainGrid clears its bottom row, and the drop lines up three 2s.
func chainGrid(t *testing.T) *Grid {
	return mustGrid(t,
		"3 4 5 6 7",
		"4 5 6 7 3",
		"5 6 7 3 4",
		"1 2 2 4 5",
		"0 0 0 2 6",
	)
}

func TestRunCascadeChain(t *testing.T) {
	g := chainGrid(t)
	src := &scripted{values: []int{8, 9, 10, 11, 8, 9}}

	res := RunCascade(g, 1, 12, DefaultScoreTable, src)
	if res.Cascades() != 2 {
		t.Fatalf("Cascades() = %d, want 2", res.Cascades())
	}

	first := res.Steps[0]
	if first.Points != 50 || first.Cleared != 3 {
		t.Errorf("first step points %d cleared %d, want 50 and 3", first.Points, first.Cleared)
	}
	assertGrid(t, "first.Refilled", first.Refilled, mustGrid(t,
		"8 9 10 6 7",
		"3 4 5 7 3",
		"4 5 6 3 4",
		"5 6 7 4 5",
		"1 2 2 2 6",
	))

	second := res.Steps[1]
	if len(second.Alignments) != 1 {
		t.Fatalf("second step has %d alignments, want 1", len(second.Alignments))
	}
	if want := []Coord{C(4, 1), C(4, 2), C(4, 3)}; !slices.Equal(second.Alignments[0].Cells, want) {
		t.Errorf("second alignment cells = %v, want %v", second.Alignments[0].Cells, want)
	}
	assertGrid(t, "second.Settled", second.Settled, mustGrid(t,
		"8 . . . 7",
		"3 9 10 6 3",
		"4 4 5 7 4",
		"5 5 6 3 5",
		"1 6 7 4 6",
	))

	if res.Points != 100 {
		t.Errorf("Points = %d, want 100", res.Points)
	}
	assertGrid(t, "Grid", res.Grid, mustGrid(t,
		"8 11 8 9 7",
		"3 9 10 6 3",
		"4 4 5 7 4",
		"5 5 6 3 5",
		"1 6 7 4 6",
	))
	if !res.Grid.IsStable() {
		t.Error("final grid is not stable")
	}
}

func TestRunCascadeUsesLevelForEveryStep(t *testing.T) {
	src := &scripted{values: []int{8, 9, 10, 11, 8, 9}}
	res := RunCascade(chainGrid(t), 3, 12, DefaultScoreTable, src)
	if res.Points != 300 {
		t.Errorf("Points = %d, want 300", res.Points)
	}
}

func TestRunCascadeStableIsIdempotent(t *testing.T) {
	g := mustGrid(t,
		"0 1 2 3",
		"1 2 3 0",
		"2 3 0 1",
		"3 0 1 2",
	)
	res := RunCascade(g, 1, 4, DefaultScoreTable, &scripted{values: []int{0}})
	assertGrid(t, "Grid", res.Grid, g)
	if res.Points != 0 || len(res.Steps) != 0 {
		t.Errorf("stable grid scored %d in %d steps, want nothing", res.Points, len(res.Steps))
	}
}

func TestRunCascadeSeededReachesStable(t *testing.T) {
	for seed := int64(1); seed <= 20; seed++ {
		rng := rand.New(rand.NewSource(seed))
		res := RunCascade(crossGrid(t), 2, 5, DefaultScoreTable, rng)

		if !res.Grid.IsStable() {
			t.Fatalf("seed %d: grid not stable", seed)
		}
		if err := res.Grid.Validate(5); err != nil {
			t.Fatalf("seed %d: Validate() error = %v", seed, err)
		}
		if len(res.Steps) == 0 {
			t.Fatalf("seed %d: no steps", seed)
		}

		total := 0
		for i, step := range res.Steps {
			want := 0
			for _, a := range step.Alignments {
				want += ScoreFor(a.Len(), 2)
			}
			if step.Points != want {
				t.Errorf("seed %d step %d: Points = %d, want %d", seed, i, step.Points, want)
			}
			if step.Cleared < MinRun {
				t.Errorf("seed %d step %d: Cleared = %d, want at least %d", seed, i, step.Cleared, MinRun)
			}
			total += step.Points
		}
		if res.Points != total {
			t.Errorf("seed %d: Points = %d, want %d", seed, res.Points, total)
		}
		if res.Steps[0].Points != 200 {
			t.Errorf("seed %d: first step Points = %d, want 200", seed, res.Steps[0].Points)
		}
	}
}
