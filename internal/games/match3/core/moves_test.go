package core

import (
	"reflect"
	"testing"
)

// hintGrid has exactly one productive swap: (0,2)<->(1,2) completes row 0.
func hintGrid(t *testing.T) *Grid {
	return mustGrid(t,
		"0 0 1 2",
		"3 4 0 5",
		"6 7 8 9",
		"10 11 12 13",
	)
}

// latinGrid holds each token once per row and column, so no swap can line up three.
func latinGrid(t *testing.T) *Grid {
	return mustGrid(t,
		"0 1 2 3",
		"1 2 3 0",
		"2 3 0 1",
		"3 0 1 2",
	)
}

func TestFindMoveUnique(t *testing.T) {
	g := hintGrid(t)
	before := g.Clone()

	m, ok := FindMove(g)
	if want := (Move{From: C(0, 2), To: C(1, 2)}); !ok || m != want {
		t.Errorf("FindMove() = %v, %v, want %v, true", m, ok, want)
	}
	if got := AllMoves(g); !reflect.DeepEqual(got, []Move{m}) {
		t.Errorf("AllMoves() = %v, want [%v]", got, m)
	}
	if IsDeadlocked(g) {
		t.Error("IsDeadlocked() = true")
	}
	assertGrid(t, "grid after FindMove()", g, before)
}

func TestFindMoveDeadlock(t *testing.T) {
	g := latinGrid(t)
	if m, ok := FindMove(g); ok || m != (Move{}) {
		t.Errorf("FindMove() = %v, %v, want zero Move, false", m, ok)
	}
	if got := AllMoves(g); len(got) != 0 {
		t.Errorf("AllMoves() = %v, want none", got)
	}
	if !IsDeadlocked(g) {
		t.Error("IsDeadlocked() = false")
	}
}

func TestFindMoveScanOrder(t *testing.T) {
	// Row 3 is completed by a horizontal swap, row 0 by a vertical one higher up.
	g := mustGrid(t,
		"0 0 1 2",
		"3 4 0 5",
		"6 7 8 9",
		"13 13 10 13",
	)
	moves := AllMoves(g)
	want := []Move{
		{From: C(3, 2), To: C(3, 3)},
		{From: C(0, 2), To: C(1, 2)},
	}
	if !reflect.DeepEqual(moves, want) {
		t.Fatalf("AllMoves() = %v, want %v", moves, want)
	}
	if m, _ := FindMove(g); m != moves[0] {
		t.Errorf("FindMove() = %v, want %v since horizontal pairs come first", m, moves[0])
	}
}

func TestFindMoveSameTokenSwap(t *testing.T) {
	// Swapping equal tokens keeps the standing runs, so the first pair counts.
	g := mustGrid(t,
		"0 0 0",
		"0 0 0",
		"0 0 0",
	)
	m, ok := FindMove(g)
	if want := (Move{From: C(0, 0), To: C(0, 1)}); !ok || m != want {
		t.Errorf("FindMove() = %v, %v, want %v, true", m, ok, want)
	}
	if got := len(AllMoves(g)); got != 12 {
		t.Errorf("len(AllMoves()) = %d, want every adjacent pair (12)", got)
	}
	if IsDeadlocked(g) {
		t.Error("IsDeadlocked() = true for a grid of one token")
	}
}
