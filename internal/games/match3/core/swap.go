package core

import "fmt"

// SwapOutcome is the result of a structurally valid swap.
// An empty Alignments slice means the swap produced nothing and the caller
// should keep its pre-swap grid.
type SwapOutcome struct {
	Valid      bool
	Grid       *Grid // Candidate grid with the two cells exchanged
	Alignments []Alignment
}

// Productive returns true if the swap created at least one alignment.
func (o SwapOutcome) Productive() bool {
	return o.Valid && len(o.Alignments) > 0
}

// Adjacent returns true if a and b are 4-neighbours.
func Adjacent(a, b Coord) bool {
	return a.Manhattan(b) == 1
}

// TrySwap exchanges a and b on a copy of the grid and detects alignments on it.
// Out-of-bounds or non-adjacent cells yield an error wrapping ErrInvalidMove
// (and ErrOutOfBounds where it applies). The input grid is never modified.
func TrySwap(g *Grid, a, b Coord) (SwapOutcome, error) {
	for _, c := range []Coord{a, b} {
		if err := g.Check("swap", c); err != nil {
			return SwapOutcome{}, fmt.Errorf("%w: %w", ErrInvalidMove, err)
		}
	}
	if !Adjacent(a, b) {
		return SwapOutcome{}, fmt.Errorf("%w: %s and %s are not adjacent", ErrInvalidMove, a, b)
	}

	next := g.Clone()
	next.Swap(a, b)
	return SwapOutcome{
		Valid:      true,
		Grid:       next,
		Alignments: Detect(next),
	}, nil
}
