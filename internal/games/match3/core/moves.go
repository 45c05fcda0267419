package core

// FindMove returns the first adjacent swap that produces an alignment.
// Horizontal pairs are tried row by row from the top, left to right; then
// vertical pairs column by column from the left, top to bottom.
// It returns false when the grid is deadlocked. The grid is not modified.
func FindMove(g *Grid) (Move, bool) {
	var found Move
	ok := false
	eachProductiveSwap(g, func(m Move) bool {
		found, ok = m, true
		return false
	})
	return found, ok
}

// AllMoves returns every productive adjacent swap in FindMove's scan order.
func AllMoves(g *Grid) []Move {
	var moves []Move
	eachProductiveSwap(g, func(m Move) bool {
		moves = append(moves, m)
		return true
	})
	return moves
}

// IsDeadlocked returns true if no adjacent swap produces an alignment.
func IsDeadlocked(g *Grid) bool {
	_, ok := FindMove(g)
	return !ok
}

// eachProductiveSwap tries every adjacent pair once on a scratch copy, undoing
// each swap, and calls fn for the productive ones until fn returns false.
// A swap counts as productive when the swapped grid has any alignment, so on a
// grid that already holds a run every pair qualifies.
func eachProductiveSwap(g *Grid, fn func(Move) bool) {
	scratch := g.Clone()
	try := func(a, b Coord) bool {
		scratch.Swap(a, b)
		productive := HasAlignment(scratch)
		scratch.Swap(a, b)
		if productive {
			return fn(Move{From: a, To: b})
		}
		return true
	}

	for row := range g.Size {
		for col := 0; col+1 < g.Size; col++ {
			if !try(C(row, col), C(row, col+1)) {
				return
			}
		}
	}
	for col := range g.Size {
		for row := 0; row+1 < g.Size; row++ {
			if !try(C(row, col), C(row+1, col)) {
				return
			}
		}
	}
}
