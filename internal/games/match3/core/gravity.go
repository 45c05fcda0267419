package core

// ApplyGravity compacts every column toward the bottom row, keeping the
// relative order of its tokens, and leaves the Empty cells at the top.
// The input grid is not modified.
func ApplyGravity(g *Grid) *Grid {
	next := g.Clone()
	for col := range next.Size {
		write := next.Size - 1
		for row := next.Size - 1; row >= 0; row-- {
			t := g.Cells[g.index(C(row, col))]
			if t.IsEmpty() {
				continue
			}
			next.Cells[next.index(C(write, col))] = t
			write--
		}
		for row := write; row >= 0; row-- {
			next.Cells[next.index(C(row, col))] = Empty
		}
	}
	return next
}

// Refill replaces every Empty cell with a random token in [0, tokenCount),
// top row first, left to right. It does not check for new alignments.
// The input grid is not modified.
func Refill(g *Grid, tokenCount int, rng Source) *Grid {
	next := g.Clone()
	for i, t := range next.Cells {
		if t.IsEmpty() {
			next.Cells[i] = Token(rng.Intn(tokenCount))
		}
	}
	return next
}
