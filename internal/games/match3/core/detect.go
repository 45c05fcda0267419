package core

import "fmt"

// MinRun is the shortest run that counts as an alignment.
const MinRun = 3

// Detect scans every row left to right and every column top to bottom and
// returns one Alignment per maximal run of MinRun or more identical tokens.
// Rows are reported before columns. A cell at a cross intersection appears in
// both its horizontal and its vertical alignment; runs are never merged.
// Empty cells break runs.
func Detect(g *Grid) []Alignment {
	var alignments []Alignment
	for r := range g.Size {
		alignments = scanLine(g, C(r, 0), 0, 1, Horizontal, alignments)
	}
	for c := range g.Size {
		alignments = scanLine(g, C(0, c), 1, 0, Vertical, alignments)
	}
	return alignments
}

// HasAlignment returns true if Detect would report at least one alignment.
func HasAlignment(g *Grid) bool {
	for r := range g.Size {
		if lineHasRun(g, C(r, 0), 0, 1) {
			return true
		}
	}
	for c := range g.Size {
		if lineHasRun(g, C(0, c), 1, 0) {
			return true
		}
	}
	return false
}

// scanLine walks one row or column and appends the runs it closes.
func scanLine(g *Grid, start Coord, dr, dc int, axis Axis, out []Alignment) []Alignment {
	streakStart := 0
	streakToken := Empty

	flush := func(end int) {
		if streakToken.IsEmpty() || end-streakStart < MinRun {
			return
		}
		cells := make([]Coord, 0, end-streakStart)
		for i := streakStart; i < end; i++ {
			cells = append(cells, C(start.Row+i*dr, start.Col+i*dc))
		}
		out = append(out, Alignment{Axis: axis, Token: streakToken, Cells: cells})
	}

	for i := range g.Size {
		t := g.Cells[g.index(C(start.Row+i*dr, start.Col+i*dc))]
		if t == streakToken && !t.IsEmpty() {
			continue
		}
		flush(i)
		streakStart = i
		streakToken = t
	}
	flush(g.Size)

	return out
}

// lineHasRun reports whether a row or column holds a run without allocating.
func lineHasRun(g *Grid, start Coord, dr, dc int) bool {
	run := 0
	prev := Empty
	for i := range g.Size {
		t := g.Cells[g.index(C(start.Row+i*dr, start.Col+i*dc))]
		if t.IsEmpty() || t != prev {
			run = 1
			prev = t
			continue
		}
		run++
		if run >= MinRun {
			return true
		}
	}
	return false
}

// CheckAlignments reports the first alignment that is not a run on g: fewer than
// MinRun cells, a cell off the grid, a cell not holding the alignment's token,
// or cells that do not step by one along the axis in order.
// Off-grid cells yield a *CoordError; the other cases wrap ErrInvalidMove.
func CheckAlignments(g *Grid, alignments []Alignment) error {
	for i, a := range alignments {
		if a.Len() < MinRun {
			return fmt.Errorf("%w: alignment %d has %d cells, want at least %d", ErrInvalidMove, i, a.Len(), MinRun)
		}
		if a.Token.IsEmpty() {
			return fmt.Errorf("%w: alignment %d has no token", ErrInvalidMove, i)
		}
		for _, c := range a.Cells {
			if err := g.Check("resolve", c); err != nil {
				return err
			}
		}
		first := a.Cells[0]
		for j, c := range a.Cells {
			if t := g.At(c); t != a.Token {
				return fmt.Errorf("%w: alignment %d expects token %d at %s, found %d", ErrInvalidMove, i, a.Token, c, t)
			}
			want := C(first.Row, first.Col+j)
			if a.Axis == Vertical {
				want = C(first.Row+j, first.Col)
			}
			if c != want {
				return fmt.Errorf("%w: alignment %d is not a %s run at %s", ErrInvalidMove, i, a.Axis, c)
			}
		}
	}
	return nil
}
