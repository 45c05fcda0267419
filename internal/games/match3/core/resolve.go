package core

import "github.com/kamstrup/intmap"

// ClearedCells returns the distinct cells covered by the alignments, in the
// order they are first seen. A cell shared by a horizontal and a vertical run
// appears once.
func ClearedCells(alignments []Alignment) []Coord {
	total := 0
	for _, a := range alignments {
		total += a.Len()
	}
	seen := intmap.New[int, Coord](total)
	cells := make([]Coord, 0, total)
	for _, a := range alignments {
		for _, c := range a.Cells {
			key := c.Row<<16 | c.Col
			if _, ok := seen.Get(key); ok {
				continue
			}
			seen.Put(key, c)
			cells = append(cells, c)
		}
	}
	return cells
}

// Resolve clears every cell covered by the alignments and returns the new grid
// with Empty holes plus the points awarded. Every alignment is scored on its
// own, so a shared cell contributes to each run it belongs to, but it is
// removed only once. The input grid is not modified; gravity is not applied.
func Resolve(g *Grid, alignments []Alignment, level int, table ScoreTable) (*Grid, int) {
	next := g.Clone()
	points := 0
	for _, a := range alignments {
		points += table.Points(a.Len(), level)
	}
	for _, c := range ClearedCells(alignments) {
		next.Set(c, Empty)
	}
	return next, points
}
