package core

import (
	"fmt"
	"strings"
)

// Grid is a square board of tokens.
// Cells are stored in row-major order: index = row*Size + col.
type Grid struct {
	Size  int     // Width and height of the board
	Cells []Token // Flat array of cells, length Size*Size
}

// NewGrid creates a size×size grid with every cell Empty.
func NewGrid(size int) *Grid {
	g := &Grid{
		Size:  size,
		Cells: make([]Token, size*size),
	}
	for i := range g.Cells {
		g.Cells[i] = Empty
	}
	return g
}

// FromRows builds a grid from a square slice of rows.
func FromRows(rows [][]Token) (*Grid, error) {
	size := len(rows)
	g := NewGrid(size)
	for r, row := range rows {
		if len(row) != size {
			return nil, fmt.Errorf("%w: row %d has %d cells, want %d", ErrInvalidConfig, r, len(row), size)
		}
		copy(g.Cells[r*size:(r+1)*size], row)
	}
	return g, nil
}

// index converts a coordinate to a flat array index.
func (g *Grid) index(c Coord) int {
	return c.Row*g.Size + c.Col
}

// coord converts a flat array index back to a coordinate.
func (g *Grid) coord(i int) Coord {
	return C(i/g.Size, i%g.Size)
}

// InBounds returns true if the coordinate is within the grid.
func (g *Grid) InBounds(c Coord) bool {
	return c.Row >= 0 && c.Row < g.Size && c.Col >= 0 && c.Col < g.Size
}

// Check returns a *CoordError if the coordinate is outside the grid.
func (g *Grid) Check(op string, c Coord) error {
	if !g.InBounds(c) {
		return &CoordError{Op: op, Coord: c, Size: g.Size}
	}
	return nil
}

// Get returns the token at c, or an error if c is out of bounds.
func (g *Grid) Get(c Coord) (Token, error) {
	if err := g.Check("get", c); err != nil {
		return Empty, err
	}
	return g.Cells[g.index(c)], nil
}

// At returns the token at c. It panics with a *CoordError when c is out of
// bounds; callers that accept untrusted coordinates use Get instead.
func (g *Grid) At(c Coord) Token {
	if err := g.Check("at", c); err != nil {
		panic(err)
	}
	return g.Cells[g.index(c)]
}

// Set stores a token at c. It panics with a *CoordError when c is out of bounds.
func (g *Grid) Set(c Coord, t Token) {
	if err := g.Check("set", c); err != nil {
		panic(err)
	}
	g.Cells[g.index(c)] = t
}

// Swap exchanges the tokens at a and b in place.
func (g *Grid) Swap(a, b Coord) {
	if !g.InBounds(a) || !g.InBounds(b) {
		panic(&CoordError{Op: "swap", Coord: pickOutside(g, a, b), Size: g.Size})
	}
	ia, ib := g.index(a), g.index(b)
	g.Cells[ia], g.Cells[ib] = g.Cells[ib], g.Cells[ia]
}

func pickOutside(g *Grid, a, b Coord) Coord {
	if !g.InBounds(a) {
		return a
	}
	return b
}

// Clone returns a deep copy of the grid.
func (g *Grid) Clone() *Grid {
	cells := make([]Token, len(g.Cells))
	copy(cells, g.Cells)
	return &Grid{
		Size:  g.Size,
		Cells: cells,
	}
}

// Equal returns true if two grids have the same size and contents.
func (g *Grid) Equal(other *Grid) bool {
	if other == nil || g.Size != other.Size {
		return false
	}
	for i, t := range g.Cells {
		if t != other.Cells[i] {
			return false
		}
	}
	return true
}

// Rows returns a copy of the grid as a slice of rows.
func (g *Grid) Rows() [][]Token {
	rows := make([][]Token, g.Size)
	for r := range g.Size {
		rows[r] = make([]Token, g.Size)
		copy(rows[r], g.Cells[r*g.Size:(r+1)*g.Size])
	}
	return rows
}

// EmptyCount returns the number of Empty cells.
func (g *Grid) EmptyCount() int {
	count := 0
	for _, t := range g.Cells {
		if t.IsEmpty() {
			count++
		}
	}
	return count
}

// IsStable returns true if the grid has no Empty cells and no alignments.
func (g *Grid) IsStable() bool {
	return g.EmptyCount() == 0 && !HasAlignment(g)
}

// Validate checks that every cell holds a token in [0, tokenCount).
func (g *Grid) Validate(tokenCount int) error {
	if len(g.Cells) != g.Size*g.Size {
		return fmt.Errorf("%w: %d cells for size %d", ErrInvalidConfig, len(g.Cells), g.Size)
	}
	for i, t := range g.Cells {
		if t < 0 || int(t) >= tokenCount {
			return fmt.Errorf("%w: cell %s holds %d, want [0,%d)", ErrInvalidConfig, g.coord(i), t, tokenCount)
		}
	}
	return nil
}

// String renders the grid one row per line, '.' for Empty cells.
// Tokens above 9 are rendered as letters.
func (g *Grid) String() string {
	var sb strings.Builder
	sb.Grow(g.Size*g.Size + g.Size)
	for r := range g.Size {
		if r > 0 {
			sb.WriteByte('\n')
		}
		for c := range g.Size {
			sb.WriteByte(tokenChar(g.Cells[r*g.Size+c]))
		}
	}
	return sb.String()
}

func tokenChar(t Token) byte {
	switch {
	case t.IsEmpty():
		return '.'
	case t < 10:
		return byte('0' + t)
	case t < 36:
		return byte('a' + t - 10)
	default:
		return '?'
	}
}
