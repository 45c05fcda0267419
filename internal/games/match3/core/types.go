// Package core implements the match-3 grid engine: alignment detection,
// resolution and scoring, gravity, refill, cascades, board generation and
// move finding. It is UI-agnostic, deterministic for a given random source,
// and never schedules delays of its own.
package core

import "fmt"

// Token identifies one matchable token type in [0, tokenCount).
type Token int

// Empty marks a cleared cell. It only exists between resolution and refill.
const Empty Token = -1

// IsEmpty returns true if the token marks a cleared cell.
func (t Token) IsEmpty() bool {
	return t == Empty
}

// Coord addresses a cell. Row 0 is the top row, Col 0 the leftmost column.
type Coord struct {
	Row int
	Col int
}

// C is a convenience constructor for Coord.
func C(row, col int) Coord {
	return Coord{Row: row, Col: col}
}

// String returns a string representation of the coordinate.
func (c Coord) String() string {
	return fmt.Sprintf("(%d,%d)", c.Row, c.Col)
}

// Manhattan returns the Manhattan distance to another coordinate.
func (c Coord) Manhattan(other Coord) int {
	dr := c.Row - other.Row
	dc := c.Col - other.Col
	if dr < 0 {
		dr = -dr
	}
	if dc < 0 {
		dc = -dc
	}
	return dr + dc
}

// Axis is the direction of an alignment.
type Axis uint8

const (
	Horizontal Axis = iota
	Vertical
)

// String returns the string representation of an axis.
func (a Axis) String() string {
	switch a {
	case Horizontal:
		return "horizontal"
	case Vertical:
		return "vertical"
	default:
		return "unknown"
	}
}

// Alignment is a maximal run of three or more identical tokens along one axis.
// Cells are ordered left to right (horizontal) or top to bottom (vertical).
type Alignment struct {
	Axis  Axis
	Token Token
	Cells []Coord
}

// Len returns the number of cells in the run.
func (a Alignment) Len() int {
	return len(a.Cells)
}

// Contains returns true if the run covers the given cell.
func (a Alignment) Contains(c Coord) bool {
	for _, cell := range a.Cells {
		if cell == c {
			return true
		}
	}
	return false
}

// Move is a swap of two adjacent cells that produces at least one alignment.
type Move struct {
	From Coord
	To   Coord
}

// String returns a string representation of the move.
func (m Move) String() string {
	return fmt.Sprintf("%s<->%s", m.From, m.To)
}

// Source is the random source used by generation and refill.
// *rand.Rand satisfies it; tests can script their own.
type Source interface {
	Intn(n int) int
}
