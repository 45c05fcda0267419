package core

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidMove is returned for swaps of non-adjacent cells and for
	// alignments that are not runs on the grid.
	// The grid is never modified when it is returned.
	ErrInvalidMove = errors.New("invalid move")

	// ErrOutOfBounds is returned (or carried by a panic) for coordinates outside the grid.
	ErrOutOfBounds = errors.New("coordinate out of bounds")

	// ErrGenerationNonconvergence is returned when no alignment-free board was found
	// within the attempt limit. Usually the token count is too low for the grid size.
	ErrGenerationNonconvergence = errors.New("grid generation did not converge")

	// ErrInvalidConfig is returned for unusable sizes, token counts or score tables.
	ErrInvalidConfig = errors.New("invalid engine config")
)

// CoordError reports an out-of-bounds coordinate passed to a grid operation.
type CoordError struct {
	Op    string
	Coord Coord
	Size  int
}

func (e *CoordError) Error() string {
	return fmt.Sprintf("%s: %s outside %dx%d grid", e.Op, e.Coord, e.Size, e.Size)
}

// Unwrap lets errors.Is match ErrOutOfBounds.
func (e *CoordError) Unwrap() error {
	return ErrOutOfBounds
}
