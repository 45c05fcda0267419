package core

// Step records one iteration of a cascade. The grids form a restartable
// sequence a front end can replay for animation.
type Step struct {
	Alignments []Alignment // Runs detected at the start of the step
	Points     int         // Points awarded for those runs
	Cleared    int         // Distinct cells removed
	Resolved   *Grid       // After removal, with Empty holes
	Settled    *Grid       // After gravity
	Refilled   *Grid       // After refill
}

// CascadeResult is the outcome of running a cascade to a stable grid.
type CascadeResult struct {
	Grid   *Grid
	Points int
	Steps  []Step
}

// Cascades returns the number of resolve/gravity/refill iterations.
func (r CascadeResult) Cascades() int {
	return len(r.Steps)
}

// RunCascade repeats detect, resolve, gravity and refill until no alignment
// remains. Every step removes at least MinRun cells before refilling, and the
// number of steps is not capped. All steps score at the given level.
// A grid that is already stable is returned unchanged with zero points.
func RunCascade(g *Grid, level, tokenCount int, table ScoreTable, rng Source) CascadeResult {
	return cascadeFrom(g, Detect(g), level, tokenCount, table, rng)
}

// cascadeFrom runs the cascade starting with a known set of alignments.
func cascadeFrom(g *Grid, alignments []Alignment, level, tokenCount int, table ScoreTable, rng Source) CascadeResult {
	result := CascadeResult{Grid: g}
	for len(alignments) > 0 {
		resolved, points := Resolve(result.Grid, alignments, level, table)
		settled := ApplyGravity(resolved)
		refilled := Refill(settled, tokenCount, rng)

		result.Steps = append(result.Steps, Step{
			Alignments: alignments,
			Points:     points,
			Cleared:    len(ClearedCells(alignments)),
			Resolved:   resolved,
			Settled:    settled,
			Refilled:   refilled,
		})
		result.Points += points
		result.Grid = refilled

		alignments = Detect(refilled)
	}
	return result
}
