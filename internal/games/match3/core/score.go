package core

import "fmt"

// ScoreTable holds the tiered points for runs and the score span of one level.
// Points are multiplied by the current level.
type ScoreTable struct {
	Three     int // Points for a run of exactly 3
	Four      int // Points for a run of exactly 4
	FivePlus  int // Points for any run of 5 or more
	LevelStep int // Score needed per level
}

// DefaultScoreTable is the 50/150/500 table with 100 points per level.
var DefaultScoreTable = ScoreTable{
	Three:     50,
	Four:      150,
	FivePlus:  500,
	LevelStep: 100,
}

// Validate checks that the table can be used for scoring.
func (t ScoreTable) Validate() error {
	if t.Three < 0 || t.Four < 0 || t.FivePlus < 0 {
		return fmt.Errorf("%w: negative run points %d/%d/%d", ErrInvalidConfig, t.Three, t.Four, t.FivePlus)
	}
	if t.LevelStep <= 0 {
		return fmt.Errorf("%w: level step must be positive, got %d", ErrInvalidConfig, t.LevelStep)
	}
	return nil
}

// Points returns the score for one run of the given length at the given level.
// Runs shorter than MinRun score nothing.
func (t ScoreTable) Points(length, level int) int {
	if level < 1 {
		level = 1
	}
	switch {
	case length < MinRun:
		return 0
	case length == 3:
		return t.Three * level
	case length == 4:
		return t.Four * level
	default:
		return t.FivePlus * level
	}
}

// ScoreFor scores a run with DefaultScoreTable.
func ScoreFor(length, level int) int {
	return DefaultScoreTable.Points(length, level)
}

// Standing is the score/level/progress triple derived from a cumulative score.
// Score is the source of truth; Level and Progress are recomputed from it.
type Standing struct {
	Score    int
	Level    int
	Progress int // Percentage of the current level's range, clamped to [0, 100]
}

// NewStanding derives a standing from a score using DefaultScoreTable.
func NewStanding(score int) Standing {
	return DefaultScoreTable.Standing(score)
}

// Standing derives level and progress for a cumulative score.
// level = score/LevelStep + 1; progress = score / (level × LevelStep) × 100.
func (t ScoreTable) Standing(score int) Standing {
	if score < 0 {
		score = 0
	}
	step := t.LevelStep
	if step <= 0 {
		step = DefaultScoreTable.LevelStep
	}
	level := score/step + 1
	progress := score * 100 / (level * step)
	return Standing{
		Score:    score,
		Level:    level,
		Progress: clampPercent(progress),
	}
}

// Add returns the standing after awarding points with DefaultScoreTable.
// Negative points are ignored so the score never decreases.
func (s Standing) Add(points int) Standing {
	return s.AddWith(DefaultScoreTable, points)
}

// AddWith returns the standing after awarding points under the given table.
func (s Standing) AddWith(t ScoreTable, points int) Standing {
	if points < 0 {
		points = 0
	}
	return t.Standing(s.Score + points)
}

func clampPercent(p int) int {
	return max(0, min(100, p))
}
