package core

import (
	"errors"
	"testing"
)

func TestScoreFor(t *testing.T) {
	tests := []struct {
		length, level, want int
	}{
		{2, 1, 0},
		{3, 1, 50},
		{4, 1, 150},
		{5, 1, 500},
		{8, 1, 500},
		{3, 3, 150},
		{4, 3, 450},
		{5, 3, 1500},
		{6, 3, 1500},
		{3, 0, 50},
	}
	for _, tt := range tests {
		if got := ScoreFor(tt.length, tt.level); got != tt.want {
			t.Errorf("ScoreFor(%d, %d) = %d, want %d", tt.length, tt.level, got, tt.want)
		}
	}
}

func TestStanding(t *testing.T) {
	tests := []struct {
		score int
		want  Standing
	}{
		{0, Standing{Score: 0, Level: 1, Progress: 0}},
		{50, Standing{Score: 50, Level: 1, Progress: 50}},
		{99, Standing{Score: 99, Level: 1, Progress: 99}},
		{100, Standing{Score: 100, Level: 2, Progress: 50}},
		{150, Standing{Score: 150, Level: 2, Progress: 75}},
		{1000, Standing{Score: 1000, Level: 11, Progress: 90}},
		{-5, Standing{Score: 0, Level: 1, Progress: 0}},
	}
	for _, tt := range tests {
		if got := NewStanding(tt.score); got != tt.want {
			t.Errorf("NewStanding(%d) = %+v, want %+v", tt.score, got, tt.want)
		}
	}
}

func TestStandingAddNeverDecreases(t *testing.T) {
	s := NewStanding(120)
	if got := s.Add(-50).Score; got != 120 {
		t.Errorf("Add(-50).Score = %d, want 120", got)
	}
	if got := s.Add(50).Score; got != 170 {
		t.Errorf("Add(50).Score = %d, want 170", got)
	}
}

func TestScoreTableValidate(t *testing.T) {
	if err := DefaultScoreTable.Validate(); err != nil {
		t.Errorf("DefaultScoreTable.Validate() error = %v", err)
	}
	for _, table := range []ScoreTable{
		{Three: 1, Four: 1, FivePlus: 1},
		{Three: -1, LevelStep: 100},
	} {
		if err := table.Validate(); !errors.Is(err, ErrInvalidConfig) {
			t.Errorf("%+v.Validate() error = %v, want ErrInvalidConfig", table, err)
		}
	}
}
