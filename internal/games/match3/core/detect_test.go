package core

import (
	"errors"
	"reflect"
	"testing"
)

func TestDetect(t *testing.T) {
	tests := []struct {
		name string
		rows []string
		want []Alignment
	}{
		{
			name: "no runs",
			rows: []string{
				"0 1 2 3",
				"1 2 3 0",
				"2 3 0 1",
				"3 0 1 2",
			},
			want: nil,
		},
		{
			name: "horizontal run at row end",
			rows: []string{
				"0 1 1 1",
				"1 2 3 0",
				"2 3 0 2",
				"3 0 2 3",
			},
			want: []Alignment{
				{Axis: Horizontal, Token: 1, Cells: []Coord{C(0, 1), C(0, 2), C(0, 3)}},
			},
		},
		{
			name: "vertical run of four",
			rows: []string{
				"0 1 2 3",
				"0 2 3 1",
				"0 3 1 2",
				"0 1 2 3",
			},
			want: []Alignment{
				{Axis: Vertical, Token: 0, Cells: []Coord{C(0, 0), C(1, 0), C(2, 0), C(3, 0)}},
			},
		},
		{
			name: "empty cells break runs",
			rows: []string{
				"1 1 . 1 1",
				"0 2 3 4 0",
				". . . . .",
				"2 3 4 0 2",
				"3 4 0 2 3",
			},
			want: nil,
		},
		{
			name: "diagonals are ignored",
			rows: []string{
				"0 1 2",
				"1 0 2",
				"2 1 0",
			},
			want: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := mustGrid(t, tt.rows...)
			if got := Detect(g); !reflect.DeepEqual(got, tt.want) {
				t.Errorf("Detect() = %+v, want %+v", got, tt.want)
			}
			if got := HasAlignment(g); got != (len(tt.want) > 0) {
				t.Errorf("HasAlignment() = %v, want %v", got, len(tt.want) > 0)
			}
		})
	}
}

func TestDetectCrossIntersection(t *testing.T) {
	got := Detect(crossGrid(t))
	if len(got) != 2 {
		t.Fatalf("Detect() found %d alignments, want 2", len(got))
	}
	if got[0].Axis != Horizontal || got[1].Axis != Vertical {
		t.Errorf("axes = %s, %s, want horizontal then vertical", got[0].Axis, got[1].Axis)
	}
	if !got[0].Contains(C(2, 2)) || !got[1].Contains(C(2, 2)) {
		t.Error("both runs should contain the shared cell (2,2)")
	}
}

func TestCheckAlignments(t *testing.T) {
	g := crossGrid(t)

	tests := []struct {
		name       string
		alignments []Alignment
		wantErr    error
	}{
		{"detected runs", Detect(g), nil},
		{"none", []Alignment{}, nil},
		{
			name:       "off the grid",
			alignments: []Alignment{{Axis: Horizontal, Token: 2, Cells: []Coord{C(0, 3), C(0, 4), C(0, 5)}}},
			wantErr:    ErrOutOfBounds,
		},
		{
			name:       "wrong token",
			alignments: []Alignment{{Axis: Horizontal, Token: 1, Cells: []Coord{C(2, 0), C(2, 1), C(2, 2)}}},
			wantErr:    ErrInvalidMove,
		},
		{
			name:       "too short",
			alignments: []Alignment{{Axis: Horizontal, Token: 0, Cells: []Coord{C(2, 0), C(2, 1)}}},
			wantErr:    ErrInvalidMove,
		},
		{
			name:       "not contiguous",
			alignments: []Alignment{{Axis: Vertical, Token: 0, Cells: []Coord{C(0, 2), C(2, 2), C(1, 2)}}},
			wantErr:    ErrInvalidMove,
		},
		{
			name:       "wrong axis",
			alignments: []Alignment{{Axis: Vertical, Token: 0, Cells: []Coord{C(2, 0), C(2, 1), C(2, 2)}}},
			wantErr:    ErrInvalidMove,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := CheckAlignments(g, tt.alignments)
			if tt.wantErr == nil {
				if err != nil {
					t.Errorf("CheckAlignments() error = %v, want nil", err)
				}
				return
			}
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("CheckAlignments() error = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

// crossGrid has a horizontal and a vertical 3-run of token 0 sharing (2,2).
func crossGrid(t *testing.T) *Grid {
	return mustGrid(t,
		"1 2 0 3 4",
		"2 3 0 4 1",
		"0 0 0 1 2",
		"3 4 1 2 3",
		"4 1 2 3 4",
	)
}
