package core

import (
	"strconv"
	"strings"
	"testing"
)

// mustGrid builds a grid from space-separated rows; "." is Empty.
func mustGrid(t *testing.T, rows ...string) *Grid {
	t.Helper()
	tokens := make([][]Token, len(rows))
	for r, row := range rows {
		for _, field := range strings.Fields(row) {
			if field == "." {
				tokens[r] = append(tokens[r], Empty)
				continue
			}
			n, err := strconv.Atoi(field)
			if err != nil {
				t.Fatalf("row %d: %v", r, err)
			}
			tokens[r] = append(tokens[r], Token(n))
		}
	}
	g, err := FromRows(tokens)
	if err != nil {
		t.Fatalf("FromRows() error = %v", err)
	}
	return g
}

// assertGrid fails when got does not hold the same cells as want.
func assertGrid(t *testing.T, name string, got, want *Grid) {
	t.Helper()
	if !got.Equal(want) {
		t.Errorf("%s =\n%s\nwant\n%s", name, got, want)
	}
}

// scripted is a Source that replays fixed values.
type scripted struct {
	values []int
	next   int
}

func (s *scripted) Intn(n int) int {
	v := s.values[s.next%len(s.values)]
	s.next++
	return v % n
}
