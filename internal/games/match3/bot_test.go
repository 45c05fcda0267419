package match3

import (
	"testing"

	"github.com/vovakirdan/tui-match3/internal/config"
)

func TestBotPlays(t *testing.T) {
	g := newTestGame(t, ModeClassic, config.DefaultMatch3Config())
	reports, err := NewBot(g, nil).Play(20)
	if err != nil {
		t.Fatalf("Play() error = %v", err)
	}
	if len(reports) != 20 {
		t.Fatalf("Play() made %d moves, want 20", len(reports))
	}

	total := 0
	for i, r := range reports {
		if !r.Productive {
			t.Errorf("move %d was not productive", r.Number)
		}
		if r.Number != i+1 {
			t.Errorf("reports[%d].Number = %d", i, r.Number)
		}
		total += r.Points
		if r.Score != total {
			t.Errorf("reports[%d].Score = %d, want running total %d", i, r.Score, total)
		}
	}

	res := g.Result()
	if res.Score != total || res.Moves != 20 {
		t.Errorf("Result() = %+v, want score %d and 20 moves", res, total)
	}
	if res.Level < 1 {
		t.Errorf("Result().Level = %d", res.Level)
	}
	if g.Snapshot().Attempts != 5 {
		t.Error("bot should never lose an attempt")
	}
	if g.anim.active() {
		t.Error("bot should skip cascade replays")
	}
}

func TestBotStopsAtGameOver(t *testing.T) {
	g := newTestGame(t, ModeClassic, config.DefaultMatch3Config())
	g.gameOver = true

	reports, err := NewBot(g, nil).Play(5)
	if err != nil {
		t.Fatalf("Play() error = %v", err)
	}
	if len(reports) != 0 {
		t.Errorf("Play() made %d moves after game over", len(reports))
	}
}

func TestBotNonPositiveMoves(t *testing.T) {
	for _, n := range []int{0, -1, -50} {
		g := newTestGame(t, ModeClassic, config.DefaultMatch3Config())
		before := g.Snapshot()

		reports, err := NewBot(g, nil).Play(n)
		if err != nil {
			t.Fatalf("Play(%d) error = %v", n, err)
		}
		if len(reports) != 0 {
			t.Errorf("Play(%d) made %d moves, want 0", n, len(reports))
		}
		if after := g.Snapshot(); after.Score != before.Score || after.Moves != before.Moves {
			t.Errorf("Play(%d) changed the game: %+v", n, after)
		}
	}
}
