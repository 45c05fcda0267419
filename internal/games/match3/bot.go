package match3

import (
	"github.com/charmbracelet/log"
)

// MoveReport is one autoplay swap and the standing after it.
type MoveReport struct {
	SwapReport
	Number int
	Score  int
	Level  int
}

// Bot plays a session by always taking the hint move.
type Bot struct {
	game   *Game
	logger *log.Logger
}

// NewBot creates a bot for a game that has already been Reset.
// logger may be nil.
func NewBot(game *Game, logger *log.Logger) *Bot {
	return &Bot{game: game, logger: logger}
}

// Play makes up to n hinted swaps and stops early when the game ends.
// A non-positive n makes no swaps. Cascade replays are skipped.
func (b *Bot) Play(n int) ([]MoveReport, error) {
	n = max(n, 0)
	reports := make([]MoveReport, 0, n)
	for i := range n {
		if b.game.gameOver {
			b.debug("game over", "reason", b.game.reason, "after", i)
			break
		}

		move, ok := b.game.Hint()
		if !ok {
			b.debug("no move available", "after", i)
			break
		}

		rep, err := b.game.Swap(move.From, move.To)
		if err != nil {
			return reports, err
		}
		b.game.anim.stop()

		report := MoveReport{
			SwapReport: rep,
			Number:     i + 1,
			Score:      b.game.standing.Score,
			Level:      b.game.standing.Level,
		}
		reports = append(reports, report)

		b.debug("swap",
			"n", report.Number,
			"move", move.String(),
			"points", rep.Points,
			"cascades", rep.Steps,
			"score", report.Score,
			"level", report.Level,
			"reshuffled", rep.Reshuffled,
		)
	}
	return reports, nil
}

func (b *Bot) debug(msg string, keyvals ...any) {
	if b.logger != nil {
		b.logger.Debug(msg, keyvals...)
	}
}
