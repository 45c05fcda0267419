package match3

import (
	"fmt"
	"unicode/utf8"

	platformcore "github.com/vovakirdan/tui-match3/internal/core"
	"github.com/vovakirdan/tui-match3/internal/games/match3/core"
)

const (
	cellWidth    = 3 // Marker, glyph, marker
	hudHeight    = 3
	footerHeight = 2
)

var tokenGlyphs = []rune{'●', '▲', '■', '◆', '★', '♥', '♣', '♠', '✚', '✖'}

var tokenColors = []platformcore.Color{
	platformcore.ColorRed,
	platformcore.ColorGreen,
	platformcore.ColorYellow,
	platformcore.ColorBlue,
	platformcore.ColorMagenta,
	platformcore.ColorCyan,
	platformcore.ColorOrange,
	platformcore.ColorWhite,
	platformcore.ColorGray,
	platformcore.ColorBrightWhite,
}

// TokenGlyph returns the rune drawn for a token.
func TokenGlyph(t core.Token) rune {
	switch {
	case t.IsEmpty():
		return '·'
	case int(t) < len(tokenGlyphs):
		return tokenGlyphs[t]
	default:
		return rune('a' + int(t) - len(tokenGlyphs))
	}
}

// TokenColor returns the colour a token is drawn in.
func TokenColor(t core.Token) platformcore.Color {
	if t.IsEmpty() {
		return platformcore.ColorGray
	}
	return tokenColors[int(t)%len(tokenColors)]
}

// Render draws the game state to the screen.
func (g *Game) Render(dst *platformcore.Screen) {
	dst.Clear()

	if g.tooSmall {
		g.renderTooSmall(dst)
		return
	}
	screen := platformcore.NewRect(0, 0, dst.Width(), dst.Height())
	if g.grid == nil {
		g.drawOverlay(dst, screen, "CANNOT START", g.reason, "Check the config and press R")
		return
	}

	board := g.boardRect()
	g.renderHUD(dst, board)
	g.renderBoard(dst, board)
	g.renderFooter(dst, board.Bottom())
	g.renderOverlays(dst, board)
}

// boardRect is the framed grid, centred horizontally below the HUD.
func (g *Game) boardRect() platformcore.Rect {
	size := g.grid.Size
	r := platformcore.CenteredRect(g.runtime.ScreenW, 0, size*cellWidth+2, size+2)
	r.Y = hudHeight
	return r
}

// renderTooSmall shows a "window too small" message.
func (g *Game) renderTooSmall(dst *platformcore.Screen) {
	y := g.runtime.ScreenH / 2
	dst.DrawTextCentered(y, "Window too small")
	dst.DrawTextCentered(y+1, "Please resize terminal")
}

// renderHUD draws title, score, level, attempts and the gauge value.
func (g *Game) renderHUD(dst *platformcore.Screen, board platformcore.Rect) {
	dst.DrawTextCenteredColored(0, g.Title(), platformcore.ColorBrightWhite)

	score := fmt.Sprintf("Score: %d", g.standing.Score)
	level := fmt.Sprintf("Level %d", g.standing.Level)
	dst.DrawText(board.X, 1, score)
	dst.DrawText(board.Right()-len(level), 1, level)

	var left string
	switch {
	case g.mode == ModeZen:
		left = "Zen"
	case g.cfg.Session.Attempts == 0:
		left = "Attempts: ∞"
	default:
		left = fmt.Sprintf("Attempts: %d/%d", g.attempts, g.cfg.Session.Attempts)
	}
	attemptsColor := platformcore.ColorDefault
	if g.mode == ModeClassic && g.cfg.Session.Attempts > 0 && g.attempts <= 1 {
		attemptsColor = platformcore.ColorRed
	}
	dst.DrawTextColored(board.X, 2, left, attemptsColor)

	progress := fmt.Sprintf("%d%%", g.progress)
	dst.DrawText(board.Right()-len(progress), 2, progress)
}

// renderBoard draws the framed grid with cursor, selection and hint markers.
func (g *Game) renderBoard(dst *platformcore.Screen, board platformcore.Rect) {
	size := g.grid.Size
	dst.DrawBox(board, platformcore.ColorGray)

	shown := g.grid
	var matched []core.Coord
	if f, ok := g.anim.current(); ok {
		shown = f.grid
		matched = f.matched
	}

	for r := range size {
		for c := range size {
			pos := core.C(r, c)
			x := board.X + 1 + c*cellWidth
			y := board.Y + 1 + r

			t := shown.At(pos)
			dst.SetColored(x+1, y, TokenGlyph(t), TokenColor(t))

			left, right, color := g.markers(pos, matched)
			if left != ' ' {
				dst.SetColored(x, y, left, color)
				dst.SetColored(x+2, y, right, color)
			}
		}
	}
}

// markers picks the brackets drawn around a cell.
func (g *Game) markers(pos core.Coord, matched []core.Coord) (rune, rune, platformcore.Color) {
	for _, m := range matched {
		if m == pos {
			return '*', '*', platformcore.ColorBrightWhite
		}
	}
	switch {
	case pos == g.cursor:
		return '[', ']', platformcore.ColorBrightWhite
	case g.hasSelected && pos == g.selected:
		return '<', '>', platformcore.ColorYellow
	case g.hint != nil && (pos == g.hint.From || pos == g.hint.To):
		return '(', ')', platformcore.ColorCyan
	}
	return ' ', ' ', platformcore.ColorDefault
}

// renderFooter draws the outcome of the last swap or the current hint.
func (g *Game) renderFooter(dst *platformcore.Screen, y int) {
	var msg string
	color := platformcore.ColorDefault

	switch {
	case g.moves == 0 && g.failed == 0:
		msg = "Select a token, then an adjacent one to swap"
	case g.last.Productive && g.last.Steps > 1:
		msg = fmt.Sprintf("+%d  cascade x%d", g.last.Points, g.last.Steps)
		color = platformcore.ColorGreen
	case g.last.Productive:
		msg = fmt.Sprintf("+%d", g.last.Points)
		color = platformcore.ColorGreen
	case g.mode == ModeClassic && g.cfg.Session.Attempts > 0:
		msg = "No match  -1 attempt"
		color = platformcore.ColorRed
	default:
		msg = "No match"
	}
	if g.last.LevelUp {
		msg += "  LEVEL UP!"
		color = platformcore.ColorYellow
	}
	if g.last.Reshuffled {
		msg += "  (reshuffled)"
	}
	dst.DrawTextCenteredColored(y, msg, color)

	if g.hint != nil {
		dst.DrawTextCenteredColored(y+1, "Hint: "+g.hint.String(), platformcore.ColorCyan)
	}
}

// renderOverlays draws pause and game over boxes over the board.
func (g *Game) renderOverlays(dst *platformcore.Screen, board platformcore.Rect) {
	if g.paused {
		g.drawOverlay(dst, board, "PAUSED", "Press P to resume")
		return
	}
	if g.gameOver {
		g.drawOverlay(dst, board,
			"GAME OVER",
			g.reason,
			fmt.Sprintf("Score %d  Level %d", g.standing.Score, g.standing.Level),
			"Press R to restart")
	}
}

// drawOverlay draws a text box centred on area. The box may overhang a small area.
func (g *Game) drawOverlay(dst *platformcore.Screen, area platformcore.Rect, lines ...string) {
	maxLen := 0
	for _, line := range lines {
		maxLen = max(maxLen, utf8.RuneCountInString(line))
	}

	boxW, boxH := maxLen+4, len(lines)+2
	box := platformcore.NewRect(area.X+(area.W-boxW)/2, area.Y+(area.H-boxH)/2, boxW, boxH)

	for y := box.Y; y < box.Bottom(); y++ {
		dst.DrawHLine(box.X, y, box.W, ' ', platformcore.ColorDefault)
	}
	dst.DrawBox(box, platformcore.ColorBrightWhite)

	centerX := box.X + box.W/2
	for i, line := range lines {
		dst.DrawText(centerX-utf8.RuneCountInString(line)/2, box.Y+1+i, line)
	}
}
