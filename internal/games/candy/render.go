package candy

import (
	"fmt"
	"strings"

	"github.com/dev0926/candy-tiles/internal/core"
	"github.com/dev0926/candy-tiles/internal/match3"
)

const (
	cellWidth  = 3 // glyph plus one marker column on each side
	boardW     = match3.Columns*cellWidth + 2
	boardH     = match3.Rows + 2
	panelW     = 24
	minScreenW = boardW + 2 + panelW
	minScreenH = boardH + 3
)

// Render draws the game state to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	if g.tooSmall {
		g.renderTooSmall(dst)
		return
	}
	if g.loadErr != "" && g.session == nil {
		dst.DrawTextCenteredColored(g.screenH/2, "Cannot load levels: "+g.loadErr, core.ColorRed)
		return
	}

	board := core.NewRect((g.screenW-minScreenW)/2, 2, boardW, boardH)

	dst.DrawTextCenteredColored(0, g.Title(), core.ColorBrightYellow)
	dst.DrawHLine(board.X, 1, minScreenW, '─')

	g.renderBoard(dst, board)
	dst.DrawVLine(board.Right()+1, board.Y, boardH, '│')
	g.renderPanel(dst, board.Right()+3, board.Y)

	help := "arrows move  enter pick  h hint  p pause  q quit"
	dst.DrawTextCenteredColored(board.Bottom(), help, core.ColorGray)

	g.renderOverlays(dst, board)
}

// renderTooSmall shows a "window too small" message.
func (g *Game) renderTooSmall(dst *core.Screen) {
	y := g.screenH / 2
	dst.DrawTextCentered(y, "Window too small")
	dst.DrawTextCentered(y+1, fmt.Sprintf("Need %dx%d", minScreenW, minScreenH))
}

// renderBoard draws the frame, items and the cursor/selection markers.
func (g *Game) renderBoard(dst *core.Screen, board core.Rect) {
	dst.DrawBox(board)
	x0, y0 := board.X, board.Y

	tiles := g.session.Tiles()
	for i := range match3.CellCount {
		if !tiles[i] {
			continue
		}
		cx := x0 + 1 + (match3.Col(i)-1)*cellWidth
		cy := y0 + match3.Row(i)

		glyph, color := itemGlyph(g.board[i])
		if g.marks[i] {
			if g.phase == PhaseMatched {
				glyph = '✱'
			}
			color = core.ColorBrightWhite
		}
		dst.SetColored(cx+1, cy, glyph, color)

		left, right, markColor := g.markerFor(i)
		if left != 0 {
			dst.SetColored(cx, cy, left, markColor)
			dst.SetColored(cx+2, cy, right, markColor)
		}
	}
}

// markerFor returns the bracket pair drawn around cell i, if any.
func (g *Game) markerFor(i int) (left, right rune, c core.Color) {
	switch {
	case g.play != nil:
		return 0, 0, core.ColorDefault
	case i == g.selected:
		return '<', '>', core.ColorBrightYellow
	case i == g.cursor:
		return '[', ']', core.ColorBrightWhite
	case g.hint != nil && (i == g.hint.From || i == g.hint.To):
		return '(', ')', core.ColorCyan
	}
	return 0, 0, core.ColorDefault
}

// itemGlyph maps an item to its on-screen rune and colour.
func itemGlyph(it match3.Item) (rune, core.Color) {
	switch it.Kind {
	case match3.KindCandy:
		return '●', candyColor(it.Color)
	case match3.KindSuperCandy:
		return '◆', candyColor(it.Color)
	case match3.KindChocolate:
		return '■', core.ColorBrown
	default:
		return ' ', core.ColorDefault
	}
}

func candyColor(c match3.Color) core.Color {
	switch c {
	case match3.ColorRed:
		return core.ColorRed
	case match3.ColorOrange:
		return core.ColorOrange
	case match3.ColorYellow:
		return core.ColorYellow
	case match3.ColorGreen:
		return core.ColorGreen
	case match3.ColorBlue:
		return core.ColorBlue
	case match3.ColorPurple:
		return core.ColorMagenta
	default:
		return core.ColorDefault
	}
}

// renderPanel draws level info, score, moves and tasks next to the board.
func (g *Game) renderPanel(dst *core.Screen, x, y int) {
	name := g.level.Name
	if g.mode == ModeCampaign {
		name = fmt.Sprintf("%d. %s", g.level.ID, name)
	}
	dst.DrawTextColored(x, y, name, core.ColorBrightWhite)

	score := fmt.Sprintf("Score: %d", g.scorer.Score())
	if g.mode == ModeCampaign {
		score += fmt.Sprintf(" / %d", g.level.TargetScore)
	}
	dst.DrawText(x, y+1, score)

	moves := "Moves: ∞"
	if g.movesLeft >= 0 {
		moves = fmt.Sprintf("Moves: %d", g.movesLeft)
	}
	dst.DrawText(x, y+2, moves)

	line := y + 4
	if tasks := g.scorer.Tasks(); len(tasks) > 0 {
		dst.DrawText(x, line, "Tasks:")
		line++
		for _, t := range tasks {
			mark, c := "·", core.ColorDefault
			if t.Complete() {
				mark, c = "✓", core.ColorGreen
			}
			done := core.Min(t.Done, t.Task.Count)
			label := fmt.Sprintf("%s %d/%s", mark, done, t.Task)
			dst.DrawTextColored(x+1, line, label, c)
			line++
		}
	}

	if g.mode == ModeCampaign {
		projected := Stars(g.scorer.Score(), g.level.TargetScore, g.cfg.Scoring)
		dst.DrawTextColored(x, line+1, starString(projected), core.ColorBrightYellow)
	}

	if f := g.play.current(); f != nil && f.round > 1 {
		dst.DrawTextColored(x, y+boardH-2, fmt.Sprintf("Cascade x%d", f.round), core.ColorBrightRed)
	}
	if g.lastGain > 0 {
		dst.DrawTextColored(x, y+boardH-1, fmt.Sprintf("+%d", g.lastGain), core.ColorBrightYellow)
	}
}

func starString(n int) string {
	return strings.Repeat("★", n) + strings.Repeat("☆", 3-n)
}

// renderOverlays draws pause and end-of-level boxes over the board.
func (g *Game) renderOverlays(dst *core.Screen, board core.Rect) {
	var lines []string
	color := core.ColorBrightWhite

	switch {
	case g.paused:
		lines = []string{"PAUSED", "P to resume"}
	case g.won:
		color = core.ColorBrightYellow
		lines = []string{"LEVEL COMPLETE", starString(g.stars), fmt.Sprintf("Score %d", g.scorer.Score())}
		if g.hasNextLevel() {
			lines = append(lines, "Enter: next  R: replay")
		} else {
			lines = append(lines, "R: replay")
		}
	case g.gameOver && g.movesLeft == 0:
		color = core.ColorBrightRed
		lines = []string{"OUT OF MOVES", fmt.Sprintf("Score %d", g.scorer.Score()), "R: retry"}
	case g.gameOver:
		color = core.ColorBrightRed
		lines = []string{"GAME OVER", fmt.Sprintf("Score %d", g.scorer.Score()), "R: retry"}
	default:
		return
	}

	w := 0
	for _, l := range lines {
		w = core.Max(w, len([]rune(l)))
	}
	cx, cy := board.Center()
	box := core.NewRect(cx-(w+4)/2, cy-(len(lines)+2)/2, w+4, len(lines)+2)
	dst.DrawRect(box, ' ')
	dst.DrawBox(box)
	for i, l := range lines {
		lx := box.X + (box.W-len([]rune(l)))/2
		dst.DrawTextColored(lx, box.Y+1+i, l, color)
	}
}

func (g *Game) hasNextLevel() bool {
	if g.mode != ModeCampaign {
		return false
	}
	for i, lvl := range g.campaign {
		if lvl.ID == g.level.ID {
			return i+1 < len(g.campaign)
		}
	}
	return false
}
