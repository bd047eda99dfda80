package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/brickbreak/internal/core"
	"github.com/vovakirdan/brickbreak/internal/game"
)

// Visual characters for game elements.
const (
	PaddleChar = '='
	BallChar   = '●'
	BrickChar  = '█'
)

// hudRows is the number of screen rows reserved above the playfield.
const hudRows = 2

// colorStyles maps core.Color to lipgloss styles. Brick tier colors keep
// the classic palette; everything else stays terminal-friendly.
var colorStyles = map[core.Color]lipgloss.Style{
	core.ColorDefault:      lipgloss.NewStyle(),
	core.ColorWhite:        lipgloss.NewStyle().Foreground(lipgloss.Color("7")),
	core.ColorYellow:       lipgloss.NewStyle().Foreground(lipgloss.Color("11")),
	core.ColorRed:          lipgloss.NewStyle().Foreground(lipgloss.Color("9")),
	core.ColorGray:         lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
	core.ColorBall:         lipgloss.NewStyle().Foreground(lipgloss.Color("#FFAA00")),
	core.ColorPaddle:       lipgloss.NewStyle().Foreground(lipgloss.Color("15")),
	core.ColorBrickTier1:   lipgloss.NewStyle().Foreground(lipgloss.Color("#4535AA")),
	core.ColorBrickTier2:   lipgloss.NewStyle().Foreground(lipgloss.Color("#ED639E")),
	core.ColorBrickTier3:   lipgloss.NewStyle().Foreground(lipgloss.Color("#8FE1A2")),
	core.ColorBrickNeutral: lipgloss.NewStyle().Foreground(lipgloss.Color("#CCCCCC")),
}

// fieldScale converts field units to screen cells for the playfield area
// below the HUD.
type fieldScale struct {
	sx, sy float64
	top    int
}

func newFieldScale(snap game.Snapshot, screenW, screenH int) fieldScale {
	playH := screenH - hudRows
	if playH < 1 {
		playH = 1
	}
	return fieldScale{
		sx:  float64(screenW) / snap.FieldW,
		sy:  float64(playH) / snap.FieldH,
		top: hudRows,
	}
}

func (f fieldScale) cellX(x float64) int {
	return int(x * f.sx)
}

func (f fieldScale) cellY(y float64) int {
	return f.top + int(y*f.sy)
}

// DrawSnapshot renders a session snapshot into the screen buffer.
func DrawSnapshot(dst *core.Screen, snap game.Snapshot) {
	dst.Clear()

	drawHUD(dst, snap)

	scale := newFieldScale(snap, dst.Width(), dst.Height())
	drawBricks(dst, snap, scale)
	drawPaddle(dst, snap, scale)
	drawBall(dst, snap, scale)
	drawOverlay(dst, snap)
}

// drawHUD draws the score, lives, and level indicators plus a separator.
func drawHUD(dst *core.Screen, snap game.Snapshot) {
	scoreText := fmt.Sprintf("Score: %d  Lives: %d", snap.Score, snap.Lives)
	dst.DrawTextColored(1, 0, scoreText, core.ColorWhite)

	levelText := fmt.Sprintf("Level: %d", snap.Level)
	dst.DrawTextColored(dst.Width()-len(levelText)-1, 0, levelText, core.ColorWhite)

	dst.DrawHLine(0, 1, dst.Width(), '─')
}

// drawBricks draws each brick as a filled run of cells in its tier color.
func drawBricks(dst *core.Screen, snap game.Snapshot, scale fieldScale) {
	for _, b := range snap.Bricks {
		left := scale.cellX(b.X - b.Width/2)
		right := scale.cellX(b.X + b.Width/2)
		y := scale.cellY(b.Y)

		for x := left; x <= right; x++ {
			dst.SetCell(x, y, BrickChar, b.Color)
		}
	}
}

func drawPaddle(dst *core.Screen, snap game.Snapshot, scale fieldScale) {
	left := scale.cellX(snap.Paddle.X - snap.Paddle.Width/2)
	right := scale.cellX(snap.Paddle.X + snap.Paddle.Width/2)
	y := scale.cellY(snap.Paddle.Y)

	for x := left; x <= right; x++ {
		dst.SetCell(x, y, PaddleChar, core.ColorPaddle)
	}
}

func drawBall(dst *core.Screen, snap game.Snapshot, scale fieldScale) {
	dst.SetCell(scale.cellX(snap.Ball.X), scale.cellY(snap.Ball.Y), BallChar, core.ColorBall)
}

// drawOverlay draws state prompts and message boxes.
func drawOverlay(dst *core.Screen, snap game.Snapshot) {
	switch snap.State {
	case game.StateServe:
		if snap.Level > 1 {
			dst.DrawTextCenteredColored(dst.Height()/2-1, fmt.Sprintf("LEVEL %d", snap.Level), core.ColorYellow)
		}
		dst.DrawTextCenteredColored(dst.Height()/2+1, "Press SPACE to start", core.ColorYellow)

	case game.StatePaused:
		drawCenteredBox(dst, "PAUSED", "Press P to resume")

	case game.StateGameOver:
		subtitle := fmt.Sprintf("Score: %d  |  Press R to restart", snap.Score)
		drawCenteredBox(dst, "GAME OVER", subtitle)
	}
}

// drawCenteredBox draws a centered message box.
func drawCenteredBox(dst *core.Screen, title, subtitle string) {
	w := dst.Width()
	h := dst.Height()

	boxW := core.Max(len(title), len(subtitle)) + 4
	boxH := 5
	boxX := (w - boxW) / 2
	boxY := (h - boxH) / 2

	box := core.NewRect(boxX, boxY, boxW, boxH)
	dst.DrawRect(box, ' ', core.ColorDefault)
	dst.DrawBox(box)

	titleX := boxX + (boxW-len(title))/2
	dst.DrawTextColored(titleX, boxY+1, title, core.ColorRed)

	subtitleX := boxX + (boxW-len(subtitle))/2
	dst.DrawTextColored(subtitleX, boxY+3, subtitle, core.ColorWhite)
}

// RenderScreen converts a Screen buffer to a styled string for display.
// Groups adjacent cells with the same color to minimize ANSI escape
// sequences.
func RenderScreen(s *core.Screen) string {
	var sb strings.Builder
	sb.Grow(s.Width()*s.Height()*2 + s.Height())

	for y := 0; y < s.Height(); y++ {
		if y > 0 {
			sb.WriteRune('\n')
		}

		x := 0
		for x < s.Width() {
			startColor := s.GetCell(x, y).Color

			var run strings.Builder
			for x < s.Width() {
				cell := s.GetCell(x, y)
				if cell.Color != startColor {
					break
				}
				run.WriteRune(cell.Rune)
				x++
			}

			style, ok := colorStyles[startColor]
			if !ok {
				style = colorStyles[core.ColorDefault]
			}
			sb.WriteString(style.Render(run.String()))
		}
	}
	return sb.String()
}
