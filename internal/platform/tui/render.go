package tui

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/mato/internal/app"
	"github.com/vovakirdan/mato/internal/core"
	"github.com/vovakirdan/mato/internal/games/worm"
)

// colorStyles maps core.Color to lipgloss styles.
var colorStyles = map[core.Color]lipgloss.Style{
	core.ColorDefault:  lipgloss.NewStyle(),
	core.ColorRed:      lipgloss.NewStyle().Foreground(lipgloss.Color("9")),
	core.ColorGreen:    lipgloss.NewStyle().Foreground(lipgloss.Color("2")),
	core.ColorBlue:     lipgloss.NewStyle().Foreground(lipgloss.Color("4")),
	core.ColorCyan:     lipgloss.NewStyle().Foreground(lipgloss.Color("#00C8C8")),
	core.ColorDarkCyan: lipgloss.NewStyle().Foreground(lipgloss.Color("#006464")),
	core.ColorWhite:    lipgloss.NewStyle().Foreground(lipgloss.Color("15")),
	core.ColorGray:     lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
}

// RenderScreen converts a Screen buffer to a styled string for display.
// Groups adjacent cells with the same color to minimize ANSI escape sequences.
func RenderScreen(s *core.Screen) string {
	var sb strings.Builder
	// Pre-allocate with extra space for ANSI codes
	sb.Grow(s.Width()*s.Height()*2 + s.Height())

	for y := 0; y < s.Height(); y++ {
		if y > 0 {
			sb.WriteRune('\n')
		}

		// Group consecutive cells with the same color for efficiency
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

// Arena cells are two characters wide so that they look square.
const cellWidth = 2

// Glyphs for arena cells.
const (
	glyphWall  = '█'
	glyphWorm  = '█'
	glyphApple = '●'
	glyphDead  = '▪'
)

// titleFont holds the block letters of the start screen title.
var titleFont = map[rune][]string{
	'M': {
		"█   █",
		"██ ██",
		"█ █ █",
		"█   █",
		"█   █",
	},
	'A': {
		" ███ ",
		"█   █",
		"█████",
		"█   █",
		"█   █",
	},
	'T': {
		"█████",
		"  █  ",
		"  █  ",
		"  █  ",
		"  █  ",
	},
	'O': {
		" ███ ",
		"█   █",
		"█   █",
		"█   █",
		" ███ ",
	},
}

const (
	title          = "MATO"
	titleGlyphW    = 5
	titleGlyphH    = 5
	titleLetterGap = 2
)

// DrawView renders v into s, replacing its previous content.
func DrawView(s *core.Screen, v app.View) {
	s.Clear()
	switch v.State {
	case app.StateStart:
		drawStart(s, v)
	case app.StatePlaying:
		drawPlaying(s, v)
	case app.StateGameOver:
		drawGameOver(s, v)
	}
}

// titleHighlight returns the index of the highlighted title letter.
func titleHighlight(elapsed, blink int) int {
	if blink <= 0 {
		return 0
	}
	return (elapsed / blink) % len(title)
}

func drawStart(s *core.Screen, v app.View) {
	highlight := titleHighlight(v.Elapsed, v.Timing.StartBlink)
	width := len(title)*titleGlyphW + (len(title)-1)*titleLetterGap
	y := s.Height()/2 - titleGlyphH

	if s.Width() < width || s.Height() < titleGlyphH+4 {
		// Not enough room for block letters
		x := (s.Width() - (2*len(title) - 1)) / 2
		for i, r := range title {
			s.SetColored(x+2*i, s.Height()/2-1, r, titleColor(i, highlight))
		}
		s.DrawTextCentered(s.Height()/2+1, "press any key", core.ColorGray)
		return
	}

	x := (s.Width() - width) / 2
	for i, r := range title {
		color := titleColor(i, highlight)
		for row, line := range titleFont[r] {
			col := 0
			for _, ch := range line {
				if ch != ' ' {
					s.SetColored(x+col, y+row, ch, color)
				}
				col++
			}
		}
		x += titleGlyphW + titleLetterGap
	}

	s.DrawTextCentered(y+titleGlyphH+2, "press any key to start", core.ColorWhite)
	s.DrawTextCentered(y+titleGlyphH+3, "arrows/wasd: steer  esc: back  q: quit", core.ColorGray)
}

func titleColor(i, highlight int) core.Color {
	if i == highlight {
		return core.ColorCyan
	}
	return core.ColorDarkCyan
}

// arenaOrigin returns the top-left screen position of the arena and whether
// the arena plus its status bar fit on the screen.
func arenaOrigin(s *core.Screen, g worm.Snapshot) (x, y int, ok bool) {
	w := g.Width * cellWidth
	h := g.Height + 1
	if s.Width() < w || s.Height() < h {
		return 0, 0, false
	}
	return (s.Width() - w) / 2, (s.Height() - h) / 2, true
}

func drawTooSmall(s *core.Screen, g worm.Snapshot) {
	y := s.Height()/2 - 1
	s.DrawTextCentered(y, "terminal too small", core.ColorWhite)
	s.DrawTextCentered(y+1, fmt.Sprintf("need %dx%d", g.Width*cellWidth, g.Height+1), core.ColorGray)
}

func drawPlaying(s *core.Screen, v app.View) {
	ox, oy, ok := arenaOrigin(s, v.Game)
	if !ok {
		drawTooSmall(s, v.Game)
		return
	}
	drawArena(s, ox, oy, v.Game, 0)
	drawStatus(s, ox, oy, v.Game, "esc: give up  q: quit")
}

// deadSegments returns how many worm segments, counted from the head, are
// shown dead elapsed milliseconds into the game-over screen.
func deadSegments(elapsed int, t app.Timing) int {
	if elapsed < t.GameOverDelay || t.GameOverBlink <= 0 {
		return 0
	}
	return (elapsed - t.GameOverDelay) / t.GameOverBlink
}

func drawGameOver(s *core.Screen, v app.View) {
	ox, oy, ok := arenaOrigin(s, v.Game)
	if !ok {
		drawTooSmall(s, v.Game)
		return
	}
	drawArena(s, ox, oy, v.Game, deadSegments(v.Elapsed, v.Timing))
	drawStatus(s, ox, oy, v.Game, "esc: continue")

	caption := " GAME OVER "
	cx := ox + (v.Game.Width*cellWidth-len(caption))/2
	s.DrawTextColored(cx, oy+v.Game.Height/2, caption, core.ColorRed)
}

// drawArena draws walls, apples and the worm. The first dead segments of the
// worm, counted from the head, are drawn as dead.
func drawArena(s *core.Screen, ox, oy int, g worm.Snapshot, dead int) {
	for y := 0; y < g.Height; y++ {
		for x := 0; x < g.Width; x++ {
			if x == 0 || y == 0 || x == g.Width-1 || y == g.Height-1 {
				drawCell(s, ox, oy, worm.Point{X: x, Y: y}, glyphWall, glyphWall, core.ColorBlue)
			}
		}
	}

	for _, a := range g.Apples {
		drawCell(s, ox, oy, a, glyphApple, ' ', core.ColorRed)
	}

	for i, p := range g.Worm {
		if i < dead {
			drawCell(s, ox, oy, p, glyphDead, ' ', core.ColorWhite)
			continue
		}
		drawCell(s, ox, oy, p, glyphWorm, glyphWorm, core.ColorGreen)
	}
}

func drawCell(s *core.Screen, ox, oy int, p worm.Point, left, right rune, c core.Color) {
	x := ox + p.X*cellWidth
	y := oy + p.Y
	s.SetColored(x, y, left, c)
	s.SetColored(x+1, y, right, c)
}

// drawStatus draws the status bar below the arena with the score right-aligned.
func drawStatus(s *core.Screen, ox, oy int, g worm.Snapshot, hint string) {
	y := oy + g.Height
	width := g.Width * cellWidth

	score := strconv.Itoa(g.Score)
	if len(hint)+len(score)+1 <= width {
		s.DrawTextColored(ox, y, hint, core.ColorGray)
	}
	s.DrawTextColored(ox+width-len(score), y, score, core.ColorWhite)
}
