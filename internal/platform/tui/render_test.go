package tui

import (
	"strings"
	"testing"

	"github.com/vovakirdan/mato/internal/app"
	"github.com/vovakirdan/mato/internal/core"
	"github.com/vovakirdan/mato/internal/games/worm"
)

// screenRow returns line y of the plain screen text.
func screenRow(s *core.Screen, y int) string {
	lines := strings.Split(s.String(), "\n")
	if y < 0 || y >= len(lines) {
		return ""
	}
	return lines[y]
}

func testSnapshot() worm.Snapshot {
	return worm.Snapshot{
		Width:  20,
		Height: 15,
		Worm:   []worm.Point{{X: 10, Y: 10}, {X: 9, Y: 10}, {X: 8, Y: 10}},
		Apples: []worm.Point{{X: 3, Y: 4}},
		Score:  42,
		Alive:  true,
	}
}

func TestTitleHighlight(t *testing.T) {
	tests := []struct {
		elapsed int
		want    int
	}{
		{0, 0},
		{249, 0},
		{250, 1},
		{750, 3},
		{1000, 0},
	}
	for _, tt := range tests {
		if got := titleHighlight(tt.elapsed, 250); got != tt.want {
			t.Errorf("titleHighlight(%d) = %d, want %d", tt.elapsed, got, tt.want)
		}
	}
}

func TestDrawStartHighlightsLetter(t *testing.T) {
	s := core.NewScreen(80, 24)
	v := app.View{State: app.StateStart, Timing: app.DefaultTiming()}

	// Title is 26 columns wide, centered: M at x=27, A at x=34; top row y=7
	DrawView(s, v)
	if c := s.GetCell(27, 7); c.Rune != '█' || c.Color != core.ColorCyan {
		t.Errorf("M at elapsed 0 = %+v, want highlighted block", c)
	}
	if c := s.GetCell(35, 7); c.Color != core.ColorDarkCyan {
		t.Errorf("A at elapsed 0 = %+v, want dim", c)
	}

	v.Elapsed = 250
	DrawView(s, v)
	if c := s.GetCell(27, 7); c.Color != core.ColorDarkCyan {
		t.Errorf("M at elapsed 250 = %+v, want dim", c)
	}
	if c := s.GetCell(35, 7); c.Color != core.ColorCyan {
		t.Errorf("A at elapsed 250 = %+v, want highlighted", c)
	}
}

func TestDrawStartNarrowScreen(t *testing.T) {
	s := core.NewScreen(20, 6)
	DrawView(s, app.View{State: app.StateStart, Timing: app.DefaultTiming()})

	if !strings.Contains(screenRow(s, 2), "M A T O") {
		t.Errorf("narrow title row = %q", screenRow(s, 2))
	}
}

func TestDrawPlaying(t *testing.T) {
	s := core.NewScreen(80, 24)
	g := testSnapshot()
	DrawView(s, app.View{State: app.StatePlaying, Game: g})

	// Arena is 40x16 with status bar, origin (20, 4)
	if c := s.GetCell(20, 4); c.Rune != glyphWall || c.Color != core.ColorBlue {
		t.Errorf("top-left wall = %+v", c)
	}
	if c := s.GetCell(59, 18); c.Rune != glyphWall {
		t.Errorf("bottom-right wall = %+v", c)
	}
	if c := s.GetCell(20+2*10, 4+10); c.Rune != glyphWorm || c.Color != core.ColorGreen {
		t.Errorf("head = %+v", c)
	}
	if c := s.GetCell(20+2*3, 4+4); c.Rune != glyphApple || c.Color != core.ColorRed {
		t.Errorf("apple = %+v", c)
	}
	if c := s.GetCell(20+2*5, 4+5); c.Rune != ' ' {
		t.Errorf("empty interior = %+v", c)
	}

	status := screenRow(s, 19)
	if !strings.HasSuffix(strings.TrimRight(status, " "), "42") {
		t.Errorf("status row = %q, want score right-aligned", status)
	}
	if s.GetCell(59, 19).Rune != '2' || s.GetCell(58, 19).Rune != '4' {
		t.Errorf("score not aligned to the arena's right edge: %q", status)
	}
}

func TestDrawTooSmall(t *testing.T) {
	s := core.NewScreen(30, 10)
	DrawView(s, app.View{State: app.StatePlaying, Game: testSnapshot()})

	if !strings.Contains(s.String(), "terminal too small") {
		t.Errorf("expected resize notice, got:\n%s", s.String())
	}
	if !strings.Contains(s.String(), "need 40x16") {
		t.Errorf("expected required size, got:\n%s", s.String())
	}
}

func TestDeadSegments(t *testing.T) {
	timing := app.DefaultTiming()
	tests := []struct {
		elapsed int
		want    int
	}{
		{0, 0},
		{999, 0},
		{1000, 0},
		{1099, 0},
		{1100, 1},
		{1350, 3},
	}
	for _, tt := range tests {
		if got := deadSegments(tt.elapsed, timing); got != tt.want {
			t.Errorf("deadSegments(%d) = %d, want %d", tt.elapsed, got, tt.want)
		}
	}
}

func TestDrawGameOver(t *testing.T) {
	s := core.NewScreen(80, 24)
	g := testSnapshot()
	g.Alive = false
	v := app.View{State: app.StateGameOver, Timing: app.DefaultTiming(), Game: g, Elapsed: 1200}

	DrawView(s, v)

	// Two segments from the head are dead
	for i, p := range g.Worm {
		c := s.GetCell(20+2*p.X, 4+p.Y)
		if i < 2 && (c.Rune != glyphDead || c.Color != core.ColorWhite) {
			t.Errorf("segment %d = %+v, want dead", i, c)
		}
		if i >= 2 && (c.Rune != glyphWorm || c.Color != core.ColorGreen) {
			t.Errorf("segment %d = %+v, want alive", i, c)
		}
	}

	if !strings.Contains(screenRow(s, 4+7), "GAME OVER") {
		t.Errorf("caption row = %q", screenRow(s, 4+7))
	}
}

func TestRenderScreenKeepsText(t *testing.T) {
	s := core.NewScreen(10, 2)
	s.DrawTextColored(0, 0, "HI", core.ColorDefault)
	s.DrawTextColored(0, 1, "42", core.ColorRed)

	out := RenderScreen(s)
	if !strings.Contains(out, "HI") || !strings.Contains(out, "42") {
		t.Errorf("RenderScreen lost text: %q", out)
	}
	if strings.Count(out, "\n") != 1 {
		t.Errorf("RenderScreen rows = %d, want 2", strings.Count(out, "\n")+1)
	}
}
