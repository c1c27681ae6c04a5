package core

import (
	"strings"
	"testing"
)

// row returns the runes of line y as a string.
func row(s *Screen, y int) string {
	lines := strings.Split(s.String(), "\n")
	if y < 0 || y >= len(lines) {
		return ""
	}
	return lines[y]
}

func TestNewScreen(t *testing.T) {
	s := NewScreen(80, 24)

	if s.Width() != 80 {
		t.Errorf("Width() = %d, expected 80", s.Width())
	}
	if s.Height() != 24 {
		t.Errorf("Height() = %d, expected 24", s.Height())
	}

	for y := 0; y < s.Height(); y++ {
		for x := 0; x < s.Width(); x++ {
			if s.GetCell(x, y) != blankCell {
				t.Fatalf("New screen should be blank, got %+v at (%d, %d)", s.GetCell(x, y), x, y)
			}
		}
	}
}

func TestScreenSetColoredBounds(t *testing.T) {
	s := NewScreen(10, 10)

	s.SetColored(5, 5, 'X', ColorGreen)
	if got := s.GetCell(5, 5); got.Rune != 'X' || got.Color != ColorGreen {
		t.Errorf("GetCell(5, 5) = %+v, expected green 'X'", got)
	}

	s.SetColored(-1, 0, 'A', ColorRed)  // Should not panic
	s.SetColored(100, 0, 'A', ColorRed) // Should not panic
	s.SetColored(0, -1, 'A', ColorRed)  // Should not panic
	s.SetColored(0, 100, 'A', ColorRed) // Should not panic

	if s.GetCell(-1, 0) != blankCell || s.GetCell(100, 0) != blankCell {
		t.Error("Out of bounds GetCell should return a blank cell")
	}
}

func TestScreenClear(t *testing.T) {
	s := NewScreen(10, 10)
	for y := 0; y < 10; y++ {
		s.DrawTextColored(0, y, "XXXXXXXXXX", ColorCyan)
	}

	s.Clear()

	for y := 0; y < 10; y++ {
		for x := 0; x < 10; x++ {
			if s.GetCell(x, y) != blankCell {
				t.Errorf("After Clear, expected blank at (%d, %d), got %+v", x, y, s.GetCell(x, y))
			}
		}
	}
}

func TestScreenDrawTextColored(t *testing.T) {
	s := NewScreen(20, 5)
	s.DrawTextColored(2, 1, "Hello", ColorWhite)

	if got := row(s, 1); got != "  Hello             " {
		t.Errorf("row 1 = %q", got)
	}
	if s.GetCell(2, 1).Color != ColorWhite {
		t.Errorf("GetCell(2, 1).Color = %v, expected ColorWhite", s.GetCell(2, 1).Color)
	}

	// Only "He" fits
	s.DrawTextColored(18, 0, "Hello", ColorDefault)
	if got := row(s, 0); !strings.HasSuffix(got, "He") {
		t.Errorf("clipped row 0 = %q", got)
	}
}

func TestScreenDrawTextCentered(t *testing.T) {
	s := NewScreen(20, 5)
	s.DrawTextCentered(2, "Hi", ColorGray)

	x := (20 - 2) / 2
	if s.GetCell(x, 2).Rune != 'H' || s.GetCell(x+1, 2).Rune != 'i' {
		t.Errorf("DrawTextCentered row = %q", row(s, 2))
	}
	if s.GetCell(x, 2).Color != ColorGray {
		t.Error("DrawTextCentered should keep the color")
	}
}

func TestScreenDrawTextCenteredCountsRunes(t *testing.T) {
	s := NewScreen(9, 1)
	s.DrawTextCentered(0, "●●●", ColorRed)

	if got := row(s, 0); got != "   ●●●   " {
		t.Errorf("row 0 = %q", got)
	}
}

func TestScreenString(t *testing.T) {
	s := NewScreen(5, 3)
	s.DrawTextColored(0, 0, "AAAAA", ColorDefault)
	s.DrawTextColored(0, 1, "BBBBB", ColorRed)
	s.DrawTextColored(0, 2, "CCCCC", ColorDefault)

	result := s.String()
	expected := "AAAAA\nBBBBB\nCCCCC"

	if result != expected {
		t.Errorf("String() = %q, expected %q", result, expected)
	}
}

func TestScreenResize(t *testing.T) {
	s := NewScreen(10, 10)
	s.DrawTextColored(0, 0, "Hello", ColorGreen)
	s.DrawTextColored(0, 5, "World", ColorDefault)

	// Resize smaller - should preserve top-left content
	s.Resize(8, 4)
	if s.Width() != 8 || s.Height() != 4 {
		t.Errorf("After resize, dimensions should be 8x4, got %dx%d", s.Width(), s.Height())
	}
	if got := row(s, 0); got != "Hello   " {
		t.Errorf("Content should be preserved, row 0 = %q", got)
	}
	if s.GetCell(0, 0).Color != ColorGreen {
		t.Error("Resize should preserve colors")
	}

	// Resize larger - old content should still be there
	s.Resize(15, 8)
	if got := row(s, 0); !strings.HasPrefix(got, "Hello") {
		t.Errorf("Content should be preserved after enlarging, row 0 = %q", got)
	}
	if got := row(s, 5); strings.TrimSpace(got) != "" {
		t.Errorf("Rows cut by the shrink should come back blank, row 5 = %q", got)
	}
}
