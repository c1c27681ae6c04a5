package core

// Color represents a foreground color for a screen cell.
// Mapped to ANSI 256-color codes by the terminal renderer.
type Color uint8

// Predefined colors for screen elements.
const (
	ColorDefault Color = iota
	ColorRed
	ColorGreen
	ColorBlue
	ColorCyan
	ColorDarkCyan
	ColorWhite
	ColorGray
)
