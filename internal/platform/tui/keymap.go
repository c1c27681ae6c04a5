package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/mato/internal/core"
)

// KeyMapper translates Bubble Tea key messages to host events.
// This centralizes key bindings and makes them testable.
type KeyMapper struct{}

// NewKeyMapper creates a new key mapper with default bindings.
func NewKeyMapper() *KeyMapper {
	return &KeyMapper{}
}

// MapKey translates a key message to a host event.
// Every key produces an event: keys without a binding become KeyOther so
// that "press any key" works on the start screen.
func (km *KeyMapper) MapKey(msg tea.KeyMsg) core.Event {
	switch msg.String() {
	case "ctrl+c", "q":
		return core.QuitRequested()
	case "ctrl+l":
		return core.RepaintRequested()
	case "esc":
		return core.KeyPress(core.KeyEscape)
	case "up", "w", "k":
		return core.KeyPress(core.KeyUp)
	case "down", "s", "j":
		return core.KeyPress(core.KeyDown)
	case "left", "a", "h":
		return core.KeyPress(core.KeyLeft)
	case "right", "d", "l":
		return core.KeyPress(core.KeyRight)
	}
	return core.KeyPress(core.KeyOther)
}

// MenuAction represents a menu-specific action derived from input.
type MenuAction int

const (
	MenuActionNone MenuAction = iota
	MenuActionUp
	MenuActionDown
	MenuActionSelect
	MenuActionBack
	MenuActionQuit
	MenuActionScoreboard
)

// MapKeyToMenuAction translates a key to a menu action.
func (km *KeyMapper) MapKeyToMenuAction(msg tea.KeyMsg) MenuAction {
	switch msg.String() {
	case "ctrl+c", "q":
		return MenuActionQuit
	case "w", "up", "k": // vim-style k for up
		return MenuActionUp
	case "s", "down", "j": // vim-style j for down
		return MenuActionDown
	case "enter", " ":
		return MenuActionSelect
	case "b", "esc":
		return MenuActionBack
	case "tab":
		return MenuActionScoreboard
	}

	return MenuActionNone
}
