package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/mato/internal/core"
)

func runeKey(r rune) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}
}

func TestMapKey(t *testing.T) {
	km := NewKeyMapper()

	tests := []struct {
		name string
		msg  tea.KeyMsg
		want core.Event
	}{
		{"ctrl+c quits", tea.KeyMsg{Type: tea.KeyCtrlC}, core.QuitRequested()},
		{"q quits", runeKey('q'), core.QuitRequested()},
		{"ctrl+l repaints", tea.KeyMsg{Type: tea.KeyCtrlL}, core.RepaintRequested()},
		{"escape", tea.KeyMsg{Type: tea.KeyEsc}, core.KeyPress(core.KeyEscape)},
		{"arrow up", tea.KeyMsg{Type: tea.KeyUp}, core.KeyPress(core.KeyUp)},
		{"arrow down", tea.KeyMsg{Type: tea.KeyDown}, core.KeyPress(core.KeyDown)},
		{"arrow left", tea.KeyMsg{Type: tea.KeyLeft}, core.KeyPress(core.KeyLeft)},
		{"arrow right", tea.KeyMsg{Type: tea.KeyRight}, core.KeyPress(core.KeyRight)},
		{"wasd up", runeKey('w'), core.KeyPress(core.KeyUp)},
		{"wasd left", runeKey('a'), core.KeyPress(core.KeyLeft)},
		{"vim down", runeKey('j'), core.KeyPress(core.KeyDown)},
		{"vim right", runeKey('l'), core.KeyPress(core.KeyRight)},
		{"enter is other", tea.KeyMsg{Type: tea.KeyEnter}, core.KeyPress(core.KeyOther)},
		{"letter is other", runeKey('x'), core.KeyPress(core.KeyOther)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := km.MapKey(tt.msg); got != tt.want {
				t.Errorf("MapKey(%q) = %+v, want %+v", tt.msg.String(), got, tt.want)
			}
		})
	}
}

func TestMapKeyToMenuAction(t *testing.T) {
	km := NewKeyMapper()

	tests := []struct {
		msg  tea.KeyMsg
		want MenuAction
	}{
		{runeKey('q'), MenuActionQuit},
		{tea.KeyMsg{Type: tea.KeyUp}, MenuActionUp},
		{runeKey('k'), MenuActionUp},
		{tea.KeyMsg{Type: tea.KeyDown}, MenuActionDown},
		{tea.KeyMsg{Type: tea.KeyEnter}, MenuActionSelect},
		{tea.KeyMsg{Type: tea.KeyEsc}, MenuActionBack},
		{tea.KeyMsg{Type: tea.KeyTab}, MenuActionScoreboard},
		{runeKey('x'), MenuActionNone},
	}

	for _, tt := range tests {
		if got := km.MapKeyToMenuAction(tt.msg); got != tt.want {
			t.Errorf("MapKeyToMenuAction(%q) = %d, want %d", tt.msg.String(), got, tt.want)
		}
	}
}
