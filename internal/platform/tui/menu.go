package tui

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/mato/internal/config"
	"github.com/vovakirdan/mato/internal/core"
	"github.com/vovakirdan/mato/internal/storage"
)

var (
	menuTitleStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#00C8C8"))
	menuMutedStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	menuRowStyle    = lipgloss.NewStyle().Padding(0, 1)
	menuActiveStyle = menuRowStyle.Bold(true).
			Foreground(lipgloss.Color("229")).
			Background(lipgloss.Color("57"))
	menuBoxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("240")).
			Padding(0, 1)
)

// MenuItem is one difficulty in the picker with the speed it plays at and
// the runs recorded on it.
type MenuItem struct {
	Preset config.DifficultyPreset
	Speed  config.SpeedConfig
	Stats  storage.ModeStats
}

// MenuModel is the Bubble Tea model for the difficulty picker.
type MenuModel struct {
	items          []MenuItem
	cursor         int
	game           config.Config
	config         core.RuntimeConfig
	keyMapper      *KeyMapper
	quitting       bool
	selected       *MenuItem
	openScoreboard bool
}

// NewMenuModel builds the picker for game with the cursor on initial.
// A nil store shows every preset as unplayed.
func NewMenuModel(store *storage.Store, game config.Config, rt core.RuntimeConfig, initial config.DifficultyPreset) MenuModel {
	var played map[string]*storage.ModeStats
	if store != nil {
		if all, err := store.GetAllModeStats(); err == nil {
			played = all
		}
	}

	items := make([]MenuItem, len(config.Presets))
	cursor := 0
	for i, p := range config.Presets {
		cfg := game
		config.ApplyPreset(&cfg, p)
		items[i] = MenuItem{Preset: p, Speed: cfg.Speed, Stats: storage.ModeStats{Mode: string(p)}}
		if s, ok := played[string(p)]; ok {
			items[i].Stats = *s
		}
		if p == initial {
			cursor = i
		}
	}

	return MenuModel{
		items:     items,
		cursor:    cursor,
		game:      game,
		config:    rt,
		keyMapper: NewKeyMapper(),
	}
}

// Init initializes the menu model.
func (m MenuModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the menu.
func (m MenuModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.config.ScreenW = msg.Width
		m.config.ScreenH = msg.Height
	}

	return m, nil
}

func (m MenuModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch m.keyMapper.MapKeyToMenuAction(msg) {
	case MenuActionQuit, MenuActionBack:
		m.quitting = true
		return m, tea.Quit

	case MenuActionUp:
		m.cursor = (m.cursor + len(m.items) - 1) % len(m.items)

	case MenuActionDown:
		m.cursor = (m.cursor + 1) % len(m.items)

	case MenuActionSelect:
		selected := m.items[m.cursor]
		m.selected = &selected
		return m, tea.Quit

	case MenuActionScoreboard:
		m.openScoreboard = true
		return m, tea.Quit
	}

	return m, nil
}

// View renders the menu centered on the terminal.
func (m MenuModel) View() string {
	if m.quitting {
		return ""
	}

	rows := make([]string, len(m.items))
	for i, item := range m.items {
		line := fmt.Sprintf("%-6s  %-28s  %s", item.Preset, speedSummary(item.Speed), runsSummary(item.Stats))
		if i == m.cursor {
			rows[i] = menuActiveStyle.Render(line)
		} else {
			rows[i] = menuRowStyle.Render(line)
		}
	}

	arena := fmt.Sprintf("arena %dx%d, apples %d", m.game.Arena.Width, m.game.Arena.Height, m.game.Apples)
	content := lipgloss.JoinVertical(lipgloss.Center,
		menuTitleStyle.Render("M A T O"),
		menuMutedStyle.Render(arena),
		"",
		menuBoxStyle.Render(lipgloss.JoinVertical(lipgloss.Left, rows...)),
		"",
		menuMutedStyle.Render("up/down: choose  enter: play  tab: scores  q: quit"),
	)

	if m.config.ScreenW <= 0 || m.config.ScreenH <= 0 {
		return content
	}
	return lipgloss.Place(m.config.ScreenW, m.config.ScreenH, lipgloss.Center, lipgloss.Center, content)
}

// speedSummary describes how a preset's step duration evolves.
func speedSummary(s config.SpeedConfig) string {
	if s.StepDecrement == 0 || s.InitialStep == s.MinStep {
		return fmt.Sprintf("steady %dms", s.InitialStep)
	}
	return fmt.Sprintf("%dms to %dms, -%dms/apple", s.InitialStep, s.MinStep, s.StepDecrement)
}

func runsSummary(s storage.ModeStats) string {
	if s.RunsCount == 0 {
		return "no runs yet"
	}
	return fmt.Sprintf("best %d in %d runs", s.HighScore, s.RunsCount)
}

// Selected returns the selected menu item, or nil if none selected.
func (m MenuModel) Selected() *MenuItem {
	return m.selected
}

// IsQuitting returns true if user requested to quit.
func (m MenuModel) IsQuitting() bool {
	return m.quitting
}

// WantsScoreboard returns true if user requested scoreboard.
func (m MenuModel) WantsScoreboard() bool {
	return m.openScoreboard
}

// Config returns the current runtime config (may have been updated by resize).
func (m MenuModel) Config() core.RuntimeConfig {
	return m.config
}

// MenuResult holds the result of running the menu.
type MenuResult struct {
	Preset          config.DifficultyPreset
	Config          core.RuntimeConfig
	WantsScoreboard bool
	Quit            bool
}

// RunMenu runs the difficulty picker and returns the selection result.
func RunMenu(store *storage.Store, game config.Config, rt core.RuntimeConfig, initial config.DifficultyPreset) (MenuResult, error) {
	p := tea.NewProgram(
		NewMenuModel(store, game, rt, initial),
		tea.WithAltScreen(),
	)

	finalModel, err := p.Run()
	if err != nil {
		return MenuResult{Config: rt}, err
	}

	m, ok := finalModel.(MenuModel)
	if !ok {
		return MenuResult{Config: rt, Quit: true}, nil
	}

	result := MenuResult{Config: m.Config()}
	switch {
	case m.WantsScoreboard():
		result.WantsScoreboard = true
	case m.Selected() != nil:
		result.Preset = m.Selected().Preset
	default:
		result.Quit = true
	}

	return result, nil
}
