package tui

import (
	"fmt"
	"strconv"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/mato/internal/config"
	"github.com/vovakirdan/mato/internal/storage"
)

const (
	maxScores        = 100 // Runs loaded per mode
	scoreboardChrome = 13  // Lines around the table: title, tabs, stats, borders, help
)

var (
	boardTitleStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("229"))
	boardTabStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("241")).Padding(0, 1)
	boardActiveTab  = lipgloss.NewStyle().Bold(true).
			Foreground(lipgloss.Color("229")).
			Background(lipgloss.Color("57")).
			Padding(0, 1)
	statValueStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#00C8C8"))
	statLabelStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	statCellStyle  = lipgloss.NewStyle().Padding(0, 2)
	boardBoxStyle  = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("240")).
			Padding(0, 1)
	boardEmptyStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("241")).Italic(true).Padding(1, 4)
)

// ScoreboardKeyMap defines the key bindings for the scoreboard.
type ScoreboardKeyMap struct {
	Up       key.Binding
	Down     key.Binding
	PrevMode key.Binding
	NextMode key.Binding
	Back     key.Binding
	Quit     key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k ScoreboardKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.PrevMode, k.NextMode, k.Back, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k ScoreboardKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{{k.Up, k.Down}, {k.PrevMode, k.NextMode}, {k.Back, k.Quit}}
}

// DefaultScoreboardKeyMap returns default key bindings.
func DefaultScoreboardKeyMap() ScoreboardKeyMap {
	return ScoreboardKeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("up/k", "scroll up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("down/j", "scroll down"),
		),
		PrevMode: key.NewBinding(
			key.WithKeys("left", "h", "shift+tab"),
			key.WithHelp("left/h", "prev mode"),
		),
		NextMode: key.NewBinding(
			key.WithKeys("right", "l", "tab"),
			key.WithHelp("right/l", "next mode"),
		),
		Back: key.NewBinding(
			key.WithKeys("esc", "b"),
			key.WithHelp("esc/b", "back"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// ScoreboardModel shows the aggregate stats and best runs of one
// difficulty at a time.
type ScoreboardModel struct {
	modes      []config.DifficultyPreset
	modeCursor int
	store      *storage.Store
	stats      storage.ModeStats
	runs       []storage.Run
	table      table.Model
	help       help.Model
	keys       ScoreboardKeyMap
	width      int
	height     int
	quitting   bool
	goingBack  bool
}

// NewScoreboardModel creates a scoreboard opened on the initial mode.
func NewScoreboardModel(store *storage.Store, width, height int, initial config.DifficultyPreset) ScoreboardModel {
	m := ScoreboardModel{
		modes:  config.Presets,
		store:  store,
		table:  newRunsTable(height),
		help:   help.New(),
		keys:   DefaultScoreboardKeyMap(),
		width:  width,
		height: height,
	}
	for i, p := range m.modes {
		if p == initial {
			m.modeCursor = i
		}
	}
	m.help.Width = width
	m.load()
	return m
}

func newRunsTable(height int) table.Model {
	t := table.New(
		table.WithColumns([]table.Column{
			{Title: "Rank", Width: 5},
			{Title: "Score", Width: 7},
			{Title: "Length", Width: 7},
			{Title: "Apples", Width: 7},
			{Title: "Played", Width: 13},
		}),
		table.WithFocused(true),
		table.WithHeight(max(height-scoreboardChrome, 3)),
	)

	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		BorderBottom(true).
		Bold(true)
	s.Selected = s.Selected.
		Foreground(lipgloss.Color("229")).
		Background(lipgloss.Color("57")).
		Bold(false)
	t.SetStyles(s)

	return t
}

// Mode returns the difficulty currently shown.
func (m ScoreboardModel) Mode() config.DifficultyPreset {
	return m.modes[m.modeCursor]
}

// load refreshes the stats and runs of the current mode.
func (m *ScoreboardModel) load() {
	mode := string(m.Mode())
	m.stats = storage.ModeStats{Mode: mode}
	m.runs = nil
	if m.store != nil {
		if stats, err := m.store.GetModeStats(mode); err == nil {
			m.stats = *stats
		}
		if runs, err := m.store.TopScores(mode, maxScores); err == nil {
			m.runs = runs
		}
	}

	rows := make([]table.Row, len(m.runs))
	for i, r := range m.runs {
		rows[i] = table.Row{
			fmt.Sprintf("#%d", i+1),
			strconv.Itoa(r.Score),
			strconv.Itoa(r.Length),
			strconv.Itoa(r.Apples),
			r.CreatedAt.Format("Jan 02 15:04"),
		}
	}
	m.table.SetRows(rows)
	m.table.GotoTop()
}

// Init initializes the scoreboard model.
func (m ScoreboardModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the scoreboard.
func (m ScoreboardModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			return m, tea.Quit

		case key.Matches(msg, m.keys.Back):
			m.goingBack = true
			return m, tea.Quit

		case key.Matches(msg, m.keys.NextMode):
			m.modeCursor = (m.modeCursor + 1) % len(m.modes)
			m.load()
			return m, nil

		case key.Matches(msg, m.keys.PrevMode):
			m.modeCursor = (m.modeCursor + len(m.modes) - 1) % len(m.modes)
			m.load()
			return m, nil
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.table.SetHeight(max(msg.Height-scoreboardChrome, 3))
		m.help.Width = msg.Width
		return m, nil
	}

	var cmd tea.Cmd
	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

// View renders the scoreboard.
func (m ScoreboardModel) View() string {
	if m.quitting || m.goingBack {
		return ""
	}

	blocks := []string{boardTitleStyle.Render("HIGH SCORES"), "", m.renderTabs(), ""}
	if m.stats.RunsCount == 0 {
		blocks = append(blocks, boardEmptyStyle.Render(fmt.Sprintf("No %s runs yet.", m.Mode())))
	} else {
		blocks = append(blocks, m.renderStats(), "", boardBoxStyle.Render(m.table.View()))
	}

	body := lipgloss.JoinVertical(lipgloss.Center, blocks...)
	return lipgloss.JoinVertical(lipgloss.Left,
		lipgloss.PlaceHorizontal(m.width, lipgloss.Center, body),
		"",
		lipgloss.PlaceHorizontal(m.width, lipgloss.Center, statLabelStyle.Render(m.help.View(m.keys))),
	)
}

func (m ScoreboardModel) renderTabs() string {
	tabs := make([]string, len(m.modes))
	for i, mode := range m.modes {
		if i == m.modeCursor {
			tabs[i] = boardActiveTab.Render(string(mode))
		} else {
			tabs[i] = boardTabStyle.Render(string(mode))
		}
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, tabs...)
}

// renderStats lays out the mode totals as value-over-label cells.
func (m ScoreboardModel) renderStats() string {
	s := m.stats
	cells := []string{
		statCell(strconv.Itoa(s.RunsCount), "runs"),
		statCell(strconv.Itoa(s.HighScore), "best"),
		statCell(fmt.Sprintf("%.1f", s.AvgScore), "average"),
		statCell(strconv.Itoa(s.LongestWorm), "longest worm"),
		statCell(strconv.FormatInt(s.TotalApples, 10), "apples"),
	}
	stats := lipgloss.JoinHorizontal(lipgloss.Top, cells...)
	if s.LastPlayed.IsZero() {
		return stats
	}
	last := statLabelStyle.Render("last played " + s.LastPlayed.Format("Jan 02 15:04"))
	return lipgloss.JoinVertical(lipgloss.Center, stats, last)
}

func statCell(value, label string) string {
	return statCellStyle.Render(lipgloss.JoinVertical(lipgloss.Center,
		statValueStyle.Render(value),
		statLabelStyle.Render(label),
	))
}

// IsGoingBack returns true if user wants to go back to the menu.
func (m ScoreboardModel) IsGoingBack() bool {
	return m.goingBack
}

// IsQuitting returns true if user wants to quit entirely.
func (m ScoreboardModel) IsQuitting() bool {
	return m.quitting
}

// RunScoreboard runs the scoreboard screen.
// Returns true if user wants to go back to the menu, false if quitting.
func RunScoreboard(store *storage.Store, width, height int, initial config.DifficultyPreset) (goBack bool, err error) {
	p := tea.NewProgram(
		NewScoreboardModel(store, width, height, initial),
		tea.WithAltScreen(),
	)

	finalModel, err := p.Run()
	if err != nil {
		return false, err
	}

	m, ok := finalModel.(ScoreboardModel)
	if !ok {
		return false, nil
	}

	return m.IsGoingBack(), nil
}
