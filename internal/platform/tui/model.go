package tui

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"
	"github.com/google/uuid"

	"github.com/vovakirdan/mato/internal/app"
	"github.com/vovakirdan/mato/internal/config"
	"github.com/vovakirdan/mato/internal/core"
	"github.com/vovakirdan/mato/internal/games/worm"
	"github.com/vovakirdan/mato/internal/storage"
)

// Options configures a game Model.
type Options struct {
	Game    config.Config
	Mode    config.DifficultyPreset // Recorded with every run
	Runtime core.RuntimeConfig
	Store   *storage.Store // Optional; runs are not recorded when nil
	Logger  *log.Logger    // Optional; used for non-fatal failures
}

// Model is the Bubble Tea model hosting one mato application loop.
type Model struct {
	loop      *app.Loop
	screen    *core.Screen
	keyMapper *KeyMapper
	opts      Options
	started   time.Time
	events    []core.Event // Polled since the previous frame
	frame     string       // Last rendered frame
	recorded  bool         // Whether the current game over has been recorded
	quitting  bool
}

// NewModel creates a model on the start screen.
func NewModel(opts Options) Model {
	// Use time-based seed if not specified
	if opts.Runtime.Seed == 0 {
		opts.Runtime.Seed = time.Now().UnixNano()
	}
	if opts.Runtime.FrameRate <= 0 {
		opts.Runtime.FrameRate = core.DefaultConfig().FrameRate
	}

	engine := worm.New(opts.Game.Engine(), worm.NewRandPicker(opts.Runtime.Seed))
	machine := app.NewMachine(engine, opts.Game.Timing())

	return Model{
		loop:      app.NewLoop(machine),
		screen:    core.NewScreen(opts.Runtime.ScreenW, opts.Runtime.ScreenH),
		keyMapper: NewKeyMapper(),
		opts:      opts,
		started:   time.Now(),
	}
}

// Init starts the frame loop.
func (m Model) Init() tea.Cmd {
	return tickCmd(m.opts.Runtime.FrameRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		return m.handleTick(time.Time(msg))
	}

	return m, nil
}

// handleKey queues the key for the next frame.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+s" {
		m.saveScreenshot()
		return m, nil
	}
	m.events = append(m.events, m.keyMapper.MapKey(msg))
	return m, nil
}

// handleResize processes window resize events.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.opts.Runtime.ScreenW = msg.Width
	m.opts.Runtime.ScreenH = msg.Height
	m.screen.Resize(msg.Width, msg.Height)
	m.events = append(m.events, core.RepaintRequested())
	return m, nil
}

// handleTick runs one host frame at time now.
func (m Model) handleTick(now time.Time) (tea.Model, tea.Cmd) {
	ms := int(now.Sub(m.started).Milliseconds())
	render, quit := m.loop.Frame(ms, m.events)
	m.events = nil

	if quit {
		m.quitting = true
		return m, tea.Quit
	}

	// Record the run once per game over
	if m.loop.State() == app.StateGameOver {
		if !m.recorded {
			m.recordRun()
			m.recorded = true
		}
	} else {
		m.recorded = false
	}

	if render {
		DrawView(m.screen, m.loop.View())
		m.frame = RenderScreen(m.screen)
	}

	return m, tickCmd(m.opts.Runtime.FrameRate)
}

// recordRun stores the finished game. Failures are logged and otherwise ignored.
func (m *Model) recordRun() {
	if m.opts.Store == nil {
		return
	}
	engine := m.loop.Machine().Engine()
	run := storage.Run{
		RunID:  uuid.NewString(),
		Mode:   string(m.opts.Mode),
		Score:  engine.Score(),
		Length: engine.Len(),
		Apples: engine.ApplesEaten(),
	}
	id, err := m.opts.Store.SaveRun(run)
	if m.opts.Logger == nil {
		return
	}
	if err != nil {
		m.opts.Logger.Warn("could not record run", "mode", run.Mode, "score", run.Score, "error", err)
		return
	}
	m.opts.Logger.Debug("run recorded", "run_id", id, "mode", run.Mode, "score", run.Score)
}

// saveScreenshot saves the current screen to a file.
func (m *Model) saveScreenshot() {
	home, err := os.UserHomeDir()
	if err != nil {
		return
	}
	dir := filepath.Join(home, ".mato", "screenshots")
	//nolint:errcheck // Best-effort directory creation
	os.MkdirAll(dir, 0o755)

	timestamp := time.Now().Format("20060102_150405")
	path := filepath.Join(dir, fmt.Sprintf("mato_%s.txt", timestamp))

	//nolint:errcheck // Best-effort save, game continues regardless
	os.WriteFile(path, []byte(m.screen.String()), 0o600)
}

// View returns the last rendered frame.
func (m Model) View() string {
	if m.quitting {
		return ""
	}
	return m.frame
}

// State returns the current application state.
func (m Model) State() app.State {
	return m.loop.State()
}

// IsQuitting returns true once the application loop has ended.
func (m Model) IsQuitting() bool {
	return m.quitting
}

// Run starts the Bubble Tea program with a new model.
func Run(opts Options) error {
	p := tea.NewProgram(
		NewModel(opts),
		tea.WithAltScreen(), // Use alternate screen buffer
	)

	_, err := p.Run()
	return err
}
