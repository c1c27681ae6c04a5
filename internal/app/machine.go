// Package app sequences the application screens: the start screen, the
// running game, and the game-over screen. It owns the worm engine and tells
// the host when a redraw is needed.
package app

import (
	"github.com/vovakirdan/mato/internal/core"
	"github.com/vovakirdan/mato/internal/games/worm"
)

// State is an application state.
type State int

const (
	StateStart State = iota
	StatePlaying
	StateGameOver
	StateQuit // Terminal; the host stops on reaching it
)

func (s State) String() string {
	switch s {
	case StateStart:
		return "start"
	case StatePlaying:
		return "playing"
	case StateGameOver:
		return "game_over"
	case StateQuit:
		return "quit"
	default:
		return "unknown"
	}
}

// Timing holds the screen timing constants in milliseconds.
type Timing struct {
	StartBlink       int // Start screen animation frame length
	GameOverBlink    int // Game-over animation frame length
	GameOverDelay    int // Time before the game-over animation starts
	GameOverDuration int // Auto-return to the start screen after this long
}

// DefaultTiming returns the reference screen timing.
func DefaultTiming() Timing {
	return Timing{
		StartBlink:       250,
		GameOverBlink:    100,
		GameOverDelay:    1000,
		GameOverDuration: 15000,
	}
}

// intents is the result of a single pass over one frame's events.
type intents struct {
	quit       bool
	escape     bool // Escape was pressed
	anyKey     bool // The first key pressed this frame was not Escape
	directions []worm.Direction
	repaint    bool
}

// collect reduces a frame's events to intents.
func collect(events []core.Event) intents {
	var in intents
	firstKey := true
	for _, ev := range events {
		switch ev.Kind {
		case core.EventQuit:
			in.quit = true
		case core.EventRepaint:
			in.repaint = true
		case core.EventKeyDown:
			if firstKey {
				firstKey = false
				in.anyKey = ev.Key != core.KeyEscape
			}
			if ev.Key == core.KeyEscape {
				in.escape = true
			}
			if d, ok := keyDirection(ev.Key); ok {
				in.directions = append(in.directions, d)
			}
		}
	}
	return in
}

// keyDirection maps arrow keys to worm directions.
func keyDirection(k core.Key) (worm.Direction, bool) {
	switch k {
	case core.KeyUp:
		return worm.DirUp, true
	case core.KeyDown:
		return worm.DirDown, true
	case core.KeyLeft:
		return worm.DirLeft, true
	case core.KeyRight:
		return worm.DirRight, true
	}
	return 0, false
}

// frameChanged reports whether elapsed crossed an animation frame boundary
// during the last frame.
func frameChanged(t core.TimeUpdate, interval int) bool {
	if interval <= 0 {
		return false
	}
	previous := max(t.SinceStateEntry-t.SinceLastFrame, 0) / interval
	current := t.SinceStateEntry / interval
	return previous != current
}

// Machine is the application state machine.
// It is not safe for concurrent use; the host loop owns it.
type Machine struct {
	state  State
	engine *worm.Engine
	timing Timing
}

// NewMachine creates a machine on the start screen that owns engine.
func NewMachine(engine *worm.Engine, timing Timing) *Machine {
	return &Machine{
		state:  StateStart,
		engine: engine,
		timing: timing,
	}
}

// State returns the current state.
func (m *Machine) State() State {
	return m.state
}

// Engine returns the owned engine.
func (m *Machine) Engine() *worm.Engine {
	return m.engine
}

// Timing returns the screen timing.
func (m *Machine) Timing() Timing {
	return m.timing
}

// Update runs the handler of the current state, stores the next state and
// returns it together with whether the host must redraw.
func (m *Machine) Update(events []core.Event, t core.TimeUpdate) (State, bool) {
	var (
		next   State
		redraw bool
	)
	switch m.state {
	case StateStart:
		next, redraw = m.Start(events, t)
	case StatePlaying:
		next, redraw = m.Playing(events, t)
	case StateGameOver:
		next, redraw = m.GameOver(events, t)
	default:
		next, redraw = StateQuit, false
	}
	m.state = next
	return next, redraw
}

// Start handles the start screen. Escape quits, any other key starts a
// fresh game; otherwise the title animation asks for a redraw on each of
// its frame boundaries.
func (m *Machine) Start(events []core.Event, t core.TimeUpdate) (State, bool) {
	in := collect(events)
	switch {
	case in.quit:
		return StateQuit, false
	case in.anyKey:
		m.engine.Reset()
		return StatePlaying, true
	case in.escape:
		return StateQuit, false
	}
	return StateStart, frameChanged(t, m.timing.StartBlink)
}

// Playing handles the running game. Escape abandons the game, arrow keys
// steer, and the engine is ticked with the frame time while the worm lives.
func (m *Machine) Playing(events []core.Event, t core.TimeUpdate) (State, bool) {
	in := collect(events)
	if in.quit {
		return StateQuit, false
	}
	if in.escape {
		m.engine.Reset()
		return StateStart, true
	}
	for _, d := range in.directions {
		m.engine.SetDirection(d)
	}
	if !m.engine.Alive() {
		return StateGameOver, true
	}
	moved := m.engine.Tick(t.SinceLastFrame)
	return StatePlaying, moved || in.repaint
}

// GameOver handles the game-over screen. Escape or the display timeout
// return to the start screen.
func (m *Machine) GameOver(events []core.Event, t core.TimeUpdate) (State, bool) {
	in := collect(events)
	if in.quit {
		return StateQuit, false
	}
	if in.escape {
		return StateStart, false
	}
	if t.SinceStateEntry > m.timing.GameOverDuration {
		return StateStart, false
	}
	return StateGameOver, frameChanged(t, m.timing.GameOverBlink)
}
