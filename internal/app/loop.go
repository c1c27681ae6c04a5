package app

import (
	"github.com/vovakirdan/mato/internal/core"
	"github.com/vovakirdan/mato/internal/games/worm"
)

// View is the read-only data a renderer needs for one frame.
type View struct {
	State   State
	Elapsed int // Time since the current state began, in milliseconds
	Timing  Timing
	Game    worm.Snapshot
}

// Loop drives a Machine from a host frame loop. The host calls Frame once
// per iteration with a monotonic timestamp and the events polled since the
// previous call, and renders when Frame says so.
//
// A state change always latches a redraw and restarts the state timer, but
// nothing is rendered on the changing frame: the new state's handler runs at
// least once before its first render.
type Loop struct {
	machine    *Machine
	now        int
	stateStart int
	elapsed    int
	started    bool
	redraw     bool
	quit       bool
}

// NewLoop creates a loop for m. The first rendered frame is always drawn.
func NewLoop(m *Machine) *Loop {
	return &Loop{
		machine: m,
		redraw:  true,
	}
}

// Frame advances the application by one host frame at time now.
// It reports whether the host must render and whether it must stop.
func (l *Loop) Frame(now int, events []core.Event) (render, quit bool) {
	if l.quit {
		return false, true
	}
	if !l.started {
		l.started = true
		l.now = now
		l.stateStart = now
	}

	last := l.now
	l.now = max(now, last)
	t := core.TimeUpdate{
		SinceStateEntry: l.now - l.stateStart,
		SinceLastFrame:  l.now - last,
	}

	prev := l.machine.State()
	next, requested := l.machine.Update(events, t)

	if next == StateQuit || hasEvent(events, core.EventQuit) {
		l.quit = true
		return false, true
	}

	if next != prev {
		l.redraw = true
		l.stateStart = l.now
		l.elapsed = 0
		return false, false
	}
	l.elapsed = t.SinceStateEntry

	l.redraw = l.redraw || requested || hasEvent(events, core.EventRepaint)
	if !l.redraw {
		return false, false
	}
	l.redraw = false
	return true, false
}

// State returns the current application state.
func (l *Loop) State() State {
	return l.machine.State()
}

// Machine returns the driven machine.
func (l *Loop) Machine() *Machine {
	return l.machine
}

// View returns the data for rendering the current frame.
func (l *Loop) View() View {
	return View{
		State:   l.machine.State(),
		Elapsed: l.elapsed,
		Timing:  l.machine.Timing(),
		Game:    l.machine.Engine().Snapshot(),
	}
}

func hasEvent(events []core.Event, kind core.EventKind) bool {
	for _, ev := range events {
		if ev.Kind == kind {
			return true
		}
	}
	return false
}
