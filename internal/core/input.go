package core

// Key identifies a physical key the core cares about.
// Every other key maps to KeyOther.
type Key int

const (
	KeyOther Key = iota
	KeyEscape
	KeyUp
	KeyDown
	KeyLeft
	KeyRight
)

// EventKind is the type of a host input event.
type EventKind int

const (
	EventKeyDown EventKind = iota
	EventQuit              // Window closed, Ctrl+C, SSH hangup
	EventRepaint           // Exposed or resized surface
)

// Event is a single abstract input event produced by the host for one frame.
type Event struct {
	Kind EventKind
	Key  Key // Only meaningful for EventKeyDown
}

// KeyPress returns a key-down event for the given key.
func KeyPress(k Key) Event {
	return Event{Kind: EventKeyDown, Key: k}
}

// QuitRequested returns a quit event.
func QuitRequested() Event {
	return Event{Kind: EventQuit}
}

// RepaintRequested returns a repaint event.
func RepaintRequested() Event {
	return Event{Kind: EventRepaint}
}
