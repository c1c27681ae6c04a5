// Package worm implements the worm simulation: a fixed grid with walls on the
// border, a worm that moves one cell per step, and apples that make it grow
// and speed up.
package worm

import "fmt"

// Direction represents the worm's movement direction.
type Direction int

const (
	DirRight Direction = iota
	DirDown
	DirLeft
	DirUp
)

// Point represents a grid cell.
type Point struct {
	X, Y int
}

// Config holds the arena and speed parameters of an engine.
// Time values share the unit of the host's time signal (milliseconds).
type Config struct {
	Width         int
	Height        int
	InitialStep   int // Step duration at construction
	MinStep       int // Lower clamp for the step duration
	StepDecrement int // Step duration reduction per apple eaten
	Apples        int // Number of apples kept on the field
}

// DefaultConfig returns the reference configuration: a 20×15 arena with a
// single apple, starting at 500ms per step and speeding up to 100ms.
func DefaultConfig() Config {
	return Config{
		Width:         20,
		Height:        15,
		InitialStep:   500,
		MinStep:       100,
		StepDecrement: 10,
		Apples:        1,
	}
}

// Engine is the tick-based worm simulation.
// It is not safe for concurrent use; the host loop owns it.
type Engine struct {
	cfg    Config
	picker CellPicker

	frameTime    int // Accumulated time not yet consumed by a step
	stepDuration int

	worm       []Point // Head at index 0
	direction  Direction
	pending    Direction
	hasPending bool
	growing    bool

	apples      []Point
	score       int
	applesEaten int
	steps       uint64
	alive       bool
}

// New creates an engine with a single-segment worm at the arena center
// heading right, and places the configured number of apples.
// Panics if the arena has no interior or the step durations are unusable.
func New(cfg Config, picker CellPicker) *Engine {
	if cfg.Width < 3 || cfg.Height < 3 {
		panic(fmt.Sprintf("worm: arena %dx%d has no interior", cfg.Width, cfg.Height))
	}
	if cfg.MinStep <= 0 || cfg.InitialStep < cfg.MinStep {
		panic(fmt.Sprintf("worm: invalid step durations initial=%d min=%d", cfg.InitialStep, cfg.MinStep))
	}

	e := &Engine{
		cfg:          cfg,
		picker:       picker,
		stepDuration: cfg.InitialStep,
		worm:         []Point{{X: cfg.Width / 2, Y: cfg.Height / 2}},
		direction:    DirRight,
		alive:        true,
	}
	for i, n := 0, max(cfg.Apples, 1); i < n; i++ {
		e.addApple()
	}
	return e
}

// Reset replaces the whole engine state with a freshly constructed one
// using the same configuration and picker.
func (e *Engine) Reset() {
	*e = *New(e.cfg, e.picker)
}

// SetDirection queues a direction change for the next step.
// Only the first change per step is kept, and a change to the current
// direction is ignored.
func (e *Engine) SetDirection(d Direction) {
	if !e.hasPending && d != e.direction {
		e.pending = d
		e.hasPending = true
	}
}

// Tick adds elapsed time to the accumulator and performs at most one
// simulation step once a full step duration is available. Excess time
// carries over to later calls. Returns true if a step was performed,
// including a fatal one.
func (e *Engine) Tick(elapsed int) bool {
	e.frameTime += max(elapsed, 0)
	if e.frameTime < e.stepDuration {
		return false
	}
	e.frameTime -= e.stepDuration
	e.step()
	return true
}

// step performs one simulation step.
func (e *Engine) step() {
	e.steps++
	if !e.alive {
		return
	}
	if len(e.worm) == 0 {
		panic("worm: empty worm")
	}

	if e.hasPending {
		e.direction = e.pending
		e.hasPending = false
	}

	head, ok := e.nextHead()
	if !ok || e.hitsSomething(head) {
		e.alive = false
		return
	}

	ate := false
	if i := e.appleAt(head); i >= 0 {
		e.apples = append(e.apples[:i], e.apples[i+1:]...)
		e.growing = true
		e.score += 5000 / e.stepDuration
		e.applesEaten++
		e.stepDuration = max(e.stepDuration-e.cfg.StepDecrement, e.cfg.MinStep)
		ate = true
	}

	if e.growing {
		e.worm = append(e.worm, Point{})
		e.growing = false
	}
	// Shift every segment one position toward the tail; the last segment
	// falls off unless the slice was just extended.
	copy(e.worm[1:], e.worm[:len(e.worm)-1])
	e.worm[0] = head

	// The replacement is placed after the move so it never lands on the head.
	if ate {
		e.addApple()
	}
}

// nextHead returns the cell the head moves into. ok is false when the
// move would leave the grid entirely.
func (e *Engine) nextHead() (Point, bool) {
	head := e.worm[0]
	switch e.direction {
	case DirUp:
		if head.Y == 0 {
			return head, false
		}
		head.Y--
	case DirDown:
		if head.Y >= e.cfg.Height-1 {
			return head, false
		}
		head.Y++
	case DirLeft:
		if head.X == 0 {
			return head, false
		}
		head.X--
	case DirRight:
		if head.X >= e.cfg.Width-1 {
			return head, false
		}
		head.X++
	}
	return head, true
}

// hitsSomething reports whether p is a wall cell or a non-head worm segment.
func (e *Engine) hitsSomething(p Point) bool {
	if e.IsWall(p) {
		return true
	}
	for _, seg := range e.worm[1:] {
		if seg == p {
			return true
		}
	}
	return false
}

// IsWall reports whether p lies on the arena border.
func (e *Engine) IsWall(p Point) bool {
	return p.X == 0 || p.X == e.cfg.Width-1 || p.Y == 0 || p.Y == e.cfg.Height-1
}

// appleAt returns the index of the apple at p, or -1.
func (e *Engine) appleAt(p Point) int {
	for i, a := range e.apples {
		if a == p {
			return i
		}
	}
	return -1
}

// isWormAt checks if the worm occupies the given point.
func (e *Engine) isWormAt(p Point) bool {
	for _, seg := range e.worm {
		if seg == p {
			return true
		}
	}
	return false
}

// addApple samples interior cells until it finds one free of apples and
// worm segments. Nothing is placed when the interior is already full.
func (e *Engine) addApple() {
	interior := (e.cfg.Width - 2) * (e.cfg.Height - 2)
	if len(e.worm)+len(e.apples) >= interior {
		return
	}
	for {
		p := e.picker.PickCell(e.cfg.Width, e.cfg.Height)
		if e.appleAt(p) < 0 && !e.isWormAt(p) {
			e.apples = append(e.apples, p)
			return
		}
	}
}

// Config returns the engine configuration.
func (e *Engine) Config() Config { return e.cfg }

// Alive reports whether the worm is still alive.
func (e *Engine) Alive() bool { return e.alive }

// Score returns the current score.
func (e *Engine) Score() int { return e.score }

// ApplesEaten returns the number of apples eaten since construction.
func (e *Engine) ApplesEaten() int { return e.applesEaten }

// StepDuration returns the current time per step.
func (e *Engine) StepDuration() int { return e.stepDuration }

// Direction returns the current movement direction.
func (e *Engine) Direction() Direction { return e.direction }

// Pending returns the queued direction, if any.
func (e *Engine) Pending() (Direction, bool) { return e.pending, e.hasPending }

// Head returns the worm's head cell.
func (e *Engine) Head() Point { return e.worm[0] }

// Len returns the worm length.
func (e *Engine) Len() int { return len(e.worm) }

// Worm returns a copy of the worm segments, head first.
func (e *Engine) Worm() []Point {
	return append([]Point(nil), e.worm...)
}

// Apples returns a copy of the apple positions.
func (e *Engine) Apples() []Point {
	return append([]Point(nil), e.apples...)
}

func (d Direction) String() string {
	switch d {
	case DirUp:
		return "up"
	case DirDown:
		return "down"
	case DirLeft:
		return "left"
	case DirRight:
		return "right"
	default:
		return "unknown"
	}
}
