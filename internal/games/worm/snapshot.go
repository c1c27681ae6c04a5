package worm

// Snapshot is a read-only copy of the engine state for rendering and replay checks.
type Snapshot struct {
	Width        int
	Height       int
	Worm         []Point // Head first
	Apples       []Point
	Dir          Direction
	Score        int
	ApplesEaten  int
	StepDuration int
	Steps        uint64
	Alive        bool
}

// Snapshot returns the current engine snapshot.
func (e *Engine) Snapshot() Snapshot {
	return Snapshot{
		Width:        e.cfg.Width,
		Height:       e.cfg.Height,
		Worm:         e.Worm(),
		Apples:       e.Apples(),
		Dir:          e.direction,
		Score:        e.score,
		ApplesEaten:  e.applesEaten,
		StepDuration: e.stepDuration,
		Steps:        e.steps,
		Alive:        e.alive,
	}
}

// Head returns the head cell of the snapshot's worm.
func (s Snapshot) Head() Point {
	if len(s.Worm) == 0 {
		return Point{}
	}
	return s.Worm[0]
}
