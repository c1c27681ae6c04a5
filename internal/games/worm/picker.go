package worm

import "math/rand"

// CellPicker supplies grid coordinates for apple placement.
// PickCell must return a cell uniformly distributed over the arena
// interior: x in [1, width-2], y in [1, height-2].
type CellPicker interface {
	PickCell(width, height int) Point
}

// RandPicker is a CellPicker backed by a seeded math/rand source.
type RandPicker struct {
	rng *rand.Rand
}

// NewRandPicker creates a picker with a deterministic seed.
func NewRandPicker(seed int64) *RandPicker {
	return &RandPicker{rng: rand.New(rand.NewSource(seed))}
}

// PickCell returns a random interior cell.
func (p *RandPicker) PickCell(width, height int) Point {
	return Point{
		X: 1 + p.rng.Intn(width-2),
		Y: 1 + p.rng.Intn(height-2),
	}
}
