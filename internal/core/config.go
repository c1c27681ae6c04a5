package core

// RuntimeConfig contains configuration passed to the host at startup.
// The host uses this to size the screen buffer and seed apple placement.
type RuntimeConfig struct {
	ScreenW   int   // Screen width in characters
	ScreenH   int   // Screen height in characters
	FrameRate int   // Host frames per second (default 60)
	Seed      int64 // RNG seed for apple placement
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:   80,
		ScreenH:   24,
		FrameRate: 60,
		Seed:      0, // 0 means use current time in platform layer
	}
}

// TimeUpdate is the time signal sampled once per host frame.
// Both values are milliseconds.
type TimeUpdate struct {
	SinceStateEntry int // Elapsed time since the current application state began
	SinceLastFrame  int // Elapsed time since the previous frame
}
