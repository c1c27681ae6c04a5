// Package config provides YAML-based configuration loading and difficulty
// presets for mato.
package config

import (
	"errors"
	"fmt"

	"github.com/vovakirdan/mato/internal/app"
	"github.com/vovakirdan/mato/internal/games/worm"
)

// ErrInvalid is wrapped by every validation error.
var ErrInvalid = errors.New("invalid config")

// Config contains all configuration for the game.
type Config struct {
	Arena   ArenaConfig   `yaml:"arena"`
	Speed   SpeedConfig   `yaml:"speed"`
	Apples  int           `yaml:"apples"`
	Screens ScreensConfig `yaml:"screens"`
}

// ArenaConfig defines the grid size in cells, walls included.
type ArenaConfig struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
}

// SpeedConfig defines the step duration progression.
type SpeedConfig struct {
	InitialStep   int `yaml:"initial_step"`
	MinStep       int `yaml:"min_step"`
	StepDecrement int `yaml:"step_decrement"`
}

// ScreensConfig defines start and game-over screen timing.
type ScreensConfig struct {
	StartBlink       int `yaml:"start_blink"`
	GameOverBlink    int `yaml:"game_over_blink"`
	GameOverDelay    int `yaml:"game_over_delay"`
	GameOverDuration int `yaml:"game_over_duration"`
}

// Validate checks that the configuration describes a playable game.
func (c Config) Validate() error {
	switch {
	case c.Arena.Width < 3 || c.Arena.Height < 3:
		return fmt.Errorf("%w: arena %dx%d must be at least 3x3", ErrInvalid, c.Arena.Width, c.Arena.Height)
	case c.Speed.MinStep <= 0:
		return fmt.Errorf("%w: min_step must be positive, got %d", ErrInvalid, c.Speed.MinStep)
	case c.Speed.InitialStep < c.Speed.MinStep:
		return fmt.Errorf("%w: initial_step %d is below min_step %d", ErrInvalid, c.Speed.InitialStep, c.Speed.MinStep)
	case c.Speed.StepDecrement < 0:
		return fmt.Errorf("%w: step_decrement must not be negative, got %d", ErrInvalid, c.Speed.StepDecrement)
	case c.Apples < 1:
		return fmt.Errorf("%w: apples must be at least 1, got %d", ErrInvalid, c.Apples)
	case c.Apples+1 > (c.Arena.Width-2)*(c.Arena.Height-2):
		return fmt.Errorf("%w: %d apples and the worm do not fit a %dx%d arena", ErrInvalid, c.Apples, c.Arena.Width, c.Arena.Height)
	case c.Screens.StartBlink <= 0 || c.Screens.GameOverBlink <= 0:
		return fmt.Errorf("%w: blink intervals must be positive", ErrInvalid)
	case c.Screens.GameOverDelay < 0 || c.Screens.GameOverDuration < 0:
		return fmt.Errorf("%w: game over timings must not be negative", ErrInvalid)
	}
	return nil
}

// Engine returns the engine configuration.
func (c Config) Engine() worm.Config {
	return worm.Config{
		Width:         c.Arena.Width,
		Height:        c.Arena.Height,
		InitialStep:   c.Speed.InitialStep,
		MinStep:       c.Speed.MinStep,
		StepDecrement: c.Speed.StepDecrement,
		Apples:        c.Apples,
	}
}

// Timing returns the screen timing for the state machine.
func (c Config) Timing() app.Timing {
	return app.Timing{
		StartBlink:       c.Screens.StartBlink,
		GameOverBlink:    c.Screens.GameOverBlink,
		GameOverDelay:    c.Screens.GameOverDelay,
		GameOverDuration: c.Screens.GameOverDuration,
	}
}
