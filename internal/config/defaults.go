package config

import (
	_ "embed"

	"github.com/vovakirdan/mato/internal/app"
	"github.com/vovakirdan/mato/internal/games/worm"
)

//go:embed defaults/mato.yaml
var defaultYAML []byte

// Default returns the built-in configuration, assembled from the engine and
// screen defaults. It matches defaults/mato.yaml.
func Default() Config {
	e := worm.DefaultConfig()
	t := app.DefaultTiming()
	return Config{
		Arena: ArenaConfig{
			Width:  e.Width,
			Height: e.Height,
		},
		Speed: SpeedConfig{
			InitialStep:   e.InitialStep,
			MinStep:       e.MinStep,
			StepDecrement: e.StepDecrement,
		},
		Apples: e.Apples,
		Screens: ScreensConfig{
			StartBlink:       t.StartBlink,
			GameOverBlink:    t.GameOverBlink,
			GameOverDelay:    t.GameOverDelay,
			GameOverDuration: t.GameOverDuration,
		},
	}
}
