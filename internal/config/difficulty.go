package config

import "fmt"

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// Presets lists every preset in display order.
var Presets = []DifficultyPreset{DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyFixed}

// ParsePreset parses a preset name. The empty string means normal.
func ParsePreset(name string) (DifficultyPreset, error) {
	if name == "" {
		return DifficultyNormal, nil
	}
	for _, p := range Presets {
		if string(p) == name {
			return p, nil
		}
	}
	return "", fmt.Errorf("config: unknown difficulty %q", name)
}

// ApplyPreset modifies the speed settings based on a difficulty preset.
// Normal keeps the loaded values.
func ApplyPreset(cfg *Config, preset DifficultyPreset) {
	switch preset {
	case DifficultyEasy:
		cfg.Speed.InitialStep = cfg.Speed.InitialStep * 6 / 5
		cfg.Speed.MinStep = cfg.Speed.MinStep * 3 / 2
		cfg.Speed.StepDecrement = max(cfg.Speed.StepDecrement/2, 1)
	case DifficultyHard:
		cfg.Speed.InitialStep = cfg.Speed.InitialStep * 3 / 5
		cfg.Speed.MinStep = max(cfg.Speed.MinStep*3/5, 1)
		cfg.Speed.StepDecrement = cfg.Speed.StepDecrement * 3 / 2
	case DifficultyFixed:
		cfg.Speed.StepDecrement = 0
	}
	if cfg.Speed.InitialStep < cfg.Speed.MinStep {
		cfg.Speed.InitialStep = cfg.Speed.MinStep
	}
}
