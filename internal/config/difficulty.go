package config

import (
	"fmt"
	"strings"
)

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
)

// Presets lists the presets in the order the options screen cycles through them.
var Presets = []DifficultyPreset{DifficultyEasy, DifficultyNormal, DifficultyHard}

// ParseDifficulty resolves a preset name. An empty name means normal.
func ParseDifficulty(name string) (DifficultyPreset, error) {
	switch p := DifficultyPreset(strings.ToLower(strings.TrimSpace(name))); p {
	case "":
		return DifficultyNormal, nil
	case DifficultyEasy, DifficultyNormal, DifficultyHard:
		return p, nil
	default:
		return "", fmt.Errorf("unknown difficulty %q (want easy, normal or hard)", name)
	}
}

// ApplyPreset returns a copy of cfg adjusted for the preset.
// Normal leaves the configured values untouched.
func ApplyPreset(cfg GameConfig, preset DifficultyPreset) GameConfig {
	switch preset {
	case DifficultyEasy:
		cfg.Gameplay.Lives += 2
		cfg.Paddle.Width = cfg.Paddle.Width * 5 / 4
		cfg.Ball.Speed *= 0.8
		cfg.Ball.MaxSpeed *= 0.8
	case DifficultyHard:
		cfg.Gameplay.Lives = max(1, cfg.Gameplay.Lives-1)
		cfg.Paddle.Width = cfg.Paddle.Width * 3 / 4
		cfg.Ball.Speed *= 1.25
		cfg.Ball.MaxSpeed *= 1.25
	}
	cfg.Ball.Speed = clampF(cfg.Ball.Speed, cfg.Ball.MinSpeed, cfg.Ball.MaxSpeed)
	return cfg
}

// clampF restricts a float64 to [lo, hi].
func clampF(val, lo, hi float64) float64 {
	return max(lo, min(hi, val))
}
