package config

import (
	_ "embed"
	"math"
)

//go:embed defaults/pyknoid.yaml
var defaultYAML []byte

// DefaultYAML returns the embedded default configuration file.
func DefaultYAML() []byte {
	return defaultYAML
}

// DefaultGameConfig returns the hard-coded default configuration.
// It mirrors defaults/pyknoid.yaml.
func DefaultGameConfig() GameConfig {
	return GameConfig{
		Field: FieldConfig{
			Width:            1280,
			Height:           960,
			SidebarMargin:    40,
			SidebarFromStage: 2,
			CrashMargin:      20,
			MaxDT:            0.05,
		},
		Paddle: PaddleConfig{
			Width:        120,
			Height:       20,
			BottomOffset: 14,
		},
		Ball: BallConfig{
			Size:        16,
			Speed:       400,
			MinSpeed:    200,
			MaxSpeed:    800,
			PaddleBoost: 10,
			ServeAngle:  1.1 * math.Pi,
		},
		Blocks: BlocksConfig{
			Width:     60,
			Height:    30,
			OriginX:   40,
			OriginY:   80,
			Tolerance: 8,
			Points: map[string]int{
				"STD": 10,
				"SPD": 20,
				"SLD": 20,
				"ICE": 50,
			},
		},
		Gameplay: GameplayConfig{
			Lives:           3,
			PauseDelay:      0.75,
			StageClearDelay: 1.0,
			StageBonus:      1000,
			Rows:            20,
			Cols:            20,
		},
		Audio: AudioConfig{
			Enabled: true,
			Volume:  0.3,
		},
		Theme: ThemeConfig{
			Background: "default",
			Text:       "bright_white",
			Highlight:  "bright_yellow",
			Sprites: map[string]SpriteConfig{
				"paddle":  {Glyph: "▀", Color: "bright_white"},
				"ball":    {Glyph: "●", Color: "bright_yellow"},
				"life":    {Glyph: "♥", Color: "bright_red"},
				"sidebar": {Glyph: "┃", Color: "gray"},
			},
			Blocks: map[string]SpriteConfig{
				"STD1": {Glyph: "█", Color: "blue"},
				"STD2": {Glyph: "█", Color: "green"},
				"STD3": {Glyph: "█", Color: "magenta"},
				"STD4": {Glyph: "█", Color: "orange"},
				"SPD1": {Glyph: "▓", Color: "bright_red"},
				"SLD1": {Glyph: "▒", Color: "bright_green"},
				"ICE1": {Glyph: "░", Color: "bright_cyan"},
			},
			Cues: map[string]CueConfig{
				"paddle":      {Freq: 440, Duration: 0.05},
				"wall":        {Freq: 330, Duration: 0.03},
				"block":       {Freq: 660, Duration: 0.04},
				"ice":         {Freq: 990, Duration: 0.08},
				"life_lost":   {Freq: 160, Duration: 0.4},
				"stage_clear": {Freq: 880, Duration: 0.3},
				"menu":        {Freq: 520, Duration: 0.03},
			},
		},
	}
}
