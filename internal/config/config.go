// Package config provides YAML-based game configuration loading and
// difficulty presets for pyknoid.
package config

import (
	"errors"
	"fmt"
)

// GameConfig contains all tunable parameters of the game.
type GameConfig struct {
	Field    FieldConfig    `yaml:"field"`
	Paddle   PaddleConfig   `yaml:"paddle"`
	Ball     BallConfig     `yaml:"ball"`
	Blocks   BlocksConfig   `yaml:"blocks"`
	Gameplay GameplayConfig `yaml:"gameplay"`
	Audio    AudioConfig    `yaml:"audio"`
	Theme    ThemeConfig    `yaml:"theme"`
}

// FieldConfig defines the logical play field, in pixels.
type FieldConfig struct {
	Width            int     `yaml:"width"`
	Height           int     `yaml:"height"`
	SidebarMargin    int     `yaml:"sidebar_margin"`     // Wall inset once sidebars are shown
	SidebarFromStage int     `yaml:"sidebar_from_stage"` // First stage that has sidebars
	CrashMargin      int     `yaml:"crash_margin"`       // Ball is lost once its top passes height+margin
	MaxDT            float64 `yaml:"max_dt"`             // Upper bound on a single tick, seconds
}

// PaddleConfig defines the paddle geometry.
type PaddleConfig struct {
	Width        int `yaml:"width"`
	Height       int `yaml:"height"`
	BottomOffset int `yaml:"bottom_offset"` // Distance from the field bottom to the paddle bottom
}

// BallConfig defines ball size and speeds (pixels per second, angles in radians).
type BallConfig struct {
	Size        int     `yaml:"size"`
	Speed       float64 `yaml:"speed"`
	MinSpeed    float64 `yaml:"min_speed"`
	MaxSpeed    float64 `yaml:"max_speed"`
	PaddleBoost float64 `yaml:"paddle_boost"`
	ServeAngle  float64 `yaml:"serve_angle"`
}

// BlocksConfig defines block placement and scoring.
type BlocksConfig struct {
	Width     int            `yaml:"width"`
	Height    int            `yaml:"height"`
	OriginX   int            `yaml:"origin_x"`
	OriginY   int            `yaml:"origin_y"`
	Tolerance int            `yaml:"tolerance"` // Edge proximity used to pick the struck side
	Points    map[string]int `yaml:"points"`    // Keyed by kind prefix: STD, SPD, SLD, ICE
}

// GameplayConfig defines rules of a run.
type GameplayConfig struct {
	Lives           int     `yaml:"lives"`
	PauseDelay      float64 `yaml:"pause_delay"`       // Seconds before Enter is accepted after a life loss
	StageClearDelay float64 `yaml:"stage_clear_delay"` // Seconds the stage clear banner stays up
	StageBonus      int     `yaml:"stage_bonus"`       // Multiplied by the cleared stage number
	Rows            int     `yaml:"rows"`
	Cols            int     `yaml:"cols"`
}

// AudioConfig controls sound output.
type AudioConfig struct {
	Enabled bool    `yaml:"enabled"`
	Volume  float64 `yaml:"volume"` // 0.0 to 1.0
}

// ThemeConfig maps game elements to glyphs, colors and sound cues.
type ThemeConfig struct {
	Background string                  `yaml:"background"`
	Text       string                  `yaml:"text"`
	Highlight  string                  `yaml:"highlight"`
	Sprites    map[string]SpriteConfig `yaml:"sprites"`
	Blocks     map[string]SpriteConfig `yaml:"blocks"`
	Cues       map[string]CueConfig    `yaml:"cues"`
}

// SpriteConfig is a single glyph drawn in one color.
type SpriteConfig struct {
	Glyph string `yaml:"glyph"`
	Color string `yaml:"color"`
}

// CueConfig is a short generated tone.
type CueConfig struct {
	Freq     float64 `yaml:"freq"`     // Hz
	Duration float64 `yaml:"duration"` // Seconds
}

// ErrInvalidConfig is returned by Validate for values the engine cannot run with.
var ErrInvalidConfig = errors.New("invalid config")

// Validate checks the values the simulation depends on.
func (c GameConfig) Validate() error {
	switch {
	case c.Field.Width <= 0 || c.Field.Height <= 0:
		return fmt.Errorf("%w: field must have a positive size", ErrInvalidConfig)
	case c.Paddle.Width <= 0 || c.Paddle.Height <= 0:
		return fmt.Errorf("%w: paddle must have a positive size", ErrInvalidConfig)
	case c.Ball.Size <= 0:
		return fmt.Errorf("%w: ball size must be positive", ErrInvalidConfig)
	case c.Ball.MinSpeed <= 0 || c.Ball.MaxSpeed < c.Ball.MinSpeed:
		return fmt.Errorf("%w: ball speeds need 0 < min_speed <= max_speed", ErrInvalidConfig)
	case c.Blocks.Width <= 0 || c.Blocks.Height <= 0:
		return fmt.Errorf("%w: blocks must have a positive size", ErrInvalidConfig)
	case c.Blocks.Tolerance < 2:
		return fmt.Errorf("%w: block tolerance must be at least 2", ErrInvalidConfig)
	case c.Gameplay.Lives <= 0:
		return fmt.Errorf("%w: lives must be positive", ErrInvalidConfig)
	case c.Gameplay.Rows <= 0 || c.Gameplay.Cols <= 0:
		return fmt.Errorf("%w: stage grid must have rows and cols", ErrInvalidConfig)
	}
	return nil
}

// Points returns the score for destroying a block of the given kind prefix.
func (c GameConfig) Points(kind string) int {
	return c.Blocks.Points[kind]
}
