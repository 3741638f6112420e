package engine

import (
	"sync"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/pyknoid/internal/assets"
	"github.com/vovakirdan/pyknoid/internal/audio"
	"github.com/vovakirdan/pyknoid/internal/config"
	"github.com/vovakirdan/pyknoid/internal/core"
	"github.com/vovakirdan/pyknoid/internal/stages"
)

// Settings are the values the options screen edits.
type Settings struct {
	Sound      bool
	Difficulty config.DifficultyPreset
}

// Context is everything the states share. One Context belongs to one game.
type Context struct {
	Config   config.GameConfig
	Assets   *assets.Provider
	Stages   stages.Provider
	Audio    audio.Player
	Logger   *log.Logger
	RNG      *core.SimpleRNG
	Settings Settings

	mu  sync.Mutex
	err error
}

// LevelConfig returns the configuration with the current difficulty applied.
func (c *Context) LevelConfig() config.GameConfig {
	return config.ApplyPreset(c.Config, c.Settings.Difficulty)
}

// Play plays a named cue if sound is on.
func (c *Context) Play(name string) {
	if !c.Settings.Sound || c.Audio == nil {
		return
	}
	c.Audio.Play(c.Assets.Cue(name))
}

// Fail records an unrecoverable error. The first one wins.
func (c *Context) Fail(err error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.err == nil {
		c.err = err
	}
}

// Err returns the error recorded by Fail.
func (c *Context) Err() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.err
}
