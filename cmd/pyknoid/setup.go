package main

import (
	"io"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/pyknoid/internal/assets"
	"github.com/vovakirdan/pyknoid/internal/audio"
	"github.com/vovakirdan/pyknoid/internal/config"
	"github.com/vovakirdan/pyknoid/internal/core"
	"github.com/vovakirdan/pyknoid/internal/engine"
	"github.com/vovakirdan/pyknoid/internal/stages"
)

// resources holds everything resolved at startup. Any error here is fatal.
type resources struct {
	cfg        config.GameConfig
	assets     *assets.Provider
	stages     *stages.Set
	difficulty config.DifficultyPreset
}

// bootstrap loads the config, assets and stages named by the global flags.
func bootstrap() (*resources, error) {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return nil, err
	}
	difficulty, err := config.ParseDifficulty(flagDifficulty)
	if err != nil {
		return nil, err
	}
	ap, err := assets.New(cfg.Theme)
	if err != nil {
		return nil, err
	}
	set, err := loadStages(cfg)
	if err != nil {
		return nil, err
	}
	if err := ap.CheckStages(set); err != nil {
		return nil, err
	}
	return &resources{cfg: cfg, assets: ap, stages: set, difficulty: difficulty}, nil
}

func loadStages(cfg config.GameConfig) (*stages.Set, error) {
	rows, cols := cfg.Gameplay.Rows, cfg.Gameplay.Cols
	if flagStages != "" {
		return stages.LoadDir(flagStages, rows, cols)
	}
	return stages.Builtin(rows, cols)
}

// context builds the state shared by one game.
func (g *resources) context(player audio.Player, logger *log.Logger, seed int64) *engine.Context {
	return &engine.Context{
		Config: g.cfg,
		Assets: g.assets,
		Stages: g.stages,
		Audio:  player,
		Logger: logger,
		RNG:    core.NewSimpleRNG(seed),
		Settings: engine.Settings{
			Sound:      g.cfg.Audio.Enabled,
			Difficulty: g.difficulty,
		},
	}
}

// fileLogger logs to path, or to ~/.pyknoid/pyknoid.log when path is empty.
// The terminal belongs to the game, so logging is discarded when the file
// cannot be opened.
func fileLogger(path string) (*log.Logger, func()) {
	if path == "" {
		path = config.UserPath("pyknoid.log")
	}

	var w io.Writer = io.Discard
	closeFn := func() {}
	if path != "" {
		//nolint:errcheck // Best-effort directory creation
		os.MkdirAll(filepath.Dir(path), 0o755)
		if f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600); err == nil {
			w = f
			closeFn = func() { f.Close() }
		}
	}

	return log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          "pyknoid",
	}), closeFn
}
