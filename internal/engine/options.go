package engine

import (
	"strings"

	"github.com/vovakirdan/pyknoid/internal/assets"
	"github.com/vovakirdan/pyknoid/internal/config"
	"github.com/vovakirdan/pyknoid/internal/core"
)

const (
	optionSound = iota
	optionDifficulty
	optionCount
)

// Options edits the shared Settings. Changes apply to the next run.
type Options struct {
	ctx    *Context
	cursor int
}

// NewOptions creates the options screen.
func NewOptions(ctx *Context) *Options {
	return &Options{ctx: ctx}
}

// Enter implements State.
func (o *Options) Enter() {}

// Exit implements State.
func (o *Options) Exit() {
	o.ctx.Logger.Debug("options saved", "sound", o.ctx.Settings.Sound, "difficulty", o.ctx.Settings.Difficulty)
}

// Update implements State.
func (o *Options) Update(_ float64, in *core.InputSnapshot) Transition {
	defer in.Clear()

	switch {
	case in.Has(core.ButtonEscape):
		return Pop()
	case in.Has(core.ButtonUp):
		o.cursor = (o.cursor - 1 + optionCount) % optionCount
	case in.Has(core.ButtonDown):
		o.cursor = (o.cursor + 1) % optionCount
	case in.Has(core.ButtonLeft):
		o.change(-1)
	case in.Has(core.ButtonRight), in.Has(core.ButtonEnter):
		o.change(1)
	default:
		return None()
	}
	o.ctx.Play(assets.CueMenu)
	return None()
}

// change steps the highlighted setting by dir.
func (o *Options) change(dir int) {
	s := &o.ctx.Settings
	switch o.cursor {
	case optionSound:
		s.Sound = !s.Sound
	case optionDifficulty:
		i := 0
		for j, p := range config.Presets {
			if p == s.Difficulty {
				i = j
			}
		}
		n := len(config.Presets)
		s.Difficulty = config.Presets[(i+dir+n)%n]
	}
}

// Render implements State.
func (o *Options) Render(dst Surface) {
	ap := o.ctx.Assets
	fw, fh := o.ctx.Config.Field.Width, o.ctx.Config.Field.Height

	sound := "OFF"
	if o.ctx.Settings.Sound {
		sound = "ON"
	}
	lines := [optionCount]string{
		optionSound:      "SOUND: " + sound,
		optionDifficulty: "DIFFICULTY: " + strings.ToUpper(string(o.ctx.Settings.Difficulty)),
	}

	dst.Fill(ap.Background())
	dst.Text("OPTIONS", fw/2, fh/4, ap.Highlight())
	for i, line := range lines {
		c := ap.Text()
		if i == o.cursor {
			c = ap.Highlight()
			line = "< " + line + " >"
		}
		dst.Text(line, fw/2, fh/2+i*80, c)
	}
	dst.Text("ESC TO GO BACK", fw/2, fh*5/6, ap.Text())
}
