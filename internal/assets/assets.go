// Package assets resolves game elements to drawable sprites and sound cues.
// Everything the engine asks for is checked when the provider is built, so a
// missing entry stops the program before the first frame.
package assets

import (
	"errors"
	"fmt"
	"sort"
	"unicode/utf8"

	"github.com/vovakirdan/pyknoid/internal/config"
	"github.com/vovakirdan/pyknoid/internal/core"
	"github.com/vovakirdan/pyknoid/internal/stages"
)

// Sprite names.
const (
	SpritePaddle  = "paddle"
	SpriteBall    = "ball"
	SpriteLife    = "life"
	SpriteSidebar = "sidebar"
)

// Cue names.
const (
	CuePaddle     = "paddle"
	CueWall       = "wall"
	CueBlock      = "block"
	CueIce        = "ice"
	CueLifeLost   = "life_lost"
	CueStageClear = "stage_clear"
	CueMenu       = "menu"
)

var (
	requiredSprites = []string{SpritePaddle, SpriteBall, SpriteLife, SpriteSidebar}
	requiredCues    = []string{CuePaddle, CueWall, CueBlock, CueIce, CueLifeLost, CueStageClear, CueMenu}
)

var (
	// ErrMissingSprite is returned when a sprite or block sprite is not defined.
	ErrMissingSprite = errors.New("missing sprite")
	// ErrMissingCue is returned when a sound cue is not defined.
	ErrMissingCue = errors.New("missing sound cue")
)

// Sprite is a drawable handle: one glyph in one color, tiled over a rectangle.
type Sprite struct {
	Name  string
	Glyph rune
	Color core.Color
}

// Cue is a play-once sound: a tone of a frequency and length.
type Cue struct {
	Name     string
	Freq     float64 // Hz
	Duration float64 // Seconds
}

// Provider holds the resolved theme.
type Provider struct {
	sprites    map[string]Sprite
	blocks     map[string]Sprite
	cues       map[string]Cue
	background core.Color
	text       core.Color
	highlight  core.Color
}

// New resolves a theme and verifies every required sprite and cue exists.
func New(theme config.ThemeConfig) (*Provider, error) {
	p := &Provider{
		sprites: make(map[string]Sprite, len(theme.Sprites)),
		blocks:  make(map[string]Sprite, len(theme.Blocks)),
		cues:    make(map[string]Cue, len(theme.Cues)),
	}

	var err error
	if p.background, err = color("background", theme.Background); err != nil {
		return nil, err
	}
	if p.text, err = color("text", theme.Text); err != nil {
		return nil, err
	}
	if p.highlight, err = color("highlight", theme.Highlight); err != nil {
		return nil, err
	}

	for name, sc := range theme.Sprites {
		s, err := sprite(name, sc)
		if err != nil {
			return nil, err
		}
		p.sprites[name] = s
	}
	for code, sc := range theme.Blocks {
		if _, _, err := stages.SplitCode(code); err != nil {
			return nil, fmt.Errorf("assets: block sprite: %w", err)
		}
		s, err := sprite(code, sc)
		if err != nil {
			return nil, err
		}
		p.blocks[code] = s
	}
	for name, cc := range theme.Cues {
		if cc.Freq <= 0 || cc.Duration <= 0 {
			return nil, fmt.Errorf("assets: cue %s: %w: freq and duration must be positive", name, ErrMissingCue)
		}
		p.cues[name] = Cue{Name: name, Freq: cc.Freq, Duration: cc.Duration}
	}

	for _, name := range requiredSprites {
		if _, ok := p.sprites[name]; !ok {
			return nil, fmt.Errorf("assets: %w: %s", ErrMissingSprite, name)
		}
	}
	for _, name := range requiredCues {
		if _, ok := p.cues[name]; !ok {
			return nil, fmt.Errorf("assets: %w: %s", ErrMissingCue, name)
		}
	}
	return p, nil
}

// CheckStages verifies that every block code used by the provider's stages has a sprite.
func (p *Provider) CheckStages(sp stages.Provider) error {
	for i := 1; i <= sp.Count(); i++ {
		g, err := sp.Stage(i)
		if err != nil {
			return err
		}
		for _, row := range g {
			for _, code := range row {
				if code == "" {
					continue
				}
				if _, err := p.BlockSprite(code); err != nil {
					return fmt.Errorf("stage %d: %w", i, err)
				}
			}
		}
	}
	return nil
}

// Sprite returns a named sprite. Names are checked by New; an unknown name
// yields a placeholder.
func (p *Provider) Sprite(name string) Sprite {
	if s, ok := p.sprites[name]; ok {
		return s
	}
	return Sprite{Name: name, Glyph: '?', Color: p.text}
}

// BlockSprite returns the sprite for a block code such as "STD2".
func (p *Provider) BlockSprite(code string) (Sprite, error) {
	s, ok := p.blocks[code]
	if !ok {
		return Sprite{}, fmt.Errorf("assets: %w: block %s", ErrMissingSprite, code)
	}
	return s, nil
}

// Cue returns a named sound cue.
func (p *Provider) Cue(name string) Cue {
	return p.cues[name]
}

// BlockCodes returns every code with a sprite, sorted.
func (p *Provider) BlockCodes() []string {
	codes := make([]string, 0, len(p.blocks))
	for code := range p.blocks {
		codes = append(codes, code)
	}
	sort.Strings(codes)
	return codes
}

// Background is the field fill color.
func (p *Provider) Background() core.Color { return p.background }

// Text is the default text color.
func (p *Provider) Text() core.Color { return p.text }

// Highlight is the selected menu entry color.
func (p *Provider) Highlight() core.Color { return p.highlight }

func sprite(name string, sc config.SpriteConfig) (Sprite, error) {
	if utf8.RuneCountInString(sc.Glyph) != 1 {
		return Sprite{}, fmt.Errorf("assets: sprite %s: %w: glyph must be one character, got %q", name, ErrMissingSprite, sc.Glyph)
	}
	c, err := color("sprite "+name, sc.Color)
	if err != nil {
		return Sprite{}, err
	}
	r, _ := utf8.DecodeRuneInString(sc.Glyph)
	return Sprite{Name: name, Glyph: r, Color: c}, nil
}

func color(what, name string) (core.Color, error) {
	if name == "" {
		return core.ColorDefault, nil
	}
	c, ok := core.ParseColor(name)
	if !ok {
		return 0, fmt.Errorf("assets: %s: unknown color %q", what, name)
	}
	return c, nil
}
