package engine

import (
	"io"
	"math"
	"testing"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/pyknoid/internal/assets"
	"github.com/vovakirdan/pyknoid/internal/config"
	"github.com/vovakirdan/pyknoid/internal/core"
	"github.com/vovakirdan/pyknoid/internal/stages"
)

// recordPlayer remembers the cues it was asked to play.
type recordPlayer struct {
	cues []string
}

func (r *recordPlayer) Play(c assets.Cue) {
	r.cues = append(r.cues, c.Name)
}

func (r *recordPlayer) count(name string) int {
	n := 0
	for _, c := range r.cues {
		if c == name {
			n++
		}
	}
	return n
}

// drawCall is one recorded Surface operation.
type drawCall struct {
	op     string // fill, blit, text
	sprite string
	rect   core.Rect
	text   string
}

// recordSurface is a Surface that keeps every call.
type recordSurface struct {
	calls []drawCall
}

func (s *recordSurface) Fill(core.Color) {
	s.calls = append(s.calls, drawCall{op: "fill"})
}

func (s *recordSurface) Blit(sp assets.Sprite, r core.Rect) {
	s.calls = append(s.calls, drawCall{op: "blit", sprite: sp.Name, rect: r})
}

func (s *recordSurface) Text(text string, _, _ int, _ core.Color) {
	s.calls = append(s.calls, drawCall{op: "text", text: text})
}

// grid builds a rows x cols grid from "row,col" -> code entries.
func grid(cfg config.GameConfig, cells map[[2]int]string) stages.Grid {
	g := make(stages.Grid, cfg.Gameplay.Rows)
	for r := range g {
		g[r] = make([]string, cfg.Gameplay.Cols)
	}
	for pos, code := range cells {
		g[pos[0]][pos[1]] = code
	}
	return g
}

// newTestContext builds a context over in-memory stages with a recording player.
func newTestContext(t *testing.T, grids ...stages.Grid) (*Context, *recordPlayer) {
	t.Helper()

	cfg := config.DefaultGameConfig()
	ap, err := assets.New(cfg.Theme)
	if err != nil {
		t.Fatalf("assets.New() error = %v", err)
	}
	list := make([]stages.Stage, len(grids))
	for i, g := range grids {
		list[i] = stages.Stage{Name: "test", Grid: g}
	}
	player := &recordPlayer{}
	return &Context{
		Config:   cfg,
		Assets:   ap,
		Stages:   stages.NewSet(cfg.Gameplay.Rows, cfg.Gameplay.Cols, list...),
		Audio:    player,
		Logger:   log.New(io.Discard),
		RNG:      core.NewSimpleRNG(1),
		Settings: Settings{Sound: true, Difficulty: config.DifficultyNormal},
	}, player
}

// newTestLevel starts a run over the given stage grids.
func newTestLevel(t *testing.T, grids ...stages.Grid) (*Level, *recordPlayer) {
	t.Helper()
	ctx, player := newTestContext(t, grids...)
	lv, err := NewLevel(ctx)
	if err != nil {
		t.Fatalf("NewLevel() error = %v", err)
	}
	return lv, player
}

// launch frees the serve ball and places it at (x, y) moving at (vx, vy).
func launch(lv *Level, x, y, vx, vy float64) *Ball {
	lv.paddle.Magnetized = false
	lv.phase = PhasePlaying
	b := lv.balls[0]
	b.Magnetized = false
	b.SetCenter(x, y)
	setVelocity(b, vx, vy)
	return b
}

func setVelocity(b *Ball, vx, vy float64) {
	b.Vel = core.Vec(vx, vy)
	b.Speed = math.Hypot(vx, vy)
	b.syncAngle()
}

// input returns a snapshot with the pointer on the paddle and the given buttons pressed.
func input(lv *Level, buttons ...core.Button) *core.InputSnapshot {
	in := core.NewInputSnapshot(float64(lv.paddle.Rect.CenterX()))
	for _, b := range buttons {
		in.Press(b)
	}
	return &in
}

func near(a, b float64) bool {
	return math.Abs(a-b) < 1e-6
}
