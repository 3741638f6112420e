package engine

import "github.com/vovakirdan/pyknoid/internal/core"

// defaultMaxDT bounds a tick when the config leaves max_dt unset.
const defaultMaxDT = 0.05

// Game drives the state stack one tick at a time. The platform calls Tick
// and Render from a single goroutine.
type Game struct {
	ctx     *Context
	stack   Stack
	running bool
}

// NewGame creates a game showing the main menu.
func NewGame(ctx *Context) *Game {
	g := &Game{ctx: ctx, running: true}
	g.stack.Push(NewMainMenu(ctx))
	return g
}

// Tick advances the active state by dt seconds, clamped to [0, max_dt].
// Below 1/max_dt frames per second the game runs slower than wall time
// instead of taking longer steps.
func (g *Game) Tick(dt float64, in *core.InputSnapshot) {
	if !g.running {
		return
	}
	maxDT := g.ctx.Config.Field.MaxDT
	if maxDT <= 0 {
		maxDT = defaultMaxDT
	}
	dt = core.ClampF(dt, 0, maxDT)

	t := g.stack.Top().Update(dt, in)
	if g.stack.Apply(t) {
		g.Stop()
	}
}

// Render draws the active state.
func (g *Game) Render(dst Surface) {
	if top := g.stack.Top(); top != nil {
		top.Render(dst)
	}
}

// Stop ends the game, exiting every state. It is safe to call more than once.
func (g *Game) Stop() {
	if !g.running {
		return
	}
	g.running = false
	g.stack.Clear()
}

// Running reports whether the game still accepts ticks.
func (g *Game) Running() bool {
	return g.running
}

// Err returns the error that ended the game, if any.
func (g *Game) Err() error {
	return g.ctx.Err()
}

// Top returns the active state.
func (g *Game) Top() State {
	return g.stack.Top()
}

// Depth returns the number of states on the stack.
func (g *Game) Depth() int {
	return g.stack.Len()
}
