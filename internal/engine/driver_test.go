package engine

import (
	"testing"

	"github.com/vovakirdan/pyknoid/internal/core"
)

func TestGameStartsOnMenu(t *testing.T) {
	ctx, _ := newTestContext(t, grid(defaults, map[[2]int]string{{0, 0}: "STD1"}))
	g := NewGame(ctx)

	if _, ok := g.Top().(*MainMenu); !ok {
		t.Fatalf("Top() = %T, expected *MainMenu", g.Top())
	}
	if !g.Running() || g.Depth() != 1 {
		t.Errorf("Running() = %v, Depth() = %d", g.Running(), g.Depth())
	}
}

func TestGameRunAndEscapeBack(t *testing.T) {
	ctx, _ := newTestContext(t, grid(defaults, map[[2]int]string{{0, 0}: "STD1"}))
	g := NewGame(ctx)

	g.Tick(0.016, press(core.ButtonEnter))
	lv, ok := g.Top().(*Level)
	if !ok {
		t.Fatalf("Top() = %T, expected *Level", g.Top())
	}
	if g.Depth() != 2 {
		t.Errorf("Depth() = %d, expected 2", g.Depth())
	}

	g.Tick(0.016, press(core.ButtonEscape))
	if _, ok := g.Top().(*MainMenu); !ok {
		t.Fatalf("Top() = %T, expected back on the menu", g.Top())
	}

	// A second run starts from scratch
	g.Tick(0.016, press(core.ButtonEnter))
	if g.Top().(*Level) == lv {
		t.Error("Start should build a new level")
	}
}

func TestGameClampsDT(t *testing.T) {
	ctx, _ := newTestContext(t, grid(defaults, map[[2]int]string{{0, 0}: "STD1"}))
	g := NewGame(ctx)
	g.Tick(0, press(core.ButtonEnter))
	lv := g.Top().(*Level)

	b := launch(lv, 640, 500, 0, -400)
	in := input(lv)
	g.Tick(10, in)
	if !near(b.Pos.Y, 500-400*0.05) {
		t.Errorf("Pos.Y = %v, expected a tick capped at max_dt", b.Pos.Y)
	}

	g.Tick(-1, input(lv))
	if !near(b.Pos.Y, 500-400*0.05) {
		t.Errorf("Pos.Y = %v, negative dt must not move the ball", b.Pos.Y)
	}
}

func TestGameQuitStops(t *testing.T) {
	ctx, _ := newTestContext(t)
	g := NewGame(ctx)

	g.Tick(0.016, press(core.ButtonUp))
	g.Tick(0.016, press(core.ButtonEnter))
	if g.Running() {
		t.Fatal("Quit should stop the game")
	}
	if g.Depth() != 0 {
		t.Errorf("Depth() = %d, expected every state exited", g.Depth())
	}

	// Further ticks and stops are harmless
	g.Tick(0.016, press(core.ButtonEnter))
	g.Stop()
	if g.Top() != nil {
		t.Error("Top() should be nil after Stop")
	}
	var s recordSurface
	g.Render(&s)
	if len(s.calls) != 0 {
		t.Errorf("Render after Stop drew %d calls", len(s.calls))
	}
}

func TestGameEscapeOnMenuIgnored(t *testing.T) {
	ctx, _ := newTestContext(t)
	g := NewGame(ctx)

	g.Tick(0.016, press(core.ButtonEscape))
	if !g.Running() || g.Depth() != 1 {
		t.Errorf("Running() = %v, Depth() = %d, expected the menu to stay", g.Running(), g.Depth())
	}
}
