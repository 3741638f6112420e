package engine

import (
	"math"

	"github.com/vovakirdan/pyknoid/internal/assets"
	"github.com/vovakirdan/pyknoid/internal/core"
)

// Ball is a moving ball. Pos is the sub-pixel center; Rect follows it.
type Ball struct {
	ID    int
	Rect  core.Rect
	Pos   core.Vector2
	Vel   core.Vector2
	Speed float64
	Angle float64 // Heading, see core.FromAngle

	MinSpeed float64
	MaxSpeed float64

	// Magnetized balls sit on the paddle while the paddle holds them.
	Magnetized bool
	Crashed    bool
}

// newBall creates a ball centered at (x, y) heading at angle.
func newBall(id, size, x, y int, angle, speed, minSpeed, maxSpeed float64) *Ball {
	b := &Ball{
		ID:       id,
		Rect:     core.NewRect(0, 0, size, size),
		Angle:    angle,
		MinSpeed: minSpeed,
		MaxSpeed: maxSpeed,
	}
	b.SetCenter(float64(x), float64(y))
	b.SetSpeed(speed)
	return b
}

// SetCenter moves the ball so its center is at (x, y).
func (b *Ball) SetCenter(x, y float64) {
	b.Pos = core.Vec(x, y)
	b.Rect.SetCenter(core.Round(x), core.Round(y))
}

// SetSpeed changes speed along the current heading, clamped to [MinSpeed, MaxSpeed].
func (b *Ball) SetSpeed(speed float64) {
	b.Speed = core.ClampF(speed, b.MinSpeed, b.MaxSpeed)
	b.Vel = core.FromAngle(b.Angle, b.Speed)
}

// syncAngle re-derives the heading after a velocity component was flipped.
func (b *Ball) syncAngle() {
	b.Angle = b.Vel.Angle()
}

// follow pins the ball on top of the paddle, centered.
func (b *Ball) follow(p *Paddle) {
	b.Rect.SetCenterX(p.Rect.CenterX())
	b.Rect.SetBottom(p.Rect.Top())
	cx, cy := b.Rect.Center()
	b.Pos = core.Vec(float64(cx), float64(cy))
}

// Update advances the ball by dt seconds and resolves its collisions
// against the walls, the paddle and at most one block. Long moves are
// split into substeps, each checked for collisions.
func (b *Ball) Update(dt float64, lv *Level) {
	if b.Magnetized {
		if lv.paddle.Magnetized {
			b.follow(lv.paddle)
			return
		}
		b.Magnetized = false
	}

	steps := substeps(b.Vel.Len()*dt, lv.cfg.Blocks.Tolerance)
	sub := dt / float64(steps)
	left, right := lv.bounds()
	struck := false
	for range steps {
		p := b.Pos.Add(b.Vel.Scale(sub))
		b.SetCenter(p.X, p.Y)

		if bounceWalls(b, left, right) {
			lv.ctx.Play(assets.CueWall)
		}
		if bouncePaddle(b, lv.paddle, lv.cfg.Ball.PaddleBoost) {
			lv.ctx.Play(assets.CuePaddle)
		}
		if !struck {
			struck = b.collideBlocks(lv)
		}
	}

	if b.Rect.Top() > lv.cfg.Field.Height+lv.cfg.Field.CrashMargin {
		b.Crashed = true
	}
}

// substeps splits a move of dist pixels into steps of at most tol-1 pixels.
func substeps(dist float64, tol int) int {
	step := float64(max(tol-1, 1))
	return max(1, int(math.Ceil(dist/step)))
}

// collideBlocks resolves a hit against the first overlapping block, if any.
// It reports whether a block was struck.
func (b *Ball) collideBlocks(lv *Level) bool {
	candidates := lv.index.Query(b.Rect)
	if len(candidates) == 0 {
		return false
	}
	target := candidates[0]
	sides := struckSides(b.Rect, b.Vel, target.Rect, lv.cfg.Blocks.Tolerance)
	if sides == 0 {
		return false
	}
	reactToHit(target.Kind, &hit{level: lv, ball: b, block: target, sides: sides})
	return true
}
