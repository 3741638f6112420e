package engine

import (
	"math"

	"github.com/vovakirdan/pyknoid/internal/core"
)

// Side is a set of block faces struck in one collision.
type Side uint8

const (
	SideTop    Side = 1 << iota // Ball came from above
	SideBottom                  // Ball came from below
	SideLeft                    // Ball came from the left
	SideRight                   // Ball came from the right
)

// Has reports whether s includes every face in o.
func (s Side) Has(o Side) bool {
	return s&o == o
}

// Count returns the number of faces in s.
func (s Side) Count() int {
	n := 0
	for f := SideTop; f <= SideRight; f <<= 1 {
		if s.Has(f) {
			n++
		}
	}
	return n
}

// paddleSpread is the deflection range across the paddle width; an edge hit
// leaves 0.4π from vertical.
const paddleSpread = 0.8 * math.Pi

// bounceWalls reflects the ball off the side walls at left and right and the
// ceiling at 0. An axis is reflected only while the ball overlaps that edge
// and still moves toward it. Returns true if any axis was reflected.
func bounceWalls(b *Ball, left, right int) bool {
	hit := false
	if b.Rect.Left() <= left && b.Vel.X < 0 {
		b.Vel = b.Vel.NegX()
		hit = true
	}
	if b.Rect.Right() >= right && b.Vel.X > 0 {
		b.Vel = b.Vel.NegX()
		hit = true
	}
	if b.Rect.Top() <= 0 && b.Vel.Y < 0 {
		b.Vel = b.Vel.NegY()
		hit = true
	}
	if hit {
		b.syncAngle()
	}
	return hit
}

// bouncePaddle sends a falling ball that overlaps the paddle back up. The
// outgoing angle depends on where the ball met the paddle: dead center goes
// straight up, edges go out at the widest allowed angle. Speed grows by boost.
func bouncePaddle(b *Ball, p *Paddle, boost float64) bool {
	if b.Vel.Y <= 0 || !b.Rect.Intersects(p.Rect) {
		return false
	}
	offset := float64(p.Rect.CenterX()-b.Rect.CenterX()) / float64(p.Rect.W)
	b.Angle = math.Pi + paddleSpread*offset
	b.SetSpeed(b.Speed + boost)
	return true
}

// struckSides decides which faces of block the ball came through, using the
// velocity before any reflection. A face counts when the matching ball edge
// lies within tol of it and the ball moves toward it. Opposite faces need
// opposite velocity signs, so at most one vertical and one horizontal face
// can be returned.
func struckSides(ball core.Rect, vel core.Vector2, block core.Rect, tol int) Side {
	var s Side
	if vel.Y < 0 && core.Abs(block.Bottom()-ball.Top()) < tol {
		s |= SideBottom
	}
	if vel.Y > 0 && core.Abs(block.Top()-ball.Bottom()) < tol {
		s |= SideTop
	}
	if vel.X > 0 && core.Abs(block.Left()-ball.Right()) < tol {
		s |= SideLeft
	}
	if vel.X < 0 && core.Abs(block.Right()-ball.Left()) < tol {
		s |= SideRight
	}
	return s
}

// deflect forces the velocity component of every struck face to point away
// from the block.
func deflect(b *Ball, s Side) {
	if s.Has(SideTop) {
		b.Vel.Y = -math.Abs(b.Vel.Y)
	}
	if s.Has(SideBottom) {
		b.Vel.Y = math.Abs(b.Vel.Y)
	}
	if s.Has(SideLeft) {
		b.Vel.X = -math.Abs(b.Vel.X)
	}
	if s.Has(SideRight) {
		b.Vel.X = math.Abs(b.Vel.X)
	}
	if s != 0 {
		b.syncAngle()
	}
}
