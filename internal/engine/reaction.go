package engine

import (
	"math"

	"github.com/vovakirdan/pyknoid/internal/assets"
)

// hit is one ball striking one block.
type hit struct {
	level *Level
	ball  *Ball
	block *Block
	sides Side
}

// reactions holds the behavior of each block kind, indexed by BlockKind.
var reactions = [kindCount]func(h *hit){
	KindStandard: reactStandard,
	KindSpeedUp:  reactSpeedUp,
	KindSlowDown: reactSlowDown,
	KindIce:      reactIce,
}

// reactToHit applies the reaction of kind to h.
func reactToHit(kind BlockKind, h *hit) {
	if kind < 0 || kind >= kindCount {
		kind = KindStandard
	}
	reactions[kind](h)
}

// reactStandard is the reaction every block shares: award points, destroy
// the block, send the ball away from the struck faces.
func reactStandard(h *hit) {
	h.level.destroy(h.block)
	deflect(h.ball, h.sides)
	h.level.ctx.Play(assets.CueBlock)
}

func reactSpeedUp(h *hit) {
	h.ball.SetSpeed(h.ball.MaxSpeed)
	reactStandard(h)
}

func reactSlowDown(h *hit) {
	h.ball.SetSpeed(h.ball.Speed / 2)
	reactStandard(h)
}

// reactIce shatters the block into an extra ball flying off in a random direction.
func reactIce(h *hit) {
	reactStandard(h)
	angle := h.level.ctx.RNG.Float64() * 2 * math.Pi
	cx, cy := h.block.Rect.Center()
	h.level.spawn(cx, cy, angle, h.ball.Speed)
	h.level.ctx.Play(assets.CueIce)
}
