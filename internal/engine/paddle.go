package engine

import (
	"github.com/vovakirdan/pyknoid/internal/config"
	"github.com/vovakirdan/pyknoid/internal/core"
)

// Paddle is the player's bat. It follows the pointer horizontally.
type Paddle struct {
	Rect core.Rect

	// Magnetized holds a freshly served ball on top of the paddle until the
	// player clicks. It is released once for every ball waiting on it.
	Magnetized bool
}

// NewPaddle creates a magnetized paddle centered at the bottom of the field.
func NewPaddle(cfg config.GameConfig) *Paddle {
	r := core.NewRect(0, 0, cfg.Paddle.Width, cfg.Paddle.Height)
	r.SetCenterX(cfg.Field.Width / 2)
	r.SetBottom(cfg.Field.Height - cfg.Paddle.BottomOffset)
	return &Paddle{Rect: r, Magnetized: true}
}

// Update centers the paddle on pointerX, kept within [left, right].
func (p *Paddle) Update(pointerX float64, left, right int) {
	p.Rect.SetCenterX(core.Round(pointerX))
	if p.Rect.Left() < left {
		p.Rect.X = left
	} else if p.Rect.Right() > right {
		p.Rect.X = right - p.Rect.W
	}
}

// Release lets go of a magnetized ball. It returns false if nothing was held.
func (p *Paddle) Release() bool {
	if !p.Magnetized {
		return false
	}
	p.Magnetized = false
	return true
}
