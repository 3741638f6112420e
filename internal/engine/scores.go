package engine

import "github.com/vovakirdan/pyknoid/internal/core"

// HighScores is a read-only placeholder; scores are not kept between runs.
type HighScores struct {
	ctx *Context
}

// NewHighScores creates the scores screen.
func NewHighScores(ctx *Context) *HighScores {
	return &HighScores{ctx: ctx}
}

// Enter implements State.
func (h *HighScores) Enter() {}

// Exit implements State.
func (h *HighScores) Exit() {}

// Update implements State.
func (h *HighScores) Update(_ float64, in *core.InputSnapshot) Transition {
	defer in.Clear()
	if in.Has(core.ButtonEscape) {
		return Pop()
	}
	return None()
}

// Render implements State.
func (h *HighScores) Render(dst Surface) {
	ap := h.ctx.Assets
	fw, fh := h.ctx.Config.Field.Width, h.ctx.Config.Field.Height
	dst.Fill(ap.Background())
	dst.Text("HIGH SCORES", fw/2, fh/4, ap.Highlight())
	dst.Text("SCORES GO HERE", fw/2, fh/2, ap.Text())
}
