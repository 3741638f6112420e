package engine

import (
	"fmt"
	"strconv"

	"github.com/vovakirdan/pyknoid/internal/assets"
	"github.com/vovakirdan/pyknoid/internal/config"
	"github.com/vovakirdan/pyknoid/internal/core"
)

// Phase is the level's own state machine.
type Phase int

const (
	PhaseServing    Phase = iota // Ball held on the paddle, waiting for a click
	PhasePlaying                 // Normal simulation
	PhasePaused                  // All balls lost, waiting for Enter
	PhaseStageClear              // Short banner before the next stage
	PhaseGameOver                // No lives left; the level pops itself
	PhaseWon                     // Last stage cleared
)

// String returns a human-readable name for the phase.
func (p Phase) String() string {
	switch p {
	case PhaseServing:
		return "serving"
	case PhasePlaying:
		return "playing"
	case PhasePaused:
		return "paused"
	case PhaseStageClear:
		return "stage_clear"
	case PhaseGameOver:
		return "game_over"
	case PhaseWon:
		return "won"
	default:
		return "unknown"
	}
}

// Level is one run of the game, from stage 1 until the lives run out, the
// last stage is cleared or the player leaves. Score and lives live here, so
// a new run always starts from zero.
type Level struct {
	ctx *Context
	cfg config.GameConfig

	phase  Phase
	timer  float64 // Countdown for Paused and StageClear
	stage  int
	lives  int
	score  int
	nextID int

	paddle  *Paddle
	balls   []*Ball
	spawned []*Ball // Added by reactions during the ball loop
	blocks  []*Block
	index   *BlockIndex
}

// NewLevel starts a run at stage 1. It fails if the first stage cannot be loaded.
func NewLevel(ctx *Context) (*Level, error) {
	lv := &Level{
		ctx:   ctx,
		cfg:   ctx.LevelConfig(),
		stage: 1,
	}
	lv.lives = lv.cfg.Gameplay.Lives
	if err := lv.loadStage(); err != nil {
		return nil, err
	}
	lv.serve()
	return lv, nil
}

// Enter implements State.
func (lv *Level) Enter() {
	lv.ctx.Logger.Info("run started", "stage", lv.stage, "lives", lv.lives, "difficulty", lv.ctx.Settings.Difficulty)
}

// Exit implements State.
func (lv *Level) Exit() {
	lv.ctx.Logger.Info("run ended", "stage", lv.stage, "score", lv.score, "phase", lv.phase)
}

// Update implements State.
func (lv *Level) Update(dt float64, in *core.InputSnapshot) Transition {
	defer in.Clear()

	if in.Has(core.ButtonEscape) {
		return Pop()
	}

	switch lv.phase {
	case PhasePaused:
		lv.timer -= dt
		if lv.timer <= 0 && in.Has(core.ButtonEnter) {
			lv.serve()
		}
		return None()
	case PhaseStageClear:
		lv.timer -= dt
		if lv.timer <= 0 {
			lv.phase = PhaseServing
		}
		return None()
	case PhaseWon:
		if in.Has(core.ButtonEnter) {
			return Pop()
		}
		return None()
	case PhaseGameOver:
		return Pop()
	}

	left, right := lv.bounds()
	lv.paddle.Update(in.PointerX, left, right)
	if in.Has(core.ButtonPrimaryClick) && lv.paddle.Release() {
		lv.phase = PhasePlaying
	}

	for _, b := range lv.balls {
		b.Update(dt, lv)
	}
	lv.balls = append(lv.balls, lv.spawned...)
	lv.spawned = lv.spawned[:0]

	if lv.removeCrashed() {
		return lv.loseLife()
	}

	if lv.index.Len() == 0 {
		return lv.clearStage()
	}
	return None()
}

// removeCrashed drops balls that fell off the field. It returns true when
// that emptied a non-empty ball set.
func (lv *Level) removeCrashed() bool {
	before := len(lv.balls)
	alive := lv.balls[:0]
	for _, b := range lv.balls {
		if !b.Crashed {
			alive = append(alive, b)
		}
	}
	for i := len(alive); i < before; i++ {
		lv.balls[i] = nil
	}
	lv.balls = alive
	return before > 0 && len(alive) == 0
}

func (lv *Level) loseLife() Transition {
	lv.lives--
	lv.ctx.Play(assets.CueLifeLost)
	if lv.lives <= 0 {
		lv.phase = PhaseGameOver
		lv.ctx.Logger.Info("game over", "stage", lv.stage, "score", lv.score)
		return Pop()
	}
	lv.ctx.Logger.Info("life lost", "lives", lv.lives)
	lv.phase = PhasePaused
	lv.timer = lv.cfg.Gameplay.PauseDelay
	return None()
}

func (lv *Level) clearStage() Transition {
	lv.score += lv.cfg.Gameplay.StageBonus * lv.stage
	lv.ctx.Play(assets.CueStageClear)
	lv.ctx.Logger.Info("stage clear", "stage", lv.stage, "score", lv.score)

	if lv.stage >= lv.ctx.Stages.Count() {
		lv.phase = PhaseWon
		lv.balls = nil
		return None()
	}

	lv.stage++
	if err := lv.loadStage(); err != nil {
		lv.ctx.Logger.Error("cannot load stage", "stage", lv.stage, "err", err)
		lv.ctx.Fail(err)
		return Quit()
	}
	lv.serve()
	lv.phase = PhaseStageClear
	lv.timer = lv.cfg.Gameplay.StageClearDelay
	return None()
}

// loadStage replaces the blocks with the layout of the current stage.
func (lv *Level) loadStage() error {
	grid, err := lv.ctx.Stages.Stage(lv.stage)
	if err != nil {
		return err
	}
	blocks, err := buildBlocks(grid, lv.cfg, lv.ctx.Assets)
	if err != nil {
		return fmt.Errorf("stage %d: %w", lv.stage, err)
	}
	lv.blocks = blocks
	lv.index = NewBlockIndex(blocks)
	lv.ctx.Logger.Debug("stage loaded", "stage", lv.stage, "blocks", len(blocks))
	return nil
}

// serve recreates the paddle and puts a fresh ball on it.
func (lv *Level) serve() {
	lv.paddle = NewPaddle(lv.cfg)
	bc := lv.cfg.Ball
	b := newBall(lv.newID(), bc.Size, 0, 0, bc.ServeAngle, bc.Speed, bc.MinSpeed, bc.MaxSpeed)
	b.Magnetized = true
	b.follow(lv.paddle)
	lv.balls = []*Ball{b}
	lv.spawned = lv.spawned[:0]
	lv.phase = PhaseServing
}

// spawn adds a free ball centered at (x, y). It joins play after the current ball loop.
func (lv *Level) spawn(x, y int, angle, speed float64) {
	bc := lv.cfg.Ball
	b := newBall(lv.newID(), bc.Size, x, y, angle, speed, bc.MinSpeed, bc.MaxSpeed)
	lv.spawned = append(lv.spawned, b)
}

// destroy removes a block from play and awards its points.
func (lv *Level) destroy(b *Block) {
	if b.Destroyed {
		return
	}
	b.Destroyed = true
	lv.index.Remove(b)
	lv.score += b.Points
}

// bounds returns the horizontal play area. Sidebars narrow it from
// sidebar_from_stage on.
func (lv *Level) bounds() (left, right int) {
	m := lv.margin()
	return m, lv.cfg.Field.Width - m
}

func (lv *Level) margin() int {
	if lv.cfg.Field.SidebarFromStage > 0 && lv.stage >= lv.cfg.Field.SidebarFromStage {
		return lv.cfg.Field.SidebarMargin
	}
	return 0
}

func (lv *Level) newID() int {
	lv.nextID++
	return lv.nextID
}

// Phase returns the current phase.
func (lv *Level) Phase() Phase { return lv.phase }

// Score returns the points collected in this run.
func (lv *Level) Score() int { return lv.score }

// Lives returns the remaining lives.
func (lv *Level) Lives() int { return lv.lives }

// Stage returns the 1-based stage number.
func (lv *Level) Stage() int { return lv.stage }

// Balls returns the live balls.
func (lv *Level) Balls() []*Ball { return lv.balls }

// Paddle returns the paddle.
func (lv *Level) Paddle() *Paddle { return lv.paddle }

// LiveBlocks returns the number of blocks still in play.
func (lv *Level) LiveBlocks() int { return lv.index.Len() }

// Render implements State. Layers: background, paddle, balls, blocks, HUD.
func (lv *Level) Render(dst Surface) {
	ap := lv.ctx.Assets
	fw, fh := lv.cfg.Field.Width, lv.cfg.Field.Height

	dst.Fill(ap.Background())
	dst.Blit(ap.Sprite(assets.SpritePaddle), lv.paddle.Rect)
	for _, b := range lv.balls {
		dst.Blit(ap.Sprite(assets.SpriteBall), b.Rect)
	}
	for _, b := range lv.blocks {
		if !b.Destroyed {
			dst.Blit(b.Sprite, b.Rect)
		}
	}

	// HUD
	if m := lv.margin(); m > 0 {
		side := ap.Sprite(assets.SpriteSidebar)
		dst.Blit(side, core.NewRect(0, 0, m, fh))
		dst.Blit(side, core.NewRect(fw-m, 0, m, fh))
	}
	dst.Text("SCORE "+strconv.Itoa(lv.score), fw/4, 30, ap.Text())
	dst.Text("STAGE "+strconv.Itoa(lv.stage), fw/2, 30, ap.Text())
	life := ap.Sprite(assets.SpriteLife)
	for i := 0; i < lv.lives; i++ {
		dst.Blit(life, core.NewRect(fw-100-i*40, 18, 24, 24))
	}

	switch lv.phase {
	case PhaseServing:
		dst.Text("CLICK TO LAUNCH", fw/2, fh*2/3, ap.Text())
	case PhasePaused:
		if lv.timer <= 0 {
			dst.Text("PRESS ENTER", fw/2, fh/2, ap.Highlight())
		}
	case PhaseStageClear:
		dst.Text(fmt.Sprintf("STAGE %d CLEAR", lv.stage-1), fw/2, fh/2, ap.Highlight())
	case PhaseWon:
		dst.Text("YOU WIN", fw/2, fh/2, ap.Highlight())
		dst.Text("PRESS ENTER", fw/2, fh/2+60, ap.Text())
	}
}
