package engine

import (
	"fmt"

	"github.com/dhconnelly/rtreego"

	"github.com/vovakirdan/pyknoid/internal/assets"
	"github.com/vovakirdan/pyknoid/internal/config"
	"github.com/vovakirdan/pyknoid/internal/core"
	"github.com/vovakirdan/pyknoid/internal/stages"
)

// BlockKind selects what a block does to the ball that hits it.
type BlockKind int

const (
	KindStandard BlockKind = iota // Score and deflect only
	KindSpeedUp                   // Ball jumps to its maximum speed
	KindSlowDown                  // Ball speed is halved
	KindIce                       // Shatters into an extra ball
	kindCount
)

// String returns the grid code prefix of the kind.
func (k BlockKind) String() string {
	switch k {
	case KindStandard:
		return stages.KindStandard
	case KindSpeedUp:
		return stages.KindSpeedUp
	case KindSlowDown:
		return stages.KindSlowDown
	case KindIce:
		return stages.KindIce
	default:
		return "???"
	}
}

// kindFromPrefix maps a grid code prefix to a kind.
func kindFromPrefix(prefix string) (BlockKind, bool) {
	switch prefix {
	case stages.KindStandard:
		return KindStandard, true
	case stages.KindSpeedUp:
		return KindSpeedUp, true
	case stages.KindSlowDown:
		return KindSlowDown, true
	case stages.KindIce:
		return KindIce, true
	}
	return 0, false
}

// Block is a destructible rectangle in the stage grid.
type Block struct {
	ID        int // Row-major grid position, used for deterministic ordering
	Code      string
	Kind      BlockKind
	Rect      core.Rect
	Points    int
	Sprite    assets.Sprite
	Destroyed bool

	bounds rtreego.Rect
}

// Bounds implements rtreego.Spatial.
func (b *Block) Bounds() rtreego.Rect {
	return b.bounds
}

// buildBlocks instantiates a block for every non-empty cell of a grid.
func buildBlocks(g stages.Grid, cfg config.GameConfig, ap *assets.Provider) ([]*Block, error) {
	bc := cfg.Blocks
	var blocks []*Block
	for r, row := range g {
		for c, code := range row {
			if code == "" {
				continue
			}
			prefix, _, err := stages.SplitCode(code)
			if err != nil {
				return nil, err
			}
			kind, ok := kindFromPrefix(prefix)
			if !ok {
				return nil, fmt.Errorf("block code %q: unsupported kind", code)
			}
			sprite, err := ap.BlockSprite(code)
			if err != nil {
				return nil, err
			}
			rect := core.NewRect(bc.OriginX+c*bc.Width, bc.OriginY+r*bc.Height, bc.Width, bc.Height)
			bounds, err := toSpatialRect(rect)
			if err != nil {
				return nil, err
			}
			blocks = append(blocks, &Block{
				ID:     r*len(row) + c,
				Code:   code,
				Kind:   kind,
				Rect:   rect,
				Points: cfg.Points(prefix),
				Sprite: sprite,
				bounds: bounds,
			})
		}
	}
	return blocks, nil
}

// toSpatialRect converts a pixel rectangle to the R-tree representation.
func toSpatialRect(r core.Rect) (rtreego.Rect, error) {
	return rtreego.NewRect(
		rtreego.Point{float64(r.X), float64(r.Y)},
		[]float64{float64(r.W), float64(r.H)},
	)
}
