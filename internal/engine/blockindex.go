package engine

import (
	"sort"

	"github.com/dhconnelly/rtreego"

	"github.com/vovakirdan/pyknoid/internal/core"
)

// R-tree node fan-out. A stage holds at most a few hundred blocks.
const (
	indexMinChildren = 4
	indexMaxChildren = 16
)

// BlockIndex is the broad phase for ball-block collisions: an R-tree over
// the live blocks of a stage.
type BlockIndex struct {
	tree *rtreego.Rtree
}

// NewBlockIndex bulk-loads the given blocks.
func NewBlockIndex(blocks []*Block) *BlockIndex {
	spatials := make([]rtreego.Spatial, 0, len(blocks))
	for _, b := range blocks {
		if !b.Destroyed {
			spatials = append(spatials, b)
		}
	}
	return &BlockIndex{
		tree: rtreego.NewTree(2, indexMinChildren, indexMaxChildren, spatials...),
	}
}

// Len returns the number of live blocks.
func (ix *BlockIndex) Len() int {
	return ix.tree.Size()
}

// Remove drops a block from the index. It reports whether the block was present.
func (ix *BlockIndex) Remove(b *Block) bool {
	return ix.tree.Delete(b)
}

// Query returns the live blocks overlapping r, ordered by block ID.
// The R-tree hit list is filtered with the same strict overlap test the
// rest of the physics uses.
func (ix *BlockIndex) Query(r core.Rect) []*Block {
	bb, err := toSpatialRect(r)
	if err != nil {
		return nil
	}
	hits := ix.tree.SearchIntersect(bb)
	out := make([]*Block, 0, len(hits))
	for _, s := range hits {
		b := s.(*Block)
		if !b.Destroyed && b.Rect.Intersects(r) {
			out = append(out, b)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}
