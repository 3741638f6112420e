// Package stages provides stage layouts: rectangular grids of block codes.
//
// A code is a kind prefix (STD, SPD, SLD, ICE) followed by a sprite suffix,
// for example "STD2" or "ICE1". An empty cell has no block. Grids are checked
// against the configured size when a stage is first requested, so a broken
// file only fails the run that reaches it.
package stages

import (
	"errors"
	"fmt"
	"strings"
)

// Kind prefixes understood by the engine.
const (
	KindStandard = "STD"
	KindSpeedUp  = "SPD"
	KindSlowDown = "SLD"
	KindIce      = "ICE"
)

// Kinds lists every valid code prefix.
var Kinds = []string{KindStandard, KindSpeedUp, KindSlowDown, KindIce}

var (
	// ErrNoStage is returned for an index outside [1, Count()].
	ErrNoStage = errors.New("no such stage")
	// ErrMalformedGrid is returned when a grid has the wrong shape or an unknown code.
	ErrMalformedGrid = errors.New("malformed stage grid")
)

// Grid is a row-major layout of block codes. "" means no block.
type Grid [][]string

// Blocks returns the number of non-empty cells.
func (g Grid) Blocks() int {
	n := 0
	for _, row := range g {
		for _, code := range row {
			if code != "" {
				n++
			}
		}
	}
	return n
}

// Provider resolves stage layouts by 1-based index.
type Provider interface {
	Stage(index int) (Grid, error)
	Count() int
}

// Stage is a named layout.
type Stage struct {
	Name string
	Grid Grid
}

// Set is an in-memory Provider with a fixed grid size.
type Set struct {
	rows, cols int
	stages     []Stage
}

// NewSet creates a provider over stages. Grids are validated lazily by Stage.
func NewSet(rows, cols int, stages ...Stage) *Set {
	return &Set{rows: rows, cols: cols, stages: stages}
}

// Count returns the number of stages.
func (s *Set) Count() int {
	return len(s.stages)
}

// Name returns the name of the stage at index, or "" if there is none.
func (s *Set) Name(index int) string {
	if index < 1 || index > len(s.stages) {
		return ""
	}
	return s.stages[index-1].Name
}

// Stage returns the validated grid for a 1-based stage index.
func (s *Set) Stage(index int) (Grid, error) {
	if index < 1 || index > len(s.stages) {
		return nil, fmt.Errorf("stages: stage %d of %d: %w", index, len(s.stages), ErrNoStage)
	}
	st := s.stages[index-1]
	if err := Validate(st.Grid, s.rows, s.cols); err != nil {
		return nil, fmt.Errorf("stages: stage %d (%s): %w", index, st.Name, err)
	}
	return st.Grid, nil
}

// Validate checks that g is exactly rows x cols and every code parses.
func Validate(g Grid, rows, cols int) error {
	if len(g) != rows {
		return fmt.Errorf("%w: %d rows, expected %d", ErrMalformedGrid, len(g), rows)
	}
	for r, row := range g {
		if len(row) != cols {
			return fmt.Errorf("%w: row %d has %d cells, expected %d", ErrMalformedGrid, r+1, len(row), cols)
		}
		for c, code := range row {
			if code == "" {
				continue
			}
			if _, _, err := SplitCode(code); err != nil {
				return fmt.Errorf("%w: row %d col %d: %v", ErrMalformedGrid, r+1, c+1, err)
			}
		}
	}
	return nil
}

// SplitCode separates a block code into its kind prefix and sprite suffix.
func SplitCode(code string) (kind, sprite string, err error) {
	for _, k := range Kinds {
		if strings.HasPrefix(code, k) {
			return k, strings.TrimPrefix(code, k), nil
		}
	}
	return "", "", fmt.Errorf("unknown block code %q", code)
}
