package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/pyknoid/internal/assets"
	"github.com/vovakirdan/pyknoid/internal/core"
)

// colorStyles maps core.Color to lipgloss styles.
var colorStyles = map[core.Color]lipgloss.Style{
	core.ColorDefault:       lipgloss.NewStyle(),
	core.ColorRed:           lipgloss.NewStyle().Foreground(lipgloss.Color("1")),
	core.ColorGreen:         lipgloss.NewStyle().Foreground(lipgloss.Color("2")),
	core.ColorYellow:        lipgloss.NewStyle().Foreground(lipgloss.Color("3")),
	core.ColorBlue:          lipgloss.NewStyle().Foreground(lipgloss.Color("4")),
	core.ColorMagenta:       lipgloss.NewStyle().Foreground(lipgloss.Color("5")),
	core.ColorCyan:          lipgloss.NewStyle().Foreground(lipgloss.Color("6")),
	core.ColorWhite:         lipgloss.NewStyle().Foreground(lipgloss.Color("7")),
	core.ColorBrightRed:     lipgloss.NewStyle().Foreground(lipgloss.Color("9")),
	core.ColorBrightGreen:   lipgloss.NewStyle().Foreground(lipgloss.Color("10")),
	core.ColorBrightYellow:  lipgloss.NewStyle().Foreground(lipgloss.Color("11")),
	core.ColorBrightBlue:    lipgloss.NewStyle().Foreground(lipgloss.Color("12")),
	core.ColorBrightMagenta: lipgloss.NewStyle().Foreground(lipgloss.Color("13")),
	core.ColorBrightCyan:    lipgloss.NewStyle().Foreground(lipgloss.Color("14")),
	core.ColorBrightWhite:   lipgloss.NewStyle().Foreground(lipgloss.Color("15")),
	core.ColorOrange:        lipgloss.NewStyle().Foreground(lipgloss.Color("208")),
	core.ColorGray:          lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
	core.ColorBlack:         lipgloss.NewStyle().Foreground(lipgloss.Color("0")),
}

// CellSurface draws field-space rectangles onto a character screen.
// The field is scaled to fill the whole screen; every rect covers at
// least one cell so small sprites never vanish.
type CellSurface struct {
	screen *core.Screen
	fieldW int
	fieldH int
}

// NewCellSurface creates a surface mapping a fieldW x fieldH field onto screen.
func NewCellSurface(screen *core.Screen, fieldW, fieldH int) *CellSurface {
	return &CellSurface{screen: screen, fieldW: fieldW, fieldH: fieldH}
}

func (s *CellSurface) col(x int) int {
	return x * s.screen.Width() / s.fieldW
}

func (s *CellSurface) row(y int) int {
	return y * s.screen.Height() / s.fieldH
}

// Fill implements engine.Surface.
func (s *CellSurface) Fill(c core.Color) {
	s.screen.Fill(' ', c)
}

// Blit implements engine.Surface.
func (s *CellSurface) Blit(sp assets.Sprite, r core.Rect) {
	x0, y0 := s.col(r.Left()), s.row(r.Top())
	x1, y1 := s.col(r.Right()), s.row(r.Bottom())
	if x1 <= x0 {
		x1 = x0 + 1
	}
	if y1 <= y0 {
		y1 = y0 + 1
	}
	s.screen.DrawRect(core.NewRect(x0, y0, x1-x0, y1-y0), sp.Glyph, sp.Color)
}

// Text implements engine.Surface.
func (s *CellSurface) Text(text string, cx, cy int, c core.Color) {
	s.screen.DrawTextCentered(s.col(cx), s.row(cy), text, c)
}

// FieldX converts a screen column to the field x coordinate of its center.
func (s *CellSurface) FieldX(col int) float64 {
	w := s.screen.Width()
	if w <= 0 {
		return 0
	}
	return (float64(col) + 0.5) * float64(s.fieldW) / float64(w)
}

// RenderScreen converts a Screen buffer to a styled string for display.
// Groups adjacent cells with the same color to minimize ANSI escape sequences.
func RenderScreen(s *core.Screen) string {
	var sb strings.Builder
	sb.Grow(s.Width()*s.Height()*2 + s.Height())

	for y := range s.Height() {
		if y > 0 {
			sb.WriteRune('\n')
		}

		x := 0
		for x < s.Width() {
			startColor := s.GetCell(x, y).Color

			var run strings.Builder
			for x < s.Width() {
				cell := s.GetCell(x, y)
				if cell.Color != startColor {
					break
				}
				run.WriteRune(cell.Rune)
				x++
			}

			style, ok := colorStyles[startColor]
			if !ok {
				style = colorStyles[core.ColorDefault]
			}
			sb.WriteString(style.Render(run.String()))
		}
	}
	return sb.String()
}
