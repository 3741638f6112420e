package engine

import (
	"github.com/vovakirdan/pyknoid/internal/assets"
	"github.com/vovakirdan/pyknoid/internal/core"
)

// MenuItem identifies an entry of the main menu.
type MenuItem int

const (
	MenuStart MenuItem = iota
	MenuOptions
	MenuHighScores
	MenuQuit
	menuItemCount
)

var menuLabels = [menuItemCount]string{
	MenuStart:      "START",
	MenuOptions:    "OPTIONS",
	MenuHighScores: "HIGH SCORES",
	MenuQuit:       "QUIT",
}

// String returns the label shown for the item.
func (m MenuItem) String() string {
	if m < 0 || m >= menuItemCount {
		return ""
	}
	return menuLabels[m]
}

// MainMenu is the bottom of the state stack.
type MainMenu struct {
	ctx    *Context
	cursor int
}

// NewMainMenu creates the main menu with the cursor on Start.
func NewMainMenu(ctx *Context) *MainMenu {
	return &MainMenu{ctx: ctx}
}

// Cursor returns the highlighted item.
func (m *MainMenu) Cursor() MenuItem {
	return MenuItem(m.cursor)
}

// Enter implements State.
func (m *MainMenu) Enter() {}

// Exit implements State.
func (m *MainMenu) Exit() {}

// Update implements State. The cursor wraps in both directions.
func (m *MainMenu) Update(_ float64, in *core.InputSnapshot) Transition {
	defer in.Clear()

	n := int(menuItemCount)
	switch {
	case in.Has(core.ButtonUp):
		m.cursor = (m.cursor - 1 + n) % n
		m.ctx.Play(assets.CueMenu)
	case in.Has(core.ButtonDown):
		m.cursor = (m.cursor + 1) % n
		m.ctx.Play(assets.CueMenu)
	case in.Has(core.ButtonEnter):
		return m.choose()
	}
	return None()
}

func (m *MainMenu) choose() Transition {
	switch m.Cursor() {
	case MenuStart:
		lv, err := NewLevel(m.ctx)
		if err != nil {
			m.ctx.Logger.Error("cannot start run", "err", err)
			m.ctx.Fail(err)
			return Quit()
		}
		return Push(lv)
	case MenuOptions:
		return Push(NewOptions(m.ctx))
	case MenuHighScores:
		return Push(NewHighScores(m.ctx))
	case MenuQuit:
		return Quit()
	}
	return None()
}

// Render implements State.
func (m *MainMenu) Render(dst Surface) {
	ap := m.ctx.Assets
	fw, fh := m.ctx.Config.Field.Width, m.ctx.Config.Field.Height

	dst.Fill(ap.Background())
	dst.Text("PYKNOID", fw/2, fh/4, ap.Highlight())
	for i := 0; i < int(menuItemCount); i++ {
		c := ap.Text()
		label := MenuItem(i).String()
		if i == m.cursor {
			c = ap.Highlight()
			label = "> " + label + " <"
		}
		dst.Text(label, fw/2, fh/2+i*80, c)
	}
}
