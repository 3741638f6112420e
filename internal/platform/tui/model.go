package tui

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/pyknoid/internal/core"
	"github.com/vovakirdan/pyknoid/internal/engine"
)

// pointerSteps is how many key presses move the paddle across the field.
const pointerSteps = 40

// Model is the Bubble Tea model driving one engine.Game.
type Model struct {
	game    *engine.Game
	screen  *core.Screen
	surface *CellSurface
	keys    KeyMap
	help    help.Model
	config  core.RuntimeConfig

	fieldW   int
	in       *core.InputSnapshot // Buttons collected between ticks
	pointer  float64             // Field x of the mouse or keyboard pointer
	last     time.Time
	quitting bool
}

// NewModel creates a model for game on a fieldW x fieldH field.
// One terminal row is kept for the help footer.
func NewModel(game *engine.Game, fieldW, fieldH int, cfg core.RuntimeConfig) Model {
	screen := core.NewScreen(cfg.ScreenW, max(cfg.ScreenH-1, 1))
	in := core.NewInputSnapshot(float64(fieldW) / 2)
	return Model{
		game:    game,
		screen:  screen,
		surface: NewCellSurface(screen, fieldW, fieldH),
		keys:    DefaultKeyMap(),
		help:    help.New(),
		config:  cfg,
		fieldW:  fieldW,
		in:      &in,
		pointer: in.PointerX,
	}
}

// Init starts the tick loop.
func (m Model) Init() tea.Cmd {
	return tickCmd(m.config.TickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		return m.handleMouse(msg)

	case tea.WindowSizeMsg:
		m.config.ScreenW = msg.Width
		m.config.ScreenH = msg.Height
		m.screen.Resize(msg.Width, max(msg.Height-1, 1))
		m.help.Width = msg.Width
		return m, nil

	case TickMsg:
		return m.handleTick(time.Time(msg))
	}

	return m, nil
}

// handleKey records a button for the next tick. Quit closes the game at once.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.game.Stop()
		m.quitting = true
		return m, tea.Quit
	case key.Matches(msg, m.keys.Screenshot):
		m.saveScreenshot()
		return m, nil
	}

	b, ok := m.keys.MapKey(msg)
	if !ok {
		return m, nil
	}
	m.in.Press(b)

	step := float64(m.fieldW) / pointerSteps
	switch b {
	case core.ButtonLeft:
		m.pointer = core.ClampF(m.pointer-step, 0, float64(m.fieldW))
	case core.ButtonRight:
		m.pointer = core.ClampF(m.pointer+step, 0, float64(m.fieldW))
	}
	return m, nil
}

// handleMouse moves the pointer and turns a left press into a click.
func (m Model) handleMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	m.pointer = m.surface.FieldX(msg.X)
	if msg.Action == tea.MouseActionPress && msg.Button == tea.MouseButtonLeft {
		m.in.Press(core.ButtonPrimaryClick)
	}
	return m, nil
}

// handleTick advances the game by the wall time since the previous tick.
func (m Model) handleTick(now time.Time) (tea.Model, tea.Cmd) {
	dt := elapsed(m.last, now)
	m.last = now

	m.in.PointerX = m.pointer
	m.game.Tick(dt, m.in)
	m.in.Clear()

	if !m.game.Running() {
		m.quitting = true
		return m, tea.Quit
	}
	return m, tickCmd(m.config.TickRate)
}

// saveScreenshot writes the current frame as plain text.
func (m Model) saveScreenshot() {
	m.game.Render(m.surface)

	home, err := os.UserHomeDir()
	if err != nil {
		return
	}
	dir := filepath.Join(home, ".pyknoid", "screenshots")
	//nolint:errcheck // Best-effort directory creation
	os.MkdirAll(dir, 0o755)

	filename := fmt.Sprintf("pyknoid_%s.txt", time.Now().Format("20060102_150405"))
	//nolint:errcheck // Best-effort save, game continues regardless
	os.WriteFile(filepath.Join(dir, filename), []byte(m.screen.String()), 0o600)
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	m.game.Render(m.surface)
	return RenderScreen(m.screen) + "\n" + m.help.View(m.keys)
}

// ProgramOptions returns the options every game program runs with.
// All-motion tracking reports hover moves, so the paddle follows the
// mouse without a button held.
func ProgramOptions() []tea.ProgramOption {
	return []tea.ProgramOption{
		tea.WithAltScreen(),
		tea.WithMouseAllMotion(),
	}
}

// Run runs game in the local terminal until it stops.
func Run(game *engine.Game, fieldW, fieldH int, cfg core.RuntimeConfig) error {
	model := NewModel(game, fieldW, fieldH, cfg)

	p := tea.NewProgram(model, ProgramOptions()...)

	_, err := p.Run()
	game.Stop()
	return err
}
