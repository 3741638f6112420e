package core

// Button is a discrete input the engine reacts to, abstracted from physical keys.
type Button int

const (
	ButtonUp           Button = iota // Up arrow, W, K - menu cursor up
	ButtonDown                       // Down arrow, S, J - menu cursor down
	ButtonLeft                       // Left arrow, A, H - option value / nudge pointer
	ButtonRight                      // Right arrow, D, L - option value / nudge pointer
	ButtonEnter                      // Enter - confirm, acknowledge life loss
	ButtonEscape                     // Esc, B - leave the current mode
	ButtonPrimaryClick               // Left mouse button, Space - release the ball
	buttonCount
)

// String returns a human-readable name for the button.
func (b Button) String() string {
	switch b {
	case ButtonUp:
		return "Up"
	case ButtonDown:
		return "Down"
	case ButtonLeft:
		return "Left"
	case ButtonRight:
		return "Right"
	case ButtonEnter:
		return "Enter"
	case ButtonEscape:
		return "Escape"
	case ButtonPrimaryClick:
		return "PrimaryClick"
	default:
		return "Unknown"
	}
}

// InputSnapshot is the input state for exactly one simulation tick.
// The platform fills it between ticks; the consuming state clears it
// once it has acted on it so presses never leak into the next tick.
type InputSnapshot struct {
	pressed [buttonCount]bool

	// PointerX is the pointer position in play-field pixels.
	// It is continuous and survives Clear.
	PointerX float64
}

// NewInputSnapshot creates an empty snapshot with the pointer at x.
func NewInputSnapshot(pointerX float64) InputSnapshot {
	return InputSnapshot{PointerX: pointerX}
}

// Press marks a button as pressed for this tick.
func (s *InputSnapshot) Press(b Button) {
	if b < 0 || b >= buttonCount {
		return
	}
	s.pressed[b] = true
}

// Has returns true if the button was pressed this tick.
func (s *InputSnapshot) Has(b Button) bool {
	if b < 0 || b >= buttonCount {
		return false
	}
	return s.pressed[b]
}

// Any returns true if any button was pressed this tick.
func (s *InputSnapshot) Any() bool {
	for _, p := range s.pressed {
		if p {
			return true
		}
	}
	return false
}

// Clear releases every button. The pointer position is kept.
func (s *InputSnapshot) Clear() {
	s.pressed = [buttonCount]bool{}
}
