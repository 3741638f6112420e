// Package engine is the breakout simulation: block reactions, ball and
// paddle physics, the level orchestrator and the stack of interactive states
// (menu, level, options, scores) driven one tick at a time.
//
// The engine never touches a terminal. It reads a core.InputSnapshot per
// tick and draws through a Surface.
package engine

import (
	"github.com/vovakirdan/pyknoid/internal/assets"
	"github.com/vovakirdan/pyknoid/internal/core"
)

// Surface is a drawing target in play-field pixels.
type Surface interface {
	// Fill clears the whole surface with a color.
	Fill(c core.Color)
	// Blit draws a sprite stretched over r.
	Blit(s assets.Sprite, r core.Rect)
	// Text draws text centered on (cx, cy).
	Text(text string, cx, cy int, c core.Color)
}

// State is one interactive mode of the game. Only the top of the stack is
// updated and rendered.
type State interface {
	// Enter is called when the state is pushed.
	Enter()
	// Exit is called when the state is popped.
	Exit()
	// Update advances the state by dt seconds and returns what the stack should do next.
	Update(dt float64, in *core.InputSnapshot) Transition
	// Render draws the state.
	Render(dst Surface)
}

// TransitionKind is the stack operation a state asks for.
type TransitionKind int

const (
	TransNone    TransitionKind = iota // Stay
	TransPush                          // Push Next on top
	TransPop                           // Leave this state
	TransReplace                       // Swap this state for Next
	TransQuit                          // Stop the game
)

// String returns a human-readable name for the transition kind.
func (k TransitionKind) String() string {
	switch k {
	case TransNone:
		return "none"
	case TransPush:
		return "push"
	case TransPop:
		return "pop"
	case TransReplace:
		return "replace"
	case TransQuit:
		return "quit"
	default:
		return "unknown"
	}
}

// Transition is a request from a state to the stack that owns it.
type Transition struct {
	Kind TransitionKind
	Next State
}

// None keeps the current state active.
func None() Transition { return Transition{Kind: TransNone} }

// Push activates next on top of the current state.
func Push(next State) Transition { return Transition{Kind: TransPush, Next: next} }

// Pop leaves the current state, reactivating the one below.
func Pop() Transition { return Transition{Kind: TransPop} }

// Replace swaps the current state for next.
func Replace(next State) Transition { return Transition{Kind: TransReplace, Next: next} }

// Quit stops the game loop.
func Quit() Transition { return Transition{Kind: TransQuit} }
