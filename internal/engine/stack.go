package engine

// Stack owns the interactive states. The top state is the active one.
type Stack struct {
	states []State
}

// Push enters s and makes it active.
func (s *Stack) Push(st State) {
	st.Enter()
	s.states = append(s.states, st)
}

// Pop exits and removes the active state. The last state is never popped;
// Pop returns false instead.
func (s *Stack) Pop() bool {
	if len(s.states) <= 1 {
		return false
	}
	s.popTop()
	return true
}

// Replace exits the active state and pushes st in its place.
func (s *Stack) Replace(st State) {
	if len(s.states) > 0 {
		s.popTop()
	}
	s.Push(st)
}

// Top returns the active state, or nil if the stack is empty.
func (s *Stack) Top() State {
	if len(s.states) == 0 {
		return nil
	}
	return s.states[len(s.states)-1]
}

// Len returns the number of states.
func (s *Stack) Len() int {
	return len(s.states)
}

// Apply performs a transition. It returns true when the game should stop:
// on Quit, or on a Pop that would empty the stack.
func (s *Stack) Apply(t Transition) (quit bool) {
	switch t.Kind {
	case TransPush:
		if t.Next != nil {
			s.Push(t.Next)
		}
	case TransPop:
		return !s.Pop()
	case TransReplace:
		if t.Next != nil {
			s.Replace(t.Next)
		}
	case TransQuit:
		return true
	}
	return false
}

// Clear exits every state, top first.
func (s *Stack) Clear() {
	for len(s.states) > 0 {
		s.popTop()
	}
}

func (s *Stack) popTop() {
	top := s.states[len(s.states)-1]
	top.Exit()
	s.states[len(s.states)-1] = nil
	s.states = s.states[:len(s.states)-1]
}
