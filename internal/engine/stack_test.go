package engine

import (
	"testing"

	"github.com/vovakirdan/pyknoid/internal/core"
)

// traceState logs its lifecycle into a shared slice.
type traceState struct {
	name  string
	log   *[]string
	next  Transition
	ticks int
}

func (s *traceState) Enter() { *s.log = append(*s.log, "enter "+s.name) }
func (s *traceState) Exit()  { *s.log = append(*s.log, "exit "+s.name) }

func (s *traceState) Update(float64, *core.InputSnapshot) Transition {
	s.ticks++
	return s.next
}

func (s *traceState) Render(Surface) {}

func equalLog(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func TestStackLifecycle(t *testing.T) {
	var log []string
	menu := &traceState{name: "menu", log: &log}
	level := &traceState{name: "level", log: &log}
	options := &traceState{name: "options", log: &log}

	var s Stack
	s.Push(menu)
	s.Push(level)
	s.Replace(options)
	if s.Top() != options || s.Len() != 2 {
		t.Fatalf("Top() = %v, Len() = %d, expected options on 2", s.Top(), s.Len())
	}
	if !s.Pop() {
		t.Fatal("Pop() = false, expected true")
	}
	if s.Pop() {
		t.Error("Pop() on the last state = true, expected refusal")
	}
	if s.Top() != menu {
		t.Error("menu should remain on top")
	}
	s.Clear()

	want := []string{"enter menu", "enter level", "exit level", "enter options", "exit options", "exit menu"}
	if !equalLog(log, want) {
		t.Errorf("log = %v, expected %v", log, want)
	}
	if s.Top() != nil {
		t.Error("Top() on an empty stack should be nil")
	}
}

func TestStackApply(t *testing.T) {
	var log []string
	menu := &traceState{name: "menu", log: &log}
	other := &traceState{name: "other", log: &log}

	tests := []struct {
		name     string
		t        Transition
		wantLen  int
		wantQuit bool
	}{
		{"none", None(), 1, false},
		{"push", Push(other), 2, false},
		{"pop", Pop(), 1, false},
		{"pop last", Pop(), 1, true},
		{"replace", Replace(other), 1, false},
		{"push nil", Push(nil), 1, false},
		{"quit", Quit(), 1, true},
	}

	var s Stack
	s.Push(menu)
	for _, tc := range tests {
		quit := s.Apply(tc.t)
		if quit != tc.wantQuit {
			t.Errorf("%s: quit = %v, expected %v", tc.name, quit, tc.wantQuit)
		}
		if s.Len() != tc.wantLen {
			t.Errorf("%s: Len() = %d, expected %d", tc.name, s.Len(), tc.wantLen)
		}
	}
}

func TestTransitionKindString(t *testing.T) {
	tests := []struct {
		kind TransitionKind
		want string
	}{
		{TransNone, "none"},
		{TransPush, "push"},
		{TransPop, "pop"},
		{TransReplace, "replace"},
		{TransQuit, "quit"},
	}
	for _, tc := range tests {
		if got := tc.kind.String(); got != tc.want {
			t.Errorf("String() = %q, expected %q", got, tc.want)
		}
	}
}
