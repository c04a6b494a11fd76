package ui

import tea "github.com/charmbracelet/bubbletea"

// Overlay is one modal layer: a dialog, prompt, or picker drawn over
// the browse list or the form. Dismiss optionally names a key that
// closes it without the modal seeing the keypress.
type Overlay struct {
	View    View
	Dismiss string
}

// IsDismissKey reports whether key closes this overlay directly.
func (o *Overlay) IsDismissKey(key string) bool {
	return key == o.Dismiss
}

// OverlayStack holds the open modals. Only the top one receives input;
// the onboarding dialogs, the delete confirmation, the keep-changes
// prompt, and the directory picker all live here.
type OverlayStack struct {
	Stack []Overlay
}

// Push opens an overlay on top of whatever is showing.
func (s *OverlayStack) Push(o Overlay) {
	s.Stack = append(s.Stack, o)
}

// Pop closes and returns the top overlay.
func (s *OverlayStack) Pop() (Overlay, bool) {
	if len(s.Stack) == 0 {
		return Overlay{}, false
	}
	top := s.Stack[len(s.Stack)-1]
	s.Stack = s.Stack[:len(s.Stack)-1]
	return top, true
}

// Peek returns the top overlay without closing it.
func (s *OverlayStack) Peek() (Overlay, bool) {
	if len(s.Stack) == 0 {
		return Overlay{}, false
	}
	return s.Stack[len(s.Stack)-1], true
}

// Len returns how many overlays are open.
func (s *OverlayStack) Len() int {
	return len(s.Stack)
}

// UpdateTop routes msg to the top overlay and keeps its returned view.
// The second result is false when no overlay is open; the caller runs
// the command.
func (s *OverlayStack) UpdateTop(msg tea.Msg) (tea.Cmd, bool) {
	if len(s.Stack) == 0 {
		return nil, false
	}
	top := &s.Stack[len(s.Stack)-1]
	newView, cmd := top.View.Update(msg)
	top.View = newView
	return cmd, true
}
