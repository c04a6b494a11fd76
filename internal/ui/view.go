package ui

import tea "github.com/charmbracelet/bubbletea"

// View is the composable unit the app is built from: the browse list,
// the website form, and every modal implement it. Update returns the
// (possibly replaced) view so implementations may use value receivers.
type View interface {
	Init() tea.Cmd
	Update(tea.Msg) (View, tea.Cmd)
	View() string
}
