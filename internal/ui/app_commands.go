package ui

import tea "github.com/charmbracelet/bubbletea"

// show wraps a message in a command.
func show(msg tea.Msg) tea.Cmd {
	return func() tea.Msg { return msg }
}
