package ui

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
)

// threeWayChoice indexes the discard prompt's options.
type threeWayChoice int

const (
	choiceKeep threeWayChoice = iota
	choiceDontKeep
	choiceCancel
)

var threeWayLabels = []string{"Keep", "Don't Keep", "Cancel"}

// ThreeWayModal is the unsaved-changes prompt shown when the user
// dismisses the form while editing: Keep applies the pending edits and
// closes, Don't Keep reverts and closes, Cancel stays in the form.
type ThreeWayModal struct {
	Label  string
	choice threeWayChoice
}

// Ensure ThreeWayModal implements View.
var _ View = (*ThreeWayModal)(nil)

// NewDiscardPromptModal creates the prompt for unsaved form edits.
func NewDiscardPromptModal() *ThreeWayModal {
	return &ThreeWayModal{
		Label:  "This website has unsaved changes.",
		choice: choiceKeep,
	}
}

// Init implements View.
func (m *ThreeWayModal) Init() tea.Cmd {
	return nil
}

// Update implements View.
func (m *ThreeWayModal) Update(msg tea.Msg) (View, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "left", "h", "k", "shift+tab":
			if m.choice > choiceKeep {
				m.choice--
			}
			return m, nil
		case "right", "l", "j", "tab":
			if m.choice < choiceCancel {
				m.choice++
			}
			return m, nil
		case "esc":
			return m, func() tea.Msg { return DismissModalMsg{} }
		case "enter":
			switch m.choice {
			case choiceKeep:
				return m, func() tea.Msg { return KeepChangesMsg{} }
			case choiceDontKeep:
				return m, func() tea.Msg { return DiscardChangesMsg{} }
			default:
				return m, func() tea.Msg { return DismissModalMsg{} }
			}
		}
	}
	return m, nil
}

// View implements View.
func (m *ThreeWayModal) View() string {
	var b strings.Builder
	b.WriteString(ModalStyles.Title.Render("Keep changes?") + "\n\n")
	b.WriteString(ModalStyles.Label.Render(m.Label) + "\n\n")

	buttons := make([]string, len(threeWayLabels))
	for i, label := range threeWayLabels {
		if threeWayChoice(i) == m.choice {
			buttons[i] = Styles.Selected.Render("[ " + label + " ]")
		} else {
			buttons[i] = Styles.Muted.Render("  " + label + "  ")
		}
	}
	b.WriteString(strings.Join(buttons, " "))
	b.WriteString("\n\n" + ModalStyles.Help.Render("←/→: choose  Enter: confirm  Esc: cancel"))
	return ModalStyles.BoxDefault.Render(b.String())
}
