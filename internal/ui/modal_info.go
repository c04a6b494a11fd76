package ui

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// InfoModal is a blocking informational dialog: a title, one or more
// paragraphs, and a single dismiss action. Dismissing emits OnDismiss
// (or DismissModalMsg when nil).
type InfoModal struct {
	Title      string
	Paragraphs []string
	Button     string
	OnDismiss  func() tea.Msg

	boxStyle   lipgloss.Style
	titleStyle lipgloss.Style
}

// Ensure InfoModal implements View.
var _ View = (*InfoModal)(nil)

// NewInfoModal creates an informational dialog with an OK button.
func NewInfoModal(title string, paragraphs ...string) *InfoModal {
	return &InfoModal{
		Title:      title,
		Paragraphs: paragraphs,
		Button:     "OK",
		boxStyle:   ModalStyles.BoxDefault,
		titleStyle: ModalStyles.Title,
	}
}

// NewErrorModal creates the generic error-presentation dialog.
func NewErrorModal(err error) *InfoModal {
	m := NewInfoModal("Something went wrong", err.Error())
	m.boxStyle = ModalStyles.BoxWarning
	m.titleStyle = ModalStyles.TitleWarning
	return m
}

// WithDismiss sets the message emitted when the dialog is dismissed.
func (m *InfoModal) WithDismiss(fn func() tea.Msg) *InfoModal {
	m.OnDismiss = fn
	return m
}

// Init implements View.
func (m *InfoModal) Init() tea.Cmd {
	return nil
}

// Update implements View.
func (m *InfoModal) Update(msg tea.Msg) (View, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "enter", "esc", " ":
			if m.OnDismiss != nil {
				return m, m.OnDismiss
			}
			return m, func() tea.Msg { return DismissModalMsg{} }
		}
	}
	return m, nil
}

// View implements View.
func (m *InfoModal) View() string {
	wrap := lipgloss.NewStyle().Width(56)
	var b strings.Builder
	b.WriteString(m.titleStyle.Render(m.Title) + "\n")
	for _, p := range m.Paragraphs {
		b.WriteString("\n" + wrap.Render(ModalStyles.Label.Render(p)) + "\n")
	}
	b.WriteString("\n" + ModalStyles.Help.Render("Enter: "+m.Button))
	return m.boxStyle.Render(b.String())
}
