package ui

import (
	"os"

	"github.com/charmbracelet/bubbles/filepicker"
	tea "github.com/charmbracelet/bubbletea"

	"webwall/internal/bookmark"
)

// DirPickerModal chooses a local website directory. A directory without
// index.html is refused with a notice and the picker stays open; the
// only ways out are a valid pick or Esc.
type DirPickerModal struct {
	picker filepicker.Model
	notice string

	// hasIndex is swappable in tests.
	hasIndex func(dir string) bool
}

// Ensure DirPickerModal implements View.
var _ View = (*DirPickerModal)(nil)

// NewDirPickerModal creates a directory-only picker rooted at the
// user's home directory.
func NewDirPickerModal() *DirPickerModal {
	fp := filepicker.New()
	fp.DirAllowed = true
	fp.FileAllowed = false
	fp.ShowHidden = false
	fp.Height = 12
	if home, err := os.UserHomeDir(); err == nil {
		fp.CurrentDirectory = home
	}
	return &DirPickerModal{
		picker:   fp,
		hasIndex: bookmark.HasIndex,
	}
}

// Init implements View.
func (m *DirPickerModal) Init() tea.Cmd {
	return m.picker.Init()
}

// Update implements View.
func (m *DirPickerModal) Update(msg tea.Msg) (View, tea.Cmd) {
	if key, ok := msg.(tea.KeyMsg); ok && key.String() == "esc" {
		return m, func() tea.Msg { return DismissModalMsg{} }
	}

	var cmd tea.Cmd
	m.picker, cmd = m.picker.Update(msg)

	if didSelect, path := m.picker.DidSelectFile(msg); didSelect {
		if m.hasIndex(path) {
			return m, func() tea.Msg { return DirPickedMsg{Path: path} }
		}
		// Refuse and re-prompt: the picker stays where it is.
		m.notice = "No index.html in that folder - pick another"
		return m, cmd
	}
	return m, cmd
}

// View implements View.
func (m *DirPickerModal) View() string {
	content := ModalStyles.Title.Render("Choose local website folder") + "\n\n"
	content += m.picker.View()
	if m.notice != "" {
		content += "\n" + Styles.Details.Render(m.notice)
	}
	content += "\n" + ModalStyles.Help.Render("Enter: choose  Esc: cancel")
	return ModalStyles.BoxCompact.Render(content)
}
