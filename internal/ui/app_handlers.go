package ui

import (
	"context"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	"webwall/internal/prefs"
	"webwall/internal/website"
)

// handleAppMsg dispatches application-level messages. Returns handled
// false for messages the app does not own, so Update can forward them
// to the active surfaces.
func (m *AppModel) handleAppMsg(msg tea.Msg) (tea.Cmd, bool) {
	switch msg := msg.(type) {
	case ShowAddFormMsg:
		return m.handleShowAddForm(), true
	case ShowEditFormMsg:
		return m.handleShowEditForm(msg.ID), true
	case ShowDeleteMsg:
		return m.handleShowDelete(), true
	case DeleteWebsiteMsg:
		return m.handleDeleteWebsite(msg.ID), true
	case MakeCurrentMsg:
		return m.handleMakeCurrent(msg.ID), true
	case ShowLocalPickerMsg:
		return m.handleShowLocalPicker(), true
	case DirPickedMsg:
		return m.handleDirPicked(msg.Path), true
	case LocalURLMsg:
		return m.handleLocalURL(msg), true
	case BookmarkSaveFailedMsg:
		m.Log.Error("bookmark save failed", zap.Error(msg.Err))
		m.Overlays.Push(Overlay{View: NewErrorModal(msg.Err)})
		return nil, true
	case AddWebsiteMsg:
		return m.handleAddWebsite(msg.Draft), true
	case UpdateWebsiteMsg:
		return m.handleUpdateWebsite(msg.Draft), true
	case CloseFormMsg:
		m.closeForm()
		return nil, true
	case ShowDiscardPromptMsg:
		m.Overlays.Push(Overlay{View: NewDiscardPromptModal()})
		return nil, true
	case KeepChangesMsg:
		m.Overlays.Pop()
		if m.Form == nil {
			return nil, true
		}
		// Keep cannot apply an invalid URL; say so instead of silently
		// staying in the form.
		if !m.Form.IsURLValid() {
			m.setError(website.ErrInvalidURL)
			return nil, true
		}
		return m.Form.confirm(), true
	case DiscardChangesMsg:
		m.Overlays.Pop()
		if m.Form != nil {
			m.Form.Revert()
		}
		m.closeForm()
		return nil, true
	case DismissModalMsg:
		m.Overlays.Pop()
		return nil, true
	case onboardingAdvanceMsg:
		return m.handleOnboardingAdvance(msg.stage), true
	case openMenuMsg:
		m.KeyHandler.OpenMenu()
		return nil, true
	case badgePulseTickMsg:
		return m.Badge.Tick(), true
	}
	return nil, false
}

func (m *AppModel) handleShowAddForm() tea.Cmd {
	m.Form = NewAddFormView(m.Fetcher, m.Log)
	m.Mode = ModeForm
	return m.Form.Init()
}

func (m *AppModel) handleShowEditForm(id string) tea.Cmd {
	target, err := m.resolveTarget(id)
	if err != nil {
		m.setError(err)
		return nil
	}
	m.Form = NewEditFormView(target, m.Fetcher, m.Log)
	m.Mode = ModeForm
	return m.Form.Init()
}

func (m *AppModel) handleShowDelete() tea.Cmd {
	target, err := m.resolveTarget("")
	if err != nil {
		m.setError(err)
		return nil
	}
	m.Overlays.Push(Overlay{View: NewDeleteWebsiteConfirmModal(target)})
	return nil
}

func (m *AppModel) handleDeleteWebsite(id string) tea.Cmd {
	m.Overlays.Pop()
	if err := m.Controller.Remove(context.Background(), id); err != nil {
		m.setError(err)
		return nil
	}
	m.refreshSites()
	m.setStatus("Website deleted")
	return nil
}

func (m *AppModel) handleMakeCurrent(id string) tea.Cmd {
	target, err := m.resolveTarget(id)
	if err != nil {
		m.setError(err)
		return nil
	}
	if err := m.Controller.MakeCurrent(context.Background(), target.ID); err != nil {
		m.setError(err)
		return nil
	}
	m.refreshSites()
	m.setStatus(fmt.Sprintf("Displaying %s", target.DisplayTitle()))
	return nil
}

func (m *AppModel) handleShowLocalPicker() tea.Cmd {
	picker := NewDirPickerModal()
	m.Overlays.Push(Overlay{View: picker})
	return picker.Init()
}

// handleDirPicked records the access grant for the chosen directory and
// converts it into a file URL. A failed grant is the one storage error
// this layer surfaces in a dialog.
func (m *AppModel) handleDirPicked(path string) tea.Cmd {
	m.Overlays.Pop()
	if m.Bookmarks != nil {
		if err := m.Bookmarks.Save(path); err != nil {
			return show(BookmarkSaveFailedMsg{Err: err})
		}
	}
	return show(LocalURLMsg{URL: "file://" + path})
}

// handleLocalURL routes a granted local URL into the form, opening an
// add form first when the picker was launched from the browse list.
func (m *AppModel) handleLocalURL(msg LocalURLMsg) tea.Cmd {
	var cmds []tea.Cmd
	if m.Form == nil {
		m.Form = NewAddFormView(m.Fetcher, m.Log)
		m.Mode = ModeForm
		cmds = append(cmds, m.Form.Init())
	}
	_, cmd := m.Form.Update(msg)
	cmds = append(cmds, cmd)
	return tea.Batch(cmds...)
}

func (m *AppModel) handleAddWebsite(draft *website.Website) tea.Cmd {
	if err := m.Controller.Add(context.Background(), draft); err != nil {
		m.setError(err)
		return nil
	}
	m.closeForm()
	m.refreshSites()
	m.setStatus(fmt.Sprintf("Added %s", draft.DisplayTitle()))
	m.showTipOnce()
	return nil
}

// showTipOnce surfaces the one-time tip after the first successful add.
func (m *AppModel) showTipOnce() {
	if m.Prefs == nil || m.Prefs.Bool(prefs.KeyTipShown) {
		return
	}
	if err := m.Prefs.SetBool(prefs.KeyTipShown, true); err != nil {
		m.Log.Warn("persist tip flag", zap.Error(err))
	}
	m.Overlays.Push(Overlay{View: NewInfoModal(
		"Tip",
		"Press Enter on a website in the list to display it.",
		"The title is fetched from the page automatically; set your own only if you want to override it.",
	)})
}

func (m *AppModel) handleUpdateWebsite(draft *website.Website) tea.Cmd {
	if err := m.Controller.Update(context.Background(), draft); err != nil {
		m.setError(err)
		return nil
	}
	m.closeForm()
	m.refreshSites()
	m.setStatus(fmt.Sprintf("Updated %s", draft.DisplayTitle()))
	return nil
}

func (m *AppModel) handleOnboardingAdvance(stage int) tea.Cmd {
	m.Overlays.Pop()
	switch stage {
	case onboardingStageHowItWorks:
		m.Overlays.Push(Overlay{View: NewHowItWorksModal()})
		return nil
	case onboardingStagePointAtBadge:
		return tea.Batch(m.Badge.Start(), openMenuAfterCmd())
	}
	return nil
}

func (m *AppModel) closeForm() {
	m.Form = nil
	m.Mode = ModeBrowse
}

// resolveTarget maps an optional ID to a website, defaulting to the
// browse selection.
func (m *AppModel) resolveTarget(id string) (*website.Website, error) {
	if id != "" {
		return m.Controller.Get(id)
	}
	if sel := m.Browse.Selected(); sel != nil {
		return sel, nil
	}
	return nil, website.ErrNotFound
}
