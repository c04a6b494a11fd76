package ui

import (
	"errors"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"webwall/internal/website"
)

func TestThreeWayModal_Choices(t *testing.T) {
	cases := []struct {
		name  string
		moves []string
		want  tea.Msg
	}{
		{"default is keep", nil, KeepChangesMsg{}},
		{"right selects dont keep", []string{"right"}, DiscardChangesMsg{}},
		{"right right selects cancel", []string{"right", "right"}, DismissModalMsg{}},
		{"wraps are clamped", []string{"left", "left"}, KeepChangesMsg{}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			m := NewDiscardPromptModal()
			for _, mv := range tc.moves {
				key := tea.KeyMsg{Type: tea.KeyRight}
				if mv == "left" {
					key = tea.KeyMsg{Type: tea.KeyLeft}
				}
				m.Update(key)
			}
			_, cmd := m.Update(keyMsg("enter"))
			if cmd == nil {
				t.Fatal("enter should emit a choice")
			}
			got := cmd()
			if got != tc.want {
				t.Errorf("got %T, want %T", got, tc.want)
			}
		})
	}
}

func TestThreeWayModal_EscCancels(t *testing.T) {
	m := NewDiscardPromptModal()
	_, cmd := m.Update(keyMsg("esc"))
	if cmd == nil {
		t.Fatal("esc should emit")
	}
	if _, ok := cmd().(DismissModalMsg); !ok {
		t.Errorf("esc: got %T, want DismissModalMsg", cmd())
	}
}

func TestInfoModal_DismissEmitsCustomMsg(t *testing.T) {
	m := NewInfoModal("Hello", "world").WithDismiss(func() tea.Msg {
		return onboardingAdvanceMsg{stage: 7}
	})
	_, cmd := m.Update(keyMsg("enter"))
	if cmd == nil {
		t.Fatal("enter should dismiss")
	}
	msg, ok := cmd().(onboardingAdvanceMsg)
	if !ok || msg.stage != 7 {
		t.Errorf("got %v, want onboardingAdvanceMsg{7}", cmd())
	}
}

func TestInfoModal_DefaultDismiss(t *testing.T) {
	m := NewInfoModal("Hello")
	_, cmd := m.Update(keyMsg("esc"))
	if cmd == nil {
		t.Fatal("esc should dismiss")
	}
	if _, ok := cmd().(DismissModalMsg); !ok {
		t.Errorf("got %T, want DismissModalMsg", cmd())
	}
}

func TestErrorModal_ShowsError(t *testing.T) {
	m := NewErrorModal(errors.New("disk on fire"))
	if !strings.Contains(m.View(), "disk on fire") {
		t.Error("error text should render")
	}
}

func TestDeleteConfirmModal_WarnsForCurrentSite(t *testing.T) {
	w := website.New()
	w.URL = "https://example.com/"
	w.IsCurrent = true
	m := NewDeleteWebsiteConfirmModal(w)
	if !strings.Contains(m.View(), "currently displayed") {
		t.Error("deleting the displayed site should warn")
	}

	_, cmd := m.Update(keyMsg("enter"))
	if cmd == nil {
		t.Fatal("enter should confirm")
	}
	msg, ok := cmd().(DeleteWebsiteMsg)
	if !ok || msg.ID != w.ID {
		t.Errorf("got %v, want DeleteWebsiteMsg{%s}", cmd(), w.ID)
	}
}

func TestDirPickerModal_EscCancels(t *testing.T) {
	m := NewDirPickerModal()
	_, cmd := m.Update(keyMsg("esc"))
	if cmd == nil {
		t.Fatal("esc should emit")
	}
	if _, ok := cmd().(DismissModalMsg); !ok {
		t.Errorf("got %T, want DismissModalMsg", cmd())
	}
}
