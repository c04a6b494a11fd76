package ui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// Onboarding stages, advanced by onboardingAdvanceMsg. The sequence
// runs once, on first launch: two intro dialogs, then a badge pulse
// that ends with the command menu opening by itself.
const (
	onboardingStageHowItWorks = iota + 1
	onboardingStagePointAtBadge
)

// openMenuDelay is the pause between the badge pulse starting and the
// command menu opening on its own.
const openMenuDelay = time.Second

// NewWelcomeModal is the first screen a new user sees.
func NewWelcomeModal() *InfoModal {
	m := NewInfoModal(
		"Welcome to Webwall",
		"Webwall displays a website of your choice as your desktop wallpaper.",
		"Add a website, and it becomes the current one. You can switch between websites at any time.",
	)
	m.Button = "Continue"
	return m.WithDismiss(func() tea.Msg {
		return onboardingAdvanceMsg{stage: onboardingStageHowItWorks}
	})
}

// NewHowItWorksModal is the second intro screen.
func NewHowItWorksModal() *InfoModal {
	m := NewInfoModal(
		"How it works",
		"Websites are interactive by default. Give a website custom CSS or JavaScript to tweak how it renders.",
		"Everything lives behind the status badge in the header. Watch it.",
	)
	m.Button = "Got it"
	return m.WithDismiss(func() tea.Msg {
		return onboardingAdvanceMsg{stage: onboardingStagePointAtBadge}
	})
}

// openMenuAfterCmd opens the command menu after the badge has had time
// to pulse, simulating the user pressing the leader key.
func openMenuAfterCmd() tea.Cmd {
	return tea.Tick(openMenuDelay, func(time.Time) tea.Msg {
		return openMenuMsg{}
	})
}
