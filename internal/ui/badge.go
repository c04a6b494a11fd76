package ui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// badge frames alternate while pulsing; frame 0 is the resting state.
var badgeFrames = []string{"◉", "○"}

const (
	badgePulseInterval = 150 * time.Millisecond
	badgePulseCount    = 8 // total frame flips in one pulse
)

// BadgePulse animates the header badge, the TUI stand-in for the status
// bar icon the onboarding flow draws attention to.
type BadgePulse struct {
	Active bool
	frame  int
	left   int
}

// Start begins a pulse and returns the command driving it.
func (b *BadgePulse) Start() tea.Cmd {
	b.Active = true
	b.left = badgePulseCount
	b.frame = 0
	return badgeTickCmd()
}

// Tick advances one frame. Returns the next tick command, or nil when
// the pulse is finished.
func (b *BadgePulse) Tick() tea.Cmd {
	if !b.Active {
		return nil
	}
	b.frame = (b.frame + 1) % len(badgeFrames)
	b.left--
	if b.left <= 0 {
		b.Active = false
		b.frame = 0
		return nil
	}
	return badgeTickCmd()
}

// View renders the badge glyph with the appropriate style.
func (b *BadgePulse) View() string {
	glyph := badgeFrames[b.frame]
	if b.Active {
		return Styles.BadgeHot.Render(glyph)
	}
	return Styles.Badge.Render(glyph)
}

func badgeTickCmd() tea.Cmd {
	return tea.Tick(badgePulseInterval, func(time.Time) tea.Msg {
		return badgePulseTickMsg{}
	})
}
