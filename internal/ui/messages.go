package ui

import (
	"webwall/internal/website"
)

// ShowAddFormMsg opens the form for a brand-new website.
type ShowAddFormMsg struct{}

// ShowEditFormMsg opens the form for the selected (or named) website.
type ShowEditFormMsg struct {
	ID string // empty = current browse selection
}

// ShowDeleteMsg asks for confirmation before deleting the selected website.
type ShowDeleteMsg struct{}

// DeleteWebsiteMsg is sent when the user confirms deletion.
type DeleteWebsiteMsg struct {
	ID string
}

// MakeCurrentMsg makes the selected website the displayed one.
type MakeCurrentMsg struct {
	ID string
}

// ShowLocalPickerMsg opens the local-directory picker.
type ShowLocalPickerMsg struct{}

// AddWebsiteMsg is sent when the form confirms a new website.
type AddWebsiteMsg struct {
	Draft *website.Website
}

// UpdateWebsiteMsg is sent when the form confirms edits to an existing website.
type UpdateWebsiteMsg struct {
	Draft *website.Website
}

// CloseFormMsg closes the form without touching the store.
type CloseFormMsg struct{}

// ShowDiscardPromptMsg is sent when the user dismisses the form with
// unsaved edits; the app answers with one of the three outcomes below.
type ShowDiscardPromptMsg struct{}

// KeepChangesMsg closes the form and applies the pending edits.
type KeepChangesMsg struct{}

// DiscardChangesMsg reverts the form to its snapshot and closes it.
type DiscardChangesMsg struct{}

// DirPickedMsg is sent when the picker settles on a directory that
// contains index.html.
type DirPickedMsg struct {
	Path string
}

// LocalURLMsg delivers the file URL of a granted local website directory.
type LocalURLMsg struct {
	URL string
}

// BookmarkSaveFailedMsg reports the one error this layer surfaces to the
// user: the access grant for a picked directory could not be persisted.
type BookmarkSaveFailedMsg struct {
	Err error
}

// DismissModalMsg is sent when the user cancels a modal (Esc).
type DismissModalMsg struct{}

// titleDebounceMsg fires 500ms after a URL keystroke. Stale generations
// are ignored so only the last edit in a burst triggers a fetch.
type titleDebounceMsg struct {
	gen int
}

// titleFetchedMsg carries the async title lookup result.
type titleFetchedMsg struct {
	gen   int
	title string
	err   error
}

// onboardingAdvanceMsg moves the first-launch sequence to the next stage.
type onboardingAdvanceMsg struct {
	stage int
}

// badgePulseTickMsg animates the header badge.
type badgePulseTickMsg struct{}

// openMenuMsg is the simulated activation of the status control: it
// opens the leader-key command menu.
type openMenuMsg struct{}
