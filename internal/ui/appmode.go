package ui

// AppMode is the top-level application mode: browsing the site list or
// editing a single site in the form.
type AppMode int

const (
	ModeBrowse AppMode = iota
	ModeForm
)

func (m AppMode) String() string {
	switch m {
	case ModeBrowse:
		return "Browse"
	case ModeForm:
		return "Form"
	default:
		return "Unknown"
	}
}
