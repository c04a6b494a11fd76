package ui

import (
	"context"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	"webwall/internal/metafetch"
	"webwall/internal/urlx"
	"webwall/internal/website"
)

// titleDebounce is how long URL input must quiesce before a title fetch.
const titleDebounce = 500 * time.Millisecond

// TitleFetcher retrieves a page title for a URL. Satisfied by
// *metafetch.Fetcher; stubbed in tests.
type TitleFetcher interface {
	Title(ctx context.Context, url string) (string, error)
}

// Form field IDs, in tab order.
const (
	fieldURL    = "url"
	fieldTitle  = "title"
	fieldCSS    = "css"
	fieldJS     = "js"
	fieldPrint  = "print"
	fieldInvert = "invert"
)

// FormView is the add/edit website form. It owns a mutable draft plus
// an immutable snapshot taken at open; nothing touches the store until
// the user confirms.
type FormView struct {
	editing  bool
	draft    *website.Website
	snapshot website.Website

	urlInput   textinput.Model
	titleInput textinput.Model
	cssInput   textarea.Model
	jsInput    textarea.Model

	focus   *FocusManager
	spinner spinner.Model

	fetcher    TitleFetcher
	timeout    time.Duration
	fetchGen   int
	fetching   bool
	titleDirty bool

	log   *zap.Logger
	width int
}

// Ensure FormView implements View.
var _ View = (*FormView)(nil)

// NewAddFormView opens the form on a brand-new website.
func NewAddFormView(fetcher TitleFetcher, log *zap.Logger) *FormView {
	return newFormView(website.New(), false, fetcher, log)
}

// NewEditFormView opens the form on a copy of an existing website.
// The original is untouched until the edits are confirmed.
func NewEditFormView(w *website.Website, fetcher TitleFetcher, log *zap.Logger) *FormView {
	draft := *w
	return newFormView(&draft, true, fetcher, log)
}

func newFormView(draft *website.Website, editing bool, fetcher TitleFetcher, log *zap.Logger) *FormView {
	if log == nil {
		log = zap.NewNop()
	}

	urlInput := textinput.New()
	urlInput.Placeholder = "example.com"
	urlInput.Width = 50
	urlInput.Prompt = ""
	if draft.URL != urlx.Sentinel {
		urlInput.SetValue(draft.URL)
	}

	titleInput := textinput.New()
	titleInput.Placeholder = "fetched automatically"
	titleInput.Width = 50
	titleInput.Prompt = ""
	titleInput.SetValue(draft.Title)

	cssInput := textarea.New()
	cssInput.Placeholder = "/* custom CSS */"
	cssInput.SetWidth(50)
	cssInput.SetHeight(3)
	cssInput.SetValue(draft.CSS)

	jsInput := textarea.New()
	jsInput.Placeholder = "// custom JavaScript"
	jsInput.SetWidth(50)
	jsInput.SetHeight(3)
	jsInput.SetValue(draft.JS)

	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = Styles.Badge

	f := &FormView{
		editing:    editing,
		draft:      draft,
		snapshot:   *draft,
		urlInput:   urlInput,
		titleInput: titleInput,
		cssInput:   cssInput,
		jsInput:    jsInput,
		focus: &FocusManager{
			Current: fieldURL,
			Order:   []string{fieldURL, fieldTitle, fieldCSS, fieldJS, fieldPrint, fieldInvert},
		},
		spinner: s,
		fetcher: fetcher,
		timeout: metafetch.DefaultTimeout,
		log:     log,
	}
	f.applyFocus()
	return f
}

// Editing reports whether the form edits an existing record.
func (f *FormView) Editing() bool { return f.editing }

// Draft returns the working copy.
func (f *FormView) Draft() *website.Website { return f.draft }

// HasChanges reports whether the draft differs from the open-time snapshot.
func (f *FormView) HasChanges() bool {
	return !f.draft.Equal(f.snapshot)
}

// IsURLValid mirrors the confirm button's enabled state.
func (f *FormView) IsURLValid() bool {
	return f.draft.IsURLValid()
}

// IsFetchingTitle reports whether a title lookup is in flight.
func (f *FormView) IsFetchingTitle() bool { return f.fetching }

// SetFetchTimeout overrides the title fetch bound.
func (f *FormView) SetFetchTimeout(d time.Duration) {
	if d > 0 {
		f.timeout = d
	}
}

// Revert restores the draft from the snapshot, discarding in-progress
// edits, and reflects the restored values back into the inputs.
func (f *FormView) Revert() {
	*f.draft = f.snapshot
	f.titleDirty = false
	f.titleInput.SetValue(f.draft.Title)
	f.cssInput.SetValue(f.draft.CSS)
	f.jsInput.SetValue(f.draft.JS)
	f.syncFromWebsite()
}

// Init implements View.
func (f *FormView) Init() tea.Cmd {
	return textinput.Blink
}

// Update implements View.
func (f *FormView) Update(msg tea.Msg) (View, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		f.width = msg.Width
		return f, nil

	case tea.KeyMsg:
		return f.handleKey(msg)

	case LocalURLMsg:
		// Local folder granted; its file URL lands in the URL buffer.
		f.urlInput.SetValue(msg.URL)
		f.syncFromBuffer()
		return f, nil

	case titleDebounceMsg:
		if msg.gen != f.fetchGen {
			return f, nil // superseded by a later keystroke
		}
		if f.skipTitleFetch() {
			return f, nil
		}
		f.fetching = true
		return f, tea.Batch(f.spinner.Tick, f.fetchTitleCmd(msg.gen, f.draft.URL))

	case titleFetchedMsg:
		// Busy flag drops no matter how the fetch ended.
		f.fetching = false
		if msg.gen != f.fetchGen {
			return f, nil // stale result, discard silently
		}
		f.applyFetchResult(msg)
		return f, nil

	case spinner.TickMsg:
		if !f.fetching {
			return f, nil
		}
		var cmd tea.Cmd
		f.spinner, cmd = f.spinner.Update(msg)
		return f, cmd
	}

	return f, nil
}

func (f *FormView) handleKey(msg tea.KeyMsg) (View, tea.Cmd) {
	switch msg.String() {
	case "esc":
		return f, f.requestClose()

	case "tab":
		f.focus.Next()
		f.applyFocus()
		return f, nil

	case "shift+tab":
		f.focus.Prev()
		f.applyFocus()
		return f, nil

	case "ctrl+s":
		return f, f.confirm()

	case "ctrl+r":
		f.Revert()
		return f, nil

	case "ctrl+l":
		return f, func() tea.Msg { return ShowLocalPickerMsg{} }

	case "enter":
		switch f.focus.Current {
		case fieldURL, fieldTitle:
			return f, f.confirm()
		case fieldPrint:
			f.draft.UsePrintStyles = !f.draft.UsePrintStyles
			return f, nil
		case fieldInvert:
			f.draft.InvertColors = f.draft.InvertColors.Next()
			return f, nil
		}

	case " ":
		switch f.focus.Current {
		case fieldPrint:
			f.draft.UsePrintStyles = !f.draft.UsePrintStyles
			return f, nil
		case fieldInvert:
			f.draft.InvertColors = f.draft.InvertColors.Next()
			return f, nil
		}
	}

	return f.updateFocusedInput(msg)
}

// updateFocusedInput routes remaining keys into the focused component
// and runs the buffer/draft synchronization afterwards.
func (f *FormView) updateFocusedInput(msg tea.KeyMsg) (View, tea.Cmd) {
	var cmd tea.Cmd
	switch f.focus.Current {
	case fieldURL:
		before := f.urlInput.Value()
		f.urlInput, cmd = f.urlInput.Update(msg)
		if f.urlInput.Value() != before {
			f.syncFromBuffer()
			f.fetchGen++
			return f, tea.Batch(cmd, debounceTitleCmd(f.fetchGen))
		}
	case fieldTitle:
		before := f.titleInput.Value()
		f.titleInput, cmd = f.titleInput.Update(msg)
		if f.titleInput.Value() != before {
			f.titleDirty = true
			f.draft.Title = f.titleInput.Value()
		}
	case fieldCSS:
		f.cssInput, cmd = f.cssInput.Update(msg)
		f.draft.CSS = f.cssInput.Value()
	case fieldJS:
		f.jsInput, cmd = f.jsInput.Update(msg)
		f.draft.JS = f.jsInput.Value()
	}
	return f, cmd
}

// requestClose implements the dismissal protocol: unchanged or add-mode
// forms close immediately, edit-mode forms with pending edits prompt.
func (f *FormView) requestClose() tea.Cmd {
	if f.editing && f.HasChanges() {
		return func() tea.Msg { return ShowDiscardPromptMsg{} }
	}
	return func() tea.Msg { return CloseFormMsg{} }
}

// confirm emits the commit message, or nothing while the URL is invalid.
func (f *FormView) confirm() tea.Cmd {
	if !f.IsURLValid() {
		return nil
	}
	draft := *f.draft
	if f.editing {
		return func() tea.Msg { return UpdateWebsiteMsg{Draft: &draft} }
	}
	return func() tea.Msg { return AddWebsiteMsg{Draft: &draft} }
}

// syncFromBuffer maps the raw URL text into the draft's structured URL.
// The equality guard keeps the two-way sync from looping.
func (f *FormView) syncFromBuffer() {
	resolved := urlx.Resolve(f.urlInput.Value())
	if f.draft.URL != resolved {
		f.draft.URL = resolved
	}
}

// syncFromWebsite reflects an externally changed draft URL (e.g. after
// Revert) back into the text buffer, unless it is the sentinel.
func (f *FormView) syncFromWebsite() {
	if f.draft.URL == urlx.Sentinel {
		return
	}
	if f.draft.URL != f.urlInput.Value() {
		f.urlInput.SetValue(f.draft.URL)
	}
}

// skipTitleFetch applies the never-overwrite-a-title rules.
func (f *FormView) skipTitleFetch() bool {
	if f.fetcher == nil {
		return true
	}
	if !urlx.IsValid(f.draft.URL) {
		return true
	}
	if f.editing && f.snapshot.Title != "" {
		return true
	}
	if f.titleDirty {
		return true
	}
	return false
}

func (f *FormView) applyFetchResult(msg titleFetchedMsg) {
	protected := f.titleDirty || (f.editing && f.snapshot.Title != "")
	if msg.err != nil || msg.title == "" {
		f.log.Debug("title fetch failed", zap.Error(msg.err))
		if !protected {
			f.draft.Title = ""
			f.titleInput.SetValue("")
		}
		return
	}
	if protected {
		return
	}
	f.draft.Title = msg.title
	f.titleInput.SetValue(msg.title)
}

func (f *FormView) fetchTitleCmd(gen int, url string) tea.Cmd {
	fetcher, timeout := f.fetcher, f.timeout
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), timeout)
		defer cancel()
		title, err := fetcher.Title(ctx, url)
		return titleFetchedMsg{gen: gen, title: title, err: err}
	}
}

func debounceTitleCmd(gen int) tea.Cmd {
	return tea.Tick(titleDebounce, func(time.Time) tea.Msg {
		return titleDebounceMsg{gen: gen}
	})
}

// applyFocus focuses the active component and blurs the rest.
func (f *FormView) applyFocus() {
	f.urlInput.Blur()
	f.titleInput.Blur()
	f.cssInput.Blur()
	f.jsInput.Blur()
	switch f.focus.Current {
	case fieldURL:
		f.urlInput.Focus()
	case fieldTitle:
		f.titleInput.Focus()
	case fieldCSS:
		f.cssInput.Focus()
	case fieldJS:
		f.jsInput.Focus()
	}
}

// View implements View.
func (f *FormView) View() string {
	var b strings.Builder

	title := "Add Website"
	if f.editing {
		title = "Edit Website"
	}
	b.WriteString(Styles.Title.Render(title) + "\n\n")

	b.WriteString(f.fieldLabel(fieldURL, "URL"))
	if f.urlInput.Value() != "" && !f.IsURLValid() {
		b.WriteString("  " + Styles.Invalid.Render("invalid"))
	}
	if f.fetching {
		b.WriteString("  " + f.spinner.View() + Styles.Hint.Render(" fetching title"))
	}
	b.WriteString("\n" + f.urlInput.View() + "\n\n")

	b.WriteString(f.fieldLabel(fieldTitle, "Title") + "\n" + f.titleInput.View() + "\n\n")
	b.WriteString(f.fieldLabel(fieldCSS, "CSS") + "\n" + f.cssInput.View() + "\n\n")
	b.WriteString(f.fieldLabel(fieldJS, "JavaScript") + "\n" + f.jsInput.View() + "\n\n")

	b.WriteString(f.fieldLabel(fieldPrint, "Print styles") + "  " + checkbox(f.draft.UsePrintStyles) + "\n")
	b.WriteString(f.fieldLabel(fieldInvert, "Invert colors") + "  " + Styles.Normal.Render(f.draft.InvertColors.String()) + "\n\n")

	confirm := "Add"
	if f.editing {
		confirm = "Done"
	}
	if f.IsURLValid() {
		b.WriteString(Styles.Selected.Render("[ "+confirm+" ]") + " ")
	} else {
		b.WriteString(Styles.Muted.Render("[ "+confirm+" ]") + " ")
	}
	b.WriteString(Styles.Hint.Render("ctrl+s: " + strings.ToLower(confirm) + "  ctrl+r: revert  ctrl+l: local folder  tab: next field  esc: close"))

	return Styles.Box.Render(b.String())
}

func (f *FormView) fieldLabel(id, label string) string {
	if f.focus.Current == id {
		return Styles.Selected.Render("> " + label)
	}
	return Styles.Label.Render("  " + label)
}

func checkbox(checked bool) string {
	if checked {
		return Styles.Normal.Render("[x]")
	}
	return Styles.Muted.Render("[ ]")
}
