package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"

	"webwall/internal/urlx"
	"webwall/internal/website"
)

// siteItem implements list.Item for a website row.
type siteItem struct {
	site *website.Website
}

func (s siteItem) FilterValue() string { return s.site.DisplayTitle() }

func (s siteItem) Title() string {
	marker := "  "
	if s.site.IsCurrent {
		marker = Styles.Current.Render("● ")
	}
	line := marker + s.site.DisplayTitle()
	if s.site.URL != urlx.Sentinel {
		line += Styles.Muted.Render("  " + s.site.URL)
	}
	return line
}

func (s siteItem) Description() string { return "" }

// BrowseView lists the configured websites.
type BrowseView struct {
	list  list.Model
	Sites []*website.Website
}

// Ensure BrowseView implements View.
var _ View = (*BrowseView)(nil)

// NewBrowseView creates the site list view.
func NewBrowseView() *BrowseView {
	l := list.New(nil, NewCompactListDelegate(), 0, 0)
	l.Title = "Websites"
	l.SetShowStatusBar(false)
	l.SetFilteringEnabled(false)
	l.SetShowHelp(false)
	l.DisableQuitKeybindings()
	l.Styles.Title = Styles.Title
	// Sensible default until the first WindowSizeMsg arrives.
	l.SetSize(80, 20)
	return &BrowseView{list: l}
}

// SetSites replaces the listed websites, preserving the selection where
// possible.
func (b *BrowseView) SetSites(sites []*website.Website) {
	selected := b.list.Index()
	b.Sites = sites
	items := make([]list.Item, len(sites))
	for i, s := range sites {
		items[i] = siteItem{site: s}
	}
	b.list.SetItems(items)
	if selected >= len(items) {
		selected = len(items) - 1
	}
	if selected >= 0 {
		b.list.Select(selected)
	}
}

// Selected returns the website under the cursor, or nil.
func (b *BrowseView) Selected() *website.Website {
	idx := b.list.Index()
	if idx < 0 || idx >= len(b.Sites) {
		return nil
	}
	return b.Sites[idx]
}

// Init implements View.
func (b *BrowseView) Init() tea.Cmd {
	return nil
}

// Update implements View.
func (b *BrowseView) Update(msg tea.Msg) (View, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		b.list.SetWidth(msg.Width)
		b.list.SetHeight(msg.Height - 5) // header, status line, hint
		return b, nil
	}
	// list.Model handles j/k/g/G and arrow navigation natively.
	var cmd tea.Cmd
	b.list, cmd = b.list.Update(msg)
	return b, cmd
}

// View implements View.
func (b *BrowseView) View() string {
	var sb strings.Builder
	if len(b.Sites) == 0 {
		sb.WriteString(Styles.Empty.Render("No websites yet. Press a to add one, l for a local folder.") + "\n")
		return sb.String()
	}
	sb.WriteString(Styles.Hint.Render(fmt.Sprintf("%d website(s) - enter: display  a: add  e: edit  d: delete  l: local", len(b.Sites))) + "\n\n")
	sb.WriteString(b.list.View())
	return sb.String()
}
