package ui

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	"webwall/internal/bookmark"
	"webwall/internal/prefs"
	"webwall/internal/website"
)

// AppModel is the root model: the site list, at most one open form,
// a stack of modal overlays, and the leader-key command menu.
type AppModel struct {
	Mode       AppMode
	Browse     *BrowseView
	Form       *FormView
	Overlays   *OverlayStack
	KeyHandler *KeyHandler

	Controller *website.Controller
	Prefs      *prefs.Store
	Bookmarks  *bookmark.Store
	Fetcher    TitleFetcher
	Log        *zap.Logger

	Status        string
	StatusIsError bool
	Badge         BadgePulse
	FirstLaunch   bool

	width  int
	height int
}

// AppOptions carries the app's dependencies.
type AppOptions struct {
	Controller  *website.Controller
	Prefs       *prefs.Store
	Bookmarks   *bookmark.Store
	Fetcher     TitleFetcher
	Log         *zap.Logger
	FirstLaunch bool
}

// NewAppModel wires the root model and its keybinds.
func NewAppModel(opts AppOptions) *AppModel {
	log := opts.Log
	if log == nil {
		log = zap.NewNop()
	}
	m := &AppModel{
		Mode:        ModeBrowse,
		Browse:      NewBrowseView(),
		Overlays:    &OverlayStack{},
		Controller:  opts.Controller,
		Prefs:       opts.Prefs,
		Bookmarks:   opts.Bookmarks,
		Fetcher:     opts.Fetcher,
		Log:         log,
		FirstLaunch: opts.FirstLaunch,
	}
	m.KeyHandler = NewKeyHandler(m.buildKeybinds())
	m.refreshSites()
	return m
}

func (m *AppModel) buildKeybinds() *KeybindRegistry {
	reg := NewKeybindRegistry()
	browse := []AppMode{ModeBrowse}

	// Single-key bindings, active while browsing.
	reg.BindWithDescForMode("a", show(ShowAddFormMsg{}), "add website", browse)
	reg.BindWithDescForMode("e", show(ShowEditFormMsg{}), "edit website", browse)
	reg.BindWithDescForMode("d", show(ShowDeleteMsg{}), "delete website", browse)
	reg.BindWithDescForMode("l", show(ShowLocalPickerMsg{}), "local folder", browse)
	reg.BindWithDescForMode("enter", show(MakeCurrentMsg{}), "display website", browse)
	reg.BindWithDescForMode("q", tea.Quit, "quit", browse)

	// Leader menu: SPC w is the website submenu.
	reg.BindWithDescForMode("SPC w a", show(ShowAddFormMsg{}), "add", browse)
	reg.BindWithDescForMode("SPC w e", show(ShowEditFormMsg{}), "edit", browse)
	reg.BindWithDescForMode("SPC w d", show(ShowDeleteMsg{}), "delete", browse)
	reg.BindWithDescForMode("SPC w l", show(ShowLocalPickerMsg{}), "local folder", browse)
	reg.BindWithDescForMode("SPC w c", show(MakeCurrentMsg{}), "make current", browse)
	reg.BindWithDesc("SPC q", tea.Quit, "quit")

	return reg
}

// Init implements the Bubble Tea entrypoint for the root model.
func (m *AppModel) Init() tea.Cmd {
	cmds := []tea.Cmd{m.Browse.Init()}
	if m.FirstLaunch {
		m.Overlays.Push(Overlay{View: NewWelcomeModal()})
	}
	return tea.Batch(cmds...)
}

// Update routes a message through the app. Overlays see keys first,
// then the form when it is open, then the leader-key handler, then the
// browse list.
func (m *AppModel) Update(msg tea.Msg) tea.Cmd {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		_, cmd := m.Browse.Update(msg)
		var formCmd tea.Cmd
		if m.Form != nil {
			_, formCmd = m.Form.Update(msg)
		}
		return tea.Batch(cmd, formCmd)

	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	if cmd, handled := m.handleAppMsg(msg); handled {
		return cmd
	}

	// Everything else flows to the active surfaces.
	var cmds []tea.Cmd
	if cmd, ok := m.Overlays.UpdateTop(msg); ok {
		cmds = append(cmds, cmd)
	}
	if m.Form != nil {
		_, cmd := m.Form.Update(msg)
		cmds = append(cmds, cmd)
	} else if m.Mode == ModeBrowse {
		_, cmd := m.Browse.Update(msg)
		cmds = append(cmds, cmd)
	}
	return tea.Batch(cmds...)
}

func (m *AppModel) handleKey(msg tea.KeyMsg) tea.Cmd {
	if msg.String() == "ctrl+c" {
		return tea.Quit
	}

	// Any keypress clears a transient status line.
	m.Status = ""
	m.StatusIsError = false

	if m.Overlays.Len() > 0 {
		cmd, _ := m.Overlays.UpdateTop(msg)
		return cmd
	}

	if m.Mode == ModeForm && m.Form != nil {
		_, cmd := m.Form.Update(msg)
		return cmd
	}

	if consumed, cmd := m.KeyHandler.Handle(msg); consumed {
		return cmd
	}

	_, cmd := m.Browse.Update(msg)
	return cmd
}

// View renders the header, the active surface, and the leader help bar.
func (m *AppModel) View() string {
	var b strings.Builder

	b.WriteString(m.Badge.View() + " " + Styles.Title.Render("Webwall"))
	if current := m.Controller.Current(); current != nil {
		b.WriteString(Styles.Hint.Render("  displaying ") + Styles.Normal.Render(current.DisplayTitle()))
	}
	b.WriteString("\n")
	if m.Status != "" {
		style := Styles.Hint
		if m.StatusIsError {
			style = Styles.Invalid
		}
		b.WriteString(style.Render(m.Status) + "\n")
	}
	b.WriteString("\n")

	if top, ok := m.Overlays.Peek(); ok {
		b.WriteString(top.View.View())
	} else if m.Mode == ModeForm && m.Form != nil {
		b.WriteString(m.Form.View())
	} else {
		b.WriteString(m.Browse.View())
	}

	if m.KeyHandler.LeaderWaiting {
		b.WriteString("\n" + RenderKeybindHelp(m.KeyHandler, m.Mode))
	}

	return b.String()
}

// refreshSites pushes the controller's current list into the browse view.
func (m *AppModel) refreshSites() {
	m.Browse.SetSites(m.Controller.All())
}

func (m *AppModel) setStatus(s string) {
	m.Status = s
	m.StatusIsError = false
}

func (m *AppModel) setError(err error) {
	m.Status = err.Error()
	m.StatusIsError = true
	m.Log.Warn("ui error", zap.Error(err))
}

// appModelAdapter adapts *AppModel to tea.Model.
type appModelAdapter struct {
	app *AppModel
}

// NewProgramModel wraps the app for tea.NewProgram.
func NewProgramModel(app *AppModel) tea.Model {
	return appModelAdapter{app: app}
}

func (a appModelAdapter) Init() tea.Cmd {
	return a.app.Init()
}

func (a appModelAdapter) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	return a, a.app.Update(msg)
}

func (a appModelAdapter) View() string {
	return a.app.View()
}
