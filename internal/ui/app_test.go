package ui

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"webwall/internal/bookmark"
	"webwall/internal/prefs"
	"webwall/internal/urlx"
	"webwall/internal/website"
)

func newTestApp(t *testing.T, firstLaunch bool) *AppModel {
	t.Helper()
	dir := t.TempDir()

	store, err := website.NewStore(dir)
	if err != nil {
		t.Fatalf("NewStore: %v", err)
	}
	controller, err := website.NewController(store)
	if err != nil {
		t.Fatalf("NewController: %v", err)
	}
	prefStore, err := prefs.Open(dir)
	if err != nil {
		t.Fatalf("prefs.Open: %v", err)
	}
	bookmarks, err := bookmark.Open(dir)
	if err != nil {
		t.Fatalf("bookmark.Open: %v", err)
	}

	return NewAppModel(AppOptions{
		Controller:  controller,
		Prefs:       prefStore,
		Bookmarks:   bookmarks,
		Fetcher:     &stubFetcher{},
		FirstLaunch: firstLaunch,
	})
}

// drive runs a command and feeds resulting application messages back
// into the app, the way the Bubble Tea runtime would. It stops at
// framework messages (ticks, blinks, batches) so tests never sleep.
func drive(t *testing.T, a *AppModel, cmd tea.Cmd) {
	t.Helper()
	for cmd != nil {
		msg := cmd()
		if msg == nil || !isAppMsg(msg) {
			return
		}
		cmd = a.Update(msg)
	}
}

func isAppMsg(msg tea.Msg) bool {
	switch msg.(type) {
	case ShowAddFormMsg, ShowEditFormMsg, ShowDeleteMsg, DeleteWebsiteMsg,
		MakeCurrentMsg, ShowLocalPickerMsg, AddWebsiteMsg, UpdateWebsiteMsg,
		CloseFormMsg, ShowDiscardPromptMsg, KeepChangesMsg, DiscardChangesMsg,
		DirPickedMsg, LocalURLMsg, BookmarkSaveFailedMsg, DismissModalMsg,
		onboardingAdvanceMsg, openMenuMsg:
		return true
	}
	return false
}

func addSite(t *testing.T, a *AppModel, url string) *website.Website {
	t.Helper()
	w := website.New()
	w.URL = url
	if err := a.Controller.Add(context.Background(), w); err != nil {
		t.Fatalf("Add: %v", err)
	}
	a.refreshSites()
	return w
}

func TestApp_OnboardingSequence(t *testing.T) {
	a := newTestApp(t, true)
	a.Init()

	top, ok := a.Overlays.Peek()
	if !ok {
		t.Fatal("first launch should open the welcome dialog")
	}
	welcome, ok := top.View.(*InfoModal)
	if !ok || welcome.Title != "Welcome to Webwall" {
		t.Fatalf("unexpected first overlay: %T", top.View)
	}

	// Dismissing the welcome dialog brings up the second one.
	cmd := a.Update(keyMsg("enter"))
	drive(t, a, cmd)
	top, ok = a.Overlays.Peek()
	if !ok {
		t.Fatal("expected the how-it-works dialog")
	}
	second, ok := top.View.(*InfoModal)
	if !ok || second.Title != "How it works" {
		t.Fatalf("unexpected second overlay: %T", top.View)
	}

	// Dismissing the second dialog starts the badge pulse; do not drain
	// the tick commands, just check state.
	cmd = a.Update(keyMsg("enter"))
	if cmd == nil {
		t.Fatal("expected badge pulse command")
	}
	msg := cmd()
	if msg == nil {
		t.Fatal("expected a batch of onboarding commands")
	}
	a.Update(onboardingAdvanceMsg{stage: onboardingStagePointAtBadge})
	if !a.Badge.Active {
		t.Error("badge should be pulsing after onboarding")
	}

	// The simulated activation opens the command menu.
	a.Update(openMenuMsg{})
	if !a.KeyHandler.LeaderWaiting {
		t.Error("openMenuMsg should open the leader menu")
	}
}

func TestApp_NoOnboardingOnLaterLaunches(t *testing.T) {
	a := newTestApp(t, false)
	a.Init()
	if a.Overlays.Len() != 0 {
		t.Errorf("expected no overlays, got %d", a.Overlays.Len())
	}
}

func TestApp_FirstAddShowsTipOnce(t *testing.T) {
	a := newTestApp(t, false)

	a.Update(ShowAddFormMsg{})
	if a.Mode != ModeForm || a.Form == nil {
		t.Fatal("expected the add form to open")
	}
	if a.Overlays.Len() != 0 {
		t.Fatal("no tip before the first successful add")
	}

	draft := a.Form.Draft()
	draft.URL = "https://example.com/"
	a.Update(AddWebsiteMsg{Draft: draft})

	if a.Overlays.Len() != 1 {
		t.Fatalf("expected the one-time tip after the first add, got %d overlays", a.Overlays.Len())
	}
	if !a.Prefs.Bool(prefs.KeyTipShown) {
		t.Error("tip flag should persist immediately")
	}
	drive(t, a, a.Update(keyMsg("enter")))

	// Second add: no tip.
	a.Update(ShowAddFormMsg{})
	second := a.Form.Draft()
	second.URL = "https://two.example/"
	a.Update(AddWebsiteMsg{Draft: second})
	if a.Overlays.Len() != 0 {
		t.Errorf("tip should only show once, got %d overlays", a.Overlays.Len())
	}
}

func TestApp_AddWebsitePersistsAndCloses(t *testing.T) {
	a := newTestApp(t, false)
	if err := a.Prefs.SetBool(prefs.KeyTipShown, true); err != nil {
		t.Fatal(err)
	}
	a.Update(ShowAddFormMsg{})

	draft := a.Form.Draft()
	draft.URL = "https://example.com/"
	a.Update(AddWebsiteMsg{Draft: draft})

	if a.Form != nil || a.Mode != ModeBrowse {
		t.Error("form should close after a successful add")
	}
	if a.Controller.Len() != 1 {
		t.Fatalf("expected 1 website, got %d", a.Controller.Len())
	}
	if cur := a.Controller.Current(); cur == nil {
		t.Error("first website should become current")
	}
}

func TestApp_EditKeepsChangesViaPrompt(t *testing.T) {
	a := newTestApp(t, false)
	w := addSite(t, a, "https://example.com/")

	a.Update(ShowEditFormMsg{ID: w.ID})
	if a.Form == nil || !a.Form.Editing() {
		t.Fatal("expected an edit form")
	}

	a.Form.Draft().CSS = "body { margin: 0 }"
	a.Update(ShowDiscardPromptMsg{})
	if a.Overlays.Len() != 1 {
		t.Fatal("expected the keep-changes prompt")
	}

	drive(t, a, a.Update(KeepChangesMsg{}))
	if a.Form != nil {
		t.Error("keep should close the form")
	}
	stored, err := a.Controller.Get(w.ID)
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if stored.CSS != "body { margin: 0 }" {
		t.Errorf("stored CSS = %q, edits were not applied", stored.CSS)
	}
}

func TestApp_EditDiscardsChangesViaPrompt(t *testing.T) {
	a := newTestApp(t, false)
	w := addSite(t, a, "https://example.com/")

	a.Update(ShowEditFormMsg{ID: w.ID})
	a.Form.Draft().CSS = "discarded"
	a.Update(ShowDiscardPromptMsg{})
	drive(t, a, a.Update(DiscardChangesMsg{}))

	if a.Form != nil {
		t.Error("discard should close the form")
	}
	stored, _ := a.Controller.Get(w.ID)
	if stored.CSS != "" {
		t.Errorf("stored CSS = %q, want unchanged", stored.CSS)
	}
}

func TestApp_KeepWithInvalidURLReportsError(t *testing.T) {
	a := newTestApp(t, false)
	w := addSite(t, a, "https://example.com/")

	a.Update(ShowEditFormMsg{ID: w.ID})
	a.Form.Draft().URL = urlx.Sentinel
	a.Update(ShowDiscardPromptMsg{})
	drive(t, a, a.Update(KeepChangesMsg{}))

	if a.Form == nil {
		t.Fatal("form must stay open when keep cannot apply")
	}
	if !a.StatusIsError || a.Status == "" {
		t.Error("the refused keep should surface an error status")
	}
	if a.Overlays.Len() != 0 {
		t.Error("the prompt itself should close")
	}
}

func TestApp_DeleteConfirmFlow(t *testing.T) {
	a := newTestApp(t, false)
	addSite(t, a, "https://example.com/")

	a.Update(ShowDeleteMsg{})
	top, ok := a.Overlays.Peek()
	if !ok {
		t.Fatal("expected a delete confirmation")
	}
	if _, ok := top.View.(*ConfirmModal); !ok {
		t.Fatalf("expected ConfirmModal, got %T", top.View)
	}

	drive(t, a, a.Update(keyMsg("enter")))
	if a.Controller.Len() != 0 {
		t.Errorf("expected 0 websites after delete, got %d", a.Controller.Len())
	}
	if a.Overlays.Len() != 0 {
		t.Error("confirmation should close after delete")
	}
}

func TestApp_DeleteCancelledWithEsc(t *testing.T) {
	a := newTestApp(t, false)
	addSite(t, a, "https://example.com/")

	a.Update(ShowDeleteMsg{})
	drive(t, a, a.Update(keyMsg("esc")))
	if a.Controller.Len() != 1 {
		t.Error("esc should cancel the delete")
	}
}

func TestApp_MakeCurrentExclusive(t *testing.T) {
	a := newTestApp(t, false)
	first := addSite(t, a, "https://one.example/")
	second := addSite(t, a, "https://two.example/")

	a.Update(MakeCurrentMsg{ID: second.ID})
	cur := a.Controller.Current()
	if cur == nil || cur.ID != second.ID {
		t.Fatal("second site should be current")
	}
	got, _ := a.Controller.Get(first.ID)
	if got.IsCurrent {
		t.Error("only one site may be current")
	}
}

func TestApp_DirPickedGrantsAndOpensForm(t *testing.T) {
	a := newTestApp(t, false)
	siteDir := t.TempDir()
	if err := os.WriteFile(filepath.Join(siteDir, "index.html"), []byte("<html></html>"), 0o644); err != nil {
		t.Fatal(err)
	}

	drive(t, a, a.Update(DirPickedMsg{Path: siteDir}))

	if !a.Bookmarks.Granted(siteDir) {
		t.Error("picking a directory should record an access grant")
	}
	if a.Form == nil {
		t.Fatal("picking from browse should open an add form")
	}
	if a.Form.Draft().URL != "file://"+siteDir {
		t.Errorf("draft URL = %q", a.Form.Draft().URL)
	}
}

func TestApp_BookmarkFailureShowsErrorDialog(t *testing.T) {
	a := newTestApp(t, false)

	drive(t, a, a.Update(DirPickedMsg{Path: filepath.Join(t.TempDir(), "missing")}))

	top, ok := a.Overlays.Peek()
	if !ok {
		t.Fatal("expected an error dialog")
	}
	if _, ok := top.View.(*InfoModal); !ok {
		t.Fatalf("expected InfoModal, got %T", top.View)
	}
	if a.Form != nil {
		t.Error("a failed grant must not open the form")
	}
}

func TestApp_StaleTitleFetchAfterFormClosed(t *testing.T) {
	a := newTestApp(t, false)
	a.Update(ShowAddFormMsg{})
	a.Update(CloseFormMsg{})

	// A late fetch result with no form open is dropped silently.
	a.Update(titleFetchedMsg{gen: 1, title: "Late"})
	if a.Form != nil {
		t.Error("no form should reappear")
	}
}

func TestApp_KeybindsOpenForm(t *testing.T) {
	a := newTestApp(t, false)

	drive(t, a, a.Update(keyMsg("a")))
	if a.Mode != ModeForm || a.Form == nil {
		t.Error("pressing a in browse mode should open the add form")
	}
}

func TestApp_LeaderMenuAdd(t *testing.T) {
	a := newTestApp(t, false)

	a.Update(keyMsg(" "))
	if !a.KeyHandler.LeaderWaiting {
		t.Fatal("space should open the leader menu")
	}
	a.Update(keyMsg("w"))
	drive(t, a, a.Update(keyMsg("a")))
	if a.Mode != ModeForm || a.Form == nil {
		t.Error("SPC w a should open the add form")
	}
}
