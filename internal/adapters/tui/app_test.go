package tui

import (
	"errors"
	"os/exec"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/rs/zerolog"

	"simplenotes/internal/adapters/memory"
	"simplenotes/internal/adapters/tui/views"
	"simplenotes/internal/application"
	"simplenotes/internal/domain"
	"simplenotes/internal/ports"
)

type manualClock struct{ now time.Time }

func (c *manualClock) Now() time.Time { return c.now }

func (c *manualClock) Advance(d time.Duration) { c.now = c.now.Add(d) }

func newWorkspace(t *testing.T) (*application.Workspace, *manualClock) {
	t.Helper()
	clock := &manualClock{now: time.Date(2026, 1, 1, 9, 0, 0, 0, time.UTC)}
	kv := memory.NewWith(map[string]string{ports.KeyNotes: "[]"})
	ws, err := application.Open(kv, application.Options{Clock: clock, AutoSaveInterval: time.Minute})
	if err != nil {
		t.Fatalf("failed to open workspace: %v", err)
	}
	return ws, clock
}

// start builds the app after the fixture notes exist and gives it a screen
func start(ws *application.Workspace) *App {
	app := NewApp(ws, nil, zerolog.Nop())
	app.Update(tea.WindowSizeMsg{Width: 100, Height: 30})
	return app
}

func mustCreate(t *testing.T, ws *application.Workspace, groupID domain.ID, content string) domain.Note {
	t.Helper()
	n, err := ws.Session.CreateNote(groupID)
	if err != nil {
		t.Fatalf("create note: %v", err)
	}
	ws.Session.Edit(content)
	if err := ws.Session.Save(); err != nil {
		t.Fatalf("save note: %v", err)
	}
	n, _ = ws.Notes.Get(n.ID)
	return n
}

func press(app *App, keys ...string) tea.Cmd {
	var cmd tea.Cmd
	for _, k := range keys {
		_, cmd = app.Update(keyMsg(k))
	}
	return cmd
}

func keyMsg(s string) tea.KeyMsg {
	switch s {
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	case "esc":
		return tea.KeyMsg{Type: tea.KeyEsc}
	case "tab":
		return tea.KeyMsg{Type: tea.KeyTab}
	case "ctrl+s":
		return tea.KeyMsg{Type: tea.KeyCtrlS}
	case "ctrl+u":
		return tea.KeyMsg{Type: tea.KeyCtrlU}
	case "ctrl+c":
		return tea.KeyMsg{Type: tea.KeyCtrlC}
	}
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func typeText(app *App, text string) {
	for _, r := range text {
		app.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}})
	}
}

func isQuit(cmd tea.Cmd) bool {
	if cmd == nil {
		return false
	}
	_, ok := cmd().(tea.QuitMsg)
	return ok
}

// dirtyOnB opens the app on note b with an unsaved edit, then asks to
// switch to note a
func dirtyOnB(t *testing.T) (*App, *application.Workspace, domain.Note, domain.Note) {
	t.Helper()
	ws, _ := newWorkspace(t)
	a := mustCreate(t, ws, domain.NoGroup, "# Alpha")
	b := mustCreate(t, ws, domain.NoGroup, "# Beta")
	app := start(ws)

	press(app, "tab")
	typeText(app, "x")
	press(app, "esc")
	if ws.Session.State() != application.StateDirty {
		t.Fatalf("state = %s, want dirty", ws.Session.State())
	}

	press(app, "k", "enter")
	if !app.confirm.Active() || app.confirm.Action != views.ConfirmLeave {
		t.Fatal("switching away from unsaved edits should ask first")
	}
	return app, ws, a, b
}

func TestApp_GuardStay(t *testing.T) {
	app, ws, _, b := dirtyOnB(t)

	press(app, "n")

	if ws.Session.ActiveID() != b.ID {
		t.Errorf("active = %v, want %v", ws.Session.ActiveID(), b.ID)
	}
	if ws.Session.State() != application.StateDirty {
		t.Errorf("state = %s, want dirty", ws.Session.State())
	}
	if got := app.pane.Value(); got != "x# Beta" {
		t.Errorf("editor = %q, edits should survive", got)
	}
	if stored, _ := ws.Notes.Get(b.ID); stored.Content != "# Beta" {
		t.Errorf("stored content = %q, nothing should be saved", stored.Content)
	}
}

func TestApp_GuardLeave(t *testing.T) {
	app, ws, a, b := dirtyOnB(t)

	press(app, "y")

	if ws.Session.ActiveID() != a.ID {
		t.Errorf("active = %v, want %v", ws.Session.ActiveID(), a.ID)
	}
	if got := app.pane.Value(); got != "# Alpha" {
		t.Errorf("editor = %q, want the other note", got)
	}
	if stored, _ := ws.Notes.Get(b.ID); stored.Content != "# Beta" {
		t.Errorf("discarded edits were saved: %q", stored.Content)
	}
}

func TestApp_SwitchWithoutEditsDoesNotAsk(t *testing.T) {
	ws, _ := newWorkspace(t)
	a := mustCreate(t, ws, domain.NoGroup, "# Alpha")
	mustCreate(t, ws, domain.NoGroup, "# Beta")
	app := start(ws)

	press(app, "k", "enter")

	if app.confirm.Active() {
		t.Error("no prompt expected for a clean buffer")
	}
	if ws.Session.ActiveID() != a.ID {
		t.Errorf("active = %v, want %v", ws.Session.ActiveID(), a.ID)
	}
}

func TestApp_NewNoteOpensInEditor(t *testing.T) {
	ws, _ := newWorkspace(t)
	g, _, err := ws.Groups.Create("Work")
	if err != nil {
		t.Fatal(err)
	}
	app := start(ws)
	app.sidebar.SelectGroup(g.ID)

	press(app, "n")

	n, ok := ws.Session.Active()
	if !ok || n.GroupID != g.ID {
		t.Fatalf("active note = %+v, want a new note in Work", n)
	}
	if app.focus != FocusEditor {
		t.Error("new note should focus the editor")
	}
	if app.pane.NoteID() != n.ID {
		t.Error("editor should show the new note")
	}
}

func TestApp_SaveWithCtrlS(t *testing.T) {
	ws, _ := newWorkspace(t)
	n := mustCreate(t, ws, domain.NoGroup, "# Draft")
	app := start(ws)

	press(app, "tab")
	typeText(app, "My ")
	press(app, "ctrl+s")

	stored, _ := ws.Notes.Get(n.ID)
	if stored.Content != "My # Draft" {
		t.Errorf("content = %q", stored.Content)
	}
	if ws.Session.IsDirty() {
		t.Error("session should be clean after saving")
	}
}

func TestApp_RenameNoteTitle(t *testing.T) {
	ws, _ := newWorkspace(t)
	n := mustCreate(t, ws, domain.NoGroup, "# Draft")
	app := start(ws)

	press(app, "r")
	if !app.input.Active() {
		t.Fatal("rename should open the inline input")
	}
	press(app, "ctrl+u")
	typeText(app, "Plan")
	press(app, "enter")

	stored, _ := ws.Notes.Get(n.ID)
	if stored.Title != "Plan" || !stored.TitleSource.IsCustom() {
		t.Errorf("title = %q (%s), want custom Plan", stored.Title, stored.TitleSource)
	}
	if _, ok := ws.Session.InlineTarget(); ok {
		t.Error("inline edit should be finished")
	}
}

func TestApp_RenameCancelled(t *testing.T) {
	ws, _ := newWorkspace(t)
	n := mustCreate(t, ws, domain.NoGroup, "# Draft")
	app := start(ws)

	press(app, "r")
	typeText(app, "zzz")
	press(app, "esc")

	stored, _ := ws.Notes.Get(n.ID)
	if stored.Title != "Draft" || stored.TitleSource.IsCustom() {
		t.Errorf("title = %q (%s), want untouched", stored.Title, stored.TitleSource)
	}
	if app.input.Active() {
		t.Error("esc should close the input")
	}
}

func TestApp_NewGroup(t *testing.T) {
	ws, _ := newWorkspace(t)
	app := start(ws)

	press(app, "g")
	typeText(app, "Work")
	press(app, "enter")

	g, ok := ws.Groups.FindByName("Work")
	if !ok {
		t.Fatal("group not created")
	}
	if row, _ := app.sidebar.Selected(); row.Kind != views.RowGroup || row.Group.ID != g.ID {
		t.Error("new group should be selected")
	}
}

func TestApp_DeleteActiveNote(t *testing.T) {
	ws, _ := newWorkspace(t)
	a := mustCreate(t, ws, domain.NoGroup, "# Alpha")
	b := mustCreate(t, ws, domain.NoGroup, "# Beta")
	app := start(ws)

	press(app, "x")
	if !app.confirm.Active() {
		t.Fatal("delete should ask first")
	}
	press(app, "y")

	if _, ok := ws.Notes.Get(b.ID); ok {
		t.Error("note should be deleted")
	}
	if ws.Session.ActiveID() != a.ID {
		t.Errorf("active = %v, want the remaining note", ws.Session.ActiveID())
	}
	if app.pane.Value() != "# Alpha" {
		t.Errorf("editor = %q", app.pane.Value())
	}
}

func TestApp_DeleteOnlyNoteGoesIdle(t *testing.T) {
	ws, _ := newWorkspace(t)
	mustCreate(t, ws, domain.NoGroup, "# Only")
	app := start(ws)

	press(app, "x", "y")

	if ws.Session.State() != application.StateIdle {
		t.Errorf("state = %s, want idle", ws.Session.State())
	}
	if app.pane.Value() != "" {
		t.Errorf("editor = %q, want empty", app.pane.Value())
	}
	if app.focus != FocusSidebar {
		t.Error("focus should return to the list")
	}
}

func TestApp_DeleteDeclined(t *testing.T) {
	ws, _ := newWorkspace(t)
	n := mustCreate(t, ws, domain.NoGroup, "# Keep")
	app := start(ws)

	press(app, "x", "n")

	if _, ok := ws.Notes.Get(n.ID); !ok {
		t.Error("declined delete removed the note")
	}
}

func TestApp_AutoSave(t *testing.T) {
	ws, clock := newWorkspace(t)
	n := mustCreate(t, ws, domain.NoGroup, "# Draft")
	app := start(ws)

	if cmd := press(app, "a"); cmd == nil {
		t.Fatal("enabling auto-save should schedule a tick")
	}
	gen := ws.AutoSave.Generation()

	ws.Session.Edit("# Draft\n\nmore")
	clock.Advance(time.Minute)

	_, cmd := app.Update(autoSaveTickMsg{gen: gen})
	if cmd == nil {
		t.Error("a current tick should schedule the next one")
	}
	if stored, _ := ws.Notes.Get(n.ID); stored.Content != "# Draft\n\nmore" {
		t.Errorf("content = %q, want the auto-saved buffer", stored.Content)
	}

	press(app, "a")
	if _, cmd := app.Update(autoSaveTickMsg{gen: gen}); cmd != nil {
		t.Error("a stale tick should stop the chain")
	}
}

func TestApp_QuitAsksWhenDirty(t *testing.T) {
	ws, _ := newWorkspace(t)
	mustCreate(t, ws, domain.NoGroup, "# Draft")
	app := start(ws)

	if !isQuit(press(app, "q")) {
		t.Fatal("a clean session should quit immediately")
	}

	ws.Session.Edit("changed")
	if isQuit(press(app, "ctrl+c")) {
		t.Fatal("unsaved edits should be confirmed first")
	}
	if !isQuit(press(app, "y")) {
		t.Error("confirming should quit")
	}
}

type fakeEditSession struct {
	text string
	err  error
}

func (f fakeEditSession) Cmd() *exec.Cmd { return exec.Command("true") }

func (f fakeEditSession) Result() (string, error) { return f.text, f.err }

func TestApp_ExternalEditorResult(t *testing.T) {
	ws, _ := newWorkspace(t)
	n := mustCreate(t, ws, domain.NoGroup, "# Draft")
	app := start(ws)

	app.Update(editorFinishedMsg{session: fakeEditSession{text: "# Rewritten"}, noteID: n.ID})

	if ws.Session.Buffer() != "# Rewritten" || app.pane.Value() != "# Rewritten" {
		t.Errorf("buffer = %q, editor = %q", ws.Session.Buffer(), app.pane.Value())
	}
	if !ws.Session.IsDirty() {
		t.Error("external edits are unsaved until ctrl+s")
	}
}

func TestApp_ExternalEditorFailureKeepsBuffer(t *testing.T) {
	ws, _ := newWorkspace(t)
	n := mustCreate(t, ws, domain.NoGroup, "# Draft")
	app := start(ws)

	app.Update(editorFinishedMsg{
		session: fakeEditSession{text: "ignored"},
		noteID:  n.ID,
		err:     errors.New("exit status 1"),
	})

	if ws.Session.Buffer() != "# Draft" {
		t.Errorf("buffer = %q, want unchanged", ws.Session.Buffer())
	}
	if !strings.Contains(app.flash.Text, "exit status 1") {
		t.Errorf("flash = %q", app.flash.Text)
	}
}

func TestApp_ViewRenders(t *testing.T) {
	ws, _ := newWorkspace(t)
	mustCreate(t, ws, domain.NoGroup, "# Visible title")
	app := start(ws)

	if view := app.View(); !strings.Contains(view, "Visible title") {
		t.Errorf("view does not show the note title:\n%s", view)
	}
}
