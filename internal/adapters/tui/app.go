package tui

import (
	"errors"
	"fmt"
	"time"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/rs/zerolog"

	"simplenotes/internal/adapters/tui/styles"
	"simplenotes/internal/adapters/tui/views"
	"simplenotes/internal/application"
	"simplenotes/internal/domain"
	"simplenotes/internal/ports"
)

// ViewState represents the current view
type ViewState int

const (
	ViewMain ViewState = iota
	ViewSearch
	ViewHelp
)

// Focus is the pane receiving keys in the main view
type Focus int

const (
	FocusSidebar Focus = iota
	FocusEditor
)

const sidebarMaxWidth = 36

// App is the main TUI application model. All workspace access happens
// inside Update; commands returned to bubbletea never touch it.
type App struct {
	ws     *application.Workspace
	editor ports.EditorOpener
	log    zerolog.Logger

	state   ViewState
	focus   Focus
	preview bool

	sidebar  *views.SidebarModel
	pane     *views.EditorPane
	rendered views.Preview
	confirm  views.ConfirmationModel
	input    *views.InputForm
	search   *views.SearchModel
	help     *views.HelpModel
	flash    views.Flash

	// deleteTarget is the row awaiting delete confirmation
	deleteTarget views.Row

	width  int
	height int
}

// NewApp creates a new TUI application. ed may be nil, which disables the
// external editor.
func NewApp(ws *application.Workspace, ed ports.EditorOpener, log zerolog.Logger) *App {
	a := &App{
		ws:      ws,
		editor:  ed,
		log:     log.With().Str("component", "tui").Logger(),
		state:   ViewMain,
		sidebar: views.NewSidebarModel(ws),
		pane:    views.NewEditorPane(),
		confirm: views.NewConfirmationModel(),
		input:   views.NewInputForm(),
		search:  views.NewSearchModel(ws),
		help:    views.NewHelpModel(),
	}
	a.syncEditor()
	return a
}

// Init initializes the application
func (a *App) Init() tea.Cmd {
	return nil
}

type autoSaveTickMsg struct {
	gen uint64
}

type editorFinishedMsg struct {
	session ports.EditSession
	noteID  domain.ID
	err     error
}

// Update handles messages for the application
func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		a.layout()
		return a, nil

	case autoSaveTickMsg:
		return a, a.handleAutoSaveTick(msg)

	case editorFinishedMsg:
		a.handleEditorFinished(msg)
		return a, nil

	case views.SwitchToMainMsg:
		a.state = ViewMain
		a.sidebar.Refresh()
		return a, nil

	case views.SearchSelectMsg:
		a.state = ViewMain
		a.openNote(msg.NoteID)
		return a, nil
	}

	switch a.state {
	case ViewSearch:
		_, cmd := a.search.Update(msg)
		return a, cmd
	case ViewHelp:
		_, cmd := a.help.Update(msg)
		return a, cmd
	}

	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		// Cursor blink and similar
		if a.input.Active() {
			_, _, cmd := a.input.Update(msg)
			return a, cmd
		}
		if a.focus == FocusEditor {
			_, cmd := a.pane.Update(msg)
			return a, cmd
		}
		return a, nil
	}

	if a.confirm.Active() {
		return a, a.handleConfirm(keyMsg)
	}
	if a.input.Active() {
		return a, a.handleInput(keyMsg)
	}

	a.flash.Clear()
	if key.Matches(keyMsg, AppKeys.ForceQuit) {
		return a, a.requestQuit()
	}
	if a.focus == FocusEditor {
		return a, a.handleEditorKey(keyMsg)
	}
	return a, a.handleSidebarKey(keyMsg)
}

func (a *App) handleEditorKey(msg tea.KeyMsg) tea.Cmd {
	switch {
	case key.Matches(msg, AppKeys.Blur):
		a.focus = FocusSidebar
		a.pane.Blur()
		return nil
	case key.Matches(msg, AppKeys.Save):
		a.save()
		return nil
	case key.Matches(msg, AppKeys.YankEditor):
		a.yank()
		return nil
	}

	changed, cmd := a.pane.Update(msg)
	if changed {
		a.ws.Session.Edit(a.pane.Value())
	}
	return cmd
}

func (a *App) handleSidebarKey(msg tea.KeyMsg) tea.Cmd {
	if a.sidebar.Moving() {
		dropping := key.Matches(msg, views.SidebarKeys.Drop)
		_, cmd, err := a.sidebar.Update(msg)
		switch {
		case errors.Is(err, views.ErrCannotDrop):
			a.flash.SetError(err)
		case err != nil:
			a.fail("move", err)
		case dropping:
			a.flash.Set("Moved", false)
		}
		return cmd
	}

	switch {
	case key.Matches(msg, AppKeys.Quit):
		return a.requestQuit()

	case key.Matches(msg, AppKeys.Help):
		a.state = ViewHelp
		return nil

	case key.Matches(msg, AppKeys.Search):
		a.state = ViewSearch
		a.search.Reset()
		return a.search.Init()

	case key.Matches(msg, AppKeys.FocusEditor):
		return a.focusEditor()

	case key.Matches(msg, AppKeys.Open):
		row, ok := a.sidebar.Selected()
		if !ok {
			return nil
		}
		switch row.Kind {
		case views.RowNote:
			a.openNote(row.Note.ID)
		case views.RowGroup:
			if err := a.sidebar.ToggleSelected(); err != nil {
				a.fail("toggle group", err)
			}
		}
		return nil

	case key.Matches(msg, AppKeys.New):
		return a.createNote(a.sidebar.SelectedGroupID())

	case key.Matches(msg, AppKeys.NewGroup):
		return a.input.Begin(views.InputNewGroup, "New group", "", "Group name")

	case key.Matches(msg, AppKeys.Rename):
		return a.beginRename(domain.FieldTitle)

	case key.Matches(msg, AppKeys.Describe):
		return a.beginRename(domain.FieldDescription)

	case key.Matches(msg, AppKeys.Delete):
		a.askDelete()
		return nil

	case key.Matches(msg, AppKeys.Move):
		if a.sidebar.BeginMove() {
			a.flash.Set("Moving: j/k to choose a spot, enter to drop, esc to cancel", false)
		}
		return nil

	case key.Matches(msg, AppKeys.Save):
		a.save()
		return nil

	case key.Matches(msg, AppKeys.External):
		return a.openExternalEditor()

	case key.Matches(msg, AppKeys.Preview):
		a.preview = !a.preview
		if a.preview {
			a.pane.Blur()
		}
		return nil

	case key.Matches(msg, AppKeys.Yank):
		a.yank()
		return nil

	case key.Matches(msg, AppKeys.AutoSave):
		return a.toggleAutoSave()
	}

	_, cmd, err := a.sidebar.Update(msg)
	if err != nil {
		a.fail("update group", err)
	}
	return cmd
}

// openNote switches notes through the unsaved-changes guard
func (a *App) openNote(id domain.ID) {
	err := a.ws.Session.Open(id)
	if errors.Is(err, application.ErrUnsavedChanges) {
		title := ""
		if n, ok := a.ws.Session.Active(); ok {
			title = n.Title
		}
		a.confirm.Ask(views.ConfirmLeave,
			"Discard unsaved changes?",
			fmt.Sprintf("%q has edits that are not saved. y leaves them, n stays.", title),
		)
		return
	}
	if err != nil {
		a.fail("open note", err)
	}
	a.syncEditor()
	a.sidebar.SelectNote(a.ws.Session.ActiveID())
}

func (a *App) createNote(groupID domain.ID) tea.Cmd {
	n, err := a.ws.Session.CreateNote(groupID)
	if err != nil {
		a.fail("create note", err)
	}
	a.syncEditor()
	if n.ID != 0 {
		a.sidebar.SelectNote(n.ID)
		return a.focusEditor()
	}
	return nil
}

func (a *App) beginRename(field domain.Field) tea.Cmd {
	row, ok := a.sidebar.Selected()
	if !ok {
		return nil
	}
	switch row.Kind {
	case views.RowNote:
		target := application.InlineTarget{Kind: application.TargetNote, ID: row.Note.ID, Field: field}
		if err := a.ws.Session.BeginInlineEdit(target); err != nil {
			a.fail("rename", err)
			return nil
		}
		value, label := row.Note.Title, "Title"
		if field == domain.FieldDescription {
			value, label = row.Note.Description, "Description"
		}
		return a.input.Begin(views.InputRename, label, value, "")

	case views.RowGroup:
		target := application.InlineTarget{Kind: application.TargetGroup, ID: row.Group.ID}
		if err := a.ws.Session.BeginInlineEdit(target); err != nil {
			a.fail("rename", err)
			return nil
		}
		return a.input.Begin(views.InputRename, "Group name", row.Group.Name, "")
	}
	return nil
}

func (a *App) handleInput(msg tea.KeyMsg) tea.Cmd {
	submitted, cancelled, cmd := a.input.Update(msg)
	switch {
	case cancelled:
		if a.input.Purpose == views.InputRename {
			a.ws.Session.CancelInlineEdit()
		}
		a.input.Close()

	case submitted:
		value := a.input.Value()
		purpose := a.input.Purpose
		a.input.Close()

		switch purpose {
		case views.InputRename:
			if err := a.ws.Session.CommitInlineEdit(value); err != nil {
				a.fail("rename", err)
			}
			a.sidebar.Refresh()

		case views.InputNewGroup:
			g, created, err := a.ws.Groups.Create(value)
			if err != nil {
				a.fail("create group", err)
			}
			a.sidebar.Refresh()
			if created {
				a.sidebar.SelectGroup(g.ID)
				a.flash.Set("Created group "+g.Name, false)
			}
		}
	}
	return cmd
}

func (a *App) askDelete() {
	row, ok := a.sidebar.Selected()
	if !ok {
		return
	}
	a.deleteTarget = row
	switch row.Kind {
	case views.RowNote:
		a.confirm.Ask(views.ConfirmDeleteNote, "Delete note?", row.Note.Title)
	case views.RowGroup:
		detail := row.Group.Name
		if row.Count > 0 {
			detail += fmt.Sprintf("\nIts %d notes move to Ungrouped.", row.Count)
		}
		a.confirm.Ask(views.ConfirmDeleteGroup, "Delete group?", detail)
	}
}

func (a *App) handleConfirm(msg tea.KeyMsg) tea.Cmd {
	action, confirmed, handled := a.confirm.HandleKeyMsg(msg)
	if !handled {
		return nil
	}

	switch action {
	case views.ConfirmLeave:
		if confirmed {
			if err := a.ws.Session.ConfirmLeave(); err != nil {
				a.fail("open note", err)
			}
		} else {
			a.ws.Session.CancelLeave()
		}
		a.syncEditor()
		a.sidebar.SelectNote(a.ws.Session.ActiveID())

	case views.ConfirmDeleteNote:
		if confirmed {
			if err := a.ws.Session.DeleteNote(a.deleteTarget.Note.ID); err != nil {
				a.fail("delete note", err)
			}
			a.syncEditor()
		}

	case views.ConfirmDeleteGroup:
		if confirmed {
			if err := a.ws.Session.DeleteGroup(a.deleteTarget.Group.ID); err != nil {
				a.fail("delete group", err)
			}
			a.sidebar.Refresh()
		}

	case views.ConfirmQuit:
		if confirmed {
			return tea.Quit
		}
	}
	a.deleteTarget = views.Row{}
	return nil
}

func (a *App) requestQuit() tea.Cmd {
	if a.ws.Session.IsDirty() {
		a.confirm.Ask(views.ConfirmQuit, "Quit without saving?", "The open note has unsaved edits.")
		return nil
	}
	return tea.Quit
}

func (a *App) focusEditor() tea.Cmd {
	if a.ws.Session.ActiveID() == 0 {
		a.flash.Set("No note open", true)
		return nil
	}
	a.focus = FocusEditor
	a.preview = false
	return a.pane.Focus()
}

func (a *App) save() {
	if a.ws.Session.ActiveID() == 0 {
		return
	}
	if err := a.ws.Session.Save(); err != nil {
		a.fail("save", err)
		return
	}
	a.sidebar.Refresh()
	a.flash.Set("Saved", false)
}

func (a *App) yank() {
	if a.ws.Session.ActiveID() == 0 {
		return
	}
	if err := clipboard.WriteAll(a.ws.Session.Buffer()); err != nil {
		a.flash.Set("Copy failed: "+err.Error(), true)
		return
	}
	a.flash.Set("Copied note content", false)
}

func (a *App) toggleAutoSave() tea.Cmd {
	on, gen := a.ws.Session.ToggleAutoSave()
	if !on {
		a.flash.Set("Auto-save off", false)
		return nil
	}
	a.flash.Set(fmt.Sprintf("Auto-save on, every %s", a.ws.AutoSave.Interval()), false)
	return a.scheduleAutoSave(gen)
}

func (a *App) scheduleAutoSave(gen uint64) tea.Cmd {
	return tea.Tick(a.ws.AutoSave.Interval(), func(time.Time) tea.Msg {
		return autoSaveTickMsg{gen: gen}
	})
}

// handleAutoSaveTick saves and schedules the next tick while the
// generation is current. Stale ticks stop the chain.
func (a *App) handleAutoSaveTick(msg autoSaveTickMsg) tea.Cmd {
	if msg.gen != a.ws.AutoSave.Generation() || !a.ws.AutoSave.Enabled() {
		return nil
	}
	saved, err := a.ws.Session.AutoSaveTick(msg.gen)
	if err != nil {
		a.fail("auto-save", err)
	}
	if saved {
		a.sidebar.Refresh()
	}
	return a.scheduleAutoSave(msg.gen)
}

func (a *App) openExternalEditor() tea.Cmd {
	id := a.ws.Session.ActiveID()
	if id == 0 || a.editor == nil {
		return nil
	}

	session, err := a.editor.Prepare(a.ws.Session.Buffer())
	if err != nil {
		a.fail("open editor", err)
		return nil
	}
	return tea.ExecProcess(session.Cmd(), func(err error) tea.Msg {
		return editorFinishedMsg{session: session, noteID: id, err: err}
	})
}

func (a *App) handleEditorFinished(msg editorFinishedMsg) {
	text, err := msg.session.Result()
	if msg.err != nil {
		a.fail("editor", msg.err)
		return
	}
	if err != nil {
		a.fail("editor", err)
		return
	}
	if a.ws.Session.ActiveID() != msg.noteID {
		a.flash.Set("Another note was opened while editing; edits dropped", true)
		return
	}
	a.ws.Session.Edit(text)
	a.pane.Reset(msg.noteID, text)
	if a.ws.Session.IsDirty() {
		a.flash.Set("Edited in external editor, ctrl+s to save", false)
	}
}

// syncEditor reloads the editor from the session and refreshes the list
func (a *App) syncEditor() {
	a.pane.Load(a.ws.Session.ActiveID(), a.ws.Session.Buffer())
	if a.ws.Session.ActiveID() == 0 {
		a.focus = FocusSidebar
	}
	a.sidebar.Refresh()
}

func (a *App) fail(action string, err error) {
	a.log.Error().Err(err).Str("action", action).Msg("operation failed")
	a.flash.SetError(fmt.Errorf("%s: %w", action, err))
}

func (a *App) sidebarWidth() int {
	return min(sidebarMaxWidth, max(a.width/3, 16))
}

// layout sizes the panes. Each pane loses two columns and two rows to its
// border; the status and help lines take two more rows.
func (a *App) layout() {
	sw := a.sidebarWidth()
	bodyHeight := max(a.height-2, 3)
	a.sidebar.SetSize(sw-4, bodyHeight-2)
	a.pane.SetSize(a.width-sw-4, bodyHeight-2)
	a.search.SetSize(a.width, a.height)
	a.help.SetSize(a.width, a.height)
}

// View renders the current view
func (a *App) View() string {
	switch a.state {
	case ViewSearch:
		return a.search.View()
	case ViewHelp:
		return a.help.View()
	}

	if a.width == 0 {
		return "Loading..."
	}
	if a.confirm.Active() {
		return lipgloss.Place(a.width, a.height, lipgloss.Center, lipgloss.Center, a.confirm.View())
	}

	sw := a.sidebarWidth()
	bodyHeight := max(a.height-2, 3)

	left := a.sidebar.View(a.focus == FocusSidebar)
	if a.input.Active() {
		left = lipgloss.JoinVertical(lipgloss.Left, left, "", a.input.View(sw-4))
	}
	leftStyle := styles.Pane
	if a.focus == FocusSidebar {
		leftStyle = styles.PaneFocused
	}
	leftPane := leftStyle.Width(sw - 2).Height(bodyHeight - 2).Render(left)

	var right string
	if a.preview {
		right = a.rendered.Render(a.ws.Session.Buffer(), a.width-sw-4)
	} else {
		right = a.pane.View()
	}
	rightStyle := styles.Pane
	if a.focus == FocusEditor {
		rightStyle = styles.PaneFocused
	}
	rightPane := rightStyle.Width(a.width - sw - 2).Height(bodyHeight - 2).MaxHeight(bodyHeight).Render(right)

	body := lipgloss.JoinHorizontal(lipgloss.Top, leftPane, rightPane)
	return lipgloss.JoinVertical(lipgloss.Left, body, a.renderStatus(), a.renderHelpLine())
}

func (a *App) renderStatus() string {
	mode := "LIST"
	switch {
	case a.sidebar.Moving():
		mode = "MOVE"
	case a.focus == FocusEditor:
		mode = "EDIT"
	case a.preview:
		mode = "PREVIEW"
	}

	parts := []string{styles.StatusKey.Render(mode)}
	if n, ok := a.ws.Session.Active(); ok {
		if a.ws.Session.IsDirty() {
			parts = append(parts, styles.StatusDirty.Render("modified"))
		}
		parts = append(parts, n.Title)
	}
	if a.ws.AutoSave.Enabled() {
		parts = append(parts, styles.StatusText.Render(" auto-save"))
	}
	if a.flash.Text != "" {
		parts = append(parts, "  "+a.flash.View())
	}
	return styles.StatusBar.Width(a.width).Render(lipgloss.JoinHorizontal(lipgloss.Top, parts...))
}

func (a *App) renderHelpLine() string {
	if a.focus == FocusEditor {
		return views.RenderHelpLine(AppKeys.Blur, AppKeys.Save, AppKeys.YankEditor, AppKeys.ForceQuit)
	}
	if a.sidebar.Moving() {
		return views.RenderHelpLine(views.SidebarKeys.Up, views.SidebarKeys.Down, views.SidebarKeys.Drop, views.SidebarKeys.Cancel)
	}
	return views.RenderHelpLine(AppKeys.Open, AppKeys.New, AppKeys.NewGroup, AppKeys.Rename,
		AppKeys.Move, AppKeys.Delete, AppKeys.FocusEditor, AppKeys.Search, AppKeys.Help, AppKeys.Quit)
}
