package views

import (
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textarea"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"simplenotes/internal/adapters/tui/styles"
	"simplenotes/internal/domain"
)

// EditorPane wraps a textarea bound to one note at a time
type EditorPane struct {
	ta     textarea.Model
	noteID domain.ID
}

// NewEditorPane creates an empty, blurred editor
func NewEditorPane() *EditorPane {
	ta := textarea.New()
	ta.ShowLineNumbers = false
	ta.CharLimit = 0
	ta.MaxHeight = 0
	ta.Prompt = ""
	ta.Placeholder = "Select or create a note"
	ta.FocusedStyle = textarea.Style{
		Base:        lipgloss.NewStyle(),
		CursorLine:  lipgloss.NewStyle(),
		EndOfBuffer: styles.MutedText,
		Placeholder: styles.MutedText,
		Text:        lipgloss.NewStyle(),
	}
	ta.BlurredStyle = ta.FocusedStyle
	// alt+c copies the buffer
	ta.KeyMap.CapitalizeWordForward = key.NewBinding(key.WithDisabled())
	ta.Blur()
	return &EditorPane{ta: ta}
}

// Load shows text for noteID. The buffer is only replaced when the note
// identity changes, so re-renders never clobber typing in progress.
func (e *EditorPane) Load(noteID domain.ID, text string) {
	if noteID == e.noteID {
		return
	}
	e.Reset(noteID, text)
}

// Reset replaces the buffer unconditionally
func (e *EditorPane) Reset(noteID domain.ID, text string) {
	e.noteID = noteID
	e.ta.SetValue(text)
	e.ta.CursorStart()
	if noteID == 0 {
		e.ta.Blur()
	}
}

// NoteID returns the note the buffer belongs to
func (e *EditorPane) NoteID() domain.ID {
	return e.noteID
}

// Value returns the buffer text
func (e *EditorPane) Value() string {
	return e.ta.Value()
}

// Focus gives the editor keyboard input. An editor without a note stays blurred.
func (e *EditorPane) Focus() tea.Cmd {
	if e.noteID == 0 {
		return nil
	}
	return e.ta.Focus()
}

// Blur releases keyboard input
func (e *EditorPane) Blur() {
	e.ta.Blur()
}

// Focused reports whether the editor has keyboard input
func (e *EditorPane) Focused() bool {
	return e.ta.Focused()
}

// Update forwards msg to the textarea and reports whether the text changed
func (e *EditorPane) Update(msg tea.Msg) (bool, tea.Cmd) {
	before := e.ta.Value()
	var cmd tea.Cmd
	e.ta, cmd = e.ta.Update(msg)
	return e.ta.Value() != before, cmd
}

// SetSize updates the view dimensions
func (e *EditorPane) SetSize(width, height int) {
	e.ta.SetWidth(max(width, 1))
	e.ta.SetHeight(max(height, 1))
}

// View renders the textarea
func (e *EditorPane) View() string {
	return e.ta.View()
}
