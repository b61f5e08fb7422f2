package views

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"simplenotes/internal/adapters/tui/styles"
)

// ConfirmKeyMap defines key bindings for confirmation prompts
type ConfirmKeyMap struct {
	Confirm key.Binding
	Cancel  key.Binding
}

// DefaultConfirmKeys returns the default confirmation key bindings
var DefaultConfirmKeys = ConfirmKeyMap{
	Confirm: key.NewBinding(
		key.WithKeys("y"),
		key.WithHelp("y", "confirm"),
	),
	Cancel: key.NewBinding(
		key.WithKeys("n", "esc"),
		key.WithHelp("n/esc", "cancel"),
	),
}

// ConfirmAction says what a confirmation prompt guards
type ConfirmAction int

const (
	ConfirmNone ConfirmAction = iota
	ConfirmLeave
	ConfirmDeleteNote
	ConfirmDeleteGroup
	ConfirmQuit
)

// ConfirmationModel is a yes/no prompt shown over the main view
type ConfirmationModel struct {
	Action   ConfirmAction
	Question string
	Detail   string
	Keys     ConfirmKeyMap
}

// NewConfirmationModel creates a new confirmation model with default keys
func NewConfirmationModel() ConfirmationModel {
	return ConfirmationModel{
		Keys: DefaultConfirmKeys,
	}
}

// Ask shows the prompt
func (m *ConfirmationModel) Ask(action ConfirmAction, question, detail string) {
	m.Action = action
	m.Question = question
	m.Detail = detail
}

// Active reports whether a prompt is showing
func (m *ConfirmationModel) Active() bool {
	return m.Action != ConfirmNone
}

// Close hides the prompt
func (m *ConfirmationModel) Close() {
	m.Action = ConfirmNone
	m.Question = ""
	m.Detail = ""
}

// HandleKeyMsg processes key messages for the prompt. It returns the
// action that was answered and whether it was confirmed; handled is false
// for keys that are neither yes nor no.
func (m *ConfirmationModel) HandleKeyMsg(msg tea.KeyMsg) (action ConfirmAction, confirmed, handled bool) {
	action = m.Action
	switch {
	case key.Matches(msg, m.Keys.Cancel):
		m.Close()
		return action, false, true
	case key.Matches(msg, m.Keys.Confirm):
		m.Close()
		return action, true, true
	}
	return action, false, false
}

// View renders the prompt box
func (m *ConfirmationModel) View() string {
	var b strings.Builder
	b.WriteString(styles.Title.Render(m.Question))
	b.WriteString("\n")
	if m.Detail != "" {
		b.WriteString(m.Detail)
		b.WriteString("\n\n")
	}
	b.WriteString(RenderConfirmPrompt(m.Keys))
	return styles.Modal.Render(b.String())
}

// RenderConfirmPrompt renders the standard confirmation prompt
func RenderConfirmPrompt(keys ConfirmKeyMap) string {
	var b strings.Builder
	b.WriteString(styles.HelpKey.Render(keys.Confirm.Help().Key))
	b.WriteString(styles.HelpDesc.Render(" to confirm, "))
	b.WriteString(styles.HelpKey.Render(keys.Cancel.Help().Key))
	b.WriteString(styles.HelpDesc.Render(" to cancel"))
	return b.String()
}
