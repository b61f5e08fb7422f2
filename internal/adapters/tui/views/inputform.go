package views

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"simplenotes/internal/adapters/tui/styles"
)

// InputFormKeyMap defines key bindings for the inline input
type InputFormKeyMap struct {
	Submit key.Binding
	Cancel key.Binding
}

// DefaultInputFormKeys returns the default input form key bindings
var DefaultInputFormKeys = InputFormKeyMap{
	Submit: key.NewBinding(
		key.WithKeys("enter"),
		key.WithHelp("enter", "save"),
	),
	Cancel: key.NewBinding(
		key.WithKeys("esc"),
		key.WithHelp("esc", "cancel"),
	),
}

// InputPurpose says what an inline input is collecting
type InputPurpose int

const (
	InputNone InputPurpose = iota
	InputRename
	InputNewGroup
)

// InputForm is a single-line input shown under the sidebar for renames
// and new group names
type InputForm struct {
	Purpose InputPurpose
	Label   string
	Input   textinput.Model
	Keys    InputFormKeyMap
}

// NewInputForm creates a hidden input form
func NewInputForm() *InputForm {
	input := textinput.New()
	input.CharLimit = 200
	input.Prompt = "› "
	return &InputForm{
		Input: input,
		Keys:  DefaultInputFormKeys,
	}
}

// Begin shows the input with an initial value and focuses it
func (f *InputForm) Begin(purpose InputPurpose, label, value, placeholder string) tea.Cmd {
	f.Purpose = purpose
	f.Label = label
	f.Input.Placeholder = placeholder
	f.Input.SetValue(value)
	f.Input.CursorEnd()
	return f.Input.Focus()
}

// Active reports whether the input is showing
func (f *InputForm) Active() bool {
	return f.Purpose != InputNone
}

// Close hides the input
func (f *InputForm) Close() {
	f.Purpose = InputNone
	f.Label = ""
	f.Input.SetValue("")
	f.Input.Blur()
}

// Value returns the trimmed input
func (f *InputForm) Value() string {
	return strings.TrimSpace(f.Input.Value())
}

// Update handles messages for the input. It reports submit or cancel;
// other keys edit the text.
func (f *InputForm) Update(msg tea.Msg) (submitted, cancelled bool, cmd tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch {
		case key.Matches(keyMsg, f.Keys.Submit):
			return true, false, nil
		case key.Matches(keyMsg, f.Keys.Cancel):
			return false, true, nil
		}
	}
	f.Input, cmd = f.Input.Update(msg)
	return false, false, cmd
}

// View renders the label and input
func (f *InputForm) View(width int) string {
	f.Input.Width = max(width-4, 4)
	var b strings.Builder
	b.WriteString(styles.InputLabel.Render(f.Label))
	b.WriteString("\n")
	b.WriteString(styles.InputFocused.Render(f.Input.View()))
	return b.String()
}
