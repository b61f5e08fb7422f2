package views

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"simplenotes/internal/adapters/tui/styles"
)

// HelpKeyMap defines key bindings for the help view
type HelpKeyMap struct {
	Close key.Binding
}

var HelpKeys = HelpKeyMap{
	Close: key.NewBinding(
		key.WithKeys("esc", "q", "?"),
		key.WithHelp("esc/q/?", "close"),
	),
}

// HelpModel is the model for the help view
type HelpModel struct {
	width  int
	height int
}

// NewHelpModel creates a new help view model
func NewHelpModel() *HelpModel {
	return &HelpModel{}
}

// Init initializes the help view
func (m *HelpModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the help view
func (m *HelpModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		if key.Matches(msg, HelpKeys.Close) {
			return m, func() tea.Msg {
				return SwitchToMainMsg{}
			}
		}
	}

	return m, nil
}

// View renders the help view
func (m *HelpModel) View() string {
	var b strings.Builder

	b.WriteString(styles.Title.Render("simplenotes help"))
	b.WriteString("\n")

	b.WriteString(styles.InputLabel.Render("Note list"))
	b.WriteString("\n")
	b.WriteString(helpLine("j / k / ↑ / ↓", "Move up/down"))
	b.WriteString(helpLine("h / l", "Collapse / expand group"))
	b.WriteString(helpLine("Enter", "Open note / toggle group"))
	b.WriteString(helpLine("n", "New note (in the selected group)"))
	b.WriteString(helpLine("g", "New group"))
	b.WriteString(helpLine("r / D", "Rename title or group / edit description"))
	b.WriteString(helpLine("x", "Delete note or group"))
	b.WriteString(helpLine("m", "Move mode: pick up, then m/Enter to drop"))
	b.WriteString(helpLine("/", "Search"))
	b.WriteString("\n")

	b.WriteString(styles.InputLabel.Render("Editing"))
	b.WriteString("\n")
	b.WriteString(helpLine("Tab / i", "Focus the editor"))
	b.WriteString(helpLine("Esc", "Back to the note list"))
	b.WriteString(helpLine("Ctrl+S", "Save"))
	b.WriteString(helpLine("e", "Edit in $EDITOR"))
	b.WriteString(helpLine("p", "Toggle markdown preview"))
	b.WriteString(helpLine("y / Alt+C", "Copy note content"))
	b.WriteString(helpLine("a", "Toggle auto-save"))
	b.WriteString("\n")

	b.WriteString(styles.InputLabel.Render("General"))
	b.WriteString("\n")
	b.WriteString(helpLine("?", "Toggle help"))
	b.WriteString(helpLine("q / Ctrl+C", "Quit"))
	b.WriteString("\n")

	b.WriteString(styles.MutedText.Render("  Switching notes with unsaved edits asks before discarding them."))
	b.WriteString("\n\n")

	b.WriteString(styles.HelpDesc.Render("Press "))
	b.WriteString(styles.HelpKey.Render("esc"))
	b.WriteString(styles.HelpDesc.Render(" or "))
	b.WriteString(styles.HelpKey.Render("?"))
	b.WriteString(styles.HelpDesc.Render(" to close"))

	return styles.App.Render(b.String())
}

func helpLine(keys, desc string) string {
	return "  " + styles.HelpKey.Render(padRight(keys, 20)) + styles.HelpDesc.Render(desc) + "\n"
}

// SetSize updates the view dimensions
func (m *HelpModel) SetSize(width, height int) {
	m.width = width
	m.height = height
}

// SwitchToMainMsg returns from an overlay view to the note list
type SwitchToMainMsg struct{}
