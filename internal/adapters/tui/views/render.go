package views

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"

	"simplenotes/internal/adapters/tui/styles"
)

// Flash is a one-line status message shown until the next key press
type Flash struct {
	Text  string
	IsErr bool
}

// Set replaces the message
func (f *Flash) Set(text string, isErr bool) {
	f.Text = text
	f.IsErr = isErr
}

// SetError shows err, or clears the message when err is nil
func (f *Flash) SetError(err error) {
	if err == nil {
		f.Clear()
		return
	}
	f.Set(err.Error(), true)
}

// Clear removes the message
func (f *Flash) Clear() {
	f.Text = ""
	f.IsErr = false
}

// View renders the message with error or success styling
func (f Flash) View() string {
	return RenderMessage(f.Text, f.IsErr)
}

// RenderKeyHelp formats a key binding as help text (key + description)
func RenderKeyHelp(b key.Binding) string {
	help := b.Help()
	return fmt.Sprintf("%s %s",
		styles.HelpKey.Render(help.Key),
		styles.HelpDesc.Render(help.Desc),
	)
}

// RenderHelpLine renders multiple key bindings as a help line separated by bullets
func RenderHelpLine(bindings ...key.Binding) string {
	var parts []string
	for _, b := range bindings {
		if !b.Enabled() {
			continue
		}
		parts = append(parts, RenderKeyHelp(b))
	}
	return strings.Join(parts, styles.HelpSeparator.String())
}

// RenderMessage renders a message with appropriate styling based on isError
func RenderMessage(message string, isError bool) string {
	if message == "" {
		return ""
	}
	if isError {
		return styles.ErrorMsg.Render(message)
	}
	return styles.Success.Render(message)
}

// truncate shortens s to width runes, marking the cut with an ellipsis
func truncate(s string, width int) string {
	if width <= 0 {
		return ""
	}
	r := []rune(s)
	if len(r) <= width {
		return s
	}
	if width == 1 {
		return "…"
	}
	return string(r[:width-1]) + "…"
}
