package views

import (
	"strings"

	"github.com/charmbracelet/glamour"
)

// Preview renders markdown for the read-only pane. The renderer is
// rebuilt only when the width changes.
type Preview struct {
	renderer *glamour.TermRenderer
	width    int

	// last rendered input and its output
	source string
	output string
}

// Render returns text rendered for a pane of the given width. On a
// renderer failure the raw text is returned.
func (p *Preview) Render(text string, width int) string {
	width = max(width, 20)
	if p.renderer == nil || width != p.width {
		r, err := glamour.NewTermRenderer(
			glamour.WithStandardStyle("dark"),
			glamour.WithWordWrap(width-2),
		)
		if err != nil {
			return text
		}
		p.renderer = r
		p.width = width
		p.source = ""
		p.output = ""
	}

	if p.output != "" && text == p.source {
		return p.output
	}
	out, err := p.renderer.Render(text)
	if err != nil {
		return text
	}
	p.source = text
	p.output = strings.TrimRight(out, "\n")
	return p.output
}
