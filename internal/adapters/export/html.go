// Package export renders notes as standalone HTML or Markdown documents
package export

import (
	"bytes"
	"fmt"
	"html/template"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"

	"simplenotes/internal/domain"
	"simplenotes/internal/ports"
)

// GFM covers the tables, strikethrough and task lists the editor previews
var mdRenderer = goldmark.New(goldmark.WithExtensions(extension.GFM))

var pageTemplate = template.Must(template.New("page").Parse(`<!DOCTYPE html>
<html>
<head>
<meta charset="utf-8">
<title>{{.Title}}</title>
{{- if .Description}}
<meta name="description" content="{{.Description}}">
{{- end}}
</head>
<body>
<article data-group="{{.Group}}" data-updated="{{.Updated}}">
{{.Body}}
</article>
</body>
</html>
`))

// HTML renders a note body to an HTML page
type HTML struct{}

var _ ports.NoteRenderer = HTML{}

func (HTML) Extension() string { return ".html" }

func (HTML) Render(note domain.Note, groupName string) ([]byte, error) {
	body, err := RenderMarkdown(note.Content)
	if err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	err = pageTemplate.Execute(&buf, struct {
		Title       string
		Description string
		Group       string
		Updated     string
		Body        template.HTML
	}{
		Title:       note.Title,
		Description: note.Description,
		Group:       groupName,
		Updated:     domain.FormatTime(note.UpdatedAt),
		Body:        template.HTML(body),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to render page: %w", err)
	}
	return buf.Bytes(), nil
}

// RenderMarkdown converts markdown to an HTML fragment
func RenderMarkdown(content string) (string, error) {
	var b bytes.Buffer
	if err := mdRenderer.Convert([]byte(content), &b); err != nil {
		return "", fmt.Errorf("failed to convert markdown: %w", err)
	}
	return b.String(), nil
}
