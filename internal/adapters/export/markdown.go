package export

import (
	"bytes"
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"

	"simplenotes/internal/domain"
	"simplenotes/internal/ports"
)

// Frontmatter is the YAML header written above an exported note
type Frontmatter struct {
	ID          domain.ID `yaml:"id,omitempty"`
	Title       string    `yaml:"title"`
	Description string    `yaml:"description,omitempty"`
	Group       string    `yaml:"group,omitempty"`
	Created     string    `yaml:"created,omitempty"`
	Updated     string    `yaml:"updated,omitempty"`
}

// Markdown renders a note as markdown with YAML frontmatter
type Markdown struct{}

var _ ports.NoteRenderer = Markdown{}

func (Markdown) Extension() string { return ".md" }

func (Markdown) Render(note domain.Note, groupName string) ([]byte, error) {
	fm := Frontmatter{
		ID:          note.ID,
		Title:       note.Title,
		Description: note.Description,
		Group:       groupName,
		Created:     domain.FormatTime(note.CreatedAt),
		Updated:     domain.FormatTime(note.UpdatedAt),
	}

	var buf bytes.Buffer
	buf.WriteString("---\n")

	encoder := yaml.NewEncoder(&buf)
	encoder.SetIndent(2)
	if err := encoder.Encode(fm); err != nil {
		return nil, fmt.Errorf("failed to encode frontmatter: %w", err)
	}
	if err := encoder.Close(); err != nil {
		return nil, fmt.Errorf("failed to encode frontmatter: %w", err)
	}

	buf.WriteString("---\n\n")
	buf.WriteString(note.Content)
	if !strings.HasSuffix(note.Content, "\n") {
		buf.WriteByte('\n')
	}
	return buf.Bytes(), nil
}

// ParseMarkdown splits a document into frontmatter and body. A document
// without a leading "---" line has empty frontmatter.
func ParseMarkdown(data []byte) (Frontmatter, string, error) {
	var fm Frontmatter

	text := strings.ReplaceAll(string(data), "\r\n", "\n")
	if !strings.HasPrefix(text, "---\n") {
		return fm, text, nil
	}

	rest := text[len("---\n"):]
	end := strings.Index(rest, "\n---")
	if end < 0 {
		return fm, "", fmt.Errorf("invalid frontmatter format: missing closing ---")
	}

	if err := yaml.Unmarshal([]byte(rest[:end]), &fm); err != nil {
		return fm, "", fmt.Errorf("failed to parse frontmatter: %w", err)
	}

	body := rest[end+len("\n---"):]
	body = strings.TrimPrefix(body, "\n")
	body = strings.TrimPrefix(body, "\n")
	return fm, strings.TrimRight(body, "\n"), nil
}
