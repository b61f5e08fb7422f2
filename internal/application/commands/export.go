package commands

import (
	"context"
	"fmt"
	"path/filepath"
	"regexp"
	"strings"

	"simplenotes/internal/application"
	"simplenotes/internal/domain"
	"simplenotes/internal/ports"
)

// ExportNoteResult contains a rendered note
type ExportNoteResult struct {
	Note     domain.Note
	Data     []byte
	FileName string // suggested file name
}

// ExportNoteCommand renders a note through a NoteRenderer
type ExportNoteCommand struct {
	ws       *application.Workspace
	renderer ports.NoteRenderer
	NoteID   string
}

// NewExportNoteCommand creates a new ExportNoteCommand
func NewExportNoteCommand(ws *application.Workspace, renderer ports.NoteRenderer, noteID string) *ExportNoteCommand {
	return &ExportNoteCommand{
		ws:       ws,
		renderer: renderer,
		NoteID:   noteID,
	}
}

// Validate checks the note ID
func (c *ExportNoteCommand) Validate() error {
	_, err := application.ParseIDField("noteID", c.NoteID)
	return err
}

// Execute runs the export command
func (c *ExportNoteCommand) Execute(ctx context.Context) (*ExportNoteResult, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}

	id, _ := application.ParseIDField("noteID", c.NoteID)
	note, err := lookupNote(c.ws, id)
	if err != nil {
		return nil, err
	}

	groupName := ""
	if g, ok := c.ws.Groups.Get(note.GroupID); ok {
		groupName = g.Name
	}

	data, err := c.renderer.Render(note, groupName)
	if err != nil {
		return nil, fmt.Errorf("failed to render note %s: %w", id, err)
	}

	return &ExportNoteResult{
		Note:     note,
		Data:     data,
		FileName: ExportFileName(note, c.renderer.Extension()),
	}, nil
}

var unsafeFileChars = regexp.MustCompile(`[^A-Za-z0-9._-]+`)

// ExportFileName builds a file name from the note title, falling back to the ID
func ExportFileName(note domain.Note, ext string) string {
	base := strings.Trim(unsafeFileChars.ReplaceAllString(note.Title, "-"), "-.")
	if base == "" {
		base = note.ID.String()
	}
	return filepath.Base(base + ext)
}
