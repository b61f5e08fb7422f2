package commands

import (
	"context"
	"fmt"

	"simplenotes/internal/application"
	"simplenotes/internal/domain"
)

// SaveNoteResult contains the note as stored after the save
type SaveNoteResult struct {
	Note    domain.Note
	Message string
}

// SaveNoteCommand replaces a note's content. Title and description are
// re-derived unless they were set by hand.
type SaveNoteCommand struct {
	ws      *application.Workspace
	NoteID  string
	Content string
}

// NewSaveNoteCommand creates a new SaveNoteCommand
func NewSaveNoteCommand(ws *application.Workspace, noteID, content string) *SaveNoteCommand {
	return &SaveNoteCommand{
		ws:      ws,
		NoteID:  noteID,
		Content: content,
	}
}

// Validate checks the note ID. Empty content is allowed.
func (c *SaveNoteCommand) Validate() error {
	_, err := application.ParseIDField("noteID", c.NoteID)
	return err
}

// Execute runs the save note command
func (c *SaveNoteCommand) Execute(ctx context.Context) (*SaveNoteResult, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}

	id, _ := application.ParseIDField("noteID", c.NoteID)
	if _, err := lookupNote(c.ws, id); err != nil {
		return nil, err
	}
	if err := c.ws.Notes.Save(id, c.Content); err != nil {
		return nil, fmt.Errorf("failed to save note: %w", err)
	}

	note, _ := c.ws.Notes.Get(id)
	return &SaveNoteResult{
		Note:    note,
		Message: fmt.Sprintf("Saved note %s %s", note.ID, note.Title),
	}, nil
}
