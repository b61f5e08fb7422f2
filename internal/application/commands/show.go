package commands

import (
	"context"

	"simplenotes/internal/application"
	"simplenotes/internal/domain"
)

// ShowNoteResult is a note together with its group, if any
type ShowNoteResult struct {
	Note  domain.Note
	Group *domain.Group
}

// ShowNoteCommand fetches a single note
type ShowNoteCommand struct {
	ws     *application.Workspace
	NoteID string
}

// NewShowNoteCommand creates a new ShowNoteCommand
func NewShowNoteCommand(ws *application.Workspace, noteID string) *ShowNoteCommand {
	return &ShowNoteCommand{ws: ws, NoteID: noteID}
}

// Validate checks the note ID
func (c *ShowNoteCommand) Validate() error {
	_, err := application.ParseIDField("noteID", c.NoteID)
	return err
}

// Execute runs the show note command
func (c *ShowNoteCommand) Execute(ctx context.Context) (*ShowNoteResult, error) {
	id, err := application.ParseIDField("noteID", c.NoteID)
	if err != nil {
		return nil, err
	}
	note, err := lookupNote(c.ws, id)
	if err != nil {
		return nil, err
	}

	result := &ShowNoteResult{Note: note}
	if g, ok := c.ws.Groups.Get(note.GroupID); ok {
		result.Group = &g
	}
	return result, nil
}

func lookupNote(ws *application.Workspace, id domain.ID) (domain.Note, error) {
	note, ok := ws.Notes.Get(id)
	if !ok {
		return domain.Note{}, &application.NotFoundError{Kind: "note", ID: id.String()}
	}
	return note, nil
}

func lookupGroup(ws *application.Workspace, id domain.ID) (domain.Group, error) {
	group, ok := ws.Groups.Get(id)
	if !ok {
		return domain.Group{}, &application.NotFoundError{Kind: "group", ID: id.String()}
	}
	return group, nil
}
