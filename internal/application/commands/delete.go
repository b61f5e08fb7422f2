package commands

import (
	"context"
	"fmt"

	"simplenotes/internal/application"
	"simplenotes/internal/domain"
)

// DeleteResult contains the result of a delete operation
type DeleteResult struct {
	DeletedID domain.ID
	Message   string
}

// DeleteNoteCommand deletes a note
type DeleteNoteCommand struct {
	ws     *application.Workspace
	NoteID string
}

// NewDeleteNoteCommand creates a new DeleteNoteCommand
func NewDeleteNoteCommand(ws *application.Workspace, noteID string) *DeleteNoteCommand {
	return &DeleteNoteCommand{
		ws:     ws,
		NoteID: noteID,
	}
}

// Validate checks if the delete operation is valid
func (c *DeleteNoteCommand) Validate() error {
	_, err := application.ParseIDField("noteID", c.NoteID)
	return err
}

// Execute runs the delete note command
func (c *DeleteNoteCommand) Execute(ctx context.Context) (*DeleteResult, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}

	id, _ := application.ParseIDField("noteID", c.NoteID)
	note, err := lookupNote(c.ws, id)
	if err != nil {
		return nil, err
	}
	if err := c.ws.Session.DeleteNote(id); err != nil {
		return nil, fmt.Errorf("failed to delete note %s: %w", id, err)
	}

	return &DeleteResult{
		DeletedID: id,
		Message:   fmt.Sprintf("Deleted note %s %s", id, note.Title),
	}, nil
}

// DeleteGroupCommand deletes a group. Its notes become ungrouped.
type DeleteGroupCommand struct {
	ws      *application.Workspace
	GroupID string
}

// NewDeleteGroupCommand creates a new DeleteGroupCommand
func NewDeleteGroupCommand(ws *application.Workspace, groupID string) *DeleteGroupCommand {
	return &DeleteGroupCommand{
		ws:      ws,
		GroupID: groupID,
	}
}

// Validate checks if the delete operation is valid
func (c *DeleteGroupCommand) Validate() error {
	_, err := application.ParseIDField("groupID", c.GroupID)
	return err
}

// Execute runs the delete group command
func (c *DeleteGroupCommand) Execute(ctx context.Context) (*DeleteResult, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}

	id, _ := application.ParseIDField("groupID", c.GroupID)
	group, err := lookupGroup(c.ws, id)
	if err != nil {
		return nil, err
	}
	released := len(c.ws.Notes.NotesForGroup(id))
	if err := c.ws.Session.DeleteGroup(id); err != nil {
		return nil, fmt.Errorf("failed to delete group %s: %w", id, err)
	}

	return &DeleteResult{
		DeletedID: id,
		Message:   fmt.Sprintf("Deleted group %s %s (%d notes ungrouped)", id, group.Name, released),
	}, nil
}
