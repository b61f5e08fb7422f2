package commands

import (
	"context"
	"fmt"
	"strings"

	"simplenotes/internal/application"
	"simplenotes/internal/domain"
)

// RenameResult contains the result of a rename operation
type RenameResult struct {
	ID      domain.ID
	Value   string
	Message string
}

// RenameNoteCommand sets a note's title or description. The field stops
// following the content from then on.
type RenameNoteCommand struct {
	ws     *application.Workspace
	NoteID string
	Field  string // "title" or "description"
	Value  string
}

// NewRenameNoteCommand creates a new RenameNoteCommand
func NewRenameNoteCommand(ws *application.Workspace, noteID, field, value string) *RenameNoteCommand {
	return &RenameNoteCommand{
		ws:     ws,
		NoteID: noteID,
		Field:  field,
		Value:  value,
	}
}

// Validate checks if the rename operation is valid. An empty value is
// allowed and blanks the field.
func (c *RenameNoteCommand) Validate() error {
	if _, err := application.ParseIDField("noteID", c.NoteID); err != nil {
		return err
	}
	if err := application.ValidateRequired("field", c.Field); err != nil {
		return err
	}
	if _, err := domain.ParseField(strings.TrimSpace(c.Field)); err != nil {
		return &application.ValidationError{
			Field:   "field",
			Message: fmt.Sprintf("expected title or description, got: %s", c.Field),
		}
	}
	return nil
}

// Execute runs the rename note command
func (c *RenameNoteCommand) Execute(ctx context.Context) (*RenameResult, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}

	id, _ := application.ParseIDField("noteID", c.NoteID)
	field, _ := domain.ParseField(strings.TrimSpace(c.Field))

	if _, err := lookupNote(c.ws, id); err != nil {
		return nil, err
	}
	if err := c.ws.Notes.Rename(id, field, c.Value); err != nil {
		return nil, fmt.Errorf("failed to rename note: %w", err)
	}

	return &RenameResult{
		ID:      id,
		Value:   c.Value,
		Message: fmt.Sprintf("Set %s of %s to %q", field, id, c.Value),
	}, nil
}

// RenameGroupCommand renames a group
type RenameGroupCommand struct {
	ws      *application.Workspace
	GroupID string
	Name    string
}

// NewRenameGroupCommand creates a new RenameGroupCommand
func NewRenameGroupCommand(ws *application.Workspace, groupID, name string) *RenameGroupCommand {
	return &RenameGroupCommand{
		ws:      ws,
		GroupID: groupID,
		Name:    name,
	}
}

// Validate checks if the rename operation is valid
func (c *RenameGroupCommand) Validate() error {
	if _, err := application.ParseIDField("groupID", c.GroupID); err != nil {
		return err
	}
	return application.ValidateRequired("name", c.Name)
}

// Execute runs the rename group command
func (c *RenameGroupCommand) Execute(ctx context.Context) (*RenameResult, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}

	id, _ := application.ParseIDField("groupID", c.GroupID)
	if _, err := lookupGroup(c.ws, id); err != nil {
		return nil, err
	}
	if err := c.ws.Groups.Rename(id, c.Name); err != nil {
		return nil, fmt.Errorf("failed to rename group: %w", err)
	}

	name := strings.TrimSpace(c.Name)
	return &RenameResult{
		ID:      id,
		Value:   name,
		Message: fmt.Sprintf("Renamed group %s to %s", id, name),
	}, nil
}
