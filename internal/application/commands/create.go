package commands

import (
	"context"
	"fmt"
	"strings"

	"simplenotes/internal/application"
	"simplenotes/internal/domain"
)

// CreateNoteResult contains the result of creating a note
type CreateNoteResult struct {
	Note    domain.Note
	Message string
}

// CreateNoteCommand creates a note, optionally inside a group, and makes it
// the last opened note
type CreateNoteCommand struct {
	ws      *application.Workspace
	GroupID string // empty for an ungrouped note
	Content string // empty keeps the default body
}

// NewCreateNoteCommand creates a new CreateNoteCommand
func NewCreateNoteCommand(ws *application.Workspace, groupID, content string) *CreateNoteCommand {
	return &CreateNoteCommand{
		ws:      ws,
		GroupID: groupID,
		Content: content,
	}
}

// Validate checks if the create operation is valid
func (c *CreateNoteCommand) Validate() error {
	if strings.TrimSpace(c.GroupID) == "" {
		return nil
	}
	_, err := application.ParseIDField("groupID", c.GroupID)
	return err
}

// Execute runs the create note command
func (c *CreateNoteCommand) Execute(ctx context.Context) (*CreateNoteResult, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}

	groupID := domain.NoGroup
	if strings.TrimSpace(c.GroupID) != "" {
		groupID, _ = application.ParseIDField("groupID", c.GroupID)
	}

	note, err := c.ws.Session.CreateNote(groupID)
	if err != nil {
		return nil, fmt.Errorf("failed to create note: %w", err)
	}

	if c.Content != "" {
		c.ws.Session.Edit(c.Content)
		if err := c.ws.Session.Save(); err != nil {
			return nil, fmt.Errorf("failed to write note content: %w", err)
		}
		note, _ = c.ws.Notes.Get(note.ID)
	}

	return &CreateNoteResult{
		Note:    note,
		Message: fmt.Sprintf("Created note: %s %s", note.ID, note.Title),
	}, nil
}

// CreateGroupResult contains the result of creating a group
type CreateGroupResult struct {
	Group   domain.Group
	Message string
}

// CreateGroupCommand appends a group
type CreateGroupCommand struct {
	ws   *application.Workspace
	Name string
}

// NewCreateGroupCommand creates a new CreateGroupCommand
func NewCreateGroupCommand(ws *application.Workspace, name string) *CreateGroupCommand {
	return &CreateGroupCommand{
		ws:   ws,
		Name: name,
	}
}

// Validate checks if the create operation is valid
func (c *CreateGroupCommand) Validate() error {
	return application.ValidateRequired("name", c.Name)
}

// Execute runs the create group command
func (c *CreateGroupCommand) Execute(ctx context.Context) (*CreateGroupResult, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}

	group, _, err := c.ws.Groups.Create(c.Name)
	if err != nil {
		return nil, fmt.Errorf("failed to create group: %w", err)
	}

	return &CreateGroupResult{
		Group:   group,
		Message: fmt.Sprintf("Created group: %s %s", group.ID, group.Name),
	}, nil
}
