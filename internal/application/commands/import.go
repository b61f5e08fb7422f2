package commands

import (
	"context"
	"fmt"
	"strings"

	"simplenotes/internal/application"
	"simplenotes/internal/domain"
)

// ImportNoteResult contains the imported note and the group it landed in
type ImportNoteResult struct {
	Note         domain.Note
	GroupCreated bool
	Message      string
}

// ImportNoteCommand creates a note from an exported document. The body is
// stored as given, empty included. Title and description become custom
// only when they differ from what the body derives.
type ImportNoteCommand struct {
	ws          *application.Workspace
	GroupName   string // matched case-insensitively, created when missing
	Title       string
	Description string
	Body        string
}

// NewImportNoteCommand creates a new ImportNoteCommand
func NewImportNoteCommand(ws *application.Workspace, groupName, title, description, body string) *ImportNoteCommand {
	return &ImportNoteCommand{
		ws:          ws,
		GroupName:   groupName,
		Title:       title,
		Description: description,
		Body:        body,
	}
}

// Validate accepts any document; every field is optional
func (c *ImportNoteCommand) Validate() error {
	return nil
}

// Execute runs the import note command
func (c *ImportNoteCommand) Execute(ctx context.Context) (*ImportNoteResult, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}

	groupID := domain.NoGroup
	created := false
	if name := strings.TrimSpace(c.GroupName); name != "" {
		g, ok := c.ws.Groups.FindByName(name)
		if !ok {
			var err error
			g, created, err = c.ws.Groups.Create(name)
			if err != nil {
				return nil, fmt.Errorf("failed to create group: %w", err)
			}
		}
		groupID = g.ID
	}

	note, err := c.ws.Session.CreateNote(groupID)
	if err != nil {
		return nil, fmt.Errorf("failed to create note: %w", err)
	}
	c.ws.Session.Edit(c.Body)
	if err := c.ws.Session.Save(); err != nil {
		return nil, fmt.Errorf("failed to write note content: %w", err)
	}

	if c.Title != "" && c.Title != domain.DeriveTitle(c.Body) {
		if err := c.ws.Notes.Rename(note.ID, domain.FieldTitle, c.Title); err != nil {
			return nil, fmt.Errorf("failed to set title: %w", err)
		}
	}
	if c.Description != "" && c.Description != domain.DeriveDescription(c.Body) {
		if err := c.ws.Notes.Rename(note.ID, domain.FieldDescription, c.Description); err != nil {
			return nil, fmt.Errorf("failed to set description: %w", err)
		}
	}

	note, _ = c.ws.Notes.Get(note.ID)
	return &ImportNoteResult{
		Note:         note,
		GroupCreated: created,
		Message:      fmt.Sprintf("Imported note: %s %s", note.ID, note.Title),
	}, nil
}
