package commands

import (
	"context"
	"strings"

	"simplenotes/internal/application"
	"simplenotes/internal/domain"
)

// ListNotesCommand lists notes in list order. With GroupID set it lists
// only that group's members; "none" lists the ungrouped notes.
type ListNotesCommand struct {
	ws      *application.Workspace
	GroupID string
}

// NewListNotesCommand creates a new ListNotesCommand
func NewListNotesCommand(ws *application.Workspace, groupID string) *ListNotesCommand {
	return &ListNotesCommand{
		ws:      ws,
		GroupID: groupID,
	}
}

// Execute runs the list notes command
func (c *ListNotesCommand) Execute(ctx context.Context) ([]domain.Note, error) {
	switch g := strings.TrimSpace(c.GroupID); g {
	case "":
		return c.ws.Notes.List(), nil
	case "none":
		return c.ws.UngroupedNotes(), nil
	default:
		id, err := application.ParseIDField("groupID", g)
		if err != nil {
			return nil, err
		}
		if _, err := lookupGroup(c.ws, id); err != nil {
			return nil, err
		}
		return c.ws.Notes.NotesForGroup(id), nil
	}
}

// GroupSummary is a group with its sidebar state
type GroupSummary struct {
	Group     domain.Group
	Expanded  bool
	NoteCount int
}

// ListGroupsCommand lists all groups in order
type ListGroupsCommand struct {
	ws *application.Workspace
}

// NewListGroupsCommand creates a new ListGroupsCommand
func NewListGroupsCommand(ws *application.Workspace) *ListGroupsCommand {
	return &ListGroupsCommand{ws: ws}
}

// Execute runs the list groups command
func (c *ListGroupsCommand) Execute(ctx context.Context) ([]GroupSummary, error) {
	groups := c.ws.Groups.List()
	out := make([]GroupSummary, 0, len(groups))
	for _, g := range groups {
		out = append(out, GroupSummary{
			Group:     g,
			Expanded:  c.ws.Groups.IsExpanded(g.ID),
			NoteCount: len(c.ws.Notes.NotesForGroup(g.ID)),
		})
	}
	return out, nil
}

// BuildOutlineCommand returns the sidebar layout: groups with their
// members, then the ungrouped notes
type BuildOutlineCommand struct {
	ws *application.Workspace
}

// NewBuildOutlineCommand creates a new BuildOutlineCommand
func NewBuildOutlineCommand(ws *application.Workspace) *BuildOutlineCommand {
	return &BuildOutlineCommand{ws: ws}
}

// Execute runs the build outline command
func (c *BuildOutlineCommand) Execute(ctx context.Context) ([]application.Section, error) {
	return c.ws.Sections(), nil
}
