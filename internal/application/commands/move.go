package commands

import (
	"context"
	"fmt"
	"strings"

	"simplenotes/internal/application"
	"simplenotes/internal/domain"
)

// UngroupedTarget names the ungrouped area as a move destination
const UngroupedTarget = "none"

// MoveResult contains the result of a move
type MoveResult struct {
	MovedID domain.ID
	Message string
}

// MoveNoteCommand moves a note next to another note, or to the end of a
// group. Exactly one of TargetNoteID and GroupID is set; GroupID "none"
// moves the note out of its group.
type MoveNoteCommand struct {
	ws           *application.Workspace
	NoteID       string
	TargetNoteID string
	Position     string // "before" or "after"; defaults to before
	GroupID      string
}

// NewMoveNoteCommand creates a new MoveNoteCommand
func NewMoveNoteCommand(ws *application.Workspace, noteID, targetNoteID, position, groupID string) *MoveNoteCommand {
	return &MoveNoteCommand{
		ws:           ws,
		NoteID:       noteID,
		TargetNoteID: targetNoteID,
		Position:     position,
		GroupID:      groupID,
	}
}

// Validate checks if the move operation is valid
func (c *MoveNoteCommand) Validate() error {
	if _, err := application.ParseIDField("noteID", c.NoteID); err != nil {
		return err
	}

	hasTarget := strings.TrimSpace(c.TargetNoteID) != ""
	hasGroup := strings.TrimSpace(c.GroupID) != ""
	switch {
	case hasTarget && hasGroup:
		return &application.ValidationError{
			Field:   "targetID",
			Message: "give either a target note or a group, not both",
		}
	case !hasTarget && !hasGroup:
		return &application.ValidationError{
			Field:   "targetID",
			Message: "target note or group is required",
		}
	}

	if hasTarget {
		if _, err := application.ParseIDField("targetID", c.TargetNoteID); err != nil {
			return err
		}
		if _, err := parsePosition(c.Position); err != nil {
			return err
		}
		if strings.TrimSpace(c.TargetNoteID) == strings.TrimSpace(c.NoteID) {
			return &application.MoveError{
				SourceID: c.NoteID,
				DestID:   c.TargetNoteID,
				Reason:   "note cannot be moved next to itself",
			}
		}
		return nil
	}

	if strings.TrimSpace(c.GroupID) == UngroupedTarget {
		return nil
	}
	_, err := application.ParseIDField("groupID", c.GroupID)
	return err
}

// Execute runs the move note command through the drag controller, so the
// same rules apply as for a drag in the TUI
func (c *MoveNoteCommand) Execute(ctx context.Context) (*MoveResult, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}

	id, _ := application.ParseIDField("noteID", c.NoteID)
	if _, err := lookupNote(c.ws, id); err != nil {
		return nil, err
	}

	var (
		target application.DropTarget
		dest   string
	)
	switch {
	case strings.TrimSpace(c.TargetNoteID) != "":
		targetID, _ := application.ParseIDField("targetID", c.TargetNoteID)
		other, err := lookupNote(c.ws, targetID)
		if err != nil {
			return nil, err
		}
		pos, _ := parsePosition(c.Position)
		target = application.DropTarget{Kind: application.DropOnNote, ID: targetID, Position: pos}
		dest = fmt.Sprintf("%s %s", pos, other.Title)
	case strings.TrimSpace(c.GroupID) == UngroupedTarget:
		target = application.DropTarget{Kind: application.DropOnUngrouped}
		dest = "ungrouped notes"
	default:
		groupID, _ := application.ParseIDField("groupID", c.GroupID)
		group, err := lookupGroup(c.ws, groupID)
		if err != nil {
			return nil, err
		}
		target = application.DropTarget{Kind: application.DropOnGroup, ID: groupID}
		dest = "group " + group.Name
	}

	c.ws.Drag.Begin(application.DragItem{Kind: application.ItemNote, ID: id})
	if _, err := c.ws.Drag.Drop(target); err != nil {
		return nil, fmt.Errorf("failed to move note: %w", err)
	}

	return &MoveResult{
		MovedID: id,
		Message: fmt.Sprintf("Moved note %s to %s", id, dest),
	}, nil
}

// MoveGroupCommand moves a group before or after another group
type MoveGroupCommand struct {
	ws            *application.Workspace
	GroupID       string
	TargetGroupID string
	Position      string
}

// NewMoveGroupCommand creates a new MoveGroupCommand
func NewMoveGroupCommand(ws *application.Workspace, groupID, targetGroupID, position string) *MoveGroupCommand {
	return &MoveGroupCommand{
		ws:            ws,
		GroupID:       groupID,
		TargetGroupID: targetGroupID,
		Position:      position,
	}
}

// Validate checks if the move operation is valid
func (c *MoveGroupCommand) Validate() error {
	if _, err := application.ParseIDField("groupID", c.GroupID); err != nil {
		return err
	}
	if _, err := application.ParseIDField("targetID", c.TargetGroupID); err != nil {
		return err
	}
	if _, err := parsePosition(c.Position); err != nil {
		return err
	}
	if strings.TrimSpace(c.GroupID) == strings.TrimSpace(c.TargetGroupID) {
		return &application.MoveError{
			SourceID: c.GroupID,
			DestID:   c.TargetGroupID,
			Reason:   "group cannot be moved next to itself",
		}
	}
	return nil
}

// Execute runs the move group command
func (c *MoveGroupCommand) Execute(ctx context.Context) (*MoveResult, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}

	id, _ := application.ParseIDField("groupID", c.GroupID)
	targetID, _ := application.ParseIDField("targetID", c.TargetGroupID)
	pos, _ := parsePosition(c.Position)

	if _, err := lookupGroup(c.ws, id); err != nil {
		return nil, err
	}
	target, err := lookupGroup(c.ws, targetID)
	if err != nil {
		return nil, err
	}

	c.ws.Drag.Begin(application.DragItem{Kind: application.ItemGroup, ID: id})
	if _, err := c.ws.Drag.Drop(application.DropTarget{Kind: application.DropOnGroup, ID: targetID, Position: pos}); err != nil {
		return nil, fmt.Errorf("failed to move group: %w", err)
	}

	return &MoveResult{
		MovedID: id,
		Message: fmt.Sprintf("Moved group %s %s %s", id, pos, target.Name),
	}, nil
}

// ToggleGroupResult reports a group's new expansion state
type ToggleGroupResult struct {
	GroupID  domain.ID
	Expanded bool
	Message  string
}

// ToggleGroupCommand flips a group between expanded and collapsed, or sets
// it explicitly when Expanded is non-nil
type ToggleGroupCommand struct {
	ws       *application.Workspace
	GroupID  string
	Expanded *bool
}

// NewToggleGroupCommand creates a new ToggleGroupCommand
func NewToggleGroupCommand(ws *application.Workspace, groupID string, expanded *bool) *ToggleGroupCommand {
	return &ToggleGroupCommand{
		ws:       ws,
		GroupID:  groupID,
		Expanded: expanded,
	}
}

// Validate checks the group ID
func (c *ToggleGroupCommand) Validate() error {
	_, err := application.ParseIDField("groupID", c.GroupID)
	return err
}

// Execute runs the toggle group command
func (c *ToggleGroupCommand) Execute(ctx context.Context) (*ToggleGroupResult, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}

	id, _ := application.ParseIDField("groupID", c.GroupID)
	group, err := lookupGroup(c.ws, id)
	if err != nil {
		return nil, err
	}

	var expanded bool
	if c.Expanded != nil {
		expanded = *c.Expanded
		err = c.ws.Groups.SetExpanded(id, expanded)
	} else {
		expanded, err = c.ws.Groups.ToggleExpanded(id)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to toggle group: %w", err)
	}

	state := "collapsed"
	if expanded {
		state = "expanded"
	}
	return &ToggleGroupResult{
		GroupID:  id,
		Expanded: expanded,
		Message:  fmt.Sprintf("Group %s %s", group.Name, state),
	}, nil
}

// parsePosition defaults an empty position to before
func parsePosition(s string) (domain.Position, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return domain.PositionBefore, nil
	}
	pos, err := domain.ParsePosition(s)
	if err != nil {
		return 0, &application.ValidationError{
			Field:   "position",
			Message: fmt.Sprintf("expected before or after, got: %s", s),
		}
	}
	return pos, nil
}
