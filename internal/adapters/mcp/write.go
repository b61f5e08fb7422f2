package mcp

import (
	"context"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"simplenotes/internal/application"
	"simplenotes/internal/application/commands"
)

// RegisterWriteTools adds all notebook-modifying tools to the MCP server.
func RegisterWriteTools(s *server.MCPServer, nb *Notebook) {
	s.AddTool(createNoteTool(), nb.handle("create_note", createNoteHandler))
	s.AddTool(saveNoteTool(), nb.handle("save_note", saveNoteHandler))
	s.AddTool(renameNoteTool(), nb.handle("rename_note", renameNoteHandler))
	s.AddTool(deleteNoteTool(), nb.handle("delete_note", deleteNoteHandler))
	s.AddTool(moveNoteTool(), nb.handle("move_note", moveNoteHandler))
	s.AddTool(createGroupTool(), nb.handle("create_group", createGroupHandler))
	s.AddTool(renameGroupTool(), nb.handle("rename_group", renameGroupHandler))
	s.AddTool(deleteGroupTool(), nb.handle("delete_group", deleteGroupHandler))
	s.AddTool(moveGroupTool(), nb.handle("move_group", moveGroupHandler))
	s.AddTool(toggleGroupTool(), nb.handle("toggle_group", toggleGroupHandler))
}

// --- create_note ---

func createNoteTool() mcp.Tool {
	return mcp.NewTool("create_note",
		mcp.WithDescription("Create a note. Title and description are derived from the content's first lines."),
		mcp.WithString("group_id",
			mcp.Description("Group to create the note in. Omit for an ungrouped note."),
		),
		mcp.WithString("content",
			mcp.Description("Markdown content. Omit for the default new-note text."),
		),
	)
}

func createNoteHandler(ctx context.Context, ws *application.Workspace, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	cmd := commands.NewCreateNoteCommand(ws, req.GetString("group_id", ""), req.GetString("content", ""))
	result, err := cmd.Execute(ctx)
	if err != nil {
		return toolError(err)
	}
	return mcp.NewToolResultText(result.Message), nil
}

// --- save_note ---

func saveNoteTool() mcp.Tool {
	return mcp.NewTool("save_note",
		mcp.WithDescription("Replace a note's markdown content. Derived title and description follow the new content unless set by hand."),
		mcp.WithString("id",
			mcp.Description("Note ID"),
			mcp.Required(),
		),
		mcp.WithString("content",
			mcp.Description("New markdown content"),
			mcp.Required(),
		),
	)
}

func saveNoteHandler(ctx context.Context, ws *application.Workspace, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	cmd := commands.NewSaveNoteCommand(ws, req.GetString("id", ""), req.GetString("content", ""))
	result, err := cmd.Execute(ctx)
	if err != nil {
		return toolError(err)
	}
	return mcp.NewToolResultText(result.Message), nil
}

// --- rename_note ---

func renameNoteTool() mcp.Tool {
	return mcp.NewTool("rename_note",
		mcp.WithDescription("Set a note's title or description by hand. The field then stops following the content."),
		mcp.WithString("id",
			mcp.Description("Note ID"),
			mcp.Required(),
		),
		mcp.WithString("field",
			mcp.Description("Field to set"),
			mcp.Enum("title", "description"),
			mcp.Required(),
		),
		mcp.WithString("value",
			mcp.Description("New value; may be empty"),
		),
	)
}

func renameNoteHandler(ctx context.Context, ws *application.Workspace, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	cmd := commands.NewRenameNoteCommand(ws, req.GetString("id", ""), req.GetString("field", ""), req.GetString("value", ""))
	result, err := cmd.Execute(ctx)
	if err != nil {
		return toolError(err)
	}
	return mcp.NewToolResultText(result.Message), nil
}

// --- delete_note ---

func deleteNoteTool() mcp.Tool {
	return mcp.NewTool("delete_note",
		mcp.WithDescription("Permanently delete a note."),
		mcp.WithString("id",
			mcp.Description("Note ID"),
			mcp.Required(),
		),
	)
}

func deleteNoteHandler(ctx context.Context, ws *application.Workspace, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	result, err := commands.NewDeleteNoteCommand(ws, req.GetString("id", "")).Execute(ctx)
	if err != nil {
		return toolError(err)
	}
	return mcp.NewToolResultText(result.Message), nil
}

// --- move_note ---

func moveNoteTool() mcp.Tool {
	return mcp.NewTool("move_note",
		mcp.WithDescription("Move a note next to another note (adopting that note's group) or to the end of a group."),
		mcp.WithString("id",
			mcp.Description("Note ID to move"),
			mcp.Required(),
		),
		mcp.WithString("target_id",
			mcp.Description("Note to place the moved note next to"),
		),
		mcp.WithString("position",
			mcp.Description("Side of the target note (default before)"),
			mcp.Enum("before", "after"),
		),
		mcp.WithString("group_id",
			mcp.Description("Group to move the note into, or \"none\" to ungroup. Use instead of target_id."),
		),
	)
}

func moveNoteHandler(ctx context.Context, ws *application.Workspace, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	cmd := commands.NewMoveNoteCommand(ws,
		req.GetString("id", ""),
		req.GetString("target_id", ""),
		req.GetString("position", ""),
		req.GetString("group_id", ""),
	)
	result, err := cmd.Execute(ctx)
	if err != nil {
		return toolError(err)
	}
	return mcp.NewToolResultText(result.Message), nil
}

// --- create_group ---

func createGroupTool() mcp.Tool {
	return mcp.NewTool("create_group",
		mcp.WithDescription("Create a group at the end of the group list."),
		mcp.WithString("name",
			mcp.Description("Group name"),
			mcp.Required(),
		),
	)
}

func createGroupHandler(ctx context.Context, ws *application.Workspace, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	result, err := commands.NewCreateGroupCommand(ws, req.GetString("name", "")).Execute(ctx)
	if err != nil {
		return toolError(err)
	}
	return mcp.NewToolResultText(result.Message), nil
}

// --- rename_group ---

func renameGroupTool() mcp.Tool {
	return mcp.NewTool("rename_group",
		mcp.WithDescription("Rename a group."),
		mcp.WithString("id",
			mcp.Description("Group ID"),
			mcp.Required(),
		),
		mcp.WithString("name",
			mcp.Description("New name"),
			mcp.Required(),
		),
	)
}

func renameGroupHandler(ctx context.Context, ws *application.Workspace, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	result, err := commands.NewRenameGroupCommand(ws, req.GetString("id", ""), req.GetString("name", "")).Execute(ctx)
	if err != nil {
		return toolError(err)
	}
	return mcp.NewToolResultText(result.Message), nil
}

// --- delete_group ---

func deleteGroupTool() mcp.Tool {
	return mcp.NewTool("delete_group",
		mcp.WithDescription("Delete a group. Its notes are kept and become ungrouped."),
		mcp.WithString("id",
			mcp.Description("Group ID"),
			mcp.Required(),
		),
	)
}

func deleteGroupHandler(ctx context.Context, ws *application.Workspace, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	result, err := commands.NewDeleteGroupCommand(ws, req.GetString("id", "")).Execute(ctx)
	if err != nil {
		return toolError(err)
	}
	return mcp.NewToolResultText(result.Message), nil
}

// --- move_group ---

func moveGroupTool() mcp.Tool {
	return mcp.NewTool("move_group",
		mcp.WithDescription("Move a group before or after another group. Notes stay in their groups."),
		mcp.WithString("id",
			mcp.Description("Group ID to move"),
			mcp.Required(),
		),
		mcp.WithString("target_id",
			mcp.Description("Group to place it next to"),
			mcp.Required(),
		),
		mcp.WithString("position",
			mcp.Description("Side of the target group (default before)"),
			mcp.Enum("before", "after"),
		),
	)
}

func moveGroupHandler(ctx context.Context, ws *application.Workspace, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	cmd := commands.NewMoveGroupCommand(ws, req.GetString("id", ""), req.GetString("target_id", ""), req.GetString("position", ""))
	result, err := cmd.Execute(ctx)
	if err != nil {
		return toolError(err)
	}
	return mcp.NewToolResultText(result.Message), nil
}

// --- toggle_group ---

func toggleGroupTool() mcp.Tool {
	return mcp.NewTool("toggle_group",
		mcp.WithDescription("Expand or collapse a group in the sidebar."),
		mcp.WithString("id",
			mcp.Description("Group ID"),
			mcp.Required(),
		),
		mcp.WithString("state",
			mcp.Description("Target state. Omit to flip the current state."),
			mcp.Enum("expanded", "collapsed"),
		),
	)
}

func toggleGroupHandler(ctx context.Context, ws *application.Workspace, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	var expanded *bool
	switch state := req.GetString("state", ""); state {
	case "":
	case "expanded", "collapsed":
		v := state == "expanded"
		expanded = &v
	default:
		return toolError(fmt.Errorf("unknown state %q (expected expanded or collapsed)", state))
	}

	result, err := commands.NewToggleGroupCommand(ws, req.GetString("id", ""), expanded).Execute(ctx)
	if err != nil {
		return toolError(err)
	}
	return mcp.NewToolResultText(result.Message), nil
}
