package mcp

import (
	"context"
	"fmt"
	"strings"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"simplenotes/internal/adapters/export"
	"simplenotes/internal/application"
	"simplenotes/internal/application/commands"
	"simplenotes/internal/ports"
)

// RegisterReadTools adds all read-only notebook tools to the MCP server.
func RegisterReadTools(s *server.MCPServer, nb *Notebook) {
	s.AddTool(listNotesTool(), nb.handle("list_notes", listNotesHandler))
	s.AddTool(showNoteTool(), nb.handle("show_note", showNoteHandler))
	s.AddTool(searchTool(), nb.handle("search_notes", searchHandler))
	s.AddTool(listGroupsTool(), nb.handle("list_groups", listGroupsHandler))
	s.AddTool(outlineTool(), nb.handle("outline", outlineHandler))
	s.AddTool(exportTool(), nb.handle("export_note", exportHandler))
}

// --- list_notes ---

func listNotesTool() mcp.Tool {
	return mcp.NewTool("list_notes",
		mcp.WithDescription("List notes in sidebar order. Returns id, title and description per line."),
		mcp.WithString("group_id",
			mcp.Description("Only list members of this group. Use \"none\" for ungrouped notes. Omit to list every note."),
		),
	)
}

func listNotesHandler(ctx context.Context, ws *application.Workspace, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	notes, err := commands.NewListNotesCommand(ws, req.GetString("group_id", "")).Execute(ctx)
	if err != nil {
		return toolError(err)
	}
	return formatEntities(notes, formatNote)
}

// --- show_note ---

func showNoteTool() mcp.Tool {
	return mcp.NewTool("show_note",
		mcp.WithDescription("Read a note's metadata and full markdown content."),
		mcp.WithString("id",
			mcp.Description("Note ID"),
			mcp.Required(),
		),
	)
}

func showNoteHandler(ctx context.Context, ws *application.Workspace, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	result, err := commands.NewShowNoteCommand(ws, req.GetString("id", "")).Execute(ctx)
	if err != nil {
		return toolError(err)
	}
	return mcp.NewToolResultText(formatNoteDetail(result.Note, result.Group)), nil
}

// --- search_notes ---

func searchTool() mcp.Tool {
	return mcp.NewTool("search_notes",
		mcp.WithDescription("Search notes by keyword. Titles and descriptions match fuzzily, content by substring."),
		mcp.WithString("query",
			mcp.Description("Search query (at least 2 characters)"),
			mcp.Required(),
		),
	)
}

func searchHandler(ctx context.Context, ws *application.Workspace, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	query := req.GetString("query", "")
	if query == "" {
		return toolError(fmt.Errorf("query is required"))
	}

	results, err := commands.NewSearchNotesCommand(ws, query).Execute(ctx)
	if err != nil {
		return toolError(err)
	}
	if len(results) == 0 {
		return mcp.NewToolResultText("No results found."), nil
	}

	var sb strings.Builder
	for _, r := range results {
		fmt.Fprintf(&sb, "%s  %s  (score %d)\n", r.Note.ID, r.Note.Title, r.Score)
	}
	return mcp.NewToolResultText(sb.String()), nil
}

// --- list_groups ---

func listGroupsTool() mcp.Tool {
	return mcp.NewTool("list_groups",
		mcp.WithDescription("List groups in order with their note counts."),
	)
}

func listGroupsHandler(ctx context.Context, ws *application.Workspace, _ mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	groups, err := commands.NewListGroupsCommand(ws).Execute(ctx)
	if err != nil {
		return toolError(err)
	}
	return formatEntities(groups, func(g commands.GroupSummary) string {
		state := "expanded"
		if !g.Expanded {
			state = "collapsed"
		}
		return fmt.Sprintf("%s  %s  %d notes  %s", g.Group.ID, g.Group.Name, g.NoteCount, state)
	})
}

// --- outline ---

func outlineTool() mcp.Tool {
	return mcp.NewTool("outline",
		mcp.WithDescription("Display the notebook as the sidebar shows it: groups with their notes, then ungrouped notes."),
	)
}

func outlineHandler(ctx context.Context, ws *application.Workspace, _ mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	sections, err := commands.NewBuildOutlineCommand(ws).Execute(ctx)
	if err != nil {
		return toolError(err)
	}

	var sb strings.Builder
	for _, sec := range sections {
		prefix := ""
		if sec.Group != nil {
			fmt.Fprintf(&sb, "%s %s\n", sec.Group.ID, sec.Group.Name)
			prefix = "  "
		} else if len(sec.Notes) > 0 {
			sb.WriteString("(ungrouped)\n")
			prefix = "  "
		}
		for _, n := range sec.Notes {
			fmt.Fprintf(&sb, "%s%s %s\n", prefix, n.ID, n.Title)
		}
	}
	return mcp.NewToolResultText(sb.String()), nil
}

// --- export_note ---

func exportTool() mcp.Tool {
	return mcp.NewTool("export_note",
		mcp.WithDescription("Render a note as a standalone document."),
		mcp.WithString("id",
			mcp.Description("Note ID"),
			mcp.Required(),
		),
		mcp.WithString("format",
			mcp.Description("Output format"),
			mcp.Enum("markdown", "html"),
		),
	)
}

func exportHandler(ctx context.Context, ws *application.Workspace, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	var renderer ports.NoteRenderer
	switch format := req.GetString("format", "markdown"); format {
	case "markdown", "md":
		renderer = export.Markdown{}
	case "html":
		renderer = export.HTML{}
	default:
		return toolError(fmt.Errorf("unknown format %q (expected markdown or html)", format))
	}

	result, err := commands.NewExportNoteCommand(ws, renderer, req.GetString("id", "")).Execute(ctx)
	if err != nil {
		return toolError(err)
	}
	return mcp.NewToolResultText(string(result.Data)), nil
}
