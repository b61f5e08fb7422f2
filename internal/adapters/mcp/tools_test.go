package mcp

import (
	"context"
	"strings"
	"testing"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/rs/zerolog"

	"simplenotes/internal/adapters/memory"
	"simplenotes/internal/application"
	"simplenotes/internal/ports"
)

func newTestNotebook(t *testing.T) *Notebook {
	t.Helper()
	kv := memory.NewWith(map[string]string{ports.KeyNotes: "[]"})
	ws, err := application.Open(kv, application.Options{})
	if err != nil {
		t.Fatalf("failed to open workspace: %v", err)
	}
	return NewNotebook(ws, zerolog.Nop())
}

func call(t *testing.T, nb *Notebook, name string, fn func(context.Context, *application.Workspace, mcp.CallToolRequest) (*mcp.CallToolResult, error), args map[string]any) (string, bool) {
	t.Helper()
	req := mcp.CallToolRequest{}
	req.Params.Name = name
	req.Params.Arguments = args

	result, err := nb.handle(name, fn)(context.Background(), req)
	if err != nil {
		t.Fatalf("%s returned a protocol error: %v", name, err)
	}

	var sb strings.Builder
	for _, c := range result.Content {
		if text, ok := c.(mcp.TextContent); ok {
			sb.WriteString(text.Text)
		}
	}
	return sb.String(), result.IsError
}

func TestTools_NoteLifecycle(t *testing.T) {
	nb := newTestNotebook(t)

	out, isErr := call(t, nb, "create_group", createGroupHandler, map[string]any{"name": "Work"})
	if isErr || !strings.Contains(out, "Created group") {
		t.Fatalf("create_group = %q", out)
	}
	groupID := nb.ws.Groups.List()[0].ID.String()

	out, isErr = call(t, nb, "create_note", createNoteHandler, map[string]any{
		"group_id": groupID,
		"content":  "# Standup\n\nBlockers first",
	})
	if isErr || !strings.Contains(out, "Standup") {
		t.Fatalf("create_note = %q", out)
	}
	noteID := nb.ws.Notes.List()[0].ID.String()

	out, _ = call(t, nb, "show_note", showNoteHandler, map[string]any{"id": noteID})
	for _, want := range []string{"title: Standup", "description: Blockers first", "group: " + groupID + " Work", "# Standup"} {
		if !strings.Contains(out, want) {
			t.Errorf("show_note missing %q:\n%s", want, out)
		}
	}

	_, isErr = call(t, nb, "rename_note", renameNoteHandler, map[string]any{"id": noteID, "field": "title", "value": "Daily"})
	if isErr {
		t.Fatal("rename_note failed")
	}
	out, _ = call(t, nb, "show_note", showNoteHandler, map[string]any{"id": noteID})
	if !strings.Contains(out, "title: Daily (custom)") {
		t.Errorf("custom title not shown:\n%s", out)
	}

	out, _ = call(t, nb, "outline", outlineHandler, nil)
	if !strings.Contains(out, "Work\n  "+noteID+" Daily") {
		t.Errorf("outline = %q", out)
	}

	out, _ = call(t, nb, "export_note", exportHandler, map[string]any{"id": noteID, "format": "html"})
	if !strings.Contains(out, "<h1>Standup</h1>") {
		t.Errorf("export_note = %q", out)
	}

	_, isErr = call(t, nb, "delete_group", deleteGroupHandler, map[string]any{"id": groupID})
	if isErr {
		t.Fatal("delete_group failed")
	}
	out, _ = call(t, nb, "list_notes", listNotesHandler, map[string]any{"group_id": "none"})
	if !strings.Contains(out, noteID) {
		t.Errorf("note should be ungrouped after its group is deleted: %q", out)
	}

	_, isErr = call(t, nb, "delete_note", deleteNoteHandler, map[string]any{"id": noteID})
	if isErr {
		t.Fatal("delete_note failed")
	}
	out, _ = call(t, nb, "list_notes", listNotesHandler, nil)
	if out != "No results." {
		t.Errorf("list_notes after delete = %q", out)
	}
}

func TestTools_Errors(t *testing.T) {
	nb := newTestNotebook(t)

	tests := []struct {
		name    string
		tool    string
		fn      func(context.Context, *application.Workspace, mcp.CallToolRequest) (*mcp.CallToolResult, error)
		args    map[string]any
		wantMsg string
	}{
		{"missing note", "show_note", showNoteHandler, map[string]any{"id": "5"}, "note 5 not found"},
		{"bad id", "delete_note", deleteNoteHandler, map[string]any{"id": "x"}, "expected note ID"},
		{"empty query", "search_notes", searchHandler, map[string]any{}, "query is required"},
		{"bad format", "export_note", exportHandler, map[string]any{"id": "1", "format": "pdf"}, "unknown format"},
		{"bad state", "toggle_group", toggleGroupHandler, map[string]any{"id": "1", "state": "open"}, "unknown state"},
		{"blank group", "create_group", createGroupHandler, map[string]any{"name": " "}, "name is required"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, isErr := call(t, nb, tt.tool, tt.fn, tt.args)
			if !isErr {
				t.Fatalf("%s should fail, got %q", tt.tool, out)
			}
			if !strings.Contains(out, tt.wantMsg) {
				t.Errorf("error = %q, want it to contain %q", out, tt.wantMsg)
			}
		})
	}
}
