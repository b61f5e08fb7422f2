package commands

import (
	"context"
	"errors"
	"testing"

	"simplenotes/internal/application"
)

func TestRenameNoteCommand_Validate(t *testing.T) {
	tests := []struct {
		name    string
		noteID  string
		field   string
		wantErr bool
		errMsg  string
	}{
		{name: "title", noteID: "5", field: "title"},
		{name: "description", noteID: "5", field: "description"},
		{name: "missing note ID", noteID: "", field: "title", wantErr: true, errMsg: "note ID is required"},
		{name: "missing field", noteID: "5", field: "", wantErr: true, errMsg: "field is required"},
		{name: "unknown field", noteID: "5", field: "content", wantErr: true, errMsg: "expected title or description"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cmd := &RenameNoteCommand{NoteID: tt.noteID, Field: tt.field}
			checkErr(t, cmd.Validate(), tt.wantErr, tt.errMsg)
		})
	}
}

func TestRenameNoteCommand_Execute(t *testing.T) {
	ws := newTestWorkspace(t)
	n := createNote(t, ws, "", "# Draft\n\nBody")

	_, err := NewRenameNoteCommand(ws, n.ID.String(), "title", "Final").Execute(context.Background())
	if err != nil {
		t.Fatalf("Execute() error = %v", err)
	}

	// Saving new content keeps the custom title
	if _, err := NewSaveNoteCommand(ws, n.ID.String(), "# Rewritten\n\nOther").Execute(context.Background()); err != nil {
		t.Fatalf("save: %v", err)
	}
	got, _ := ws.Notes.Get(n.ID)
	if got.Title != "Final" || got.Description != "Other" {
		t.Errorf("title/description = %q / %q", got.Title, got.Description)
	}

	_, err = NewRenameNoteCommand(ws, "42", "title", "x").Execute(context.Background())
	if !errors.Is(err, application.ErrNotFound) {
		t.Errorf("missing note error = %v, want ErrNotFound", err)
	}
}

func TestRenameGroupCommand(t *testing.T) {
	ws := newTestWorkspace(t)
	g := createGroup(t, ws, "Work")

	tests := []struct {
		name    string
		groupID string
		newName string
		wantErr bool
		errMsg  string
	}{
		{name: "valid rename", groupID: g.ID.String(), newName: "Projects"},
		{name: "empty name", groupID: g.ID.String(), newName: " ", wantErr: true, errMsg: "name is required"},
		{name: "bad ID", groupID: "x", newName: "Projects", wantErr: true, errMsg: "expected group ID"},
		{name: "missing group", groupID: "99", newName: "Projects", wantErr: true, errMsg: "group 99 not found"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewRenameGroupCommand(ws, tt.groupID, tt.newName).Execute(context.Background())
			checkErr(t, err, tt.wantErr, tt.errMsg)
		})
	}

	if got, _ := ws.Groups.Get(g.ID); got.Name != "Projects" {
		t.Errorf("Name = %q, want Projects", got.Name)
	}
}
