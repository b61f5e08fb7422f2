package commands

import (
	"context"
	"testing"

	"simplenotes/internal/domain"
)

func TestImportNoteCommand_Execute(t *testing.T) {
	tests := []struct {
		name            string
		group           string
		title           string
		description     string
		body            string
		wantTitle       string
		wantCustomTitle bool
		wantDesc        string
		wantCustomDesc  bool
	}{
		{
			name:      "derived fields stay automatic",
			title:     "Standup",
			body:      "# Standup\n\nNotes for Monday",
			wantTitle: "Standup",
			wantDesc:  "Notes for Monday",
		},
		{
			name:            "differing title becomes custom",
			title:           "Monday sync",
			body:            "# Standup\n\nNotes for Monday",
			wantTitle:       "Monday sync",
			wantCustomTitle: true,
			wantDesc:        "Notes for Monday",
		},
		{
			name:           "differing description becomes custom",
			description:    "Weekly",
			body:           "# Standup\n\nNotes for Monday",
			wantTitle:      "Standup",
			wantDesc:       "Weekly",
			wantCustomDesc: true,
		},
		{
			name:      "empty body is stored empty",
			body:      "",
			wantTitle: domain.DeriveTitle(""),
			wantDesc:  domain.DeriveDescription(""),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ws := newTestWorkspace(t)
			res, err := NewImportNoteCommand(ws, tt.group, tt.title, tt.description, tt.body).Execute(context.Background())
			if err != nil {
				t.Fatalf("Execute() error = %v", err)
			}

			n := res.Note
			if n.Content != tt.body {
				t.Errorf("Content = %q, want %q", n.Content, tt.body)
			}
			if n.Title != tt.wantTitle || n.TitleSource.IsCustom() != tt.wantCustomTitle {
				t.Errorf("Title = %q (%s), want %q custom=%v", n.Title, n.TitleSource, tt.wantTitle, tt.wantCustomTitle)
			}
			if n.Description != tt.wantDesc || n.DescriptionSource.IsCustom() != tt.wantCustomDesc {
				t.Errorf("Description = %q (%s), want %q custom=%v", n.Description, n.DescriptionSource, tt.wantDesc, tt.wantCustomDesc)
			}
			if ws.Session.IsDirty() {
				t.Error("imported note should be the clean active note")
			}
		})
	}
}

func TestImportNoteCommand_Group(t *testing.T) {
	ws := newTestWorkspace(t)
	work := createGroup(t, ws, "Work")

	res, err := NewImportNoteCommand(ws, "work", "", "", "# A").Execute(context.Background())
	if err != nil {
		t.Fatalf("Execute() error = %v", err)
	}
	if res.Note.GroupID != work.ID || res.GroupCreated {
		t.Errorf("GroupID = %s created=%v, want existing %s", res.Note.GroupID, res.GroupCreated, work.ID)
	}

	res, err = NewImportNoteCommand(ws, "Home", "", "", "# B").Execute(context.Background())
	if err != nil {
		t.Fatalf("Execute() error = %v", err)
	}
	home, ok := ws.Groups.FindByName("Home")
	if !ok || !res.GroupCreated || res.Note.GroupID != home.ID {
		t.Errorf("missing group should be created, got GroupID %s created=%v", res.Note.GroupID, res.GroupCreated)
	}
	if got := len(ws.Groups.List()); got != 2 {
		t.Errorf("got %d groups, want 2", got)
	}
}
