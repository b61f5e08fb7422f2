package commands

import (
	"context"
	"testing"

	"simplenotes/internal/domain"
)

type fakeRenderer struct {
	gotGroup string
}

func (r *fakeRenderer) Render(note domain.Note, groupName string) ([]byte, error) {
	r.gotGroup = groupName
	return []byte("<" + note.Title + ">"), nil
}

func (r *fakeRenderer) Extension() string { return ".txt" }

func TestExportNoteCommand(t *testing.T) {
	ws := newTestWorkspace(t)
	g := createGroup(t, ws, "Work")
	n := createNote(t, ws, g.ID.String(), "# Q3 plan: draft\n\nbody")

	r := &fakeRenderer{}
	res, err := NewExportNoteCommand(ws, r, n.ID.String()).Execute(context.Background())
	if err != nil {
		t.Fatalf("Execute() error = %v", err)
	}
	if string(res.Data) != "<Q3 plan: draft>" {
		t.Errorf("Data = %q", res.Data)
	}
	if r.gotGroup != "Work" {
		t.Errorf("group name = %q, want Work", r.gotGroup)
	}
	if res.FileName != "Q3-plan-draft.txt" {
		t.Errorf("FileName = %q", res.FileName)
	}

	_, err = NewExportNoteCommand(ws, r, "").Execute(context.Background())
	checkErr(t, err, true, "note ID is required")
}

func TestExportFileName(t *testing.T) {
	tests := []struct {
		title string
		want  string
	}{
		{"Hello World", "Hello-World.md"},
		{"../../etc/passwd", "etc-passwd.md"},
		{"日本語", "42.md"},
		{"", "42.md"},
	}

	for _, tt := range tests {
		t.Run(tt.title, func(t *testing.T) {
			got := ExportFileName(domain.Note{ID: 42, Title: tt.title}, ".md")
			if got != tt.want {
				t.Errorf("ExportFileName(%q) = %q, want %q", tt.title, got, tt.want)
			}
		})
	}
}
