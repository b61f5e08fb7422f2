package commands

import (
	"context"
	"strings"
	"testing"
	"time"

	"simplenotes/internal/adapters/memory"
	"simplenotes/internal/application"
	"simplenotes/internal/ports"
)

type stepClock struct{ now time.Time }

func (c *stepClock) Now() time.Time {
	c.now = c.now.Add(time.Millisecond)
	return c.now
}

func newTestWorkspace(t *testing.T) *application.Workspace {
	t.Helper()
	kv := memory.NewWith(map[string]string{ports.KeyNotes: "[]"})
	ws, err := application.Open(kv, application.Options{
		Clock: &stepClock{now: time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)},
	})
	if err != nil {
		t.Fatalf("failed to open workspace: %v", err)
	}
	return ws
}

func createNote(t *testing.T, ws *application.Workspace, groupID, content string) application.Note {
	t.Helper()
	res, err := NewCreateNoteCommand(ws, groupID, content).Execute(context.Background())
	if err != nil {
		t.Fatalf("create note: %v", err)
	}
	return res.Note
}

func createGroup(t *testing.T, ws *application.Workspace, name string) application.Group {
	t.Helper()
	res, err := NewCreateGroupCommand(ws, name).Execute(context.Background())
	if err != nil {
		t.Fatalf("create group: %v", err)
	}
	return res.Group
}

func contains(s, substr string) bool {
	return strings.Contains(s, substr)
}

func checkErr(t *testing.T, err error, wantErr bool, errMsg string) {
	t.Helper()
	if wantErr {
		if err == nil {
			t.Errorf("expected error containing %q, got nil", errMsg)
			return
		}
		if !contains(err.Error(), errMsg) {
			t.Errorf("expected error containing %q, got %q", errMsg, err.Error())
		}
		return
	}
	if err != nil {
		t.Errorf("unexpected error: %v", err)
	}
}
