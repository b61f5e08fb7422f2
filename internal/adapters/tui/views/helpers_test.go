package views

import (
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"simplenotes/internal/adapters/memory"
	"simplenotes/internal/application"
	"simplenotes/internal/domain"
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

// workFixture builds a group "Work" holding note a, plus ungrouped note b.
// b is the active note.
func workFixture(t *testing.T) (ws *application.Workspace, g domain.Group, a, b domain.Note) {
	t.Helper()
	ws = newTestWorkspace(t)
	g, _, err := ws.Groups.Create("Work")
	if err != nil {
		t.Fatalf("create group: %v", err)
	}
	if a, err = ws.Session.CreateNote(g.ID); err != nil {
		t.Fatalf("create note: %v", err)
	}
	if b, err = ws.Session.CreateNote(domain.NoGroup); err != nil {
		t.Fatalf("create note: %v", err)
	}
	return ws, g, a, b
}

func keyPress(s string) tea.KeyMsg {
	switch s {
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	case "esc":
		return tea.KeyMsg{Type: tea.KeyEsc}
	}
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func rowKinds(rows []Row) []RowKind {
	out := make([]RowKind, len(rows))
	for i, r := range rows {
		out[i] = r.Kind
	}
	return out
}

func contains(s, substr string) bool {
	return strings.Contains(s, substr)
}
