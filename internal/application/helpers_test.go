package application

import (
	"encoding/json"
	"testing"
	"time"

	"simplenotes/internal/adapters/memory"
	"simplenotes/internal/domain"
	"simplenotes/internal/ports"
)

// fakeClock is a manually advanced ports.Clock
type fakeClock struct {
	now time.Time
}

func newFakeClock() *fakeClock {
	return &fakeClock{now: time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)}
}

func (c *fakeClock) Now() time.Time { return c.now }

func (c *fakeClock) Advance(d time.Duration) { c.now = c.now.Add(d) }

// openEmpty opens a workspace over a store whose notesList is already an
// empty array, so no welcome note is seeded
func openEmpty(t *testing.T) (*Workspace, *memory.Store, *fakeClock) {
	t.Helper()
	kv := memory.NewWith(map[string]string{ports.KeyNotes: "[]"})
	clock := newFakeClock()
	w, err := Open(kv, Options{Clock: clock})
	if err != nil {
		t.Fatalf("Open() error = %v", err)
	}
	return w, kv, clock
}

// storedNotes decodes notesList as it currently sits in kv
func storedNotes(t *testing.T, kv *memory.Store) []domain.Note {
	t.Helper()
	var notes []domain.Note
	if err := json.Unmarshal([]byte(kv.String(ports.KeyNotes)), &notes); err != nil {
		t.Fatalf("notesList is not valid JSON: %v", err)
	}
	return notes
}

func ids(notes []domain.Note) []domain.ID {
	out := make([]domain.ID, len(notes))
	for i, n := range notes {
		out[i] = n.ID
	}
	return out
}

func equalIDs(a, b []domain.ID) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func mustCreateNote(t *testing.T, w *Workspace, groupID domain.ID) domain.Note {
	t.Helper()
	n, err := w.Session.CreateNote(groupID)
	if err != nil {
		t.Fatalf("CreateNote() error = %v", err)
	}
	return n
}

func mustCreateGroup(t *testing.T, w *Workspace, name string) domain.Group {
	t.Helper()
	g, ok, err := w.Groups.Create(name)
	if err != nil || !ok {
		t.Fatalf("Create(%q) = ok %v, err %v", name, ok, err)
	}
	return g
}
