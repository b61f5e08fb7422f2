package views

import (
	"errors"
	"slices"
	"testing"

	"simplenotes/internal/application"
	"simplenotes/internal/domain"
)

func TestSidebar_Rows(t *testing.T) {
	ws, g, a, b := workFixture(t)
	m := NewSidebarModel(ws)

	rows := m.Rows()
	want := []RowKind{RowGroup, RowNote, RowUngrouped, RowNote}
	if got := rowKinds(rows); !slices.Equal(got, want) {
		t.Fatalf("row kinds = %v, want %v", got, want)
	}
	if rows[0].Group.ID != g.ID || rows[0].Count != 1 || !rows[0].Expanded {
		t.Errorf("group row = %+v", rows[0])
	}
	if rows[1].Note.ID != a.ID || !rows[1].Nested {
		t.Errorf("nested row = %+v", rows[1])
	}
	if rows[3].Note.ID != b.ID || rows[3].Nested {
		t.Errorf("ungrouped row = %+v", rows[3])
	}

	// The active note starts selected
	if m.Cursor() != 3 {
		t.Errorf("cursor = %d, want 3", m.Cursor())
	}
}

func TestSidebar_CollapseAndExpand(t *testing.T) {
	ws, g, _, _ := workFixture(t)
	m := NewSidebarModel(ws)
	m.SelectGroup(g.ID)

	if _, _, err := m.Update(keyPress("h")); err != nil {
		t.Fatalf("collapse: %v", err)
	}
	if ws.Groups.IsExpanded(g.ID) {
		t.Error("group should be collapsed")
	}
	if len(m.Rows()) != 3 {
		t.Errorf("expected nested note hidden, got %d rows", len(m.Rows()))
	}
	if row, _ := m.Selected(); row.Kind != RowGroup {
		t.Error("cursor should stay on the group header")
	}

	if _, _, err := m.Update(keyPress("l")); err != nil {
		t.Fatalf("expand: %v", err)
	}
	if !ws.Groups.IsExpanded(g.ID) || len(m.Rows()) != 4 {
		t.Error("group should be expanded again")
	}
}

func TestSidebar_CollapseFromNoteJumpsToHeader(t *testing.T) {
	ws, g, a, _ := workFixture(t)
	m := NewSidebarModel(ws)
	m.SelectNote(a.ID)

	m.Update(keyPress("h"))

	row, _ := m.Selected()
	if row.Kind != RowGroup || row.Group.ID != g.ID {
		t.Errorf("selected = %+v, want the Work header", row)
	}
	if !ws.Groups.IsExpanded(g.ID) {
		t.Error("jumping to the header should not collapse the group")
	}
}

func TestSidebar_SelectNoteExpandsCollapsedGroup(t *testing.T) {
	ws, g, a, _ := workFixture(t)
	if err := ws.Groups.SetExpanded(g.ID, false); err != nil {
		t.Fatal(err)
	}
	m := NewSidebarModel(ws)

	m.SelectNote(a.ID)

	row, _ := m.Selected()
	if row.Kind != RowNote || row.Note.ID != a.ID {
		t.Errorf("selected = %+v, want note a", row)
	}
	if !ws.Groups.IsExpanded(g.ID) {
		t.Error("group should have been expanded")
	}
}

func TestSidebar_SelectedGroupID(t *testing.T) {
	ws, g, a, b := workFixture(t)
	m := NewSidebarModel(ws)

	m.SelectNote(a.ID)
	if got := m.SelectedGroupID(); got != g.ID {
		t.Errorf("nested note: got %v, want %v", got, g.ID)
	}
	m.SelectGroup(g.ID)
	if got := m.SelectedGroupID(); got != g.ID {
		t.Errorf("group header: got %v, want %v", got, g.ID)
	}
	m.SelectNote(b.ID)
	if got := m.SelectedGroupID(); got != domain.NoGroup {
		t.Errorf("ungrouped note: got %v, want none", got)
	}
}

func TestSidebar_MoveNoteIntoGroup(t *testing.T) {
	ws, g, _, b := workFixture(t)
	m := NewSidebarModel(ws)

	if !m.BeginMove() {
		t.Fatal("BeginMove() = false")
	}
	for range 3 {
		m.Update(keyPress("k"))
	}

	marker, ok := ws.Drag.Marker()
	if !ok || marker.Kind != application.DropOnGroup || marker.ID != g.ID {
		t.Fatalf("marker = %+v, %v; want the Work header", marker, ok)
	}

	if _, _, err := m.Update(keyPress("enter")); err != nil {
		t.Fatalf("drop: %v", err)
	}
	if m.Moving() {
		t.Error("move mode should end after a drop")
	}
	n, _ := ws.Notes.Get(b.ID)
	if n.GroupID != g.ID {
		t.Errorf("note group = %v, want %v", n.GroupID, g.ID)
	}
	if row, _ := m.Selected(); row.Kind != RowNote || row.Note.ID != b.ID {
		t.Error("cursor should follow the moved note")
	}
}

func TestSidebar_MoveNoteNextToNoteInOtherGroup(t *testing.T) {
	ws, g, a, b := workFixture(t)
	m := NewSidebarModel(ws)

	m.BeginMove()
	m.Update(keyPress("k"))
	m.Update(keyPress("k"))

	if _, err := m.Drop(); err != nil {
		t.Fatalf("Drop() error = %v", err)
	}

	members := ws.Notes.NotesForGroup(g.ID)
	if len(members) != 2 || members[0].ID != b.ID || members[1].ID != a.ID {
		t.Errorf("members = %v, want b before a", members)
	}
}

func TestSidebar_MoveNoteToUngrouped(t *testing.T) {
	ws, g, a, _ := workFixture(t)
	m := NewSidebarModel(ws)
	m.SelectNote(a.ID)

	m.BeginMove()
	m.Update(keyPress("j"))
	m.Update(keyPress("m"))

	n, _ := ws.Notes.Get(a.ID)
	if n.HasGroup() {
		t.Errorf("note should be ungrouped, still in %v", n.GroupID)
	}
	if got := len(ws.Notes.NotesForGroup(g.ID)); got != 0 {
		t.Errorf("Work still has %d notes", got)
	}
}

func TestSidebar_ReorderGroups(t *testing.T) {
	ws := newTestWorkspace(t)
	first, _, _ := ws.Groups.Create("First")
	second, _, _ := ws.Groups.Create("Second")
	m := NewSidebarModel(ws)
	m.SelectGroup(second.ID)

	m.BeginMove()
	m.Update(keyPress("k"))
	moved, err := m.Drop()
	if err != nil || !moved {
		t.Fatalf("Drop() = %v, %v", moved, err)
	}

	groups := ws.Groups.List()
	if groups[0].ID != second.ID || groups[1].ID != first.ID {
		t.Errorf("group order = %v", groups)
	}
}

func TestSidebar_GroupCannotDropOnUngrouped(t *testing.T) {
	ws := newTestWorkspace(t)
	g, _, _ := ws.Groups.Create("Solo")
	m := NewSidebarModel(ws)
	m.SelectGroup(g.ID)

	m.BeginMove()
	m.Update(keyPress("j"))
	_, _, err := m.Update(keyPress("enter"))
	if !errors.Is(err, ErrCannotDrop) {
		t.Errorf("expected ErrCannotDrop, got %v", err)
	}
	if m.Moving() {
		t.Error("an invalid drop still ends move mode")
	}
}

func TestSidebar_CancelMove(t *testing.T) {
	ws, _, _, b := workFixture(t)
	m := NewSidebarModel(ws)
	before := ws.Notes.List()

	m.BeginMove()
	m.Update(keyPress("k"))
	m.Update(keyPress("esc"))

	if m.Moving() {
		t.Error("esc should end move mode")
	}
	after := ws.Notes.List()
	for i := range before {
		if before[i].ID != after[i].ID || before[i].GroupID != after[i].GroupID {
			t.Fatalf("notes changed after cancel")
		}
	}
	if n, _ := ws.Notes.Get(b.ID); n.HasGroup() {
		t.Error("cancelled move should not regroup the note")
	}
}

func TestSidebar_UngroupedHeaderCannotMove(t *testing.T) {
	ws, _, _, _ := workFixture(t)
	m := NewSidebarModel(ws)
	m.pager.SetCursor(2)

	if m.BeginMove() {
		t.Error("the ungrouped header should not be movable")
	}
}

func TestSidebar_ViewMarksDirtyActiveNote(t *testing.T) {
	ws, _, _, _ := workFixture(t)
	m := NewSidebarModel(ws)
	m.SetSize(30, 10)

	ws.Session.Edit("# Changed")
	if view := m.View(false); !contains(view, "●") {
		t.Errorf("expected dirty marker in view:\n%s", view)
	}
}
