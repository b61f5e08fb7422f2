package views

import (
	"testing"

	"simplenotes/internal/domain"
)

func TestSearchModel_TypingRunsSearch(t *testing.T) {
	ws := newTestWorkspace(t)
	n, err := ws.Session.CreateNote(domain.NoGroup)
	if err != nil {
		t.Fatal(err)
	}
	ws.Session.Edit("# Shopping list\n\nmilk")
	if err := ws.Session.Save(); err != nil {
		t.Fatal(err)
	}

	m := NewSearchModel(ws)
	m.Update(keyPress("s"))
	if len(m.Results()) != 0 {
		t.Error("a one-letter query should not search")
	}

	m.Update(keyPress("h"))
	results := m.Results()
	if len(results) != 1 || results[0].Note.ID != n.ID {
		t.Fatalf("results = %v, want the shopping note", results)
	}

	_, cmd := m.Update(keyPress("enter"))
	if cmd == nil {
		t.Fatal("enter should select the result")
	}
	msg, ok := cmd().(SearchSelectMsg)
	if !ok || msg.NoteID != n.ID {
		t.Errorf("got %#v, want SearchSelectMsg for %v", msg, n.ID)
	}
}

func TestSearchModel_EscReturnsToMain(t *testing.T) {
	m := NewSearchModel(newTestWorkspace(t))

	_, cmd := m.Update(keyPress("esc"))
	if cmd == nil {
		t.Fatal("esc should return a command")
	}
	if _, ok := cmd().(SwitchToMainMsg); !ok {
		t.Error("esc should switch back to the main view")
	}
}
