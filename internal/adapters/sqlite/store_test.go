package sqlite

import (
	"database/sql"
	"errors"
	"path/filepath"
	"testing"

	"simplenotes/internal/ports"
)

func openTestStore(t *testing.T) (*Store, string) {
	t.Helper()

	path := filepath.Join(t.TempDir(), FileName)
	s, err := Open(path)
	if err != nil {
		t.Fatalf("failed to open store: %v", err)
	}
	return s, path
}

func TestStore_GetSetDelete(t *testing.T) {
	s, _ := openTestStore(t)
	defer s.Close()

	if _, ok, err := s.Get(ports.KeyNotes); err != nil || ok {
		t.Fatalf("Get() on empty store = ok %v, err %v", ok, err)
	}

	if err := s.Set(ports.KeyNotes, []byte(`[{"id":1}]`)); err != nil {
		t.Fatalf("Set() error = %v", err)
	}
	if err := s.Set(ports.KeyNotes, []byte(`[{"id":2}]`)); err != nil {
		t.Fatalf("Set() overwrite error = %v", err)
	}

	v, ok, err := s.Get(ports.KeyNotes)
	if err != nil || !ok {
		t.Fatalf("Get() = ok %v, err %v", ok, err)
	}
	if string(v) != `[{"id":2}]` {
		t.Errorf("Get() = %s, want overwritten value", v)
	}

	if err := s.Delete(ports.KeyNotes); err != nil {
		t.Fatalf("Delete() error = %v", err)
	}
	if _, ok, _ := s.Get(ports.KeyNotes); ok {
		t.Error("key still present after Delete()")
	}
	if err := s.Delete("missing"); err != nil {
		t.Errorf("Delete() of missing key error = %v", err)
	}
}

func TestStore_Import(t *testing.T) {
	s, _ := openTestStore(t)
	defer s.Close()

	err := s.Import(map[string][]byte{
		ports.KeyNotes:          []byte(`[]`),
		ports.KeyGroups:         []byte(`[]`),
		ports.KeyExpandedGroups: []byte(`{}`),
	})
	if err != nil {
		t.Fatalf("Import() error = %v", err)
	}

	keys, err := s.Keys()
	if err != nil {
		t.Fatalf("Keys() error = %v", err)
	}
	want := []string{ports.KeyExpandedGroups, ports.KeyGroups, ports.KeyNotes}
	if len(keys) != len(want) {
		t.Fatalf("Keys() = %v, want %v", keys, want)
	}
	for i := range want {
		if keys[i] != want[i] {
			t.Errorf("Keys()[%d] = %s, want %s", i, keys[i], want[i])
		}
	}
}

func TestStore_ImportNilDeletes(t *testing.T) {
	s, _ := openTestStore(t)
	defer s.Close()

	if err := s.Set(ports.KeyLastOpenedNote, []byte(`"7"`)); err != nil {
		t.Fatalf("Set() error = %v", err)
	}
	err := s.Import(map[string][]byte{
		ports.KeyNotes:          []byte(`[]`),
		ports.KeyLastOpenedNote: nil,
	})
	if err != nil {
		t.Fatalf("Import() error = %v", err)
	}

	if _, ok, _ := s.Get(ports.KeyLastOpenedNote); ok {
		t.Error("nil value should delete the key")
	}
	if v, ok, _ := s.Get(ports.KeyNotes); !ok || string(v) != `[]` {
		t.Errorf("notesList = %q, %v", v, ok)
	}
}

func TestStore_ReopenKeepsData(t *testing.T) {
	s, path := openTestStore(t)
	if err := s.Set(ports.KeyLastOpenedNote, []byte(`"7"`)); err != nil {
		t.Fatalf("Set() error = %v", err)
	}
	s.Close()

	reopened, err := Open(path)
	if err != nil {
		t.Fatalf("reopen error = %v", err)
	}
	defer reopened.Close()

	v, ok, err := reopened.Get(ports.KeyLastOpenedNote)
	if err != nil || !ok || string(v) != `"7"` {
		t.Errorf("Get() after reopen = %q, ok %v, err %v", v, ok, err)
	}
}

func TestStore_RejectsForeignSchema(t *testing.T) {
	s, path := openTestStore(t)
	s.Close()

	db, err := sql.Open("sqlite", path)
	if err != nil {
		t.Fatalf("sql.Open() error = %v", err)
	}
	if _, err := db.Exec(`UPDATE meta SET value = '99' WHERE key = 'schema_version'`); err != nil {
		t.Fatalf("update meta: %v", err)
	}
	db.Close()

	_, err = Open(path)
	if !errors.Is(err, ErrSchemaMismatch) {
		t.Errorf("Open() error = %v, want ErrSchemaMismatch", err)
	}
}
