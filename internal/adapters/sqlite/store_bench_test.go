package sqlite

import (
	"encoding/json"
	"fmt"
	"path/filepath"
	"testing"

	"simplenotes/internal/ports"
)

// BenchmarkSetNotesList measures overwriting a notesList of realistic size
func BenchmarkSetNotesList(b *testing.B) {
	s, err := Open(filepath.Join(b.TempDir(), FileName))
	if err != nil {
		b.Fatalf("failed to open store: %v", err)
	}
	defer func() {
		if err := s.Close(); err != nil {
			b.Fatalf("failed to close store: %v", err)
		}
	}()

	notes := make([]map[string]any, 500)
	for i := range notes {
		notes[i] = map[string]any{
			"id":      i + 1,
			"title":   fmt.Sprintf("Note %d", i),
			"content": fmt.Sprintf("# Note %d\n\nSome body text for note %d.", i, i),
		}
	}
	data, err := json.Marshal(notes)
	if err != nil {
		b.Fatal(err)
	}

	b.ResetTimer()
	for b.Loop() {
		if err := s.Set(ports.KeyNotes, data); err != nil {
			b.Fatalf("set failed: %v", err)
		}
	}
}
