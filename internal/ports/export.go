package ports

import "simplenotes/internal/domain"

// NoteRenderer turns a note into a standalone document
type NoteRenderer interface {
	// Render returns the document bytes. groupName is empty for ungrouped notes.
	Render(note domain.Note, groupName string) ([]byte, error)

	// Extension is the file extension of rendered documents, with the dot
	Extension() string
}
