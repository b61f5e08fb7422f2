package application

import (
	"slices"
	"strings"

	"github.com/rs/zerolog"

	"simplenotes/internal/domain"
	"simplenotes/internal/ports"
)

// NoteStore owns the ordered note list and mirrors it to the key-value
// store after every mutation
type NoteStore struct {
	kv    ports.KeyValueStore
	clock ports.Clock
	ids   *domain.IDGenerator
	log   zerolog.Logger

	notes []domain.Note
}

func newNoteStore(kv ports.KeyValueStore, opts Options) *NoteStore {
	return &NoteStore{
		kv:    kv,
		clock: opts.Clock,
		ids:   opts.IDs,
		log:   opts.Logger.With().Str("store", "notes").Logger(),
	}
}

// load reads notesList; it reports whether the key was present and valid
func (s *NoteStore) load() bool {
	var notes []domain.Note
	if !loadJSON(s.kv, s.log, ports.KeyNotes, &notes) {
		s.notes = nil
		return false
	}
	s.notes = notes
	for _, n := range notes {
		s.ids.Observe(n.ID)
	}
	s.log.Debug().Int("count", len(notes)).Msg("notes loaded")
	return true
}

func (s *NoteStore) persist() error {
	if s.notes == nil {
		return writeJSON(s.kv, s.log, ports.KeyNotes, []domain.Note{})
	}
	return writeJSON(s.kv, s.log, ports.KeyNotes, s.notes)
}

func (s *NoteStore) indexOf(id domain.ID) int {
	return slices.IndexFunc(s.notes, func(n domain.Note) bool { return n.ID == id })
}

func noteKey(n domain.Note) domain.ID { return n.ID }

// List returns a copy of all notes in list order
func (s *NoteStore) List() []domain.Note {
	return slices.Clone(s.notes)
}

// Len returns the number of notes
func (s *NoteStore) Len() int {
	return len(s.notes)
}

// Get returns the note with the given ID
func (s *NoteStore) Get(id domain.ID) (domain.Note, bool) {
	i := s.indexOf(id)
	if i < 0 {
		return domain.Note{}, false
	}
	return s.notes[i], true
}

// NotesForGroup returns the members of a group in list order
func (s *NoteStore) NotesForGroup(groupID domain.ID) []domain.Note {
	var out []domain.Note
	for _, n := range s.notes {
		if n.GroupID == groupID {
			out = append(out, n)
		}
	}
	return out
}

// Search returns notes whose title, description or content contains query
// (case-insensitive), in list order
func (s *NoteStore) Search(query string) []domain.Note {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return nil
	}
	var out []domain.Note
	for _, n := range s.notes {
		if strings.Contains(strings.ToLower(n.Title), q) ||
			strings.Contains(strings.ToLower(n.Description), q) ||
			strings.Contains(strings.ToLower(n.Content), q) {
			out = append(out, n)
		}
	}
	return out
}

// Create allocates a note with the default content. Ungrouped notes go to
// the end of the list; grouped notes go right before the first existing
// member of their group.
func (s *NoteStore) Create(groupID domain.ID) (domain.Note, error) {
	return s.create(groupID, domain.NewNoteContent)
}

func (s *NoteStore) create(groupID domain.ID, content string) (domain.Note, error) {
	now := stamp(s.clock)
	n := domain.Note{
		ID:        s.ids.Next(),
		CreatedAt: now,
		GroupID:   groupID,
	}
	n.ApplyContent(content, now)

	at := len(s.notes)
	if groupID != domain.NoGroup {
		if i := slices.IndexFunc(s.notes, func(m domain.Note) bool { return m.GroupID == groupID }); i >= 0 {
			at = i
		}
	}
	s.notes = slices.Insert(s.notes, at, n)

	s.log.Debug().Stringer("id", n.ID).Stringer("group", groupID).Msg("note created")
	return n, s.persist()
}

// Save writes buffer into the note's content and re-derives the fields that
// still follow it. A zero id means no note is active and is a no-op.
func (s *NoteStore) Save(id domain.ID, buffer string) error {
	if id == 0 {
		return nil
	}
	i := s.indexOf(id)
	if i < 0 {
		return &NotFoundError{Kind: "note", ID: id.String()}
	}
	s.notes[i].ApplyContent(buffer, stamp(s.clock))
	return s.persist()
}

// Delete removes a note
func (s *NoteStore) Delete(id domain.ID) error {
	i := s.indexOf(id)
	if i < 0 {
		return &NotFoundError{Kind: "note", ID: id.String()}
	}
	s.notes = slices.Delete(s.notes, i, i+1)
	s.log.Debug().Stringer("id", id).Msg("note deleted")
	return s.persist()
}

// Rename sets title or description directly and stops its derivation
func (s *NoteStore) Rename(id domain.ID, field domain.Field, value string) error {
	i := s.indexOf(id)
	if i < 0 {
		return &NotFoundError{Kind: "note", ID: id.String()}
	}
	s.notes[i].SetField(field, value, stamp(s.clock))
	return s.persist()
}

// Reorder moves a note next to a target note. When the target sits in
// another group the note adopts that group.
func (s *NoteStore) Reorder(id, targetID domain.ID, pos domain.Position) error {
	src := s.indexOf(id)
	if src < 0 {
		return &NotFoundError{Kind: "note", ID: id.String()}
	}
	dst := s.indexOf(targetID)
	if dst < 0 {
		return &NotFoundError{Kind: "note", ID: targetID.String()}
	}
	if id == targetID {
		return &MoveError{SourceID: id.String(), DestID: targetID.String(), Reason: "note cannot be moved next to itself"}
	}

	if s.notes[src].GroupID != s.notes[dst].GroupID {
		s.notes[src].GroupID = s.notes[dst].GroupID
	}
	s.notes = domain.Reorder(s.notes, id, targetID, pos, noteKey)
	return s.persist()
}

// MoveToGroup reassigns a note and appends it after the last member of the
// destination group. NoGroup moves it to the ungrouped set.
func (s *NoteStore) MoveToGroup(id, groupID domain.ID) error {
	i := s.indexOf(id)
	if i < 0 {
		return &NotFoundError{Kind: "note", ID: id.String()}
	}

	n := s.notes[i]
	n.GroupID = groupID
	s.notes = slices.Delete(s.notes, i, i+1)

	at := len(s.notes)
	for j := len(s.notes) - 1; j >= 0; j-- {
		if s.notes[j].GroupID == groupID {
			at = j + 1
			break
		}
	}
	s.notes = slices.Insert(s.notes, at, n)
	return s.persist()
}

// Ungroup clears the group of every member of groupID and returns how many
// notes were affected
func (s *NoteStore) Ungroup(groupID domain.ID) (int, error) {
	count := 0
	for i := range s.notes {
		if s.notes[i].GroupID == groupID {
			s.notes[i].GroupID = domain.NoGroup
			count++
		}
	}
	return count, s.persist()
}
