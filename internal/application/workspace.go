package application

import (
	"github.com/rs/zerolog"

	"simplenotes/internal/domain"
	"simplenotes/internal/ports"
)

// Workspace bundles the stores and the session over one key-value store
type Workspace struct {
	Notes    *NoteStore
	Groups   *GroupStore
	Session  *Session
	Drag     *DragController
	AutoSave *AutoSaver

	kv  ports.KeyValueStore
	log zerolog.Logger
}

// Section is a group header and its members, or the ungrouped tail when
// Group is nil
type Section struct {
	Group    *domain.Group
	Expanded bool
	Notes    []domain.Note
}

// Open loads persisted state from kv. Unreadable keys fall back to their
// defaults. A store without a notesList key gets the welcome note.
func Open(kv ports.KeyValueStore, opts Options) (*Workspace, error) {
	opts = opts.withDefaults()

	notes := newNoteStore(kv, opts)
	groups := newGroupStore(kv, notes, opts)
	autoSave := NewAutoSaver(opts.Clock, opts.AutoSaveInterval)

	w := &Workspace{
		Notes:    notes,
		Groups:   groups,
		AutoSave: autoSave,
		Session:  newSession(kv, notes, groups, autoSave, opts),
		Drag:     newDragController(notes, groups),
		kv:       kv,
		log:      opts.Logger.With().Str("component", "workspace").Logger(),
	}

	if !notes.load() {
		_, present, err := kv.Get(ports.KeyNotes)
		if err == nil && !present {
			n, err := notes.create(domain.NoGroup, domain.WelcomeContent)
			if err != nil {
				return nil, err
			}
			w.log.Info().Stringer("id", n.ID).Msg("seeded welcome note")
		}
	}
	groups.load()
	w.Session.restore()

	w.log.Debug().
		Int("notes", notes.Len()).
		Int("groups", len(groups.groups)).
		Stringer("active", w.Session.ActiveID()).
		Msg("workspace opened")
	return w, nil
}

// Close closes the underlying store
func (w *Workspace) Close() error {
	return w.kv.Close()
}

// UngroupedNotes returns notes with no group, including notes whose group
// no longer exists
func (w *Workspace) UngroupedNotes() []domain.Note {
	var out []domain.Note
	for _, n := range w.Notes.notes {
		if !n.HasGroup() || !w.Groups.Exists(n.GroupID) {
			out = append(out, n)
		}
	}
	return out
}

// Sections returns the sidebar layout: each group in order with its
// members, then the ungrouped notes
func (w *Workspace) Sections() []Section {
	groups := w.Groups.List()
	out := make([]Section, 0, len(groups)+1)
	for i := range groups {
		g := groups[i]
		out = append(out, Section{
			Group:    &g,
			Expanded: w.Groups.IsExpanded(g.ID),
			Notes:    w.Notes.NotesForGroup(g.ID),
		})
	}
	out = append(out, Section{Expanded: true, Notes: w.UngroupedNotes()})
	return out
}
