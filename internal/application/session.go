package application

import (
	"encoding/json"
	"fmt"
	"strconv"

	"github.com/rs/zerolog"

	"simplenotes/internal/domain"
	"simplenotes/internal/ports"
)

// SessionState is the state of the unsaved-changes guard
type SessionState int

const (
	StateIdle           SessionState = iota // no note open
	StateViewing                            // buffer matches stored content
	StateDirty                              // buffer diverges from stored content
	StateConfirmPending                     // switch attempted while dirty
)

func (s SessionState) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateViewing:
		return "viewing"
	case StateDirty:
		return "dirty"
	case StateConfirmPending:
		return "confirm-pending"
	default:
		return fmt.Sprintf("SessionState(%d)", int(s))
	}
}

// TargetKind distinguishes inline-edit targets
type TargetKind int

const (
	TargetNote TargetKind = iota
	TargetGroup
)

// InlineTarget is the field currently being edited in place. Field is
// ignored for groups, whose only editable field is the name.
type InlineTarget struct {
	Kind  TargetKind
	ID    domain.ID
	Field domain.Field
}

// Session tracks the open note, its editor buffer and the guard that
// protects unsaved edits when switching notes
type Session struct {
	kv       ports.KeyValueStore
	log      zerolog.Logger
	notes    *NoteStore
	groups   *GroupStore
	autoSave *AutoSaver

	state    SessionState
	activeID domain.ID
	buffer   string
	pending  domain.ID
	inline   *InlineTarget
}

func newSession(kv ports.KeyValueStore, notes *NoteStore, groups *GroupStore, autoSave *AutoSaver, opts Options) *Session {
	return &Session{
		kv:       kv,
		log:      opts.Logger.With().Str("component", "session").Logger(),
		notes:    notes,
		groups:   groups,
		autoSave: autoSave,
	}
}

// restore reopens lastOpenedNote, or the first note when it is gone
func (s *Session) restore() {
	var raw json.RawMessage
	if loadJSON(s.kv, s.log, ports.KeyLastOpenedNote, &raw) {
		if id, ok := parseLastOpened(raw); ok {
			if _, exists := s.notes.Get(id); exists {
				s.load(id, false)
				return
			}
		}
	}
	if notes := s.notes.List(); len(notes) > 0 {
		s.load(notes[0].ID, false)
	}
}

// parseLastOpened accepts both the stringified id and a bare number
func parseLastOpened(raw json.RawMessage) (domain.ID, bool) {
	var str string
	if err := json.Unmarshal(raw, &str); err == nil {
		id, err := domain.ParseID(str)
		return id, err == nil
	}
	var n int64
	if err := json.Unmarshal(raw, &n); err == nil && n > 0 {
		return domain.ID(n), true
	}
	return 0, false
}

// load puts a note into the buffer, discarding whatever was there
func (s *Session) load(id domain.ID, remember bool) {
	n, _ := s.notes.Get(id)
	s.activeID = id
	s.buffer = n.Content
	s.state = StateViewing
	s.pending = 0
	if remember {
		s.rememberActive()
	}
}

func (s *Session) clear() {
	s.activeID = 0
	s.buffer = ""
	s.state = StateIdle
	s.pending = 0
	s.rememberActive()
}

func (s *Session) rememberActive() {
	if s.activeID == 0 {
		if err := s.kv.Delete(ports.KeyLastOpenedNote); err != nil {
			s.log.Error().Err(err).Msg("clearing last opened note failed")
		}
		return
	}
	if err := writeJSON(s.kv, s.log, ports.KeyLastOpenedNote, strconv.FormatInt(int64(s.activeID), 10)); err != nil {
		s.log.Error().Err(err).Msg("recording last opened note failed")
	}
}

// State returns the guard state
func (s *Session) State() SessionState {
	return s.state
}

// ActiveID returns the open note's ID, or 0 when idle
func (s *Session) ActiveID() domain.ID {
	return s.activeID
}

// Active returns the stored version of the open note
func (s *Session) Active() (domain.Note, bool) {
	if s.activeID == 0 {
		return domain.Note{}, false
	}
	return s.notes.Get(s.activeID)
}

// Buffer returns the live editor text
func (s *Session) Buffer() string {
	return s.buffer
}

// PendingID returns the note waiting behind the confirmation prompt
func (s *Session) PendingID() domain.ID {
	return s.pending
}

// IsDirty reports whether the buffer diverges from the stored content
func (s *Session) IsDirty() bool {
	n, ok := s.Active()
	return ok && n.Content != s.buffer
}

// Open switches to another note. With unsaved edits the switch is held
// pending and ErrUnsavedChanges is returned; the caller then asks the user
// and calls ConfirmLeave or CancelLeave.
func (s *Session) Open(id domain.ID) error {
	if _, ok := s.notes.Get(id); !ok {
		return &NotFoundError{Kind: "note", ID: id.String()}
	}

	switch s.state {
	case StateDirty, StateConfirmPending:
		if id == s.activeID {
			if s.state == StateConfirmPending {
				s.CancelLeave()
			}
			return nil
		}
		s.pending = id
		s.state = StateConfirmPending
		s.log.Debug().Stringer("from", s.activeID).Stringer("to", id).Msg("switch held for confirmation")
		return ErrUnsavedChanges
	default:
		if id == s.activeID {
			return nil
		}
		s.load(id, true)
		return nil
	}
}

// ConfirmLeave discards the buffer and opens the pending note
func (s *Session) ConfirmLeave() error {
	if s.state != StateConfirmPending {
		return fmt.Errorf("confirm leave in state %s: %w", s.state, ErrInvalidOperation)
	}
	target := s.pending
	if _, ok := s.notes.Get(target); !ok {
		s.CancelLeave()
		return &NotFoundError{Kind: "note", ID: target.String()}
	}
	s.load(target, true)
	return nil
}

// CancelLeave stays on the current note and keeps its edits. The state
// follows the buffer, which may have been saved while the prompt was open.
func (s *Session) CancelLeave() {
	if s.state != StateConfirmPending {
		return
	}
	s.pending = 0
	if s.IsDirty() {
		s.state = StateDirty
	} else {
		s.state = StateViewing
	}
}

// Edit replaces the buffer with the editor's latest text
func (s *Session) Edit(text string) {
	if s.state == StateIdle {
		return
	}
	s.buffer = text
	if s.state == StateConfirmPending {
		return
	}
	if s.IsDirty() {
		s.state = StateDirty
	} else {
		s.state = StateViewing
	}
}

// Save writes the buffer into the open note. Without an open note it is a no-op.
func (s *Session) Save() error {
	if s.activeID == 0 {
		return nil
	}
	if err := s.notes.Save(s.activeID, s.buffer); err != nil {
		return err
	}
	if s.state == StateDirty {
		s.state = StateViewing
	}
	return nil
}

// CreateNote creates a note, optionally inside a group, and opens it.
// Like every non-switch action it does not consult the guard.
func (s *Session) CreateNote(groupID domain.ID) (domain.Note, error) {
	if groupID != domain.NoGroup && !s.groups.Exists(groupID) {
		return domain.Note{}, &NotFoundError{Kind: "group", ID: groupID.String()}
	}
	n, err := s.notes.Create(groupID)
	s.load(n.ID, true)
	if err != nil {
		return n, err
	}
	if groupID != domain.NoGroup {
		if err := s.groups.SetExpanded(groupID, true); err != nil {
			return n, err
		}
	}
	return n, nil
}

// DeleteNote removes a note. When it was open, the last remaining note
// becomes active, or the session goes idle with an empty buffer.
func (s *Session) DeleteNote(id domain.ID) error {
	if _, ok := s.notes.Get(id); !ok {
		return &NotFoundError{Kind: "note", ID: id.String()}
	}
	// A failed write still removes the note from memory
	err := s.notes.Delete(id)

	if s.pending == id {
		s.CancelLeave()
	}
	if s.inline != nil && s.inline.Kind == TargetNote && s.inline.ID == id {
		s.inline = nil
	}
	if id == s.activeID {
		if notes := s.notes.List(); len(notes) > 0 {
			s.load(notes[len(notes)-1].ID, true)
		} else {
			s.clear()
		}
	}
	return err
}

// DeleteGroup removes a group; its notes become ungrouped
func (s *Session) DeleteGroup(id domain.ID) error {
	if s.inline != nil && s.inline.Kind == TargetGroup && s.inline.ID == id {
		s.inline = nil
	}
	return s.groups.Delete(id)
}

// BeginInlineEdit marks a note field or group name as being edited
func (s *Session) BeginInlineEdit(target InlineTarget) error {
	switch target.Kind {
	case TargetNote:
		if _, ok := s.notes.Get(target.ID); !ok {
			return &NotFoundError{Kind: "note", ID: target.ID.String()}
		}
	case TargetGroup:
		if !s.groups.Exists(target.ID) {
			return &NotFoundError{Kind: "group", ID: target.ID.String()}
		}
	}
	s.inline = &target
	return nil
}

// InlineTarget returns the field being edited in place
func (s *Session) InlineTarget() (InlineTarget, bool) {
	if s.inline == nil {
		return InlineTarget{}, false
	}
	return *s.inline, true
}

// CommitInlineEdit writes value to the inline-edit target and ends the edit
func (s *Session) CommitInlineEdit(value string) error {
	if s.inline == nil {
		return fmt.Errorf("no inline edit in progress: %w", ErrInvalidOperation)
	}
	target := *s.inline
	s.inline = nil

	if target.Kind == TargetGroup {
		return s.groups.Rename(target.ID, value)
	}
	return s.notes.Rename(target.ID, target.Field, value)
}

// CancelInlineEdit ends the inline edit without writing
func (s *Session) CancelInlineEdit() {
	s.inline = nil
}

// ToggleAutoSave flips auto-save and returns the new state and the
// generation to tag scheduled ticks with
func (s *Session) ToggleAutoSave() (bool, uint64) {
	on, gen := s.autoSave.Toggle()
	s.log.Info().Bool("enabled", on).Dur("interval", s.autoSave.Interval()).Msg("auto-save toggled")
	return on, gen
}

// AutoSaveTick handles a scheduled tick. It saves whenever the tick is
// current and the interval has elapsed, dirty or not.
func (s *Session) AutoSaveTick(gen uint64) (bool, error) {
	if !s.autoSave.Due(gen) {
		return false, nil
	}
	if s.activeID == 0 {
		return false, nil
	}
	if err := s.Save(); err != nil {
		return false, err
	}
	s.log.Debug().Stringer("id", s.activeID).Msg("auto-saved")
	return true, nil
}
