package application

import (
	"slices"
	"strings"

	"github.com/rs/zerolog"

	"simplenotes/internal/domain"
	"simplenotes/internal/ports"
)

// GroupStore owns the ordered group list and the per-group expansion map
type GroupStore struct {
	kv    ports.KeyValueStore
	clock ports.Clock
	ids   *domain.IDGenerator
	log   zerolog.Logger
	notes *NoteStore

	groups   []domain.Group
	expanded map[domain.ID]bool
}

func newGroupStore(kv ports.KeyValueStore, notes *NoteStore, opts Options) *GroupStore {
	return &GroupStore{
		kv:       kv,
		clock:    opts.Clock,
		ids:      opts.IDs,
		log:      opts.Logger.With().Str("store", "groups").Logger(),
		notes:    notes,
		expanded: make(map[domain.ID]bool),
	}
}

func (s *GroupStore) load() {
	var groups []domain.Group
	if loadJSON(s.kv, s.log, ports.KeyGroups, &groups) {
		s.groups = groups
	}
	for _, g := range s.groups {
		s.ids.Observe(g.ID)
	}

	var raw map[string]bool
	loadJSON(s.kv, s.log, ports.KeyExpandedGroups, &raw)
	s.expanded = make(map[domain.ID]bool, len(s.groups))
	for k, v := range raw {
		id, err := domain.ParseID(k)
		if err != nil {
			s.log.Warn().Str("key", k).Msg("ignoring malformed expandedGroups entry")
			continue
		}
		s.expanded[id] = v
	}
	// Groups with no recorded state start expanded
	for _, g := range s.groups {
		if _, ok := s.expanded[g.ID]; !ok {
			s.expanded[g.ID] = true
		}
	}
}

func (s *GroupStore) persistGroups() error {
	if s.groups == nil {
		return writeJSON(s.kv, s.log, ports.KeyGroups, []domain.Group{})
	}
	return writeJSON(s.kv, s.log, ports.KeyGroups, s.groups)
}

func (s *GroupStore) persistExpanded() error {
	raw := make(map[string]bool, len(s.expanded))
	for id, v := range s.expanded {
		raw[id.String()] = v
	}
	return writeJSON(s.kv, s.log, ports.KeyExpandedGroups, raw)
}

func (s *GroupStore) indexOf(id domain.ID) int {
	return slices.IndexFunc(s.groups, func(g domain.Group) bool { return g.ID == id })
}

func groupKey(g domain.Group) domain.ID { return g.ID }

// List returns a copy of all groups in order
func (s *GroupStore) List() []domain.Group {
	return slices.Clone(s.groups)
}

// Get returns the group with the given ID
func (s *GroupStore) Get(id domain.ID) (domain.Group, bool) {
	i := s.indexOf(id)
	if i < 0 {
		return domain.Group{}, false
	}
	return s.groups[i], true
}

// Exists reports whether a group with the given ID exists
func (s *GroupStore) Exists(id domain.ID) bool {
	return s.indexOf(id) >= 0
}

// FindByName returns the first group whose name matches (case-insensitive)
func (s *GroupStore) FindByName(name string) (domain.Group, bool) {
	name = strings.TrimSpace(name)
	for _, g := range s.groups {
		if strings.EqualFold(g.Name, name) {
			return g, true
		}
	}
	return domain.Group{}, false
}

// Create appends a group. A blank name is a no-op and reports false.
func (s *GroupStore) Create(name string) (domain.Group, bool, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return domain.Group{}, false, nil
	}

	g := domain.Group{
		ID:        s.ids.Next(),
		Name:      name,
		CreatedAt: stamp(s.clock),
	}
	s.groups = append(s.groups, g)
	s.expanded[g.ID] = true

	s.log.Debug().Stringer("id", g.ID).Str("name", name).Msg("group created")
	if err := s.persistGroups(); err != nil {
		return g, true, err
	}
	return g, true, s.persistExpanded()
}

// Delete removes a group and moves its notes to the ungrouped set.
// Notes are never deleted with their group.
func (s *GroupStore) Delete(id domain.ID) error {
	i := s.indexOf(id)
	if i < 0 {
		return &NotFoundError{Kind: "group", ID: id.String()}
	}

	released, err := s.notes.Ungroup(id)
	if err != nil {
		return err
	}

	s.groups = slices.Delete(s.groups, i, i+1)
	delete(s.expanded, id)

	s.log.Debug().Stringer("id", id).Int("released", released).Msg("group deleted")
	if err := s.persistGroups(); err != nil {
		return err
	}
	return s.persistExpanded()
}

// Rename changes a group's name. A blank name is a no-op.
func (s *GroupStore) Rename(id domain.ID, name string) error {
	i := s.indexOf(id)
	if i < 0 {
		return &NotFoundError{Kind: "group", ID: id.String()}
	}
	name = strings.TrimSpace(name)
	if name == "" {
		return nil
	}
	s.groups[i].Name = name
	return s.persistGroups()
}

// Reorder moves a group before or after a target group. Notes do not move.
func (s *GroupStore) Reorder(id, targetID domain.ID, pos domain.Position) error {
	if !s.Exists(id) {
		return &NotFoundError{Kind: "group", ID: id.String()}
	}
	if !s.Exists(targetID) {
		return &NotFoundError{Kind: "group", ID: targetID.String()}
	}
	if id == targetID {
		return &MoveError{SourceID: id.String(), DestID: targetID.String(), Reason: "group cannot be moved next to itself"}
	}
	s.groups = domain.Reorder(s.groups, id, targetID, pos, groupKey)
	return s.persistGroups()
}

// IsExpanded reports the expansion state of a group; unknown groups count as expanded
func (s *GroupStore) IsExpanded(id domain.ID) bool {
	v, ok := s.expanded[id]
	return !ok || v
}

// ToggleExpanded flips a group's expansion state and returns the new state
func (s *GroupStore) ToggleExpanded(id domain.ID) (bool, error) {
	if !s.Exists(id) {
		return false, &NotFoundError{Kind: "group", ID: id.String()}
	}
	v := !s.IsExpanded(id)
	s.expanded[id] = v
	return v, s.persistExpanded()
}

// SetExpanded records a group's expansion state
func (s *GroupStore) SetExpanded(id domain.ID, expanded bool) error {
	if !s.Exists(id) {
		return &NotFoundError{Kind: "group", ID: id.String()}
	}
	if v, ok := s.expanded[id]; ok && v == expanded {
		return nil
	}
	s.expanded[id] = expanded
	return s.persistExpanded()
}
