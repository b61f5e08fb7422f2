package views

import (
	"errors"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"simplenotes/internal/adapters/tui/styles"
	"simplenotes/internal/application"
	"simplenotes/internal/domain"
)

// SidebarKeyMap defines key bindings for the note list
type SidebarKeyMap struct {
	Up       key.Binding
	Down     key.Binding
	PageUp   key.Binding
	PageDown key.Binding
	Collapse key.Binding
	Expand   key.Binding
	Drop     key.Binding
	Cancel   key.Binding
}

var SidebarKeys = SidebarKeyMap{
	Up: key.NewBinding(
		key.WithKeys("k", "up"),
		key.WithHelp("k/↑", "up"),
	),
	Down: key.NewBinding(
		key.WithKeys("j", "down"),
		key.WithHelp("j/↓", "down"),
	),
	PageUp: key.NewBinding(
		key.WithKeys("ctrl+u", "pgup"),
		key.WithHelp("ctrl+u", "page up"),
	),
	PageDown: key.NewBinding(
		key.WithKeys("ctrl+d", "pgdown"),
		key.WithHelp("ctrl+d", "page down"),
	),
	Collapse: key.NewBinding(
		key.WithKeys("h", "left"),
		key.WithHelp("h/←", "collapse"),
	),
	Expand: key.NewBinding(
		key.WithKeys("l", "right"),
		key.WithHelp("l/→", "expand"),
	),
	Drop: key.NewBinding(
		key.WithKeys("enter", "m"),
		key.WithHelp("enter", "drop here"),
	),
	Cancel: key.NewBinding(
		key.WithKeys("esc"),
		key.WithHelp("esc", "cancel move"),
	),
}

// ErrCannotDrop is returned when the picked-up item has no meaning at the
// chosen row, such as a group dropped among ungrouped notes
var ErrCannotDrop = errors.New("cannot drop here")

// RowKind is the kind of a sidebar row
type RowKind int

const (
	RowGroup RowKind = iota
	RowNote
	RowUngrouped
)

// Row is one line of the sidebar
type Row struct {
	Kind     RowKind
	Group    domain.Group // RowGroup
	Expanded bool         // RowGroup
	Count    int          // RowGroup, RowUngrouped
	Note     domain.Note  // RowNote
	Nested   bool         // RowNote inside a group
}

// key identifies a row across refreshes
func (r Row) key() string {
	switch r.Kind {
	case RowGroup:
		return "g" + r.Group.ID.String()
	case RowNote:
		return "n" + r.Note.ID.String()
	}
	return "u"
}

// SidebarModel lists groups and notes and drives keyboard move mode
type SidebarModel struct {
	ws    *application.Workspace
	rows  []Row
	pager *Paginator

	// moveFrom is the row index the move started at
	moveFrom int

	width  int
	height int
}

// NewSidebarModel creates a sidebar over ws
func NewSidebarModel(ws *application.Workspace) *SidebarModel {
	m := &SidebarModel{
		ws:    ws,
		pager: NewPaginator(10),
	}
	m.Refresh()
	m.SelectNote(ws.Session.ActiveID())
	return m
}

// Refresh rebuilds the rows from the workspace, keeping the cursor on
// the same item when it still exists
func (m *SidebarModel) Refresh() {
	var keep string
	if row, ok := m.Selected(); ok {
		keep = row.key()
	}

	m.rows = m.rows[:0]
	for _, sec := range m.ws.Sections() {
		if sec.Group == nil {
			m.rows = append(m.rows, Row{Kind: RowUngrouped, Count: len(sec.Notes)})
			for _, n := range sec.Notes {
				m.rows = append(m.rows, Row{Kind: RowNote, Note: n})
			}
			continue
		}
		m.rows = append(m.rows, Row{
			Kind:     RowGroup,
			Group:    *sec.Group,
			Expanded: sec.Expanded,
			Count:    len(sec.Notes),
		})
		if !sec.Expanded {
			continue
		}
		for _, n := range sec.Notes {
			m.rows = append(m.rows, Row{Kind: RowNote, Note: n, Nested: true})
		}
	}
	m.pager.SetTotal(len(m.rows))

	if keep != "" {
		m.selectKey(keep)
	}
}

func (m *SidebarModel) selectKey(k string) bool {
	for i, r := range m.rows {
		if r.key() == k {
			m.pager.SetCursor(i)
			return true
		}
	}
	return false
}

// SelectNote moves the cursor to a note, expanding its group if needed
func (m *SidebarModel) SelectNote(id domain.ID) {
	if id == 0 {
		return
	}
	if m.selectKey("n" + id.String()) {
		return
	}
	n, ok := m.ws.Notes.Get(id)
	if !ok || !n.HasGroup() {
		return
	}
	if err := m.ws.Groups.SetExpanded(n.GroupID, true); err != nil {
		return
	}
	m.Refresh()
	m.selectKey("n" + id.String())
}

// SelectGroup moves the cursor to a group header
func (m *SidebarModel) SelectGroup(id domain.ID) {
	m.selectKey("g" + id.String())
}

// Rows returns the visible rows
func (m *SidebarModel) Rows() []Row {
	return m.rows
}

// Cursor returns the selected row index
func (m *SidebarModel) Cursor() int {
	return m.pager.Cursor()
}

// Selected returns the row under the cursor
func (m *SidebarModel) Selected() (Row, bool) {
	i := m.pager.Cursor()
	if i < 0 || i >= len(m.rows) {
		return Row{}, false
	}
	return m.rows[i], true
}

// SelectedGroupID returns the group a new note should go into: the
// selected group, or the group of the selected note
func (m *SidebarModel) SelectedGroupID() domain.ID {
	row, ok := m.Selected()
	if !ok {
		return domain.NoGroup
	}
	switch row.Kind {
	case RowGroup:
		return row.Group.ID
	case RowNote:
		if row.Nested {
			return row.Note.GroupID
		}
	}
	return domain.NoGroup
}

// Moving reports whether move mode is on
func (m *SidebarModel) Moving() bool {
	return m.ws.Drag.Active()
}

// BeginMove picks up the selected note or group
func (m *SidebarModel) BeginMove() bool {
	row, ok := m.Selected()
	if !ok {
		return false
	}
	switch row.Kind {
	case RowNote:
		m.ws.Drag.Begin(application.DragItem{Kind: application.ItemNote, ID: row.Note.ID})
	case RowGroup:
		m.ws.Drag.Begin(application.DragItem{Kind: application.ItemGroup, ID: row.Group.ID})
	default:
		return false
	}
	m.moveFrom = m.pager.Cursor()
	m.hover()
	return true
}

// CancelMove drops the picked-up item where it was
func (m *SidebarModel) CancelMove() {
	m.ws.Drag.Cancel()
}

// Drop places the picked-up item at the cursor. It reports whether
// anything moved.
func (m *SidebarModel) Drop() (bool, error) {
	src, ok := m.ws.Drag.Source()
	if !ok {
		return false, nil
	}
	target, ok := m.targetAt(m.pager.Cursor())
	if !ok {
		m.ws.Drag.Cancel()
		return false, nil
	}

	moved, err := m.ws.Drag.Drop(target)
	m.Refresh()
	if src.Kind == application.ItemNote {
		m.SelectNote(src.ID)
	} else {
		m.SelectGroup(src.ID)
	}
	return moved, err
}

// hover updates the drop marker for the row under the cursor
func (m *SidebarModel) hover() {
	if target, ok := m.targetAt(m.pager.Cursor()); ok {
		m.ws.Drag.Over(target)
	}
}

// targetAt maps a row to a drop target. Rows above the starting point
// insert before, rows below insert after.
func (m *SidebarModel) targetAt(i int) (application.DropTarget, bool) {
	if i < 0 || i >= len(m.rows) {
		return application.DropTarget{}, false
	}
	src, ok := m.ws.Drag.Source()
	if !ok {
		return application.DropTarget{}, false
	}
	pos := domain.PositionAfter
	if i < m.moveFrom {
		pos = domain.PositionBefore
	}

	row := m.rows[i]
	switch row.Kind {
	case RowUngrouped:
		return application.DropTarget{Kind: application.DropOnUngrouped}, true
	case RowGroup:
		return application.DropTarget{Kind: application.DropOnGroup, ID: row.Group.ID, Position: pos}, true
	}

	// A group hovering over a nested note targets that note's group
	if src.Kind == application.ItemGroup {
		if row.Nested {
			return application.DropTarget{Kind: application.DropOnGroup, ID: row.Note.GroupID, Position: pos}, true
		}
		return application.DropTarget{Kind: application.DropOnUngrouped}, true
	}
	return application.DropTarget{Kind: application.DropOnNote, ID: row.Note.ID, Position: pos}, true
}

// ToggleSelected flips the selected group's expansion
func (m *SidebarModel) ToggleSelected() error {
	row, ok := m.Selected()
	if !ok || row.Kind != RowGroup {
		return nil
	}
	return m.setExpanded(row.Group.ID, !row.Expanded)
}

func (m *SidebarModel) setExpanded(id domain.ID, expanded bool) error {
	err := m.ws.Groups.SetExpanded(id, expanded)
	m.Refresh()
	m.SelectGroup(id)
	return err
}

// Update handles navigation keys. The bool reports whether the key was consumed.
func (m *SidebarModel) Update(msg tea.Msg) (bool, tea.Cmd, error) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return false, nil, nil
	}

	if m.Moving() {
		switch {
		case key.Matches(keyMsg, SidebarKeys.Drop):
			moved, err := m.Drop()
			if err != nil {
				return true, nil, err
			}
			if !moved {
				return true, nil, ErrCannotDrop
			}
			return true, nil, nil
		case key.Matches(keyMsg, SidebarKeys.Cancel):
			m.CancelMove()
			return true, nil, nil
		}
	}

	switch {
	case key.Matches(keyMsg, SidebarKeys.Up):
		m.pager.CursorUp()
	case key.Matches(keyMsg, SidebarKeys.Down):
		m.pager.CursorDown()
	case key.Matches(keyMsg, SidebarKeys.PageUp):
		m.pager.HalfPageUp()
	case key.Matches(keyMsg, SidebarKeys.PageDown):
		m.pager.HalfPageDown()

	case key.Matches(keyMsg, SidebarKeys.Collapse):
		row, ok := m.Selected()
		if !ok || m.Moving() {
			return true, nil, nil
		}
		if row.Kind == RowGroup && row.Expanded {
			return true, nil, m.setExpanded(row.Group.ID, false)
		}
		// Jump to the parent header
		if row.Kind == RowNote && row.Nested {
			m.SelectGroup(row.Note.GroupID)
		}
		return true, nil, nil

	case key.Matches(keyMsg, SidebarKeys.Expand):
		row, ok := m.Selected()
		if ok && !m.Moving() && row.Kind == RowGroup && !row.Expanded {
			return true, nil, m.setExpanded(row.Group.ID, true)
		}
		return true, nil, nil

	default:
		// Everything else is ignored while an item is picked up
		return m.Moving(), nil, nil
	}

	if m.Moving() {
		m.hover()
	}
	return true, nil, nil
}

// SetSize updates the view dimensions
func (m *SidebarModel) SetSize(width, height int) {
	m.width = width
	m.height = height
	m.pager.SetPageSize(height)
}

// View renders the visible rows
func (m *SidebarModel) View(focused bool) string {
	var b strings.Builder

	src, dragging := m.ws.Drag.Source()
	marker, hasMarker := m.ws.Drag.Marker()
	active := m.ws.Session.ActiveID()
	dirty := m.ws.Session.IsDirty()

	start, end := m.pager.VisibleRange()
	for i := start; i < end; i++ {
		row := m.rows[i]
		selected := focused && i == m.pager.Cursor()

		if hasMarker && markerBefore(row, marker, src) {
			b.WriteString(m.renderMarker())
			b.WriteString("\n")
		}

		line := m.renderRow(row, selected, active, dirty)
		if dragging && isSource(row, src) {
			line = styles.RowDragged.Render(strings.TrimRight(line, " "))
		} else if hasMarker && markerInto(row, marker, src) {
			line = styles.DropMarker.Render("⇢ ") + line
		}
		b.WriteString(line)
		b.WriteString("\n")

		if hasMarker && markerAfter(row, marker, src) {
			b.WriteString(m.renderMarker())
			b.WriteString("\n")
		}
	}

	if len(m.rows) == 0 {
		b.WriteString(styles.MutedText.Render("No notes"))
	}
	return strings.TrimRight(b.String(), "\n")
}

func (m *SidebarModel) renderRow(row Row, selected bool, active domain.ID, dirty bool) string {
	width := max(m.width, 8)

	var text string
	var style = styles.NoteItem
	switch row.Kind {
	case RowGroup:
		prefix := styles.TreeCollapsed
		if row.Expanded {
			prefix = styles.TreeExpanded
		}
		text = prefix + truncate(row.Group.Name, width-8) + fmt.Sprintf(" (%d)", row.Count)
		style = styles.GroupHeader
	case RowUngrouped:
		text = "Ungrouped" + fmt.Sprintf(" (%d)", row.Count)
		style = styles.UngroupedHeader
	case RowNote:
		indent := ""
		if row.Nested {
			indent = "  "
		}
		mark := "  "
		if row.Note.ID == active {
			style = styles.NoteActive
			mark = "› "
			if dirty {
				mark = "● "
			}
		}
		text = indent + mark + truncate(row.Note.Title, width-len([]rune(indent))-2)
	}

	if selected {
		return styles.RowSelected.Render(padRight(text, width))
	}
	return style.Render(text)
}

func (m *SidebarModel) renderMarker() string {
	return styles.DropMarker.Render(strings.Repeat("─", max(m.width-2, 4)))
}

func isSource(row Row, src application.DragItem) bool {
	switch src.Kind {
	case application.ItemNote:
		return row.Kind == RowNote && row.Note.ID == src.ID
	case application.ItemGroup:
		return row.Kind == RowGroup && row.Group.ID == src.ID
	}
	return false
}

func markerBefore(row Row, t application.DropTarget, src application.DragItem) bool {
	return t.Position == domain.PositionBefore && markerOn(row, t, src)
}

func markerAfter(row Row, t application.DropTarget, src application.DragItem) bool {
	return t.Position == domain.PositionAfter && markerOn(row, t, src)
}

// markerOn matches reorder targets, drawn as a line next to the row
func markerOn(row Row, t application.DropTarget, src application.DragItem) bool {
	switch {
	case t.Kind == application.DropOnNote:
		return row.Kind == RowNote && row.Note.ID == t.ID
	case t.Kind == application.DropOnGroup && src.Kind == application.ItemGroup:
		return row.Kind == RowGroup && row.Group.ID == t.ID
	}
	return false
}

// markerInto matches targets that take the dragged note in
func markerInto(row Row, t application.DropTarget, src application.DragItem) bool {
	if src.Kind != application.ItemNote {
		return false
	}
	switch t.Kind {
	case application.DropOnGroup:
		return row.Kind == RowGroup && row.Group.ID == t.ID
	case application.DropOnUngrouped:
		return row.Kind == RowUngrouped
	}
	return false
}

func padRight(s string, length int) string {
	n := len([]rune(s))
	if n >= length {
		return s
	}
	return s + strings.Repeat(" ", length-n)
}
