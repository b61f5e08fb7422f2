package application

import "simplenotes/internal/domain"

// ItemKind is the kind of a dragged item
type ItemKind int

const (
	ItemNote ItemKind = iota
	ItemGroup
)

// DragItem is the item being dragged
type DragItem struct {
	Kind ItemKind
	ID   domain.ID
}

// DropKind is the kind of element under the dragged item
type DropKind int

const (
	DropOnNote DropKind = iota
	DropOnGroup
	DropOnUngrouped
)

// DropTarget is a candidate drop location. Position only matters for
// note and group targets.
type DropTarget struct {
	Kind     DropKind
	ID       domain.ID
	Position domain.Position
}

// DragController turns a drag gesture into store mutations
type DragController struct {
	notes  *NoteStore
	groups *GroupStore

	source *DragItem
	marker *DropTarget
}

func newDragController(notes *NoteStore, groups *GroupStore) *DragController {
	return &DragController{notes: notes, groups: groups}
}

// Begin starts dragging item
func (d *DragController) Begin(item DragItem) {
	d.source = &item
	d.marker = nil
}

// Source returns the dragged item
func (d *DragController) Source() (DragItem, bool) {
	if d.source == nil {
		return DragItem{}, false
	}
	return *d.source, true
}

// Active reports whether a drag is in progress
func (d *DragController) Active() bool {
	return d.source != nil
}

// Over records the insertion marker for target. The marker is display-only.
func (d *DragController) Over(target DropTarget) {
	if d.source == nil {
		return
	}
	if sameItem(*d.source, target) {
		d.marker = nil
		return
	}
	d.marker = &target
}

// Marker returns the insertion marker
func (d *DragController) Marker() (DropTarget, bool) {
	if d.marker == nil {
		return DropTarget{}, false
	}
	return *d.marker, true
}

// Cancel abandons the drag
func (d *DragController) Cancel() {
	d.source = nil
	d.marker = nil
}

// Drop applies the drag to target and ends it. Combinations with no
// defined meaning (a group onto a note, an item onto itself) are ignored
// and report false.
func (d *DragController) Drop(target DropTarget) (bool, error) {
	if d.source == nil {
		return false, nil
	}
	src := *d.source
	d.Cancel()

	if sameItem(src, target) {
		return false, nil
	}

	switch {
	case src.Kind == ItemNote && target.Kind == DropOnNote:
		return true, d.notes.Reorder(src.ID, target.ID, target.Position)

	case src.Kind == ItemNote && target.Kind == DropOnGroup:
		if !d.groups.Exists(target.ID) {
			return false, &NotFoundError{Kind: "group", ID: target.ID.String()}
		}
		if err := d.notes.MoveToGroup(src.ID, target.ID); err != nil {
			return true, err
		}
		return true, d.groups.SetExpanded(target.ID, true)

	case src.Kind == ItemNote && target.Kind == DropOnUngrouped:
		return true, d.notes.MoveToGroup(src.ID, domain.NoGroup)

	case src.Kind == ItemGroup && target.Kind == DropOnGroup:
		return true, d.groups.Reorder(src.ID, target.ID, target.Position)
	}
	return false, nil
}

func sameItem(src DragItem, target DropTarget) bool {
	switch {
	case src.Kind == ItemNote && target.Kind == DropOnNote:
		return src.ID == target.ID
	case src.Kind == ItemGroup && target.Kind == DropOnGroup:
		return src.ID == target.ID
	}
	return false
}
