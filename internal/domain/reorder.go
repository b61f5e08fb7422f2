package domain

import (
	"fmt"
	"slices"
)

// Position places a moved element relative to its target
type Position int

const (
	PositionBefore Position = iota
	PositionAfter
)

func (p Position) String() string {
	if p == PositionAfter {
		return "after"
	}
	return "before"
}

// ParsePosition parses "before" or "after"
func ParsePosition(s string) (Position, error) {
	switch s {
	case "before":
		return PositionBefore, nil
	case "after":
		return PositionAfter, nil
	default:
		return 0, fmt.Errorf("unknown position %q (expected before or after)", s)
	}
}

// Reorder returns a copy of list with the element identified by sourceID
// moved immediately before or after the element identified by targetID.
// When either ID is missing, or they are equal, the copy is unchanged.
func Reorder[T any, K comparable](list []T, sourceID, targetID K, pos Position, idOf func(T) K) []T {
	out := slices.Clone(list)
	if sourceID == targetID {
		return out
	}

	src := slices.IndexFunc(out, func(v T) bool { return idOf(v) == sourceID })
	if src < 0 || !slices.ContainsFunc(out, func(v T) bool { return idOf(v) == targetID }) {
		return out
	}

	moved := out[src]
	out = slices.Delete(out, src, src+1)

	dst := slices.IndexFunc(out, func(v T) bool { return idOf(v) == targetID })
	if pos == PositionAfter {
		dst++
	}
	return slices.Insert(out, dst, moved)
}
