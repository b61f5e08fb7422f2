package domain

import (
	"slices"
	"testing"
)

func TestReorder(t *testing.T) {
	ident := func(s string) string { return s }

	tests := []struct {
		name   string
		list   []string
		source string
		target string
		pos    Position
		want   []string
	}{
		{
			name:   "move forward before target",
			list:   []string{"a", "b", "c", "d"},
			source: "a",
			target: "c",
			pos:    PositionBefore,
			want:   []string{"b", "a", "c", "d"},
		},
		{
			name:   "move forward after target",
			list:   []string{"a", "b", "c", "d"},
			source: "a",
			target: "c",
			pos:    PositionAfter,
			want:   []string{"b", "c", "a", "d"},
		},
		{
			name:   "move backward before target",
			list:   []string{"a", "b", "c", "d"},
			source: "d",
			target: "b",
			pos:    PositionBefore,
			want:   []string{"a", "d", "b", "c"},
		},
		{
			name:   "move to end",
			list:   []string{"a", "b", "c"},
			source: "a",
			target: "c",
			pos:    PositionAfter,
			want:   []string{"b", "c", "a"},
		},
		{
			name:   "source equals target",
			list:   []string{"a", "b"},
			source: "a",
			target: "a",
			pos:    PositionAfter,
			want:   []string{"a", "b"},
		},
		{
			name:   "missing source",
			list:   []string{"a", "b"},
			source: "x",
			target: "a",
			pos:    PositionBefore,
			want:   []string{"a", "b"},
		},
		{
			name:   "missing target",
			list:   []string{"a", "b"},
			source: "a",
			target: "x",
			pos:    PositionAfter,
			want:   []string{"a", "b"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			original := slices.Clone(tt.list)
			got := Reorder(tt.list, tt.source, tt.target, tt.pos, ident)
			if !slices.Equal(got, tt.want) {
				t.Errorf("Reorder() = %v, want %v", got, tt.want)
			}
			if !slices.Equal(tt.list, original) {
				t.Errorf("input list was modified: %v", tt.list)
			}
		})
	}
}

func TestParsePosition(t *testing.T) {
	if p, err := ParsePosition("after"); err != nil || p != PositionAfter {
		t.Errorf("ParsePosition(after) = %v, %v", p, err)
	}
	if p, err := ParsePosition("before"); err != nil || p != PositionBefore {
		t.Errorf("ParsePosition(before) = %v, %v", p, err)
	}
	if _, err := ParsePosition("inside"); err == nil {
		t.Error("expected error for unknown position")
	}
}
