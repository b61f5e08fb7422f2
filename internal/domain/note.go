package domain

import (
	"encoding/json"
	"fmt"
	"time"
)

// TimeLayout is the ISO-8601 layout used for persisted timestamps
const TimeLayout = "2006-01-02T15:04:05.000Z07:00"

// FieldSource records whether a derived field still follows the content
// or has been overridden by the user. The only transition is Auto -> Custom.
type FieldSource int

const (
	SourceAuto FieldSource = iota
	SourceCustom
)

func (s FieldSource) String() string {
	if s == SourceCustom {
		return "custom"
	}
	return "auto"
}

// IsCustom reports whether the field has been overridden
func (s FieldSource) IsCustom() bool {
	return s == SourceCustom
}

// Override returns the custom source; there is no way back to auto
func (s FieldSource) Override() FieldSource {
	return SourceCustom
}

func sourceFromFlag(custom bool) FieldSource {
	if custom {
		return SourceCustom
	}
	return SourceAuto
}

// Field names a user-editable metadata field of a note
type Field int

const (
	FieldTitle Field = iota
	FieldDescription
)

func (f Field) String() string {
	switch f {
	case FieldTitle:
		return "title"
	case FieldDescription:
		return "description"
	default:
		return fmt.Sprintf("Field(%d)", int(f))
	}
}

// ParseField parses "title" or "description"
func ParseField(s string) (Field, error) {
	switch s {
	case "title":
		return FieldTitle, nil
	case "description":
		return FieldDescription, nil
	default:
		return 0, fmt.Errorf("unknown field %q (expected title or description)", s)
	}
}

// Note is a single markdown document with derived or custom metadata
type Note struct {
	ID                ID
	Title             string
	Content           string
	Description       string
	CreatedAt         time.Time
	UpdatedAt         time.Time
	TitleSource       FieldSource
	DescriptionSource FieldSource
	GroupID           ID // NoGroup when ungrouped
}

// HasGroup reports whether the note belongs to a group
func (n *Note) HasGroup() bool {
	return n.GroupID != NoGroup
}

// ApplyContent replaces the content and re-derives every field that
// still follows it
func (n *Note) ApplyContent(content string, now time.Time) {
	n.Content = content
	n.UpdatedAt = now
	if !n.TitleSource.IsCustom() {
		n.Title = DeriveTitle(content)
	}
	if !n.DescriptionSource.IsCustom() {
		n.Description = DeriveDescription(content)
	}
}

// SetField overrides a metadata field and stops its derivation
func (n *Note) SetField(field Field, value string, now time.Time) {
	switch field {
	case FieldTitle:
		n.Title = value
		n.TitleSource = n.TitleSource.Override()
	case FieldDescription:
		n.Description = value
		n.DescriptionSource = n.DescriptionSource.Override()
	}
	n.UpdatedAt = now
}

type noteJSON struct {
	ID                  ID     `json:"id"`
	Title               string `json:"title"`
	Content             string `json:"content"`
	Description         string `json:"description"`
	CreatedAt           string `json:"createdAt"`
	UpdatedAt           string `json:"updatedAt"`
	IsTitleCustom       bool   `json:"isTitleCustom"`
	IsDescriptionCustom bool   `json:"isDescriptionCustom"`
	GroupID             *ID    `json:"groupId"`
}

// MarshalJSON encodes the note in its persisted shape
func (n Note) MarshalJSON() ([]byte, error) {
	out := noteJSON{
		ID:                  n.ID,
		Title:               n.Title,
		Content:             n.Content,
		Description:         n.Description,
		CreatedAt:           FormatTime(n.CreatedAt),
		UpdatedAt:           FormatTime(n.UpdatedAt),
		IsTitleCustom:       n.TitleSource.IsCustom(),
		IsDescriptionCustom: n.DescriptionSource.IsCustom(),
	}
	if n.HasGroup() {
		gid := n.GroupID
		out.GroupID = &gid
	}
	return json.Marshal(out)
}

// UnmarshalJSON decodes the persisted shape
func (n *Note) UnmarshalJSON(data []byte) error {
	var in noteJSON
	if err := json.Unmarshal(data, &in); err != nil {
		return err
	}

	created, err := ParseTime(in.CreatedAt)
	if err != nil {
		return fmt.Errorf("note %d createdAt: %w", in.ID, err)
	}
	updated, err := ParseTime(in.UpdatedAt)
	if err != nil {
		return fmt.Errorf("note %d updatedAt: %w", in.ID, err)
	}

	*n = Note{
		ID:                in.ID,
		Title:             in.Title,
		Content:           in.Content,
		Description:       in.Description,
		CreatedAt:         created,
		UpdatedAt:         updated,
		TitleSource:       sourceFromFlag(in.IsTitleCustom),
		DescriptionSource: sourceFromFlag(in.IsDescriptionCustom),
	}
	if in.GroupID != nil {
		n.GroupID = *in.GroupID
	}
	return nil
}

// FormatTime renders t in TimeLayout (UTC, millisecond precision)
func FormatTime(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.UTC().Format(TimeLayout)
}

// ParseTime parses an ISO-8601 timestamp; empty input yields the zero time
func ParseTime(s string) (time.Time, error) {
	if s == "" {
		return time.Time{}, nil
	}
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		return time.Time{}, err
	}
	return t.UTC(), nil
}
