package application

import "simplenotes/internal/domain"

// Re-export domain types for use by adapters
type (
	ID          = domain.ID
	Note        = domain.Note
	Group       = domain.Group
	Field       = domain.Field
	Position    = domain.Position
	FieldSource = domain.FieldSource
)

const (
	NoGroup          = domain.NoGroup
	FieldTitle       = domain.FieldTitle
	FieldDescription = domain.FieldDescription
	PositionBefore   = domain.PositionBefore
	PositionAfter    = domain.PositionAfter
)

// ParseID parses a decimal note or group ID
func ParseID(s string) (ID, error) {
	return domain.ParseID(s)
}

// ParseField parses "title" or "description"
func ParseField(s string) (Field, error) {
	return domain.ParseField(s)
}

// ParsePosition parses "before" or "after"
func ParsePosition(s string) (Position, error) {
	return domain.ParsePosition(s)
}
