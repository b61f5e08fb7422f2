package application

import (
	"fmt"
	"strings"

	"simplenotes/internal/domain"
)

// ValidateRequired checks if a string field is non-empty (after trimming whitespace).
// Returns a ValidationError if the field is empty.
func ValidateRequired(fieldName, value string) error {
	if strings.TrimSpace(value) == "" {
		// Format field name with spaces for error message (e.g., "noteID" -> "note ID")
		displayName := formatFieldName(fieldName)
		return &ValidationError{
			Field:   fieldName,
			Message: fmt.Sprintf("%s is required", displayName),
		}
	}
	return nil
}

// formatFieldName converts camelCase field names to space-separated words
// for more readable error messages (e.g., "groupID" -> "group ID")
func formatFieldName(fieldName string) string {
	replacements := map[string]string{
		"noteID":   "note ID",
		"groupID":  "group ID",
		"targetID": "target ID",
		"sourceID": "source ID",
		"name":     "name",
		"value":    "value",
		"field":    "field",
		"position": "position",
		"content":  "content",
		"query":    "query",
	}

	if formatted, ok := replacements[fieldName]; ok {
		return formatted
	}

	// Fallback: just return the field name as-is
	return fieldName
}

// ParseIDField parses a decimal note or group ID.
// Returns a ValidationError if the value is blank or malformed.
func ParseIDField(fieldName, value string) (domain.ID, error) {
	if err := ValidateRequired(fieldName, value); err != nil {
		return 0, err
	}
	id, err := domain.ParseID(value)
	if err != nil {
		return 0, &ValidationError{
			Field:   fieldName,
			Message: fmt.Sprintf("expected %s, got: %s", formatFieldName(fieldName), value),
		}
	}
	return id, nil
}
