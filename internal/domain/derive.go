package domain

import "strings"

const (
	UntitledNote = "Untitled Note"

	maxTitleLength       = 80
	maxDescriptionLength = 80
	fallbackDescLength   = 50
)

// DeriveTitle returns the first non-blank line with heading markers stripped
func DeriveTitle(content string) string {
	line, _ := firstContentLine(strings.Split(content, "\n"), 0)
	if line == "" {
		return UntitledNote
	}
	return truncateRunes(line, maxTitleLength)
}

// DeriveDescription returns the first non-blank line after the title line.
// Without one it falls back to the start of the body with '#' removed.
func DeriveDescription(content string) string {
	lines := strings.Split(content, "\n")
	_, titleIdx := firstContentLine(lines, 0)
	if titleIdx >= 0 {
		if line, _ := firstContentLine(lines, titleIdx+1); line != "" {
			return truncateRunes(line, maxDescriptionLength)
		}
	}

	body := strings.Join(strings.Fields(strings.ReplaceAll(content, "#", "")), " ")
	return truncateRunes(body, fallbackDescLength)
}

// firstContentLine finds the first line at or after start that is not
// empty once heading markers are stripped. The index is -1 if none is found.
func firstContentLine(lines []string, start int) (string, int) {
	for i := start; i < len(lines); i++ {
		if s := stripHeading(lines[i]); s != "" {
			return s, i
		}
	}
	return "", -1
}

func stripHeading(line string) string {
	return strings.TrimSpace(strings.TrimLeft(strings.TrimSpace(line), "#"))
}

func truncateRunes(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return strings.TrimSpace(string(r[:n]))
}
