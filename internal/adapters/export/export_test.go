package export

import (
	"strings"
	"testing"
	"time"

	"simplenotes/internal/domain"
)

func sampleNote() domain.Note {
	ts := time.Date(2026, 2, 3, 4, 5, 6, 0, time.UTC)
	return domain.Note{
		ID:          1770091506000,
		Title:       "Plan",
		Description: "Ship <it>",
		Content:     "# Plan\n\n| a | b |\n|---|---|\n| 1 | 2 |\n\n~~old~~",
		CreatedAt:   ts,
		UpdatedAt:   ts,
	}
}

func TestHTML_Render(t *testing.T) {
	out, err := HTML{}.Render(sampleNote(), "Work")
	if err != nil {
		t.Fatalf("Render() error = %v", err)
	}
	html := string(out)

	for _, want := range []string{
		"<title>Plan</title>",
		`content="Ship &lt;it&gt;"`,
		`data-group="Work"`,
		"<h1>Plan</h1>",
		"<table>",
		"<del>old</del>",
	} {
		if !strings.Contains(html, want) {
			t.Errorf("output missing %q:\n%s", want, html)
		}
	}
}

func TestMarkdown_RoundTrip(t *testing.T) {
	n := sampleNote()
	out, err := Markdown{}.Render(n, "Work")
	if err != nil {
		t.Fatalf("Render() error = %v", err)
	}
	if !strings.HasPrefix(string(out), "---\nid: 1770091506000\ntitle: Plan\n") {
		t.Errorf("unexpected header:\n%s", out)
	}

	fm, body, err := ParseMarkdown(out)
	if err != nil {
		t.Fatalf("ParseMarkdown() error = %v", err)
	}
	if fm.Title != n.Title || fm.Description != n.Description || fm.Group != "Work" {
		t.Errorf("frontmatter = %+v", fm)
	}
	if fm.Updated != "2026-02-03T04:05:06.000Z" {
		t.Errorf("Updated = %q", fm.Updated)
	}
	if body != n.Content {
		t.Errorf("body = %q, want %q", body, n.Content)
	}
}

func TestParseMarkdown(t *testing.T) {
	tests := []struct {
		name      string
		input     string
		wantTitle string
		wantBody  string
		wantErr   bool
	}{
		{
			name:     "no frontmatter",
			input:    "# Just text\n",
			wantBody: "# Just text\n",
		},
		{
			name:      "frontmatter",
			input:     "---\ntitle: Hi\n---\n\nBody\n",
			wantTitle: "Hi",
			wantBody:  "Body",
		},
		{
			name:      "windows line endings",
			input:     "---\r\ntitle: Hi\r\n---\r\nBody",
			wantTitle: "Hi",
			wantBody:  "Body",
		},
		{
			name:    "unterminated",
			input:   "---\ntitle: Hi\nBody",
			wantErr: true,
		},
		{
			name:    "bad yaml",
			input:   "---\ntitle: [oops\n---\nBody",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fm, body, err := ParseMarkdown([]byte(tt.input))
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseMarkdown() error = %v, wantErr %v", err, tt.wantErr)
			}
			if tt.wantErr {
				return
			}
			if fm.Title != tt.wantTitle || body != tt.wantBody {
				t.Errorf("got %q / %q, want %q / %q", fm.Title, body, tt.wantTitle, tt.wantBody)
			}
		})
	}
}
