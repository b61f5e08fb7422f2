package editor

import (
	"fmt"
	"os"
	"os/exec"
	"strings"

	"simplenotes/internal/ports"
)

// Opener implements ports.EditorOpener
type Opener struct {
	// lookup resolves an environment variable; tests swap it out
	lookup func(string) string
}

var _ ports.EditorOpener = (*Opener)(nil)

// NewOpener creates a new editor opener
func NewOpener() *Opener {
	return &Opener{lookup: os.Getenv}
}

// Edit runs the editor on a temporary copy of text and returns the result
func (o *Opener) Edit(text string) (string, error) {
	session, err := o.Prepare(text)
	if err != nil {
		return "", err
	}
	if err := session.Cmd().Run(); err != nil {
		_, _ = session.Result()
		return "", fmt.Errorf("editor exited with error: %w", err)
	}
	return session.Result()
}

// Prepare writes text to a temporary markdown file and returns the editor
// command for it. This is useful for integrating with bubbletea's ExecProcess.
func (o *Opener) Prepare(text string) (ports.EditSession, error) {
	argv := o.findEditor()
	if len(argv) == 0 {
		return nil, fmt.Errorf("no editor found: set $EDITOR environment variable")
	}

	f, err := os.CreateTemp("", "simplenotes-*.md")
	if err != nil {
		return nil, fmt.Errorf("failed to create temp file: %w", err)
	}
	if _, err := f.WriteString(text); err != nil {
		f.Close()
		os.Remove(f.Name())
		return nil, fmt.Errorf("failed to write temp file: %w", err)
	}
	if err := f.Close(); err != nil {
		os.Remove(f.Name())
		return nil, fmt.Errorf("failed to write temp file: %w", err)
	}

	args := append(argv[1:], f.Name())
	cmd := exec.Command(argv[0], args...)
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr

	return &session{cmd: cmd, path: f.Name()}, nil
}

// findEditor returns the editor command line to use. Values such as
// "code --wait" are split into arguments.
func (o *Opener) findEditor() []string {
	// Check $EDITOR first
	if editor := strings.Fields(o.lookup("EDITOR")); len(editor) > 0 {
		return editor
	}

	// Check $VISUAL
	if visual := strings.Fields(o.lookup("VISUAL")); len(visual) > 0 {
		return visual
	}

	// Try common editors
	editors := []string{"nvim", "vim", "vi", "nano"}
	for _, editor := range editors {
		if path, err := exec.LookPath(editor); err == nil {
			return []string{path}
		}
	}

	return nil
}

type session struct {
	cmd  *exec.Cmd
	path string
}

func (s *session) Cmd() *exec.Cmd { return s.cmd }

// Result reads the edited file back and removes it. Editors that append a
// final newline keep it; the caller decides whether it matters.
func (s *session) Result() (string, error) {
	defer os.Remove(s.path)

	data, err := os.ReadFile(s.path)
	if err != nil {
		return "", fmt.Errorf("failed to read edited file: %w", err)
	}
	return string(data), nil
}
