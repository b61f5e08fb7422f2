package ports

import "os/exec"

// EditorOpener hands a note buffer to an external editor
type EditorOpener interface {
	// Edit runs the editor on text and returns the edited text.
	// It uses $EDITOR, then $VISUAL, falling back to common editors.
	Edit(text string) (string, error)

	// Prepare stages text for an editor process without running it.
	// This is useful for integrating with bubbletea's ExecProcess.
	Prepare(text string) (EditSession, error)
}

// EditSession is a prepared editor run over a temporary copy of a buffer
type EditSession interface {
	// Cmd is the editor process to run
	Cmd() *exec.Cmd

	// Result reads the edited text back and removes the temporary copy
	Result() (string, error)
}
