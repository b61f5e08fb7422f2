package tui

import "github.com/charmbracelet/bubbles/key"

// AppKeyMap defines the main view key bindings
type AppKeyMap struct {
	Open        key.Binding
	New         key.Binding
	NewGroup    key.Binding
	Rename      key.Binding
	Describe    key.Binding
	Delete      key.Binding
	Move        key.Binding
	Search      key.Binding
	FocusEditor key.Binding
	Blur        key.Binding
	Save        key.Binding
	External    key.Binding
	Preview     key.Binding
	Yank        key.Binding
	YankEditor  key.Binding
	AutoSave    key.Binding
	Help        key.Binding
	Quit        key.Binding
	ForceQuit   key.Binding
}

var AppKeys = AppKeyMap{
	Open: key.NewBinding(
		key.WithKeys("enter"),
		key.WithHelp("enter", "open/toggle"),
	),
	New: key.NewBinding(
		key.WithKeys("n"),
		key.WithHelp("n", "new note"),
	),
	NewGroup: key.NewBinding(
		key.WithKeys("g"),
		key.WithHelp("g", "new group"),
	),
	Rename: key.NewBinding(
		key.WithKeys("r"),
		key.WithHelp("r", "rename"),
	),
	Describe: key.NewBinding(
		key.WithKeys("D"),
		key.WithHelp("D", "description"),
	),
	Delete: key.NewBinding(
		key.WithKeys("x"),
		key.WithHelp("x", "delete"),
	),
	Move: key.NewBinding(
		key.WithKeys("m"),
		key.WithHelp("m", "move"),
	),
	Search: key.NewBinding(
		key.WithKeys("/"),
		key.WithHelp("/", "search"),
	),
	FocusEditor: key.NewBinding(
		key.WithKeys("tab", "i"),
		key.WithHelp("tab", "edit"),
	),
	Blur: key.NewBinding(
		key.WithKeys("esc"),
		key.WithHelp("esc", "list"),
	),
	Save: key.NewBinding(
		key.WithKeys("ctrl+s"),
		key.WithHelp("ctrl+s", "save"),
	),
	External: key.NewBinding(
		key.WithKeys("e"),
		key.WithHelp("e", "$EDITOR"),
	),
	Preview: key.NewBinding(
		key.WithKeys("p"),
		key.WithHelp("p", "preview"),
	),
	Yank: key.NewBinding(
		key.WithKeys("y"),
		key.WithHelp("y", "copy"),
	),
	YankEditor: key.NewBinding(
		key.WithKeys("alt+c"),
		key.WithHelp("alt+c", "copy"),
	),
	AutoSave: key.NewBinding(
		key.WithKeys("a"),
		key.WithHelp("a", "auto-save"),
	),
	Help: key.NewBinding(
		key.WithKeys("?"),
		key.WithHelp("?", "help"),
	),
	Quit: key.NewBinding(
		key.WithKeys("q"),
		key.WithHelp("q", "quit"),
	),
	ForceQuit: key.NewBinding(
		key.WithKeys("ctrl+c"),
		key.WithHelp("ctrl+c", "quit"),
	),
}
