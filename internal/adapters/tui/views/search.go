package views

import (
	"context"
	"fmt"
	"strings"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"simplenotes/internal/adapters/tui/styles"
	"simplenotes/internal/application"
	"simplenotes/internal/application/commands"
	"simplenotes/internal/domain"
)

// SearchKeyMap defines key bindings for the search view
type SearchKeyMap struct {
	Up     key.Binding
	Down   key.Binding
	Select key.Binding
	CopyID key.Binding
	Cancel key.Binding
}

var SearchKeys = SearchKeyMap{
	Up: key.NewBinding(
		key.WithKeys("up", "ctrl+p"),
		key.WithHelp("↑", "up"),
	),
	Down: key.NewBinding(
		key.WithKeys("down", "ctrl+n"),
		key.WithHelp("↓", "down"),
	),
	Select: key.NewBinding(
		key.WithKeys("enter"),
		key.WithHelp("enter", "open"),
	),
	CopyID: key.NewBinding(
		key.WithKeys("ctrl+y"),
		key.WithHelp("ctrl+y", "copy ID"),
	),
	Cancel: key.NewBinding(
		key.WithKeys("esc"),
		key.WithHelp("esc", "cancel"),
	),
}

const maxSearchResults = 10

// SearchModel is the model for the search view. Searches run inside
// Update because the workspace is not safe for concurrent use.
type SearchModel struct {
	ws      *application.Workspace
	input   textinput.Model
	results []commands.SearchResult
	cursor  int
	flash   Flash
	width   int
	height  int
}

// NewSearchModel creates a new search view model
func NewSearchModel(ws *application.Workspace) *SearchModel {
	input := textinput.New()
	input.Placeholder = "Search notes..."
	input.Focus()

	return &SearchModel{
		ws:    ws,
		input: input,
	}
}

// Init initializes the search view
func (m *SearchModel) Init() tea.Cmd {
	return textinput.Blink
}

// Reset resets the search view
func (m *SearchModel) Reset() {
	m.input.SetValue("")
	m.results = nil
	m.cursor = 0
	m.flash.Clear()
	m.input.Focus()
}

// Results returns the current matches
func (m *SearchModel) Results() []commands.SearchResult {
	return m.results
}

// Update handles messages for the search view
func (m *SearchModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		m.flash.Clear()
		switch {
		case key.Matches(msg, SearchKeys.Cancel):
			return m, func() tea.Msg {
				return SwitchToMainMsg{}
			}

		case key.Matches(msg, SearchKeys.Up):
			if m.cursor > 0 {
				m.cursor--
			}
			return m, nil

		case key.Matches(msg, SearchKeys.Down):
			if m.cursor < min(len(m.results), maxSearchResults)-1 {
				m.cursor++
			}
			return m, nil

		case key.Matches(msg, SearchKeys.CopyID):
			if n, ok := m.selected(); ok {
				if err := clipboard.WriteAll(n.ID.String()); err != nil {
					m.flash.Set("Copy failed: "+err.Error(), true)
				} else {
					m.flash.Set("Copied "+n.ID.String(), false)
				}
			}
			return m, nil

		case key.Matches(msg, SearchKeys.Select):
			if n, ok := m.selected(); ok {
				id := n.ID
				return m, func() tea.Msg {
					return SearchSelectMsg{NoteID: id}
				}
			}
			return m, nil
		}
	}

	var cmd tea.Cmd
	before := m.input.Value()
	m.input, cmd = m.input.Update(msg)
	if query := m.input.Value(); query != before {
		m.search(query)
	}
	return m, cmd
}

func (m *SearchModel) search(query string) {
	m.cursor = 0
	results, err := commands.NewSearchNotesCommand(m.ws, query).Execute(context.Background())
	if err != nil {
		m.results = nil
		m.flash.SetError(err)
		return
	}
	m.results = results
}

func (m *SearchModel) selected() (domain.Note, bool) {
	if m.cursor >= 0 && m.cursor < len(m.results) {
		return m.results[m.cursor].Note, true
	}
	return domain.Note{}, false
}

// SearchSelectMsg is sent when a search result is chosen
type SearchSelectMsg struct {
	NoteID domain.ID
}

// View renders the search view
func (m *SearchModel) View() string {
	var b strings.Builder

	b.WriteString(styles.Title.Render("Search"))
	b.WriteString("\n\n")

	b.WriteString(styles.InputFocused.Render(m.input.View()))
	b.WriteString("\n\n")

	if len(m.results) == 0 {
		if len(strings.TrimSpace(m.input.Value())) >= 2 {
			b.WriteString(styles.MutedText.Render("No results found"))
		} else {
			b.WriteString(styles.MutedText.Render("Type at least 2 characters to search"))
		}
	} else {
		b.WriteString(styles.Subtitle.Render(fmt.Sprintf("%d results", len(m.results))))
		b.WriteString("\n\n")

		shown := min(len(m.results), maxSearchResults)
		for i := 0; i < shown; i++ {
			b.WriteString(m.renderResult(m.results[i], i == m.cursor))
			b.WriteString("\n")
		}

		if len(m.results) > maxSearchResults {
			b.WriteString(styles.MutedText.Render(fmt.Sprintf("... and %d more", len(m.results)-maxSearchResults)))
		}
	}

	b.WriteString("\n\n")
	if m.flash.Text != "" {
		b.WriteString(m.flash.View())
		b.WriteString("\n")
	}
	b.WriteString(RenderHelpLine(SearchKeys.Up, SearchKeys.Down, SearchKeys.Select, SearchKeys.CopyID, SearchKeys.Cancel))

	return styles.App.Render(b.String())
}

func (m *SearchModel) renderResult(result commands.SearchResult, selected bool) string {
	group := ""
	if g, ok := m.ws.Groups.Get(result.Note.GroupID); ok {
		group = " [" + g.Name + "]"
	}
	text := fmt.Sprintf("%s%s", result.Note.Title, group)

	if selected {
		return styles.RowSelected.Render(text)
	}
	return text + " " + styles.NoteDescription.Render(truncate(result.Note.Description, 40))
}

// SetSize updates the view dimensions
func (m *SearchModel) SetSize(width, height int) {
	m.width = width
	m.height = height
}
