package mcp

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
	"github.com/rs/zerolog"

	"simplenotes/internal/application"
	"simplenotes/internal/domain"
)

// Notebook serializes tool calls against one workspace. The stdio server
// may dispatch requests concurrently; the stores are not safe for that.
type Notebook struct {
	mu  sync.Mutex
	ws  *application.Workspace
	log zerolog.Logger
}

// NewNotebook wraps ws for use by the tool handlers
func NewNotebook(ws *application.Workspace, log zerolog.Logger) *Notebook {
	return &Notebook{ws: ws, log: log}
}

// handle adapts fn into a ToolHandlerFunc that holds the workspace lock
func (n *Notebook) handle(name string, fn func(ctx context.Context, ws *application.Workspace, req mcp.CallToolRequest) (*mcp.CallToolResult, error)) server.ToolHandlerFunc {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		n.mu.Lock()
		defer n.mu.Unlock()

		result, err := fn(ctx, n.ws, req)
		if result != nil && result.IsError {
			n.log.Warn().Str("tool", name).Msg("tool call failed")
		} else {
			n.log.Debug().Str("tool", name).Msg("tool call")
		}
		return result, err
	}
}

// --- helpers ---

func toolError(err error) (*mcp.CallToolResult, error) {
	return mcp.NewToolResultError(err.Error()), nil
}

func formatEntities[T any](entities []T, format func(T) string) (*mcp.CallToolResult, error) {
	if len(entities) == 0 {
		return mcp.NewToolResultText("No results."), nil
	}
	var sb strings.Builder
	for _, e := range entities {
		sb.WriteString(format(e))
		sb.WriteByte('\n')
	}
	return mcp.NewToolResultText(sb.String()), nil
}

func formatNote(n domain.Note) string {
	return fmt.Sprintf("%s  %s  %s", n.ID, n.Title, n.Description)
}

func formatNoteDetail(n domain.Note, group *domain.Group) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "id: %s\n", n.ID)
	fmt.Fprintf(&sb, "title: %s", n.Title)
	if n.TitleSource.IsCustom() {
		sb.WriteString(" (custom)")
	}
	fmt.Fprintf(&sb, "\ndescription: %s", n.Description)
	if n.DescriptionSource.IsCustom() {
		sb.WriteString(" (custom)")
	}
	sb.WriteByte('\n')
	if group != nil {
		fmt.Fprintf(&sb, "group: %s %s\n", group.ID, group.Name)
	}
	fmt.Fprintf(&sb, "created: %s\nupdated: %s\n\n", domain.FormatTime(n.CreatedAt), domain.FormatTime(n.UpdatedAt))
	sb.WriteString(n.Content)
	return sb.String()
}
