package cmd

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"simplenotes/internal/adapters/export"
	"simplenotes/internal/application"
	"simplenotes/internal/application/commands"
	"simplenotes/internal/domain"
)

var importCmd = &cobra.Command{
	Use:   "import <file.md>...",
	Short: "Import markdown files as notes",
	Long: `Create one note per markdown file.

Frontmatter written by "export" is honoured: a title or description that
differs from what the content would produce is kept as a custom value, and
the note is placed in the group of the same name, which is created when
missing.

Example:
  simplenotes-cli import ~/exports/*.md`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := context.Background()
		ws := GetWorkspace()

		for _, path := range args {
			n, err := importFile(ctx, ws, path)
			if err != nil {
				return fmt.Errorf("%s: %w", path, err)
			}
			fmt.Printf("Imported %s as %s %s\n", path, n.ID, n.Title)
		}
		return nil
	},
}

func importFile(ctx context.Context, ws *application.Workspace, path string) (domain.Note, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return domain.Note{}, err
	}
	fm, body, err := export.ParseMarkdown(data)
	if err != nil {
		return domain.Note{}, err
	}

	res, err := commands.NewImportNoteCommand(ws, fm.Group, fm.Title, fm.Description, body).Execute(ctx)
	if err != nil {
		return domain.Note{}, err
	}
	if res.GroupCreated {
		fmt.Printf("Created group %s\n", fm.Group)
	}
	return res.Note, nil
}

func init() {
	rootCmd.AddCommand(importCmd)
}
