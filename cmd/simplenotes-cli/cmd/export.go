package cmd

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"simplenotes/internal/adapters/export"
	"simplenotes/internal/application/commands"
	"simplenotes/internal/ports"
)

var (
	exportFormat string
	exportOut    string
)

var exportCmd = &cobra.Command{
	Use:   "export <note-id>",
	Short: "Export a note as markdown or HTML",
	Long: `Export a note as markdown with YAML frontmatter, or as a standalone
HTML page. Without --out the document is written to stdout. When --out is
a directory, the file is named after the note's title.

Examples:
  simplenotes-cli export 1718000000000
  simplenotes-cli export 1718000000000 --format html --out ~/exports`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := context.Background()

		renderer, err := rendererFor(exportFormat)
		if err != nil {
			return err
		}

		exportCmd := commands.NewExportNoteCommand(GetWorkspace(), renderer, args[0])
		result, err := exportCmd.Execute(ctx)
		if err != nil {
			return err
		}

		if exportOut == "" {
			_, err := cmd.OutOrStdout().Write(result.Data)
			return err
		}

		path := exportOut
		if info, err := os.Stat(path); err == nil && info.IsDir() {
			path = filepath.Join(path, result.FileName)
		}
		if err := os.WriteFile(path, result.Data, 0644); err != nil {
			return fmt.Errorf("failed to write %s: %w", path, err)
		}
		fmt.Printf("Exported %s to %s\n", result.Note.Title, path)
		return nil
	},
}

func rendererFor(format string) (ports.NoteRenderer, error) {
	switch format {
	case "md", "markdown":
		return export.Markdown{}, nil
	case "html":
		return export.HTML{}, nil
	}
	return nil, fmt.Errorf("unknown format %q (want md or html)", format)
}

func init() {
	exportCmd.Flags().StringVarP(&exportFormat, "format", "F", "md", "output format (md or html)")
	exportCmd.Flags().StringVarP(&exportOut, "out", "o", "", "output file or directory")
	rootCmd.AddCommand(exportCmd)
}
