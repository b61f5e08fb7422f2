package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"simplenotes/internal/application/commands"
)

var saveFile string

var saveCmd = &cobra.Command{
	Use:   "save <note-id>",
	Short: "Replace a note's content",
	Long: `Replace a note's content from a file or stdin. Title and description
are derived from the new content unless they were set by hand.

Examples:
  simplenotes-cli save 1718000000000 --file draft.md
  cat draft.md | simplenotes-cli save 1718000000000`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := context.Background()

		content, err := readInput(cmd, saveFile)
		if err != nil {
			return err
		}

		saveCmd := commands.NewSaveNoteCommand(GetWorkspace(), args[0], content)
		result, err := saveCmd.Execute(ctx)
		if err != nil {
			return err
		}
		fmt.Println(result.Message)
		return nil
	},
}

func init() {
	saveCmd.Flags().StringVarP(&saveFile, "file", "f", "-", "read content from a file (- for stdin)")
	rootCmd.AddCommand(saveCmd)
}
