package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"simplenotes/internal/adapters/editor"
	"simplenotes/internal/application/commands"
)

var editCmd = &cobra.Command{
	Use:   "edit <note-id>",
	Short: "Edit a note in $EDITOR",
	Long: `Open a note's content in an external editor and save the result.

The editor is taken from $EDITOR, then $VISUAL, falling back to nvim, vim,
vi, or nano. Leaving the content unchanged does not touch the note.

Example:
  simplenotes-cli edit 1718000000000`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := context.Background()
		ws := GetWorkspace()

		showCmd := commands.NewShowNoteCommand(ws, args[0])
		current, err := showCmd.Execute(ctx)
		if err != nil {
			return err
		}

		edited, err := editor.NewOpener().Edit(current.Note.Content)
		if err != nil {
			return err
		}
		if edited == current.Note.Content {
			fmt.Println("No changes")
			return nil
		}

		saveCmd := commands.NewSaveNoteCommand(ws, args[0], edited)
		result, err := saveCmd.Execute(ctx)
		if err != nil {
			return err
		}
		fmt.Println(result.Message)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(editCmd)
}
