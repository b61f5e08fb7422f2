package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"simplenotes/internal/application/commands"
)

var renameCmd = &cobra.Command{
	Use:   "rename",
	Short: "Rename a note field or a group",
	Long: `Set a note's title or description, or a group's name.

A note field set this way no longer follows the note's content.

Examples:
  simplenotes-cli rename note 1718000000000 title "Weekly plan"
  simplenotes-cli rename note 1718000000000 description "What to ship"
  simplenotes-cli rename group 1718000000001 "Archive"`,
}

var renameNoteCmd = &cobra.Command{
	Use:   "note <note-id> <title|description> <value>",
	Short: "Set a note's title or description",
	Args:  cobra.ExactArgs(3),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := context.Background()
		renameCmd := commands.NewRenameNoteCommand(GetWorkspace(), args[0], args[1], args[2])
		result, err := renameCmd.Execute(ctx)
		if err != nil {
			return err
		}
		fmt.Println(result.Message)
		return nil
	},
}

var renameGroupCmd = &cobra.Command{
	Use:   "group <group-id> <name>",
	Short: "Rename a group",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := context.Background()
		renameCmd := commands.NewRenameGroupCommand(GetWorkspace(), args[0], args[1])
		result, err := renameCmd.Execute(ctx)
		if err != nil {
			return err
		}
		fmt.Println(result.Message)
		return nil
	},
}

func init() {
	renameCmd.AddCommand(renameNoteCmd)
	renameCmd.AddCommand(renameGroupCmd)
	rootCmd.AddCommand(renameCmd)
}
