package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"simplenotes/internal/application/commands"
)

var deleteCmd = &cobra.Command{
	Use:   "delete",
	Short: "Delete a note or group",
	Long: `Delete a note or group.

Deleting a group keeps its notes; they move to the ungrouped area.

Examples:
  simplenotes-cli delete note 1718000000000
  simplenotes-cli delete group 1718000000001`,
}

var deleteNoteCmd = &cobra.Command{
	Use:   "note <note-id>",
	Short: "Delete a note",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := context.Background()
		deleteCmd := commands.NewDeleteNoteCommand(GetWorkspace(), args[0])
		result, err := deleteCmd.Execute(ctx)
		if err != nil {
			return err
		}
		fmt.Println(result.Message)
		return nil
	},
}

var deleteGroupCmd = &cobra.Command{
	Use:   "group <group-id>",
	Short: "Delete a group and ungroup its notes",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := context.Background()
		deleteCmd := commands.NewDeleteGroupCommand(GetWorkspace(), args[0])
		result, err := deleteCmd.Execute(ctx)
		if err != nil {
			return err
		}
		fmt.Println(result.Message)
		return nil
	},
}

func init() {
	deleteCmd.AddCommand(deleteNoteCmd)
	deleteCmd.AddCommand(deleteGroupCmd)
	rootCmd.AddCommand(deleteCmd)
}
