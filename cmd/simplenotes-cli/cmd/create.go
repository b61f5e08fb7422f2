package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"simplenotes/internal/application/commands"
)

var (
	createGroupID string
	createFile    string
)

var createCmd = &cobra.Command{
	Use:   "create",
	Short: "Create a note or group",
	Long: `Create a new note or group.

Examples:
  simplenotes-cli create note
  simplenotes-cli create note --group 1718000000000 --file plan.md
  echo "# Quick idea" | simplenotes-cli create note --file -
  simplenotes-cli create group "Work"`,
}

var createNoteCmd = &cobra.Command{
	Use:   "note",
	Short: "Create a note and make it the last opened one",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := context.Background()

		content := ""
		if createFile != "" {
			data, err := readInput(cmd, createFile)
			if err != nil {
				return err
			}
			content = data
		}

		createCmd := commands.NewCreateNoteCommand(GetWorkspace(), createGroupID, content)
		result, err := createCmd.Execute(ctx)
		if err != nil {
			return err
		}
		fmt.Println(result.Message)
		return nil
	},
}

var createGroupCmd = &cobra.Command{
	Use:   "group <name>",
	Short: "Create a group",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := context.Background()
		createCmd := commands.NewCreateGroupCommand(GetWorkspace(), args[0])
		result, err := createCmd.Execute(ctx)
		if err != nil {
			return err
		}
		fmt.Println(result.Message)
		return nil
	},
}

func init() {
	createNoteCmd.Flags().StringVarP(&createGroupID, "group", "g", "", "group ID to create the note in")
	createNoteCmd.Flags().StringVarP(&createFile, "file", "f", "", "read content from a file (- for stdin)")

	createCmd.AddCommand(createNoteCmd)
	createCmd.AddCommand(createGroupCmd)
	rootCmd.AddCommand(createCmd)
}
