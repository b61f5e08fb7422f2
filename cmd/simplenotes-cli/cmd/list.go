package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"simplenotes/internal/application/commands"
)

var listGroupID string

var listCmd = &cobra.Command{
	Use:   "list [notes|groups]",
	Short: "List notes or groups",
	Long: `List notes or groups in sidebar order.

Examples:
  simplenotes-cli list notes
  simplenotes-cli list notes --group 1718000000000
  simplenotes-cli list notes --group none
  simplenotes-cli list groups`,
}

var listNotesCmd = &cobra.Command{
	Use:   "notes",
	Short: "List notes",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := context.Background()
		listCmd := commands.NewListNotesCommand(GetWorkspace(), listGroupID)
		notes, err := listCmd.Execute(ctx)
		if err != nil {
			return err
		}

		active := GetWorkspace().Session.ActiveID()
		for _, n := range notes {
			marker := " "
			if n.ID == active {
				marker = "*"
			}
			fmt.Printf("%s %s %s\n", marker, n.ID, n.Title)
		}
		return nil
	},
}

var listGroupsCmd = &cobra.Command{
	Use:   "groups",
	Short: "List groups",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := context.Background()
		listCmd := commands.NewListGroupsCommand(GetWorkspace())
		groups, err := listCmd.Execute(ctx)
		if err != nil {
			return err
		}

		for _, g := range groups {
			state := "+"
			if g.Expanded {
				state = "-"
			}
			fmt.Printf("%s %s %s (%d)\n", state, g.Group.ID, g.Group.Name, g.NoteCount)
		}
		return nil
	},
}

func init() {
	listNotesCmd.Flags().StringVarP(&listGroupID, "group", "g", "", `only list this group ("none" for ungrouped)`)

	listCmd.AddCommand(listNotesCmd)
	listCmd.AddCommand(listGroupsCmd)
	rootCmd.AddCommand(listCmd)
}
