package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"simplenotes/internal/application/commands"
)

var (
	moveBefore string
	moveAfter  string
	moveGroup  string
)

var moveCmd = &cobra.Command{
	Use:   "move",
	Short: "Reorder notes and groups",
	Long: `Move a note next to another note or into a group, or reorder groups.

A note dropped next to a note in another group joins that group.

Examples:
  simplenotes-cli move note 1718000000000 --before 1718000000005
  simplenotes-cli move note 1718000000000 --group 1718000000001
  simplenotes-cli move note 1718000000000 --group none
  simplenotes-cli move group 1718000000001 --after 1718000000002`,
}

var moveNoteCmd = &cobra.Command{
	Use:   "note <note-id>",
	Short: "Move a note",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := context.Background()
		target, pos, err := moveTarget()
		if err != nil {
			return err
		}
		if target != "" && moveGroup != "" {
			return fmt.Errorf("--group cannot be combined with --before or --after")
		}

		moveCmd := commands.NewMoveNoteCommand(GetWorkspace(), args[0], target, pos, moveGroup)
		result, err := moveCmd.Execute(ctx)
		if err != nil {
			return err
		}
		fmt.Println(result.Message)
		return nil
	},
}

var moveGroupCmd = &cobra.Command{
	Use:   "group <group-id>",
	Short: "Move a group",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := context.Background()
		target, pos, err := moveTarget()
		if err != nil {
			return err
		}

		moveCmd := commands.NewMoveGroupCommand(GetWorkspace(), args[0], target, pos)
		result, err := moveCmd.Execute(ctx)
		if err != nil {
			return err
		}
		fmt.Println(result.Message)
		return nil
	},
}

func moveTarget() (string, string, error) {
	switch {
	case moveBefore != "" && moveAfter != "":
		return "", "", fmt.Errorf("--before and --after are mutually exclusive")
	case moveBefore != "":
		return moveBefore, "before", nil
	case moveAfter != "":
		return moveAfter, "after", nil
	}
	return "", "", nil
}

func init() {
	for _, c := range []*cobra.Command{moveNoteCmd, moveGroupCmd} {
		c.Flags().StringVar(&moveBefore, "before", "", "place before this ID")
		c.Flags().StringVar(&moveAfter, "after", "", "place after this ID")
	}
	moveNoteCmd.Flags().StringVarP(&moveGroup, "group", "g", "", `move to the end of a group ("none" to ungroup)`)

	moveCmd.AddCommand(moveNoteCmd)
	moveCmd.AddCommand(moveGroupCmd)
	rootCmd.AddCommand(moveCmd)
}
