package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"simplenotes/internal/application/commands"
)

var toggleCmd = &cobra.Command{
	Use:   "toggle <group-id> [expanded|collapsed]",
	Short: "Expand or collapse a group",
	Long: `Flip a group between expanded and collapsed, or set the state explicitly.

Examples:
  simplenotes-cli toggle 1718000000001
  simplenotes-cli toggle 1718000000001 collapsed`,
	Args: cobra.RangeArgs(1, 2),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := context.Background()

		var state *bool
		if len(args) == 2 {
			switch args[1] {
			case "expanded":
				v := true
				state = &v
			case "collapsed":
				v := false
				state = &v
			default:
				return fmt.Errorf("state must be expanded or collapsed, got: %s", args[1])
			}
		}

		toggleCmd := commands.NewToggleGroupCommand(GetWorkspace(), args[0], state)
		result, err := toggleCmd.Execute(ctx)
		if err != nil {
			return err
		}
		fmt.Println(result.Message)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(toggleCmd)
}
