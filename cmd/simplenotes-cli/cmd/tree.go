package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"simplenotes/internal/application"
	"simplenotes/internal/application/commands"
)

var treeCmd = &cobra.Command{
	Use:   "tree",
	Short: "Display the notebook outline",
	Long: `Display groups with their notes, then the ungrouped notes, as the
TUI sidebar shows them. Collapsed groups are listed without their notes
unless --all is given.

Example:
  simplenotes-cli tree`,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := context.Background()
		all, _ := cmd.Flags().GetBool("all")

		buildCmd := commands.NewBuildOutlineCommand(GetWorkspace())
		sections, err := buildCmd.Execute(ctx)
		if err != nil {
			return err
		}

		for _, sec := range sections {
			printSection(sec, all)
		}
		return nil
	},
}

func printSection(sec application.Section, all bool) {
	indent := ""
	if sec.Group != nil {
		marker := "▾"
		if !sec.Expanded {
			marker = "▸"
		}
		fmt.Printf("%s %s %s\n", marker, sec.Group.ID, sec.Group.Name)
		if !sec.Expanded && !all {
			return
		}
		indent = "  "
	}
	for _, n := range sec.Notes {
		fmt.Printf("%s%s %s\n", indent, n.ID, n.Title)
	}
}

func init() {
	treeCmd.Flags().BoolP("all", "a", false, "show notes of collapsed groups")
	rootCmd.AddCommand(treeCmd)
}
