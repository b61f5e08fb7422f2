package cmd

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"simplenotes/internal/application/commands"
)

var searchLimit int

var searchCmd = &cobra.Command{
	Use:   "search <query>",
	Short: "Search notes",
	Long: `Search note titles and descriptions with fuzzy matching, and note
content by substring. Results are sorted by relevance.

Examples:
  simplenotes-cli search plan
  simplenotes-cli search "release notes" --limit 5`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := context.Background()
		searchCmd := commands.NewSearchNotesCommand(GetWorkspace(), strings.Join(args, " "))
		results, err := searchCmd.Execute(ctx)
		if err != nil {
			return err
		}

		if len(results) == 0 {
			fmt.Println("No matches")
			return nil
		}
		for i, r := range results {
			if searchLimit > 0 && i >= searchLimit {
				break
			}
			fmt.Printf("%4d  %s %s\n", r.Score, r.Note.ID, r.Note.Title)
		}
		return nil
	},
}

func init() {
	searchCmd.Flags().IntVarP(&searchLimit, "limit", "n", 0, "maximum number of results (0 for all)")
	rootCmd.AddCommand(searchCmd)
}
