package cmd

import (
	"context"
	"fmt"

	"github.com/charmbracelet/glamour"
	"github.com/spf13/cobra"

	"simplenotes/internal/application/commands"
	"simplenotes/internal/domain"
)

var showRaw bool

var showCmd = &cobra.Command{
	Use:   "show <note-id>",
	Short: "Print a note",
	Long: `Print a note's metadata and content. Content is rendered for the
terminal unless --raw is given.

Examples:
  simplenotes-cli show 1718000000000
  simplenotes-cli show 1718000000000 --raw > note.md`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := context.Background()
		showCmd := commands.NewShowNoteCommand(GetWorkspace(), args[0])
		result, err := showCmd.Execute(ctx)
		if err != nil {
			return err
		}

		n := result.Note
		if showRaw {
			fmt.Print(n.Content)
			return nil
		}

		fmt.Printf("ID:          %s\n", n.ID)
		fmt.Printf("Title:       %s (%s)\n", n.Title, n.TitleSource)
		fmt.Printf("Description: %s (%s)\n", n.Description, n.DescriptionSource)
		if result.Group != nil {
			fmt.Printf("Group:       %s\n", result.Group.Name)
		}
		fmt.Printf("Created:     %s\n", domain.FormatTime(n.CreatedAt))
		fmt.Printf("Updated:     %s\n\n", domain.FormatTime(n.UpdatedAt))

		out, err := glamour.Render(n.Content, "auto")
		if err != nil {
			fmt.Println(n.Content)
			return nil
		}
		fmt.Print(out)
		return nil
	},
}

func init() {
	showCmd.Flags().BoolVar(&showRaw, "raw", false, "print the stored markdown only")
	rootCmd.AddCommand(showCmd)
}
