package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"simplenotes/internal/bootstrap"
)

var migrateCmd = &cobra.Command{
	Use:   "migrate <from> <to>",
	Short: "Copy the notebook between storage backends",
	Long: `Copy every stored key from one backend to the other inside the data
directory. The source is left untouched. Set SIMPLENOTES_STORE afterwards
to switch to the new backend.

Example:
  simplenotes-cli migrate bolt sqlite`,
	Args:      cobra.ExactArgs(2),
	ValidArgs: []string{"bolt", "sqlite"},
	RunE: func(cmd *cobra.Command, args []string) error {
		n, err := bootstrap.Migrate(cfg.Dir, args[0], args[1])
		if err != nil {
			return err
		}
		logger.Info().Str("from", args[0]).Str("to", args[1]).Int("keys", n).Msg("migrated")
		fmt.Printf("Copied %d keys from %s to %s\n", n, args[0], args[1])
		return nil
	},
}

func init() {
	rootCmd.AddCommand(migrateCmd)
}
