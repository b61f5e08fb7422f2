package cmd

import (
	"fmt"
	"os"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"simplenotes/internal/application"
	"simplenotes/internal/bootstrap"
	"simplenotes/internal/config"
	"simplenotes/internal/logging"
)

var (
	dataDir   string
	storeName string
	cfg       config.Config
	logger    zerolog.Logger
	ws        *application.Workspace
)

// skipWorkspace lists commands that run without opening the notebook
var skipWorkspace = map[string]bool{
	"help":       true,
	"completion": true,
	"migrate":    true,
}

var rootCmd = &cobra.Command{
	Use:   "simplenotes-cli",
	Short: "CLI for a grouped markdown notebook",
	Long: `simplenotes-cli manages the same notebook as the simplenotes TUI.

It provides commands to create, edit, group, reorder, search, and export
notes without opening the full-screen editor.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		var err error
		cfg, err = config.Load()
		if err != nil {
			return err
		}
		if cmd.Flags().Changed("dir") {
			cfg.Dir = config.ExpandHome(dataDir)
		}
		if cmd.Flags().Changed("store") {
			cfg.Store = storeName
		}
		if err := cfg.Validate(); err != nil {
			return err
		}

		logger, err = logging.New(cfg, os.Stderr)
		if err != nil {
			return err
		}

		// Skip initialization for commands that do not touch the notebook
		if skipWorkspace[cmd.Name()] {
			return nil
		}
		ws, err = bootstrap.OpenWorkspace(cfg, logger)
		return err
	},
	PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
		if ws == nil {
			return nil
		}
		return ws.Close()
	},
}

// Execute runs the root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		if ws != nil {
			_ = ws.Close()
		}
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&dataDir, "dir", "d", config.DataDir(), "data directory")
	rootCmd.PersistentFlags().StringVar(&storeName, "store", config.DefaultStore, "storage backend (bolt or sqlite)")
}

// GetWorkspace returns the opened notebook
func GetWorkspace() *application.Workspace {
	return ws
}
