package main

import (
	"flag"
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"simplenotes/internal/adapters/editor"
	"simplenotes/internal/adapters/tui"
	"simplenotes/internal/bootstrap"
	"simplenotes/internal/config"
	"simplenotes/internal/logging"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	dirFlag := flag.String("dir", cfg.Dir, "data directory")
	storeFlag := flag.String("store", cfg.Store, "storage backend (bolt or sqlite)")
	flag.Parse()

	cfg.Dir = config.ExpandHome(*dirFlag)
	cfg.Store = *storeFlag
	if err := cfg.Validate(); err != nil {
		return err
	}

	// The terminal belongs to the TUI, so logs go to a file
	logger, closer, err := logging.NewFile(cfg)
	if err != nil {
		return err
	}
	defer closer.Close()

	ws, err := bootstrap.OpenWorkspace(cfg, logger)
	if err != nil {
		return err
	}
	defer ws.Close()

	app := tui.NewApp(ws, editor.NewOpener(), logger)
	p := tea.NewProgram(app, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return err
	}
	logger.Info().Msg("session ended")
	return nil
}
