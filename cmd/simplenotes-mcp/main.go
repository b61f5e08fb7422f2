package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	mcpadapter "simplenotes/internal/adapters/mcp"
	"simplenotes/internal/bootstrap"
	"simplenotes/internal/config"
	"simplenotes/internal/logging"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "simplenotes-mcp: %v\n", err)
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

	// stdout carries the protocol, so logs go to stderr
	logger, err := logging.New(cfg, os.Stderr)
	if err != nil {
		return err
	}

	ws, err := bootstrap.OpenWorkspace(cfg, logger)
	if err != nil {
		return err
	}
	defer ws.Close()

	mcpServer := server.NewMCPServer(
		"simplenotes-mcp",
		"0.1.0",
		server.WithToolCapabilities(true),
	)

	mcpServer.AddTool(
		mcp.NewTool("ping",
			mcp.WithDescription("Health check, returns pong"),
		),
		func(_ context.Context, _ mcp.CallToolRequest) (*mcp.CallToolResult, error) {
			return mcp.NewToolResultText("pong"), nil
		},
	)

	nb := mcpadapter.NewNotebook(ws, logger)
	mcpadapter.RegisterReadTools(mcpServer, nb)
	mcpadapter.RegisterWriteTools(mcpServer, nb)

	logger.Info().Str("store", cfg.Store).Str("dir", cfg.Dir).Msg("serving MCP over stdio")
	return server.ServeStdio(mcpServer)
}
