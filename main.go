// jdiff - interactive side-by-side JSON comparison for the terminal.
//
// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later
package main

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/jeranaias/jdiff-tui/internal/cli"
	"github.com/jeranaias/jdiff-tui/internal/config"
	"github.com/jeranaias/jdiff-tui/internal/document"
	"github.com/jeranaias/jdiff-tui/internal/history"
	"github.com/jeranaias/jdiff-tui/internal/ui/diffview"
)

// Version information (set at build time)
var (
	Version   = "0.1.0"
	GitCommit = "unknown"
	BuildDate = "unknown"
)

func init() {
	// Sync version info with cli package
	cli.Version = Version
	cli.GitCommit = GitCommit
	cli.BuildDate = BuildDate
}

func main() {
	cmd, args := cli.Parse(os.Args[1:])

	switch cmd {
	case cli.CmdTUI:
		runTUI(args)
	case cli.CmdDiff:
		os.Exit(cli.HandleDiff(args))
	case cli.CmdHistory:
		os.Exit(cli.HandleHistory(args))
	case cli.CmdConfig:
		os.Exit(cli.HandleConfig(args))
	case cli.CmdVersion:
		cli.PrintVersion()
	case cli.CmdHelp:
		cli.PrintUsage()
	default:
		runTUI(args)
	}
}

// runTUI starts the interactive comparison view.
func runTUI(args cli.Args) {
	cfg := config.Global()

	ws, err := document.NewWorkspace()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	defer ws.Close()

	// Fixed-file mode loads the configured source files up front. A
	// missing or malformed file is a startup failure, not an empty pane.
	leftPath := cfg.Files.Left
	rightPath := cfg.Files.Right
	if args.FileMode {
		if err := ws.LoadFixed(leftPath, rightPath); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			ws.Close()
			os.Exit(1)
		}
	}

	// History recording is best effort; the comparison view works
	// without a store.
	var store *history.Store
	if cfg.History.Enabled {
		store, err = history.Open(cfg.History.Path)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Warning: history disabled: %v\n", err)
		} else {
			defer store.Close()
		}
	}

	m := diffview.New(cfg, ws, store, args.FileMode, leftPath, rightPath)

	p := tea.NewProgram(
		m,
		tea.WithAltScreen(),
	)

	if _, err := p.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error running jdiff: %v\n", err)
		ws.Close()
		os.Exit(1)
	}
}
