// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package cli provides command-line parsing and the non-interactive
// commands for jdiff.
//
// # Key Types
//
//   - Command: enumeration of the available CLI commands
//   - Args: parsed command-line arguments with global flags
//   - ArgParser: unified flag/subcommand parsing for command handlers
//
// # Usage
//
// Parse and dispatch:
//
//	cmd, args := cli.Parse()
//	switch cmd {
//	case cli.CmdDiff:
//	    os.Exit(cli.HandleDiff(args))
//	case cli.CmdHistory:
//	    os.Exit(cli.HandleHistory(args))
//	// ... other commands
//	}
//
// # Commands Overview
//
//   - (default): start the interactive TUI
//   - diff: one-shot comparison of two files with exit codes for scripting
//   - history: list, show, and clear recorded comparisons
//   - config: show and initialize the configuration file
//
// Output is plain text when stdout is not a terminal; history supports
// --json for machine consumption.
package cli
