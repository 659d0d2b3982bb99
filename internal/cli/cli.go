// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// cli.go - CLI parsing and command dispatch for jdiff.
package cli

import (
	"fmt"
	"strings"
)

// Version information (can be overridden at build time)
var (
	Version   = "0.1.0"
	GitCommit = "unknown"
	BuildDate = "unknown"
)

// Exit codes for the diff command. Scripts rely on these.
const (
	// ExitNoDiff indicates both documents compared equal
	ExitNoDiff = 0
	// ExitDifferences indicates at least one key differed
	ExitDifferences = 1
	// ExitError indicates a load, parse, or usage error
	ExitError = 2
)

// Command represents the CLI command to execute.
type Command int

const (
	CmdTUI Command = iota
	CmdDiff
	CmdHistory
	CmdConfig
	CmdVersion
	CmdHelp
)

// Args holds parsed CLI arguments.
type Args struct {
	// Global flags
	FileMode bool // -f / --files: compare fixed left.json / right.json
	Quiet    bool
	JSON     bool // Output in JSON format

	// Raw args (remaining after global flag parsing)
	Raw []string
}

const usageText = `jdiff - interactive JSON comparison for the terminal

Jdiff shows two JSON documents side by side and highlights which
top-level keys differ. Documents are edited in your own editor and
re-compared on demand, or loaded from fixed files and watched for
changes.

Usage:
  jdiff                      Start TUI, edit both sides in $EDITOR
  jdiff -f                   Start TUI on left.json / right.json
  jdiff diff LEFT RIGHT      One-shot comparison, print to stdout
  jdiff history [subcommand] Comparison history
  jdiff config [subcommand]  Configuration
  jdiff version              Show version
  jdiff help                 Show this help

Diff Command:
  jdiff diff LEFT RIGHT             Compare two files
    --format text|json|markdown     Output format (default: text)
    --asymmetric                    Highlight only the right side
    --no-history                    Skip history recording
  Exit codes: 0 no differences, 1 differences found, 2 error

History Commands:
  jdiff history                     List recent comparisons
  jdiff history list --limit N      List last N comparisons
  jdiff history show ID             Show one comparison (ID prefix ok)
  jdiff history clear               Delete all recorded comparisons
    --json                          Output in JSON format

Config Commands:
  jdiff config show                 Show effective configuration
  jdiff config path                 Print config file path
  jdiff config init                 Write a default config file

Global Flags:
  -f, --files     Fixed-file mode (left.json / right.json)
  -q, --quiet     Minimal output
  --json          Output in JSON format

Keys (TUI):
  a / b   Edit left / right document
  c       Clear both documents
  d       Run the comparison
  e       Export the last diff
  w       Toggle file watching (file mode)
  tab     Switch focused pane
  ?       Help overlay
  q       Quit

Environment:
  EDITOR            External editor (config override: editor.command)
  JDIFF_CONFIG      Alternate config file path
  JDIFF_EDITOR      Editor override
  JDIFF_NO_HISTORY  Disable history recording

Version: %s
`

// PrintUsage prints the usage/help text.
func PrintUsage() {
	fmt.Printf(usageText, Version)
}

// PrintVersion prints version information.
func PrintVersion() {
	fmt.Printf("jdiff version %s\n", Version)
	fmt.Printf("  Git commit: %s\n", GitCommit)
	fmt.Printf("  Build date: %s\n", BuildDate)
}

// Parse parses command-line arguments and returns the command and args.
func Parse(argv []string) (Command, Args) {
	remaining, parsed := parseGlobalFlags(argv)

	// No remaining args: default to TUI
	if len(remaining) == 0 {
		return CmdTUI, parsed
	}

	cmd := strings.ToLower(remaining[0])
	remaining = remaining[1:]
	parsed.Raw = remaining

	switch cmd {
	case "tui":
		return CmdTUI, parsed

	case "diff", "compare":
		return CmdDiff, parsed

	case "history", "hist":
		return CmdHistory, parsed

	case "config":
		return CmdConfig, parsed

	case "version", "-v", "--version":
		return CmdVersion, parsed

	case "help", "-h", "--help":
		return CmdHelp, parsed

	default:
		// Unknown word: treat "jdiff a.json b.json" as a diff
		parsed.Raw = append([]string{cmd}, remaining...)
		return CmdDiff, parsed
	}
}

// parseGlobalFlags extracts global flags and returns remaining args.
func parseGlobalFlags(args []string) ([]string, Args) {
	var remaining []string
	var parsed Args

	for _, arg := range args {
		switch arg {
		case "-f", "--files":
			parsed.FileMode = true
		case "-q", "--quiet":
			parsed.Quiet = true
		case "--json":
			parsed.JSON = true
		default:
			remaining = append(remaining, arg)
		}
	}

	return remaining, parsed
}
