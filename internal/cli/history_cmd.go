// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// history_cmd.go - Comparison history commands.

package cli

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"github.com/jeranaias/jdiff-tui/internal/config"
	"github.com/jeranaias/jdiff-tui/internal/history"
)

// =============================================================================
// HISTORY COMMAND
// =============================================================================

// defaultHistoryLimit caps list output when --limit is not given.
const defaultHistoryLimit = 20

// HandleHistory runs "jdiff history [list|show ID|clear]".
func HandleHistory(args Args) int {
	p := NewArgParser(args.Raw)
	cfg := config.Global()
	jsonMode := args.JSON || p.BoolFlag("json")

	store, err := history.Open(cfg.History.Path)
	if err != nil {
		return fail(err)
	}
	defer store.Close()

	switch p.Subcommand() {
	case "", "list", "ls":
		return historyList(store, p.FlagIntOrDefault("limit", defaultHistoryLimit), jsonMode)

	case "show":
		id := p.Positional(1)
		if id == "" {
			return fail(fmt.Errorf("usage: jdiff history show ID"))
		}
		return historyShow(store, id, jsonMode)

	case "clear":
		if err := store.Clear(); err != nil {
			return fail(err)
		}
		fmt.Println("history cleared")
		return ExitNoDiff

	default:
		return fail(fmt.Errorf("unknown history subcommand: %s", p.Subcommand()))
	}
}

func historyList(store *history.Store, limit int, jsonMode bool) int {
	entries, err := store.List(limit)
	if err != nil {
		return fail(err)
	}

	if jsonMode {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		if err := enc.Encode(entries); err != nil {
			return fail(err)
		}
		return ExitNoDiff
	}

	if len(entries) == 0 {
		fmt.Println("no comparisons recorded")
		return ExitNoDiff
	}

	fmt.Println(RenderConditional(TitleStyle, "Comparison History"))
	for _, e := range entries {
		fmt.Printf("%s  %s  %s\n",
			RenderConditional(DimStyle, e.ID[:8]),
			e.CreatedAt.Format("2006-01-02 15:04:05"),
			e.Summary)
	}
	return ExitNoDiff
}

func historyShow(store *history.Store, id string, jsonMode bool) int {
	entry, err := store.Get(id)
	if err != nil {
		if errors.Is(err, history.ErrNotFound) {
			return fail(fmt.Errorf("no history entry matches %q", id))
		}
		return fail(err)
	}

	if jsonMode {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		if err := enc.Encode(entry); err != nil {
			return fail(err)
		}
		return ExitNoDiff
	}

	fmt.Printf("%s %s\n", RenderConditional(LabelStyle, "ID"), entry.ID)
	fmt.Printf("%s %s\n", RenderConditional(LabelStyle, "Date"), entry.CreatedAt.Format("2006-01-02 15:04:05"))
	fmt.Printf("%s %s\n", RenderConditional(LabelStyle, "Left hash"), entry.LeftHash)
	fmt.Printf("%s %s\n", RenderConditional(LabelStyle, "Right hash"), entry.RightHash)
	fmt.Printf("%s %s\n", RenderConditional(LabelStyle, "Summary"), entry.Summary)
	if entry.Rendered != "" {
		fmt.Println()
		fmt.Print(entry.Rendered)
	}
	return ExitNoDiff
}
