// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// diff_cmd.go - One-shot comparison command for scripting.

package cli

import (
	"encoding/hex"
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"golang.org/x/crypto/blake2b"

	"github.com/jeranaias/jdiff-tui/internal/config"
	"github.com/jeranaias/jdiff-tui/internal/diff"
	"github.com/jeranaias/jdiff-tui/internal/export"
	"github.com/jeranaias/jdiff-tui/internal/history"
	"github.com/jeranaias/jdiff-tui/internal/jsonval"
	"github.com/jeranaias/jdiff-tui/internal/util"
)

// =============================================================================
// DIFF COMMAND
// =============================================================================

// HandleDiff runs "jdiff diff LEFT RIGHT" and returns the process exit
// code: ExitNoDiff, ExitDifferences, or ExitError.
func HandleDiff(args Args) int {
	p := NewArgParser(args.Raw)

	if p.PositionalCount() < 2 {
		return fail(fmt.Errorf("usage: jdiff diff LEFT RIGHT [--format text|json|markdown]"))
	}
	leftPath := p.Positional(0)
	rightPath := p.Positional(1)

	cfg := config.Global()

	leftRaw, leftVal, err := loadDocument(leftPath)
	if err != nil {
		return fail(err)
	}
	rightRaw, rightVal, err := loadDocument(rightPath)
	if err != nil {
		return fail(err)
	}

	opts := diff.Options{
		Asymmetric: p.BoolFlag("asymmetric") || cfg.UI.AsymmetricHighlight,
	}
	res := diff.Compare(leftVal, rightVal, opts)

	format := p.FlagOrDefault("format", cfg.Export.Format)
	if err := printResult(res, format, args.Quiet); err != nil {
		return fail(err)
	}

	if cfg.History.Enabled && !p.BoolFlag("no-history") {
		if err := recordComparison(cfg, res, leftRaw, rightRaw); err != nil {
			fmt.Fprintf(os.Stderr, "warning: history: %v\n", err)
		}
	}

	if res.Stats.Changed == 0 {
		return ExitNoDiff
	}
	return ExitDifferences
}

// loadDocument reads and parses one input file, keeping the raw bytes
// for content hashing.
func loadDocument(path string) ([]byte, jsonval.Value, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, nil, fmt.Errorf("%w: %s", jsonval.ErrRead, path)
	}
	val, err := jsonval.Parse(raw)
	if err != nil {
		return nil, nil, fmt.Errorf("%s: %w", path, err)
	}
	return raw, val, nil
}

// printResult writes the comparison to stdout in the requested format.
// Text output is colored only when stdout is a terminal.
func printResult(res diff.Result, format string, quiet bool) error {
	if format == "text" || format == "txt" {
		if !quiet {
			fmt.Print(renderColoredText(res))
		}
		fmt.Println(RenderConditional(DimStyle, res.Summary()))
		return nil
	}

	exp, err := export.ForFormat(format, export.DefaultOptions())
	if err != nil {
		return err
	}
	data, err := exp.Export(res)
	if err != nil {
		return err
	}
	_, err = os.Stdout.Write(data)
	return err
}

// renderColoredText renders aligned columns with per-line styling.
func renderColoredText(res diff.Result) string {
	width := 0
	for _, line := range res.Left {
		if w := util.StringWidth(line.Text); w > width {
			width = w
		}
	}

	var sb strings.Builder
	for i := range res.Left {
		left := res.Left[i]
		right := res.Right[i]
		sb.WriteString(RenderConditional(styleForLine(left.Style),
			left.Style.Marker()+util.PadRight(left.Text, width)))
		sb.WriteString(" | ")
		sb.WriteString(RenderConditional(styleForLine(right.Style),
			right.Style.Marker()+right.Text))
		sb.WriteString("\n")
	}
	return sb.String()
}

func styleForLine(s diff.LineStyle) lipgloss.Style {
	switch s {
	case diff.StyleChanged:
		return ChangedStyle
	case diff.StyleNeutral:
		return NeutralStyle
	default:
		return UnchangedStyle
	}
}

// recordComparison stores the run in the history database and prunes
// old entries.
func recordComparison(cfg *config.Config, res diff.Result, leftRaw, rightRaw []byte) error {
	store, err := history.Open(cfg.History.Path)
	if err != nil {
		return err
	}
	defer store.Close()

	if _, err := store.Record(history.Entry{
		LeftHash:  hashBytes(leftRaw),
		RightHash: hashBytes(rightRaw),
		Keys:      res.Stats.Keys,
		Changed:   res.Stats.Changed,
		Summary:   res.Summary(),
		Rendered:  export.Render(res),
	}); err != nil {
		return err
	}
	return store.Prune(cfg.History.MaxEntries)
}

// hashBytes returns the hex BLAKE2b-256 digest of data.
func hashBytes(data []byte) string {
	sum := blake2b.Sum256(data)
	return hex.EncodeToString(sum[:])
}

// fail prints an error to stderr and returns ExitError.
func fail(err error) int {
	fmt.Fprintf(os.Stderr, "%s %v\n", RenderConditional(ErrorStyle, "Error:"), err)
	return ExitError
}
