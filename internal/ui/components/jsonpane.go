// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package components provides UI components for the jdiff TUI.
package components

import (
	"strings"

	"github.com/alecthomas/chroma/v2/formatters"
	"github.com/alecthomas/chroma/v2/lexers"
	chromaStyles "github.com/alecthomas/chroma/v2/styles"

	"github.com/jeranaias/jdiff-tui/internal/ui/styles"
)

// =============================================================================
// JSON HIGHLIGHTING
// =============================================================================

// HighlightJSON applies JSON syntax highlighting for terminal display.
// Used for the pre-diff pane content. Returns the input unchanged when
// highlighting fails; display must never depend on the highlighter.
func HighlightJSON(source string, theme *styles.Theme) string {
	if source == "" {
		return ""
	}

	lexer := lexers.Get("json")
	if lexer == nil {
		return source
	}

	styleName := "catppuccin-mocha"
	if !theme.IsDark {
		styleName = "catppuccin-latte"
	}
	style := chromaStyles.Get(styleName)
	if style == nil {
		style = chromaStyles.Fallback
	}

	formatterName := "terminal256"
	if theme.HasTrueColor {
		formatterName = "terminal16m"
	}
	formatter := formatters.Get(formatterName)
	if formatter == nil {
		return source
	}

	iterator, err := lexer.Tokenise(nil, source)
	if err != nil {
		return source
	}

	var sb strings.Builder
	if err := formatter.Format(&sb, style, iterator); err != nil {
		return source
	}
	return sb.String()
}
