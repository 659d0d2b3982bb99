// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package components provides UI components for the jdiff TUI.
package components

import (
	"strings"

	"github.com/jeranaias/jdiff-tui/internal/diff"
	"github.com/jeranaias/jdiff-tui/internal/ui/styles"
	"github.com/jeranaias/jdiff-tui/internal/util"
)

// =============================================================================
// DIFF PANE RENDERING
// =============================================================================

// RenderDiffLines renders one side's styled lines for display inside a
// pane of the given content width. Each line is colored by the theme and
// truncated width-aware so the two columns stay aligned.
func RenderDiffLines(lines []diff.StyledLine, width int, theme *styles.Theme) string {
	if len(lines) == 0 {
		return ""
	}

	rendered := make([]string, 0, len(lines))
	for _, line := range lines {
		text := line.Text
		if width > 0 {
			text = util.TruncateWidth(text, width)
		}
		rendered = append(rendered, theme.LineStyle(line.Style).Render(text))
	}
	return strings.Join(rendered, "\n")
}
