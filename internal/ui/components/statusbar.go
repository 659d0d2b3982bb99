// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package components provides UI components for the jdiff TUI.
package components

import (
	"strings"

	"github.com/jeranaias/jdiff-tui/internal/ui/styles"
	"github.com/jeranaias/jdiff-tui/internal/util"
)

// =============================================================================
// STATUS BAR
// =============================================================================

// Shortcut is one key hint shown in the help line.
type Shortcut struct {
	Key  string
	Desc string
}

// RenderShortcuts renders the one-line key hint bar.
func RenderShortcuts(shortcuts []Shortcut, theme *styles.Theme) string {
	parts := make([]string, 0, len(shortcuts))
	for _, s := range shortcuts {
		parts = append(parts,
			theme.ShortcutKey.Render("["+s.Key+"]")+" "+theme.ShortcutDesc.Render(s.Desc))
	}
	return strings.Join(parts, "  ")
}

// RenderStatusBar renders the bottom status line. An error message, when
// present, takes visual priority over the informational text.
func RenderStatusBar(width int, info, errMsg string, theme *styles.Theme) string {
	var content string
	if errMsg != "" {
		content = theme.StatusError.Render(util.TruncateWidth(errMsg, width-2))
	} else {
		content = util.TruncateWidth(info, width-2)
	}
	return theme.StatusBar.Width(width).Render(content)
}
