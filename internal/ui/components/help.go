// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package components provides UI components for the jdiff TUI.
package components

import (
	"github.com/charmbracelet/glamour"
)

// helpText is the overlay content shown on '?'.
const helpText = `# jdiff

Side-by-side comparison of two JSON documents, key by key.

## Keys

| Key | Action |
|-----|--------|
| a | edit the left document in $EDITOR |
| b | edit the right document in $EDITOR |
| c | clear both documents |
| d | compare (diff top-level keys) |
| e | export the last diff |
| w | toggle file watching (file mode) |
| tab | switch focused pane |
| up/down, pgup/pgdn | scroll the focused pane |
| ? | toggle this help |
| q | quit |

## Notes

Values are compared by deep equality at the top level only; nested
structures are never diffed field by field. A key missing on one side
reads as null.
`

// RenderHelp renders the help overlay as formatted Markdown. Falls back
// to the raw text when the renderer cannot be built (e.g. unusual TERM).
func RenderHelp(width int) string {
	if width <= 0 || width > 100 {
		width = 80
	}
	renderer, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(width),
	)
	if err != nil {
		return helpText
	}
	out, err := renderer.Render(helpText)
	if err != nil {
		return helpText
	}
	return out
}
