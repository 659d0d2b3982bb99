// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package diffview

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/jeranaias/jdiff-tui/internal/document"
	"github.com/jeranaias/jdiff-tui/internal/ui/components"
)

// =============================================================================
// LAYOUT
// =============================================================================

// paneChrome is the width consumed by one pane's border and padding.
const paneChrome = 4

// resizePanes recomputes viewport dimensions from the window size.
func (m *Model) resizePanes() {
	if m.width <= 0 || m.height <= 0 {
		return
	}

	paneWidth := m.width/2 - paneChrome
	if paneWidth < 10 {
		paneWidth = 10
	}
	// Shortcut bar, status bar, pane borders and title row.
	paneHeight := m.height - 2 - 3
	if paneHeight < 3 {
		paneHeight = 3
	}

	m.leftPane.Width = paneWidth
	m.leftPane.Height = paneHeight
	m.rightPane.Width = paneWidth
	m.rightPane.Height = paneHeight
}

// refreshPanes re-renders both viewports from the current state.
func (m *Model) refreshPanes() {
	if m.displayDiff {
		if res, ok := m.workspace.LastDiff(); ok {
			// With wrap enabled, lines keep their full content and the
			// pane style soft-wraps them at render time.
			truncWidth := m.leftPane.Width
			if m.cfg.UI.Wrap {
				truncWidth = 0
			}
			m.leftPane.SetContent(components.RenderDiffLines(res.Left, truncWidth, m.theme))
			m.rightPane.SetContent(components.RenderDiffLines(res.Right, truncWidth, m.theme))
			return
		}
	}
	m.leftPane.SetContent(components.HighlightJSON(m.workspace.Slot(document.Left).Display(), m.theme))
	m.rightPane.SetContent(components.HighlightJSON(m.workspace.Slot(document.Right).Display(), m.theme))
}

// =============================================================================
// VIEW
// =============================================================================

// View implements tea.Model.
func (m Model) View() string {
	if m.width == 0 || m.height == 0 {
		return "Loading..."
	}
	if m.showHelp {
		return components.RenderHelp(m.width)
	}

	header := components.RenderShortcuts([]components.Shortcut{
		{Key: "q", Desc: "quit"},
		{Key: "a", Desc: "edit left"},
		{Key: "b", Desc: "edit right"},
		{Key: "c", Desc: "clear"},
		{Key: "d", Desc: "diff"},
		{Key: "e", Desc: "export"},
		{Key: "?", Desc: "help"},
	}, m.theme)

	left := m.renderPane("Left JSON", m.leftPane.View(), m.focused == document.Left)
	right := m.renderPane("Right JSON", m.rightPane.View(), m.focused == document.Right)
	panes := lipgloss.JoinHorizontal(lipgloss.Top, left, right)

	status := components.RenderStatusBar(m.width, m.statusLine(), m.errMsg, m.theme)

	return lipgloss.JoinVertical(lipgloss.Left, header, panes, status)
}

// renderPane wraps one viewport in its border and title.
func (m Model) renderPane(title, content string, focused bool) string {
	style := m.theme.Pane
	if focused {
		style = m.theme.PaneFocused
	}
	titled := m.theme.PaneTitle.Render(title) + "\n" + content
	return style.Width(m.leftPane.Width + 2).Render(titled)
}

// statusLine builds the informational status text.
func (m Model) statusLine() string {
	mode := "edit mode"
	if m.fileMode {
		mode = "file mode"
		if m.watching {
			mode += " (watching)"
		}
	}
	if m.statusMsg != "" {
		return mode + " | " + m.statusMsg
	}
	return mode
}
