// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package diffview implements the interactive side-by-side comparison
// view.
//
// The view follows the Bubble Tea Model/Update/View cycle. Layout is a
// one-line shortcut bar, two bordered panes at half width showing the
// left and right documents, and a one-line status bar. Before a diff
// each pane shows its document pretty-printed with syntax highlighting;
// after a diff the panes show the paired styled comparison lines.
//
// External editors run through tea.ExecProcess, which suspends the TUI
// and restores the terminal for the duration of the child process. File
// watching in fixed-file mode delivers debounced notifications over a
// buffered channel that a listener command converts into messages, so
// all state changes stay on the update loop.
package diffview
