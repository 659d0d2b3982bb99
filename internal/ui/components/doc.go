// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package components provides UI components for the jdiff TUI.
//
// The components are pure rendering helpers over strings and styled diff
// lines: JSON syntax highlighting for the pre-diff view, colored diff
// columns, the shortcut bar, the status line, and the Markdown help
// overlay. None of them hold state; the diffview model composes them.
package components
