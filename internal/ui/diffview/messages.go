// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package diffview

import "github.com/jeranaias/jdiff-tui/internal/document"

// =============================================================================
// MESSAGES
// =============================================================================

// EditorFinishedMsg is sent when the external editor process exits.
type EditorFinishedMsg struct {
	Side document.Side
	Err  error
}

// FileChangedMsg is sent when a watched source file changed on disk.
type FileChangedMsg struct{}

// watchStoppedMsg is sent when the watcher has been shut down and its
// listener should not be re-armed.
type watchStoppedMsg struct{}
