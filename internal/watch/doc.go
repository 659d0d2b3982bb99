// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package watch monitors the fixed source files for external changes.
//
// Used by fixed-file mode to reload and recompare automatically when
// left.json or right.json change on disk. Events are debounced so a
// single editor save produces a single reload. The watcher communicates
// only through its callback; it shares no mutable state with the UI.
package watch
