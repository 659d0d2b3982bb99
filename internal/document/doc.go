// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package document owns the two working documents being compared.
//
// A Workspace holds one Slot per side. Each slot is backed by a temp file
// that an external editor may rewrite at any time between operations, so
// every Reload and Compare treats the file content as a fresh snapshot.
//
// # Lifecycle
//
//	ws, err := document.NewWorkspace()
//	defer ws.Close()
//	ws.LoadFixed("left.json", "right.json") // optional -f mode
//	ws.Reload(document.Left)                // after editor exit
//	res, err := ws.Compare(diff.Options{})  // explicit trigger, pull-based
//
// A failed reload or compare keeps the previous display content so the
// surrounding UI never goes blank on malformed input.
package document
