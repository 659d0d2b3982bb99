// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package diff computes key-level comparisons between two JSON documents.
//
// The comparison is deliberately shallow: top-level keys only, with nested
// values compared by full structural equality rather than diffed
// recursively. The output is a pair of equal-length styled line sequences,
// one per side, ready for two-column rendering.
//
// # Key Types
//
//   - LineStyle: display emphasis of a line (unchanged, neutral, changed)
//   - StyledLine: one unit of rendered output (text + style)
//   - Result: paired left/right line sequences plus stats
//
// # Usage
//
// Compare two parsed values:
//
//	res := diff.Compare(left, right, diff.Options{})
//	for i := range res.Left {
//		render(res.Left[i], res.Right[i])
//	}
package diff
