// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package diff computes key-level comparisons between two JSON documents.
package diff

import (
	"fmt"
	"reflect"
	"sort"

	"github.com/jeranaias/jdiff-tui/internal/jsonval"
)

// =============================================================================
// LINE STYLES
// =============================================================================

// LineStyle represents the display emphasis of a diff line.
type LineStyle int

const (
	// StyleUnchanged marks a line whose value is equal on both sides.
	StyleUnchanged LineStyle = iota
	// StyleNeutral marks the left half of a differing pair.
	StyleNeutral
	// StyleChanged marks the right half of a differing pair.
	StyleChanged
)

// String returns the string representation of a line style.
func (s LineStyle) String() string {
	switch s {
	case StyleUnchanged:
		return "unchanged"
	case StyleNeutral:
		return "neutral"
	case StyleChanged:
		return "changed"
	default:
		return "unknown"
	}
}

// Marker returns the change marker character for this style.
func (s LineStyle) Marker() string {
	switch s {
	case StyleNeutral:
		return "-"
	case StyleChanged:
		return "+"
	default:
		return " "
	}
}

// =============================================================================
// STYLED LINE
// =============================================================================

// StyledLine is one unit of rendered output: text content plus a display
// emphasis attribute. It has no identity beyond its content and style.
type StyledLine struct {
	Text  string
	Style LineStyle
}

// =============================================================================
// RESULT
// =============================================================================

// Stats holds statistics about a comparison.
type Stats struct {
	Keys    int // Number of line pairs emitted
	Changed int // Number of differing pairs
}

// Result is a pair of ordered styled line sequences, one per side.
//
// Invariant: len(Left) == len(Right), and index i on both sides refers to
// the same key (or to the whole-value fallback when the inputs are not
// both objects).
type Result struct {
	Left  []StyledLine
	Right []StyledLine
	Stats Stats
}

// Summary returns a human-readable summary of the comparison.
func (r Result) Summary() string {
	if r.Stats.Keys == 0 {
		return "empty"
	}
	noun := "keys"
	if r.Stats.Keys == 1 {
		noun = "key"
	}
	return fmt.Sprintf("%d %s, %d changed", r.Stats.Keys, noun, r.Stats.Changed)
}

// =============================================================================
// OPTIONS
// =============================================================================

// Options configures comparison output.
type Options struct {
	// Asymmetric reproduces the legacy highlighting where the left half
	// of a differing pair is styled like an unchanged line, leaving only
	// the right half marked as changed. The default (false) styles the
	// left half with its own neutral emphasis so both sides of a change
	// stand out.
	Asymmetric bool
}

// =============================================================================
// COMPARISON
// =============================================================================

// Compare produces a key-by-key comparison of two parsed JSON values.
// Pure and deterministic: no side effects, no mutation of inputs, and the
// same inputs always yield the same output.
//
// When both values are objects, the union of their top-level keys is
// walked in lexicographically ascending order; a key missing on one side
// is treated as JSON null. Values are compared by deep structural
// equality, never recursively diffed. When either value is not an object,
// the whole compact string form of each side becomes a single line pair.
func Compare(left, right jsonval.Value, opts Options) Result {
	leftObj, leftOK := jsonval.AsObject(left)
	rightObj, rightOK := jsonval.AsObject(right)
	if !leftOK || !rightOK {
		return wholeValueResult(left, right, opts)
	}

	keys := unionKeys(leftObj, rightObj)

	res := Result{
		Left:  make([]StyledLine, 0, len(keys)),
		Right: make([]StyledLine, 0, len(keys)),
	}

	for _, key := range keys {
		// Missing keys read as null, both for equality and display.
		leftVal := leftObj[key]
		rightVal := rightObj[key]

		leftLine := fmt.Sprintf("%s: %s", key, jsonval.Compact(leftVal))
		rightLine := fmt.Sprintf("%s: %s", key, jsonval.Compact(rightVal))

		if reflect.DeepEqual(leftVal, rightVal) {
			res.Left = append(res.Left, StyledLine{Text: leftLine, Style: StyleUnchanged})
			res.Right = append(res.Right, StyledLine{Text: rightLine, Style: StyleUnchanged})
		} else {
			leftStyle := StyleNeutral
			if opts.Asymmetric {
				leftStyle = StyleUnchanged
			}
			res.Left = append(res.Left, StyledLine{Text: leftLine, Style: leftStyle})
			res.Right = append(res.Right, StyledLine{Text: rightLine, Style: StyleChanged})
			res.Stats.Changed++
		}
		res.Stats.Keys++
	}

	return res
}

// wholeValueResult renders non-object inputs as a single line pair with no
// internal comparison.
func wholeValueResult(left, right jsonval.Value, opts Options) Result {
	leftStyle := StyleNeutral
	if opts.Asymmetric {
		leftStyle = StyleUnchanged
	}
	return Result{
		Left:  []StyledLine{{Text: jsonval.Compact(left), Style: leftStyle}},
		Right: []StyledLine{{Text: jsonval.Compact(right), Style: StyleChanged}},
		Stats: Stats{Keys: 1, Changed: 1},
	}
}

// unionKeys returns all keys present in either object, sorted ascending.
func unionKeys(a, b map[string]any) []string {
	seen := make(map[string]struct{}, len(a)+len(b))
	for k := range a {
		seen[k] = struct{}{}
	}
	for k := range b {
		seen[k] = struct{}{}
	}
	keys := make([]string, 0, len(seen))
	for k := range seen {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
