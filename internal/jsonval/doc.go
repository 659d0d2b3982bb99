// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package jsonval loads and serializes JSON documents for jdiff.
//
// A Value is the parsed representation of a JSON document: null, bool,
// json.Number, string, []any, or map[string]any, as produced by an
// encoding/json decoder with UseNumber into an empty interface. Numbers
// keep their source spelling so they round-trip exactly. Values are
// treated as immutable once parsed.
//
// # Key Operations
//
//   - LoadFile: read a file and parse it as JSON
//   - Parse: parse raw bytes as JSON
//   - Pretty: indented multi-line form for display
//   - Compact: one-line form for embedding in diff lines
//
// # Errors
//
// Failures are classified with sentinel errors so callers can pick a
// fallback instead of aborting:
//
//	v, err := jsonval.LoadFile("left.json")
//	if errors.Is(err, jsonval.ErrParse) { ... }
package jsonval
