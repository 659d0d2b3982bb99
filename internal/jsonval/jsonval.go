// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package jsonval loads and serializes JSON documents for jdiff.
package jsonval

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"os"
)

// =============================================================================
// ERRORS
// =============================================================================

var (
	// ErrRead indicates the file could not be read (missing, permission denied).
	ErrRead = errors.New("cannot read file")
	// ErrParse indicates the content is not well-formed JSON.
	ErrParse = errors.New("invalid JSON")
)

// =============================================================================
// VALUE
// =============================================================================

// Value is a parsed JSON document: null, bool, json.Number, string,
// []any, or map[string]any.
type Value = any

// AsObject returns the value as a top-level JSON object, or false when the
// document is not an object (array, scalar, or null at the top level).
func AsObject(v Value) (map[string]any, bool) {
	obj, ok := v.(map[string]any)
	return obj, ok
}

// =============================================================================
// LOADING
// =============================================================================

// LoadFile reads path in full and parses its contents as JSON.
func LoadFile(path string) (Value, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrRead, path, err)
	}
	v, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return v, nil
}

// Parse parses raw bytes as a JSON value.
func Parse(data []byte) (Value, error) {
	// An empty document is not valid JSON; report it like any other
	// syntax error rather than returning a nil Value silently.
	var v Value
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()
	if err := dec.Decode(&v); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrParse, err)
	}
	// Reject trailing garbage after the first value ("{} {}" is not one document).
	if dec.More() {
		return nil, fmt.Errorf("%w: trailing data after JSON value", ErrParse)
	}
	return v, nil
}

// =============================================================================
// SERIALIZATION
// =============================================================================

// Pretty serializes a value as two-space indented multi-line JSON.
// Used for the pre-diff display path.
func Pretty(v Value) string {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		// Parsed values always re-marshal; this path exists only for
		// defensive completeness.
		return fmt.Sprintf("%v", v)
	}
	return string(data)
}

// Compact serializes a value in its default compact one-line form:
// numbers as written, strings quoted, nested structures as compact JSON.
// Used for values embedded in diff lines.
func Compact(v Value) string {
	data, err := json.Marshal(v)
	if err != nil {
		return fmt.Sprintf("%v", v)
	}
	return string(data)
}
