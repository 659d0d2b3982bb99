// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package document owns the two working documents being compared.
package document

import (
	"encoding/hex"
	"fmt"
	"os"
	"strings"

	"golang.org/x/crypto/blake2b"

	"github.com/jeranaias/jdiff-tui/internal/diff"
	"github.com/jeranaias/jdiff-tui/internal/jsonval"
)

// =============================================================================
// SIDE
// =============================================================================

// Side identifies one of the two documents.
type Side int

const (
	// Left is the left-hand document.
	Left Side = iota
	// Right is the right-hand document.
	Right
)

// String returns the string representation of a side.
func (s Side) String() string {
	if s == Right {
		return "right"
	}
	return "left"
}

// =============================================================================
// SLOT
// =============================================================================

// Slot is one side's working state: the temp file path, the last
// successfully loaded content, and its parsed form.
type Slot struct {
	path    string        // Working temp file, editable externally
	raw     string        // Last successfully loaded raw text
	value   jsonval.Value // Parsed value (nil until a successful parse)
	display string        // Pretty-printed text for the pre-diff view
	hash    string        // BLAKE2b-256 of the raw text, hex
	loaded  bool          // True once a document has been parsed
}

// Path returns the slot's working temp file path.
func (s *Slot) Path() string { return s.path }

// Raw returns the last successfully loaded raw text.
func (s *Slot) Raw() string { return s.raw }

// Value returns the parsed value, or nil when nothing is loaded.
func (s *Slot) Value() jsonval.Value { return s.value }

// Display returns the pretty-printed document text for rendering.
func (s *Slot) Display() string { return s.display }

// Hash returns the BLAKE2b-256 hex digest of the loaded raw text.
func (s *Slot) Hash() string { return s.hash }

// Loaded reports whether the slot holds a parsed document.
func (s *Slot) Loaded() bool { return s.loaded }

// =============================================================================
// WORKSPACE
// =============================================================================

// Workspace owns both document slots and the last comparison result.
type Workspace struct {
	slots    [2]*Slot
	lastDiff diff.Result
	hasDiff  bool
}

// NewWorkspace creates a workspace with two empty temp files.
// Close removes them.
func NewWorkspace() (*Workspace, error) {
	ws := &Workspace{}
	for _, side := range []Side{Left, Right} {
		f, err := os.CreateTemp("", fmt.Sprintf("jdiff-%s-*.json", side))
		if err != nil {
			ws.Close()
			return nil, fmt.Errorf("failed to create temp file: %w", err)
		}
		path := f.Name()
		f.Close()
		ws.slots[side] = &Slot{path: path}
	}
	return ws, nil
}

// Close removes the working temp files.
func (ws *Workspace) Close() {
	for _, slot := range ws.slots {
		if slot != nil && slot.path != "" {
			os.Remove(slot.path)
		}
	}
}

// Slot returns the slot for a side.
func (ws *Workspace) Slot(side Side) *Slot {
	return ws.slots[side]
}

// LastDiff returns the stored comparison result, if any.
func (ws *Workspace) LastDiff() (diff.Result, bool) {
	return ws.lastDiff, ws.hasDiff
}

// =============================================================================
// OPERATIONS
// =============================================================================

// Reload re-reads a slot's temp file and parses it, typically after an
// external editor exits. An empty file resets the slot without error. A
// read or parse failure leaves the previous slot state in place and is
// returned to the caller.
func (ws *Workspace) Reload(side Side) error {
	slot := ws.slots[side]

	data, err := os.ReadFile(slot.path)
	if err != nil {
		return fmt.Errorf("%w: %s: %v", jsonval.ErrRead, slot.path, err)
	}

	if strings.TrimSpace(string(data)) == "" {
		slot.raw = ""
		slot.value = nil
		slot.display = ""
		slot.hash = ""
		slot.loaded = false
		return nil
	}

	v, err := jsonval.Parse(data)
	if err != nil {
		// Keep the previous display; the caller surfaces the error.
		return fmt.Errorf("%s side: %w", side, err)
	}

	slot.raw = string(data)
	slot.value = v
	slot.display = jsonval.Pretty(v)
	slot.hash = contentHash(data)
	slot.loaded = true
	return nil
}

// LoadFixed copies the two source files into the working temp files and
// loads them. Used by fixed-file mode; a missing or malformed file is a
// hard error, distinct from a successful empty document.
func (ws *Workspace) LoadFixed(leftPath, rightPath string) error {
	paths := map[Side]string{Left: leftPath, Right: rightPath}
	for _, side := range []Side{Left, Right} {
		src := paths[side]
		data, err := os.ReadFile(src)
		if err != nil {
			return fmt.Errorf("%w: %s: %v", jsonval.ErrRead, src, err)
		}
		if _, err := jsonval.Parse(data); err != nil {
			return fmt.Errorf("%s: %w", src, err)
		}
		if err := os.WriteFile(ws.slots[side].path, data, 0600); err != nil {
			return fmt.Errorf("failed to write working copy: %w", err)
		}
		if err := ws.Reload(side); err != nil {
			return err
		}
	}
	return nil
}

// Clear truncates both working files and resets all display state,
// including any stored diff.
func (ws *Workspace) Clear() error {
	for _, side := range []Side{Left, Right} {
		slot := ws.slots[side]
		if err := os.Truncate(slot.path, 0); err != nil {
			return fmt.Errorf("failed to clear %s working copy: %w", side, err)
		}
		slot.raw = ""
		slot.value = nil
		slot.display = ""
		slot.hash = ""
		slot.loaded = false
	}
	ws.lastDiff = diff.Result{}
	ws.hasDiff = false
	return nil
}

// Compare parses both working files fresh and stores a new comparison
// result. The files are re-read on every call: the external editor may
// have rewritten them since the last snapshot. On failure the previous
// result (if any) is left in place.
func (ws *Workspace) Compare(opts diff.Options) (diff.Result, error) {
	values := [2]jsonval.Value{}
	for _, side := range []Side{Left, Right} {
		v, err := jsonval.LoadFile(ws.slots[side].path)
		if err != nil {
			return diff.Result{}, fmt.Errorf("%s side: %w", side, err)
		}
		values[side] = v
	}

	res := diff.Compare(values[Left], values[Right], opts)
	ws.lastDiff = res
	ws.hasDiff = true
	return res, nil
}

// contentHash returns the BLAKE2b-256 hex digest of data. Used to
// identify document revisions in the comparison history.
func contentHash(data []byte) string {
	sum := blake2b.Sum256(data)
	return hex.EncodeToString(sum[:])
}
