// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package export

import (
	"encoding/json"
	"time"

	"github.com/jeranaias/jdiff-tui/internal/diff"
)

// =============================================================================
// JSON EXPORTER
// =============================================================================

// JSONExporter renders a comparison as a machine-readable JSON document.
// NOTE: JSON exports always include the complete line data regardless of
// options, so the output is a faithful representation of the result.
type JSONExporter struct {
	options *Options
}

// NewJSONExporter creates a new JSON exporter.
func NewJSONExporter(opts *Options) *JSONExporter {
	if opts == nil {
		opts = DefaultOptions()
	}
	return &JSONExporter{options: opts}
}

// jsonLine is the serialized form of one line pair.
type jsonLine struct {
	Left       string `json:"left"`
	Right      string `json:"right"`
	LeftStyle  string `json:"left_style"`
	RightStyle string `json:"right_style"`
}

// jsonDocument is the serialized form of a whole result.
type jsonDocument struct {
	Date    time.Time  `json:"date"`
	Keys    int        `json:"keys"`
	Changed int        `json:"changed"`
	Summary string     `json:"summary"`
	Lines   []jsonLine `json:"lines"`
}

// Export renders the result as indented JSON.
func (e *JSONExporter) Export(res diff.Result) ([]byte, error) {
	doc := jsonDocument{
		Date:    time.Now().UTC(),
		Keys:    res.Stats.Keys,
		Changed: res.Stats.Changed,
		Summary: res.Summary(),
		Lines:   make([]jsonLine, 0, len(res.Left)),
	}
	for i := range res.Left {
		doc.Lines = append(doc.Lines, jsonLine{
			Left:       res.Left[i].Text,
			Right:      res.Right[i].Text,
			LeftStyle:  res.Left[i].Style.String(),
			RightStyle: res.Right[i].Style.String(),
		})
	}
	return json.MarshalIndent(doc, "", "  ")
}

// FileExtension returns the file extension for JSON.
func (e *JSONExporter) FileExtension() string {
	return ".json"
}
