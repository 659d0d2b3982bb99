// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package export

import (
	"fmt"
	"strings"
	"time"

	"github.com/jeranaias/jdiff-tui/internal/diff"
	"github.com/jeranaias/jdiff-tui/internal/util"
)

// =============================================================================
// TEXT EXPORTER
// =============================================================================

// TextExporter renders a comparison as aligned plain-text columns with
// change markers. This is also the form stored in the history database.
type TextExporter struct {
	options *Options
}

// NewTextExporter creates a new plain-text exporter.
func NewTextExporter(opts *Options) *TextExporter {
	if opts == nil {
		opts = DefaultOptions()
	}
	return &TextExporter{options: opts}
}

// Export renders the result as two aligned text columns.
func (e *TextExporter) Export(res diff.Result) ([]byte, error) {
	var sb strings.Builder

	if e.options.IncludeMetadata {
		sb.WriteString(fmt.Sprintf("# jdiff %s - %s\n\n",
			time.Now().Format(time.RFC3339), res.Summary()))
	}

	sb.WriteString(Render(res))
	return []byte(sb.String()), nil
}

// FileExtension returns the file extension for plain text.
func (e *TextExporter) FileExtension() string {
	return ".txt"
}

// Render formats the result as two aligned marker-prefixed columns
// without any header. Shared with the history store.
func Render(res diff.Result) string {
	width := 0
	for _, line := range res.Left {
		if w := util.StringWidth(line.Text); w > width {
			width = w
		}
	}

	var sb strings.Builder
	for i := range res.Left {
		left := res.Left[i]
		right := res.Right[i]
		sb.WriteString(left.Style.Marker())
		sb.WriteString(util.PadRight(left.Text, width))
		sb.WriteString(" | ")
		sb.WriteString(right.Style.Marker())
		sb.WriteString(right.Text)
		sb.WriteString("\n")
	}
	return sb.String()
}
