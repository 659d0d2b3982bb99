// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package export

import (
	"fmt"
	"strings"
	"time"

	"github.com/jeranaias/jdiff-tui/internal/diff"
)

// =============================================================================
// MARKDOWN EXPORTER
// =============================================================================

// MarkdownExporter renders a comparison as a two-column Markdown table.
type MarkdownExporter struct {
	options *Options
}

// NewMarkdownExporter creates a new Markdown exporter.
func NewMarkdownExporter(opts *Options) *MarkdownExporter {
	if opts == nil {
		opts = DefaultOptions()
	}
	return &MarkdownExporter{options: opts}
}

// Export renders the result as a Markdown document.
func (e *MarkdownExporter) Export(res diff.Result) ([]byte, error) {
	var sb strings.Builder

	if e.options.IncludeMetadata {
		sb.WriteString("# JSON comparison\n\n")
		sb.WriteString(fmt.Sprintf("- Date: %s\n", time.Now().Format(time.RFC3339)))
		sb.WriteString(fmt.Sprintf("- Result: %s\n\n", res.Summary()))
	}

	sb.WriteString("| | Left | Right |\n")
	sb.WriteString("|---|---|---|\n")
	for i := range res.Left {
		marker := ""
		if res.Right[i].Style == diff.StyleChanged {
			marker = "±"
		}
		sb.WriteString(fmt.Sprintf("| %s | `%s` | `%s` |\n",
			marker, escapeCell(res.Left[i].Text), escapeCell(res.Right[i].Text)))
	}
	return []byte(sb.String()), nil
}

// FileExtension returns the file extension for Markdown.
func (e *MarkdownExporter) FileExtension() string {
	return ".md"
}

// escapeCell makes a line safe inside a Markdown table cell.
func escapeCell(s string) string {
	s = strings.ReplaceAll(s, "|", "\\|")
	return strings.ReplaceAll(s, "`", "'")
}
