// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package export writes comparison results to files in various formats.
package export

import (
	"fmt"
	"path/filepath"
	"time"

	"github.com/jeranaias/jdiff-tui/internal/diff"
	"github.com/jeranaias/jdiff-tui/internal/util"
)

// =============================================================================
// EXPORT INTERFACE
// =============================================================================

// Exporter defines the interface for diff exporters.
type Exporter interface {
	// Export renders a comparison result in the target format.
	Export(res diff.Result) ([]byte, error)

	// FileExtension returns the appropriate file extension (e.g. ".md").
	FileExtension() string
}

// =============================================================================
// OPTIONS
// =============================================================================

// Options configures export behavior.
type Options struct {
	// OutputDir is the directory where files will be saved.
	// Default: current working directory.
	OutputDir string

	// IncludeMetadata includes a header with timestamp and summary.
	IncludeMetadata bool
}

// DefaultOptions returns default export options.
func DefaultOptions() *Options {
	return &Options{
		OutputDir:       ".",
		IncludeMetadata: true,
	}
}

// =============================================================================
// FORMAT SELECTION
// =============================================================================

// ForFormat returns the exporter for a format name: "text", "markdown",
// or "json".
func ForFormat(format string, opts *Options) (Exporter, error) {
	switch format {
	case "text", "txt":
		return NewTextExporter(opts), nil
	case "markdown", "md":
		return NewMarkdownExporter(opts), nil
	case "json":
		return NewJSONExporter(opts), nil
	default:
		return nil, fmt.Errorf("unknown export format: %q", format)
	}
}

// =============================================================================
// SAVING
// =============================================================================

// Save renders res with the exporter and writes it to a timestamped file
// in the output directory, returning the written path.
func Save(e Exporter, res diff.Result, opts *Options) (string, error) {
	if opts == nil {
		opts = DefaultOptions()
	}

	data, err := e.Export(res)
	if err != nil {
		return "", err
	}

	name := fmt.Sprintf("jdiff-%s%s", time.Now().Format("20060102-150405"), e.FileExtension())
	path := filepath.Join(opts.OutputDir, name)

	if err := util.AtomicWriteFile(path, data, 0644); err != nil {
		return "", fmt.Errorf("failed to write export: %w", err)
	}
	return path, nil
}
