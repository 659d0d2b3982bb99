// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package export writes comparison results to files in various formats.
//
// Supported formats: plain text (aligned columns with +/- markers),
// Markdown (two-column table), and JSON (machine readable). Files are
// written atomically with timestamped names.
package export
