// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package history persists past comparisons in a local SQLite database.
//
// Each entry records when a diff ran, BLAKE2b hashes of both inputs, the
// key/changed counts, and the rendered plain-text diff. Consecutive runs
// over identical inputs are collapsed into one entry.
//
// The store lives at ~/.jdiff/history.db by default and is only touched
// from the CLI path and at diff time; the diff engine itself never does
// I/O.
package history
