// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package util provides utility functions for the jdiff application.
//
// It contains width-aware string helpers used by the two-column layout
// and an atomic file writer used for exports and working copies.
package util
