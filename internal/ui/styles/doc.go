// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package styles provides the visual styling system for the jdiff TUI.
//
// Colors are adaptive (light/dark) and resolved through the Theme, which
// detects the terminal profile via termenv. The Theme also maps diff line
// styles onto their rendered colors, including the legacy asymmetric
// highlighting mode.
package styles
