// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package config provides unified configuration loading and management for jdiff.
//
// Configuration is read from ~/.jdiff/config.toml (or config.json), with
// JDIFF_* environment variables layered on top and built-in defaults
// underneath. Access goes through the thread-safe Global accessor:
//
//	cfg := config.Global()
//	if cfg.UI.AsymmetricHighlight { ... }
//
// Validate never rejects a config; out-of-range values are clamped so a
// hand-edited file cannot keep the tool from starting.
package config
