// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package editor builds external editor invocations for jdiff.
//
// The TUI hands the returned command to tea.ExecProcess, which suspends
// raw mode, blocks until the editor exits, and restores the terminal on
// every exit path including editor failure.
package editor

import (
	"os"
	"os/exec"

	"github.com/jeranaias/jdiff-tui/internal/config"
)

// DefaultEditor is used when neither the config nor $EDITOR names one.
const DefaultEditor = "vim"

// Resolve returns the editor command to use, in order of precedence:
// config editor.command, $EDITOR, then vim.
func Resolve(cfg *config.Config) string {
	if cfg != nil && cfg.Editor.Command != "" {
		return cfg.Editor.Command
	}
	if env := os.Getenv("EDITOR"); env != "" {
		return env
	}
	return DefaultEditor
}

// Command builds the exec.Cmd that opens path in the configured editor,
// attached to the caller's terminal.
func Command(cfg *config.Config, path string) *exec.Cmd {
	name := Resolve(cfg)
	var args []string
	if cfg != nil {
		args = append(args, cfg.Editor.Args...)
	}
	args = append(args, path)

	cmd := exec.Command(name, args...)
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	return cmd
}
