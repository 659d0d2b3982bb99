// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package styles provides the visual styling system for the jdiff TUI.
package styles

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"

	"github.com/jeranaias/jdiff-tui/internal/diff"
)

// Theme holds all the styled components for the application.
// It detects the terminal's color capability and adjusts accordingly.
type Theme struct {
	// Terminal capabilities
	IsDark       bool
	HasTrueColor bool
	ColorProfile termenv.Profile

	// ==========================================================================
	// PANE STYLES
	// ==========================================================================

	Pane        lipgloss.Style
	PaneFocused lipgloss.Style
	PaneTitle   lipgloss.Style

	// ==========================================================================
	// DIFF LINE STYLES
	// ==========================================================================

	LineUnchanged lipgloss.Style
	LineNeutral   lipgloss.Style
	LineChanged   lipgloss.Style

	// ==========================================================================
	// STATUS BAR STYLES
	// ==========================================================================

	StatusBar    lipgloss.Style
	StatusError  lipgloss.Style
	ShortcutKey  lipgloss.Style
	ShortcutDesc lipgloss.Style
}

// NewTheme creates a theme for the current terminal. mode is "auto",
// "dark", or "light"; asymmetric selects the legacy highlighting where
// neutral lines render like unchanged ones.
func NewTheme(mode string, asymmetric bool) *Theme {
	output := termenv.DefaultOutput()

	isDark := output.HasDarkBackground()
	switch mode {
	case "dark":
		isDark = true
	case "light":
		isDark = false
	}
	lipgloss.SetHasDarkBackground(isDark)

	t := &Theme{
		IsDark:       isDark,
		HasTrueColor: output.Profile == termenv.TrueColor,
		ColorProfile: output.Profile,
	}

	t.Pane = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(Overlay).
		Padding(0, 1)

	t.PaneFocused = t.Pane.BorderForeground(Purple)

	t.PaneTitle = lipgloss.NewStyle().
		Foreground(Cyan).
		Bold(true)

	t.LineUnchanged = lipgloss.NewStyle().Foreground(Emerald)
	t.LineChanged = lipgloss.NewStyle().Foreground(Rose)
	if asymmetric {
		// Legacy one-sided emphasis: the left half of a differing pair
		// keeps the unchanged color.
		t.LineNeutral = t.LineUnchanged
	} else {
		t.LineNeutral = lipgloss.NewStyle().Foreground(Amber)
	}

	t.StatusBar = lipgloss.NewStyle().
		Foreground(TextSecondary).
		Background(SurfaceDim).
		Padding(0, 1)

	t.StatusError = lipgloss.NewStyle().
		Foreground(Rose).
		Bold(true)

	t.ShortcutKey = lipgloss.NewStyle().
		Foreground(Cyan).
		Bold(true)

	t.ShortcutDesc = lipgloss.NewStyle().
		Foreground(TextMuted)

	return t
}

// LineStyle maps a diff line style onto its lipgloss style.
func (t *Theme) LineStyle(s diff.LineStyle) lipgloss.Style {
	switch s {
	case diff.StyleChanged:
		return t.LineChanged
	case diff.StyleNeutral:
		return t.LineNeutral
	default:
		return t.LineUnchanged
	}
}
