// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package components

import (
	"strings"
	"testing"

	"github.com/jeranaias/jdiff-tui/internal/diff"
	"github.com/jeranaias/jdiff-tui/internal/ui/styles"
)

func TestRenderDiffLines_LineCount(t *testing.T) {
	theme := styles.NewTheme("dark", false)
	lines := []diff.StyledLine{
		{Text: "a: 1", Style: diff.StyleUnchanged},
		{Text: "b: 2", Style: diff.StyleNeutral},
		{Text: "c: 3", Style: diff.StyleChanged},
	}

	out := RenderDiffLines(lines, 40, theme)

	if got := len(strings.Split(out, "\n")); got != 3 {
		t.Errorf("Expected 3 rendered lines, got %d", got)
	}
}

func TestRenderDiffLines_Empty(t *testing.T) {
	theme := styles.NewTheme("dark", false)
	if out := RenderDiffLines(nil, 40, theme); out != "" {
		t.Errorf("Expected empty output, got %q", out)
	}
}

func TestHighlightJSON_EmptyAndFallback(t *testing.T) {
	theme := styles.NewTheme("dark", false)

	if out := HighlightJSON("", theme); out != "" {
		t.Errorf("Empty input must stay empty, got %q", out)
	}

	// Content must survive highlighting even if colors are added.
	out := HighlightJSON("{\n  \"a\": 1\n}", theme)
	if !strings.Contains(out, "a") {
		t.Error("Highlighted output lost its content")
	}
}

func TestRenderShortcuts(t *testing.T) {
	theme := styles.NewTheme("dark", false)
	out := RenderShortcuts([]Shortcut{{Key: "q", Desc: "quit"}, {Key: "d", Desc: "diff"}}, theme)

	for _, want := range []string{"q", "quit", "d", "diff"} {
		if !strings.Contains(out, want) {
			t.Errorf("Shortcut bar missing %q", want)
		}
	}
}

func TestRenderStatusBar_ErrorTakesPriority(t *testing.T) {
	theme := styles.NewTheme("dark", false)

	out := RenderStatusBar(60, "3 keys, 1 changed", "left side: invalid JSON", theme)
	if !strings.Contains(out, "invalid JSON") {
		t.Error("Error message should be shown")
	}

	out = RenderStatusBar(60, "3 keys, 1 changed", "", theme)
	if !strings.Contains(out, "3 keys") {
		t.Error("Info should be shown when no error")
	}
}

func TestRenderHelp_ContainsKeys(t *testing.T) {
	out := RenderHelp(80)
	for _, want := range []string{"jdiff", "quit"} {
		if !strings.Contains(out, want) {
			t.Errorf("Help output missing %q", want)
		}
	}
}
