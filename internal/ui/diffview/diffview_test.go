// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package diffview

import (
	"os"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/jeranaias/jdiff-tui/internal/config"
	"github.com/jeranaias/jdiff-tui/internal/document"
)

// =============================================================================
// HELPERS
// =============================================================================

func newTestModel(t *testing.T) Model {
	t.Helper()

	ws, err := document.NewWorkspace()
	if err != nil {
		t.Fatalf("NewWorkspace: %v", err)
	}
	t.Cleanup(ws.Close)

	cfg := config.DefaultConfig()
	cfg.Export.Dir = t.TempDir()

	m := New(cfg, ws, nil, false, "", "")
	m.width = 100
	m.height = 30
	m.resizePanes()
	return m
}

func writeSlot(t *testing.T, m Model, side document.Side, content string) {
	t.Helper()
	path := m.workspace.Slot(side).Path()
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("write %s: %v", path, err)
	}
	if err := m.workspace.Reload(side); err != nil {
		t.Fatalf("reload %s: %v", side, err)
	}
}

func keyMsg(s string) tea.KeyMsg {
	return tea.KeyMsg(tea.Key{Type: tea.KeyRunes, Runes: []rune(s)})
}

func update(t *testing.T, m Model, msg tea.Msg) (Model, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	model, ok := next.(Model)
	if !ok {
		t.Fatalf("Update returned %T, want Model", next)
	}
	return model, cmd
}

// =============================================================================
// TESTS
// =============================================================================

func TestWindowSizeResizesPanes(t *testing.T) {
	m := newTestModel(t)

	m, _ = update(t, m, tea.WindowSizeMsg{Width: 120, Height: 40})

	if m.width != 120 || m.height != 40 {
		t.Errorf("size = %dx%d, want 120x40", m.width, m.height)
	}
	if m.leftPane.Width != m.rightPane.Width {
		t.Errorf("pane widths differ: %d vs %d", m.leftPane.Width, m.rightPane.Width)
	}
}

func TestDiffKeyShowsResultAndSummary(t *testing.T) {
	m := newTestModel(t)
	writeSlot(t, m, document.Left, `{"a": 1, "b": 2}`)
	writeSlot(t, m, document.Right, `{"a": 1, "b": 3}`)

	m, _ = update(t, m, keyMsg("d"))

	if !m.displayDiff {
		t.Fatal("displayDiff = false after d")
	}
	if m.statusMsg != "2 keys, 1 changed" {
		t.Errorf("statusMsg = %q", m.statusMsg)
	}
	if m.errMsg != "" {
		t.Errorf("errMsg = %q, want empty", m.errMsg)
	}
}

func TestDiffKeyOnInvalidInputKeepsDisplay(t *testing.T) {
	m := newTestModel(t)
	writeSlot(t, m, document.Left, `{"a": 1}`)
	writeSlot(t, m, document.Right, `{"a": 2}`)
	m, _ = update(t, m, keyMsg("d"))
	if !m.displayDiff {
		t.Fatal("first diff did not display")
	}

	// Corrupt the left file behind the workspace's back, then diff again.
	path := m.workspace.Slot(document.Left).Path()
	if err := os.WriteFile(path, []byte("{not json"), 0o600); err != nil {
		t.Fatal(err)
	}

	m, _ = update(t, m, keyMsg("d"))

	if m.errMsg == "" {
		t.Error("errMsg empty, want parse error")
	}
	if !m.displayDiff {
		t.Error("previous diff display should survive a failed compare")
	}
	if _, ok := m.workspace.LastDiff(); !ok {
		t.Error("previous diff result should survive a failed compare")
	}
}

func TestClearKeyResetsEverything(t *testing.T) {
	m := newTestModel(t)
	writeSlot(t, m, document.Left, `{"a": 1}`)
	writeSlot(t, m, document.Right, `{"a": 2}`)
	m, _ = update(t, m, keyMsg("d"))

	m, _ = update(t, m, keyMsg("c"))

	if m.displayDiff {
		t.Error("displayDiff should reset on clear")
	}
	if m.statusMsg != "" || m.errMsg != "" {
		t.Errorf("status = %q err = %q, want both empty", m.statusMsg, m.errMsg)
	}
	if _, ok := m.workspace.LastDiff(); ok {
		t.Error("clear should drop the stored diff")
	}
}

func TestHelpOverlayTogglesAndSwallowsKeys(t *testing.T) {
	m := newTestModel(t)

	m, _ = update(t, m, keyMsg("?"))
	if !m.showHelp {
		t.Fatal("? should open help")
	}

	// Other keys must not act while help is open.
	m, _ = update(t, m, keyMsg("d"))
	if m.displayDiff {
		t.Error("d acted while help overlay was open")
	}
	if !m.showHelp {
		t.Error("d should not close help")
	}

	m, _ = update(t, m, tea.KeyMsg(tea.Key{Type: tea.KeyEsc}))
	if m.showHelp {
		t.Error("esc should close help")
	}
}

func TestQuitKeyReturnsQuit(t *testing.T) {
	m := newTestModel(t)

	_, cmd := update(t, m, keyMsg("q"))

	if cmd == nil {
		t.Fatal("q returned nil cmd")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Errorf("q cmd produced %T, want tea.QuitMsg", cmd())
	}
}

func TestSwitchPaneTogglesFocus(t *testing.T) {
	m := newTestModel(t)
	if m.focused != document.Left {
		t.Fatalf("initial focus = %v, want Left", m.focused)
	}

	m, _ = update(t, m, tea.KeyMsg(tea.Key{Type: tea.KeyTab}))
	if m.focused != document.Right {
		t.Errorf("focus = %v after tab, want Right", m.focused)
	}

	m, _ = update(t, m, tea.KeyMsg(tea.Key{Type: tea.KeyTab}))
	if m.focused != document.Left {
		t.Errorf("focus = %v after second tab, want Left", m.focused)
	}
}

func TestEditorFinishedReloadsSide(t *testing.T) {
	m := newTestModel(t)
	path := m.workspace.Slot(document.Left).Path()
	if err := os.WriteFile(path, []byte(`{"fresh": true}`), 0o600); err != nil {
		t.Fatal(err)
	}

	m, _ = update(t, m, EditorFinishedMsg{Side: document.Left})

	if m.errMsg != "" {
		t.Errorf("errMsg = %q, want empty", m.errMsg)
	}
	if !strings.Contains(m.workspace.Slot(document.Left).Display(), "fresh") {
		t.Error("left slot not reloaded after editor exit")
	}
}

func TestEditorFinishedParseErrorKeepsPriorContent(t *testing.T) {
	m := newTestModel(t)
	writeSlot(t, m, document.Left, `{"keep": 1}`)

	path := m.workspace.Slot(document.Left).Path()
	if err := os.WriteFile(path, []byte("{not json"), 0o600); err != nil {
		t.Fatal(err)
	}

	m, _ = update(t, m, EditorFinishedMsg{Side: document.Left})

	if m.errMsg == "" {
		t.Error("errMsg empty, want parse error")
	}
	if !strings.Contains(m.workspace.Slot(document.Left).Display(), "keep") {
		t.Error("prior display should survive a failed reload")
	}
}

func TestEditorFailureReported(t *testing.T) {
	m := newTestModel(t)

	m, _ = update(t, m, EditorFinishedMsg{Side: document.Right, Err: os.ErrPermission})

	if !strings.Contains(m.errMsg, "editor") {
		t.Errorf("errMsg = %q, want editor error", m.errMsg)
	}
}

func TestExportWithoutDiff(t *testing.T) {
	m := newTestModel(t)

	m, _ = update(t, m, keyMsg("e"))

	if !strings.Contains(m.statusMsg, "nothing to export") {
		t.Errorf("statusMsg = %q", m.statusMsg)
	}
}

func TestExportAfterDiffWritesFile(t *testing.T) {
	m := newTestModel(t)
	writeSlot(t, m, document.Left, `{"a": 1}`)
	writeSlot(t, m, document.Right, `{"a": 2}`)
	m, _ = update(t, m, keyMsg("d"))

	m, _ = update(t, m, keyMsg("e"))

	if !strings.Contains(m.statusMsg, "exported to") {
		t.Fatalf("statusMsg = %q", m.statusMsg)
	}
	entries, err := os.ReadDir(m.cfg.Export.Dir)
	if err != nil {
		t.Fatal(err)
	}
	if len(entries) != 1 {
		t.Errorf("export dir has %d entries, want 1", len(entries))
	}
}

func TestWatchKeyRequiresFileMode(t *testing.T) {
	m := newTestModel(t)

	m, _ = update(t, m, keyMsg("w"))

	if m.watching {
		t.Error("watch must not start outside file mode")
	}
	if !strings.Contains(m.statusMsg, "file mode") {
		t.Errorf("statusMsg = %q", m.statusMsg)
	}
}

func TestViewContainsPaneTitles(t *testing.T) {
	m := newTestModel(t)
	m, _ = update(t, m, tea.WindowSizeMsg{Width: 100, Height: 30})

	out := m.View()

	if !strings.Contains(out, "Left JSON") || !strings.Contains(out, "Right JSON") {
		t.Error("view missing pane titles")
	}
}

func TestViewBeforeFirstResize(t *testing.T) {
	ws, err := document.NewWorkspace()
	if err != nil {
		t.Fatal(err)
	}
	t.Cleanup(ws.Close)

	m := New(config.DefaultConfig(), ws, nil, false, "", "")

	if m.View() != "Loading..." {
		t.Errorf("View() = %q before first WindowSizeMsg", m.View())
	}
}
