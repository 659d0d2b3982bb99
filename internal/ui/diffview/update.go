// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package diffview

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/jeranaias/jdiff-tui/internal/diff"
	"github.com/jeranaias/jdiff-tui/internal/document"
	"github.com/jeranaias/jdiff-tui/internal/editor"
	"github.com/jeranaias/jdiff-tui/internal/export"
	"github.com/jeranaias/jdiff-tui/internal/history"
)

// =============================================================================
// UPDATE
// =============================================================================

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.resizePanes()
		m.refreshPanes()
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)

	case EditorFinishedMsg:
		return m.handleEditorFinished(msg)

	case FileChangedMsg:
		m.listenerArmed = false
		if !m.watching {
			return m, nil
		}
		m.reloadFixedAndCompare()
		m.listenerArmed = true
		return m, listenWatch(m.watchCh)

	case watchStoppedMsg:
		m.listenerArmed = false
		return m, nil
	}

	return m, nil
}

// handleKey dispatches a key press.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	// Help overlay swallows everything except its own toggles.
	if m.showHelp {
		if key.Matches(msg, m.keyMap.Help) || key.Matches(msg, m.keyMap.Quit) || msg.String() == "esc" {
			m.showHelp = false
		}
		return m, nil
	}

	switch {
	case key.Matches(msg, m.keyMap.Quit):
		m.stopWatch()
		return m, tea.Quit

	case key.Matches(msg, m.keyMap.Help):
		m.showHelp = true
		return m, nil

	case key.Matches(msg, m.keyMap.EditLeft):
		return m, m.editCmd(document.Left)

	case key.Matches(msg, m.keyMap.EditRight):
		return m, m.editCmd(document.Right)

	case key.Matches(msg, m.keyMap.Clear):
		m.errMsg = ""
		m.statusMsg = ""
		m.displayDiff = false
		if err := m.workspace.Clear(); err != nil {
			m.errMsg = err.Error()
		}
		m.refreshPanes()
		return m, nil

	case key.Matches(msg, m.keyMap.Diff):
		m.runDiff()
		return m, nil

	case key.Matches(msg, m.keyMap.Export):
		m.runExport()
		return m, nil

	case key.Matches(msg, m.keyMap.Watch):
		if !m.fileMode {
			m.statusMsg = "watching requires file mode (-f)"
			return m, nil
		}
		if m.watching {
			m.stopWatch()
			m.statusMsg = "watch off"
			return m, nil
		}
		cmd := m.startWatchCmd()
		if m.watching {
			m.statusMsg = "watch on"
		}
		return m, cmd

	case key.Matches(msg, m.keyMap.SwitchPane):
		if m.focused == document.Left {
			m.focused = document.Right
		} else {
			m.focused = document.Left
		}
		return m, nil
	}

	// Everything else scrolls the focused pane.
	var cmd tea.Cmd
	if m.focused == document.Left {
		m.leftPane, cmd = m.leftPane.Update(msg)
	} else {
		m.rightPane, cmd = m.rightPane.Update(msg)
	}
	return m, cmd
}

// =============================================================================
// ACTIONS
// =============================================================================

// editCmd opens the side's working file in the external editor.
// tea.ExecProcess suspends the TUI, restores the terminal while the
// editor runs, and re-enters raw mode afterwards on every exit path.
func (m Model) editCmd(side document.Side) tea.Cmd {
	cmd := editor.Command(m.cfg, m.workspace.Slot(side).Path())
	return tea.ExecProcess(cmd, func(err error) tea.Msg {
		return EditorFinishedMsg{Side: side, Err: err}
	})
}

// handleEditorFinished reloads the edited side once the editor exits.
func (m Model) handleEditorFinished(msg EditorFinishedMsg) (tea.Model, tea.Cmd) {
	m.errMsg = ""
	if msg.Err != nil {
		m.errMsg = "editor: " + msg.Err.Error()
		return m, nil
	}
	if err := m.workspace.Reload(msg.Side); err != nil {
		// Previous pane content stays; only the status line changes.
		m.errMsg = err.Error()
		return m, nil
	}
	m.displayDiff = false
	m.refreshPanes()
	return m, nil
}

// runDiff compares both documents and shows the result. On failure the
// panes keep their previous content and the status line carries the
// error; the application stays fully usable.
func (m *Model) runDiff() {
	m.errMsg = ""
	res, err := m.workspace.Compare(diff.Options{Asymmetric: m.cfg.UI.AsymmetricHighlight})
	if err != nil {
		m.errMsg = err.Error()
		return
	}
	m.displayDiff = true
	m.statusMsg = res.Summary()
	m.refreshPanes()
	m.recordHistory(res)
}

// recordHistory stores the run in the comparison history. History
// failures are reported but never block the diff itself.
func (m *Model) recordHistory(res diff.Result) {
	if m.store == nil {
		return
	}
	_, err := m.store.Record(history.Entry{
		LeftHash:  m.workspace.Slot(document.Left).Hash(),
		RightHash: m.workspace.Slot(document.Right).Hash(),
		Keys:      res.Stats.Keys,
		Changed:   res.Stats.Changed,
		Summary:   res.Summary(),
		Rendered:  export.Render(res),
	})
	if err != nil {
		m.errMsg = "history: " + err.Error()
	}
}

// runExport writes the last diff in the configured format.
func (m *Model) runExport() {
	res, ok := m.workspace.LastDiff()
	if !ok {
		m.statusMsg = "nothing to export; run a diff first"
		return
	}
	opts := &export.Options{OutputDir: m.cfg.Export.Dir, IncludeMetadata: true}
	exp, err := export.ForFormat(m.cfg.Export.Format, opts)
	if err != nil {
		m.errMsg = err.Error()
		return
	}
	path, err := export.Save(exp, res, opts)
	if err != nil {
		m.errMsg = err.Error()
		return
	}
	m.statusMsg = "exported to " + path
}

// reloadFixedAndCompare refreshes both slots from the fixed source files
// and recomputes the diff. Used by the file watcher path.
func (m *Model) reloadFixedAndCompare() {
	m.errMsg = ""
	if err := m.workspace.LoadFixed(m.leftPath, m.rightPath); err != nil {
		m.errMsg = err.Error()
		return
	}
	m.runDiff()
}
