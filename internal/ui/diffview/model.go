// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package diffview

import (
	"time"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/jeranaias/jdiff-tui/internal/config"
	"github.com/jeranaias/jdiff-tui/internal/document"
	"github.com/jeranaias/jdiff-tui/internal/history"
	"github.com/jeranaias/jdiff-tui/internal/ui/styles"
	"github.com/jeranaias/jdiff-tui/internal/watch"
)

// =============================================================================
// MODEL
// =============================================================================

// Model is the Bubble Tea model for the comparison view.
type Model struct {
	// Styling
	theme *styles.Theme

	// Configuration snapshot
	cfg *config.Config

	// Documents and results
	workspace *document.Workspace

	// Comparison history (nil when disabled)
	store *history.Store

	// Display state
	width       int
	height      int
	displayDiff bool // True once a diff result is being shown
	showHelp    bool
	statusMsg   string
	errMsg      string

	// Fixed-file mode
	fileMode  bool
	leftPath  string
	rightPath string

	// Watching
	watching      bool
	watcher       *watch.Watcher
	watchCh       chan struct{}
	listenerArmed bool // True while a listenWatch command is in flight

	// UI components
	leftPane  viewport.Model
	rightPane viewport.Model
	focused   document.Side

	// Key bindings
	keyMap KeyMap
}

// New creates the comparison view model. store may be nil when history
// recording is disabled. In file mode leftPath and rightPath name the
// fixed source files for reload and watching.
func New(cfg *config.Config, ws *document.Workspace, store *history.Store, fileMode bool, leftPath, rightPath string) Model {
	theme := styles.NewTheme(cfg.UI.Theme, cfg.UI.AsymmetricHighlight)

	m := Model{
		theme:     theme,
		cfg:       cfg,
		workspace: ws,
		store:     store,
		fileMode:  fileMode,
		leftPath:  leftPath,
		rightPath: rightPath,
		leftPane:  viewport.New(40, 20),
		rightPane: viewport.New(40, 20),
		keyMap:    DefaultKeyMap(),
		watchCh:   make(chan struct{}, 1),
	}
	m.refreshPanes()
	return m
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	if m.fileMode && m.cfg.Files.Watch {
		return m.startWatchCmd()
	}
	return nil
}

// =============================================================================
// WATCH PLUMBING
// =============================================================================

// startWatchCmd creates and starts the file watcher and arms its
// listener. The watcher goroutines only touch the buffered channel; all
// model state changes happen on the update loop.
func (m *Model) startWatchCmd() tea.Cmd {
	ch := m.watchCh
	w, err := watch.New(
		[]string{m.leftPath, m.rightPath},
		time.Duration(m.cfg.Files.WatchDebounceMs)*time.Millisecond,
		func() {
			select {
			case ch <- struct{}{}:
			default: // A reload is already pending
			}
		},
	)
	if err != nil {
		m.errMsg = "watch unavailable: " + err.Error()
		return nil
	}
	if err := w.Watch(); err != nil {
		w.Close()
		m.errMsg = "watch unavailable: " + err.Error()
		return nil
	}
	m.watcher = w
	m.watching = true
	if m.listenerArmed {
		// A listener from a previous watch session is still blocked on
		// the channel; it will pick up the next notification.
		return nil
	}
	m.listenerArmed = true
	return listenWatch(ch)
}

// stopWatch shuts the watcher down.
func (m *Model) stopWatch() {
	if m.watcher != nil {
		m.watcher.Close()
		m.watcher = nil
	}
	m.watching = false
}

// listenWatch waits for the next debounced change notification.
func listenWatch(ch chan struct{}) tea.Cmd {
	return func() tea.Msg {
		if _, ok := <-ch; !ok {
			return watchStoppedMsg{}
		}
		return FileChangedMsg{}
	}
}
