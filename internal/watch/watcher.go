// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package watch monitors the fixed source files for external changes.
package watch

import (
	"context"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
)

// =============================================================================
// FILE WATCHER
// =============================================================================

// Watcher watches a fixed set of files and invokes a callback after
// changes settle. Events are debounced: editors that write via temp file
// plus rename fire several events per save, which collapse into one
// callback.
type Watcher struct {
	files    map[string]struct{} // Absolute paths being watched
	watcher  *fsnotify.Watcher
	debounce time.Duration
	onChange func()

	mu      sync.Mutex
	pending map[string]time.Time // Path -> last change time

	ctx    context.Context
	cancel context.CancelFunc
}

// New creates a watcher over the given files. The callback runs on a
// watcher goroutine; callers that need loop affinity (e.g. a Bubble Tea
// program) should forward it as a message.
func New(files []string, debounce time.Duration, onChange func()) (*Watcher, error) {
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}

	ctx, cancel := context.WithCancel(context.Background())

	w := &Watcher{
		files:    make(map[string]struct{}, len(files)),
		watcher:  fsw,
		debounce: debounce,
		onChange: onChange,
		pending:  make(map[string]time.Time),
		ctx:      ctx,
		cancel:   cancel,
	}
	for _, f := range files {
		abs, err := filepath.Abs(f)
		if err != nil {
			abs = f
		}
		w.files[abs] = struct{}{}
	}
	return w, nil
}

// Watch starts watching. The parent directories are registered rather
// than the files themselves so rename-style saves keep working.
func (w *Watcher) Watch() error {
	dirs := make(map[string]struct{})
	for f := range w.files {
		dirs[filepath.Dir(f)] = struct{}{}
	}
	for dir := range dirs {
		if err := w.watcher.Add(dir); err != nil {
			return err
		}
	}

	go w.processEvents()
	go w.processPending()
	return nil
}

// Close stops watching and releases resources.
func (w *Watcher) Close() error {
	w.cancel()
	return w.watcher.Close()
}

// processEvents filters raw fsnotify events down to the watched files.
func (w *Watcher) processEvents() {
	for {
		select {
		case <-w.ctx.Done():
			return
		case event, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) == 0 {
				continue
			}
			abs, err := filepath.Abs(event.Name)
			if err != nil {
				abs = event.Name
			}
			if _, watched := w.files[abs]; !watched {
				continue
			}
			w.mu.Lock()
			w.pending[abs] = time.Now()
			w.mu.Unlock()
		case _, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			// Watching is best effort; errors degrade to manual refresh.
		}
	}
}

// processPending fires the callback once changes have settled for the
// debounce window.
func (w *Watcher) processPending() {
	ticker := time.NewTicker(w.debounce / 2)
	defer ticker.Stop()

	for {
		select {
		case <-w.ctx.Done():
			return
		case <-ticker.C:
			w.mu.Lock()
			fire := false
			now := time.Now()
			for path, last := range w.pending {
				if now.Sub(last) >= w.debounce {
					delete(w.pending, path)
					fire = true
				}
			}
			w.mu.Unlock()
			if fire && w.onChange != nil {
				w.onChange()
			}
		}
	}
}
