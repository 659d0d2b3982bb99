// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package watch

import (
	"os"
	"path/filepath"
	"sync/atomic"
	"testing"
	"time"
)

func TestWatcher_FiresOnWatchedFileChange(t *testing.T) {
	dir := t.TempDir()
	target := filepath.Join(dir, "left.json")
	if err := os.WriteFile(target, []byte(`{}`), 0644); err != nil {
		t.Fatal(err)
	}

	var fired atomic.Int32
	w, err := New([]string{target}, 50*time.Millisecond, func() {
		fired.Add(1)
	})
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	defer w.Close()
	if err := w.Watch(); err != nil {
		t.Fatalf("Watch failed: %v", err)
	}

	if err := os.WriteFile(target, []byte(`{"a":1}`), 0644); err != nil {
		t.Fatal(err)
	}

	deadline := time.After(2 * time.Second)
	for fired.Load() == 0 {
		select {
		case <-deadline:
			t.Fatal("Callback never fired")
		case <-time.After(10 * time.Millisecond):
		}
	}
}

func TestWatcher_IgnoresUnwatchedFiles(t *testing.T) {
	dir := t.TempDir()
	target := filepath.Join(dir, "left.json")
	other := filepath.Join(dir, "other.json")
	if err := os.WriteFile(target, []byte(`{}`), 0644); err != nil {
		t.Fatal(err)
	}

	var fired atomic.Int32
	w, err := New([]string{target}, 30*time.Millisecond, func() {
		fired.Add(1)
	})
	if err != nil {
		t.Fatal(err)
	}
	defer w.Close()
	if err := w.Watch(); err != nil {
		t.Fatal(err)
	}

	if err := os.WriteFile(other, []byte(`{}`), 0644); err != nil {
		t.Fatal(err)
	}

	time.Sleep(200 * time.Millisecond)
	if fired.Load() != 0 {
		t.Error("Callback fired for an unwatched file")
	}
}

func TestWatcher_DebouncesBursts(t *testing.T) {
	dir := t.TempDir()
	target := filepath.Join(dir, "left.json")
	if err := os.WriteFile(target, []byte(`{}`), 0644); err != nil {
		t.Fatal(err)
	}

	var fired atomic.Int32
	w, err := New([]string{target}, 100*time.Millisecond, func() {
		fired.Add(1)
	})
	if err != nil {
		t.Fatal(err)
	}
	defer w.Close()
	if err := w.Watch(); err != nil {
		t.Fatal(err)
	}

	// A burst of writes inside the debounce window.
	for i := 0; i < 5; i++ {
		if err := os.WriteFile(target, []byte(`{}`), 0644); err != nil {
			t.Fatal(err)
		}
		time.Sleep(10 * time.Millisecond)
	}

	time.Sleep(400 * time.Millisecond)
	if got := fired.Load(); got != 1 {
		t.Errorf("Expected exactly 1 callback for a burst, got %d", got)
	}
}
