// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package config

import (
	"os"
	"path/filepath"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	assert.Equal(t, "left.json", cfg.Files.Left)
	assert.Equal(t, "right.json", cfg.Files.Right)
	assert.Equal(t, "auto", cfg.UI.Theme)
	assert.False(t, cfg.UI.AsymmetricHighlight)
	assert.True(t, cfg.History.Enabled)
	assert.Equal(t, "text", cfg.Export.Format)
	assert.Equal(t, 500, cfg.Files.WatchDebounceMs)
}

func TestValidate_RepairsBadValues(t *testing.T) {
	cfg := DefaultConfig()
	cfg.UI.Theme = "solarized"
	cfg.Export.Format = "pdf"
	cfg.Files.Left = ""
	cfg.Files.WatchDebounceMs = -1
	cfg.History.MaxEntries = -5

	cfg.Validate()

	assert.Equal(t, "auto", cfg.UI.Theme)
	assert.Equal(t, "text", cfg.Export.Format)
	assert.Equal(t, "left.json", cfg.Files.Left)
	assert.Equal(t, 500, cfg.Files.WatchDebounceMs)
	assert.Equal(t, 0, cfg.History.MaxEntries)
	assert.NotEmpty(t, cfg.History.Path)
}

func TestLoadTOML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	content := `
version = "1"

[ui]
asymmetric_highlight = true
theme = "dark"

[files]
left = "a.json"
right = "b.json"
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))

	cfg := DefaultConfig()
	require.NoError(t, LoadTOML(cfg, path))

	assert.True(t, cfg.UI.AsymmetricHighlight)
	assert.Equal(t, "dark", cfg.UI.Theme)
	assert.Equal(t, "a.json", cfg.Files.Left)
	assert.Equal(t, "b.json", cfg.Files.Right)
	// Untouched sections keep defaults.
	assert.True(t, cfg.History.Enabled)
}

func TestLoadJSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	content := `{"ui": {"theme": "light"}, "export": {"format": "markdown"}}`
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))

	cfg := DefaultConfig()
	require.NoError(t, LoadJSON(cfg, path))

	assert.Equal(t, "light", cfg.UI.Theme)
	assert.Equal(t, "markdown", cfg.Export.Format)
}

func TestLoadTOML_Malformed(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte("[ui\nbroken"), 0644))

	err := LoadTOML(DefaultConfig(), path)
	assert.Error(t, err)
}

func TestEnvOverrides(t *testing.T) {
	t.Setenv("JDIFF_EDITOR", "nano")
	t.Setenv("JDIFF_NO_HISTORY", "true")
	t.Setenv("JDIFF_THEME", "dark")

	cfg := DefaultConfig()
	applyEnvOverrides(cfg)

	assert.Equal(t, "nano", cfg.Editor.Command)
	assert.False(t, cfg.History.Enabled)
	assert.Equal(t, "dark", cfg.UI.Theme)
}

// TestConfig_ConcurrentAccess verifies Global/SetGlobal are race-free.
// Run with: go test -race ./internal/config/
func TestConfig_ConcurrentAccess(t *testing.T) {
	ResetGlobalForTesting()
	t.Setenv("JDIFF_CONFIG", filepath.Join(t.TempDir(), "absent.toml"))

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(2)
		go func() {
			defer wg.Done()
			SetGlobal(DefaultConfig())
		}()
		go func() {
			defer wg.Done()
			if Global() == nil {
				t.Error("Global() returned nil")
			}
		}()
	}
	wg.Wait()
	ResetGlobalForTesting()
}
