// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package config provides unified configuration loading and management for jdiff.
//
// Supports both TOML and JSON configuration formats, with sensible defaults,
// environment variable overrides, and validation.
//
// Configuration file locations (in order of precedence):
//   - $JDIFF_CONFIG (explicit path)
//   - ~/.jdiff/config.toml
//   - ~/.jdiff/config.json
//   - Built-in defaults
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"sync"

	"github.com/BurntSushi/toml"
)

// =============================================================================
// CONFIG STRUCTURES
// =============================================================================

// Config represents the complete jdiff configuration.
type Config struct {
	Version string `toml:"version" json:"version"`

	// Editor configuration
	Editor EditorConfig `toml:"editor" json:"editor"`

	// UI configuration
	UI UIConfig `toml:"ui" json:"ui"`

	// Files configuration (fixed-file mode)
	Files FilesConfig `toml:"files" json:"files"`

	// History configuration
	History HistoryConfig `toml:"history" json:"history"`

	// Export configuration
	Export ExportConfig `toml:"export" json:"export"`
}

// EditorConfig controls external editor invocation.
type EditorConfig struct {
	// Command is the editor executable. Empty means $EDITOR, then "vim".
	Command string `toml:"command" json:"command"`
	// Args are extra arguments passed before the file path.
	Args []string `toml:"args" json:"args"`
}

// UIConfig contains display configuration.
type UIConfig struct {
	// AsymmetricHighlight reproduces the legacy one-sided diff coloring:
	// the left half of a differing pair keeps the unchanged color and
	// only the right half is marked changed.
	AsymmetricHighlight bool `toml:"asymmetric_highlight" json:"asymmetric_highlight"`
	// Theme is "auto", "dark", or "light".
	Theme string `toml:"theme" json:"theme"`
	// Wrap enables soft wrapping of long lines in the panes.
	Wrap bool `toml:"wrap" json:"wrap"`
}

// FilesConfig contains fixed-file mode configuration.
type FilesConfig struct {
	// Left is the left-side source file for -f mode.
	Left string `toml:"left" json:"left"`
	// Right is the right-side source file for -f mode.
	Right string `toml:"right" json:"right"`
	// Watch enables fsnotify watching of the source files in -f mode.
	Watch bool `toml:"watch" json:"watch"`
	// WatchDebounceMs is the debounce window for watch events.
	WatchDebounceMs int `toml:"watch_debounce_ms" json:"watch_debounce_ms"`
}

// HistoryConfig contains comparison history configuration.
type HistoryConfig struct {
	// Enabled turns history recording on or off.
	Enabled bool `toml:"enabled" json:"enabled"`
	// Path is the SQLite database path (empty = ~/.jdiff/history.db).
	Path string `toml:"path" json:"path"`
	// MaxEntries is the prune threshold; 0 disables pruning.
	MaxEntries int `toml:"max_entries" json:"max_entries"`
}

// ExportConfig contains diff export configuration.
type ExportConfig struct {
	// Format is "text", "markdown", or "json".
	Format string `toml:"format" json:"format"`
	// Dir is the output directory for exported files.
	Dir string `toml:"dir" json:"dir"`
}

// =============================================================================
// DEFAULTS
// =============================================================================

// CurrentVersion is the config schema version.
const CurrentVersion = "1"

// DefaultConfig returns a configuration with built-in defaults.
func DefaultConfig() *Config {
	return &Config{
		Version: CurrentVersion,
		Editor: EditorConfig{
			Command: "",
			Args:    nil,
		},
		UI: UIConfig{
			AsymmetricHighlight: false,
			Theme:               "auto",
			Wrap:                false,
		},
		Files: FilesConfig{
			Left:            "left.json",
			Right:           "right.json",
			Watch:           false,
			WatchDebounceMs: 500,
		},
		History: HistoryConfig{
			Enabled:    true,
			Path:       "",
			MaxEntries: 500,
		},
		Export: ExportConfig{
			Format: "text",
			Dir:    ".",
		},
	}
}

// ConfigDir returns the jdiff configuration directory (~/.jdiff).
func ConfigDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ".jdiff"
	}
	return filepath.Join(home, ".jdiff")
}

// DefaultHistoryPath returns the default history database location.
func DefaultHistoryPath() string {
	return filepath.Join(ConfigDir(), "history.db")
}

// =============================================================================
// LOADING
// =============================================================================

// Load reads the configuration from the standard locations, applies
// environment overrides, and validates the result. A missing config file
// is not an error; defaults are used.
func Load() (*Config, error) {
	cfg := DefaultConfig()

	path := os.Getenv("JDIFF_CONFIG")
	if path != "" {
		if err := loadFromPath(cfg, path); err != nil {
			return nil, err
		}
	} else {
		tomlPath := filepath.Join(ConfigDir(), "config.toml")
		jsonPath := filepath.Join(ConfigDir(), "config.json")
		switch {
		case fileExists(tomlPath):
			if err := LoadTOML(cfg, tomlPath); err != nil {
				return nil, err
			}
		case fileExists(jsonPath):
			if err := LoadJSON(cfg, jsonPath); err != nil {
				return nil, err
			}
		}
	}

	applyEnvOverrides(cfg)
	cfg.Validate()
	return cfg, nil
}

// LoadTOML merges TOML configuration from path into cfg.
func LoadTOML(cfg *Config, path string) error {
	if _, err := toml.DecodeFile(path, cfg); err != nil {
		return fmt.Errorf("failed to parse %s: %w", path, err)
	}
	return nil
}

// LoadJSON merges JSON configuration from path into cfg.
func LoadJSON(cfg *Config, path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read %s: %w", path, err)
	}
	if err := json.Unmarshal(data, cfg); err != nil {
		return fmt.Errorf("failed to parse %s: %w", path, err)
	}
	return nil
}

// loadFromPath picks the decoder by file extension.
func loadFromPath(cfg *Config, path string) error {
	if filepath.Ext(path) == ".json" {
		return LoadJSON(cfg, path)
	}
	return LoadTOML(cfg, path)
}

func fileExists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && !info.IsDir()
}

// =============================================================================
// SAVING
// =============================================================================

// Save writes cfg as TOML to the default location.
func Save(cfg *Config) error {
	path := filepath.Join(ConfigDir(), "config.toml")
	if err := os.MkdirAll(ConfigDir(), 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", path, err)
	}
	defer f.Close()
	if err := toml.NewEncoder(f).Encode(cfg); err != nil {
		return fmt.Errorf("failed to encode config: %w", err)
	}
	return nil
}

// =============================================================================
// ENVIRONMENT OVERRIDES
// =============================================================================

// applyEnvOverrides applies JDIFF_* environment variables on top of the
// loaded configuration.
func applyEnvOverrides(cfg *Config) {
	if editor := os.Getenv("JDIFF_EDITOR"); editor != "" {
		cfg.Editor.Command = editor
	}
	if v := os.Getenv("JDIFF_NO_HISTORY"); v != "" {
		if off, err := strconv.ParseBool(v); err == nil && off {
			cfg.History.Enabled = false
		}
	}
	if theme := os.Getenv("JDIFF_THEME"); theme != "" {
		cfg.UI.Theme = theme
	}
}

// =============================================================================
// VALIDATION
// =============================================================================

// Validate repairs out-of-range values in place. It never fails: bad
// values are clamped or reset to defaults so a hand-edited config cannot
// keep the tool from starting.
func (c *Config) Validate() {
	switch c.UI.Theme {
	case "auto", "dark", "light":
	default:
		c.UI.Theme = "auto"
	}

	switch c.Export.Format {
	case "text", "markdown", "json":
	default:
		c.Export.Format = "text"
	}

	if c.Files.Left == "" {
		c.Files.Left = "left.json"
	}
	if c.Files.Right == "" {
		c.Files.Right = "right.json"
	}
	if c.Files.WatchDebounceMs <= 0 {
		c.Files.WatchDebounceMs = 500
	}

	if c.History.MaxEntries < 0 {
		c.History.MaxEntries = 0
	}
	if c.History.Path == "" {
		c.History.Path = DefaultHistoryPath()
	}

	if c.Export.Dir == "" {
		c.Export.Dir = "."
	}
}

// =============================================================================
// GLOBAL ACCESS
// =============================================================================

var (
	globalConfig *Config
	globalMu     sync.RWMutex
)

// Global returns the process-wide configuration, loading it on first use.
func Global() *Config {
	globalMu.RLock()
	if globalConfig != nil {
		defer globalMu.RUnlock()
		return globalConfig
	}
	globalMu.RUnlock()

	globalMu.Lock()
	defer globalMu.Unlock()
	if globalConfig == nil {
		cfg, err := Load()
		if err != nil {
			cfg = DefaultConfig()
			cfg.Validate()
		}
		globalConfig = cfg
	}
	return globalConfig
}

// SetGlobal replaces the process-wide configuration.
func SetGlobal(cfg *Config) {
	globalMu.Lock()
	defer globalMu.Unlock()
	globalConfig = cfg
}

// ReloadGlobal re-reads the configuration from disk.
func ReloadGlobal() (*Config, error) {
	cfg, err := Load()
	if err != nil {
		return nil, err
	}
	SetGlobal(cfg)
	return cfg, nil
}

// ResetGlobalForTesting clears the global config. Test helper only.
func ResetGlobalForTesting() {
	globalMu.Lock()
	defer globalMu.Unlock()
	globalConfig = nil
}
