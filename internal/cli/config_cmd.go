// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// config_cmd.go - Configuration inspection commands.

package cli

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"

	"github.com/jeranaias/jdiff-tui/internal/config"
)

// =============================================================================
// CONFIG COMMAND
// =============================================================================

// HandleConfig runs "jdiff config [show|path|init]".
func HandleConfig(args Args) int {
	p := NewArgParser(args.Raw)

	switch p.Subcommand() {
	case "", "show":
		return configShow(args.JSON || p.BoolFlag("json"))

	case "path":
		fmt.Println(configPath())
		return ExitNoDiff

	case "init":
		return configInit()

	default:
		return fail(fmt.Errorf("unknown config subcommand: %s", p.Subcommand()))
	}
}

// configPath returns the active config file location.
func configPath() string {
	if path := os.Getenv("JDIFF_CONFIG"); path != "" {
		return path
	}
	return filepath.Join(config.ConfigDir(), "config.toml")
}

func configShow(jsonMode bool) int {
	cfg := config.Global()

	if jsonMode {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		if err := enc.Encode(cfg); err != nil {
			return fail(err)
		}
		return ExitNoDiff
	}

	fmt.Println(RenderConditional(TitleStyle, "jdiff configuration"))
	fmt.Println(RenderConditional(DimStyle, "# "+configPath()))
	if err := toml.NewEncoder(os.Stdout).Encode(cfg); err != nil {
		return fail(err)
	}
	return ExitNoDiff
}

func configInit() int {
	// Init always targets the default location, not JDIFF_CONFIG.
	path := filepath.Join(config.ConfigDir(), "config.toml")
	if _, err := os.Stat(path); err == nil {
		return fail(fmt.Errorf("config file already exists: %s", path))
	}

	if err := config.Save(config.DefaultConfig()); err != nil {
		return fail(err)
	}
	fmt.Println("wrote " + path)
	return ExitNoDiff
}
