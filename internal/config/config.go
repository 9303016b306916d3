// Copyright 2026 The Fluet Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package config loads the host configuration for the fluet command.
//
// Configuration lives in a TOML file. The command looks for it at
// $XDG_CONFIG_HOME/fluet/config.toml (via os.UserConfigDir); a missing
// file is not an error and yields the defaults.
package config // import "github.com/fluetlang/fluet/internal/config"

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/pelletier/go-toml/v2"
)

// ConfigFileName is the name of the configuration file inside the
// fluet configuration directory.
const ConfigFileName = "config.toml"

// A Config holds the host settings of the fluet command.
type Config struct {
	REPL REPLConfig `toml:"repl"`
}

// A REPLConfig holds the settings of the interactive interpreter.
type REPLConfig struct {
	// Prompt is printed before each line of input.
	Prompt string `toml:"prompt"`

	// HistoryFile is the path of the readline history file.
	// An empty value disables persistent history.
	HistoryFile string `toml:"history_file"`

	// Color controls ANSI coloring of error messages:
	// "auto" (color when stderr is a terminal), "always", or "never".
	Color string `toml:"color"`
}

// Default returns the configuration used when no file is present.
func Default() *Config {
	return &Config{
		REPL: REPLConfig{
			Prompt: "> ",
			Color:  "auto",
		},
	}
}

// Load reads the configuration from path.
// Unset fields keep their default values.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	config := Default()
	if err := toml.Unmarshal(data, config); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}
	if err := config.validate(); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return config, nil
}

// LoadDefault reads the configuration from the user's configuration
// directory. A missing file yields the defaults.
func LoadDefault() (*Config, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return Default(), nil
	}
	path := filepath.Join(dir, "fluet", ConfigFileName)
	config, err := Load(path)
	if errors.Is(err, fs.ErrNotExist) {
		return Default(), nil
	}
	return config, err
}

func (c *Config) validate() error {
	switch c.REPL.Color {
	case "auto", "always", "never":
		return nil
	}
	return fmt.Errorf("invalid repl.color value %q (want auto, always, or never)", c.REPL.Color)
}
