// Package config reads the optional viewer config file. CLI flags always win
// over file values; a missing file silently yields defaults.
package config

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Config is the optional on-disk configuration, by default at
// ~/.config/tabx/config.yaml.
type Config struct {
	Display Display `yaml:"display"`
	Theme   Theme   `yaml:"theme"`
}

// Display holds the initial geometry of a freshly opened view.
type Display struct {
	// ColumnWidth is the starting width for data columns. Zero keeps the
	// built-in default.
	ColumnWidth int `yaml:"column_width"`
	// IndexWidth is the starting width of the index column.
	IndexWidth int `yaml:"index_width"`
	// HideHeader starts views without the header row.
	HideHeader bool `yaml:"hide_header"`
	// HideIndex starts views without the index column.
	HideIndex bool `yaml:"hide_index"`
}

// Theme holds color overrides as lipgloss-compatible color strings (ANSI
// numbers or hex).
type Theme struct {
	Header       string `yaml:"header"`
	Cursor       string `yaml:"cursor"`
	Selection    string `yaml:"selection"`
	Match        string `yaml:"match"`
	CurrentMatch string `yaml:"current_match"`
	Error        string `yaml:"error"`
}

// Default returns the configuration used when no file exists.
func Default() *Config {
	return &Config{}
}

// DefaultPath returns the conventional config location, honoring
// XDG_CONFIG_HOME, or "" when no home directory can be determined.
func DefaultPath() string {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, "tabx", "config.yaml")
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".config", "tabx", "config.yaml")
}

// Load reads the config at path. A missing file is not an error; malformed
// YAML is.
func Load(path string) (*Config, error) {
	if path == "" {
		return Default(), nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return Default(), nil
		}
		return nil, err
	}
	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}
