// Package config loads user preferences from an optional TOML file.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/pelletier/go-toml/v2"

	"github.com/dshills/prism/internal/render"
	"github.com/dshills/prism/internal/theme"
)

// Config holds user-configurable rendering defaults. Command-line flags
// take precedence over every field.
type Config struct {
	// Theme is the default color theme name.
	Theme string `toml:"theme"`

	// TabSize is the default tab stop width.
	TabSize int `toml:"tab_size"`

	// LineNumbers enables the numeric gutter by default.
	LineNumbers bool `toml:"line_numbers"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Theme:   theme.DefaultName,
		TabSize: render.DefaultTabSize,
	}
}

// Path returns the default config file location.
func Path() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return ""
	}
	return filepath.Join(dir, "prism", "config.toml")
}

// Load reads configuration from path, applying defaults for missing
// fields. A missing file is not an error; a malformed one is.
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("reading config file %s: %w", path, err)
	}

	if err := toml.Unmarshal(data, &cfg); err != nil {
		return Default(), fmt.Errorf("parsing config file %s: %w", path, err)
	}
	if cfg.Theme == "" {
		cfg.Theme = theme.DefaultName
	}
	if cfg.TabSize < 1 {
		cfg.TabSize = render.DefaultTabSize
	}
	return cfg, nil
}
