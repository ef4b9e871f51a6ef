// Package config loads editor settings from a TOML file.
package config

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/pelletier/go-toml/v2"

	"github.com/ionut-t/tedit/core"
)

var ErrInvalidConfig = errors.New("invalid config")

// Theme holds ANSI/hex colour strings understood by lipgloss.
type Theme struct {
	Border     string `toml:"border"`
	Title      string `toml:"title"`
	LineNumber string `toml:"line_number"`
	CursorFg   string `toml:"cursor_fg"`
	CursorBg   string `toml:"cursor_bg"`
	Message    string `toml:"message"`
	Error      string `toml:"error"`
}

type Config struct {
	LineNumbers            bool   `toml:"line_numbers"`
	VerticalMotion         string `toml:"vertical_motion"`
	StripPlaceholderOnSave bool   `toml:"strip_placeholder_on_save"`
	LogFile                string `toml:"log_file"`
	Theme                  Theme  `toml:"theme"`
}

func Default() Config {
	return Config{
		LineNumbers:    true,
		VerticalMotion: string(core.VerticalPreserve),
		Theme: Theme{
			Border:     "62",
			Title:      "255",
			LineNumber: "34",
			CursorFg:   "0",
			CursorBg:   "250",
			Message:    "34",
			Error:      "208",
		},
	}
}

// DefaultPath returns $XDG_CONFIG_HOME/tedit/config.toml (or the platform equivalent).
func DefaultPath() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "tedit", "config.toml"), nil
}

// Load reads the file at path on top of the defaults. A missing file is not
// an error.
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return Default(), nil
		}
		return Config{}, fmt.Errorf("reading config file %s: %w", path, err)
	}

	cfg, err := parse(data)
	if err != nil {
		return Config{}, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

// LoadFromReader reads configuration from an io.Reader.
func LoadFromReader(r io.Reader) (Config, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return Config{}, fmt.Errorf("reading config: %w", err)
	}
	return parse(data)
}

func parse(data []byte) (Config, error) {
	cfg := Default()
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c Config) Validate() error {
	if !core.VerticalPolicy(c.VerticalMotion).Valid() {
		return fmt.Errorf("%w: vertical_motion %q must be %q or %q",
			ErrInvalidConfig, c.VerticalMotion, core.VerticalPreserve, core.VerticalLineEnd)
	}
	return nil
}

// EditorOptions maps the file settings onto the core editor options.
func (c Config) EditorOptions() core.Options {
	return core.Options{
		VerticalMotion:         core.VerticalPolicy(c.VerticalMotion),
		StripPlaceholderOnSave: c.StripPlaceholderOnSave,
		ShowLineNumbers:        c.LineNumbers,
	}
}
