// Package config holds the rendering options the command-line tool
// exposes (theme, font size, scale, font search paths), with defaults
// that can be overridden by an optional TOML configuration file.
package config

import (
	"fmt"
	"os"

	"github.com/BurntSushi/toml"
)

// Theme names a color scheme by the string the CLI and config file use
// for it, decoupling persisted/user-facing spelling from raster.Theme's
// internal representation.
type Theme string

const (
	ThemeDark  Theme = "dark"
	ThemeLight Theme = "light"
)

// Options holds every tunable knob for a render run.
type Options struct {
	Theme     Theme    `toml:"theme"`
	FontSize  float64  `toml:"font_size"`
	Scale     float64  `toml:"scale"`
	FontPaths []string `toml:"font_paths"`
}

// Default returns the option set math2img itself defaults to.
func Default() Options {
	return Options{
		Theme:    ThemeDark,
		FontSize: 24,
		Scale:    3.0,
	}
}

// Load reads a TOML configuration file and overlays it onto Default.
// Fields absent from the file keep their default value. A missing file
// is not an error: Load returns Default() unchanged.
func Load(path string) (Options, error) {
	opts := Default()
	if path == "" {
		return opts, nil
	}
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return opts, nil
	}

	var raw struct {
		Theme     *string  `toml:"theme"`
		FontSize  *float64 `toml:"font_size"`
		Scale     *float64 `toml:"scale"`
		FontPaths []string `toml:"font_paths"`
	}
	if _, err := toml.DecodeFile(path, &raw); err != nil {
		return Options{}, fmt.Errorf("parsing config %s: %w", path, err)
	}

	if raw.Theme != nil {
		opts.Theme = Theme(*raw.Theme)
	}
	if raw.FontSize != nil {
		opts.FontSize = *raw.FontSize
	}
	if raw.Scale != nil {
		opts.Scale = *raw.Scale
	}
	if len(raw.FontPaths) > 0 {
		opts.FontPaths = raw.FontPaths
	}

	return opts, nil
}
