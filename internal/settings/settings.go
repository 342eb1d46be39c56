// Package settings persists the user-adjustable options of the display as a
// flat TOML file and reloads them when the file changes on disk.
package settings

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"

	"mfd/internal/theme"
)

const (
	DefaultFPS = 30
	MaxFPS     = 120

	envPrefix = "MFD"
)

// Options are the settings a user can change from the OPTS page.
type Options struct {
	ColorScheme string `mapstructure:"color_scheme"`
	Scanline    bool   `mapstructure:"scanline"`
	Interlace   bool   `mapstructure:"interlace"`
	ShowFPS     bool   `mapstructure:"show_fps"`
	Location    string `mapstructure:"location"`
	FPS         int    `mapstructure:"fps"`
}

// Defaults returns the options used when no file exists.
func Defaults() Options {
	return Options{
		ColorScheme: theme.Default.Name,
		Scanline:    false,
		Interlace:   false,
		ShowFPS:     false,
		Location:    "43035",
		FPS:         DefaultFPS,
	}
}

// Scheme resolves ColorScheme, falling back to the default scheme.
func (o Options) Scheme() theme.Scheme {
	return theme.LookupOrDefault(o.ColorScheme)
}

// Normalize clamps values into their valid ranges.
func (o Options) Normalize() Options {
	if o.FPS <= 0 {
		o.FPS = DefaultFPS
	}
	if o.FPS > MaxFPS {
		o.FPS = MaxFPS
	}
	if s, ok := theme.Lookup(o.ColorScheme); ok {
		o.ColorScheme = s.Name
	} else {
		o.ColorScheme = theme.Default.Name
	}
	o.Location = strings.TrimSpace(o.Location)
	return o
}

// DefaultPath is mfd.toml in the user config directory, or the working
// directory when that cannot be determined.
func DefaultPath() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "mfd.toml"
	}
	return filepath.Join(dir, "mfd", "mfd.toml")
}

func newViper() *viper.Viper {
	v := viper.New()
	d := Defaults()
	v.SetDefault("color_scheme", d.ColorScheme)
	v.SetDefault("scanline", d.Scanline)
	v.SetDefault("interlace", d.Interlace)
	v.SetDefault("show_fps", d.ShowFPS)
	v.SetDefault("location", d.Location)
	v.SetDefault("fps", d.FPS)
	v.SetConfigType("toml")
	v.SetEnvPrefix(envPrefix)
	v.AutomaticEnv()
	return v
}

// Load reads options from path. A missing file is created with defaults.
// Environment variables prefixed MFD_ override file values.
func Load(path string) (Options, error) {
	if _, err := os.Stat(path); errors.Is(err, fs.ErrNotExist) {
		if err := Save(path, Defaults()); err != nil {
			return Options{}, err
		}
	} else if err != nil {
		return Options{}, fmt.Errorf("stat settings: %w", err)
	}
	return read(path)
}

// read loads path without creating it.
func read(path string) (Options, error) {
	v := newViper()
	v.SetConfigFile(path)
	if err := v.ReadInConfig(); err != nil {
		return Options{}, fmt.Errorf("read settings %s: %w", path, err)
	}
	var o Options
	if err := v.Unmarshal(&o); err != nil {
		return Options{}, fmt.Errorf("unmarshal settings: %w", err)
	}
	return o.Normalize(), nil
}

// Save writes o to path, creating the directory if needed.
func Save(path string, o Options) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("mkdir settings dir: %w", err)
	}
	v := viper.New()
	v.SetConfigType("toml")
	v.Set("color_scheme", o.ColorScheme)
	v.Set("scanline", o.Scanline)
	v.Set("interlace", o.Interlace)
	v.Set("show_fps", o.ShowFPS)
	v.Set("location", o.Location)
	v.Set("fps", o.FPS)
	if err := v.WriteConfigAs(path); err != nil {
		return fmt.Errorf("write settings: %w", err)
	}
	return nil
}
