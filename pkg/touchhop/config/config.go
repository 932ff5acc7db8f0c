// Package config loads the TOML configuration shared by the touchhop
// executables.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BrandonKowalski/touchhop/pkg/touchhop/constants"
	"github.com/BrandonKowalski/touchhop/pkg/touchhop/geom"
	"github.com/BurntSushi/toml"
)

// View is a statically placed view. Coordinates are screen units.
type View struct {
	Name    string  `toml:"name"`
	X       float64 `toml:"x"`
	Y       float64 `toml:"y"`
	Width   float64 `toml:"width"`
	Height  float64 `toml:"height"`
	Capture bool    `toml:"capture"`
}

// Rect returns the view's bounds.
func (v View) Rect() geom.Rect {
	return geom.Rect{X: v.X, Y: v.Y, Width: v.Width, Height: v.Height}
}

// Evdev configures the touchscreen reader.
type Evdev struct {
	Device       string  `toml:"device"` // Empty selects the first touchscreen found
	ScreenWidth  float64 `toml:"screen_width"`
	ScreenHeight float64 `toml:"screen_height"`
}

// Preview configures the SDL preview window.
type Preview struct {
	Title  string `toml:"title"`
	Width  int32  `toml:"width"`
	Height int32  `toml:"height"`
}

type Config struct {
	LogLevel string  `toml:"log_level"`
	LogPath  string  `toml:"log_path"`
	Density  float64 `toml:"density"`
	Views    []View  `toml:"view"`
	Evdev    Evdev   `toml:"evdev"`
	Preview  Preview `toml:"preview"`
}

// Default returns the configuration used when no file is given: two side
// by side views on an 800x480 screen.
func Default() *Config {
	return &Config{
		LogLevel: "info",
		Density:  1,
		Views: []View{
			{Name: "left", X: 0, Y: 0, Width: 400, Height: 480},
			{Name: "right", X: 400, Y: 0, Width: 400, Height: 480},
		},
		Evdev: Evdev{
			ScreenWidth:  800,
			ScreenHeight: 480,
		},
		Preview: Preview{
			Title:  "touchhop",
			Width:  800,
			Height: 480,
		},
	}
}

// Load reads path on top of the defaults and validates the result. Keys
// missing from the file keep their default value; a [[view]] list in the
// file replaces the default views.
func Load(path string) (*Config, error) {
	c := Default()
	c.Views = nil

	md, err := toml.DecodeFile(path, c)
	if err != nil {
		return nil, fmt.Errorf("config: decode %s: %w", path, err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		return nil, fmt.Errorf("config: %s: unknown keys %s", path, strings.Join(keys, ", "))
	}
	if !md.IsDefined("view") {
		c.Views = Default().Views
	}

	if err := c.Validate(); err != nil {
		return nil, fmt.Errorf("config: %s: %w", path, err)
	}
	return c, nil
}

// LoadOrDefault loads path when it exists and returns Default otherwise.
func LoadOrDefault(path string) (*Config, error) {
	if path == "" {
		path = constants.ConfigPath(constants.DefaultConfigPath)
	}
	if _, err := os.Stat(path); errors.Is(err, os.ErrNotExist) {
		return Default(), nil
	}
	return Load(path)
}

// Write encodes c to path, creating parent directories.
func (c *Config) Write(path string) error {
	var buffer bytes.Buffer
	if err := toml.NewEncoder(&buffer).Encode(c); err != nil {
		return fmt.Errorf("config: encode: %w", err)
	}
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("config: %w", err)
		}
	}
	return os.WriteFile(path, buffer.Bytes(), 0644)
}

// Validate reports the first problem found in c.
func (c *Config) Validate() error {
	if c.Density < 0 {
		return fmt.Errorf("density %g is negative", c.Density)
	}

	names := make(map[string]bool, len(c.Views))
	for i, v := range c.Views {
		if v.Width <= 0 || v.Height <= 0 {
			return fmt.Errorf("view %d (%q) has an empty rectangle", i, v.Name)
		}
		if v.Name != "" {
			if names[v.Name] {
				return fmt.Errorf("view name %q is used twice", v.Name)
			}
			names[v.Name] = true
		}
	}

	if c.Evdev.ScreenWidth <= 0 || c.Evdev.ScreenHeight <= 0 {
		return errors.New("evdev screen size must be positive")
	}
	if c.Preview.Width <= 0 || c.Preview.Height <= 0 {
		return errors.New("preview window size must be positive")
	}
	return nil
}
