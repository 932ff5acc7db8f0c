package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/BrandonKowalski/touchhop/pkg/touchhop/constants"
	"github.com/BrandonKowalski/touchhop/pkg/touchhop/geom"
)

func writeFile(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "touchhop.toml")
	if err := os.WriteFile(path, []byte(body), 0644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoad(t *testing.T) {
	path := writeFile(t, `
log_level = "debug"
density = 2.0

[[view]]
name = "slider"
x = 10
y = 20
width = 300
height = 40
capture = true

[[view]]
name = "pad"
y = 100
width = 300
height = 300

[evdev]
device = "/dev/input/event3"
`)

	c, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}

	if c.LogLevel != "debug" || c.Density != 2 {
		t.Errorf("top level = %q, %g", c.LogLevel, c.Density)
	}
	if len(c.Views) != 2 {
		t.Fatalf("views = %d, want 2", len(c.Views))
	}
	if v := c.Views[0]; v.Name != "slider" || !v.Capture || v.Rect() != (geom.Rect{X: 10, Y: 20, Width: 300, Height: 40}) {
		t.Errorf("first view = %+v", v)
	}
	if c.Evdev.Device != "/dev/input/event3" {
		t.Errorf("device = %q", c.Evdev.Device)
	}
	// Unset keys keep their defaults.
	if c.Evdev.ScreenWidth != 800 || c.Preview.Title != "touchhop" {
		t.Errorf("defaults lost: %+v %+v", c.Evdev, c.Preview)
	}
}

func TestLoadWithoutViewsKeepsDefaults(t *testing.T) {
	c, err := Load(writeFile(t, `log_level = "warn"`))
	if err != nil {
		t.Fatal(err)
	}
	if len(c.Views) != len(Default().Views) {
		t.Errorf("views = %+v, want the defaults", c.Views)
	}
}

func TestLoadRejects(t *testing.T) {
	tests := []struct {
		name string
		body string
		want string
	}{
		{"unknown key", `colour = "red"`, "unknown keys colour"},
		{"empty view", "[[view]]\nname = \"a\"\nwidth = 0\nheight = 10", "empty rectangle"},
		{"duplicate name", "[[view]]\nname = \"a\"\nwidth = 1\nheight = 1\n[[view]]\nname = \"a\"\nwidth = 1\nheight = 1", "used twice"},
		{"negative density", "density = -1.0", "negative"},
		{"bad screen", "[evdev]\nscreen_width = 0.0", "screen size"},
		{"bad window", "[preview]\nheight = 0", "window size"},
		{"syntax", "log_level = ", "decode"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load(writeFile(t, tt.body))
			if err == nil || !strings.Contains(err.Error(), tt.want) {
				t.Errorf("err = %v, want it to mention %q", err, tt.want)
			}
		})
	}
}

func TestWriteThenLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "touchhop.toml")
	want := Default()
	want.Views[1].Capture = true
	want.LogPath = "/tmp/touchhop.log"

	if err := want.Write(path); err != nil {
		t.Fatal(err)
	}
	got, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}
	if !got.Views[1].Capture || got.LogPath != want.LogPath || got.Preview != want.Preview {
		t.Errorf("loaded %+v, want %+v", got, want)
	}
}

func TestLoadOrDefault(t *testing.T) {
	c, err := LoadOrDefault(filepath.Join(t.TempDir(), "missing.toml"))
	if err != nil {
		t.Fatal(err)
	}
	if c.Preview.Width != 800 {
		t.Errorf("missing file did not yield defaults")
	}

	path := writeFile(t, `density = 3.0`)
	t.Setenv(constants.ConfigPathEnvVar, path)
	c, err = LoadOrDefault("")
	if err != nil {
		t.Fatal(err)
	}
	if c.Density != 3 {
		t.Errorf("density = %g, want the value from %s", c.Density, constants.ConfigPathEnvVar)
	}
}
