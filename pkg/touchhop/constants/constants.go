// Package constants defines shared constants and environment lookups used
// throughout touchhop and its executables.
package constants

import (
	"os"
	"time"
)

// Development is the environment variable value for development mode.
const Development = "DEV"

// Environment variable names.
const (
	ConfigPathEnvVar   = "TOUCHHOP_CONFIG" // Path of the TOML configuration file
	WindowWidthEnvVar  = "WINDOW_WIDTH"    // Preview window width override in dev mode
	WindowHeightEnvVar = "WINDOW_HEIGHT"   // Preview window height override in dev mode
)

// IsDevMode returns true if running in development mode (ENVIRONMENT=DEV).
func IsDevMode() bool {
	return os.Getenv("ENVIRONMENT") == Development
}

// ConfigPath returns the configuration path from the environment, or
// fallback when the variable is unset.
func ConfigPath(fallback string) string {
	if v := os.Getenv(ConfigPathEnvVar); v != "" {
		return v
	}
	return fallback
}

// MousePointerID is the pointer id given to the system mouse. Touch
// contacts are numbered from zero, so it never collides with a finger.
const MousePointerID = -1

// Default timing and sizing constants.
const (
	DefaultFrameDelay         = 16 * time.Millisecond // Preview redraw interval when VSync is unavailable
	DefaultWindowWidth  int32 = 1024
	DefaultWindowHeight int32 = 768
	DefaultConfigPath         = "touchhop.toml"
)
