// Package paths resolves the on-disk locations sketchpad reads and writes.
package paths

import (
	"os"
	"path/filepath"
	"strings"
)

const appName = "sketchpad"

// LocalConfigDir is the per-project config directory checked before the
// user config directory.
const LocalConfigDir = ".sketchpad"

// ConfigFileName is the config file name in either location.
const ConfigFileName = "config.yaml"

// UserConfigDir returns ~/.config/sketchpad, honouring XDG_CONFIG_HOME.
func UserConfigDir() string {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, appName)
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(".", LocalConfigDir)
	}
	return filepath.Join(home, ".config", appName)
}

// UserConfigPath is the default config file written on first run.
func UserConfigPath() string {
	return filepath.Join(UserConfigDir(), ConfigFileName)
}

// LocalConfigPath is the project-local config file.
func LocalConfigPath() string {
	return filepath.Join(LocalConfigDir, ConfigFileName)
}

// DefaultStoragePath is where the key/value store lives unless configured.
func DefaultStoragePath() string {
	return filepath.Join(UserConfigDir(), "storage.db")
}

// DefaultLogPath is the debug log location.
func DefaultLogPath() string {
	return "debug.log"
}

// Expand resolves a leading "~" to the user's home directory and cleans the
// result. Empty input stays empty.
func Expand(path string) string {
	if path == "" {
		return ""
	}
	if path == "~" || strings.HasPrefix(path, "~/") {
		if home, err := os.UserHomeDir(); err == nil {
			path = filepath.Join(home, strings.TrimPrefix(path, "~"))
		}
	}
	return filepath.Clean(path)
}
