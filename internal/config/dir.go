// Package config provides the configuration directory and the yaml
// configuration file for yada.
package config

import (
	"os"
	"path/filepath"
	"runtime"
)

// Dir returns the yada configuration directory.
//
// Resolution:
//   - $YADA_CONFIG_HOME if set (explicit override)
//   - $XDG_CONFIG_HOME/yada if set (respects XDG on any platform)
//   - %AppData%/yada on Windows
//   - ~/.config/yada on macOS and Linux
func Dir() string {
	// Explicit override
	if dir := os.Getenv("YADA_CONFIG_HOME"); dir != "" {
		return dir
	}

	// XDG override (works on any platform)
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, "yada")
	}

	// Windows: use AppData
	if runtime.GOOS == "windows" {
		if appData := os.Getenv("APPDATA"); appData != "" {
			return filepath.Join(appData, "yada")
		}
	}

	// macOS and Linux: ~/.config/yada
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".config", "yada")
}
