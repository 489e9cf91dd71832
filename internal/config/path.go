// Package config loads farm settings from viper, the environment and an
// optional .env file.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// AppName names the per-user configuration directory.
const AppName = "farm"

// ExpandPath resolves a leading ~ to the home directory and expands $VAR
// references. An empty path is returned unchanged.
func ExpandPath(path string) string {
	if path == "" {
		return path
	}

	if path == "~" || strings.HasPrefix(path, "~/") {
		if home, err := os.UserHomeDir(); err == nil {
			path = filepath.Join(home, strings.TrimPrefix(path[1:], "/"))
		}
	}

	return os.ExpandEnv(path)
}

// ConfigDir returns $HOME/.config/farm, where config.yaml is searched first.
func ConfigDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get home directory: %w", err)
	}
	return filepath.Join(home, ".config", AppName), nil
}
