package config

import (
	"os"
	"path/filepath"
)

// EnvHome overrides the gymtimer home directory
const EnvHome = "GYMTIMER_HOME"

// GetHome returns $GYMTIMER_HOME or the ~/.gymtimer default
func GetHome() string {
	home := os.Getenv(EnvHome)
	if home == "" {
		homeDir, err := os.UserHomeDir()
		if err != nil {
			return ".gymtimer"
		}
		return filepath.Join(homeDir, ".gymtimer")
	}
	return ExpandPath(home)
}

// GetSettingsPath returns $GYMTIMER_HOME/settings.json
func GetSettingsPath() string {
	return filepath.Join(GetHome(), "settings.json")
}

// ExpandPath expands ~ to home directory
func ExpandPath(path string) string {
	if len(path) > 0 && path[0] == '~' {
		homeDir, err := os.UserHomeDir()
		if err == nil {
			if len(path) == 1 {
				return homeDir
			}
			return filepath.Join(homeDir, path[1:])
		}
	}
	return path
}
