package platform

import (
	"fmt"
	"os"
	"path/filepath"
)

// Per-user directory names
const (
	AppDirName      = "desktop-groups"
	LanguageDirName = "lang"
)

// UserConfigDir returns the launcher's per-user configuration directory
func UserConfigDir() (string, error) {
	configDir, err := os.UserConfigDir()
	if err != nil {
		homeDir, homeErr := os.UserHomeDir()
		if homeErr != nil {
			return "", fmt.Errorf("failed to get user config directory: %w", err)
		}
		configDir = filepath.Join(homeDir, ".config")
	}
	return filepath.Join(configDir, AppDirName), nil
}

// UserLanguageDir returns the directory searched for user language packs
func UserLanguageDir() (string, error) {
	dir, err := UserConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, LanguageDirName), nil
}

// ExpandPath expands a leading ~ to the user's home directory
func ExpandPath(path string) string {
	if len(path) == 0 || path[0] != '~' {
		return path
	}
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return path
	}
	return filepath.Join(homeDir, path[1:])
}
