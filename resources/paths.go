package resources

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/adrg/xdg"
)

// ExecutableDir returns the directory containing the currently running
// executable.
func ExecutableDir() (string, error) {
	executablePath, err := os.Executable()
	if err != nil {
		return "", fmt.Errorf("failed to locate executable: %w", err)
	}
	return filepath.Dir(executablePath), nil
}

// ConfigDir returns the platform-conventional per-user configuration
// directory (%APPDATA%, ~/.config, ~/Library/Application Support).
func ConfigDir() (string, error) {
	if xdg.ConfigHome == "" {
		return "", ErrConfigDirNotFound
	}
	return xdg.ConfigHome, nil
}

// Join concatenates a base directory and a relative path. No I/O is
// performed and the result is not checked for existence.
func Join(base string, relative string) string {
	return filepath.Join(base, relative)
}
