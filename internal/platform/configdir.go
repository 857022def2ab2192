package platform

import (
	"fmt"
	"os"
	"path/filepath"
)

// ConfigDir returns the OS-standard configuration directory, falling back to
// ~/.config when the platform does not define one.
func ConfigDir() (string, error) {
	configDir, err := os.UserConfigDir()
	if err == nil && configDir != "" {
		return configDir, nil
	}

	homeDir, homeErr := os.UserHomeDir()
	if homeErr != nil {
		if err != nil {
			return "", fmt.Errorf("get config dir: %w", err)
		}
		return "", fmt.Errorf("get config dir: %w", homeErr)
	}
	return filepath.Join(homeDir, ".config"), nil
}
