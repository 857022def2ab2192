package storage

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"pomodoro/internal/ui/preferences"
)

const settingsFileName = "settings.yaml"

type yamlSettings struct {
	FocusMinutes         int   `yaml:"focus_minutes"`
	BreakMinutes         int   `yaml:"break_minutes"`
	DesktopNotifications *bool `yaml:"desktop_notifications"`
}

// ConfigDirFunc resolves the per-user configuration directory.
type ConfigDirFunc func() (string, error)

// SettingsPath returns the settings file location for appName.
func SettingsPath(configDir ConfigDirFunc, appName string) (string, error) {
	dir, err := configDir()
	if err != nil {
		return "", fmt.Errorf("resolve user config dir: %w", err)
	}
	return filepath.Join(dir, appName, settingsFileName), nil
}

// LoadSettings reads startup preferences from YAML.
// If the file does not exist, default settings are returned.
func LoadSettings(path string) (preferences.Settings, error) {
	settings := preferences.DefaultSettings()

	rawData, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return settings, nil
		}
		return settings, fmt.Errorf("read settings file: %w", err)
	}

	var fileData yamlSettings
	if err := yaml.Unmarshal(rawData, &fileData); err != nil {
		return settings, fmt.Errorf("parse settings yaml: %w", err)
	}

	applyYamlSettings(&settings, fileData)
	return settings, nil
}

func applyYamlSettings(settings *preferences.Settings, fileData yamlSettings) {
	if fileData.FocusMinutes > 0 {
		settings.FocusMinutes = fileData.FocusMinutes
	}
	if fileData.BreakMinutes > 0 {
		settings.BreakMinutes = fileData.BreakMinutes
	}
	if fileData.DesktopNotifications != nil {
		settings.DesktopNotifications = *fileData.DesktopNotifications
	}
}
