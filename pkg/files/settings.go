package files

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/flightbook/flightbook-cli/pkg/models"
)

const (
	FlightbookDir    = ".flightbook"
	SettingsFileName = "settings.yaml"
	APIKeyEnv        = "FLIGHTBOOK_API_KEY"
)

// DefaultSettingsPath returns ~/.flightbook/settings.yaml
func DefaultSettingsPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to locate home directory: %w", err)
	}
	return filepath.Join(home, FlightbookDir, SettingsFileName), nil
}

// ReadSettings loads settings from path on top of the defaults. A missing
// file is not an error. FLIGHTBOOK_API_KEY overrides the stored key.
func ReadSettings(path string) (*models.Settings, error) {
	settings := models.DefaultSettings()

	content, err := os.ReadFile(path)
	switch {
	case errors.Is(err, os.ErrNotExist):
	case err != nil:
		return nil, fmt.Errorf("failed to read settings %s: %w", path, err)
	default:
		if err := yaml.Unmarshal(content, settings); err != nil {
			return nil, fmt.Errorf("failed to parse settings %s: %w", path, err)
		}
	}

	if key := os.Getenv(APIKeyEnv); key != "" {
		settings.Lookup.APIKey = key
	}

	if err := settings.Validate(); err != nil {
		return nil, fmt.Errorf("invalid settings %s: %w", path, err)
	}
	return settings, nil
}

// WriteSettings stores settings at path, creating its directory
func WriteSettings(path string, settings *models.Settings) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("failed to create directory %s: %w", filepath.Dir(path), err)
	}

	content, err := yaml.Marshal(settings)
	if err != nil {
		return fmt.Errorf("failed to marshal settings: %w", err)
	}

	// the file may hold an API key
	if err := os.WriteFile(path, content, 0600); err != nil {
		return fmt.Errorf("failed to write settings %s: %w", path, err)
	}
	return nil
}
