package files

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/pluqqy/quill/pkg/models"
)

// ReadSettings loads .quill/settings.yaml. Keys missing from the file keep
// their default values.
func ReadSettings() (*models.Settings, error) {
	settings := models.DefaultSettings()

	raw, err := os.ReadFile(filepath.Join(QuillDir, SettingsFile))
	if err != nil {
		return settings, fmt.Errorf("failed to read settings: %w", err)
	}

	if err := yaml.Unmarshal(raw, settings); err != nil {
		return models.DefaultSettings(), fmt.Errorf("failed to parse settings: %w", err)
	}
	return settings, nil
}

// ReadSettingsOrDefault returns the stored settings, or defaults when they
// cannot be read
func ReadSettingsOrDefault() *models.Settings {
	settings, err := ReadSettings()
	if err != nil {
		return models.DefaultSettings()
	}
	return settings
}

// WriteSettings stores settings as YAML
func WriteSettings(settings *models.Settings) error {
	raw, err := yaml.Marshal(settings)
	if err != nil {
		return fmt.Errorf("failed to marshal settings: %w", err)
	}

	path := filepath.Join(QuillDir, SettingsFile)
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("failed to create settings directory: %w", err)
	}
	if err := os.WriteFile(path, raw, 0644); err != nil {
		return fmt.Errorf("failed to write settings: %w", err)
	}
	return nil
}
