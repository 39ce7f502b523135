// Package settings persists the clock face preferences and reads the
// process configuration from the environment.
package settings

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Settings are the user preferences that survive restarts.
type Settings struct {
	Inverted bool `yaml:"inverted"`
}

// Load reads settings from path. A missing file yields the defaults.
func Load(path string) (Settings, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return Settings{}, nil
		}
		return Settings{}, fmt.Errorf("settings: read %s: %w", path, err)
	}

	var s Settings
	if err := yaml.Unmarshal(data, &s); err != nil {
		return Settings{}, fmt.Errorf("settings: parse %s: %w", path, err)
	}
	return s, nil
}

// Save writes s to path, replacing the previous file atomically.
func Save(path string, s Settings) error {
	data, err := yaml.Marshal(&s)
	if err != nil {
		return fmt.Errorf("settings: encode: %w", err)
	}
	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("settings: %w", err)
		}
	}
	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return fmt.Errorf("settings: write %s: %w", tmp, err)
	}
	if err := os.Rename(tmp, path); err != nil {
		return fmt.Errorf("settings: rename %s: %w", tmp, err)
	}
	return nil
}
