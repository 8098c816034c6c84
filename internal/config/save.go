package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// WriteDefaultConfig writes the default configuration to the given path,
// creating parent directories as needed. Used on first run when no config
// file is found anywhere in the lookup order.
func WriteDefaultConfig(path string) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("creating config directory: %w", err)
		}
	}

	data, err := yaml.Marshal(Defaults())
	if err != nil {
		return fmt.Errorf("marshaling defaults: %w", err)
	}

	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing config: %w", err)
	}
	return nil
}
