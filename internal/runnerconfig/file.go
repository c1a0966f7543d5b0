package runnerconfig

import (
	"os"

	"gopkg.in/yaml.v3"
)

// LoadFile reads a YAML Config file at path, starting from DefaultConfig
// so a partial file only overrides the fields it mentions — matching
// aretext's config-file convention of a layered, mostly-optional on-disk
// override.
func LoadFile(path string) (Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, err
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, err
	}

	return cfg, cfg.Validate()
}

// SaveFile writes cfg to path as YAML, creating or truncating the file.
func SaveFile(path string, cfg Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}

	return os.WriteFile(path, data, 0o644)
}
