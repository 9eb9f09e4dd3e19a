package config

import (
	_ "embed"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// LocalPath is checked when no explicit path is given.
const LocalPath = "configs/game.yaml"

//go:embed default.yaml
var defaultYAML []byte

// Default returns the embedded configuration.
func Default() (*Game, error) {
	var cfg Game
	if err := yaml.Unmarshal(defaultYAML, &cfg); err != nil {
		return nil, fmt.Errorf("config: unmarshal embedded default: %w", err)
	}
	return &cfg, nil
}

// Parse decodes data on top of the embedded defaults, so a file only needs the
// keys it overrides.
func Parse(data []byte) (*Game, error) {
	cfg, err := Default()
	if err != nil {
		return nil, err
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Load resolves the configuration.
// Search order: path -> ./configs/game.yaml -> embedded default.
// It returns the path actually read, empty for the embedded default.
func Load(path string) (*Game, string, error) {
	if path != "" {
		cfg, err := loadFile(path)
		if err != nil {
			return nil, "", err
		}
		return cfg, path, nil
	}

	if _, err := os.Stat(LocalPath); err == nil {
		cfg, err := loadFile(LocalPath)
		if err != nil {
			return nil, "", err
		}
		return cfg, LocalPath, nil
	}

	cfg, err := Default()
	if err != nil {
		return nil, "", err
	}
	return cfg, "", nil
}

func loadFile(path string) (*Game, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("config: load %s: %w", path, err)
	}
	cfg, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("config: parse %s: %w", filepath.Base(path), err)
	}
	return cfg, nil
}
