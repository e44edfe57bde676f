// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package configfile reads and writes the lifeos YAML configuration file.
// The interactive setup wizard edits the file through this package so that
// sections it does not own are preserved.
package configfile

import (
	"fmt"
	"os"
	"path/filepath"

	"go.yaml.in/yaml/v3"

	"github.com/pdiddy/lifeos/pkg/types"
)

// DefaultPath returns the per-user config location,
// ~/.config/lifeos/config.yaml.
func DefaultPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("resolving home directory: %w", err)
	}
	return filepath.Join(home, ".config", "lifeos", "config.yaml"), nil
}

// Load reads the config file at path. A missing file is not an error and
// yields a zero config; the caller decides whether to apply defaults.
func Load(path string) (*types.Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return &types.Config{}, nil
		}
		return nil, fmt.Errorf("reading config file: %w", err)
	}
	var cfg types.Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config file: %w", err)
	}
	return &cfg, nil
}

// Save marshals cfg to YAML and writes it to path, creating parent
// directories as needed.
func Save(path string, cfg *types.Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing config file: %w", err)
	}
	return nil
}
