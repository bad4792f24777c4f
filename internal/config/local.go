package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

// LocalConfigFileName is the per-repo config file, placed at the repository root.
const LocalConfigFileName = ".repolink.toml"

// LocalConfig holds per-repo overrides. Zero values inherit from the global config.
type LocalConfig struct {
	Remote  string            `toml:"remote"`
	Backend string            `toml:"backend"`
	Copy    *bool             `toml:"copy"`
	Hosts   map[string]string `toml:"hosts"` // merged by domain into global
}

// FindLocal looks for LocalConfigFileName in dir and its parents, stopping at
// the first directory that contains .git. Returns "" if there is none.
func FindLocal(dir string) string {
	dir, err := filepath.Abs(dir)
	if err != nil {
		return ""
	}
	for {
		candidate := filepath.Join(dir, LocalConfigFileName)
		if _, err := os.Stat(candidate); err == nil {
			return candidate
		}
		if _, err := os.Stat(filepath.Join(dir, ".git")); err == nil {
			return ""
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return ""
		}
		dir = parent
	}
}

// LoadLocal reads the per-repo config that applies to dir.
// Returns nil (no error) if there is none.
// Returns an error only on parse or validation failure.
func LoadLocal(dir string) (*LocalConfig, error) {
	configFile := FindLocal(dir)
	if configFile == "" {
		return nil, nil
	}

	data, err := os.ReadFile(configFile)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to read local config %s: %w", configFile, err)
	}

	var local LocalConfig
	if err := toml.Unmarshal(data, &local); err != nil {
		return nil, fmt.Errorf("failed to parse local config %s: %w", configFile, err)
	}

	if err := validate(&Config{Backend: local.Backend, Hosts: local.Hosts}, configFile); err != nil {
		return nil, err
	}

	return &local, nil
}
