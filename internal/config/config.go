package config

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

// Config holds the repolink configuration
type Config struct {
	Remote  string            `toml:"remote" json:"remote"`
	Backend string            `toml:"backend" json:"backend"`
	Copy    bool              `toml:"copy" json:"copy"`
	Hosts   map[string]string `toml:"hosts,omitempty" json:"hosts,omitempty"` // domain -> "github" or "bitbucket"
}

// Defaults for unset values
const (
	DefaultRemote  = "origin"
	DefaultBackend = "git"
)

// Default returns the default configuration
func Default() Config {
	return Config{
		Remote:  DefaultRemote,
		Backend: DefaultBackend,
	}
}

// ConfigEnvVar names a config file that replaces the default location.
const ConfigEnvVar = "REPOLINK_CONFIG"

// Path returns the path of the global config file.
// REPOLINK_CONFIG wins over ~/.config/repolink/config.toml.
func Path() (string, error) {
	if p := os.Getenv(ConfigEnvVar); p != "" {
		return expandPath(p)
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", "repolink", "config.toml"), nil
}

// expandPath expands ~ to the user's home directory
func expandPath(path string) (string, error) {
	if len(path) >= 2 && path[:2] == "~/" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("expand ~: %w", err)
		}
		return filepath.Join(home, path[2:]), nil
	}
	if path == "~" {
		return os.UserHomeDir()
	}
	return path, nil
}

// Load reads the global config file.
// Returns Default() if the file doesn't exist (no error).
// Returns Default() and an error if the file exists but is invalid.
func Load() (Config, error) {
	path, err := Path()
	if err != nil {
		return Default(), nil
	}
	return LoadFile(path)
}

// LoadFile reads config from path. A missing file yields Default().
func LoadFile(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return Default(), nil
		}
		return Default(), fmt.Errorf("failed to read config file: %w", err)
	}

	cfg := Default()
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return Default(), fmt.Errorf("failed to parse config file %s: %w", path, err)
	}

	if err := validate(&cfg, path); err != nil {
		return Default(), err
	}

	// Use defaults for values set to ""
	if cfg.Remote == "" {
		cfg.Remote = DefaultRemote
	}
	if cfg.Backend == "" {
		cfg.Backend = DefaultBackend
	}

	return cfg, nil
}

// Env vars applied by ApplyEnvOverrides.
const (
	RemoteEnvVar  = "REPOLINK_REMOTE"
	BackendEnvVar = "REPOLINK_BACKEND"
)

// ApplyEnvOverrides applies REPOLINK_REMOTE and REPOLINK_BACKEND to cfg.
// Empty variables are ignored.
func ApplyEnvOverrides(cfg *Config) error {
	if v := os.Getenv(RemoteEnvVar); v != "" {
		cfg.Remote = v
	}
	if v := os.Getenv(BackendEnvVar); v != "" {
		if err := validateEnum(v, BackendEnvVar, ValidBackends); err != nil {
			return err
		}
		cfg.Backend = v
	}
	return nil
}

// Encode writes cfg as TOML.
func (c *Config) Encode(w io.Writer) error {
	return toml.NewEncoder(w).Encode(c)
}

const defaultConfig = `# repolink configuration

# Remote whose URL decides where links point (default: "origin")
# remote = "origin"

# How the repository is read:
#   "git"    - run the git CLI (default)
#   "go-git" - read the repository in-process, no git binary needed
# backend = "git"

# Also copy every printed URL to the clipboard
# copy = false

# Host mappings - for self-hosted GitHub Enterprise or Bitbucket instances
# Maps custom domains to the URL layout they serve
#
# [hosts]
# "github.mycompany.com" = "github"      # GitHub Enterprise
# "bitbucket.internal.corp" = "bitbucket"
`

// DefaultConfig returns the commented default config file content.
func DefaultConfig() string {
	return defaultConfig
}

// Init creates a default config file at Path().
// If force is true, overwrites an existing file.
// Returns the path to the created file.
func Init(force bool) (string, error) {
	path, err := Path()
	if err != nil {
		return "", err
	}

	if !force {
		if _, err := os.Stat(path); err == nil {
			return "", errors.New("config file already exists: " + path)
		}
	}

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return "", err
	}
	if err := os.WriteFile(path, []byte(defaultConfig), 0644); err != nil {
		return "", err
	}
	return path, nil
}

// configKey is the context key for *Config
type configKey struct{}

// workDirKey is the context key for the working directory
type workDirKey struct{}

// WithConfig returns a new context carrying cfg.
func WithConfig(ctx context.Context, cfg *Config) context.Context {
	return context.WithValue(ctx, configKey{}, cfg)
}

// FromContext returns the config stored in ctx, or nil.
func FromContext(ctx context.Context) *Config {
	cfg, _ := ctx.Value(configKey{}).(*Config)
	return cfg
}

// WithWorkDir returns a new context carrying the directory commands operate on.
func WithWorkDir(ctx context.Context, dir string) context.Context {
	return context.WithValue(ctx, workDirKey{}, dir)
}

// WorkDirFromContext returns the directory stored in ctx.
// Falls back to os.Getwd() when unset or empty.
func WorkDirFromContext(ctx context.Context) string {
	if dir, ok := ctx.Value(workDirKey{}).(string); ok && dir != "" {
		return dir
	}
	wd, _ := os.Getwd()
	return wd
}
