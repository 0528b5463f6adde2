package cli

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"github.com/BurntSushi/toml"
)

const defaultConfigHint = "~/.config/gogrocy/config.toml"

// =============================================================================
// Connection Settings
// =============================================================================

// Config holds the connection settings for a Grocy server. Values are
// resolved from the config file, then GROCY_* environment variables, then
// command-line flags, each layer overriding the one before.
type Config struct {
	URL      string `toml:"url"`
	APIKey   string `toml:"api_key"`
	Port     int    `toml:"port"`
	Path     string `toml:"path"`
	Insecure bool   `toml:"insecure"`
}

// defaultConfigPath returns the config file location using the XDG
// standard (~/.config/gogrocy/config.toml).
func defaultConfigPath() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, appName, "config.toml"), nil
}

// loadConfig reads a TOML config file. A missing file at the default
// location is not an error; an explicitly given path must exist.
func loadConfig(path string, explicit bool) (Config, error) {
	var cfg Config
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		if errors.Is(err, os.ErrNotExist) && !explicit {
			return Config{}, nil
		}
		return Config{}, fmt.Errorf("load config %s: %w", path, err)
	}
	return cfg, nil
}

// =============================================================================
// Layering
// =============================================================================

// applyEnv overlays GROCY_* environment variables onto cfg.
func (cfg *Config) applyEnv() error {
	if v := os.Getenv("GROCY_URL"); v != "" {
		cfg.URL = v
	}
	if v := os.Getenv("GROCY_API_KEY"); v != "" {
		cfg.APIKey = v
	}
	if v := os.Getenv("GROCY_PORT"); v != "" {
		port, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("parse GROCY_PORT %q: %w", v, err)
		}
		cfg.Port = port
	}
	if v := os.Getenv("GROCY_PATH"); v != "" {
		cfg.Path = v
	}
	return nil
}

// merge overlays non-zero flag values onto cfg.
func (cfg *Config) merge(flags Config) {
	if flags.URL != "" {
		cfg.URL = flags.URL
	}
	if flags.APIKey != "" {
		cfg.APIKey = flags.APIKey
	}
	if flags.Port != 0 {
		cfg.Port = flags.Port
	}
	if flags.Path != "" {
		cfg.Path = flags.Path
	}
	if flags.Insecure {
		cfg.Insecure = true
	}
}

// =============================================================================
// Resolution
// =============================================================================

// resolveConfig builds the effective configuration from all three layers.
func resolveConfig(path string, flags Config) (Config, error) {
	explicit := path != ""
	if !explicit {
		var err error
		if path, err = defaultConfigPath(); err != nil {
			return Config{}, err
		}
	}

	cfg, err := loadConfig(path, explicit)
	if err != nil {
		return Config{}, err
	}
	if err := cfg.applyEnv(); err != nil {
		return Config{}, err
	}
	cfg.merge(flags)

	if cfg.URL == "" {
		return Config{}, fmt.Errorf("no server URL configured: set url in %s, GROCY_URL, or --url", defaultConfigHint)
	}
	return cfg, nil
}
