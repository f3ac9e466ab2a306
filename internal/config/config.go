// Package config loads scopegate settings from YAML and the environment.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

// Environment variables that override file settings.
const (
	EnvConfig    = "SCOPEGATE_CONFIG"
	EnvLogLevel  = "SCOPEGATE_LOG_LEVEL"
	EnvLogFormat = "SCOPEGATE_LOG_FORMAT"
	EnvAutoSave  = "SCOPEGATE_AUTO_SAVE"
)

// Config holds runtime settings.
type Config struct {
	LogLevel  string `yaml:"logLevel"`
	LogFormat string `yaml:"logFormat"`
	// AutoSave writes the document back after a prune from the command line.
	AutoSave bool `yaml:"autoSave"`
	// PruneKeys are the terminal key names that send a prune to the viewer.
	PruneKeys []string `yaml:"pruneKeys"`
}

// Default returns the settings used when no file is present.
func Default() *Config {
	return &Config{
		LogLevel:  "info",
		LogFormat: "text",
		AutoSave:  true,
		PruneKeys: []string{"delete", "backspace"},
	}
}

// Load reads path on top of Default and applies environment overrides.
// An empty path loads DefaultPath, which is allowed to be missing.
func Load(path string) (*Config, error) {
	cfg := Default()

	explicit := path != ""
	if !explicit {
		path = DefaultPath()
	}

	data, err := os.ReadFile(path)

	switch {
	case err == nil:
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parse config %s: %w", path, err)
		}
	case errors.Is(err, os.ErrNotExist) && !explicit:
	default:
		return nil, fmt.Errorf("read config file: %w", err)
	}

	if level := os.Getenv(EnvLogLevel); level != "" {
		cfg.LogLevel = level
	}

	if format := os.Getenv(EnvLogFormat); format != "" {
		cfg.LogFormat = format
	}

	if autoSave := os.Getenv(EnvAutoSave); autoSave != "" {
		value, err := strconv.ParseBool(autoSave)
		if err != nil {
			return nil, fmt.Errorf("parse %s: %w", EnvAutoSave, err)
		}

		cfg.AutoSave = value
	}

	if len(cfg.PruneKeys) == 0 {
		cfg.PruneKeys = Default().PruneKeys
	}

	for i, key := range cfg.PruneKeys {
		cfg.PruneKeys[i] = strings.ToLower(strings.TrimSpace(key))
	}

	return cfg, nil
}

// DefaultPath returns the default location of the config file.
func DefaultPath() string {
	if path := os.Getenv(EnvConfig); path != "" {
		return path
	}

	home, _ := os.UserHomeDir()

	return filepath.Join(home, ".scopegate", "config.yaml")
}
