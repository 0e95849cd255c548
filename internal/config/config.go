// Package config loads caller-side defaults for the lasso CLI. The
// gateway itself takes everything per call; this only saves typing.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// DefaultTimeoutSeconds is applied when the config file and flags are
// both silent about the timeout.
const DefaultTimeoutSeconds = 10

// Config represents the CLI configuration structure.
type Config struct {
	// TimeoutSeconds bounds each request unless overridden per call.
	TimeoutSeconds int `yaml:"timeoutSeconds"`
	// Headers are attached to every request issued by the CLI.
	Headers map[string]string `yaml:"headers"`
	// BaseURL is prefixed to relative request URLs.
	BaseURL string `yaml:"baseUrl"`
	// LogLevel selects the CLI log verbosity (debug, info, warn, error).
	LogLevel string `yaml:"logLevel"`
}

// Default returns the configuration used when no file exists.
func Default() *Config {
	return &Config{
		TimeoutSeconds: DefaultTimeoutSeconds,
		Headers:        map[string]string{},
		LogLevel:       "info",
	}
}

// Manager handles configuration file operations.
type Manager struct {
	configPath string
}

// NewManager creates a configuration manager for the given path.
func NewManager(configPath string) *Manager {
	return &Manager{configPath: configPath}
}

// DefaultPath returns the standard location of the config file.
func DefaultPath() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get home directory: %w", err)
	}
	return filepath.Join(homeDir, ".config", "lasso", "config.yaml"), nil
}

// Load reads the configuration from the file system. A missing file
// yields the defaults rather than an error.
func (m *Manager) Load() (*Config, error) {
	data, err := os.ReadFile(m.configPath)
	if err != nil {
		if os.IsNotExist(err) {
			return Default(), nil
		}
		return nil, fmt.Errorf("failed to read config file %s: %w", m.configPath, err)
	}

	config := Default()
	if err := yaml.Unmarshal(data, config); err != nil {
		return nil, fmt.Errorf("failed to parse config file %s: %w", m.configPath, err)
	}

	if config.TimeoutSeconds <= 0 {
		config.TimeoutSeconds = DefaultTimeoutSeconds
	}
	if config.Headers == nil {
		config.Headers = map[string]string{}
	}

	return config, nil
}

// Save writes the configuration to the file system.
func (m *Manager) Save(config *Config) error {
	if err := os.MkdirAll(filepath.Dir(m.configPath), 0o750); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := yaml.Marshal(config)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(m.configPath, data, 0o600); err != nil {
		return fmt.Errorf("failed to write config file %s: %w", m.configPath, err)
	}

	return nil
}

// ResolveURL prefixes the base URL onto relative request URLs. Absolute
// URLs pass through untouched.
func (c *Config) ResolveURL(raw string) string {
	if c.BaseURL == "" || strings.Contains(raw, "://") {
		return raw
	}
	return strings.TrimSuffix(c.BaseURL, "/") + "/" + strings.TrimPrefix(raw, "/")
}
