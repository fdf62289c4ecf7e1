package config

import (
	"os"
	"path/filepath"
	"time"

	"github.com/pelletier/go-toml/v2"
)

// ClacoConfig represents the claco.toml configuration file
type ClacoConfig struct {
	// Enable debug logging
	Verbose bool `toml:"verbose"`

	// Log level: debug, info, warn, error
	LogLevel string `toml:"log_level"`

	// Log format: text or json
	LogFormat string `toml:"log_format"`

	// Scope used when a command is given no --scope
	DefaultScope string `toml:"default_scope"`

	// Timeout in seconds for fetching remote settings
	FetchTimeout int `toml:"fetch_timeout"`
}

// DefaultClacoConfig returns default configuration
func DefaultClacoConfig() *ClacoConfig {
	return &ClacoConfig{
		LogLevel:     "warn",
		LogFormat:    "text",
		DefaultScope: string(ScopeProject),
		FetchTimeout: 30,
	}
}

// LoadClacoConfig loads claco.toml from the given directory
func LoadClacoConfig(clacoDir string) (*ClacoConfig, error) {
	configPath := filepath.Join(clacoDir, "claco.toml")

	data, err := os.ReadFile(configPath)
	if err != nil {
		if os.IsNotExist(err) {
			return DefaultClacoConfig(), nil
		}
		return nil, err
	}

	cfg := DefaultClacoConfig()
	if err := toml.Unmarshal(data, cfg); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Save writes claco.toml to disk
func (c *ClacoConfig) Save(clacoDir string) error {
	if err := os.MkdirAll(clacoDir, 0755); err != nil {
		return err
	}

	data, err := toml.Marshal(c)
	if err != nil {
		return err
	}

	return os.WriteFile(filepath.Join(clacoDir, "claco.toml"), data, 0644)
}

// Scope returns the configured default scope, falling back to project
func (c *ClacoConfig) Scope() Scope {
	scope, err := ParseScope(c.DefaultScope)
	if err != nil {
		return ScopeProject
	}
	return scope
}

// Timeout returns the fetch timeout, falling back to 30 seconds
func (c *ClacoConfig) Timeout() time.Duration {
	if c.FetchTimeout <= 0 {
		return 30 * time.Second
	}
	return time.Duration(c.FetchTimeout) * time.Second
}
