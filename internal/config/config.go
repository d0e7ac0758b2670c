// Package config provides centralized configuration management using Viper.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"
)

// Config holds all configuration values for tapfolio.
type Config struct {
	BackendURL string `mapstructure:"backend_url" yaml:"backend_url"`
	TokenFile  string `mapstructure:"token_file" yaml:"token_file"`
	LogLevel   string `mapstructure:"log_level" yaml:"log_level"`
	LogFile    string `mapstructure:"log_file" yaml:"log_file"`
}

// Load loads configuration with full precedence:
// CLI flags > ENV vars > project config > XDG global config > defaults
func Load() (*Config, error) {
	v := viper.New()
	v.SetConfigType("yaml")
	v.SetConfigName("tapfolio")

	// Set defaults (backend_url has no default - it's required for network commands)
	v.SetDefault("token_file", defaultTokenPath())
	v.SetDefault("log_level", "info")
	v.SetDefault("log_file", "")

	// Setup ENV binding with TAPFOLIO_ prefix
	v.SetEnvPrefix("TAPFOLIO")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	// Explicit ENV bindings for better parsing
	if err := v.BindEnv("backend_url", "TAPFOLIO_BACKEND_URL"); err != nil {
		return nil, fmt.Errorf("binding backend_url env: %w", err)
	}
	if err := v.BindEnv("token_file", "TAPFOLIO_TOKEN_FILE"); err != nil {
		return nil, fmt.Errorf("binding token_file env: %w", err)
	}
	if err := v.BindEnv("log_level", "TAPFOLIO_LOG_LEVEL"); err != nil {
		return nil, fmt.Errorf("binding log_level env: %w", err)
	}
	if err := v.BindEnv("log_file", "TAPFOLIO_LOG_FILE"); err != nil {
		return nil, fmt.Errorf("binding log_file env: %w", err)
	}

	// Load global config first (if exists)
	globalPath := GlobalPath()
	if fileExists(globalPath) {
		v.SetConfigFile(globalPath)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("reading global config: %w", err)
		}
	}

	// Merge project config on top (if exists)
	projectPath := ProjectPath()
	if fileExists(projectPath) {
		v.SetConfigFile(projectPath)
		if err := v.MergeInConfig(); err != nil {
			return nil, fmt.Errorf("merging project config: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshaling config: %w", err)
	}

	cfg.BackendURL = strings.TrimRight(cfg.BackendURL, "/")

	return &cfg, nil
}

// RequireBackendURL returns an error if no backend URL is configured.
// Every network command calls this before constructing a client.
func (c *Config) RequireBackendURL() error {
	if c.BackendURL == "" {
		return fmt.Errorf("backend URL not configured (set TAPFOLIO_BACKEND_URL or backend_url in %s)", GlobalPath())
	}
	return nil
}

// Exists returns true if any config file exists (global or project).
func Exists() bool {
	return fileExists(GlobalPath()) || fileExists(ProjectPath())
}

// GlobalPath returns the XDG global config path.
// Returns ~/.config/tapfolio/tapfolio.yml or $XDG_CONFIG_HOME/tapfolio/tapfolio.yml.
func GlobalPath() string {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, "tapfolio", "tapfolio.yml")
	}
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".config", "tapfolio", "tapfolio.yml")
}

// ProjectPath returns the project-local config path.
// Returns ./tapfolio.yml in the current working directory.
func ProjectPath() string {
	return "tapfolio.yml"
}

// defaultTokenPath returns the default location of the persisted auth token,
// next to the global config file.
func defaultTokenPath() string {
	return filepath.Join(filepath.Dir(GlobalPath()), "token")
}

// WriteGlobal writes the config to the XDG global location.
func WriteGlobal(cfg *Config) error {
	path := GlobalPath()

	// Create parent directory if it doesn't exist
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}

	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("writing config file: %w", err)
	}

	return nil
}

// fileExists checks if a file exists.
func fileExists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}
