// Package config handles loading and saving application configuration.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/joho/godotenv"
	"github.com/mitchellh/go-homedir"
	"gopkg.in/yaml.v3"
)

// Environment overrides, applied after the config file is read.
const (
	EnvTheme  = "TERMFOLIO_THEME"
	EnvDomain = "TERMFOLIO_DOMAIN"
	EnvEmail  = "TERMFOLIO_EMAIL"
)

// Config represents the application configuration.
type Config struct {
	UI      UIConfig      `yaml:"ui"`
	Profile ProfileConfig `yaml:"profile"`
}

// UIConfig holds UI-related settings.
type UIConfig struct {
	Theme    string `yaml:"theme,omitempty"` // latte, frappe, macchiato or mocha
	Bell     bool   `yaml:"bell"`
	SkipBoot bool   `yaml:"skip_boot"`
}

// ProfileConfig overrides the built-in profile. Empty fields keep the
// built-in values.
type ProfileConfig struct {
	Domain  string   `yaml:"domain,omitempty"`
	Email   string   `yaml:"email,omitempty"`
	Socials []Social `yaml:"socials,omitempty"`
}

// Social is one entry of the socials list.
type Social struct {
	Name string `yaml:"name"`
	URL  string `yaml:"url"`
}

// DefaultConfig returns a new Config with default values.
func DefaultConfig() *Config {
	return &Config{
		UI: UIConfig{
			Bell: true,
		},
	}
}

// ConfigDir returns the path to the configuration directory.
// Creates the directory if it doesn't exist.
func ConfigDir() (string, error) {
	homeDir, err := homedir.Dir()
	if err != nil {
		return "", fmt.Errorf("failed to get home directory: %w", err)
	}

	configDir := filepath.Join(homeDir, ".config", "termfolio")
	if err := os.MkdirAll(configDir, 0700); err != nil {
		return "", fmt.Errorf("failed to create config directory: %w", err)
	}

	return configDir, nil
}

// ConfigPath returns the full path to the configuration file.
func ConfigPath() (string, error) {
	dir, err := ConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "config.yaml"), nil
}

// Load reads the configuration from the default config file.
// If the file doesn't exist, returns a default configuration.
func Load() (*Config, error) {
	path, err := ConfigPath()
	if err != nil {
		return nil, err
	}
	return LoadFrom(path)
}

// LoadFrom reads the configuration at path. A missing file yields the
// defaults.
func LoadFrom(path string) (*Config, error) {
	path, err := homedir.Expand(path)
	if err != nil {
		return nil, fmt.Errorf("failed to expand config path: %w", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return DefaultConfig(), nil
		}
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	return cfg, nil
}

// Save writes the configuration to the default config file.
func Save(cfg *Config) error {
	path, err := ConfigPath()
	if err != nil {
		return err
	}
	return SaveTo(path, cfg)
}

// SaveTo writes the configuration to path, creating its directory.
func SaveTo(path string, cfg *Config) error {
	path, err := homedir.Expand(path)
	if err != nil {
		return fmt.Errorf("failed to expand config path: %w", err)
	}

	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("failed to serialize config: %w", err)
	}

	if err := os.MkdirAll(filepath.Dir(path), 0700); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	// Write with restricted permissions (owner read/write only)
	if err := os.WriteFile(path, data, 0600); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

// SaveTheme stores theme in the file at path, leaving the rest of the file
// as it was. Environment overrides are not written back.
func SaveTheme(path, theme string) error {
	cfg, err := LoadFrom(path)
	if err != nil {
		return err
	}
	cfg.UI.Theme = theme
	return SaveTo(path, cfg)
}

// LoadEnvFile loads variables from a .env file into the process
// environment without overriding ones already set. A missing file is not an
// error.
func LoadEnvFile(path string) error {
	if err := godotenv.Load(path); err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("failed to load env file: %w", err)
	}
	return nil
}

// ApplyEnv applies the TERMFOLIO_* overrides from the environment.
func (c *Config) ApplyEnv() {
	if v := strings.TrimSpace(os.Getenv(EnvTheme)); v != "" {
		c.UI.Theme = strings.ToLower(v)
	}
	if v := strings.TrimSpace(os.Getenv(EnvDomain)); v != "" {
		c.Profile.Domain = v
	}
	if v := strings.TrimSpace(os.Getenv(EnvEmail)); v != "" {
		c.Profile.Email = v
	}
}
