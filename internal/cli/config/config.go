package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
)

const (
	configDirName  = "courier"
	configFileName = "config.json"

	// DefaultBaseURL matches a local backend in its default configuration.
	DefaultBaseURL = "http://localhost:8080/api/v1"
)

// Environment is a named API target (e.g. "production", "staging").
type Environment struct {
	Name    string `json:"name"`
	BaseURL string `json:"base_url"`
}

// Config is the user's local configuration stored in
// ~/.config/courier/config.json.
type Config struct {
	BaseURL             string        `json:"base_url,omitempty"`
	Environments        []Environment `json:"environments,omitempty"`
	SelectedEnvironment string        `json:"selected_environment,omitempty"`
	LogLevel            string        `json:"log_level,omitempty"`
	LogFormat           string        `json:"log_format,omitempty"`
}

// Dir returns the configuration directory, honoring COURIER_CONFIG_DIR for
// tests and unusual setups.
func Dir() (string, error) {
	if dir := os.Getenv("COURIER_CONFIG_DIR"); dir != "" {
		return dir, nil
	}
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get user home directory: %w", err)
	}
	return filepath.Join(homeDir, ".config", configDirName), nil
}

// Path returns the path to the user config file.
func Path() (string, error) {
	dir, err := Dir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, configFileName), nil
}

// LegacyCredentialsPath returns where releases before the keyring migration
// stored the bearer token and cached profile.
func LegacyCredentialsPath() (string, error) {
	dir, err := Dir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "credentials.json"), nil
}

// CachePath returns the location of the offline tracking cache database.
func CachePath() (string, error) {
	dir, err := Dir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "tracking.sqlite"), nil
}

// Load reads the user configuration file. A missing file yields an empty
// config rather than an error. Environment files (.env, .env.local) are
// loaded first so COURIER_* variables can override everything.
func Load() (*Config, error) {
	// Load .env files (fails silently if files don't exist)
	_ = godotenv.Load(".env")
	_ = godotenv.Load(".env.local")

	path, err := Path()
	if err != nil {
		return nil, err
	}

	if _, err := os.Stat(path); os.IsNotExist(err) {
		return &Config{}, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	return &cfg, nil
}

// Save writes the user configuration to disk.
func Save(cfg *Config) error {
	path, err := Path()
	if err != nil {
		return err
	}

	if err := os.MkdirAll(filepath.Dir(path), 0700); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := json.MarshalIndent(cfg, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0600); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

// GetEnvironment returns the named environment.
func (c *Config) GetEnvironment(name string) (*Environment, error) {
	for i := range c.Environments {
		if c.Environments[i].Name == name {
			return &c.Environments[i], nil
		}
	}
	return nil, fmt.Errorf("environment %q not found in config", name)
}

// SetSelectedEnvironment updates the selected environment and saves the config.
func SetSelectedEnvironment(name string) error {
	cfg, err := Load()
	if err != nil {
		return err
	}
	cfg.SelectedEnvironment = name
	return Save(cfg)
}

// ResolveBaseURL returns the API base URL with the following priority:
// COURIER_API_URL, the selected environment, the plain base_url entry, then
// the built-in default.
func (c *Config) ResolveBaseURL() string {
	if url := os.Getenv("COURIER_API_URL"); url != "" {
		return url
	}
	if c.SelectedEnvironment != "" {
		if env, err := c.GetEnvironment(c.SelectedEnvironment); err == nil && env.BaseURL != "" {
			return env.BaseURL
		}
	}
	if c.BaseURL != "" {
		return c.BaseURL
	}
	return DefaultBaseURL
}

// ResolveLogLevel returns the log level, honoring COURIER_LOG_LEVEL.
func (c *Config) ResolveLogLevel() string {
	if level := os.Getenv("COURIER_LOG_LEVEL"); level != "" {
		return level
	}
	return c.LogLevel
}

// ResolveLogFormat returns the log format, honoring COURIER_LOG_FORMAT.
func (c *Config) ResolveLogFormat() string {
	if format := os.Getenv("COURIER_LOG_FORMAT"); format != "" {
		return format
	}
	return c.LogFormat
}
