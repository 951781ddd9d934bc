// Package config loads the viewer's optional TOML configuration.
// The palette itself is fixed data and never configurable; config only
// covers presentation and logging.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

// Config represents the application configuration.
type Config struct {
	UI     UIConfig     `toml:"ui"`
	Logger LoggerConfig `toml:"logger"`
}

// UIConfig represents presentation configuration.
type UIConfig struct {
	// Profile forces a color profile: "auto", "truecolor", "256" or
	// "16". Terminals lie about their capabilities often enough that
	// an override is worth carrying.
	Profile string `toml:"profile"`

	// ResolvedHex starts the viewer with captions showing composited
	// hex values instead of the authored color sources.
	ResolvedHex bool `toml:"resolved_hex"`
}

// LoggerConfig represents logging configuration. Logging stays off
// unless a file path is set; the TUI owns the terminal.
type LoggerConfig struct {
	Level    string `toml:"level"`
	FilePath string `toml:"file_path"`
}

// Default returns the default configuration.
func Default() *Config {
	return &Config{
		UI: UIConfig{
			Profile: "auto",
		},
		Logger: LoggerConfig{
			Level: "info",
		},
	}
}

// DefaultPath returns the conventional config file location.
func DefaultPath() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(homeDir, ".config", "swatch", "config.toml"), nil
}

// Load loads configuration from the given path. An empty path falls
// back to DefaultPath; a missing file yields defaults, a broken one an
// error.
func Load(configPath string) (*Config, error) {
	config := Default()

	if configPath == "" {
		path, err := DefaultPath()
		if err != nil {
			return config, nil
		}
		configPath = path
	}

	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		return config, nil
	}

	if _, err := toml.DecodeFile(configPath, config); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return config, nil
}

// Validate validates the configuration.
func (c *Config) Validate() error {
	switch c.UI.Profile {
	case "", "auto", "truecolor", "256", "16":
	default:
		return fmt.Errorf("ui.profile must be auto, truecolor, 256 or 16, got %q", c.UI.Profile)
	}

	if c.Logger.Level == "" {
		c.Logger.Level = "info"
	}
	switch c.Logger.Level {
	case "debug", "info", "warn", "warning", "error":
	default:
		return fmt.Errorf("logger.level must be debug, info, warn or error, got %q", c.Logger.Level)
	}

	return nil
}

// Save writes the configuration to the given path.
func (c *Config) Save(configPath string) error {
	if err := os.MkdirAll(filepath.Dir(configPath), 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	file, err := os.Create(configPath)
	if err != nil {
		return fmt.Errorf("failed to create config file: %w", err)
	}
	defer func() { _ = file.Close() }()

	if err := toml.NewEncoder(file).Encode(c); err != nil {
		return fmt.Errorf("failed to encode config: %w", err)
	}

	return nil
}
