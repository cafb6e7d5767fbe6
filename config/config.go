// Package config loads and saves generator settings.
package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
)

// FileName is the name of the settings file inside the config directory.
const FileName = "config.json"

// AppConfig holds all generator configuration
type AppConfig struct {
	// Output settings
	OutputDir  string `json:"output_dir"`
	BundlePath string `json:"bundle_path"`

	// Render settings
	Scale     int    `json:"scale"`
	Antialias bool   `json:"antialias"`
	Font      string `json:"font"` // "", "goregular" or a path to a TTF/OTF file

	Verbose bool `json:"verbose"`
}

// DefaultConfig returns the default configuration
func DefaultConfig() *AppConfig {
	return &AppConfig{
		OutputDir:  "images",
		BundlePath: "tabbar-icons.zip",
		Scale:      1,
		Antialias:  false,
		Font:       "",
		Verbose:    false,
	}
}

// Dir returns the per-user configuration directory
func Dir() string {
	var configDir string

	switch runtime.GOOS {
	case "windows":
		configDir = os.Getenv("APPDATA")
		if configDir == "" {
			configDir = filepath.Join(os.Getenv("USERPROFILE"), "AppData", "Roaming")
		}
	case "darwin":
		homeDir, _ := os.UserHomeDir()
		configDir = filepath.Join(homeDir, "Library", "Application Support")
	default: // linux and others
		configDir = os.Getenv("XDG_CONFIG_HOME")
		if configDir == "" {
			homeDir, _ := os.UserHomeDir()
			configDir = filepath.Join(homeDir, ".config")
		}
	}

	return filepath.Join(configDir, "TabbarIcons")
}

// DefaultPath returns the full path to the per-user config file
func DefaultPath() string {
	return filepath.Join(Dir(), FileName)
}

// Load reads configuration from path. A missing file yields defaults;
// a malformed one is an error.
func Load(path string) (*AppConfig, error) {
	config := DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return config, nil
		}
		return nil, fmt.Errorf("failed to read config %s: %w", path, err)
	}

	if err := json.Unmarshal(data, config); err != nil {
		return nil, fmt.Errorf("failed to parse config %s: %w", path, err)
	}

	config.Validate()
	return config, nil
}

// Save writes configuration to path, creating its directory
func Save(path string, config *AppConfig) error {
	data, err := json.MarshalIndent(config, "", "  ")
	if err != nil {
		return err
	}

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}
	return os.WriteFile(path, data, 0644)
}

// Validate normalizes configuration values
func (c *AppConfig) Validate() {
	if c.Scale < 1 {
		c.Scale = 1
	}
	if c.Scale > 4 {
		c.Scale = 4
	}
	if c.OutputDir == "" {
		c.OutputDir = DefaultConfig().OutputDir
	}
	if c.BundlePath == "" {
		c.BundlePath = DefaultConfig().BundlePath
	}
}

// Clone creates a copy of the config
func (c *AppConfig) Clone() *AppConfig {
	clone := *c
	return &clone
}

// FormatFileSize formats bytes to human readable string
func FormatFileSize(bytes int64) string {
	const unit = 1024
	if bytes < unit {
		return fmt.Sprintf("%d B", bytes)
	}
	div, exp := int64(unit), 0
	for n := bytes / unit; n >= unit; n /= unit {
		div *= unit
		exp++
	}
	return fmt.Sprintf("%.1f %s", float64(bytes)/float64(div), []string{"KB", "MB", "GB", "TB"}[exp])
}
