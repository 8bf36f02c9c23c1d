package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

// Config holds the application configuration
type Config struct {
	Database  DatabaseConfig  `toml:"database"`
	UI        UIConfig        `toml:"ui"`
	Clipboard ClipboardConfig `toml:"clipboard"`
	Log       LogConfig       `toml:"log"`
	Templates TemplatesConfig `toml:"templates"`
}

// DatabaseConfig holds database-related configuration
type DatabaseConfig struct {
	Path string `toml:"path"`
}

// UIConfig holds display settings
type UIConfig struct {
	Visuals   bool   `toml:"visuals"`
	ImagesDir string `toml:"images_dir"`
}

// ClipboardConfig selects the clipboard backend. Empty means auto-detect.
type ClipboardConfig struct {
	Backend string `toml:"backend"`
}

// LogConfig configures the file logger. An empty path disables logging.
type LogConfig struct {
	Path  string `toml:"path"`
	Level string `toml:"level"`
}

// TemplatesConfig overrides the built-in message templates.
// "{name}" is replaced with the contact's name.
type TemplatesConfig struct {
	YoungAdult string `toml:"young_adult"`
	MidCareer  string `toml:"mid_career"`
	PreRetiree string `toml:"pre_retiree"`
}

// Default returns the default configuration
func Default() *Config {
	homeDir, _ := os.UserHomeDir()
	appDir := filepath.Join(homeDir, ".config", "clientbook")
	return &Config{
		Database: DatabaseConfig{
			Path: filepath.Join(appDir, "clientbook.db"),
		},
		UI: UIConfig{
			Visuals:   true,
			ImagesDir: filepath.Join(appDir, "images"),
		},
		Log: LogConfig{
			Level: "info",
		},
	}
}

// DefaultPath returns the standard config file location
func DefaultPath() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("getting home dir: %w", err)
	}
	return filepath.Join(homeDir, ".config", "clientbook", "config.toml"), nil
}

// Load loads configuration from the standard location
func Load() (*Config, error) {
	configPath, err := DefaultPath()
	if err != nil {
		return nil, err
	}
	return LoadFrom(configPath)
}

// LoadFrom loads configuration from a specific path
func LoadFrom(configPath string) (*Config, error) {
	cfg := Default()

	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		return cfg, nil
	}

	data, err := os.ReadFile(configPath)
	if err != nil {
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	if _, err := toml.Decode(string(data), cfg); err != nil {
		return nil, fmt.Errorf("parsing config file: %w", err)
	}

	cfg.Database.Path = expandPath(cfg.Database.Path)
	cfg.UI.ImagesDir = expandPath(cfg.UI.ImagesDir)
	cfg.Log.Path = expandPath(cfg.Log.Path)

	return cfg, nil
}

// expandPath expands ~ to home directory
func expandPath(path string) string {
	if len(path) > 0 && path[0] == '~' {
		homeDir, _ := os.UserHomeDir()
		return filepath.Join(homeDir, path[1:])
	}
	return path
}

// Save saves the configuration to the standard location
func (c *Config) Save() error {
	configPath, err := DefaultPath()
	if err != nil {
		return err
	}

	if err := os.MkdirAll(filepath.Dir(configPath), 0755); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}

	return c.SaveTo(configPath)
}

// SaveTo saves the configuration to a specific path
func (c *Config) SaveTo(configPath string) error {
	f, err := os.Create(configPath)
	if err != nil {
		return fmt.Errorf("creating config file: %w", err)
	}
	defer f.Close()

	encoder := toml.NewEncoder(f)
	if err := encoder.Encode(c); err != nil {
		return fmt.Errorf("encoding config: %w", err)
	}

	return nil
}

// ResolveImage turns a stored profile picture path into a filesystem path.
// Relative paths are taken from the images directory.
func (c *Config) ResolveImage(path string) string {
	if path == "" || filepath.IsAbs(path) || c.UI.ImagesDir == "" {
		return path
	}
	return filepath.Join(c.UI.ImagesDir, path)
}
