package config

import (
	"fmt"
	"math"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// DefaultFileName is the config file looked up in the working directory.
const DefaultFileName = "sheetpack.yml"

type Config struct {
	SheetsDir    string `yaml:"sheets_dir"`
	AssetsDir    string `yaml:"assets_dir"`
	ResourcesDir string `yaml:"resources_dir"`

	// MaxFrameCount overrides the engine's animation frame cap when
	// positive. Zero means "use the engine default".
	MaxFrameCount int `yaml:"max_frame_count"`

	// Watch Settings
	WatchDebounceMS int `yaml:"watch_debounce_ms"`

	// UI Settings
	ColorTheme string `yaml:"color_theme"`
	LogLevel   string `yaml:"log_level"`
}

// DefaultConfig returns a Config struct with default values
func DefaultConfig() *Config {
	return &Config{
		SheetsDir:       ".",
		AssetsDir:       "./assets",
		ResourcesDir:    "./resources",
		MaxFrameCount:   0,
		WatchDebounceMS: 500,
		ColorTheme:      "auto",
		LogLevel:        "info",
	}
}

// Load reads configuration from the specified file path
func Load(path string) (*Config, error) {
	// Start with default config
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		// If file doesn't exist, return default config (not an error)
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	// Apply defaults for essential values if missing
	if cfg.SheetsDir == "" {
		cfg.SheetsDir = "."
	}
	if cfg.AssetsDir == "" {
		cfg.AssetsDir = "./assets"
	}
	if cfg.ResourcesDir == "" {
		cfg.ResourcesDir = "./resources"
	}
	if cfg.WatchDebounceMS <= 0 {
		cfg.WatchDebounceMS = 500
	}
	if cfg.ColorTheme == "" {
		cfg.ColorTheme = "auto"
	}
	if cfg.LogLevel == "" {
		cfg.LogLevel = "info"
	}

	// Animation frame indices are 16-bit; a larger cap can never be honored.
	if cfg.MaxFrameCount < 0 {
		cfg.MaxFrameCount = 0
	}
	if cfg.MaxFrameCount > math.MaxUint16 {
		cfg.MaxFrameCount = math.MaxUint16
	}

	return cfg, nil
}

// Save persists the current configuration to the specified file path
func (c *Config) Save(path string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}
