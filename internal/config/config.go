package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/pelletier/go-toml/v2"

	"miniq/internal/eventbus"
)

// Config represents the application configuration
type Config struct {
	Version    int          `toml:"version"`
	UISettings UISettings   `toml:"ui"`
	ExtraTools []ToolConfig `toml:"tools"`
}

// UISettings represents UI-related configuration
type UISettings struct {
	ConfirmWindowMs int  `toml:"confirm_window_ms"` // copy confirmation before auto-close
	MaxVisibleRows  int  `toml:"max_visible_rows"`
	ShowIcons       bool `toml:"show_icons"`
	ShowDescription bool `toml:"show_description"`
}

// ToolConfig describes a user-defined registry entry appended after the
// built-in tools
type ToolConfig struct {
	ID          string `toml:"id"`
	Label       string `toml:"label"`
	Description string `toml:"description"`
	Icon        string `toml:"icon"`
}

// ConfigService handles configuration management
type ConfigService interface {
	Load() (*Config, error)
	Save(config *Config) error
	LoadFromPath(path string) (*Config, error)
	SaveToPath(config *Config, path string) error
}

// configService is the concrete implementation
type configService struct {
	bus      eventbus.EventBus
	filePath string
}

// NewConfigService creates a new config service
func NewConfigService() ConfigService {
	configDir, err := os.UserConfigDir()
	if err != nil {
		// Fallback to home directory
		configDir, err = os.UserHomeDir()
		if err != nil {
			configDir = "."
		}
		configDir = filepath.Join(configDir, ".config")
	}

	miniqDir := filepath.Join(configDir, "miniq")
	os.MkdirAll(miniqDir, 0755)

	return &configService{
		filePath: filepath.Join(miniqDir, "miniq.toml"),
	}
}

// NewConfigServiceWithBus creates a config service with event bus support
func NewConfigServiceWithBus(bus eventbus.EventBus) ConfigService {
	cs := NewConfigService().(*configService)
	cs.bus = bus
	return cs
}

// Load loads the configuration from the default path
func (cs *configService) Load() (*Config, error) {
	return cs.LoadFromPath(cs.filePath)
}

// Save saves the configuration to the default path
func (cs *configService) Save(config *Config) error {
	return cs.SaveToPath(config, cs.filePath)
}

// LoadFromPath loads the configuration from a specific path
func (cs *configService) LoadFromPath(path string) (*Config, error) {
	if _, err := os.Stat(path); os.IsNotExist(err) {
		// Return default config if file doesn't exist
		cfg := DefaultConfig()
		cs.publishLoaded(path)
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var cfg Config
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	applyDefaults(&cfg)
	cs.publishLoaded(path)
	return &cfg, nil
}

// SaveToPath saves the configuration to a specific path
func (cs *configService) SaveToPath(config *Config, path string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := toml.Marshal(config)
	if err != nil {
		return fmt.Errorf("failed to encode config: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	if cs.bus != nil {
		cs.bus.Publish(eventbus.ConfigSavedEvent{Path: path})
	}
	return nil
}

func (cs *configService) publishLoaded(path string) {
	if cs.bus != nil {
		cs.bus.Publish(eventbus.ConfigLoadedEvent{Path: path})
	}
}

// DefaultConfig returns the default configuration
func DefaultConfig() *Config {
	return &Config{
		Version: 1,
		UISettings: UISettings{
			ConfirmWindowMs: 800,
			MaxVisibleRows:  8,
			ShowIcons:       true,
			ShowDescription: true,
		},
	}
}

// applyDefaults fills zero values with usable defaults after a partial
// config file is parsed
func applyDefaults(cfg *Config) {
	if cfg.Version == 0 {
		cfg.Version = 1
	}
	if cfg.UISettings.ConfirmWindowMs <= 0 {
		cfg.UISettings.ConfirmWindowMs = 800
	}
	if cfg.UISettings.MaxVisibleRows <= 0 {
		cfg.UISettings.MaxVisibleRows = 8
	}
}
