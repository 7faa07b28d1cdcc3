// Package app provides application-level configuration and initialization.
package app

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/lazyvibe/formpages/pkg/utils"
	"github.com/spf13/viper"
)

// EnvPrefix prefixes environment overrides, e.g. FORMPAGES_PERSIST=false.
const EnvPrefix = "FORMPAGES"

const (
	minTabName = 4
	maxTabName = 40
)

// Config holds the application configuration.
type Config struct {
	// DataDir holds pages.json. Defaults to the config directory.
	DataDir string `mapstructure:"data_dir"`
	// Persist saves pages to disk; when false pages live only in memory.
	Persist bool `mapstructure:"persist"`
	// Watch reloads pages when pages.json is edited outside the app.
	Watch bool `mapstructure:"watch"`
	// LogFile is the log destination. Defaults to formpages.log in the config directory.
	LogFile string `mapstructure:"log_file"`
	// LogLevel is one of debug, info, warn, error.
	LogLevel string `mapstructure:"log_level"`
	// MaxTabName is the number of cells a tab label may use before truncation.
	MaxTabName int `mapstructure:"max_tab_name"`
	// Theme is the color theme (future use).
	Theme string `mapstructure:"theme"`
}

// DefaultConfig returns a config with sensible defaults.
func DefaultConfig() *Config {
	return &Config{
		Persist:    true,
		Watch:      true,
		LogLevel:   "info",
		MaxTabName: 16,
		Theme:      "catppuccin-mocha",
	}
}

// ConfigPath returns the path to the config file.
func ConfigPath(configDir string) string {
	return filepath.Join(configDir, "config.json")
}

// LoadConfig loads the configuration from disk and the environment.
func LoadConfig(configDir string) (*Config, error) {
	def := DefaultConfig()

	v := viper.New()
	v.SetDefault("data_dir", configDir)
	v.SetDefault("persist", def.Persist)
	v.SetDefault("watch", def.Watch)
	v.SetDefault("log_file", filepath.Join(configDir, "formpages.log"))
	v.SetDefault("log_level", def.LogLevel)
	v.SetDefault("max_tab_name", def.MaxTabName)
	v.SetDefault("theme", def.Theme)

	v.SetConfigType("json")
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Check if file exists
	path := ConfigPath(configDir)
	if _, err := os.Stat(path); err == nil {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("read config: %w", err)
		}
	}

	config := &Config{}
	if err := v.Unmarshal(config); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}
	config.sanitize()
	return config, nil
}

// SaveConfig saves the configuration to disk.
func SaveConfig(configDir string, config *Config) error {
	// Ensure directory exists
	if err := os.MkdirAll(configDir, 0755); err != nil {
		return fmt.Errorf("mkdir config dir: %w", err)
	}

	v := viper.New()
	v.SetConfigType("json")
	v.Set("data_dir", config.DataDir)
	v.Set("persist", config.Persist)
	v.Set("watch", config.Watch)
	v.Set("log_file", config.LogFile)
	v.Set("log_level", config.LogLevel)
	v.Set("max_tab_name", config.MaxTabName)
	v.Set("theme", config.Theme)

	if err := v.WriteConfigAs(ConfigPath(configDir)); err != nil {
		return fmt.Errorf("write config: %w", err)
	}
	return nil
}

func (c *Config) sanitize() {
	c.DataDir = utils.ExpandPath(c.DataDir)
	c.LogFile = utils.ExpandPath(c.LogFile)
	c.LogLevel = strings.ToLower(strings.TrimSpace(c.LogLevel))
	if c.MaxTabName < minTabName {
		c.MaxTabName = minTabName
	}
	if c.MaxTabName > maxTabName {
		c.MaxTabName = maxTabName
	}
}
