// internal/config/config.go
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/BurntSushi/toml"
	"github.com/adrg/xdg"
	"github.com/kenseitehdev/Least/internal/logger"
)

// Config holds the application's combined configuration.
type Config struct {
	Logger logger.Config `toml:"logger"` // Embed logger config under [logger] table
	Pager  PagerConfig   `toml:"pager"`  // Pager-specific settings
}

// PagerConfig holds pager-specific settings.
type PagerConfig struct {
	ShowLineNumbers bool `toml:"show_line_numbers"`
}

var (
	loadedConfig *Config
	loadOnce     sync.Once
	loadErr      error
)

// NewDefaultConfig creates a Config struct with default values.
func NewDefaultConfig() *Config {
	return &Config{
		Logger: logger.Config{
			LogLevel:    "info",
			LogFilePath: "", // Empty means default path logic in logger.Init applies
		},
		Pager: PagerConfig{
			ShowLineNumbers: false,
		},
	}
}

// loadFromFile attempts to load configuration from a TOML file.
// A missing file is not an error; the defaults simply stand.
func loadFromFile(filePath string) (*Config, error) {
	cfg := &Config{}
	if _, err := os.Stat(filePath); os.IsNotExist(err) {
		return cfg, nil
	} else if err != nil {
		return cfg, fmt.Errorf("error checking config file '%s': %w", filePath, err)
	}

	metadata, err := toml.DecodeFile(filePath, cfg)
	if err != nil {
		return cfg, fmt.Errorf("failed to parse config file '%s': %w", filePath, err)
	}
	if len(metadata.Undecoded()) > 0 {
		logger.Warnf("Config file '%s': Unrecognized keys: %v", filePath, metadata.Undecoded())
	}
	return cfg, nil
}

// validate resets an empty log level to its default; other values are kept
// as loaded.
func (c *Config) validate() {
	defaults := NewDefaultConfig()

	if c.Logger.LogLevel == "" {
		c.Logger.LogLevel = defaults.Logger.LogLevel
	}
}

// LoadConfig orchestrates loading defaults, file, applying flags, and validation.
// It should be called only once, typically from main.
func LoadConfig(configFilePath string, flags *Flags) (*Config, error) {
	loadOnce.Do(func() {
		cfg := NewDefaultConfig()

		effectivePath := configFilePath
		if effectivePath == "" {
			effectivePath = filepath.Join(xdg.ConfigHome, ConfigDirName, DefaultConfigFileName)
		}

		fileCfg, err := loadFromFile(effectivePath)
		if err != nil {
			loadErr = err
		} else if fileCfg != nil {
			if fileCfg.Logger.LogLevel != "" {
				cfg.Logger = fileCfg.Logger
			}
			cfg.Pager.ShowLineNumbers = fileCfg.Pager.ShowLineNumbers
		}

		if flags != nil {
			flags.ApplyOverrides(cfg)
		}

		cfg.validate()
		loadedConfig = cfg
	})

	return loadedConfig, loadErr
}

// Get returns the loaded application configuration. Panics if LoadConfig wasn't called.
func Get() *Config {
	if loadedConfig == nil {
		panic("config.Get() called before config.LoadConfig()")
	}
	return loadedConfig
}
