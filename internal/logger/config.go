// Package logger provides leveled logging for the pager. Output never goes
// to the terminal while the screen is active; it is routed to a rotated file
// (or stderr when requested with "-").
package logger

import (
	"log/slog"
	"strings"
)

// Config holds all settings for the logger.
type Config struct {
	// LogLevel specifies the minimum level to log (e.g., "debug", "info", "warn", "error").
	LogLevel string `toml:"level"`

	// LogFilePath is the path to the output log file. Empty selects the
	// default state-dir location; "-" selects stderr.
	LogFilePath string `toml:"file"`

	level slog.Level
}

// NewConfig creates a new Config with default values.
func NewConfig() Config {
	return Config{
		LogLevel:    "info",
		LogFilePath: "",
	}
}

// process parses the string level into its slog form.
func (c *Config) process() {
	c.level = slog.LevelInfo
	switch strings.ToLower(c.LogLevel) {
	case "debug":
		c.level = slog.LevelDebug
	case "info":
		c.level = slog.LevelInfo
	case "warn", "warning":
		c.level = slog.LevelWarn
	case "error", "err":
		c.level = slog.LevelError
	}
}
