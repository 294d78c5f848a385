// internal/logger/logger.go
package logger

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"runtime"
	"sync"
	"time"

	"github.com/adrg/xdg"
	"gopkg.in/natefinch/lumberjack.v2"
)

const appDirName = "least"

var (
	defaultLogger *slog.Logger
	initOnce      sync.Once
	logOutput     io.Writer = io.Discard
)

// Init initializes the logger package with the given configuration.
func Init(cfg Config) {
	initOnce.Do(func() {
		cfg.process()

		switch cfg.LogFilePath {
		case "-":
			logOutput = os.Stderr
		case "":
			logOutput = &lumberjack.Logger{
				Filename:   filepath.Join(xdg.StateHome, appDirName, appDirName+".log"),
				MaxSize:    5, // megabytes
				MaxBackups: 2,
			}
		default:
			logOutput = &lumberjack.Logger{
				Filename:   cfg.LogFilePath,
				MaxSize:    5,
				MaxBackups: 2,
			}
		}

		opts := slog.HandlerOptions{
			Level:     cfg.level,
			AddSource: true,
			ReplaceAttr: func(groups []string, a slog.Attr) slog.Attr {
				if a.Key == slog.SourceKey {
					source := a.Value.Any().(*slog.Source)
					dir := filepath.Base(filepath.Dir(source.File))
					file := filepath.Base(source.File)
					a.Value = slog.StringValue(fmt.Sprintf("%s/%s", dir, file))
				}
				if a.Key == slog.TimeKey {
					a.Value = slog.StringValue(a.Value.Time().Format(time.TimeOnly))
				}
				return a
			},
		}
		defaultLogger = slog.New(slog.NewTextHandler(logOutput, &opts))
	})
}

// ensureInitialized falls back to defaults if Init was never called.
func ensureInitialized() {
	Init(NewConfig())
}

// logAtLevel creates and logs a record at the specified level, capturing the correct caller source.
func logAtLevel(level slog.Level, format string, args ...interface{}) {
	if defaultLogger == nil {
		ensureInitialized()
		if defaultLogger == nil {
			return
		}
	}
	if !defaultLogger.Enabled(context.Background(), level) {
		return
	}

	pc, _, _, ok := runtime.Caller(2)
	if !ok {
		pc = 0
	}
	r := slog.NewRecord(time.Now(), level, fmt.Sprintf(format, args...), pc)
	_ = defaultLogger.Handler().Handle(context.Background(), r)
}

// Debugf logs a debug message using Printf-style formatting.
func Debugf(format string, args ...interface{}) {
	logAtLevel(slog.LevelDebug, format, args...)
}

// Infof logs an info message using Printf-style formatting.
func Infof(format string, args ...interface{}) {
	logAtLevel(slog.LevelInfo, format, args...)
}

// Warnf logs a warning message using Printf-style formatting.
func Warnf(format string, args ...interface{}) {
	logAtLevel(slog.LevelWarn, format, args...)
}

// Errorf logs an error message using Printf-style formatting.
func Errorf(format string, args ...interface{}) {
	logAtLevel(slog.LevelError, format, args...)
}

// Get retrieves the configured logger instance.
func Get() *slog.Logger {
	ensureInitialized()
	return defaultLogger
}
