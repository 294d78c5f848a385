// internal/config/flags.go
package config

import (
	"flag"
	"fmt"
)

// Flags holds values parsed from command-line flags.
// Use pointers to distinguish between unset flags and zero-value flags.
type Flags struct {
	ConfigFilePath *string
	Version        *bool
	Multi          *bool
	LineNumbers    *bool
	LogLevel       *string
	LogFilePath    *string
}

// DefineFlags sets up the command-line flags and associates them with the Flags struct fields.
func (f *Flags) DefineFlags() {
	f.ConfigFilePath = flag.String("config", "", fmt.Sprintf("Path to TOML configuration file (default ~/.config/%s/%s)", ConfigDirName, DefaultConfigFileName))
	f.Version = flag.Bool("version", false, "Show version information and exit")
	flag.BoolVar(f.Version, "v", false, "Show version information and exit (shorthand)")
	f.Multi = flag.Bool("multi", false, "Treat each argument as a shell command and page its output in its own buffer")
	flag.BoolVar(f.Multi, "m", false, "Shorthand for --multi")
	f.LineNumbers = flag.Bool("line-numbers", false, "Show line numbers - Overrides config file")
	f.LogLevel = flag.String("loglevel", "", "Log level (debug, info, warn, error) - Overrides config file")
	f.LogFilePath = flag.String("logfile", "", "Path to write log file (use '-' for stderr) - Overrides config file")
}

// ParseFlags parses the defined command-line flags into the Flags struct.
// It returns the remaining non-flag arguments (files, or commands with --multi).
func (f *Flags) ParseFlags() []string {
	f.DefineFlags()
	flag.Parse()
	return flag.Args()
}

// ApplyOverrides updates the Config struct with values from flags *if* they were set.
func (f *Flags) ApplyOverrides(cfg *Config) {
	flag.Visit(func(fl *flag.Flag) {
		switch fl.Name {
		case "loglevel":
			if f.LogLevel != nil && *f.LogLevel != "" {
				cfg.Logger.LogLevel = *f.LogLevel
			}
		case "logfile":
			if f.LogFilePath != nil { // "-" is valid and means stderr
				cfg.Logger.LogFilePath = *f.LogFilePath
			}
		case "line-numbers":
			if f.LineNumbers != nil {
				cfg.Pager.ShowLineNumbers = *f.LineNumbers
			}
		}
	})
}

// Usage prints the usage banner to stderr.
func Usage() {
	fmt.Fprintf(flag.CommandLine.Output(), "Usage: %s [flags] [FILE ...]\n", AppName)
	fmt.Fprintf(flag.CommandLine.Output(), "       %s --multi CMD [CMD ...]\n", AppName)
	fmt.Fprintf(flag.CommandLine.Output(), "       producer | %s\n\nFlags:\n", AppName)
	flag.PrintDefaults()
}
